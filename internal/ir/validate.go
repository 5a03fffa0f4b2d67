package ir

import "fmt"

// Validate checks an IR program for structural correctness and returns
// a list of error messages. An empty slice means the program is valid.
// A comment-only program (the parse failure shape) is valid.
func Validate(prog *Program) []string {
	return validateInstrs(prog.Instructions, "program")
}

func validateInstrs(instrs []Instr, context string) []string {
	var errors []string
	for i, instr := range instrs {
		where := fmt.Sprintf("%s instruction %d", context, i)
		switch n := instr.(type) {
		case *Assign:
			if n.Name == "" {
				errors = append(errors, where+": assign has empty name")
			}
			if n.Value == nil {
				errors = append(errors, where+": assign has nil value")
			}
		case *Print:
			for j, part := range n.Parts {
				if part.Value == nil {
					errors = append(errors, fmt.Sprintf("%s: print part %d has nil value", where, j))
				}
			}
		case *If:
			if n.Condition == nil {
				errors = append(errors, where+": if has nil condition")
			}
			errors = append(errors, validateInstrs(n.Then, where+" then")...)
			errors = append(errors, validateInstrs(n.Else, where+" else")...)
		case *While:
			if n.Condition == nil {
				errors = append(errors, where+": while has nil condition")
			}
			errors = append(errors, validateInstrs(n.Body, where+" body")...)
		case *For:
			if n.Var == "" {
				errors = append(errors, where+": for has empty loop variable")
			}
			if n.Limit == nil {
				errors = append(errors, where+": for has nil limit")
			}
			errors = append(errors, validateInstrs(n.Body, where+" body")...)
		case *Comment:
			// Always valid
		default:
			errors = append(errors, fmt.Sprintf("%s: unknown instruction %T", where, instr))
		}
	}
	return errors
}
