package lexer

import "fmt"

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF
	NEWLINE // logical end of statement
	INDENT  // increase in leading whitespace
	DEDENT  // decrease in leading whitespace

	// Literals
	IDENT      // x, total, range
	INT_LIT    // 123
	FLOAT_LIT  // 123.45
	STRING_LIT // "hello" or 'hello'

	// Keywords
	DEF
	IMPORT
	FROM
	IF
	ELIF
	ELSE
	WHILE
	FOR
	IN
	RETURN
	PASS
	TRUE
	FALSE
	NONE
	AND
	OR
	NOT

	// Operators
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %
	EQ      // ==
	NEQ     // !=
	LT      // <
	GT      // >
	LEQ     // <=
	GEQ     // >=
	ASSIGN  // =

	// Delimiters
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]
	COMMA    // ,
	COLON    // :
	DOT      // .
)

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case ILLEGAL:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	case NEWLINE:
		return "NEWLINE"
	case INDENT:
		return "INDENT"
	case DEDENT:
		return "DEDENT"
	case IDENT:
		return "IDENT"
	case INT_LIT:
		return "INT_LIT"
	case FLOAT_LIT:
		return "FLOAT_LIT"
	case STRING_LIT:
		return "STRING_LIT"
	case DEF:
		return "DEF"
	case IMPORT:
		return "IMPORT"
	case FROM:
		return "FROM"
	case IF:
		return "IF"
	case ELIF:
		return "ELIF"
	case ELSE:
		return "ELSE"
	case WHILE:
		return "WHILE"
	case FOR:
		return "FOR"
	case IN:
		return "IN"
	case RETURN:
		return "RETURN"
	case PASS:
		return "PASS"
	case TRUE:
		return "TRUE"
	case FALSE:
		return "FALSE"
	case NONE:
		return "NONE"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case NOT:
		return "NOT"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case STAR:
		return "STAR"
	case SLASH:
		return "SLASH"
	case PERCENT:
		return "PERCENT"
	case EQ:
		return "EQ"
	case NEQ:
		return "NEQ"
	case LT:
		return "LT"
	case GT:
		return "GT"
	case LEQ:
		return "LEQ"
	case GEQ:
		return "GEQ"
	case ASSIGN:
		return "ASSIGN"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LBRACKET:
		return "LBRACKET"
	case RBRACKET:
		return "RBRACKET"
	case COMMA:
		return "COMMA"
	case COLON:
		return "COLON"
	case DOT:
		return "DOT"
	default:
		return fmt.Sprintf("TokenType(%d)", t)
	}
}

// keywords maps keyword strings to their token types
var keywords = map[string]TokenType{
	"def":    DEF,
	"import": IMPORT,
	"from":   FROM,
	"if":     IF,
	"elif":   ELIF,
	"else":   ELSE,
	"while":  WHILE,
	"for":    FOR,
	"in":     IN,
	"return": RETURN,
	"pass":   PASS,
	"True":   TRUE,
	"False":  FALSE,
	"None":   NONE,
	"and":    AND,
	"or":     OR,
	"not":    NOT,
}

// LookupIdent checks if an identifier is a keyword
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
