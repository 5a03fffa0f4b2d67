package parser

import (
	"github.com/pycross/pycross/internal/ast"
	"github.com/pycross/pycross/internal/diagnostic"
	"github.com/pycross/pycross/internal/lexer"
)

// New creates a new parser
func New(source string) *Parser {
	l := lexer.New(source)
	tokens := l.Tokenize()
	return &Parser{
		tokens: tokens,
		pos:    0,
		diags:  diagnostic.New(),
	}
}

// Diagnostics returns the parser's diagnostics
func (p *Parser) Diagnostics() *diagnostic.Diagnostics {
	return p.diags
}

// Parse parses the token stream into a Module AST
func (p *Parser) Parse() *ast.Module {
	mod := &ast.Module{}
	mod.Body = p.parseStatements(lexer.EOF)
	return mod
}

// parseStatements parses statements until the terminator token.
// The terminator itself is not consumed.
func (p *Parser) parseStatements(terminator lexer.TokenType) []ast.Statement {
	var stmts []ast.Statement
	for !p.check(terminator) && !p.check(lexer.EOF) {
		if p.match(lexer.NEWLINE) {
			continue // blank line
		}
		if p.check(lexer.ILLEGAL) {
			tok := p.current()
			p.diags.Errorf(tok.Line, tok.Column, "invalid syntax: %s", tok.Literal)
			p.advance()
			p.synchronize()
			continue
		}
		if p.check(lexer.INDENT) {
			tok := p.current()
			p.diags.Errorf(tok.Line, tok.Column, "unexpected indent")
			p.advance()
			p.synchronize()
			continue
		}

		startPos := p.pos
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.pos == startPos {
			p.advance() // ensure forward progress to avoid infinite loop
		}
	}
	return stmts
}

// parseStatement parses a single statement
func (p *Parser) parseStatement() ast.Statement {
	switch p.current().Type {
	case lexer.DEF:
		return p.parseFuncDef()
	case lexer.IMPORT, lexer.FROM:
		return p.parseImport()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.FOR:
		return p.parseForStmt()
	case lexer.PASS:
		tok := p.advance()
		p.endOfLine()
		return &ast.PassStmt{Line: tok.Line, Column: tok.Column}
	case lexer.RETURN:
		return p.parseReturnStmt()
	default:
		return p.parseSimpleStmt()
	}
}

// parseFuncDef parses: def <name>(<params>): <block>
// The body is kept in the AST so the linter can point at it, but the
// walker never translates it.
func (p *Parser) parseFuncDef() ast.Statement {
	tok := p.expect(lexer.DEF)
	name := p.expect(lexer.IDENT)
	p.expect(lexer.LPAREN)

	var params []string
	if p.check(lexer.IDENT) {
		params = append(params, p.advance().Literal)
		for p.match(lexer.COMMA) {
			params = append(params, p.expect(lexer.IDENT).Literal)
		}
	}
	p.expect(lexer.RPAREN)
	p.expect(lexer.COLON)
	body := p.parseBlock()

	return &ast.FuncDef{
		Name:   name.Literal,
		Params: params,
		Body:   body,
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// parseImport parses "import x.y" and "from x import a, b". Everything
// after the module name is consumed up to the end of the line; imports
// never reach the IR.
func (p *Parser) parseImport() ast.Statement {
	tok := p.advance() // IMPORT or FROM
	name := p.expect(lexer.IDENT)
	for !p.check(lexer.NEWLINE) && !p.check(lexer.EOF) && !p.check(lexer.DEDENT) {
		p.advance()
	}
	p.match(lexer.NEWLINE)

	return &ast.ImportStmt{
		Module: name.Literal,
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// parseIfStmt parses: if <expr>: <block> [elif ...] [else: <block>]
// An elif chain becomes a nested IfStmt in the else block, the same
// shape CPython's ast module produces.
func (p *Parser) parseIfStmt() ast.Statement {
	tok := p.advance() // IF or ELIF
	test := p.parseExpression()
	p.expect(lexer.COLON)
	body := p.parseBlock()

	var elseBody []ast.Statement
	if p.check(lexer.ELIF) {
		elseBody = []ast.Statement{p.parseIfStmt()}
	} else if p.match(lexer.ELSE) {
		p.expect(lexer.COLON)
		elseBody = p.parseBlock()
	}

	return &ast.IfStmt{
		Test:   test,
		Body:   body,
		Else:   elseBody,
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// parseWhileStmt parses: while <expr>: <block>
func (p *Parser) parseWhileStmt() ast.Statement {
	tok := p.expect(lexer.WHILE)
	test := p.parseExpression()
	p.expect(lexer.COLON)
	body := p.parseBlock()

	return &ast.WhileStmt{
		Test:   test,
		Body:   body,
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// parseForStmt parses: for <name> in <expr>: <block>
func (p *Parser) parseForStmt() ast.Statement {
	tok := p.expect(lexer.FOR)
	name := p.expect(lexer.IDENT)
	p.expect(lexer.IN)
	iter := p.parseExpression()
	p.expect(lexer.COLON)
	body := p.parseBlock()

	return &ast.ForStmt{
		Var:    name.Literal,
		Iter:   iter,
		Body:   body,
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// parseReturnStmt parses: return [<expr>]
func (p *Parser) parseReturnStmt() ast.Statement {
	tok := p.expect(lexer.RETURN)
	var value ast.Expression
	if !p.check(lexer.NEWLINE) && !p.check(lexer.EOF) && !p.check(lexer.DEDENT) {
		value = p.parseExpression()
	}
	p.endOfLine()

	return &ast.ReturnStmt{
		Value:  value,
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// parseSimpleStmt parses an assignment or a bare expression statement.
func (p *Parser) parseSimpleStmt() ast.Statement {
	tok := p.current()

	// Assignment targets: a = ..., a, b = ..., a = b = ...
	if p.check(lexer.IDENT) && (p.peek().Type == lexer.ASSIGN || p.isTupleTarget()) {
		var targets []string
		targets = append(targets, p.advance().Literal)
		for p.match(lexer.COMMA) {
			targets = append(targets, p.expect(lexer.IDENT).Literal)
		}
		p.expect(lexer.ASSIGN)

		// Chained assignment: every "name =" prefix is a further target
		for p.check(lexer.IDENT) && p.peek().Type == lexer.ASSIGN {
			targets = append(targets, p.advance().Literal)
			p.advance() // consume '='
		}

		value := p.parseExpression()

		// A comma after the value makes the right side a tuple, which
		// the pipeline does not support; degrade it to a list literal.
		if p.check(lexer.COMMA) {
			elems := []ast.Expression{value}
			for p.match(lexer.COMMA) {
				elems = append(elems, p.parseExpression())
			}
			value = &ast.ListLit{Elements: elems, Line: tok.Line, Column: tok.Column}
		}

		p.endOfLine()
		return &ast.AssignStmt{
			Targets: targets,
			Value:   value,
			Line:    tok.Line,
			Column:  tok.Column,
		}
	}

	expr := p.parseExpression()
	p.endOfLine()
	return &ast.ExprStmt{
		Expr:   expr,
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// isTupleTarget reports whether the tokens ahead form a comma-separated
// name list followed by '=' (tuple assignment target).
func (p *Parser) isTupleTarget() bool {
	i := p.pos
	for {
		if i >= len(p.tokens) || p.tokens[i].Type != lexer.IDENT {
			return false
		}
		i++
		if i >= len(p.tokens) {
			return false
		}
		switch p.tokens[i].Type {
		case lexer.COMMA:
			i++
		case lexer.ASSIGN:
			return true
		default:
			return false
		}
	}
}

// parseBlock parses: NEWLINE INDENT <statements> DEDENT
func (p *Parser) parseBlock() []ast.Statement {
	p.expect(lexer.NEWLINE)
	p.expect(lexer.INDENT)
	stmts := p.parseStatements(lexer.DEDENT)
	p.expect(lexer.DEDENT)
	return stmts
}

// endOfLine consumes the statement terminator. EOF and DEDENT also end
// a statement so that sources without a trailing newline parse cleanly.
func (p *Parser) endOfLine() {
	if p.check(lexer.EOF) || p.check(lexer.DEDENT) {
		return
	}
	p.expect(lexer.NEWLINE)
}

// --- Expressions ---

// binaryPrecedence returns operator precedence; 0 means not a binary operator
func binaryPrecedence(tt lexer.TokenType) int {
	switch tt {
	case lexer.OR:
		return 1
	case lexer.AND:
		return 2
	case lexer.EQ, lexer.NEQ, lexer.LT, lexer.GT, lexer.LEQ, lexer.GEQ:
		return 3
	case lexer.PLUS, lexer.MINUS:
		return 4
	case lexer.STAR, lexer.SLASH, lexer.PERCENT:
		return 5
	default:
		return 0
	}
}

func isComparison(tt lexer.TokenType) bool {
	switch tt {
	case lexer.EQ, lexer.NEQ, lexer.LT, lexer.GT, lexer.LEQ, lexer.GEQ:
		return true
	default:
		return false
	}
}

// parseExpression parses an expression
func (p *Parser) parseExpression() ast.Expression {
	return p.parsePrecedence(1)
}

// parsePrecedence implements precedence climbing for binary operators
func (p *Parser) parsePrecedence(minPrec int) ast.Expression {
	left := p.parseUnary()

	for {
		opTok := p.current()
		prec := binaryPrecedence(opTok.Type)
		if prec == 0 || prec < minPrec {
			return left
		}
		p.advance()
		right := p.parsePrecedence(prec + 1)

		if isComparison(opTok.Type) {
			left = &ast.CompareExpr{
				Left:   left,
				Op:     opTok.Type,
				Right:  right,
				Line:   opTok.Line,
				Column: opTok.Column,
			}
		} else {
			left = &ast.BinaryExpr{
				Left:   left,
				Op:     opTok.Type,
				Right:  right,
				Line:   opTok.Line,
				Column: opTok.Column,
			}
		}
	}
}

// parseUnary parses unary operators (-x, not x)
func (p *Parser) parseUnary() ast.Expression {
	if p.check(lexer.MINUS) || p.check(lexer.NOT) {
		tok := p.advance()
		operand := p.parseUnary()
		return &ast.UnaryExpr{
			Op:      tok.Type,
			Operand: operand,
			Line:    tok.Line,
			Column:  tok.Column,
		}
	}
	return p.parsePostfix()
}

// parsePostfix parses call and attribute suffixes
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()

	for {
		switch p.current().Type {
		case lexer.LPAREN:
			tok := p.advance()
			args := p.parseArgList()
			p.expect(lexer.RPAREN)
			expr = &ast.CallExpr{
				Func:   expr,
				Args:   args,
				Line:   tok.Line,
				Column: tok.Column,
			}
		case lexer.DOT:
			tok := p.advance()
			attr := p.expect(lexer.IDENT)
			expr = &ast.AttributeExpr{
				Object: expr,
				Attr:   attr.Literal,
				Line:   tok.Line,
				Column: tok.Column,
			}
		default:
			return expr
		}
	}
}

// parseArgList parses comma-separated call arguments
func (p *Parser) parseArgList() []ast.Expression {
	var args []ast.Expression
	if p.check(lexer.RPAREN) {
		return args
	}
	args = append(args, p.parseExpression())
	for p.match(lexer.COMMA) {
		args = append(args, p.parseExpression())
	}
	return args
}

// parsePrimary parses literals, names, list literals, and parenthesized
// expressions
func (p *Parser) parsePrimary() ast.Expression {
	tok := p.current()

	switch tok.Type {
	case lexer.INT_LIT:
		p.advance()
		return &ast.IntLit{Value: tok.Literal, Line: tok.Line, Column: tok.Column}
	case lexer.FLOAT_LIT:
		p.advance()
		return &ast.FloatLit{Value: tok.Literal, Line: tok.Line, Column: tok.Column}
	case lexer.STRING_LIT:
		p.advance()
		return &ast.StringLit{Value: tok.Literal, Line: tok.Line, Column: tok.Column}
	case lexer.TRUE:
		p.advance()
		return &ast.BoolLit{Value: true, Line: tok.Line, Column: tok.Column}
	case lexer.FALSE:
		p.advance()
		return &ast.BoolLit{Value: false, Line: tok.Line, Column: tok.Column}
	case lexer.NONE:
		p.advance()
		return &ast.NoneLit{Line: tok.Line, Column: tok.Column}
	case lexer.IDENT:
		p.advance()
		return &ast.Name{Value: tok.Literal, Line: tok.Line, Column: tok.Column}
	case lexer.LPAREN:
		p.advance()
		expr := p.parseExpression()
		p.expect(lexer.RPAREN)
		return expr
	case lexer.LBRACKET:
		p.advance()
		var elems []ast.Expression
		if !p.check(lexer.RBRACKET) {
			elems = append(elems, p.parseExpression())
			for p.match(lexer.COMMA) {
				elems = append(elems, p.parseExpression())
			}
		}
		p.expect(lexer.RBRACKET)
		return &ast.ListLit{Elements: elems, Line: tok.Line, Column: tok.Column}
	default:
		p.diags.Errorf(tok.Line, tok.Column, "unexpected token %s in expression", tok.Type)
		p.advance()
		return &ast.Name{Value: tok.Literal, Line: tok.Line, Column: tok.Column}
	}
}
