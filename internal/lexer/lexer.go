package lexer

// Lexer scans Python-subset source code and produces tokens.
// Leading whitespace is significant: the lexer synthesizes INDENT and
// DEDENT tokens from changes in indentation, and NEWLINE tokens at
// logical line ends, the way CPython's tokenizer does.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // current line number
	column       int  // current column number

	indents     []int   // indentation stack, always starts with 0
	pending     []Token // queued DEDENT bursts
	parenDepth  int     // bracket nesting; newlines inside brackets are not logical
	atLineStart bool
}

// New creates a new Lexer instance
func New(input string) *Lexer {
	l := &Lexer{
		input:       input,
		line:        1,
		column:      0,
		indents:     []int{0},
		atLineStart: true,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances the position
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII code for NUL
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

// peekChar returns the next character without advancing the position
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipInlineSpace skips spaces, tabs, and # comments within a line.
// Newlines are not skipped; they terminate logical lines.
func (l *Lexer) skipInlineSpace() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
			l.readChar()
		}
		if l.ch == '#' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		return
	}
}

// measureIndent handles the start of a logical line: it measures leading
// whitespace, skips blank and comment-only lines, and emits INDENT or
// DEDENT tokens when the indentation level changes. Returns false when no
// indentation token is due and normal scanning should proceed.
func (l *Lexer) measureIndent() (Token, bool) {
	for {
		width := 0
		for l.ch == ' ' || l.ch == '\t' {
			if l.ch == '\t' {
				width += 8 - width%8 // tab stops every 8 columns
			} else {
				width++
			}
			l.readChar()
		}

		// Comment-only line: consume the comment, fall through to newline
		if l.ch == '#' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		}

		// Blank line: no tokens, restart measurement on the next line
		if l.ch == '\n' {
			l.line++
			l.column = 0
			l.readChar()
			continue
		}

		l.atLineStart = false

		// At end of input the caller flushes remaining dedents
		if l.ch == 0 {
			return Token{}, false
		}

		top := l.indents[len(l.indents)-1]
		if width > top {
			l.indents = append(l.indents, width)
			return Token{Type: INDENT, Literal: "", Line: l.line, Column: 0}, true
		}
		for width < l.indents[len(l.indents)-1] {
			l.indents = l.indents[:len(l.indents)-1]
			l.pending = append(l.pending, Token{Type: DEDENT, Literal: "", Line: l.line, Column: 0})
		}
		if width != l.indents[len(l.indents)-1] {
			l.pending = append(l.pending, Token{
				Type: ILLEGAL, Literal: "inconsistent indentation", Line: l.line, Column: 0,
			})
		}
		if len(l.pending) > 0 {
			tok := l.pending[0]
			l.pending = l.pending[1:]
			return tok, true
		}
		return Token{}, false
	}
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber reads a numeric literal (integer or float)
func (l *Lexer) readNumber() (string, TokenType) {
	position := l.position
	tokenType := INT_LIT

	for isDigit(l.ch) {
		l.readChar()
	}

	// A fractional component makes this a float literal
	if l.ch == '.' && isDigit(l.peekChar()) {
		tokenType = FLOAT_LIT
		l.readChar() // consume '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[position:l.position], tokenType
}

// readString reads a string literal delimited by the given quote
// character. The returned value has escapes resolved and no quotes.
func (l *Lexer) readString(quote byte) (string, bool) {
	var result []byte

	for {
		l.readChar()
		if l.ch == 0 || l.ch == '\n' {
			return "", false // unterminated string
		}
		if l.ch == quote {
			break
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				result = append(result, '\n')
			case 't':
				result = append(result, '\t')
			case '\\':
				result = append(result, '\\')
			case '"':
				result = append(result, '"')
			case '\'':
				result = append(result, '\'')
			default:
				// Unknown escape, keep the backslash
				result = append(result, '\\', l.ch)
			}
		} else {
			result = append(result, l.ch)
		}
	}

	return string(result), true
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok
	}

	if l.atLineStart && l.parenDepth == 0 {
		if tok, ok := l.measureIndent(); ok {
			return tok
		}
	}

	l.skipInlineSpace()

	var tok Token
	tok.Line = l.line
	tok.Column = l.column

	switch l.ch {
	case '\n':
		l.line++
		l.column = 0
		l.readChar()
		if l.parenDepth > 0 {
			// Newlines inside brackets do not end the statement
			return l.NextToken()
		}
		l.atLineStart = true
		return Token{Type: NEWLINE, Literal: "", Line: tok.Line, Column: tok.Column}
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: EQ, Literal: "==", Line: tok.Line, Column: tok.Column}
		} else {
			tok = Token{Type: ASSIGN, Literal: "=", Line: tok.Line, Column: tok.Column}
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: NEQ, Literal: "!=", Line: tok.Line, Column: tok.Column}
		} else {
			tok = Token{Type: ILLEGAL, Literal: string(l.ch), Line: tok.Line, Column: tok.Column}
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: LEQ, Literal: "<=", Line: tok.Line, Column: tok.Column}
		} else {
			tok = Token{Type: LT, Literal: "<", Line: tok.Line, Column: tok.Column}
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: GEQ, Literal: ">=", Line: tok.Line, Column: tok.Column}
		} else {
			tok = Token{Type: GT, Literal: ">", Line: tok.Line, Column: tok.Column}
		}
	case '+':
		tok = Token{Type: PLUS, Literal: "+", Line: tok.Line, Column: tok.Column}
	case '-':
		tok = Token{Type: MINUS, Literal: "-", Line: tok.Line, Column: tok.Column}
	case '*':
		tok = Token{Type: STAR, Literal: "*", Line: tok.Line, Column: tok.Column}
	case '/':
		tok = Token{Type: SLASH, Literal: "/", Line: tok.Line, Column: tok.Column}
	case '%':
		tok = Token{Type: PERCENT, Literal: "%", Line: tok.Line, Column: tok.Column}
	case '(':
		l.parenDepth++
		tok = Token{Type: LPAREN, Literal: "(", Line: tok.Line, Column: tok.Column}
	case ')':
		if l.parenDepth > 0 {
			l.parenDepth--
		}
		tok = Token{Type: RPAREN, Literal: ")", Line: tok.Line, Column: tok.Column}
	case '[':
		l.parenDepth++
		tok = Token{Type: LBRACKET, Literal: "[", Line: tok.Line, Column: tok.Column}
	case ']':
		if l.parenDepth > 0 {
			l.parenDepth--
		}
		tok = Token{Type: RBRACKET, Literal: "]", Line: tok.Line, Column: tok.Column}
	case ',':
		tok = Token{Type: COMMA, Literal: ",", Line: tok.Line, Column: tok.Column}
	case ':':
		tok = Token{Type: COLON, Literal: ":", Line: tok.Line, Column: tok.Column}
	case '.':
		tok = Token{Type: DOT, Literal: ".", Line: tok.Line, Column: tok.Column}
	case '"', '\'':
		str, ok := l.readString(l.ch)
		if !ok {
			tok = Token{Type: ILLEGAL, Literal: "unterminated string", Line: tok.Line, Column: tok.Column}
		} else {
			tok = Token{Type: STRING_LIT, Literal: str, Line: tok.Line, Column: tok.Column}
		}
	case 0:
		// Flush any open indentation levels before EOF
		if len(l.indents) > 1 {
			for len(l.indents) > 1 {
				l.indents = l.indents[:len(l.indents)-1]
				l.pending = append(l.pending, Token{Type: DEDENT, Literal: "", Line: l.line, Column: 0})
			}
			tok := l.pending[0]
			l.pending = l.pending[1:]
			return tok
		}
		return Token{Type: EOF, Literal: "", Line: tok.Line, Column: tok.Column}
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			tokenType := LookupIdent(ident)
			return Token{Type: tokenType, Literal: ident, Line: tok.Line, Column: tok.Column}
		} else if isDigit(l.ch) {
			literal, tokenType := l.readNumber()
			return Token{Type: tokenType, Literal: literal, Line: tok.Line, Column: tok.Column}
		}
		tok = Token{Type: ILLEGAL, Literal: string(l.ch), Line: tok.Line, Column: tok.Column}
	}

	l.readChar()
	return tok
}

// Tokenize returns all tokens from the input
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			break
		}
	}
	return tokens
}

// Helper functions

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
