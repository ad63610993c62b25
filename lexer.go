// lexer.go — hand-rolled scanner for the Monkey surface syntax.
//
// The lexer turns a source string into a flat token stream. Every token
// carries its 1-based Line/Col so the parser and interpreter can report
// positioned errors. Unknown characters and unterminated strings become
// ILLEGAL tokens; the parser converts those into *ParseError.
package monkey

import "strings"

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	// Identifiers + literals
	IDENT
	INT
	STRING

	// Operators
	ASSIGN
	PLUS
	MINUS
	BANG
	ASTERISK
	SLASH
	LT
	GT
	EQ
	NOT_EQ

	// Delimiters
	COMMA
	SEMICOLON
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET

	// Keywords
	FUNCTION
	LET
	TRUE
	FALSE
	IF
	ELSE
	RETURN
	NULL
)

var tokenNames = map[TokenType]string{
	EOF: "EOF", ILLEGAL: "ILLEGAL",
	IDENT: "IDENT", INT: "INT", STRING: "STRING",
	ASSIGN: "=", PLUS: "+", MINUS: "-", BANG: "!", ASTERISK: "*", SLASH: "/",
	LT: "<", GT: ">", EQ: "==", NOT_EQ: "!=",
	COMMA: ",", SEMICOLON: ";",
	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}", LBRACKET: "[", RBRACKET: "]",
	FUNCTION: "fn", LET: "let", TRUE: "true", FALSE: "false",
	IF: "if", ELSE: "else", RETURN: "return", NULL: "null",
}

func (tt TokenType) String() string {
	if s, ok := tokenNames[tt]; ok {
		return s
	}
	return "UNKNOWN"
}

// Token is a lexical token. Line and Col are 1-based and point at the first
// character of the token.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Col     int
}

var keywords = map[string]TokenType{
	"fn":     FUNCTION,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
	"null":   NULL,
}

// Lexer scans a Monkey source string into tokens.
type Lexer struct {
	src  string
	pos  int  // index of ch
	next int  // index after ch
	ch   byte // current character (0 at EOF)
	line int  // 1-based
	col  int  // 1-based column of ch
}

// NewLexer creates a lexer positioned at the first character of src.
func NewLexer(src string) *Lexer {
	l := &Lexer{src: src, line: 1, col: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.next >= len(l.src) {
		l.ch = 0
	} else {
		l.ch = l.src[l.next]
	}
	l.pos = l.next
	l.next++
	l.col++
}

func (l *Lexer) peekChar() byte {
	if l.next >= len(l.src) {
		return 0
	}
	return l.src[l.next]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

// NextToken scans and returns the next token. After EOF it keeps returning EOF.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	tok := Token{Line: l.line, Col: l.col}

	switch l.ch {
	case 0:
		tok.Type = EOF
		return tok
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Type, tok.Literal = EQ, "=="
		} else {
			tok.Type, tok.Literal = ASSIGN, "="
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Type, tok.Literal = NOT_EQ, "!="
		} else {
			tok.Type, tok.Literal = BANG, "!"
		}
	case '+':
		tok.Type, tok.Literal = PLUS, "+"
	case '-':
		tok.Type, tok.Literal = MINUS, "-"
	case '*':
		tok.Type, tok.Literal = ASTERISK, "*"
	case '/':
		tok.Type, tok.Literal = SLASH, "/"
	case '<':
		tok.Type, tok.Literal = LT, "<"
	case '>':
		tok.Type, tok.Literal = GT, ">"
	case ',':
		tok.Type, tok.Literal = COMMA, ","
	case ';':
		tok.Type, tok.Literal = SEMICOLON, ";"
	case '(':
		tok.Type, tok.Literal = LPAREN, "("
	case ')':
		tok.Type, tok.Literal = RPAREN, ")"
	case '{':
		tok.Type, tok.Literal = LBRACE, "{"
	case '}':
		tok.Type, tok.Literal = RBRACE, "}"
	case '[':
		tok.Type, tok.Literal = LBRACKET, "["
	case ']':
		tok.Type, tok.Literal = RBRACKET, "]"
	case '"':
		lit, ok := l.readString()
		if !ok {
			tok.Type, tok.Literal = ILLEGAL, "unterminated string"
			return tok
		}
		tok.Type, tok.Literal = STRING, lit
		return tok
	default:
		if isLetter(l.ch) {
			tok.Literal = l.readIdentifier()
			if kw, ok := keywords[tok.Literal]; ok {
				tok.Type = kw
			} else {
				tok.Type = IDENT
			}
			return tok
		}
		if isDigit(l.ch) {
			tok.Type = INT
			tok.Literal = l.readNumber()
			return tok
		}
		tok.Type, tok.Literal = ILLEGAL, string(l.ch)
	}

	l.readChar()
	return tok
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.src[start:l.pos]
}

func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.src[start:l.pos]
}

// readString consumes a double-quoted string with \n \t \" \\ escapes.
// Returns ok=false when the closing quote is missing before EOF.
func (l *Lexer) readString() (string, bool) {
	var b strings.Builder
	l.readChar() // opening quote
	for {
		switch l.ch {
		case 0:
			return "", false
		case '"':
			l.readChar()
			return b.String(), true
		case '\\':
			l.readChar()
			switch l.ch {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				// unknown escape: keep it verbatim
				b.WriteByte('\\')
				b.WriteByte(l.ch)
			}
			l.readChar()
		default:
			b.WriteByte(l.ch)
			l.readChar()
		}
	}
}

func isLetter(b byte) bool { return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || b == '_' }
func isDigit(b byte) bool  { return '0' <= b && b <= '9' }
