package monkey

import "testing"

func Test_Lexer_TokenStream(t *testing.T) {
	src := `let five = 5;
let add = fn(x, y) {
  x + y;
};
let result = add(five, 10);
!-/*5;
5 < 10 > 5;
if (5 < 10) { return true; } else { return false; }
10 == 10;
10 != 9;
"foobar"
"foo bar"
[1, 2];
null
()`

	tests := []struct {
		wantType    TokenType
		wantLiteral string
	}{
		{LET, "let"}, {IDENT, "five"}, {ASSIGN, "="}, {INT, "5"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "add"}, {ASSIGN, "="}, {FUNCTION, "fn"},
		{LPAREN, "("}, {IDENT, "x"}, {COMMA, ","}, {IDENT, "y"}, {RPAREN, ")"},
		{LBRACE, "{"}, {IDENT, "x"}, {PLUS, "+"}, {IDENT, "y"}, {SEMICOLON, ";"},
		{RBRACE, "}"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "result"}, {ASSIGN, "="}, {IDENT, "add"},
		{LPAREN, "("}, {IDENT, "five"}, {COMMA, ","}, {INT, "10"}, {RPAREN, ")"}, {SEMICOLON, ";"},
		{BANG, "!"}, {MINUS, "-"}, {SLASH, "/"}, {ASTERISK, "*"}, {INT, "5"}, {SEMICOLON, ";"},
		{INT, "5"}, {LT, "<"}, {INT, "10"}, {GT, ">"}, {INT, "5"}, {SEMICOLON, ";"},
		{IF, "if"}, {LPAREN, "("}, {INT, "5"}, {LT, "<"}, {INT, "10"}, {RPAREN, ")"},
		{LBRACE, "{"}, {RETURN, "return"}, {TRUE, "true"}, {SEMICOLON, ";"}, {RBRACE, "}"},
		{ELSE, "else"}, {LBRACE, "{"}, {RETURN, "return"}, {FALSE, "false"}, {SEMICOLON, ";"}, {RBRACE, "}"},
		{INT, "10"}, {EQ, "=="}, {INT, "10"}, {SEMICOLON, ";"},
		{INT, "10"}, {NOT_EQ, "!="}, {INT, "9"}, {SEMICOLON, ";"},
		{STRING, "foobar"},
		{STRING, "foo bar"},
		{LBRACKET, "["}, {INT, "1"}, {COMMA, ","}, {INT, "2"}, {RBRACKET, "]"}, {SEMICOLON, ";"},
		{NULL, "null"},
		{LPAREN, "("}, {RPAREN, ")"},
		{EOF, ""},
	}

	l := NewLexer(src)
	for i, want := range tests {
		tok := l.NextToken()
		if tok.Type != want.wantType {
			t.Fatalf("tests[%d]: want type %s, got %s (%q)", i, want.wantType, tok.Type, tok.Literal)
		}
		if tok.Literal != want.wantLiteral {
			t.Fatalf("tests[%d]: want literal %q, got %q", i, want.wantLiteral, tok.Literal)
		}
	}
}

func Test_Lexer_Positions(t *testing.T) {
	src := "let x = 1;\n  x + 2"

	want := []struct {
		line, col int
	}{
		{1, 1},  // let
		{1, 5},  // x
		{1, 7},  // =
		{1, 9},  // 1
		{1, 10}, // ;
		{2, 3},  // x
		{2, 5},  // +
		{2, 7},  // 2
	}

	l := NewLexer(src)
	for i, w := range want {
		tok := l.NextToken()
		if tok.Line != w.line || tok.Col != w.col {
			t.Fatalf("token %d (%q): want %d:%d, got %d:%d", i, tok.Literal, w.line, w.col, tok.Line, tok.Col)
		}
	}
}

func Test_Lexer_StringEscapes(t *testing.T) {
	l := NewLexer(`"a\nb\t\"c\"\\"`)
	tok := l.NextToken()
	if tok.Type != STRING {
		t.Fatalf("want STRING, got %s", tok.Type)
	}
	if tok.Literal != "a\nb\t\"c\"\\" {
		t.Fatalf("bad escape decoding: %q", tok.Literal)
	}
}

func Test_Lexer_UnterminatedString(t *testing.T) {
	l := NewLexer(`"never closed`)
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("want ILLEGAL, got %s (%q)", tok.Type, tok.Literal)
	}
}

func Test_Lexer_IllegalCharacter(t *testing.T) {
	l := NewLexer("1 @ 2")
	l.NextToken() // 1
	tok := l.NextToken()
	if tok.Type != ILLEGAL || tok.Literal != "@" {
		t.Fatalf("want ILLEGAL %q, got %s %q", "@", tok.Type, tok.Literal)
	}
}

func Test_Lexer_EOFIsSticky(t *testing.T) {
	l := NewLexer("x")
	l.NextToken()
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Type != EOF {
			t.Fatalf("want EOF, got %s", tok.Type)
		}
	}
}
