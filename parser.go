// parser.go — Pratt parser for the Monkey surface syntax.
//
// The parser consumes the token stream from lexer.go and builds the AST
// defined in ast.go. Precedence levels follow the classic Monkey table with
// call and index binding tightest. Errors carry 1-based Line/Col and can be
// rendered with a caret snippet via WrapErrorWithSource (errors.go).
//
// Interactive hosts (the REPL) probe whether an error happened at EOF:
// IsIncomplete reports that the input may simply be unfinished, so the host
// can keep reading continuation lines instead of failing.
package monkey

import (
	"fmt"
	"strconv"
)

// ParseError is a positioned syntax error.
type ParseError struct {
	Line int
	Col  int
	Msg  string

	// AtEOF marks errors caused by running out of input; the REPL uses it
	// to request continuation lines.
	AtEOF bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// IsIncomplete reports whether err is a parse error at end of input.
func IsIncomplete(err error) bool {
	pe, ok := err.(*ParseError)
	return ok && pe.AtEOF
}

// Operator precedence, lowest to highest.
const (
	precLowest  = iota
	precEquals  // == !=
	precCompare // < >
	precSum     // + -
	precProduct // * /
	precPrefix  // -x !x
	precCall    // fn(x)
	precIndex   // arr[i]
)

var precedences = map[TokenType]int{
	EQ:       precEquals,
	NOT_EQ:   precEquals,
	LT:       precCompare,
	GT:       precCompare,
	PLUS:     precSum,
	MINUS:    precSum,
	ASTERISK: precProduct,
	SLASH:    precProduct,
	LPAREN:   precCall,
	LBRACKET: precIndex,
}

type (
	prefixParseFn func() Expression
	infixParseFn  func(Expression) Expression
)

// Parser holds the two-token lookahead state of a single parse.
type Parser struct {
	l *Lexer

	curToken  Token
	peekToken Token

	errors []*ParseError

	prefixParseFns map[TokenType]prefixParseFn
	infixParseFns  map[TokenType]infixParseFn
}

// Parse tokenizes and parses src into a Program. On syntax errors the first
// error is returned alongside a nil program.
func Parse(src string) (*Program, error) {
	p := NewParser(NewLexer(src))
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, errs[0]
	}
	return prog, nil
}

// NewParser creates a parser reading from l.
func NewParser(l *Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[TokenType]prefixParseFn{
		IDENT:    p.parseIdentifier,
		INT:      p.parseIntegerLiteral,
		STRING:   p.parseStringLiteral,
		TRUE:     p.parseBooleanLiteral,
		FALSE:    p.parseBooleanLiteral,
		NULL:     p.parseNullLiteral,
		BANG:     p.parsePrefixExpression,
		MINUS:    p.parsePrefixExpression,
		LPAREN:   p.parseGroupedOrUnit,
		LBRACKET: p.parseArrayLiteral,
		IF:       p.parseIfExpression,
		FUNCTION: p.parseFunctionLiteral,
	}
	p.infixParseFns = map[TokenType]infixParseFn{
		PLUS:     p.parseInfixExpression,
		MINUS:    p.parseInfixExpression,
		ASTERISK: p.parseInfixExpression,
		SLASH:    p.parseInfixExpression,
		EQ:       p.parseInfixExpression,
		NOT_EQ:   p.parseInfixExpression,
		LT:       p.parseInfixExpression,
		GT:       p.parseInfixExpression,
		LPAREN:   p.parseCallExpression,
		LBRACKET: p.parseIndexExpression,
	}

	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns the parse errors collected so far, in source order.
func (p *Parser) Errors() []*ParseError { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) errorf(tok Token, format string, args ...interface{}) {
	p.errors = append(p.errors, &ParseError{
		Line:  tok.Line,
		Col:   tok.Col,
		Msg:   fmt.Sprintf(format, args...),
		AtEOF: tok.Type == EOF,
	})
}

func (p *Parser) expectPeek(tt TokenType) bool {
	if p.peekToken.Type == tt {
		p.nextToken()
		return true
	}
	p.errorf(p.peekToken, "expected %s, got %s", tt, describeToken(p.peekToken))
	return false
}

func describeToken(tok Token) string {
	switch tok.Type {
	case EOF:
		return "end of input"
	case ILLEGAL:
		return tok.Literal
	default:
		return fmt.Sprintf("%q", tok.Literal)
	}
}

// ParseProgram parses until EOF and returns the root node. Errors are
// collected; the returned Program covers whatever was parseable.
func (p *Parser) ParseProgram() *Program {
	prog := &Program{}
	for p.curToken.Type != EOF {
		if stmt := p.parseStatement(); stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.nextToken()
	}
	return prog
}

// --- statements ---------------------------------------------------------

func (p *Parser) parseStatement() Statement {
	switch p.curToken.Type {
	case LET:
		return p.parseLetStatement()
	case RETURN:
		return p.parseReturnStatement()
	case ILLEGAL:
		p.errorf(p.curToken, "illegal token: %s", p.curToken.Literal)
		return nil
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() Statement {
	stmt := &LetStatement{Token: p.curToken}

	if !p.expectPeek(IDENT) {
		return nil
	}
	stmt.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(ASSIGN) {
		return nil
	}
	p.nextToken()

	stmt.Value = p.parseExpression(precLowest)
	if stmt.Value == nil {
		return nil
	}

	if p.peekToken.Type == SEMICOLON {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseReturnStatement() Statement {
	stmt := &ReturnStatement{Token: p.curToken}
	p.nextToken()

	stmt.ReturnValue = p.parseExpression(precLowest)
	if stmt.ReturnValue == nil {
		return nil
	}

	if p.peekToken.Type == SEMICOLON {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() Statement {
	stmt := &ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(precLowest)
	if stmt.Expression == nil {
		return nil
	}
	if p.peekToken.Type == SEMICOLON {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseBlockStatement() *BlockStatement {
	block := &BlockStatement{Token: p.curToken}
	p.nextToken()

	for p.curToken.Type != RBRACE {
		if p.curToken.Type == EOF {
			p.errorf(p.curToken, "expected }, got end of input")
			return nil
		}
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

// --- expressions --------------------------------------------------------

func (p *Parser) parseExpression(precedence int) Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errorf(p.curToken, "unexpected %s", describeToken(p.curToken))
		return nil
	}
	left := prefix()

	for left != nil && p.peekToken.Type != SEMICOLON && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return precLowest
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return precLowest
}

func (p *Parser) parseIdentifier() Expression {
	return &Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() Expression {
	lit := &IntegerLiteral{Token: p.curToken}
	n, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errorf(p.curToken, "could not parse %q as integer", p.curToken.Literal)
		return nil
	}
	lit.Value = n
	return lit
}

func (p *Parser) parseStringLiteral() Expression {
	return &StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() Expression {
	return &BooleanLiteral{Token: p.curToken, Value: p.curToken.Type == TRUE}
}

func (p *Parser) parseNullLiteral() Expression {
	return &NullLiteral{Token: p.curToken}
}

func (p *Parser) parsePrefixExpression() Expression {
	expr := &PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}
	p.nextToken()
	expr.Right = p.parseExpression(precPrefix)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseInfixExpression(left Expression) Expression {
	expr := &InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Left:     left,
	}
	prec := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(prec)
	if expr.Right == nil {
		return nil
	}
	return expr
}

// parseGroupedOrUnit handles '(' in prefix position: either the unit value
// () or a parenthesized expression.
func (p *Parser) parseGroupedOrUnit() Expression {
	tok := p.curToken
	if p.peekToken.Type == RPAREN {
		p.nextToken()
		return &UnitExpression{Token: tok}
	}
	p.nextToken()
	expr := p.parseExpression(precLowest)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseArrayLiteral() Expression {
	arr := &ArrayLiteral{Token: p.curToken}
	arr.Elements = p.parseExpressionList(RBRACKET)
	if arr.Elements == nil && len(p.errors) > 0 {
		return nil
	}
	return arr
}

func (p *Parser) parseIfExpression() Expression {
	expr := &IfExpression{Token: p.curToken}

	if !p.expectPeek(LPAREN) {
		return nil
	}
	p.nextToken()
	expr.Condition = p.parseExpression(precLowest)
	if expr.Condition == nil {
		return nil
	}
	if !p.expectPeek(RPAREN) {
		return nil
	}
	if !p.expectPeek(LBRACE) {
		return nil
	}
	expr.Consequence = p.parseBlockStatement()
	if expr.Consequence == nil {
		return nil
	}

	if p.peekToken.Type == ELSE {
		p.nextToken()
		if !p.expectPeek(LBRACE) {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
		if expr.Alternative == nil {
			return nil
		}
	}
	return expr
}

func (p *Parser) parseFunctionLiteral() Expression {
	fn := &FunctionLiteral{Token: p.curToken}

	if !p.expectPeek(LPAREN) {
		return nil
	}
	fn.Parameters = p.parseFunctionParameters()
	if fn.Parameters == nil {
		return nil
	}
	if !p.expectPeek(LBRACE) {
		return nil
	}
	fn.Body = p.parseBlockStatement()
	if fn.Body == nil {
		return nil
	}
	return fn
}

func (p *Parser) parseFunctionParameters() []*Identifier {
	params := []*Identifier{}

	if p.peekToken.Type == RPAREN {
		p.nextToken()
		return params
	}

	p.nextToken()
	if p.curToken.Type != IDENT {
		p.errorf(p.curToken, "expected parameter name, got %s", describeToken(p.curToken))
		return nil
	}
	params = append(params, &Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekToken.Type == COMMA {
		p.nextToken()
		p.nextToken()
		if p.curToken.Type != IDENT {
			p.errorf(p.curToken, "expected parameter name, got %s", describeToken(p.curToken))
			return nil
		}
		params = append(params, &Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(RPAREN) {
		return nil
	}
	return params
}

func (p *Parser) parseCallExpression(fn Expression) Expression {
	call := &CallExpression{Token: p.curToken, Function: fn}
	call.Arguments = p.parseExpressionList(RPAREN)
	if call.Arguments == nil && len(p.errors) > 0 {
		return nil
	}
	return call
}

func (p *Parser) parseIndexExpression(left Expression) Expression {
	expr := &IndexExpression{Token: p.curToken, Left: left}
	p.nextToken()
	expr.Index = p.parseExpression(precLowest)
	if expr.Index == nil {
		return nil
	}
	if !p.expectPeek(RBRACKET) {
		return nil
	}
	return expr
}

// parseExpressionList parses a comma-separated expression list terminated by
// end (the opening delimiter is curToken on entry). Returns nil on error.
func (p *Parser) parseExpressionList(end TokenType) []Expression {
	list := []Expression{}

	if p.peekToken.Type == end {
		p.nextToken()
		return list
	}

	p.nextToken()
	e := p.parseExpression(precLowest)
	if e == nil {
		return nil
	}
	list = append(list, e)

	for p.peekToken.Type == COMMA {
		p.nextToken()
		p.nextToken()
		e := p.parseExpression(precLowest)
		if e == nil {
			return nil
		}
		list = append(list, e)
	}

	if !p.expectPeek(end) {
		return nil
	}
	return list
}
