// ast.go — AST node types produced by the parser and consumed by the
// interpreter.
//
// Every node owns the token it started at; the interpreter uses that token
// only for error positions and never mutates a node. The hierarchy is the
// classic statement/expression split:
//
//	Node
//	  Statement:  LetStatement, ReturnStatement, ExpressionStatement,
//	              BlockStatement
//	  Expression: Identifier, IntegerLiteral, BooleanLiteral, StringLiteral,
//	              NullLiteral, UnitExpression, ArrayLiteral, PrefixExpression,
//	              InfixExpression, IfExpression, FunctionLiteral,
//	              CallExpression, IndexExpression
//
// Program is the root node and holds the top-level statement list.
package monkey

import (
	"strings"
)

// Node is the root interface for every AST element.
type Node interface {
	// Pos returns the token this node started at, for error positions.
	Pos() Token
	// TokenLiteral returns the literal text of the token that began this node.
	TokenLiteral() string
	// String renders a compact source-like form, used by tests and debugging.
	String() string
}

// Statement nodes produce no value syntactically (the interpreter still
// threads a value through them).
type Statement interface {
	Node
	statementNode()
}

// Expression nodes evaluate to a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: an ordered sequence of top-level statements.
type Program struct {
	Statements []Statement
}

// Pos returns the first statement's token, or the zero Token for an empty
// program.
func (p *Program) Pos() Token {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return Token{}
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.String())
	}
	return b.String()
}

// LetStatement binds the value of an expression to a name: let x = expr;
type LetStatement struct {
	Token Token // the 'let' token
	Name  *Identifier
	Value Expression
}

func (s *LetStatement) Pos() Token           { return s.Token }
func (s *LetStatement) statementNode()       {}
func (s *LetStatement) TokenLiteral() string { return s.Token.Literal }
func (s *LetStatement) String() string {
	return "let " + s.Name.String() + " = " + s.Value.String() + ";"
}

// ReturnStatement yields its operand to the nearest function-call boundary.
type ReturnStatement struct {
	Token       Token // the 'return' token
	ReturnValue Expression
}

func (s *ReturnStatement) Pos() Token           { return s.Token }
func (s *ReturnStatement) statementNode()       {}
func (s *ReturnStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ReturnStatement) String() string {
	return "return " + s.ReturnValue.String() + ";"
}

// ExpressionStatement is an expression in statement position.
type ExpressionStatement struct {
	Token      Token // first token of the expression
	Expression Expression
}

func (s *ExpressionStatement) Pos() Token           { return s.Token }
func (s *ExpressionStatement) statementNode()       {}
func (s *ExpressionStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ExpressionStatement) String() string       { return s.Expression.String() }

// BlockStatement is a braced statement sequence.
type BlockStatement struct {
	Token      Token // the '{' token
	Statements []Statement
}

func (s *BlockStatement) Pos() Token           { return s.Token }
func (s *BlockStatement) statementNode()       {}
func (s *BlockStatement) TokenLiteral() string { return s.Token.Literal }
func (s *BlockStatement) String() string {
	var b strings.Builder
	for _, st := range s.Statements {
		b.WriteString(st.String())
	}
	return b.String()
}

// Identifier is a variable reference (or a binding name inside let/fn).
type Identifier struct {
	Token Token
	Value string
}

func (e *Identifier) Pos() Token           { return e.Token }
func (e *Identifier) expressionNode()      {}
func (e *Identifier) TokenLiteral() string { return e.Token.Literal }
func (e *Identifier) String() string       { return e.Value }

// IntegerLiteral is a signed 64-bit integer literal.
type IntegerLiteral struct {
	Token Token
	Value int64
}

func (e *IntegerLiteral) Pos() Token           { return e.Token }
func (e *IntegerLiteral) expressionNode()      {}
func (e *IntegerLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *IntegerLiteral) String() string       { return e.Token.Literal }

// BooleanLiteral is true or false.
type BooleanLiteral struct {
	Token Token
	Value bool
}

func (e *BooleanLiteral) Pos() Token           { return e.Token }
func (e *BooleanLiteral) expressionNode()      {}
func (e *BooleanLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *BooleanLiteral) String() string       { return e.Token.Literal }

// StringLiteral is a double-quoted string literal (escapes already decoded).
type StringLiteral struct {
	Token Token
	Value string
}

func (e *StringLiteral) Pos() Token           { return e.Token }
func (e *StringLiteral) expressionNode()      {}
func (e *StringLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *StringLiteral) String() string       { return "\"" + e.Value + "\"" }

// NullLiteral is the null keyword.
type NullLiteral struct {
	Token Token
}

func (e *NullLiteral) Pos() Token           { return e.Token }
func (e *NullLiteral) expressionNode()      {}
func (e *NullLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *NullLiteral) String() string       { return "null" }

// UnitExpression is the empty-parenthesis marker ().
type UnitExpression struct {
	Token Token // the '(' token
}

func (e *UnitExpression) Pos() Token           { return e.Token }
func (e *UnitExpression) expressionNode()      {}
func (e *UnitExpression) TokenLiteral() string { return e.Token.Literal }
func (e *UnitExpression) String() string       { return "()" }

// ArrayLiteral is an ordered element list: [e1, e2, ...]
type ArrayLiteral struct {
	Token    Token // the '[' token
	Elements []Expression
}

func (e *ArrayLiteral) Pos() Token           { return e.Token }
func (e *ArrayLiteral) expressionNode()      {}
func (e *ArrayLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *ArrayLiteral) String() string {
	parts := make([]string, 0, len(e.Elements))
	for _, el := range e.Elements {
		parts = append(parts, el.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// IndexExpression is base[index].
type IndexExpression struct {
	Token Token // the '[' token
	Left  Expression
	Index Expression
}

func (e *IndexExpression) Pos() Token           { return e.Token }
func (e *IndexExpression) expressionNode()      {}
func (e *IndexExpression) TokenLiteral() string { return e.Token.Literal }
func (e *IndexExpression) String() string {
	return "(" + e.Left.String() + "[" + e.Index.String() + "])"
}

// PrefixExpression is !expr or -expr.
type PrefixExpression struct {
	Token    Token // the operator token
	Operator string
	Right    Expression
}

func (e *PrefixExpression) Pos() Token           { return e.Token }
func (e *PrefixExpression) expressionNode()      {}
func (e *PrefixExpression) TokenLiteral() string { return e.Token.Literal }
func (e *PrefixExpression) String() string {
	return "(" + e.Operator + e.Right.String() + ")"
}

// InfixExpression is left op right.
type InfixExpression struct {
	Token    Token // the operator token
	Operator string
	Left     Expression
	Right    Expression
}

func (e *InfixExpression) Pos() Token           { return e.Token }
func (e *InfixExpression) expressionNode()      {}
func (e *InfixExpression) TokenLiteral() string { return e.Token.Literal }
func (e *InfixExpression) String() string {
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}

// IfExpression is if (cond) { consequence } else { alternative }.
// Alternative may be nil.
type IfExpression struct {
	Token       Token // the 'if' token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

func (e *IfExpression) Pos() Token           { return e.Token }
func (e *IfExpression) expressionNode()      {}
func (e *IfExpression) TokenLiteral() string { return e.Token.Literal }
func (e *IfExpression) String() string {
	s := "if " + e.Condition.String() + " " + e.Consequence.String()
	if e.Alternative != nil {
		s += " else " + e.Alternative.String()
	}
	return s
}

// FunctionLiteral is fn(params) { body }. The closure environment is not
// part of the AST; it is captured when the literal is evaluated.
type FunctionLiteral struct {
	Token      Token // the 'fn' token
	Parameters []*Identifier
	Body       *BlockStatement
}

func (e *FunctionLiteral) Pos() Token           { return e.Token }
func (e *FunctionLiteral) expressionNode()      {}
func (e *FunctionLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *FunctionLiteral) String() string {
	params := make([]string, 0, len(e.Parameters))
	for _, p := range e.Parameters {
		params = append(params, p.String())
	}
	return "fn(" + strings.Join(params, ", ") + ") " + e.Body.String()
}

// CallExpression is callee(args...).
type CallExpression struct {
	Token     Token // the '(' token
	Function  Expression
	Arguments []Expression
}

func (e *CallExpression) Pos() Token           { return e.Token }
func (e *CallExpression) expressionNode()      {}
func (e *CallExpression) TokenLiteral() string { return e.Token.Literal }
func (e *CallExpression) String() string {
	args := make([]string, 0, len(e.Arguments))
	for _, a := range e.Arguments {
		args = append(args, a.String())
	}
	return e.Function.String() + "(" + strings.Join(args, ", ") + ")"
}
