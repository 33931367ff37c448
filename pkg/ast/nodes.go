package ast

// Node is implemented by every FormalLang syntax tree node.
type Node interface {
	Span() Span
	node()
}

// Expr is the expression variant: boolean literals, NAND, and identifier
// references. FormalLang has exactly one value type, so expressions carry no
// type annotations.
type Expr interface {
	Node
	expr()
}

// Stmt is the statement variant. Statements thread scope: Seq is the only
// construct whose declarations remain visible to what follows it.
type Stmt interface {
	Node
	stmt()
}

type baseNode struct {
	span Span
}

func (b *baseNode) Span() Span     { return b.span }
func (b *baseNode) setSpan(s Span) { b.span = s }
func (b *baseNode) node()          {}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	baseNode
	Value bool
}

func (*BoolLiteral) expr() {}

// NandExpression applies the sole primitive operator to two sub-expressions.
type NandExpression struct {
	baseNode
	Left  Expr
	Right Expr
}

func (*NandExpression) expr() {}

// Identifier references a declared variable by name.
type Identifier struct {
	baseNode
	Name string
}

func (*Identifier) expr() {}

// DeclStatement binds a new variable to the value of its initializer.
type DeclStatement struct {
	baseNode
	Name  string
	Value Expr
}

func (*DeclStatement) stmt() {}

// AssignStatement mutates an existing variable.
type AssignStatement struct {
	baseNode
	Target string
	Value  Expr
}

func (*AssignStatement) stmt() {}

// IfStatement executes Body once when Cond is true. Declarations inside Body
// do not survive the statement; memory writes and frees do.
type IfStatement struct {
	baseNode
	Cond Expr
	Body Stmt
}

func (*IfStatement) stmt() {}

// WhileStatement executes Body as long as Cond holds, with the same scope
// rules as IfStatement. It is the one construct that can loop forever.
type WhileStatement struct {
	baseNode
	Cond Expr
	Body Stmt
}

func (*WhileStatement) stmt() {}

// SeqStatement composes two statements, threading scope from First to Second.
type SeqStatement struct {
	baseNode
	First  Stmt
	Second Stmt
}

func (*SeqStatement) stmt() {}

// FreeStatement releases a variable's storage and marks the name freed.
type FreeStatement struct {
	baseNode
	Name string
}

func (*FreeStatement) stmt() {}
