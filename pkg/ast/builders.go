package ast

// Constructor helpers. Tests and fixtures build trees with these instead of
// struct literals so span plumbing stays out of the way.

// Bool returns a literal node for v.
func Bool(v bool) *BoolLiteral {
	return &BoolLiteral{Value: v}
}

// True returns a `true` literal.
func True() *BoolLiteral { return Bool(true) }

// False returns a `false` literal.
func False() *BoolLiteral { return Bool(false) }

// Nand combines two expressions with the primitive operator.
func Nand(left, right Expr) *NandExpression {
	return &NandExpression{Left: left, Right: right}
}

// Not is derived: NAND of x with itself.
func Not(x Expr) *NandExpression {
	return Nand(x, x)
}

// ID references a variable.
func ID(name string) *Identifier {
	return &Identifier{Name: name}
}

// Decl declares name bound to value.
func Decl(name string, value Expr) *DeclStatement {
	return &DeclStatement{Name: name, Value: value}
}

// Assign overwrites target with value.
func Assign(target string, value Expr) *AssignStatement {
	return &AssignStatement{Target: target, Value: value}
}

// If guards body with cond.
func If(cond Expr, body Stmt) *IfStatement {
	return &IfStatement{Cond: cond, Body: body}
}

// While loops body under cond.
func While(cond Expr, body Stmt) *WhileStatement {
	return &WhileStatement{Cond: cond, Body: body}
}

// Seq composes two statements.
func Seq(first, second Stmt) *SeqStatement {
	return &SeqStatement{First: first, Second: second}
}

// Free releases a variable.
func Free(name string) *FreeStatement {
	return &FreeStatement{Name: name}
}

// Block folds one or more statements into nested SeqStatements, right to
// left, matching how the parser assembles statement lists. Block(a) is a,
// Block(a, b, c) is Seq(a, Seq(b, c)). Panics on an empty list; the language
// has no skip statement.
func Block(stmts ...Stmt) Stmt {
	if len(stmts) == 0 {
		panic("ast: Block requires at least one statement")
	}
	result := stmts[len(stmts)-1]
	for i := len(stmts) - 2; i >= 0; i-- {
		result = Seq(stmts[i], result)
	}
	return result
}
