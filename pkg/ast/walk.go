package ast

// Walk visits node and its children in pre-order. Returning false from fn
// skips the node's children.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	switch n := node.(type) {
	case *BoolLiteral, *Identifier:
	case *NandExpression:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *DeclStatement:
		Walk(n.Value, fn)
	case *AssignStatement:
		Walk(n.Value, fn)
	case *IfStatement:
		Walk(n.Cond, fn)
		Walk(n.Body, fn)
	case *WhileStatement:
		Walk(n.Cond, fn)
		Walk(n.Body, fn)
	case *SeqStatement:
		Walk(n.First, fn)
		Walk(n.Second, fn)
	case *FreeStatement:
	}
}

// Equal reports structural equality of two trees, ignoring spans.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *BoolLiteral:
		y, ok := b.(*BoolLiteral)
		return ok && x.Value == y.Value
	case *NandExpression:
		y, ok := b.(*NandExpression)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Identifier:
		y, ok := b.(*Identifier)
		return ok && x.Name == y.Name
	case *DeclStatement:
		y, ok := b.(*DeclStatement)
		return ok && x.Name == y.Name && Equal(x.Value, y.Value)
	case *AssignStatement:
		y, ok := b.(*AssignStatement)
		return ok && x.Target == y.Target && Equal(x.Value, y.Value)
	case *IfStatement:
		y, ok := b.(*IfStatement)
		return ok && Equal(x.Cond, y.Cond) && Equal(x.Body, y.Body)
	case *WhileStatement:
		y, ok := b.(*WhileStatement)
		return ok && Equal(x.Cond, y.Cond) && Equal(x.Body, y.Body)
	case *SeqStatement:
		y, ok := b.(*SeqStatement)
		return ok && Equal(x.First, y.First) && Equal(x.Second, y.Second)
	case *FreeStatement:
		y, ok := b.(*FreeStatement)
		return ok && x.Name == y.Name
	}
	return false
}
