package typechecker

import "formallang/interpreter-go/pkg/ast"

// Closed reports whether every identifier reference in node resolves to a
// binding: either a member of vars or a declaration that precedes the
// reference in the same sequential scope. Unlike CheckStmt it does not
// require declared names to be unique; it checks reachability only.
func Closed(node ast.Node, vars VarSet) bool {
	switch n := node.(type) {
	case *ast.BoolLiteral:
		return true
	case *ast.Identifier:
		return vars.Contains(n.Name)
	case *ast.NandExpression:
		return Closed(n.Left, vars) && Closed(n.Right, vars)
	case *ast.DeclStatement:
		return Closed(n.Value, vars)
	case *ast.AssignStatement:
		return vars.Contains(n.Target) && Closed(n.Value, vars)
	case *ast.IfStatement:
		return Closed(n.Cond, vars) && Closed(n.Body, vars)
	case *ast.WhileStatement:
		return Closed(n.Cond, vars) && Closed(n.Body, vars)
	case *ast.SeqStatement:
		if !Closed(n.First, vars) {
			return false
		}
		return Closed(n.Second, scopeAfter(n.First, vars))
	case *ast.FreeStatement:
		return vars.Contains(n.Name)
	}
	return false
}

// NoRedeclarations reports whether every Decl in stmt introduces a name not
// already declared in its enclosing scope, under the same scope-threading
// rules as CheckStmt.
func NoRedeclarations(stmt ast.Stmt, vars VarSet) bool {
	switch s := stmt.(type) {
	case *ast.DeclStatement:
		return !vars.Contains(s.Name)
	case *ast.AssignStatement, *ast.FreeStatement:
		return true
	case *ast.IfStatement:
		return NoRedeclarations(s.Body, vars)
	case *ast.WhileStatement:
		return NoRedeclarations(s.Body, vars)
	case *ast.SeqStatement:
		if !NoRedeclarations(s.First, vars) {
			return false
		}
		return NoRedeclarations(s.Second, scopeAfter(s.First, vars))
	}
	return false
}

// scopeAfter computes the declared set following stmt, mirroring the scope
// growth of CheckStmt without judging validity.
func scopeAfter(stmt ast.Stmt, vars VarSet) VarSet {
	switch s := stmt.(type) {
	case *ast.DeclStatement:
		if vars.Contains(s.Name) {
			return vars
		}
		grown := vars.Clone()
		grown[s.Name] = struct{}{}
		return grown
	case *ast.SeqStatement:
		return scopeAfter(s.Second, scopeAfter(s.First, vars))
	default:
		return vars
	}
}
