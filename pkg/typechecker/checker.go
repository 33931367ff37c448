package typechecker

import (
	"fmt"

	"formallang/interpreter-go/pkg/ast"
)

// ReasonCode classifies why a node was rejected.
type ReasonCode string

const (
	ReasonUndeclaredVariable ReasonCode = "undeclared-variable"
	ReasonRedeclaredVariable ReasonCode = "redeclared-variable"
)

// Diagnostic reports one rejection with the offending name and its span.
type Diagnostic struct {
	Reason ReasonCode
	Name   string
	Span   ast.Span
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Span.Line, d.Span.Column, d.Reason, d.Name)
}

// Checker accumulates diagnostics across one checking session. The zero
// value is ready to use.
type Checker struct {
	diagnostics []Diagnostic
}

// New constructs a checking session.
func New() *Checker {
	return &Checker{}
}

// Diagnostics returns everything recorded so far, in source order of
// discovery.
func (c *Checker) Diagnostics() []Diagnostic {
	return c.diagnostics
}

func (c *Checker) report(reason ReasonCode, name string, span ast.Span) {
	c.diagnostics = append(c.diagnostics, Diagnostic{Reason: reason, Name: name, Span: span})
}

// CheckExpr reports whether expr is well formed under vars: every identifier
// it mentions must be a member.
func (c *Checker) CheckExpr(expr ast.Expr, vars VarSet) bool {
	switch e := expr.(type) {
	case *ast.BoolLiteral:
		return true
	case *ast.NandExpression:
		left := c.CheckExpr(e.Left, vars)
		right := c.CheckExpr(e.Right, vars)
		return left && right
	case *ast.Identifier:
		if !vars.Contains(e.Name) {
			c.report(ReasonUndeclaredVariable, e.Name, e.Span())
			return false
		}
		return true
	}
	return false
}

// CheckStmt checks stmt under vars and, on success, returns the set of names
// in scope afterwards. vars itself is never mutated.
//
// Scope rules: Decl grows the set, Seq threads it forward, If and While
// check their body under the current set but discard whatever the body
// declared, and Free leaves the set untouched.
func (c *Checker) CheckStmt(stmt ast.Stmt, vars VarSet) (VarSet, bool) {
	switch s := stmt.(type) {
	case *ast.DeclStatement:
		if vars.Contains(s.Name) {
			c.report(ReasonRedeclaredVariable, s.Name, s.Span())
			return nil, false
		}
		if !c.CheckExpr(s.Value, vars) {
			return nil, false
		}
		grown := vars.Clone()
		grown[s.Name] = struct{}{}
		return grown, true
	case *ast.AssignStatement:
		if !vars.Contains(s.Target) {
			c.report(ReasonUndeclaredVariable, s.Target, s.Span())
			return nil, false
		}
		if !c.CheckExpr(s.Value, vars) {
			return nil, false
		}
		return vars, true
	case *ast.IfStatement:
		if !c.CheckExpr(s.Cond, vars) {
			return nil, false
		}
		if _, ok := c.CheckStmt(s.Body, vars); !ok {
			return nil, false
		}
		// Body declarations stay local to the block.
		return vars, true
	case *ast.WhileStatement:
		if !c.CheckExpr(s.Cond, vars) {
			return nil, false
		}
		if _, ok := c.CheckStmt(s.Body, vars); !ok {
			return nil, false
		}
		return vars, true
	case *ast.SeqStatement:
		mid, ok := c.CheckStmt(s.First, vars)
		if !ok {
			return nil, false
		}
		return c.CheckStmt(s.Second, mid)
	case *ast.FreeStatement:
		if !vars.Contains(s.Name) {
			c.report(ReasonUndeclaredVariable, s.Name, s.Span())
			return nil, false
		}
		// Conservative: the name stays in the set. See the package comment.
		return vars, true
	}
	return nil, false
}

// Check is the whole-program entry point: it checks program under the empty
// scope and returns the final declared set, any diagnostics, and the
// verdict. A rejected program must not be handed to the interpreter.
func Check(program ast.Stmt) (VarSet, []Diagnostic, bool) {
	checker := New()
	out, ok := checker.CheckStmt(program, NewVarSet())
	return out, checker.Diagnostics(), ok
}
