package typechecker

import (
	"testing"

	"formallang/interpreter-go/pkg/ast"
)

func TestCheckExprRules(t *testing.T) {
	vars := NewVarSet("x")
	cases := []struct {
		name string
		expr ast.Expr
		want bool
	}{
		{"true literal", ast.True(), true},
		{"false literal", ast.False(), true},
		{"bound identifier", ast.ID("x"), true},
		{"unbound identifier", ast.ID("y"), false},
		{"nand of literals", ast.Nand(ast.True(), ast.False()), true},
		{"nand with unbound left", ast.Nand(ast.ID("y"), ast.True()), false},
		{"nand with unbound right", ast.Nand(ast.True(), ast.ID("y")), false},
		{"deeply nested bound", ast.Nand(ast.Nand(ast.ID("x"), ast.ID("x")), ast.ID("x")), true},
	}
	for _, tc := range cases {
		if got := New().CheckExpr(tc.expr, vars); got != tc.want {
			t.Errorf("%s: CheckExpr = %t, want %t", tc.name, got, tc.want)
		}
	}
}

func TestDeclGrowsScope(t *testing.T) {
	out, ok := New().CheckStmt(ast.Decl("x", ast.True()), NewVarSet())
	if !ok {
		t.Fatal("fresh declaration rejected")
	}
	if !out.Contains("x") {
		t.Fatal("declaration did not add name to scope")
	}
}

func TestDeclRejectsRedeclaration(t *testing.T) {
	checker := New()
	if _, ok := checker.CheckStmt(ast.Decl("x", ast.True()), NewVarSet("x")); ok {
		t.Fatal("redeclaration accepted")
	}
	diags := checker.Diagnostics()
	if len(diags) != 1 || diags[0].Reason != ReasonRedeclaredVariable || diags[0].Name != "x" {
		t.Fatalf("diagnostics = %v, want one redeclared-variable on x", diags)
	}
}

func TestAssignRequiresTarget(t *testing.T) {
	checker := New()
	if _, ok := checker.CheckStmt(ast.Assign("x", ast.True()), NewVarSet()); ok {
		t.Fatal("assignment to undeclared variable accepted")
	}
	diags := checker.Diagnostics()
	if len(diags) != 1 || diags[0].Reason != ReasonUndeclaredVariable {
		t.Fatalf("diagnostics = %v, want one undeclared-variable", diags)
	}

	out, ok := New().CheckStmt(ast.Assign("x", ast.ID("x")), NewVarSet("x"))
	if !ok {
		t.Fatal("valid assignment rejected")
	}
	if len(out) != 1 {
		t.Fatalf("assignment changed scope: %v", out.Names())
	}
}

func TestSeqThreadsScopeForward(t *testing.T) {
	program := ast.Seq(
		ast.Decl("x", ast.True()),
		ast.Assign("x", ast.Nand(ast.ID("x"), ast.ID("x"))),
	)
	out, ok := New().CheckStmt(program, NewVarSet())
	if !ok {
		t.Fatal("declaration should be visible to the next statement in a Seq")
	}
	if !out.Contains("x") {
		t.Fatal("Seq dropped the declared name")
	}
}

func TestIfBodyScopeIsDiscarded(t *testing.T) {
	// y is local to the if body and unusable afterwards.
	rejected := ast.Seq(
		ast.Decl("x", ast.True()),
		ast.Seq(
			ast.If(ast.True(), ast.Decl("y", ast.True())),
			ast.Assign("x", ast.ID("y")),
		),
	)
	if _, ok := New().CheckStmt(rejected, NewVarSet()); ok {
		t.Fatal("reference to if-local variable accepted")
	}

	// Mutating an outer variable inside the if is fine.
	accepted := ast.Seq(
		ast.Decl("x", ast.True()),
		ast.Seq(
			ast.If(ast.True(), ast.Assign("x", ast.False())),
			ast.Assign("x", ast.ID("x")),
		),
	)
	out, ok := New().CheckStmt(accepted, NewVarSet())
	if !ok {
		t.Fatal("mutation through if rejected")
	}
	if out.Contains("y") {
		t.Fatal("discarded body scope leaked")
	}
}

func TestWhileBodyScopeIsDiscarded(t *testing.T) {
	program := ast.Seq(
		ast.While(ast.False(), ast.Decl("tmp", ast.True())),
		ast.Assign("tmp", ast.False()),
	)
	if _, ok := New().CheckStmt(program, NewVarSet()); ok {
		t.Fatal("while-local variable visible after the loop")
	}
}

func TestInnerDeclMayShadowNothing(t *testing.T) {
	// A body declaration still collides with an enclosing name: there is no
	// shadowing in this language.
	program := ast.Seq(
		ast.Decl("x", ast.True()),
		ast.If(ast.ID("x"), ast.Decl("x", ast.False())),
	)
	if _, ok := New().CheckStmt(program, NewVarSet()); ok {
		t.Fatal("body redeclaration of enclosing name accepted")
	}
}

func TestFreeKeepsNameInScope(t *testing.T) {
	checker := New()
	program := ast.Seq(
		ast.Decl("x", ast.True()),
		ast.Seq(ast.Free("x"), ast.Assign("x", ast.False())),
	)
	// Conservative rule: the checker cannot know whether a free executed,
	// so the name stays checkable. The runtime may still fault here.
	if _, ok := checker.CheckStmt(program, NewVarSet()); !ok {
		t.Fatal("use after free should pass the conservative checker")
	}
}

func TestFreeRequiresDeclaredName(t *testing.T) {
	if _, ok := New().CheckStmt(ast.Free("ghost"), NewVarSet()); ok {
		t.Fatal("free of undeclared name accepted")
	}
}

func TestCheckIsPure(t *testing.T) {
	vars := NewVarSet("a")
	program := ast.Decl("b", ast.ID("a"))

	first, ok1 := New().CheckStmt(program, vars)
	second, ok2 := New().CheckStmt(program, vars)
	if ok1 != ok2 {
		t.Fatal("verdict changed between identical runs")
	}
	if len(first) != len(second) || !first.Contains("b") || !second.Contains("b") {
		t.Fatalf("output sets differ: %v vs %v", first.Names(), second.Names())
	}
	if len(vars) != 1 || !vars.Contains("a") {
		t.Fatalf("input set mutated: %v", vars.Names())
	}
}

func TestCheckEntryStartsEmpty(t *testing.T) {
	if _, _, ok := Check(ast.Assign("x", ast.True())); ok {
		t.Fatal("entry point should start from the empty scope")
	}

	out, diags, ok := Check(ast.Decl("x", ast.True()))
	if !ok || len(diags) != 0 {
		t.Fatalf("valid program rejected: %v", diags)
	}
	if len(out) != 1 || !out.Contains("x") {
		t.Fatalf("final scope = %v, want {x}", out.Names())
	}
}

func TestDiagnosticCarriesSpan(t *testing.T) {
	ident := ast.ID("y")
	ast.SetSpan(ident, ast.Span{Line: 7, Column: 3, EndLine: 7, EndColumn: 4})

	checker := New()
	checker.CheckExpr(ident, NewVarSet())
	diags := checker.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("want one diagnostic, got %d", len(diags))
	}
	if diags[0].Span.Line != 7 || diags[0].Span.Column != 3 {
		t.Fatalf("diagnostic span = %+v, want line 7 column 3", diags[0].Span)
	}
}
