package interpreter

import (
	"errors"
	"testing"

	"formallang/interpreter-go/pkg/ast"
	"formallang/interpreter-go/pkg/runtime"
)

func TestNandTruthTable(t *testing.T) {
	cases := []struct {
		left, right, want bool
	}{
		{true, true, false},
		{true, false, true},
		{false, true, true},
		{false, false, true},
	}
	interp := New()
	state := runtime.NewState()
	for _, tc := range cases {
		got, err := interp.EvalExpr(ast.Nand(ast.Bool(tc.left), ast.Bool(tc.right)), state)
		if err != nil {
			t.Fatalf("nand(%t, %t) faulted: %v", tc.left, tc.right, err)
		}
		if got != tc.want {
			t.Errorf("nand(%t, %t) = %t, want %t", tc.left, tc.right, got, tc.want)
		}
	}
}

func TestDeclBindsAndAssignMutates(t *testing.T) {
	program := ast.Block(
		ast.Decl("x", ast.True()),
		ast.Assign("x", ast.Nand(ast.ID("x"), ast.ID("x"))),
	)
	state, err := Run(program)
	if err != nil {
		t.Fatalf("run faulted: %v", err)
	}
	if value := state.Bindings()["x"]; value {
		t.Fatal("x should be false after self-NAND assignment")
	}
}

func TestIfScopeDiscardKeepsEffects(t *testing.T) {
	// The block-local y vanishes; the write to x persists.
	program := ast.Block(
		ast.Decl("x", ast.True()),
		ast.If(ast.ID("x"), ast.Block(
			ast.Decl("y", ast.False()),
			ast.Assign("x", ast.False()),
		)),
	)
	state, err := Run(program)
	if err != nil {
		t.Fatalf("run faulted: %v", err)
	}
	if _, bound := state.Env["y"]; bound {
		t.Fatal("if-local variable survived the block")
	}
	if value, ok := state.Bindings()["x"]; !ok || value {
		t.Fatalf("x = %t, want false after mutation inside if", value)
	}
}

func TestIfFalseSkipsBody(t *testing.T) {
	program := ast.Block(
		ast.Decl("x", ast.True()),
		ast.If(ast.False(), ast.Assign("x", ast.False())),
	)
	state, err := Run(program)
	if err != nil {
		t.Fatalf("run faulted: %v", err)
	}
	if !state.Bindings()["x"] {
		t.Fatal("body of a false if ran")
	}
}

func TestFreeInsideIfPersists(t *testing.T) {
	program := ast.Block(
		ast.Decl("x", ast.True()),
		ast.If(ast.True(), ast.Free("x")),
	)
	state, err := Run(program)
	if err != nil {
		t.Fatalf("run faulted: %v", err)
	}
	if !state.Freed.Contains("x") {
		t.Fatal("free inside if was rolled back at block exit")
	}
	loc := state.Env["x"]
	if _, live := state.Mem[loc]; live {
		t.Fatal("freed cell still present in memory")
	}
}

func TestWhileComputesFixpoint(t *testing.T) {
	// Loop flips x to false on the first iteration, then the condition
	// fails and the loop exits.
	program := ast.Block(
		ast.Decl("x", ast.True()),
		ast.While(ast.ID("x"), ast.Assign("x", ast.Nand(ast.ID("x"), ast.ID("x")))),
	)
	state, err := Run(program)
	if err != nil {
		t.Fatalf("run faulted: %v", err)
	}
	if state.Bindings()["x"] {
		t.Fatal("loop exited with a true condition")
	}
}

func TestWhileTrueExhaustsBudgetWithoutFault(t *testing.T) {
	program := ast.Block(
		ast.Decl("x", ast.True()),
		ast.While(ast.True(), ast.Assign("x", ast.ID("x"))),
	)
	interp := New(WithStepBudget(1000))
	_, err := interp.Run(program)
	if !errors.Is(err, ErrStepBudget) {
		t.Fatalf("infinite loop returned %v, want ErrStepBudget", err)
	}
	if code := FaultCodeOf(err); code != "" {
		t.Fatalf("infinite loop produced fault %s; non-termination is not a fault", code)
	}
}

func TestAllocatorFreshnessAcrossDecls(t *testing.T) {
	program := ast.Block(
		ast.Decl("a", ast.True()),
		ast.Decl("b", ast.False()),
		ast.Decl("c", ast.True()),
		ast.Decl("d", ast.False()),
	)
	state, err := Run(program)
	if err != nil {
		t.Fatalf("run faulted: %v", err)
	}
	seen := make(map[runtime.Location]string)
	for name, loc := range state.Env {
		if other, dup := seen[loc]; dup {
			t.Fatalf("%s and %s share location %d", name, other, loc)
		}
		seen[loc] = name
		if state.NextLocation() <= loc {
			t.Fatalf("bump pointer %d not past live location %d", state.NextLocation(), loc)
		}
	}
}

func TestUseAfterFreeFaults(t *testing.T) {
	program := ast.Block(
		ast.Decl("x", ast.True()),
		ast.Free("x"),
		ast.Assign("x", ast.ID("x")),
	)
	// The conservative checker accepts this; the runtime must fault rather
	// than return a stale value.
	_, err := Run(program)
	if code := FaultCodeOf(err); code != FaultInvalidLocation {
		t.Fatalf("use after free returned %v, want invalid-location fault", err)
	}
}

func TestDoubleFreeFaults(t *testing.T) {
	program := ast.Block(
		ast.Decl("x", ast.True()),
		ast.Free("x"),
		ast.Free("x"),
	)
	_, err := Run(program)
	if code := FaultCodeOf(err); code != FaultAlreadyFreed {
		t.Fatalf("double free returned %v, want already-freed fault", err)
	}
}

func TestConditionalFreeGap(t *testing.T) {
	// The documented soundness gap: the checker cannot tell the branch
	// freed x, so this program is accepted yet faults at runtime.
	program := ast.Block(
		ast.Decl("x", ast.True()),
		ast.If(ast.ID("x"), ast.Free("x")),
		ast.Assign("x", ast.False()),
	)
	_, err := Run(program)
	if errors.Is(err, ErrRejected) {
		t.Fatal("checker must not be tightened to reject conditional frees")
	}
	if code := FaultCodeOf(err); code != FaultInvalidLocation {
		t.Fatalf("conditionally freed use returned %v, want invalid-location fault", err)
	}
}

func TestRunRejectsUncheckedPrograms(t *testing.T) {
	_, err := Run(ast.Assign("ghost", ast.True()))
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("unchecked program returned %v, want ErrRejected", err)
	}
}

func TestDefensiveFaultsOnBypassedChecker(t *testing.T) {
	interp := New()

	state := runtime.NewState()
	err := interp.EvalStmt(ast.Assign("ghost", ast.True()), state)
	if code := FaultCodeOf(err); code != FaultUndeclaredVariable {
		t.Fatalf("assign to unbound name returned %v, want undeclared-variable", err)
	}

	state = runtime.NewState()
	if err := interp.EvalStmt(ast.Decl("x", ast.True()), state); err != nil {
		t.Fatalf("setup decl faulted: %v", err)
	}
	err = interp.EvalStmt(ast.Decl("x", ast.False()), state)
	if code := FaultCodeOf(err); code != FaultRedeclaredVariable {
		t.Fatalf("redeclaration returned %v, want redeclared-variable", err)
	}

	state = runtime.NewState()
	_, err = interp.EvalExpr(ast.ID("ghost"), state)
	if code := FaultCodeOf(err); code != FaultUndeclaredVariable {
		t.Fatalf("unbound read returned %v, want undeclared-variable", err)
	}
}

func TestDeclEvaluatesValueBeforeBinding(t *testing.T) {
	// `let x = x;` must fault on the reference, not bind x to itself.
	state := runtime.NewState()
	err := New().EvalStmt(ast.Decl("x", ast.ID("x")), state)
	if code := FaultCodeOf(err); code != FaultUndeclaredVariable {
		t.Fatalf("self-referential decl returned %v, want undeclared-variable", err)
	}
	if _, bound := state.Env["x"]; bound {
		t.Fatal("failed decl left a binding behind")
	}
}
