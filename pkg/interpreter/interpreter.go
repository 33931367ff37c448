package interpreter

import (
	"fmt"

	"formallang/interpreter-go/pkg/ast"
	"formallang/interpreter-go/pkg/runtime"
	"formallang/interpreter-go/pkg/typechecker"
)

// Interpreter evaluates checked FormalLang programs. The zero value runs
// unbounded; see WithStepBudget.
type Interpreter struct {
	stepBudget uint64
	steps      uint64
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithStepBudget bounds evaluation to n statement steps. Each statement
// evaluation counts one step, so every iteration of a while loop consumes at
// least two (the while node and its body). Exceeding the budget aborts with
// ErrStepBudget. Zero means unbounded, which is the language's native
// semantics.
func WithStepBudget(n uint64) Option {
	return func(i *Interpreter) {
		i.stepBudget = n
	}
}

// New constructs an interpreter.
func New(opts ...Option) *Interpreter {
	interp := &Interpreter{}
	for _, opt := range opts {
		opt(interp)
	}
	return interp
}

// Steps reports how many statement steps the last Run consumed.
func (i *Interpreter) Steps() uint64 {
	return i.steps
}

// Run checks program and, if accepted, evaluates it from the empty state.
// Rejection returns ErrRejected without evaluating anything. The returned
// state is the final environment/memory; on a fault or exhausted budget the
// state reached so far is returned alongside the error.
func (i *Interpreter) Run(program ast.Stmt) (*runtime.State, error) {
	if _, _, ok := typechecker.Check(program); !ok {
		return nil, ErrRejected
	}
	state := runtime.NewState()
	i.steps = 0
	if err := i.EvalStmt(program, state); err != nil {
		return state, err
	}
	return state, nil
}

// EvalExpr evaluates expr against state.
func (i *Interpreter) EvalExpr(expr ast.Expr, state *runtime.State) (bool, error) {
	switch e := expr.(type) {
	case *ast.BoolLiteral:
		return e.Value, nil
	case *ast.NandExpression:
		left, err := i.EvalExpr(e.Left, state)
		if err != nil {
			return false, err
		}
		right, err := i.EvalExpr(e.Right, state)
		if err != nil {
			return false, err
		}
		return !(left && right), nil
	case *ast.Identifier:
		loc, ok := state.Env[e.Name]
		if !ok {
			return false, &Fault{Code: FaultUndeclaredVariable, Name: e.Name, Span: e.Span()}
		}
		value, ok := state.Mem[loc]
		if !ok {
			// The binding survived a Free of its cell; see package doc on
			// the conditional-free gap.
			return false, &Fault{Code: FaultInvalidLocation, Name: e.Name, Location: loc, Span: e.Span()}
		}
		return value, nil
	}
	return false, fmt.Errorf("interpreter: unsupported expression %T", expr)
}

// EvalStmt evaluates stmt, mutating state in place. Block bodies run against
// a snapshot-restored environment so their declarations vanish at block exit
// while memory writes and frees persist.
func (i *Interpreter) EvalStmt(stmt ast.Stmt, state *runtime.State) error {
	if i.stepBudget > 0 {
		if i.steps >= i.stepBudget {
			return ErrStepBudget
		}
		i.steps++
	}
	switch s := stmt.(type) {
	case *ast.DeclStatement:
		if _, bound := state.Env[s.Name]; bound {
			return &Fault{Code: FaultRedeclaredVariable, Name: s.Name, Span: s.Span()}
		}
		value, err := i.EvalExpr(s.Value, state)
		if err != nil {
			return err
		}
		loc := state.Allocate()
		state.Env[s.Name] = loc
		state.Mem[loc] = value
		return nil
	case *ast.AssignStatement:
		value, err := i.EvalExpr(s.Value, state)
		if err != nil {
			return err
		}
		loc, ok := state.Env[s.Target]
		if !ok {
			return &Fault{Code: FaultUndeclaredVariable, Name: s.Target, Span: s.Span()}
		}
		if _, ok := state.Mem[loc]; !ok {
			return &Fault{Code: FaultInvalidLocation, Name: s.Target, Location: loc, Span: s.Span()}
		}
		state.Mem[loc] = value
		return nil
	case *ast.IfStatement:
		cond, err := i.EvalExpr(s.Cond, state)
		if err != nil {
			return err
		}
		if !cond {
			return nil
		}
		return i.evalBody(s.Body, state)
	case *ast.WhileStatement:
		for {
			cond, err := i.EvalExpr(s.Cond, state)
			if err != nil {
				return err
			}
			if !cond {
				return nil
			}
			if err := i.evalBody(s.Body, state); err != nil {
				return err
			}
			if i.stepBudget > 0 {
				if i.steps >= i.stepBudget {
					return ErrStepBudget
				}
				i.steps++
			}
		}
	case *ast.SeqStatement:
		if err := i.EvalStmt(s.First, state); err != nil {
			return err
		}
		return i.EvalStmt(s.Second, state)
	case *ast.FreeStatement:
		loc, ok := state.Env[s.Name]
		if !ok {
			return &Fault{Code: FaultUndeclaredVariable, Name: s.Name, Span: s.Span()}
		}
		if state.Freed.Contains(s.Name) {
			return &Fault{Code: FaultAlreadyFreed, Name: s.Name, Span: s.Span()}
		}
		state.Freed[s.Name] = struct{}{}
		delete(state.Mem, loc)
		return nil
	}
	return fmt.Errorf("interpreter: unsupported statement %T", stmt)
}

// evalBody runs a block body with scope discard: the environment is
// snapshotted before and restored after, while Mem and Freed keep whatever
// the body did to them.
func (i *Interpreter) evalBody(body ast.Stmt, state *runtime.State) error {
	saved := state.Env.Snapshot()
	err := i.EvalStmt(body, state)
	state.Env = saved
	return err
}

// Run checks and evaluates program with default options; the common entry
// point for hosts that need no step budget.
func Run(program ast.Stmt) (*runtime.State, error) {
	return New().Run(program)
}
