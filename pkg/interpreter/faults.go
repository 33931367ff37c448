package interpreter

import (
	"errors"
	"fmt"

	"formallang/interpreter-go/pkg/ast"
	"formallang/interpreter-go/pkg/runtime"
)

// FaultCode identifies the defensive invariant a fault tripped. None of
// these can occur for a checker-accepted program except AlreadyFreed and
// InvalidLocation on a conditionally freed variable; any other fault
// indicates an interpreter or checker bug.
type FaultCode string

const (
	FaultUndeclaredVariable FaultCode = "undeclared-variable"
	FaultInvalidLocation    FaultCode = "invalid-location"
	FaultRedeclaredVariable FaultCode = "redeclared-variable"
	FaultAlreadyFreed       FaultCode = "already-freed"
)

// Fault aborts evaluation. It propagates to the Run result as an error
// value; the interpreter never panics on one.
type Fault struct {
	Code     FaultCode
	Name     string
	Location runtime.Location
	Span     ast.Span
}

func (f *Fault) Error() string {
	switch f.Code {
	case FaultInvalidLocation:
		return fmt.Sprintf("interpreter: %s: %s (location %d)", f.Code, f.Name, f.Location)
	default:
		return fmt.Sprintf("interpreter: %s: %s", f.Code, f.Name)
	}
}

// ErrRejected is returned by Run when the program fails the typechecker
// precondition; the program was never evaluated.
var ErrRejected = errors.New("interpreter: program rejected by typechecker")

// ErrStepBudget is returned when an explicitly configured step budget runs
// out. It is a scheduling outcome, not a Fault: the program's semantics are
// simply still in progress.
var ErrStepBudget = errors.New("interpreter: step budget exhausted")

// FaultCodeOf extracts the fault code from an evaluation error, or "" if the
// error is not a Fault.
func FaultCodeOf(err error) FaultCode {
	var fault *Fault
	if errors.As(err, &fault) {
		return fault.Code
	}
	return ""
}
