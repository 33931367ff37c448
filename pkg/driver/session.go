package driver

import (
	"errors"

	"formallang/interpreter-go/pkg/interpreter"
	"formallang/interpreter-go/pkg/typechecker"
)

// Verdict summarises how a pipeline run ended.
type Verdict string

const (
	VerdictRejected   Verdict = "rejected"
	VerdictCompleted  Verdict = "completed"
	VerdictFaulted    Verdict = "faulted"
	VerdictOutOfSteps Verdict = "out-of-steps"
)

// Report is the outcome of checking and (if accepted) running a program.
type Report struct {
	Verdict     Verdict
	Diagnostics []typechecker.Diagnostic
	FaultCode   interpreter.FaultCode
	Bindings    map[string]bool
	Steps       uint64
}

// Session carries execution options across runs.
type Session struct {
	StepBudget uint64
}

// Execute checks program and, when accepted, evaluates it. Faults and an
// exhausted step budget are reported as verdicts, not returned as errors;
// the error return is reserved for host-level failures.
func (s *Session) Execute(program *Program) (*Report, error) {
	report := &Report{}

	_, diagnostics, ok := typechecker.Check(program.AST)
	report.Diagnostics = diagnostics
	if !ok {
		report.Verdict = VerdictRejected
		return report, nil
	}

	var opts []interpreter.Option
	if s.StepBudget > 0 {
		opts = append(opts, interpreter.WithStepBudget(s.StepBudget))
	}
	interp := interpreter.New(opts...)
	state, err := interp.Run(program.AST)
	report.Steps = interp.Steps()
	switch {
	case err == nil:
		report.Verdict = VerdictCompleted
		report.Bindings = state.Bindings()
	case errors.Is(err, interpreter.ErrStepBudget):
		report.Verdict = VerdictOutOfSteps
		report.Bindings = state.Bindings()
	default:
		report.Verdict = VerdictFaulted
		report.FaultCode = interpreter.FaultCodeOf(err)
		if report.FaultCode == "" {
			return nil, err
		}
	}
	return report, nil
}
