// Package interpreter executes FormalLang programs over the runtime state in
// pkg/runtime. It is defined only for programs the typechecker accepts; Run
// re-checks its input and every lookup carries a defensive fault so a broken
// precondition surfaces as an error instead of silent misbehavior. Evaluation
// is purely sequential and, because of while, not guaranteed to terminate.
// Bounded execution is available as an explicit step budget option layered on
// top of the core semantics, never as an implicit limit.
package interpreter
