// Package runtime holds the FormalLang execution state: the environment
// mapping names to locations, the memory mapping locations to booleans, the
// set of freed names, and the bump allocator that mints fresh locations. The
// interpreter owns exactly one State per run and mutates it in place;
// lexical blocks snapshot and restore the environment around their bodies so
// local declarations vanish while memory writes and frees persist.
package runtime

// Location is an opaque handle to a memory cell. Locations are totally
// ordered and a live location's number is never reused.
type Location uint64

// Environment maps variable names to locations. Keys are exactly the
// currently declared variables.
type Environment map[string]Location

// Snapshot returns an independent copy of the environment. Blocks take a
// snapshot before evaluating their body and restore it afterwards.
func (e Environment) Snapshot() Environment {
	clone := make(Environment, len(e))
	for name, loc := range e {
		clone[name] = loc
	}
	return clone
}

// Memory maps locations to stored boolean values.
type Memory map[Location]bool

// FreedSet records names that have been explicitly freed.
type FreedSet map[string]struct{}

// Contains reports whether name has been freed.
func (f FreedSet) Contains(name string) bool {
	_, ok := f[name]
	return ok
}

// State is the full runtime state threaded through statement evaluation.
//
// Invariants maintained by the interpreter:
//   - every location reachable through Env is a key of Mem
//   - next is strictly greater than every key of Mem
type State struct {
	Env   Environment
	Freed FreedSet
	Mem   Memory

	next Location
}

// NewState returns the empty initial state: no variables, no memory, next
// location zero.
func NewState() *State {
	return &State{
		Env:   make(Environment),
		Freed: make(FreedSet),
		Mem:   make(Memory),
	}
}

// Allocate returns a location distinct from every location in Mem and
// advances the bump pointer. Allocation cannot fail and never hands out a
// previously used number, even after a Free.
func (s *State) Allocate() Location {
	loc := s.next
	s.next++
	return loc
}

// NextLocation exposes the bump pointer for invariant checks.
func (s *State) NextLocation() Location {
	return s.next
}

// Bindings renders the live variables as a name-to-value map, for reports
// and fixtures. Names whose location has been freed out from under them are
// omitted.
func (s *State) Bindings() map[string]bool {
	out := make(map[string]bool, len(s.Env))
	for name, loc := range s.Env {
		if value, ok := s.Mem[loc]; ok {
			out[name] = value
		}
	}
	return out
}
