package typechecker

import "sort"

// VarSet is the finite set of names the checker considers declared. It is
// the static counterpart of the runtime environment: no locations, just
// scope membership.
type VarSet map[string]struct{}

// NewVarSet builds a set from the given names.
func NewVarSet(names ...string) VarSet {
	set := make(VarSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether name is in scope.
func (v VarSet) Contains(name string) bool {
	_, ok := v[name]
	return ok
}

// Clone returns an independent copy. Checking never mutates its input set;
// rules that grow scope clone first.
func (v VarSet) Clone() VarSet {
	clone := make(VarSet, len(v))
	for name := range v {
		clone[name] = struct{}{}
	}
	return clone
}

// Names returns the members in sorted order, for deterministic reporting.
func (v VarSet) Names() []string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
