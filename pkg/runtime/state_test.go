package runtime

import "testing"

func TestAllocateReturnsDistinctLocations(t *testing.T) {
	state := NewState()
	seen := make(map[Location]struct{})
	for i := 0; i < 100; i++ {
		loc := state.Allocate()
		if _, dup := seen[loc]; dup {
			t.Fatalf("allocation %d returned reused location %d", i, loc)
		}
		seen[loc] = struct{}{}
		state.Mem[loc] = true

		for inUse := range state.Mem {
			if state.NextLocation() <= inUse {
				t.Fatalf("bump pointer %d not past live location %d", state.NextLocation(), inUse)
			}
		}
	}
}

func TestFreedLocationNumbersAreNotReused(t *testing.T) {
	state := NewState()
	first := state.Allocate()
	state.Mem[first] = true
	delete(state.Mem, first)

	second := state.Allocate()
	if second == first {
		t.Fatal("allocator handed out a freed location number")
	}
}

func TestEnvironmentSnapshotIsIndependent(t *testing.T) {
	state := NewState()
	loc := state.Allocate()
	state.Env["x"] = loc
	state.Mem[loc] = true

	saved := state.Env.Snapshot()
	inner := state.Allocate()
	state.Env["y"] = inner
	state.Mem[inner] = false

	if _, leaked := saved["y"]; leaked {
		t.Fatal("snapshot saw a binding added after it was taken")
	}

	state.Env = saved
	if _, ok := state.Env["y"]; ok {
		t.Fatal("restore did not drop the inner binding")
	}
	if _, ok := state.Env["x"]; !ok {
		t.Fatal("restore lost the outer binding")
	}
	// The memory write survives the restore; only scope is discarded.
	if value, ok := state.Mem[inner]; !ok || value {
		t.Fatal("memory cell written inside the block should persist")
	}
}

func TestBindingsOmitsDanglingNames(t *testing.T) {
	state := NewState()
	x := state.Allocate()
	state.Env["x"] = x
	state.Mem[x] = true

	y := state.Allocate()
	state.Env["y"] = y
	state.Mem[y] = false
	delete(state.Mem, y)

	bindings := state.Bindings()
	if value, ok := bindings["x"]; !ok || !value {
		t.Fatalf("bindings = %#v, want x=true", bindings)
	}
	if _, ok := bindings["y"]; ok {
		t.Fatal("freed name should not appear in bindings")
	}
}
