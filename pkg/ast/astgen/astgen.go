// Package astgen produces random FormalLang programs for property tests.
// Generated programs are well formed by construction: the generator threads
// the same declared-name set the typechecker does, so every reference it
// emits resolves and every declaration is fresh. Free statements are opt-in
// because a conditionally freed variable can legitimately fault at runtime
// even in an accepted program.
package astgen

import (
	"fmt"
	"math/rand"
	"sort"

	"formallang/interpreter-go/pkg/ast"
)

// Config bounds the shape of generated programs.
type Config struct {
	MaxDepth    int
	MaxSeqLen   int
	IncludeFree bool
}

// DefaultConfig keeps trees small enough to shrink by eye when a property
// fails.
func DefaultConfig() Config {
	return Config{MaxDepth: 4, MaxSeqLen: 4}
}

// Generator emits random programs from a seeded source.
type Generator struct {
	rng    *rand.Rand
	config Config
	nextID int
}

// New constructs a generator. Equal seeds give equal programs.
func New(seed int64, config Config) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed)), config: config}
}

// Program generates a statement tree that the typechecker accepts under the
// empty scope.
func (g *Generator) Program() ast.Stmt {
	return g.stmtList(map[string]bool{}, g.config.MaxDepth)
}

// stmtList builds a Seq chain, threading scope forward the way Seq checking
// does. scope maps declared names to whether a Free has been emitted for
// them somewhere (freed names are never freed again at the same level, to
// keep straight-line programs fault-free).
func (g *Generator) stmtList(scope map[string]bool, depth int) ast.Stmt {
	length := 1 + g.rng.Intn(g.config.MaxSeqLen)
	stmts := make([]ast.Stmt, 0, length)
	for len(stmts) < length {
		stmts = append(stmts, g.stmt(scope, depth))
	}
	return ast.Block(stmts...)
}

func (g *Generator) stmt(scope map[string]bool, depth int) ast.Stmt {
	for {
		switch g.rng.Intn(6) {
		case 0:
			name := g.freshName(scope)
			stmt := ast.Decl(name, g.expr(scope, depth))
			scope[name] = false
			return stmt
		case 1:
			target, ok := g.liveName(scope)
			if !ok {
				continue
			}
			return ast.Assign(target, g.expr(scope, depth))
		case 2:
			if depth <= 0 {
				continue
			}
			return ast.If(g.expr(scope, depth), g.body(scope, depth-1))
		case 3:
			if depth <= 0 {
				continue
			}
			// Condition is guaranteed false so generated loops terminate;
			// the body still exercises checking and scope discard.
			cond := ast.Nand(ast.True(), ast.True())
			return ast.While(cond, g.body(scope, depth-1))
		case 4:
			if !g.config.IncludeFree {
				continue
			}
			name, ok := g.liveName(scope)
			if !ok {
				continue
			}
			scope[name] = true
			return ast.Free(name)
		default:
			name := g.freshName(scope)
			stmt := ast.Decl(name, g.expr(scope, depth))
			scope[name] = false
			return stmt
		}
	}
}

// body generates a block statement under a copy of scope, discarding the
// copy afterwards, mirroring If/While scoping. Frees inside the block leak
// into the enclosing freed tracking because they persist at runtime.
func (g *Generator) body(scope map[string]bool, depth int) ast.Stmt {
	inner := make(map[string]bool, len(scope))
	for name, freed := range scope {
		inner[name] = freed
	}
	stmt := g.stmtList(inner, depth)
	for name := range scope {
		scope[name] = inner[name]
	}
	return stmt
}

func (g *Generator) expr(scope map[string]bool, depth int) ast.Expr {
	if depth <= 0 {
		return g.leaf(scope)
	}
	switch g.rng.Intn(3) {
	case 0:
		return g.leaf(scope)
	default:
		return ast.Nand(g.expr(scope, depth-1), g.expr(scope, depth-1))
	}
}

func (g *Generator) leaf(scope map[string]bool) ast.Expr {
	if name, ok := g.liveName(scope); ok && g.rng.Intn(2) == 0 {
		return ast.ID(name)
	}
	return ast.Bool(g.rng.Intn(2) == 0)
}

// liveName picks a declared, not-yet-freed name.
func (g *Generator) liveName(scope map[string]bool) (string, bool) {
	live := make([]string, 0, len(scope))
	for name, freed := range scope {
		if !freed {
			live = append(live, name)
		}
	}
	if len(live) == 0 {
		return "", false
	}
	// Deterministic order so equal seeds give equal programs.
	sort.Strings(live)
	return live[g.rng.Intn(len(live))], true
}

func (g *Generator) freshName(scope map[string]bool) string {
	for {
		name := fmt.Sprintf("v%d", g.nextID)
		g.nextID++
		if _, taken := scope[name]; !taken {
			return name
		}
	}
}
