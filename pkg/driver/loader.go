// Package driver wires the FormalLang pipeline together: it loads source
// files, runs the typechecker, hands accepted programs to the interpreter,
// and renders the outcome as a Report. Hosts (the CLI, fixtures, embedding
// programs) go through this package rather than assembling the stages by
// hand.
package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"formallang/interpreter-go/pkg/ast"
	"formallang/interpreter-go/pkg/parser"
)

// Program is one parsed source file.
type Program struct {
	Path   string
	Source string
	AST    ast.Stmt
}

// LoadProgram reads and parses the file at path.
func LoadProgram(path string) (*Program, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("driver: resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	return ParseSource(abs, string(data))
}

// ParseSource parses source attributed to path (which may be a synthetic
// name such as "<repl>").
func ParseSource(path, source string) (*Program, error) {
	tree, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("driver: parse %s: %w", path, err)
	}
	return &Program{Path: path, Source: source, AST: tree}, nil
}
