// Package printer renders FormalLang ASTs back to canonical source text.
// The output reparses to a structurally equal tree, which makes it usable
// both as a formatter and as the REPL's echo of what it understood.
package printer

import (
	"fmt"
	"strings"

	"formallang/interpreter-go/pkg/ast"
)

// Print renders a statement tree as formatted source, one statement per
// line, blocks indented with tabs, ending with a newline.
func Print(stmt ast.Stmt) string {
	var b strings.Builder
	writeStmt(&b, stmt, 0)
	return b.String()
}

// PrintExpr renders an expression. NAND chains print left-associatively,
// so parentheses appear only where the tree right-nests.
func PrintExpr(expr ast.Expr) string {
	var b strings.Builder
	writeExpr(&b, expr, false)
	return b.String()
}

func writeStmt(b *strings.Builder, stmt ast.Stmt, depth int) {
	switch s := stmt.(type) {
	case *ast.DeclStatement:
		indent(b, depth)
		fmt.Fprintf(b, "let %s = %s;\n", s.Name, PrintExpr(s.Value))
	case *ast.AssignStatement:
		indent(b, depth)
		fmt.Fprintf(b, "%s = %s;\n", s.Target, PrintExpr(s.Value))
	case *ast.IfStatement:
		indent(b, depth)
		fmt.Fprintf(b, "if %s {\n", PrintExpr(s.Cond))
		writeStmt(b, s.Body, depth+1)
		indent(b, depth)
		b.WriteString("}\n")
	case *ast.WhileStatement:
		indent(b, depth)
		fmt.Fprintf(b, "while %s {\n", PrintExpr(s.Cond))
		writeStmt(b, s.Body, depth+1)
		indent(b, depth)
		b.WriteString("}\n")
	case *ast.SeqStatement:
		writeStmt(b, s.First, depth)
		writeStmt(b, s.Second, depth)
	case *ast.FreeStatement:
		indent(b, depth)
		fmt.Fprintf(b, "free %s;\n", s.Name)
	}
}

func writeExpr(b *strings.Builder, expr ast.Expr, parenthesize bool) {
	switch e := expr.(type) {
	case *ast.BoolLiteral:
		fmt.Fprintf(b, "%t", e.Value)
	case *ast.Identifier:
		b.WriteString(e.Name)
	case *ast.NandExpression:
		if parenthesize {
			b.WriteString("(")
		}
		writeExpr(b, e.Left, false)
		b.WriteString(" nand ")
		_, rightNested := e.Right.(*ast.NandExpression)
		writeExpr(b, e.Right, rightNested)
		if parenthesize {
			b.WriteString(")")
		}
	}
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("\t")
	}
}
