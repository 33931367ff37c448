package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"formallang/interpreter-go/pkg/interpreter"
	"formallang/interpreter-go/pkg/parser"
	"formallang/interpreter-go/pkg/runtime"
	"formallang/interpreter-go/pkg/typechecker"
)

// runRepl reads one statement or expression per line, threading a persistent
// scope and runtime state. Each statement is checked against the current
// scope before it runs, so the REPL enjoys the same no-fault guarantee as
// whole programs.
func runRepl(args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "fml repl does not take arguments (received %s)\n", strings.Join(args, " "))
		return 1
	}

	vars := typechecker.NewVarSet()
	state := runtime.NewState()
	interp := interpreter.New()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprint(os.Stdout, "fml> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			fmt.Fprint(os.Stdout, "fml> ")
			continue
		case ":quit", ":q":
			return 0
		case ":scope":
			fmt.Fprintln(os.Stdout, strings.Join(vars.Names(), " "))
			fmt.Fprint(os.Stdout, "fml> ")
			continue
		}
		vars = evalLine(line, vars, state, interp)
		fmt.Fprint(os.Stdout, "fml> ")
	}
	return 0
}

func evalLine(line string, vars typechecker.VarSet, state *runtime.State, interp *interpreter.Interpreter) typechecker.VarSet {
	if stmt, err := parser.Parse(line); err == nil {
		checker := typechecker.New()
		next, ok := checker.CheckStmt(stmt, vars)
		if !ok {
			for _, diag := range checker.Diagnostics() {
				fmt.Fprintln(os.Stderr, diag)
			}
			return vars
		}
		if err := interp.EvalStmt(stmt, state); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return vars
		}
		return next
	}

	expr, err := parser.ParseExpr(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return vars
	}
	checker := typechecker.New()
	if !checker.CheckExpr(expr, vars) {
		for _, diag := range checker.Diagnostics() {
			fmt.Fprintln(os.Stderr, diag)
		}
		return vars
	}
	value, err := interp.EvalExpr(expr, state)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return vars
	}
	fmt.Fprintf(os.Stdout, "%t\n", value)
	return vars
}
