package main

import (
	"fmt"
	"os"

	"formallang/interpreter-go/pkg/driver"
	"formallang/interpreter-go/pkg/printer"
)

// runFmt prints the canonical rendering of a program to stdout.
func runFmt(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "fml fmt takes exactly one file")
		return 1
	}
	program, err := driver.LoadProgram(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	fmt.Fprint(os.Stdout, printer.Print(program.AST))
	return 0
}
