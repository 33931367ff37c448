package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  fml run [file.fml]")
	fmt.Fprintln(os.Stderr, "  fml run --steps=N <file.fml>")
	fmt.Fprintln(os.Stderr, "  fml check <file.fml>")
	fmt.Fprintln(os.Stderr, "  fml <file.fml>")
	fmt.Fprintln(os.Stderr, "  fml fmt <file.fml>")
	fmt.Fprintln(os.Stderr, "  fml repl")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "With no file argument, run and check read the entry from formal.yml")
	fmt.Fprintln(os.Stderr, "in the working directory.")
}
