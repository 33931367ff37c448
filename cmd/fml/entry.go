package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"formallang/interpreter-go/pkg/driver"
	"formallang/interpreter-go/pkg/typechecker"
)

type executionMode int

const (
	modeRun executionMode = iota
	modeCheck
)

var errManifestNotFound = errors.New("formal.yml not found")

func runEntry(args []string, mode executionMode) int {
	var stepBudget uint64
	var target string
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--steps="):
			parsed, err := strconv.ParseUint(strings.TrimPrefix(arg, "--steps="), 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid --steps value: %v\n", err)
				return 1
			}
			stepBudget = parsed
		case strings.HasPrefix(arg, "-"):
			fmt.Fprintf(os.Stderr, "unknown flag %s\n", arg)
			return 1
		case target != "":
			fmt.Fprintln(os.Stderr, "at most one program file may be given")
			return 1
		default:
			target = arg
		}
	}

	if target == "" {
		manifest, err := loadManifestFrom(".")
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		target = manifest.EntryPath()
		if stepBudget == 0 {
			stepBudget = manifest.StepBudget
		}
	}

	program, err := driver.LoadProgram(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	if mode == modeCheck {
		return reportCheck(program)
	}

	session := &driver.Session{StepBudget: stepBudget}
	report, err := session.Execute(program)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return printReport(report)
}

func reportCheck(program *driver.Program) int {
	_, diagnostics, ok := typechecker.Check(program.AST)
	if !ok {
		for _, diag := range diagnostics {
			fmt.Fprintf(os.Stderr, "%s: %s\n", program.Path, diag)
		}
		return 1
	}
	fmt.Fprintln(os.Stdout, "ok")
	return 0
}

func printReport(report *driver.Report) int {
	switch report.Verdict {
	case driver.VerdictRejected:
		for _, diag := range report.Diagnostics {
			fmt.Fprintln(os.Stderr, diag)
		}
		return 1
	case driver.VerdictFaulted:
		fmt.Fprintf(os.Stderr, "fault: %s\n", report.FaultCode)
		return 1
	case driver.VerdictOutOfSteps:
		fmt.Fprintf(os.Stderr, "stopped after %d steps\n", report.Steps)
		return 1
	default:
		printBindings(report.Bindings)
		return 0
	}
}

func printBindings(bindings map[string]bool) {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stdout, "%s = %t\n", name, bindings[name])
	}
}

func loadManifestFrom(dir string) (*driver.Manifest, error) {
	path := filepath.Join(dir, driver.ManifestFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errManifestNotFound
		}
		return nil, err
	}
	return driver.LoadManifest(path)
}
