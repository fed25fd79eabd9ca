// ==============================================================================================
// FILE: cmd/stack/main.go
// ==============================================================================================
// Grounded on the teacher's main.go script-vs-REPL branch (`len(os.Args) > 1` dispatches to
// runFile, otherwise repl.Start(os.Stdin, os.Stdout)), with the flag parsing adapted from
// goyang's yang.go use of github.com/pborman/getopt, and the debug-flag precedent taken
// straight from the original Rust `args[1].contains("d")` check in original_source/src/main.rs.
// ==============================================================================================

package main

import (
	"fmt"
	"os"

	"github.com/pborman/getopt"

	"github.com/stack-community/stack-lang/capability"
	"github.com/stack-community/stack-lang/evaluator"
	"github.com/stack-community/stack-lang/repl"
)

func main() {
	debug := getopt.BoolLong("debug", 'd', "enable debug trace output and [Output]: prefixing")
	getopt.Parse()
	args := getopt.Args()

	caps := capability.Default()

	if len(args) > 0 {
		runFile(args[0], *debug, caps)
		return
	}

	repl.Start(caps.In, caps.Out, *debug)
}

func runFile(path string, debug bool, caps *capability.Bundle) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stack: %s\n", err)
		os.Exit(1)
	}

	e := evaluator.New(caps)
	e.Debug = debug
	e.Run(string(data))
}
