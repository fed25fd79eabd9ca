// ==============================================================================================
// FILE: repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: The interactive front end. Adapted from the teacher's repl.Start(io.Reader,
//          io.Writer) line-at-a-time loop into spec.md §6's buffer-until-blank-line form: the
//          REPL accumulates lines until it sees a blank one, then runs the whole buffer through
//          a single persistent Evaluator and loops forever.
// ==============================================================================================

package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/stack-community/stack-lang/capability"
	"github.com/stack-community/stack-lang/evaluator"
)

const (
	prompt       = "stack> "
	continuation = "   ... "
	reset        = "\033[0m"
	cyan         = "\033[36m"
	gray         = "\033[37m"
)

// Start launches the read-accumulate-eval-print loop. in/out are the same
// streams the Evaluator's capability.Bundle will use for `print`/`input`,
// so REPL prompts and program output share one console. debug seeds the
// Evaluator's trace flag; spec.md has no REPL command to toggle it, so it
// is fixed for the session by the `-d`/`--debug` CLI flag.
func Start(in io.Reader, out io.Writer, debug bool) {
	scanner := bufio.NewScanner(in)

	caps := capability.Default()
	caps.In = in
	caps.Out = out

	e := evaluator.New(caps)
	e.Debug = debug

	fmt.Fprintln(out, gray+"Stack interactive shell — blank line runs the buffer, Ctrl-D exits."+reset)

	for {
		fmt.Fprint(out, cyan+prompt+reset)
		var buf strings.Builder
		haveInput := false

		for {
			if !scanner.Scan() {
				if haveInput {
					e.Run(buf.String())
				}
				return
			}
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				break
			}
			if haveInput {
				buf.WriteByte('\n')
			}
			buf.WriteString(line)
			haveInput = true
			fmt.Fprint(out, gray+continuation+reset)
		}

		if haveInput {
			e.Run(buf.String())
		}
	}
}
