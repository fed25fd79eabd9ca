// ==============================================================================================
// FILE: evaluator/control.go
// ==============================================================================================
// Grounded on functions.rs's "eval"/"if"/"while"/"exit" arms; `thread` is split out into
// thread.go since spawning a detached goroutine over a snapshot deserves its own grounding note.
// ==============================================================================================

package evaluator

import "os"

func init() {
	registerCommand("eval", func(e *Evaluator) {
		code := e.popString()
		e.Run(code)
	})

	registerCommand("if", func(e *Evaluator) {
		cond := e.popBool()
		codeElse := e.popString()
		codeIf := e.popString()
		if cond {
			e.Run(codeIf)
		} else {
			e.Run(codeElse)
		}
	})

	registerCommand("while", func(e *Evaluator) {
		condText := e.popString()
		bodyText := e.popString()
		for {
			e.Run(condText)
			if !e.popBool() {
				break
			}
			e.Run(bodyText)
		}
	})

	registerCommand("exit", func(e *Evaluator) {
		status := e.popNumber()
		os.Exit(int(status))
	})
}
