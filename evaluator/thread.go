// ==============================================================================================
// FILE: evaluator/thread.go
// ==============================================================================================
// Grounded on functions.rs's "thread" arm (`let mut executor = executor.clone(); thread::spawn
// (move || executor.evaluate_program(code));`) and spec.md §5: a detached goroutine running a
// deep snapshot of the stack, environment, and debug flag, sharing no mutable state with the
// parent from then on.
// ==============================================================================================

package evaluator

import "github.com/stack-community/stack-lang/value"

func init() {
	registerCommand("thread", func(e *Evaluator) {
		code := e.popString()

		stackCopy := make([]value.Value, len(e.Stack))
		copy(stackCopy, e.Stack)

		child := &Evaluator{
			Stack: stackCopy,
			Env:   e.Env.Snapshot(),
			Debug: e.Debug,
			Caps:  e.Caps,
		}

		go child.Run(code)
	})
}
