// ==============================================================================================
// FILE: evaluator/logic.go
// ==============================================================================================
// Grounded on functions.rs's "and"/"or"/"not" arms.
// ==============================================================================================

package evaluator

import "github.com/stack-community/stack-lang/value"

func init() {
	registerCommand("and", func(e *Evaluator) {
		b, a := e.popBool(), e.popBool()
		e.Push(value.Bool(a && b))
	})
	registerCommand("or", func(e *Evaluator) {
		b, a := e.popBool(), e.popBool()
		e.Push(value.Bool(a || b))
	})
	registerCommand("not", func(e *Evaluator) {
		e.Push(value.Bool(!e.popBool()))
	})
}
