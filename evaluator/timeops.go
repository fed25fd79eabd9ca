// ==============================================================================================
// FILE: evaluator/timeops.go
// ==============================================================================================
// Grounded on functions.rs's "now-time"/"sleep" arms.
// ==============================================================================================

package evaluator

import (
	"time"

	"github.com/stack-community/stack-lang/value"
)

func init() {
	registerCommand("now-time", func(e *Evaluator) {
		e.Push(value.Number(float64(time.Now().UnixNano()) / 1e9))
	})

	registerCommand("sleep", func(e *Evaluator) {
		seconds := e.popNumber()
		if seconds > 0 {
			time.Sleep(time.Duration(seconds * float64(time.Second)))
		}
	})
}
