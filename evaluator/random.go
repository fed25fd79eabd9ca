// ==============================================================================================
// FILE: evaluator/random.go
// ==============================================================================================
// Grounded on functions.rs's "rand"/"shuffle" arms (which use the `rand` crate's
// `choose`/`shuffle`); no third-party randomness library is grounded anywhere in the pack, so
// this stays on math/rand, the idiomatic Go default regardless.
// ==============================================================================================

package evaluator

import (
	"math/rand"

	"github.com/stack-community/stack-lang/value"
)

func init() {
	registerCommand("rand", func(e *Evaluator) {
		list := e.popList()
		if len(list) == 0 {
			e.Push(value.List(list))
			return
		}
		e.Push(list[rand.Intn(len(list))])
	})
	registerCommand("shuffle", func(e *Evaluator) {
		list := e.popList()
		rand.Shuffle(len(list), func(i, j int) {
			list[i], list[j] = list[j], list[i]
		})
		e.Push(value.List(list))
	})
}
