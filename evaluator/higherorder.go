// ==============================================================================================
// FILE: evaluator/higherorder.go
// ==============================================================================================
// Grounded on functions.rs's "map"/"filter"/"reduce" arms. `reduce`'s accumulator-cleared-to-
// empty-string-after-completion quirk is preserved deliberately (spec.md §9 Open Questions).
// ==============================================================================================

package evaluator

import "github.com/stack-community/stack-lang/value"

func init() {
	registerCommand("map", func(e *Evaluator) {
		code := e.popString()
		varName := e.popString()
		list := e.popList()

		result := make([]value.Value, 0, len(list))
		for _, item := range list {
			e.Env.Set(varName, item)
			e.Run(code)
			result = append(result, e.Pop())
		}
		e.Push(value.List(result))
	})

	registerCommand("filter", func(e *Evaluator) {
		code := e.popString()
		varName := e.popString()
		list := e.popList()

		result := make([]value.Value, 0, len(list))
		for _, item := range list {
			e.Env.Set(varName, item)
			e.Run(code)
			if e.popBool() {
				result = append(result, item)
			}
		}
		e.Push(value.List(result))
	})

	registerCommand("reduce", func(e *Evaluator) {
		code := e.popString()
		currName := e.popString()
		init := e.Pop()
		accName := e.popString()
		list := e.popList()

		e.Env.Set(accName, init)
		for _, item := range list {
			e.Env.Set(currName, item)
			e.Run(code)
			e.Env.Set(accName, e.Pop())
		}

		result, ok := e.Env.Get(accName)
		if !ok {
			result = value.String("")
		}
		e.Push(result)
		e.Env.Set(accName, value.String(""))
	})
}
