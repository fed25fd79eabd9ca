// ==============================================================================================
// FILE: evaluator/stackops.go
// ==============================================================================================
// Grounded on functions.rs's memory-management match arms (`"pop"`, `"var"`, `"swap"`, …).
// ==============================================================================================

package evaluator

import "github.com/stack-community/stack-lang/value"

func init() {
	registerCommand("pop", func(e *Evaluator) {
		e.Pop()
	})

	registerCommand("size-stack", func(e *Evaluator) {
		e.Push(value.Number(float64(len(e.Stack))))
	})

	registerCommand("get-stack", func(e *Evaluator) {
		cp := make([]value.Value, len(e.Stack))
		copy(cp, e.Stack)
		e.Push(value.List(cp))
	})

	registerCommand("var", func(e *Evaluator) {
		name := e.popString()
		data := e.Pop()
		e.Env.Set(name, data)
	})

	registerCommand("free", func(e *Evaluator) {
		name := e.popString()
		e.Env.Delete(name)
	})

	registerCommand("mem", func(e *Evaluator) {
		names := e.Env.Names()
		items := make([]value.Value, len(names))
		for i, n := range names {
			items[i] = value.String(n)
		}
		e.Push(value.List(items))
	})

	registerCommand("copy", func(e *Evaluator) {
		data := e.Pop()
		e.Push(data)
		e.Push(data)
	})

	registerCommand("swap", func(e *Evaluator) {
		b := e.Pop()
		a := e.Pop()
		e.Push(b)
		e.Push(a)
	})

	registerCommand("type", func(e *Evaluator) {
		e.Push(value.String(e.Pop().TypeName()))
	})

	registerCommand("cast", func(e *Evaluator) {
		kind := e.popString()
		v := e.Pop()
		e.Push(value.Cast(v, kind))
	})
}
