// ==============================================================================================
// FILE: evaluator/listops.go
// ==============================================================================================
// Grounded on functions.rs's list-processing match arms (`"get"`, `"set"`, `"del"`, …).
// ==============================================================================================

package evaluator

import (
	"sort"

	"github.com/stack-community/stack-lang/value"
)

func init() {
	registerCommand("get", func(e *Evaluator) {
		index := int(e.popNumber())
		list := e.popList()
		if index < 0 || index >= len(list) {
			e.pushError("index-out-range")
			return
		}
		e.Push(list[index])
	})

	registerCommand("set", func(e *Evaluator) {
		v := e.Pop()
		index := int(e.popNumber())
		list := e.popList()
		if index < 0 || index >= len(list) {
			e.pushError("index-out-range")
			return
		}
		list[index] = v
		e.Push(value.List(list))
	})

	registerCommand("del", func(e *Evaluator) {
		index := int(e.popNumber())
		list := e.popList()
		if index < 0 || index >= len(list) {
			e.pushError("index-out-range")
			return
		}
		list = append(list[:index], list[index+1:]...)
		e.Push(value.List(list))
	})

	registerCommand("append", func(e *Evaluator) {
		v := e.Pop()
		list := e.popList()
		list = append(list, v)
		e.Push(value.List(list))
	})

	registerCommand("insert", func(e *Evaluator) {
		v := e.Pop()
		index := int(e.popNumber())
		list := e.popList()
		if index < 0 {
			index = 0
		}
		if index > len(list) {
			index = len(list)
		}
		list = append(list, value.Value{})
		copy(list[index+1:], list[index:])
		list[index] = v
		e.Push(value.List(list))
	})

	registerCommand("index", func(e *Evaluator) {
		target := e.popString()
		list := e.popList()
		for i, item := range list {
			if item.ToString() == target {
				e.Push(value.Number(float64(i)))
				return
			}
		}
		e.pushError("item-not-found")
	})

	registerCommand("sort", func(e *Evaluator) {
		list := e.popList()
		strs := make([]string, len(list))
		for i, v := range list {
			strs[i] = v.ToString()
		}
		sort.Strings(strs)
		items := make([]value.Value, len(strs))
		for i, s := range strs {
			items[i] = value.String(s)
		}
		e.Push(value.List(items))
	})

	registerCommand("reverse", func(e *Evaluator) {
		list := e.popList()
		for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
			list[i], list[j] = list[j], list[i]
		}
		e.Push(value.List(list))
	})

	registerCommand("for", func(e *Evaluator) {
		code := e.popString()
		varName := e.popString()
		list := e.popList()
		for _, item := range list {
			e.Env.Set(varName, item)
			e.Run(code)
		}
	})

	registerCommand("range", func(e *Evaluator) {
		step := e.popNumber()
		max := e.popNumber()
		min := e.popNumber()
		var items []value.Value
		if step > 0 {
			for v := min; v < max; v += step {
				items = append(items, value.Number(v))
			}
		} else if step < 0 {
			for v := min; v > max; v += step {
				items = append(items, value.Number(v))
			}
		}
		e.Push(value.List(items))
	})

	registerCommand("len", func(e *Evaluator) {
		list := e.popList()
		e.Push(value.Number(float64(len(list))))
	})
}
