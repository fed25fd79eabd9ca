// ==============================================================================================
// FILE: evaluator/objectops.go
// ==============================================================================================
// Grounded on functions.rs's object-system match arms (`"instance"`, `"property"`, `"method"`,
// `"modify"`, `"all"`). `method` binds the name `self`, not the original's historical `executor`
// alias, per spec.md §9's explicit preference, and deliberately never restores a saved binding
// afterward — the outermost `self` persists until something else overwrites it.
// ==============================================================================================

package evaluator

import "github.com/stack-community/stack-lang/value"

func init() {
	registerCommand("instance", func(e *Evaluator) {
		data := e.popList()
		class := e.popList()

		if len(class) == 0 {
			e.pushError("instance-name")
			return
		}
		name := class[0].ToString()

		props := make(map[string]value.Value)
		index := 0
		for _, item := range class[1:] {
			fields := item.ToList()
			switch {
			case len(fields) == 1:
				if index >= len(data) {
					e.pushError("instance-shortage")
					return
				}
				props[fields[0].ToString()] = data[index]
				index++
			case len(fields) >= 2:
				props[fields[0].ToString()] = fields[1]
			default:
				e.pushError("instance-default")
				return
			}
		}
		e.Push(value.Object(name, props))
	})

	registerCommand("property", func(e *Evaluator) {
		name := e.popString()
		obj := e.Pop()
		if obj.Kind() != value.KindObject {
			e.pushError("not-object")
			return
		}
		prop, ok := obj.Property(name)
		if !ok {
			e.pushError("property")
			return
		}
		e.Push(prop)
	})

	registerCommand("method", func(e *Evaluator) {
		methodName := e.popString()
		obj := e.Pop()
		if obj.Kind() != value.KindObject {
			e.pushError("not-object")
			return
		}
		e.Env.Set("self", obj)
		program, _ := obj.Property(methodName)
		e.Run(program.ToString())
	})

	registerCommand("modify", func(e *Evaluator) {
		data := e.Pop()
		propName := e.popString()
		obj := e.Pop()
		if obj.Kind() != value.KindObject {
			e.pushError("not-object")
			return
		}
		props := obj.Properties()
		props[propName] = data
		e.Push(value.Object(obj.ObjectName(), props))
	})

	registerCommand("all", func(e *Evaluator) {
		obj := e.Pop()
		if obj.Kind() != value.KindObject {
			e.pushError("not-object")
			return
		}
		props := obj.Properties()
		names := make([]value.Value, 0, len(props))
		for name := range props {
			names = append(names, value.String(name))
		}
		e.Push(value.List(names))
	})
}
