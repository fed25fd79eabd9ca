// ==============================================================================================
// FILE: evaluator/helpers.go
// ==============================================================================================
package evaluator

import "github.com/stack-community/stack-lang/value"

// popNumber, popString, popBool, popList give every command file a
// coercing pop: each command pops the kind it wants, but per spec.md's
// total-coercion rule it never rejects a differently kinded operand — it
// coerces instead.
func (e *Evaluator) popNumber() float64 { return e.Pop().ToNumber() }
func (e *Evaluator) popString() string  { return e.Pop().ToString() }
func (e *Evaluator) popBool() bool      { return e.Pop().ToBool() }
func (e *Evaluator) popList() []value.Value {
	return e.Pop().ToList()
}

// pushError is shorthand for the very common "push error:<code>" result.
func (e *Evaluator) pushError(code string) {
	e.Push(value.Error(code))
}
