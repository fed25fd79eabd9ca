// ==============================================================================================
// FILE: evaluator/arithmetic.go
// ==============================================================================================
// Grounded on functions.rs's arithmetic match arms (`"add" => ...`, `"sub" => ...`, etc.), one
// registration per Rust arm, generalized from the original's Value enum to this package's
// value.Value.
// ==============================================================================================

package evaluator

import (
	"math"

	"github.com/stack-community/stack-lang/value"
)

func init() {
	registerCommand("add", func(e *Evaluator) {
		b, a := e.popNumber(), e.popNumber()
		e.Push(value.Number(a + b))
	})
	registerCommand("sub", func(e *Evaluator) {
		b, a := e.popNumber(), e.popNumber()
		e.Push(value.Number(a - b))
	})
	registerCommand("mul", func(e *Evaluator) {
		b, a := e.popNumber(), e.popNumber()
		e.Push(value.Number(a * b))
	})
	registerCommand("div", func(e *Evaluator) {
		b, a := e.popNumber(), e.popNumber()
		e.Push(value.Number(a / b))
	})
	registerCommand("mod", func(e *Evaluator) {
		b, a := e.popNumber(), e.popNumber()
		e.Push(value.Number(math.Mod(a, b)))
	})
	registerCommand("pow", func(e *Evaluator) {
		b, a := e.popNumber(), e.popNumber()
		e.Push(value.Number(math.Pow(a, b)))
	})
	registerCommand("round", func(e *Evaluator) {
		e.Push(value.Number(math.Round(e.popNumber())))
	})
	registerCommand("sin", func(e *Evaluator) {
		e.Push(value.Number(math.Sin(e.popNumber())))
	})
	registerCommand("cos", func(e *Evaluator) {
		e.Push(value.Number(math.Cos(e.popNumber())))
	})
	registerCommand("tan", func(e *Evaluator) {
		e.Push(value.Number(math.Tan(e.popNumber())))
	})
	registerCommand("equal", func(e *Evaluator) {
		b, a := e.Pop(), e.Pop()
		e.Push(value.Bool(value.Equal(a, b)))
	})
	registerCommand("less", func(e *Evaluator) {
		b, a := e.popNumber(), e.popNumber()
		e.Push(value.Bool(a < b))
	})
}
