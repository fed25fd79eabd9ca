// ==============================================================================================
// FILE: evaluator/evaluator.go
// ==============================================================================================
// PACKAGE: evaluator
// PURPOSE: The stack machine itself: classifies each lexer token per spec.md §4.3's priority
//          cascade, drives the operand stack, and dispatches command tokens through the
//          registry the other files in this package populate via registerCommand/init(). The
//          shape mirrors the teacher's evaluator.Eval(node, env) switch, generalized from an
//          AST walk to a flat token-at-a-time loop, because this language keeps deferred code
//          as text (spec.md §9) rather than building a parse tree.
// ==============================================================================================

package evaluator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stack-community/stack-lang/capability"
	"github.com/stack-community/stack-lang/lexer"
	"github.com/stack-community/stack-lang/value"
)

// commands is the closed dispatch table every command-handling file in this
// package populates from its own init(), the same table-of-funcs shape as
// the teacher's object.Builtins map, generalized from a fixed slice of
// entries to a name-keyed registry sized for this language's larger
// command set.
var commands = map[string]func(*Evaluator){}

// registerCommand adds a built-in to the dispatch table. Called only from
// init() functions; panics on a duplicate name since that can only be a
// programming mistake in this package, never a runtime condition.
func registerCommand(name string, fn func(*Evaluator)) {
	if _, exists := commands[name]; exists {
		panic("evaluator: duplicate command registered: " + name)
	}
	commands[name] = fn
}

// Evaluator holds one interpreter instance's full mutable state: the
// operand stack, the flat variable environment, the debug-trace flag, and
// the external capabilities (§6) commands are dispatched against. `thread`
// forks a new Evaluator from a deep snapshot of this state (see thread.go).
type Evaluator struct {
	Stack []value.Value
	Env   *value.Environment
	Debug bool
	Caps  *capability.Bundle
}

// New constructs an empty Evaluator wired to the given capability bundle.
func New(caps *capability.Bundle) *Evaluator {
	return &Evaluator{
		Stack: nil,
		Env:   value.NewEnvironment(),
		Debug: false,
		Caps:  caps,
	}
}

// Push appends a value to the top of the stack.
func (e *Evaluator) Push(v value.Value) {
	e.Stack = append(e.Stack, v)
}

// Pop removes and returns the top of the stack. Popping an empty stack is
// a deliberate leniency (spec.md §7): it logs a diagnostic in debug mode
// and returns String("") rather than aborting or pushing an Error.
func (e *Evaluator) Pop() value.Value {
	if len(e.Stack) == 0 {
		if e.Debug {
			fmt.Fprintln(e.Caps.Out, "[Output]: pop on empty stack, returning \"\"")
		}
		return value.String("")
	}
	last := len(e.Stack) - 1
	v := e.Stack[last]
	e.Stack = e.Stack[:last]
	return v
}

// Top returns a copy of the top of the stack without popping it, or
// String("") for an empty stack.
func (e *Evaluator) Top() value.Value {
	if len(e.Stack) == 0 {
		return value.String("")
	}
	return e.Stack[len(e.Stack)-1]
}

// stackTrace renders the current stack the way debug tracing displays it:
// `Stack〔 v1 v2 … 〕`.
func (e *Evaluator) stackTrace() string {
	parts := make([]string, len(e.Stack))
	for i, v := range e.Stack {
		parts[i] = v.Display()
	}
	return "Stack〔 " + strings.Join(parts, " ") + " 〕"
}

// Run lexes source and evaluates every token against the current stack and
// environment, in order. It is re-entrant: control commands (`eval`, `if`,
// `while`, `for`, `map`, list literals, …) call it recursively against the
// same Evaluator to run a nested program fragment carried as a string.
func (e *Evaluator) Run(source string) {
	tokens := lexer.Tokenize(source)
	for _, tok := range tokens {
		if e.Debug {
			fmt.Fprintf(e.Caps.Out, "%s ← %s\n", e.stackTrace(), tok)
		}
		e.evalToken(tok)
	}
	if e.Debug {
		fmt.Fprintln(e.Caps.Out, e.stackTrace())
	}
}

// evalToken classifies a single token per spec.md §4.3's exact priority
// order and acts on it.
func (e *Evaluator) evalToken(tok string) {
	if n, ok := parseFiniteNumber(tok); ok {
		e.Push(value.Number(n))
		return
	}
	if tok == "true" {
		e.Push(value.Bool(true))
		return
	}
	if tok == "false" {
		e.Push(value.Bool(false))
		return
	}
	if len(tok) >= 2 && strings.HasPrefix(tok, "(") && strings.HasSuffix(tok, ")") {
		inner := tok[1 : len(tok)-1]
		e.Push(value.String(lexer.Reescape(inner)))
		return
	}
	if len(tok) >= 2 && strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]") {
		e.evalListLiteral(tok[1 : len(tok)-1])
		return
	}
	if strings.HasPrefix(tok, "error:") {
		e.Push(value.Error(strings.TrimPrefix(tok, "error:")))
		return
	}
	if v, ok := e.Env.Get(tok); ok {
		e.Push(v)
		return
	}
	if len(tok) >= 2 && strings.HasPrefix(tok, "#") && strings.HasSuffix(tok, "#") {
		if e.Debug {
			fmt.Fprintf(e.Caps.Out, "# comment: %s\n", tok)
		}
		return
	}

	if fn, ok := commands[tok]; ok {
		fn(e)
		return
	}
	// Unknown command names push as a word literal, per spec.md §4.3 item 8.
	e.Push(value.String(tok))
}

// evalListLiteral implements the record-length/recurse/drain-and-reverse
// algorithm spec.md §4.3 documents: evaluating the inner text as a program
// can push any number of values (including zero, or more than the naive
// element count when the text contains commands), so the only correct way
// to collect "this literal's elements" is to snapshot the stack height
// before recursing and drain everything above it afterward.
func (e *Evaluator) evalListLiteral(inner string) {
	l0 := len(e.Stack)
	e.Run(inner)

	collected := make([]value.Value, 0, len(e.Stack)-l0)
	for len(e.Stack) > l0 {
		collected = append(collected, e.Pop())
	}
	for i, j := 0, len(collected)-1; i < j; i, j = i+1, j-1 {
		collected[i], collected[j] = collected[j], collected[i]
	}
	e.Push(value.List(collected))
}

// parseFiniteNumber accepts exactly what spec.md calls a "finite decimal
// literal": strconv.ParseFloat already rejects malformed text, but it
// additionally accepts "inf"/"nan" spellings that must not be
// misclassified as numbers here (those fall through to the command/word
// cascade instead).
func parseFiniteNumber(tok string) (float64, bool) {
	n, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	if n > maxFinite || n < -maxFinite || n != n {
		return 0, false
	}
	return n, true
}

const maxFinite = 1.7976931348623157e+308
