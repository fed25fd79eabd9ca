// ==============================================================================================
// FILE: evaluator/stringops.go
// ==============================================================================================
// Grounded on functions.rs's string-processing match arms (`"repeat"`, `"decode"`, …); `regex`
// trades Rust's `regex` crate for Go's regexp stdlib package: every whole-match substring, in
// order of occurrence, via Go's FindAllString.
// ==============================================================================================

package evaluator

import (
	"regexp"
	"strings"

	"github.com/stack-community/stack-lang/value"
)

func init() {
	registerCommand("repeat", func(e *Evaluator) {
		count := e.popNumber()
		text := e.popString()
		if count < 0 {
			count = 0
		}
		e.Push(value.String(strings.Repeat(text, int(count))))
	})

	registerCommand("decode", func(e *Evaluator) {
		code := e.popNumber()
		r := rune(int64(code))
		if code < 0 || !isValidRune(r) {
			e.pushError("number-decoding")
			return
		}
		e.Push(value.String(string(r)))
	})

	registerCommand("encode", func(e *Evaluator) {
		s := e.popString()
		runes := []rune(s)
		if len(runes) == 0 {
			e.pushError("string-encoding")
			return
		}
		e.Push(value.Number(float64(runes[0])))
	})

	registerCommand("concat", func(e *Evaluator) {
		b, a := e.popString(), e.popString()
		e.Push(value.String(a + b))
	})

	registerCommand("replace", func(e *Evaluator) {
		after := e.popString()
		before := e.popString()
		text := e.popString()
		e.Push(value.String(strings.ReplaceAll(text, before, after)))
	})

	registerCommand("split", func(e *Evaluator) {
		key := e.popString()
		text := e.popString()
		parts := strings.Split(text, key)
		items := make([]value.Value, len(parts))
		for i, p := range parts {
			items[i] = value.String(p)
		}
		e.Push(value.List(items))
	})

	registerCommand("case", func(e *Evaluator) {
		mode := e.popString()
		text := e.popString()
		switch mode {
		case "lower":
			e.Push(value.String(strings.ToLower(text)))
		case "upper":
			e.Push(value.String(strings.ToUpper(text)))
		default:
			e.Push(value.String(text))
		}
	})

	registerCommand("join", func(e *Evaluator) {
		key := e.popString()
		list := e.popList()
		parts := make([]string, len(list))
		for i, v := range list {
			parts[i] = v.ToString()
		}
		e.Push(value.String(strings.Join(parts, key)))
	})

	registerCommand("find", func(e *Evaluator) {
		word := e.popString()
		text := e.popString()
		e.Push(value.Bool(strings.Contains(text, word)))
	})

	registerCommand("regex", func(e *Evaluator) {
		pattern := e.popString()
		text := e.popString()
		re, err := regexp.Compile(pattern)
		if err != nil {
			e.pushError("regex")
			return
		}
		matches := re.FindAllString(text, -1)
		items := make([]value.Value, len(matches))
		for i, m := range matches {
			items[i] = value.String(m)
		}
		e.Push(value.List(items))
	})
}

func isValidRune(r rune) bool {
	return r >= 0 && r <= 0x10FFFF
}
