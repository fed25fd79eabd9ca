// ==============================================================================================
// FILE: lexer/lexer.go
// ==============================================================================================
// PACKAGE: lexer
// PURPOSE: Splits Stack source text into a flat sequence of tokens. Three bracket kinds
//          introduce atomic tokens whose inner whitespace is not a separator: `( … )` strings,
//          `[ … ]` lists, and `# … #` comments. Unlike the teacher's lexer (lexer/lexer.go),
//          which tags each token with a TokenType as it scans, tokens here are always plain
//          strings — classification happens later, at evaluation time, because a token's class
//          can depend on live environment state (a bound variable name) that the lexer has no
//          access to (spec.md Design Notes: "do not prematurely build an AST").
// ==============================================================================================

package lexer

import "strings"

// isSeparator reports whether r is one of the whitespace runes that
// separate tokens outside of brackets and comments: ASCII space, tab, CR,
// LF, and the ideographic space U+3000.
func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '　':
		return true
	default:
		return false
	}
}

// escapeScanner tracks the nesting state shared by Tokenize (which also
// splits on whitespace) and Reescape (which only transforms escape
// sequences over an already-delimited span of text).
type escapeScanner struct {
	parenDepth   int
	bracketDepth int
	inComment    bool
	escaping     bool
}

// nested reports whether the scanner is currently inside a bracketed
// span (string or list) — the "inside brackets" case of spec.md §4.1's
// escape rules, as opposed to "outside brackets" (top nesting level).
func (s *escapeScanner) nested() bool {
	return s.parenDepth > 0 || s.bracketDepth > 0
}

// step consumes one rune, appending whatever text it produces to buf, and
// reports whether this rune is a token-separating whitespace character at
// the top nesting level (only meaningful to callers that split on
// whitespace, i.e. Tokenize).
func (s *escapeScanner) step(buf *strings.Builder, r rune) (separator bool) {
	if s.escaping {
		s.escaping = false
		if s.nested() {
			buf.WriteByte('\\')
			buf.WriteRune(r)
		} else {
			switch r {
			case 'n':
				buf.WriteString(`\n`)
			case 't':
				buf.WriteString(`\t`)
			case 'r':
				buf.WriteString(`\r`)
			default:
				buf.WriteRune(r)
			}
		}
		return false
	}

	if !s.inComment && r == '\\' {
		s.escaping = true
		return false
	}

	switch {
	case r == '#':
		s.inComment = !s.inComment
		buf.WriteRune(r)
		return false
	case s.inComment:
		buf.WriteRune(r)
		return false
	case r == '(':
		s.parenDepth++
		buf.WriteRune(r)
		return false
	case r == ')':
		s.parenDepth--
		buf.WriteRune(r)
		return false
	case r == '[' && s.parenDepth == 0:
		s.bracketDepth++
		buf.WriteRune(r)
		return false
	case r == ']' && s.parenDepth == 0:
		s.bracketDepth--
		buf.WriteRune(r)
		return false
	case isSeparator(r) && s.parenDepth == 0 && s.bracketDepth == 0:
		return true
	default:
		buf.WriteRune(r)
		return false
	}
}

// Tokenize splits source into an ordered sequence of tokens. Whitespace at
// the top nesting level is the only separator and is never emitted;
// whitespace inside a `( )`, `[ ]` or `# #` span stays part of its token.
// Unbalanced brackets are not an error: the token simply accumulates until
// end of input (spec.md §4.1's Failure model).
func Tokenize(source string) []string {
	var tokens []string
	var buf strings.Builder
	var state escapeScanner

	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, buf.String())
			buf.Reset()
		}
	}

	for _, r := range source {
		if state.step(&buf, r) {
			flush()
		}
	}
	flush()

	return tokens
}

// Reescape re-applies the escape procedure to a span of text that has
// already been extracted from between a token's outer delimiters (used by
// the evaluator when it turns a `(...)` token into its final String value,
// per spec.md §4.1's "String-literal re-parsing"). The span is treated as
// starting at the top nesting level.
func Reescape(s string) string {
	var buf strings.Builder
	var state escapeScanner

	for _, r := range s {
		state.step(&buf, r)
	}

	return buf.String()
}
