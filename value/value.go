// ==============================================================================================
// FILE: value/value.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: Defines the dynamic type system of the Stack language. Every value the evaluator
//          pushes or pops is a Value: a tagged variant over six kinds (Number, String, Bool,
//          List, Object, Error). Coercions between kinds are total — they never fail, they
//          fall back to a documented zero element instead.
// ==============================================================================================

package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which of the six variants a Value holds.
type Kind string

const (
	KindNumber Kind = "number"
	KindString Kind = "string"
	KindBool   Kind = "bool"
	KindList   Kind = "list"
	KindObject Kind = "object"
	KindError  Kind = "error"
)

// Value is the single dynamic type every stack slot and variable binding holds.
// Only one of the typed accessors below is meaningful for a given Kind; the
// rest carry their zero value.
type Value struct {
	kind Kind

	number float64
	str    string
	b      bool
	list   []Value

	// Object payload.
	objectName string
	props      map[string]Value

	// Error payload (code string, reuses str).
}

// Kind reports which variant this Value holds.
func (v Value) Kind() Kind { return v.kind }

// Number constructs a Number value.
func Number(n float64) Value { return Value{kind: KindNumber, number: n} }

// String constructs a String value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool constructs a Bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// List constructs a List value. The slice is copied so later mutation of the
// caller's slice never aliases the Value (value semantics throughout).
func List(items []Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindList, list: cp}
}

// Object constructs an Object value from a type name and property map. The
// map is copied for the same value-semantics reason as List.
func Object(name string, props map[string]Value) Value {
	cp := make(map[string]Value, len(props))
	for k, v := range props {
		cp[k] = v
	}
	return Value{kind: KindObject, objectName: name, props: cp}
}

// Error constructs an Error value carrying the given short code.
func Error(code string) Value { return Value{kind: KindError, str: code} }

// ObjectName returns the type name of an Object value ("" for any other kind).
func (v Value) ObjectName() string { return v.objectName }

// Properties returns a copy of an Object's property map (nil for any other kind).
func (v Value) Properties() map[string]Value {
	if v.kind != KindObject {
		return nil
	}
	cp := make(map[string]Value, len(v.props))
	for k, val := range v.props {
		cp[k] = val
	}
	return cp
}

// Property looks up a single property of an Object value.
func (v Value) Property(name string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	p, ok := v.props[name]
	return p, ok
}

// ErrorCode returns the code carried by an Error value ("" for any other kind).
func (v Value) ErrorCode() string {
	if v.kind != KindError {
		return ""
	}
	return v.str
}

// TypeName reports the name used by the `type` command: the object's own
// type name for Object values, the kind name for everything else.
func (v Value) TypeName() string {
	if v.kind == KindObject {
		return v.objectName
	}
	return string(v.kind)
}

// ==============================================================================================
// DISPLAY
// ==============================================================================================

// Display renders the canonical textual form used by print/println (after
// escape substitution) and by debug tracing.
func (v Value) Display() string {
	switch v.kind {
	case KindNumber:
		return formatNumber(v.number)
	case KindString:
		return "(" + v.str + ")"
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.Display()
		}
		return "[" + strings.Join(parts, " ") + "]"
	case KindObject:
		return "Object<" + v.objectName + ">"
	case KindError:
		return "error:" + v.str
	default:
		return ""
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// ==============================================================================================
// COERCIONS
// ==============================================================================================

// ToString converts any Value into its string representation. Identity for
// String; this is the same text produced by Display for every other kind
// except String itself, where Display would add parens.
func (v Value) ToString() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return formatNumber(v.number)
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindList:
		return v.Display()
	case KindObject:
		return v.Display()
	case KindError:
		return "error:" + v.str
	default:
		return ""
	}
}

// ToNumber converts any Value into a float64. Parse failures and
// non-numeric kinds fall back to 0, never an error.
func (v Value) ToNumber() float64 {
	switch v.kind {
	case KindNumber:
		return v.number
	case KindString:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return 0
		}
		return n
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindList:
		return float64(len(v.list))
	case KindObject:
		return float64(len(v.props))
	case KindError:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// ToBool converts any Value into a bool. Object is the documented quirk:
// true iff its property map is EMPTY (preserved for compatibility, see
// DESIGN.md's Open Question log).
func (v Value) ToBool() bool {
	switch v.kind {
	case KindString:
		return len(v.str) != 0
	case KindNumber:
		return v.number != 0
	case KindBool:
		return v.b
	case KindList:
		return len(v.list) != 0
	case KindObject:
		return len(v.props) == 0
	case KindError:
		b, err := strconv.ParseBool(strings.TrimSpace(v.str))
		if err != nil {
			return false
		}
		return b
	default:
		return false
	}
}

// ToList converts any Value into a []Value. String explodes into
// one-character-string elements; Number/Bool/Error become singleton lists;
// Object yields its property values in unspecified map order.
func (v Value) ToList() []Value {
	switch v.kind {
	case KindString:
		runes := []rune(v.str)
		out := make([]Value, len(runes))
		for i, r := range runes {
			out[i] = String(string(r))
		}
		return out
	case KindNumber:
		return []Value{v}
	case KindBool:
		return []Value{v}
	case KindList:
		cp := make([]Value, len(v.list))
		copy(cp, v.list)
		return cp
	case KindObject:
		out := make([]Value, 0, len(v.props))
		for _, p := range v.props {
			out = append(out, p)
		}
		return out
	case KindError:
		return []Value{v}
	default:
		return nil
	}
}

// Elements returns the underlying slice of a List value directly, without
// the defensive copy ToList performs — for internal evaluator use where the
// caller promises not to mutate the result in place.
func (v Value) Elements() []Value {
	if v.kind != KindList {
		return v.ToList()
	}
	return v.list
}

// Cast converts v into the Value of the requested kind name, per the `cast`
// command's four supported targets plus "error". Unknown kind names return
// v unchanged, matching the original implementation's fallback arm.
func Cast(v Value, kind string) Value {
	switch kind {
	case "number":
		return Number(v.ToNumber())
	case "string":
		return String(v.ToString())
	case "bool":
		return Bool(v.ToBool())
	case "list":
		return List(v.ToList())
	case "error":
		return Error(v.ToString())
	default:
		return v
	}
}

// Equal compares two Values by their stringified form, matching the
// `equal` command's semantics (and so transitively `copy … equal`, which
// must always be true since a value always equals its own string form).
func Equal(a, b Value) bool {
	return a.ToString() == b.ToString()
}

// String implements fmt.Stringer so Values print naturally in error
// messages and %v formatting during debug tracing.
func (v Value) String() string {
	return fmt.Sprintf("%s(%s)", v.kind, v.Display())
}
