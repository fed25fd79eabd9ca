// ==============================================================================================
// FILE: evaluator/evaluator_test.go
// ==============================================================================================
package evaluator

import (
	"bytes"
	"testing"
	"time"

	"github.com/stack-community/stack-lang/capability"
	"github.com/stack-community/stack-lang/value"
)

// newTestEvaluator builds an Evaluator against an in-memory output buffer so
// tests never touch the real terminal, filesystem, or network.
func newTestEvaluator() (*Evaluator, *bytes.Buffer) {
	var out bytes.Buffer
	caps := &capability.Bundle{
		In:  bytes.NewBufferString(""),
		Out: &out,
	}
	return New(caps), &out
}

func runAndTop(t *testing.T, source string) value.Value {
	t.Helper()
	e, _ := newTestEvaluator()
	e.Run(source)
	if len(e.Stack) == 0 {
		t.Fatalf("Run(%q) left an empty stack", source)
	}
	return e.Stack[len(e.Stack)-1]
}

func TestArithmeticStackOrder(t *testing.T) {
	got := runAndTop(t, "5 8 add")
	if got.Kind() != value.KindNumber || got.ToNumber() != 13 {
		t.Fatalf("5 8 add = %v, want Number(13)", got)
	}
}

func TestSubDivOrderMatchesTopLastConvention(t *testing.T) {
	tests := []struct {
		source string
		want   float64
	}{
		{"10 3 sub", 7},
		{"10 4 div", 2.5},
		{"10 3 mod", 1},
	}
	for _, tt := range tests {
		got := runAndTop(t, tt.source)
		if got.ToNumber() != tt.want {
			t.Errorf("%s = %v, want %v", tt.source, got.ToNumber(), tt.want)
		}
	}
}

func TestVariableRoundTrip(t *testing.T) {
	got := runAndTop(t, "5987 (x) var x 1 add (x) var x")
	if got.ToNumber() != 5988 {
		t.Fatalf("got %v, want Number(5988)", got)
	}
}

func TestIfBranchesOnCondition(t *testing.T) {
	got := runAndTop(t, "(true) (false) 10 2 div 5 equal if")
	if !got.ToBool() {
		t.Fatalf("expected true branch, got %v", got)
	}

	got = runAndTop(t, "(true) (false) 4 5 equal if")
	if got.ToBool() {
		t.Fatalf("expected false branch, got %v", got)
	}
}

func TestWhileLoop(t *testing.T) {
	got := runAndTop(t, "5 (i) var (i 1 add (i) var) (i 10 less) while i")
	if got.ToNumber() != 10 {
		t.Fatalf("got %v, want Number(10)", got)
	}
}

func TestMapSquaresElements(t *testing.T) {
	got := runAndTop(t, "[1 2 3] (x) (x x mul) map")
	list := got.Elements()
	want := []float64{1, 4, 9}
	if len(list) != len(want) {
		t.Fatalf("map produced %d elements, want %d", len(list), len(want))
	}
	for i, w := range want {
		if list[i].ToNumber() != w {
			t.Errorf("element %d = %v, want %v", i, list[i].ToNumber(), w)
		}
	}
}

func TestIndexFoundAndNotFound(t *testing.T) {
	got := runAndTop(t, "[(apple) (banana) (cherry)] (banana) index")
	if got.ToNumber() != 1 {
		t.Fatalf("got %v, want Number(1)", got)
	}

	got = runAndTop(t, "[(apple) (banana) (cherry)] (date) index")
	if got.Kind() != value.KindError || got.ErrorCode() != "item-not-found" {
		t.Fatalf("got %v, want error:item-not-found", got)
	}
}

func TestListLiteralEvaluatesEmbeddedCode(t *testing.T) {
	got := runAndTop(t, "[1 2 add]")
	list := got.Elements()
	if len(list) != 1 || list[0].ToNumber() != 3 {
		t.Fatalf("[1 2 add] = %v, want [Number(3)]", got)
	}
}

func TestCopyThenEqualIsAlwaysTrue(t *testing.T) {
	got := runAndTop(t, "(hello) copy equal")
	if !got.ToBool() {
		t.Fatalf("copy equal = %v, want true", got)
	}
}

func TestSwapSwapIsIdentity(t *testing.T) {
	e, _ := newTestEvaluator()
	e.Run("(a) (b) swap swap")
	if len(e.Stack) != 2 || e.Stack[0].ToString() != "a" || e.Stack[1].ToString() != "b" {
		t.Fatalf("swap swap changed stack order: %v", e.Stack)
	}
}

func TestReverseReverseIsIdentity(t *testing.T) {
	got := runAndTop(t, "[1 2 3] reverse reverse")
	list := got.Elements()
	for i, want := range []float64{1, 2, 3} {
		if list[i].ToNumber() != want {
			t.Fatalf("reverse reverse = %v, want [1 2 3]", got)
		}
	}
}

func TestSortIsLexicographicAndIdempotent(t *testing.T) {
	once := runAndTop(t, "[(banana) (apple) (cherry)] sort")
	onceList := once.Elements()
	want := []string{"apple", "banana", "cherry"}
	for i, w := range want {
		if onceList[i].ToString() != w {
			t.Fatalf("sort = %v, want %v", once.Display(), want)
		}
	}

	twice := runAndTop(t, "[(banana) (apple) (cherry)] sort sort")
	if twice.Display() != once.Display() {
		t.Fatalf("sort is not idempotent: %v vs %v", once.Display(), twice.Display())
	}
}

func TestSplitJoinIsLeftInverse(t *testing.T) {
	got := runAndTop(t, "(a,b,c) (,) split (,) join")
	if got.ToString() != "a,b,c" {
		t.Fatalf("split/join round trip = %q, want %q", got.ToString(), "a,b,c")
	}
}

func TestLenMatchesElementCount(t *testing.T) {
	got := runAndTop(t, "[1 2 3 4] len")
	if got.ToNumber() != 4 {
		t.Fatalf("len = %v, want 4", got)
	}
}

func TestRangeProducesHalfOpenInterval(t *testing.T) {
	got := runAndTop(t, "0 10 2 range")
	list := got.Elements()
	want := []float64{0, 2, 4, 6, 8}
	if len(list) != len(want) {
		t.Fatalf("range produced %d elements, want %d", len(list), len(want))
	}
	for i, w := range want {
		if list[i].ToNumber() != w {
			t.Errorf("element %d = %v, want %v", i, list[i].ToNumber(), w)
		}
	}
}

func TestCastRoundTripsThroughString(t *testing.T) {
	got := runAndTop(t, "3.5 (string) cast (number) cast")
	if got.ToNumber() != 3.5 {
		t.Fatalf("number->string->number round trip = %v, want 3.5", got)
	}

	got = runAndTop(t, "true (string) cast (bool) cast")
	if !got.ToBool() {
		t.Fatalf("bool->string->bool round trip = %v, want true", got)
	}
}

func TestPopOnEmptyStackReturnsEmptyString(t *testing.T) {
	e, _ := newTestEvaluator()
	v := e.Pop()
	if v.Kind() != value.KindString || v.ToString() != "" {
		t.Fatalf("Pop() on empty stack = %v, want String(\"\")", v)
	}
}

func TestUnknownCommandPushesWordLiteral(t *testing.T) {
	got := runAndTop(t, "frobnicate")
	if got.Kind() != value.KindString || got.ToString() != "frobnicate" {
		t.Fatalf("got %v, want String(frobnicate)", got)
	}
}

func TestErrorLiteralParsesCode(t *testing.T) {
	got := runAndTop(t, "error:not-object")
	if got.Kind() != value.KindError || got.ErrorCode() != "not-object" {
		t.Fatalf("got %v, want error:not-object", got)
	}
}

func TestObjectInstancePropertyAndMethod(t *testing.T) {
	e, _ := newTestEvaluator()
	e.Run(`[(point) [x] [y]] [3 4] instance (obj) var`)
	obj, _ := e.Env.Get("obj")
	if obj.Kind() != value.KindObject || obj.ObjectName() != "point" {
		t.Fatalf("instance = %v, want Object<point>", obj)
	}

	e.Run(`obj (x) property`)
	top := e.Stack[len(e.Stack)-1]
	if top.ToNumber() != 3 {
		t.Fatalf("property x = %v, want 3", top)
	}
	e.Pop()

	e.Run(`obj (describe) (self (x) property self (y) property add) modify (describe) method`)
	top = e.Stack[len(e.Stack)-1]
	if top.ToNumber() != 7 {
		t.Fatalf("method result = %v, want 7", top)
	}
}

func TestObjectToBoolQuirk(t *testing.T) {
	got := runAndTop(t, "[(empty)] [] instance")
	if !got.ToBool() {
		t.Fatalf("empty object ToBool() = false, want true (documented quirk)")
	}

	got = runAndTop(t, "[(has) [a 1]] [] instance")
	if got.ToBool() {
		t.Fatalf("non-empty object ToBool() = true, want false (documented quirk)")
	}
}

func TestReduceClearsAccumulatorAfterCompletion(t *testing.T) {
	e, _ := newTestEvaluator()
	e.Run("[1 2 3] (acc) 0 (curr) (acc curr add) reduce")
	top := e.Stack[len(e.Stack)-1]
	if top.ToNumber() != 6 {
		t.Fatalf("reduce result = %v, want 6", top)
	}
	acc, ok := e.Env.Get("acc")
	if !ok || acc.ToString() != "" {
		t.Fatalf("accumulator after reduce = %v, want String(\"\") per documented leak", acc)
	}
}

func TestRandOnEmptyListReturnsTheListItself(t *testing.T) {
	got := runAndTop(t, "[] rand")
	if got.Kind() != value.KindList || len(got.Elements()) != 0 {
		t.Fatalf("rand on empty list = %v, want []", got)
	}
}

func TestThreadDoesNotShareStateWithParent(t *testing.T) {
	e, _ := newTestEvaluator()
	e.Run(`0 (n) var (42 (n) var) thread`)
	// Give the detached goroutine a moment; it mutates only its own
	// snapshot, so the parent's binding must remain untouched regardless
	// of scheduling.
	time.Sleep(50 * time.Millisecond)
	n, _ := e.Env.Get("n")
	if n.ToNumber() != 0 {
		t.Fatalf("parent's n was mutated by thread: %v", n)
	}
}
