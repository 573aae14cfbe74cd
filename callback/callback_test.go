package callback

import (
	"reflect"
	"testing"

	"github.com/dhamidi/lexkit/reader"
)

func lexemeOf(t *testing.T, text string) reader.Lexeme {
	t.Helper()
	r := reader.New([]byte(text), "test.txt")
	begin := r.Mark()
	for !r.EOF() {
		r.Advance()
	}
	return r.Lexeme(begin, r.Mark())
}

func TestNewOverloadSet(t *testing.T) {
	cb, err := New[int](
		func(a int) int { return a },
		func(a, b int) int { return a + b },
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := cb.Call([]any{3}); got != 3 {
		t.Errorf("single arg: got %v, want 3", got)
	}
	if got := cb.Call([]any{3, 4}); got != 7 {
		t.Errorf("two args: got %v, want 7", got)
	}

	if !cb.Accepts(ShapeOf(1, 2)) {
		t.Error("should accept (int, int)")
	}
	if cb.Accepts(ShapeOf("nope")) {
		t.Error("should not accept (string)")
	}
	if cb.ReturnType() != reflect.TypeFor[int]() {
		t.Errorf("return type: got %v", cb.ReturnType())
	}
}

func TestNewRejectsBadOverloads(t *testing.T) {
	if _, err := New[int]("not a function"); err == nil {
		t.Error("non-function overload must be rejected")
	}
	if _, err := New[int](func(a int) string { return "" }); err == nil {
		t.Error("wrong return type must be rejected")
	}
	if _, err := New[int](func(a ...int) int { return 0 }); err == nil {
		t.Error("variadic overload must be rejected")
	}
}

func TestForward(t *testing.T) {
	cb := Forward[string]()
	if got := cb.Call([]any{"hello"}); got != "hello" {
		t.Errorf("got %v, want hello", got)
	}
	if cb.Accepts(ShapeOf(1)) {
		t.Error("forward must only accept its own type")
	}
	if cb.Accepts(ShapeOf("a", "b")) {
		t.Error("forward must only accept a single value")
	}
}

type point struct {
	X, Y int
}

func TestConstruct(t *testing.T) {
	cb := Construct[point]()

	if !cb.Accepts(ShapeOf(1, 2)) {
		t.Fatal("should accept field-wise construction")
	}
	if got := cb.Call([]any{1, 2}); got != (point{1, 2}) {
		t.Errorf("got %v, want {1 2}", got)
	}

	// Direct forwarding of an existing value is preferred.
	if got := cb.Call([]any{point{3, 4}}); got != (point{3, 4}) {
		t.Errorf("got %v, want {3 4}", got)
	}

	if cb.Accepts(ShapeOf(1, "two")) {
		t.Error("mismatched field type must be rejected")
	}
	if cb.Accepts(ShapeOf(1, 2, 3)) {
		t.Error("too many arguments must be rejected")
	}
}

func TestNewPtr(t *testing.T) {
	cb := NewPtr[point]()
	got, ok := cb.Call([]any{1, 2}).(*point)
	if !ok {
		t.Fatalf("expected *point, got %T", cb.Call([]any{1, 2}))
	}
	if *got != (point{1, 2}) {
		t.Errorf("got %v, want {1 2}", *got)
	}
	if cb.ReturnType() != reflect.TypeFor[*point]() {
		t.Errorf("return type: got %v", cb.ReturnType())
	}
}

func TestAsInteger(t *testing.T) {
	cb := AsInteger[int]()

	if got := cb.Call([]any{-1, int64(5)}); got != -5 {
		t.Errorf("(-1, 5): got %v, want -5", got)
	}
	if got := cb.Call([]any{5}); got != 5 {
		t.Errorf("(5): got %v, want 5", got)
	}
	if got := cb.Call([]any{uint8(7)}); got != 7 {
		t.Errorf("(uint8 7): got %v, want 7", got)
	}
	if cb.Accepts(ShapeOf(1.5)) {
		t.Error("floats must be rejected")
	}
	if cb.Accepts(ShapeOf(1, 2, 3)) {
		t.Error("three arguments must be rejected")
	}
}

func TestOverloadError(t *testing.T) {
	err := &OverloadError{Shape: ShapeOf(1, "x")}
	want := "missing callback overload for (int, string)"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
