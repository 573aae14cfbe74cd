// Package callback turns the values a rule produces into typed results.
// A Callback is a set of overloads keyed by argument shape; binding a rule to
// a callback whose overload set cannot accept the rule's shapes is a
// composition-time error, detected before any input is parsed.
package callback

import (
	"fmt"
	"reflect"
	"strings"
)

// Shape describes one argument list a rule can produce, as the static types
// of the arguments in order.
type Shape []reflect.Type

func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, t := range s {
		if t == nil {
			parts[i] = "<nil>"
		} else {
			parts[i] = t.String()
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ShapeOf derives the shape of a concrete argument list.
func ShapeOf(args ...any) Shape {
	shape := make(Shape, len(args))
	for i, a := range args {
		shape[i] = reflect.TypeOf(a)
	}
	return shape
}

// Callback maps matched data to a value of its declared result type. It is
// stateless and reusable across parses.
type Callback interface {
	ReturnType() reflect.Type
	// Accepts reports whether some overload applies to the given shape.
	Accepts(shape Shape) bool
	// Call invokes the applicable overload. Call panics if no overload
	// applies; use Accepts (via rule.Bind) to rule that out beforehand.
	Call(args []any) any
}

// OverloadError reports a composition-time mismatch between a rule's
// produced argument shapes and a callback's overload set.
type OverloadError struct {
	Shape Shape
}

func (e *OverloadError) Error() string {
	return fmt.Sprintf("missing callback overload for %s", e.Shape)
}

// New builds a callback with return type T from a set of ordinary functions,
// each acting as one overload. Every function must return exactly one value
// assignable to T and must not be variadic.
func New[T any](fns ...any) (Callback, error) {
	ret := reflect.TypeFor[T]()
	set := &funcSet{ret: ret}
	for _, fn := range fns {
		v := reflect.ValueOf(fn)
		t := v.Type()
		if t.Kind() != reflect.Func || t.IsVariadic() {
			return nil, fmt.Errorf("callback overload must be a non-variadic function, got %T", fn)
		}
		if t.NumOut() != 1 || !t.Out(0).AssignableTo(ret) {
			return nil, fmt.Errorf("callback overload %s must return %s", t, ret)
		}
		set.fns = append(set.fns, v)
	}
	return set, nil
}

type funcSet struct {
	ret reflect.Type
	fns []reflect.Value
}

func (s *funcSet) ReturnType() reflect.Type {
	return s.ret
}

func (s *funcSet) find(shape Shape) (reflect.Value, bool) {
	for _, fn := range s.fns {
		t := fn.Type()
		if t.NumIn() != len(shape) {
			continue
		}
		ok := true
		for i, at := range shape {
			if at == nil || !at.AssignableTo(t.In(i)) {
				ok = false
				break
			}
		}
		if ok {
			return fn, true
		}
	}
	return reflect.Value{}, false
}

func (s *funcSet) Accepts(shape Shape) bool {
	_, ok := s.find(shape)
	return ok
}

func (s *funcSet) Call(args []any) any {
	fn, ok := s.find(ShapeOf(args...))
	if !ok {
		panic(&OverloadError{Shape: ShapeOf(args...)})
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		in[i] = reflect.ValueOf(a)
	}
	return fn.Call(in)[0].Interface()
}
