package callback

import (
	"reflect"
	"strings"

	"github.com/dhamidi/lexkit/reader"
)

// Sink is a stateful accumulator used when a rule produces a variable number
// of sub-values. Each Fold adds one element; Finish yields the built value
// and consumes the sink. A sink must not be used after Finish.
type Sink interface {
	Fold(args ...any)
	Finish() any
}

// SinkCallback is a callback that can also act as a sink factory. The
// one-shot callback form and the fold form agree: folding N elements and
// finishing equals calling the callback with the same N elements at once.
type SinkCallback interface {
	Callback
	Sink() Sink
}

// consumed guards single-use of a sink.
type consumed struct {
	done bool
}

func (c *consumed) mark() {
	if c.done {
		panic("lexkit: sink used after Finish")
	}
	c.done = true
}

func (c *consumed) check() {
	if c.done {
		panic("lexkit: sink used after Finish")
	}
}

// AsList returns a sink-capable callback building an append-ordered []T.
// As a callback it constructs the slice from the arguments in one call; as a
// sink it appends one element per fold. A multi-argument fold constructs the
// element in place, field-wise.
func AsList[T any]() SinkCallback {
	return list[T]{}
}

type list[T any] struct{}

func (list[T]) ReturnType() reflect.Type {
	return reflect.TypeFor[[]T]()
}

func (list[T]) Accepts(shape Shape) bool {
	elem := reflect.TypeFor[T]()
	for _, at := range shape {
		if at == nil || !at.AssignableTo(elem) {
			return false
		}
	}
	return true
}

func (list[T]) Call(args []any) any {
	result := make([]T, 0, len(args))
	for _, a := range args {
		result = append(result, a.(T))
	}
	return result
}

func (list[T]) Sink() Sink {
	return &listSink[T]{}
}

type listSink[T any] struct {
	result []T
	consumed
}

func (s *listSink[T]) Fold(args ...any) {
	s.check()
	if len(args) == 1 {
		if v, ok := args[0].(T); ok {
			s.result = append(s.result, v)
			return
		}
	}
	s.result = append(s.result, constructValue(reflect.TypeFor[T](), args).Interface().(T))
}

func (s *listSink[T]) Finish() any {
	s.mark()
	result := s.result
	s.result = nil
	return result
}

// AsCollection returns a sink-capable callback building an unordered set of
// T, represented as map[T]struct{}. Folding inserts; duplicate elements
// collapse.
func AsCollection[T comparable]() SinkCallback {
	return collection[T]{}
}

type collection[T comparable] struct{}

func (collection[T]) ReturnType() reflect.Type {
	return reflect.TypeFor[map[T]struct{}]()
}

func (collection[T]) Accepts(shape Shape) bool {
	elem := reflect.TypeFor[T]()
	for _, at := range shape {
		if at == nil || !at.AssignableTo(elem) {
			return false
		}
	}
	return true
}

func (collection[T]) Call(args []any) any {
	result := make(map[T]struct{}, len(args))
	for _, a := range args {
		result[a.(T)] = struct{}{}
	}
	return result
}

func (collection[T]) Sink() Sink {
	return &collectionSink[T]{result: make(map[T]struct{})}
}

type collectionSink[T comparable] struct {
	result map[T]struct{}
	consumed
}

func (s *collectionSink[T]) Fold(args ...any) {
	s.check()
	if len(args) == 1 {
		if v, ok := args[0].(T); ok {
			s.result[v] = struct{}{}
			return
		}
	}
	s.result[constructValue(reflect.TypeFor[T](), args).Interface().(T)] = struct{}{}
}

func (s *collectionSink[T]) Finish() any {
	s.mark()
	result := s.result
	s.result = nil
	return result
}

// AsString returns a sink-capable callback building a string. As a callback
// it converts a lexeme or string; as a sink it appends characters, strings,
// and lexemes.
func AsString() SinkCallback {
	return stringCallback{}
}

type stringCallback struct{}

var (
	lexemeType = reflect.TypeFor[reader.Lexeme]()
	stringType = reflect.TypeFor[string]()
)

func (stringCallback) ReturnType() reflect.Type {
	return stringType
}

func (stringCallback) Accepts(shape Shape) bool {
	if len(shape) != 1 || shape[0] == nil {
		return false
	}
	return shape[0].AssignableTo(lexemeType) || shape[0].AssignableTo(stringType)
}

func (stringCallback) Call(args []any) any {
	switch v := args[0].(type) {
	case reader.Lexeme:
		return v.String()
	case string:
		return v
	}
	panic(&OverloadError{Shape: ShapeOf(args...)})
}

func (stringCallback) Sink() Sink {
	return &stringSink{}
}

type stringSink struct {
	result strings.Builder
	consumed
}

func (s *stringSink) Fold(args ...any) {
	s.check()
	for _, a := range args {
		switch v := a.(type) {
		case rune:
			s.result.WriteRune(v)
		case byte:
			s.result.WriteByte(v)
		case string:
			s.result.WriteString(v)
		case reader.Lexeme:
			s.result.Write(v.Bytes())
		default:
			panic(&OverloadError{Shape: ShapeOf(a)})
		}
	}
}

func (s *stringSink) Finish() any {
	s.mark()
	return s.result.String()
}

// Noop is a callback and sink that accepts anything, discards everything,
// and yields nothing.
var Noop SinkCallback = noop{}

type noop struct{}

func (noop) ReturnType() reflect.Type { return nil }
func (noop) Accepts(Shape) bool       { return true }
func (noop) Call([]any) any           { return nil }
func (noop) Sink() Sink               { return noopSink{} }

type noopSink struct{}

func (noopSink) Fold(...any) {}
func (noopSink) Finish() any { return nil }
