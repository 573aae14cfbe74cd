package callback

import "reflect"

// Forward returns a callback that passes a single value of type T through
// unchanged.
func Forward[T any]() Callback {
	return forward[T]{}
}

type forward[T any] struct{}

func (forward[T]) ReturnType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (forward[T]) Accepts(shape Shape) bool {
	return len(shape) == 1 && shape[0] != nil && shape[0].AssignableTo(reflect.TypeFor[T]())
}

func (forward[T]) Call(args []any) any {
	return args[0].(T)
}

// canConstruct mirrors constructValue's dispatch: a single assignable value
// is forwarded, otherwise a struct is built by assigning the arguments to
// its leading exported fields in order.
func canConstruct(t reflect.Type, shape Shape) bool {
	if len(shape) == 1 && shape[0] != nil && shape[0].AssignableTo(t) {
		return true
	}
	if t.Kind() != reflect.Struct || len(shape) > t.NumField() {
		return false
	}
	for i, at := range shape {
		field := t.Field(i)
		if !field.IsExported() {
			return false
		}
		if at == nil || !at.AssignableTo(field.Type) {
			return false
		}
	}
	return true
}

func constructValue(t reflect.Type, args []any) reflect.Value {
	if len(args) == 1 && reflect.TypeOf(args[0]) != nil && reflect.TypeOf(args[0]).AssignableTo(t) {
		return reflect.ValueOf(args[0])
	}
	v := reflect.New(t).Elem()
	for i, a := range args {
		v.Field(i).Set(reflect.ValueOf(a))
	}
	return v
}

// Construct returns a callback that builds a T from the arguments: a single
// T is forwarded, otherwise the arguments fill the struct's leading exported
// fields in order.
func Construct[T any]() Callback {
	return construct[T]{}
}

type construct[T any] struct{}

func (construct[T]) ReturnType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (construct[T]) Accepts(shape Shape) bool {
	return canConstruct(reflect.TypeFor[T](), shape)
}

func (construct[T]) Call(args []any) any {
	return constructValue(reflect.TypeFor[T](), args).Interface()
}

// NewPtr is Construct with the result allocated on the heap, returning *T.
func NewPtr[T any]() Callback {
	return newPtr[T]{}
}

type newPtr[T any] struct{}

func (newPtr[T]) ReturnType() reflect.Type {
	return reflect.TypeFor[*T]()
}

func (newPtr[T]) Accepts(shape Shape) bool {
	return canConstruct(reflect.TypeFor[T](), shape)
}

func (newPtr[T]) Call(args []any) any {
	p := reflect.New(reflect.TypeFor[T]())
	p.Elem().Set(constructValue(reflect.TypeFor[T](), args))
	return p.Interface().(*T)
}

// Integer is the constraint for AsInteger results.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// AsInteger returns a callback composing a signed integer: given (sign,
// magnitude) it yields sign*magnitude, given a magnitude alone the value is
// taken as positive. Magnitudes may be any integer kind.
func AsInteger[T Integer]() Callback {
	return asInteger[T]{}
}

type asInteger[T Integer] struct{}

func isIntegerType(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func toInt64(v any) int64 {
	rv := reflect.ValueOf(v)
	if rv.CanUint() {
		return int64(rv.Uint())
	}
	return rv.Int()
}

func (asInteger[T]) ReturnType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (asInteger[T]) Accepts(shape Shape) bool {
	switch len(shape) {
	case 1:
		return isIntegerType(shape[0])
	case 2:
		return isIntegerType(shape[0]) && isIntegerType(shape[1])
	}
	return false
}

func (asInteger[T]) Call(args []any) any {
	if len(args) == 1 {
		return T(toInt64(args[0]))
	}
	return T(toInt64(args[0])) * T(toInt64(args[1]))
}
