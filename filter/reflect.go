package filter

import (
	"fmt"
	"reflect"
	"time"

	"github.com/compozy/liquid/expr"
	"github.com/compozy/liquid/value"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// FromFunc builds a FilterParser from a plain Go function, the way
// the host registers ad-hoc filters without hand-writing a
// FilterParser: `func(input T, args...) (R[, error])`. The first
// parameter receives the piped-in value; the rest are bound
// positionally from the filter's arguments, following the reflection
// convenience the other_examples autopilot3/liquid Engine.RegisterFilter
// shows (`engine.RegisterFilter("name", func(v interface{}, ...) string { ... })`).
func FromFunc(fn any) FilterParser {
	rv := reflect.ValueOf(fn)
	rt := rv.Type()
	if rt.Kind() != reflect.Func || rt.NumIn() < 1 {
		return FilterParserFunc(func(Args) (Filter, error) {
			return nil, fmt.Errorf("FromFunc: %T is not a func(input, ...) signature", fn)
		})
	}
	return FilterParserFunc(func(args Args) (Filter, error) {
		want := rt.NumIn() - 1
		if !rt.IsVariadic() && len(args.Positional) > want {
			return nil, fmt.Errorf("too many arguments: want at most %d, got %d", want, len(args.Positional))
		}
		return FilterFunc(func(input value.Value, stack expr.Stack) (value.Value, error) {
			return callReflectFilter(rv, rt, input, args, stack)
		}), nil
	})
}

func callReflectFilter(rv reflect.Value, rt reflect.Type, input value.Value, args Args, stack expr.Stack) (value.Value, error) {
	in := make([]reflect.Value, rt.NumIn())
	in[0] = coerceTo(input, rt.In(0))
	for i := 1; i < rt.NumIn(); i++ {
		var av value.Value
		if i-1 < len(args.Positional) {
			av = args.Positional[i-1].Evaluate(stack)
		}
		in[i] = coerceTo(av, rt.In(i))
	}
	out := rv.Call(in)
	return extractResult(out)
}

func coerceTo(v value.Value, t reflect.Type) reflect.Value {
	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(v.ToKStr()).Convert(t)
	case reflect.Bool:
		return reflect.ValueOf(v.QueryState(value.Truthy)).Convert(t)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		s, _ := v.AsScalar()
		return reflect.ValueOf(s.ToNumber().IntPart()).Convert(t)
	case reflect.Float32, reflect.Float64:
		s, _ := v.AsScalar()
		f, _ := s.ToNumber().Float64()
		return reflect.ValueOf(f).Convert(t)
	default:
		if t == reflect.TypeOf(time.Time{}) {
			s, _ := v.AsScalar()
			return reflect.ValueOf(s.Time)
		}
		if t == reflect.TypeOf(value.Value{}) {
			return reflect.ValueOf(v)
		}
		return reflect.ValueOf(nativeValue(v))
	}
}

func nativeValue(v value.Value) any {
	switch v.Kind() {
	case value.KindNil:
		return nil
	case value.KindScalar:
		s, _ := v.AsScalar()
		switch s.Kind {
		case value.ScalarBool:
			return s.Bool
		case value.ScalarInteger:
			return s.Int
		case value.ScalarFloat:
			return s.Flt
		case value.ScalarString:
			return s.Str
		default:
			return s.Time
		}
	case value.KindArray:
		arr, _ := v.AsArray()
		out := make([]any, arr.Size())
		for i, e := range arr.Values() {
			out[i] = nativeValue(e)
		}
		return out
	case value.KindObject:
		obj, _ := v.AsObject()
		out := make(map[string]any, obj.Size())
		obj.Iter(func(k string, e value.Value) bool {
			out[k] = nativeValue(e)
			return true
		})
		return out
	default:
		return v.Render()
	}
}

func extractResult(out []reflect.Value) (value.Value, error) {
	if len(out) == 0 {
		return value.Nil(), nil
	}
	var errVal error
	if last := out[len(out)-1]; last.Type().Implements(errorType) {
		if !last.IsNil() {
			errVal = last.Interface().(error)
		}
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return value.Nil(), errVal
	}
	return value.FromAny(out[0].Interface()), errVal
}
