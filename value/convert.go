package value

import (
	"reflect"
	"time"
)

// FromAny converts an arbitrary host Go value into a Value via
// reflection, bridging the untyped variable bindings a host program
// supplies into the engine's value universe (spec 4.H "registries
// ... with reflection"). Maps and slices are walked recursively, and
// a Drop becomes a Custom value; anything else FromAny cannot classify
// (a channel or func, say) becomes a String holding reflect's
// description of it, so a render can still describe it instead of
// failing.
func FromAny(in any) Value {
	if in == nil {
		return Nil()
	}
	switch t := in.(type) {
	case Value:
		return t
	case Drop:
		return NewCustom(t)
	case bool:
		return NewBool(t)
	case string:
		return NewString(t)
	case time.Time:
		return NewDateTime(t)
	case int:
		return NewInteger(int64(t))
	case int8:
		return NewInteger(int64(t))
	case int16:
		return NewInteger(int64(t))
	case int32:
		return NewInteger(int64(t))
	case int64:
		return NewInteger(t)
	case uint:
		return NewInteger(int64(t))
	case uint8:
		return NewInteger(int64(t))
	case uint16:
		return NewInteger(int64(t))
	case uint32:
		return NewInteger(int64(t))
	case uint64:
		return NewInteger(int64(t))
	case float32:
		return NewFloat(float64(t))
	case float64:
		return NewFloat(t)
	case map[string]any:
		return fromStringMap(t)
	case []any:
		return fromAnySlice(t)
	}
	return fromReflect(reflect.ValueOf(in))
}

func fromStringMap(m map[string]any) Value {
	fields := make(map[string]Value, len(m))
	for k, v := range m {
		fields[k] = FromAny(v)
	}
	return NewObject(fields)
}

func fromAnySlice(s []any) Value {
	items := make([]Value, len(s))
	for i, v := range s {
		items[i] = FromAny(v)
	}
	return NewArray(items)
}

func fromReflect(rv reflect.Value) Value {
	if !rv.IsValid() {
		return Nil()
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Nil()
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		items := make([]Value, n)
		for i := 0; i < n; i++ {
			items[i] = FromAny(rv.Index(i).Interface())
		}
		return NewArray(items)
	case reflect.Map:
		fields := make(map[string]Value, rv.Len())
		for _, key := range rv.MapKeys() {
			fields[stringifyKey(key)] = FromAny(rv.MapIndex(key).Interface())
		}
		return NewObject(fields)
	case reflect.Struct:
		return fromStruct(rv)
	case reflect.Bool:
		return NewBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewInteger(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return NewInteger(int64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return NewFloat(rv.Float())
	case reflect.String:
		return NewString(rv.String())
	default:
		return NewString(rv.String())
	}
}

func stringifyKey(rv reflect.Value) string {
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return FromAny(rv.Interface()).ToKStr()
}

// fromStruct exposes exported fields by their Go name, lowercased is
// left to the host (the engine imposes no tagging convention beyond
// this minimal reflection bridge).
func fromStruct(rv reflect.Value) Value {
	rt := rv.Type()
	fields := make(map[string]Value, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		fields[f.Name] = FromAny(rv.Field(i).Interface())
	}
	return NewObject(fields)
}
