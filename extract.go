package yang

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

var unmarshalerType = reflect.TypeOf((*yaml.Unmarshaler)(nil)).Elem()

// Decode converts v into T following yaml.v3 decoding rules, with two
// stricter cases at the top level: null only decodes into pointers,
// interfaces, maps and slices, and numbers and bools do not decode into
// strings. Types implementing yaml.Unmarshaler always get the value.
func Decode[T any](v Value) (T, error) {
	var out T
	if err := checkTopLevel(v, reflect.TypeOf((*T)(nil)).Elem()); err != nil {
		return out, err
	}
	if err := v.Node().Decode(&out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func checkTopLevel(v Value, t reflect.Type) error {
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return nil
	}
	switch v.kind {
	case KindNull:
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
			return nil
		}
		return fmt.Errorf("yang: cannot decode null into %s", t)
	case KindNumber, KindBool:
		if t.Kind() == reflect.String {
			return fmt.Errorf("yang: cannot decode %s into %s", v.kind, t)
		}
	}
	return nil
}

// Get decodes the property stored under key into T. It returns false when
// the key is absent or the value does not decode into T; the two cases are
// not distinguished. An explicit null reports false for value types such
// as int or string, and (nil, true) for pointers, interfaces, maps and
// slices.
func Get[T any](r *Record, key string) (T, bool) {
	var zero T
	v, ok := r.props[key]
	if !ok {
		return zero, false
	}
	out, err := Decode[T](v)
	if err != nil {
		return zero, false
	}
	return out, true
}

// GetOr is Get with a fallback for the false case.
func GetOr[T any](r *Record, key string, fallback T) T {
	if v, ok := Get[T](r, key); ok {
		return v
	}
	return fallback
}

// GetAsList decodes every element of the sequence stored under key into T.
// Elements that do not decode are dropped; the survivors keep their order.
// An absent key or a non-sequence value yields an empty slice.
func GetAsList[T any](r *Record, key string) []T {
	out := []T{}
	v, ok := r.props[key]
	if !ok || v.kind != KindSequence {
		return out
	}
	for _, e := range v.seq {
		x, err := Decode[T](e)
		if err != nil {
			continue
		}
		out = append(out, x)
	}
	return out
}
