package schema

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strings"
)

// Type constrains the values a record field accepts. Absent values never
// reach Validate: nil satisfies every field type.
type Type interface {
	// Name returns the string ParseType reads back ("int", "[string]").
	Name() string
	Validate(value any) error
}

// kindType accepts values whose reflect.Kind is listed, so named types such
// as `type SKU string` pass as their underlying kind.
type kindType struct {
	name  string
	kinds []reflect.Kind
	// wholeFloats lets integer fields take 3.0, which is how some
	// decoders deliver whole numbers.
	wholeFloats bool
}

var (
	signedKinds   = []reflect.Kind{reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64}
	unsignedKinds = []reflect.Kind{reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64}
	floatKinds    = []reflect.Kind{reflect.Float32, reflect.Float64}
)

func (t kindType) Name() string { return t.name }

func (t kindType) Validate(value any) error {
	kind := reflect.ValueOf(value).Kind()
	if slices.Contains(t.kinds, kind) {
		return nil
	}
	if t.wholeFloats && slices.Contains(floatKinds, kind) {
		if f := reflect.ValueOf(value).Float(); f == math.Trunc(f) && !math.IsInf(f, 0) {
			return nil
		}
		return fmt.Errorf("expected %s, got %v (not a whole number)", t.name, value)
	}
	return fmt.Errorf("expected %s, got %T", t.name, value)
}

type anyType struct{}

func (anyType) Name() string { return "any" }

func (anyType) Validate(any) error { return nil }

// listType checks every present element of a slice or array.
type listType struct {
	elem Type
}

func (t listType) Name() string { return "[" + t.elem.Name() + "]" }

func (t listType) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("expected %s, got %T", t.Name(), value)
	}
	for i := range rv.Len() {
		elem := rv.Index(i).Interface()
		if elem == nil {
			continue
		}
		if err := t.elem.Validate(elem); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// Any accepts every value.
func Any() Type { return anyType{} }

// String accepts strings.
func String() Type {
	return kindType{name: "string", kinds: []reflect.Kind{reflect.String}}
}

// Int accepts every integer kind and whole floats.
func Int() Type {
	return kindType{name: "int", kinds: slices.Concat(signedKinds, unsignedKinds), wholeFloats: true}
}

// Float accepts every number.
func Float() Type {
	return kindType{name: "float", kinds: slices.Concat(floatKinds, signedKinds, unsignedKinds)}
}

// Bool accepts booleans.
func Bool() Type {
	return kindType{name: "bool", kinds: []reflect.Kind{reflect.Bool}}
}

// Slice accepts slices and arrays whose present elements satisfy elem.
func Slice(elem Type) Type { return listType{elem: elem} }

var scalars = map[string]func() Type{
	"any":    Any,
	"string": String,
	"int":    Int,
	"float":  Float,
	"bool":   Bool,
}

// ParseType reads a field type as written in definition files: one of
// "any", "string", "int", "float", "bool", or a bracketed list such as
// "[int]". Surrounding spaces are ignored at every level.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if inner, ok := strings.CutPrefix(s, "["); ok {
		inner, ok = strings.CutSuffix(inner, "]")
		if !ok || strings.TrimSpace(inner) == "" {
			return nil, fmt.Errorf("unsupported type: %s", s)
		}
		elem, err := ParseType(inner)
		if err != nil {
			return nil, err
		}
		return Slice(elem), nil
	}

	if ctor, ok := scalars[s]; ok {
		return ctor(), nil
	}
	return nil, fmt.Errorf("unsupported type: %s", s)
}

// ParseTypeMap parses the `types` block of a definition entry.
func ParseTypeMap(m map[string]string) (Schema, error) {
	s := make(Schema, len(m))
	for _, field := range slices.Sorted(maps.Keys(m)) {
		t, err := ParseType(m[field])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		s[field] = t
	}
	return s, nil
}
