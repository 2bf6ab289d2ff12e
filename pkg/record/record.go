package record

import (
	"reflect"
	"slices"

	"github.com/aretw0/factory/pkg/schema"
)

// Record is an instance of a Type: one value slot per declared field.
// Records are not safe for concurrent mutation.
type Record struct {
	typ    *Type
	values []any
}

// Type returns the record's type.
func (r *Record) Type() *Type { return r.typ }

// Get returns a field value by name or by offset in [0, Size()).
func (r *Record) Get(key any) (any, error) {
	i, err := r.resolve(key)
	if err != nil {
		return nil, err
	}
	return r.values[i], nil
}

// Set assigns a field by name or offset, after the same checks as Get.
// It returns the assigned value.
func (r *Record) Set(key any, value any) (any, error) {
	i, err := r.resolve(key)
	if err != nil {
		return nil, err
	}
	if err := r.store(i, value); err != nil {
		return nil, err
	}
	return value, nil
}

// Size returns the number of fields.
func (r *Record) Size() int { return len(r.values) }

// Len is an alias of Size.
func (r *Record) Len() int { return r.Size() }

// Members returns the field names in declaration order.
func (r *Record) Members() []string { return r.typ.Fields() }

// Values returns a copy of the field values in declaration order.
func (r *Record) Values() []any { return slices.Clone(r.values) }

// ToSlice is an alias of Values.
func (r *Record) ToSlice() []any { return r.Values() }

func (r *Record) resolve(key any) (int, error) {
	if name, ok := schema.FieldName(key); ok {
		i, ok := r.typ.index[name]
		if !ok {
			return 0, r.typ.fail(r.typ.unknownMember(name))
		}
		return i, nil
	}

	i, ok := toInt(key)
	if !ok {
		return 0, r.typ.fail(r.typ.unknownMember(key))
	}
	if i < 0 {
		return 0, r.typ.fail(r.offsetError(i, "small"))
	}
	if i >= len(r.values) {
		return 0, r.typ.fail(r.offsetError(i, "large"))
	}
	return i, nil
}

func (r *Record) store(i int, value any) error {
	if err := schema.ValidateField(r.typ.schema, r.typ.fields[i], value); err != nil {
		return r.typ.fail(&Error{Kind: KindInvalidValue, Value: value, Err: err})
	}
	r.values[i] = value
	return nil
}

func (r *Record) offsetError(i int, direction string) *Error {
	return Errorf(KindIndexOutOfRange, i, "offset %d too %s for %s(size:%d)", i, direction, r.typ.Label(), len(r.values))
}

// toInt accepts every Go integer kind, including named ones.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case nil:
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > uint64(^uint(0)>>1) {
			return int(^uint(0) >> 1), true
		}
		return int(u), true
	default:
		return 0, false
	}
}
