package record

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/aretw0/factory/pkg/schema"
)

// Diggable is implemented by values that support nested lookup with Dig.
type Diggable interface {
	// DigKey returns the value stored under key, or nil when there is none.
	DigKey(key any) (any, error)
}

// Dig resolves keys one after another starting at v. Records and other
// Diggable values, maps, slices and arrays can be traversed. Dig returns nil
// as soon as a step yields nil, and fails with ErrNotDiggable when keys
// remain but the current value cannot be looked into.
func Dig(v any, keys ...any) (any, error) {
	cur := v
	for _, key := range keys {
		if isNil(cur) {
			return nil, nil
		}
		next, err := digStep(cur, key)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Dig looks up a path of keys starting at r, see Dig.
func (r *Record) Dig(keys ...any) (any, error) {
	if len(keys) == 0 {
		return nil, r.typ.fail(Errorf(KindInvalidArguments, nil, "wrong number of arguments (given 0, expected 1+)"))
	}
	v, err := Dig(r, keys...)
	if err != nil {
		var rerr *Error
		if errors.As(err, &rerr) {
			return nil, r.typ.fail(rerr)
		}
		return nil, err
	}
	return v, nil
}

// DigKey implements Diggable. Unknown names and offsets outside the record
// yield nil; negative offsets count from the end.
func (r *Record) DigKey(key any) (any, error) {
	if name, ok := schema.FieldName(key); ok {
		if i, ok := r.typ.index[name]; ok {
			return r.values[i], nil
		}
		return nil, nil
	}
	if i, ok := toInt(key); ok {
		if i < 0 {
			i += len(r.values)
		}
		if i >= 0 && i < len(r.values) {
			return r.values[i], nil
		}
	}
	return nil, nil
}

func digStep(cur, key any) (any, error) {
	if d, ok := cur.(Diggable); ok {
		return d.DigKey(key)
	}

	rv := reflect.ValueOf(cur)
	switch rv.Kind() {
	case reflect.Map:
		k, ok := mapKey(rv.Type().Key(), key)
		if !ok {
			return nil, nil
		}
		found := rv.MapIndex(k)
		if !found.IsValid() {
			return nil, nil
		}
		return found.Interface(), nil
	case reflect.Slice, reflect.Array:
		i, ok := toInt(key)
		if !ok {
			return nil, Errorf(KindInvalidArguments, key, "no implicit conversion of %T into Integer", key)
		}
		if i < 0 {
			i += rv.Len()
		}
		if i < 0 || i >= rv.Len() {
			return nil, nil
		}
		return rv.Index(i).Interface(), nil
	default:
		return nil, Errorf(KindNotDiggable, cur, "%s does not have #dig method", typeName(cur))
	}
}

// mapKey adapts key to the map's key type. String kinds convert to each
// other (schema.Field to string); anything else must be assignable.
// Unhashable keys never match.
func mapKey(keyType reflect.Type, key any) (reflect.Value, bool) {
	kv := reflect.ValueOf(key)
	if !kv.IsValid() {
		if canBeNil(keyType) {
			return reflect.Zero(keyType), true
		}
		return reflect.Value{}, false
	}
	if !kv.Comparable() {
		return reflect.Value{}, false
	}
	if kv.Type().AssignableTo(keyType) {
		return kv, true
	}
	if kv.Kind() == reflect.String && keyType.Kind() == reflect.String {
		return kv.Convert(keyType), true
	}
	if classify(kv) != notNumber && classify(reflect.Zero(keyType)) != notNumber && kv.CanConvert(keyType) {
		converted := kv.Convert(keyType)
		// reject lossy conversions such as 1.5 -> 1
		if eq, _ := numericEqual(key, converted.Interface()); eq {
			return converted, true
		}
	}
	return reflect.Value{}, false
}

func canBeNil(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return true
	}
	return false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

func typeName(v any) string {
	if r, ok := v.(*Record); ok {
		return r.typ.String()
	}
	return fmt.Sprintf("%T", v)
}
