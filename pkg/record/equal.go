package record

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// maxHashDepth bounds traversal of self-referencing values when hashing
// and loosely comparing.
const maxHashDepth = 32

// Equal reports whether other is a record of the same type whose values
// are pairwise equal, treating numbers of different Go types as equal when
// they hold the same value (1 == 1.0). Records that contain themselves
// compare without looping.
func (r *Record) Equal(other any) bool {
	return r.equal(other, make(map[recordPair]bool), 0)
}

// recordPair is a comparison in progress.
type recordPair struct{ a, b *Record }

func (r *Record) equal(other any, comparing map[recordPair]bool, depth int) bool {
	o, ok := other.(*Record)
	if !ok || o == nil || r.typ != o.typ {
		return false
	}
	p := recordPair{r, o}
	if comparing[p] {
		return true
	}
	comparing[p] = true
	defer delete(comparing, p)

	for i := range r.values {
		if !looseEqual(r.values[i], o.values[i], comparing, depth+1) {
			return false
		}
	}
	return true
}

// StrictEqual reports whether other is a record of the same type whose
// values are identical in type and value (1 and 1.0 differ).
func (r *Record) StrictEqual(other any) bool {
	o, ok := other.(*Record)
	if !ok || o == nil || r.typ != o.typ {
		return false
	}
	return reflect.DeepEqual(r.values, o.values)
}

// Hash returns a hash of the record's type and values. Records that are
// StrictEqual hash identically.
func (r *Record) Hash() uint64 {
	d := xxhash.New()
	writeUint(d, r.typ.id)
	for _, v := range r.values {
		hashValue(d, reflect.ValueOf(v), 0)
	}
	return d.Sum64()
}

func looseEqual(a, b any, comparing map[recordPair]bool, depth int) bool {
	if ra, ok := a.(*Record); ok {
		if ra == nil {
			return isNil(b)
		}
		return ra.equal(b, comparing, depth)
	}
	if eq, ok := numericEqual(a, b); ok {
		return eq
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if !av.IsValid() || !bv.IsValid() {
		return !av.IsValid() && !bv.IsValid()
	}
	// plain containers that reach themselves
	if depth > maxHashDepth {
		return reflect.DeepEqual(a, b)
	}

	switch {
	case isList(av) && isList(bv):
		if av.Len() != bv.Len() {
			return false
		}
		for i := 0; i < av.Len(); i++ {
			if !looseEqual(av.Index(i).Interface(), bv.Index(i).Interface(), comparing, depth+1) {
				return false
			}
		}
		return true
	case av.Kind() == reflect.Map && bv.Kind() == reflect.Map && av.Type() == bv.Type():
		if av.Len() != bv.Len() {
			return false
		}
		iter := av.MapRange()
		for iter.Next() {
			other := bv.MapIndex(iter.Key())
			if !other.IsValid() || !looseEqual(iter.Value().Interface(), other.Interface(), comparing, depth+1) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

func isList(v reflect.Value) bool {
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}

type numberClass int

const (
	notNumber numberClass = iota
	signedNumber
	unsignedNumber
	floatNumber
)

func classify(v reflect.Value) numberClass {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedNumber
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsignedNumber
	case reflect.Float32, reflect.Float64:
		return floatNumber
	default:
		return notNumber
	}
}

// numericEqual compares a and b by value when both are numbers.
// ok is false when either is not a number.
func numericEqual(a, b any) (eq bool, ok bool) {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	ac, bc := classify(av), classify(bv)
	if ac == notNumber || bc == notNumber {
		return false, false
	}

	switch {
	case ac == signedNumber && bc == signedNumber:
		return av.Int() == bv.Int(), true
	case ac == unsignedNumber && bc == unsignedNumber:
		return av.Uint() == bv.Uint(), true
	case ac == signedNumber && bc == unsignedNumber:
		return av.Int() >= 0 && uint64(av.Int()) == bv.Uint(), true
	case ac == unsignedNumber && bc == signedNumber:
		return bv.Int() >= 0 && uint64(bv.Int()) == av.Uint(), true
	default:
		return toFloat(av) == toFloat(bv), true
	}
}

func toFloat(v reflect.Value) float64 {
	switch classify(v) {
	case signedNumber:
		return float64(v.Int())
	case unsignedNumber:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func writeUint(d *xxhash.Digest, u uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	_, _ = d.Write(buf[:])
}

func writeString(d *xxhash.Digest, s string) {
	writeUint(d, uint64(len(s)))
	_, _ = d.WriteString(s)
}

// hashValue feeds a canonical encoding of v into d. Values that are
// reflect.DeepEqual produce the same encoding.
func hashValue(d *xxhash.Digest, v reflect.Value, depth int) {
	if depth > maxHashDepth {
		return
	}
	if !v.IsValid() {
		_, _ = d.WriteString("nil")
		return
	}

	writeString(d, v.Type().String())
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			writeUint(d, 1)
		} else {
			writeUint(d, 0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint(d, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint(d, v.Uint())
	case reflect.Float32, reflect.Float64:
		writeUint(d, floatBits(v.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		writeUint(d, floatBits(real(c)))
		writeUint(d, floatBits(imag(c)))
	case reflect.String:
		writeString(d, v.String())
	case reflect.Slice:
		if v.IsNil() {
			_, _ = d.WriteString("nil")
			return
		}
		fallthrough
	case reflect.Array:
		writeUint(d, uint64(v.Len()))
		for i := 0; i < v.Len(); i++ {
			hashValue(d, v.Index(i), depth+1)
		}
	case reflect.Map:
		if v.IsNil() {
			_, _ = d.WriteString("nil")
			return
		}
		// Entry order is random; combine per-entry hashes commutatively.
		var sum uint64
		iter := v.MapRange()
		for iter.Next() {
			entry := xxhash.New()
			hashValue(entry, iter.Key(), depth+1)
			hashValue(entry, iter.Value(), depth+1)
			sum += entry.Sum64()
		}
		writeUint(d, uint64(v.Len()))
		writeUint(d, sum)
	case reflect.Pointer:
		if v.IsNil() {
			_, _ = d.WriteString("nil")
			return
		}
		if v.CanInterface() {
			if rec, ok := v.Interface().(*Record); ok {
				writeUint(d, rec.typ.id)
				for _, elem := range rec.values {
					hashValue(d, reflect.ValueOf(elem), depth+1)
				}
				return
			}
		}
		hashValue(d, v.Elem(), depth+1)
	case reflect.Interface:
		hashValue(d, v.Elem(), depth+1)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			hashValue(d, v.Field(i), depth+1)
		}
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		// Only nil funcs are DeepEqual; channels compare by identity.
		if v.IsNil() {
			_, _ = d.WriteString("nil")
		} else if v.Kind() != reflect.Func {
			writeUint(d, uint64(v.Pointer()))
		}
	}
}

func floatBits(f float64) uint64 {
	if f == 0 {
		// -0.0 == 0.0
		return 0
	}
	return math.Float64bits(f)
}
