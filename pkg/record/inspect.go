package record

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Inspect renders the record for debugging:
//
//	#<point Geo::Point x=1, y=2.0>
//
// Anonymous types render as "#<factory x=1, y=2.0>".
func (r *Record) Inspect() string {
	var b strings.Builder
	r.inspect(&b, map[*Record]bool{})
	return b.String()
}

// String is an alias of Inspect.
func (r *Record) String() string { return r.Inspect() }

// InspectValue renders a single value the way Inspect renders field
// values: quoted strings, "2.0" for whole floats, nil for absent values.
func InspectValue(v any) string {
	var b strings.Builder
	inspectValue(&b, v, map[*Record]bool{})
	return b.String()
}

func (r *Record) inspect(b *strings.Builder, seen map[*Record]bool) {
	b.WriteString("#<")
	b.WriteString(r.typ.Label())
	if q := r.typ.QualifiedName(); q != "" {
		b.WriteByte(' ')
		b.WriteString(q)
	}
	if seen[r] {
		b.WriteString(":...>")
		return
	}
	seen[r] = true
	defer delete(seen, r)

	for i, v := range r.values {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}
		b.WriteString(r.typ.fields[i])
		b.WriteByte('=')
		inspectValue(b, v, seen)
	}
	b.WriteByte('>')
}

func inspectValue(b *strings.Builder, v any, seen map[*Record]bool) {
	switch x := v.(type) {
	case nil:
		b.WriteString("nil")
		return
	case *Record:
		if x == nil {
			b.WriteString("nil")
			return
		}
		x.inspect(b, seen)
		return
	case string:
		b.WriteString(strconv.Quote(x))
		return
	case float64:
		b.WriteString(formatFloat(x, 64))
		return
	case float32:
		b.WriteString(formatFloat(float64(x), 32))
		return
	case fmt.Stringer:
		b.WriteString(x.String())
		return
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			b.WriteString("nil")
			return
		}
		b.WriteByte('[')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			inspectValue(b, rv.Index(i).Interface(), seen)
		}
		b.WriteByte(']')
	case reflect.Map:
		if rv.IsNil() {
			b.WriteString("nil")
			return
		}
		entries := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			var e strings.Builder
			inspectValue(&e, iter.Key().Interface(), seen)
			e.WriteString("=>")
			inspectValue(&e, iter.Value().Interface(), seen)
			entries = append(entries, e.String())
		}
		slices.Sort(entries)
		b.WriteByte('{')
		b.WriteString(strings.Join(entries, ", "))
		b.WriteByte('}')
	case reflect.Pointer:
		if rv.IsNil() {
			b.WriteString("nil")
			return
		}
		fmt.Fprintf(b, "%v", v)
	default:
		fmt.Fprintf(b, "%v", v)
	}
}

// formatFloat keeps a decimal point on whole numbers so 2.0 stays distinct
// from the integer 2.
func formatFloat(f float64, bitSize int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
