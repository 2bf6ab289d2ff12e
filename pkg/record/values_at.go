package record

import "fmt"

// Range selects consecutive offsets for ValuesAt. Negative bounds count
// from the end of the record.
type Range struct {
	Start     int
	End       int
	Exclusive bool
}

// Span returns the inclusive range start..end.
func Span(start, end int) Range {
	return Range{Start: start, End: end}
}

// SpanExclusive returns the range start...end, which excludes end.
func SpanExclusive(start, end int) Range {
	return Range{Start: start, End: end, Exclusive: true}
}

func (rg Range) String() string {
	if rg.Exclusive {
		return fmt.Sprintf("%d...%d", rg.Start, rg.End)
	}
	return fmt.Sprintf("%d..%d", rg.Start, rg.End)
}

// bounds resolves the range against size n. Only the start is checked:
// offsets past the end are allowed and read as nil.
func (rg Range) bounds(n int) (start, length int, ok bool) {
	start, end := rg.Start, rg.End
	if start < 0 {
		start += n
		if start < 0 {
			return 0, 0, false
		}
	}
	if end < 0 {
		end += n
	}
	if !rg.Exclusive {
		end++
	}
	length = end - start
	if length < 0 {
		length = 0
	}
	return start, length, true
}

// ValuesAt returns the values at each selector, in selector order.
// Selectors are integer offsets in [-Size(), Size()) and Ranges.
//
// Integer offsets are checked before ranges, each group left to right, so
// a bad offset is reported even when a bad range precedes it. Nothing is
// returned on error.
func (r *Record) ValuesAt(selectors ...any) ([]any, error) {
	n := len(r.values)

	for _, sel := range selectors {
		if _, ok := sel.(Range); ok {
			continue
		}
		i, ok := toInt(sel)
		if !ok {
			return nil, r.typ.fail(Errorf(KindInvalidArguments, sel, "no implicit conversion of %T into Integer", sel))
		}
		if i < -n {
			return nil, r.typ.fail(r.offsetError(i, "small"))
		}
		if i > n-1 {
			return nil, r.typ.fail(r.offsetError(i, "large"))
		}
	}

	for _, sel := range selectors {
		if rg, ok := sel.(Range); ok {
			if _, _, ok := rg.bounds(n); !ok {
				return nil, r.typ.fail(Errorf(KindRangeOutOfRange, rg, "%s out of range", rg))
			}
		}
	}

	out := make([]any, 0, len(selectors))
	for _, sel := range selectors {
		rg, ok := sel.(Range)
		if !ok {
			i, _ := toInt(sel)
			if i < 0 {
				i += n
			}
			out = append(out, r.values[i])
			continue
		}

		start, length, _ := rg.bounds(n)
		for i := start; i < start+length; i++ {
			if i < n {
				out = append(out, r.values[i])
			} else {
				out = append(out, nil)
			}
		}
	}
	return out, nil
}
