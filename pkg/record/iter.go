package record

import "iter"

// Each calls fn with every value in declaration order and returns r.
// A nil fn visits nothing.
func (r *Record) Each(fn func(value any)) *Record {
	if fn == nil {
		return r
	}
	for _, v := range r.values {
		fn(v)
	}
	return r
}

// All returns a lazy sequence over the values. The sequence reads the record
// when iterated, so it can be ranged over repeatedly and sees later updates.
func (r *Record) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range r.values {
			if !yield(v) {
				return
			}
		}
	}
}

// EachPair calls fn with every (field, value) pair and returns r.
// A nil fn visits nothing.
func (r *Record) EachPair(fn func(field string, value any)) *Record {
	if fn == nil {
		return r
	}
	for i, v := range r.values {
		fn(r.typ.fields[i], v)
	}
	return r
}

// Pairs returns a lazy sequence over (field, value) pairs.
func (r *Record) Pairs() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for i, v := range r.values {
			if !yield(r.typ.fields[i], v) {
				return
			}
		}
	}
}

// Select returns the values for which pred holds, in declaration order.
// A nil pred selects every value.
func (r *Record) Select(pred func(value any) bool) []any {
	if pred == nil {
		return r.Values()
	}
	out := make([]any, 0, len(r.values))
	for _, v := range r.values {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// SelectSeq is the lazy form of Select. A nil pred yields every value.
func (r *Record) SelectSeq(pred func(value any) bool) iter.Seq[any] {
	if pred == nil {
		return r.All()
	}
	return func(yield func(any) bool) {
		for v := range r.All() {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}
