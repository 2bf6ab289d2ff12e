package record_test

import (
	"testing"

	"github.com/aretw0/factory/pkg/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesAt(t *testing.T) {
	r := newTest(t, 1, 2)

	tests := []struct {
		name      string
		selectors []any
		want      []any
	}{
		{"no selectors", nil, []any{}},
		{"single offset", []any{0}, []any{1}},
		{"repeated offsets", []any{0, 1, 0}, []any{1, 2, 1}},
		{"negative offsets", []any{-1, -2}, []any{2, 1}},
		{"range", []any{record.Span(0, 1)}, []any{1, 2}},
		{"range past the end", []any{record.Span(0, 3)}, []any{1, 2, nil, nil}},
		{"several ranges", []any{record.Span(0, 1), record.Span(0, 3)}, []any{1, 2, 1, 2, nil, nil}},
		{"offsets and ranges", []any{1, record.Span(0, 1)}, []any{2, 1, 2}},
		{"exclusive range", []any{record.SpanExclusive(0, 1)}, []any{1}},
		{"negative range end", []any{record.Span(0, -1)}, []any{1, 2}},
		{"empty range", []any{record.Span(1, 0)}, []any{}},
		{"range starting past the end", []any{record.Span(3, 4)}, []any{nil, nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ValuesAt(tt.selectors...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValuesAt_Errors(t *testing.T) {
	r := newTest(t, 1, 2)

	tests := []struct {
		name      string
		selectors []any
		target    error
		message   string
	}{
		{"offset too large", []any{0, 100}, record.ErrIndexOutOfRange, "offset 100 too large for test(size:2)"},
		{"offset too small", []any{-10, 1}, record.ErrIndexOutOfRange, "offset -10 too small for test(size:2)"},
		{"first bad offset wins", []any{-10, 100}, record.ErrIndexOutOfRange, "offset -10 too small for test(size:2)"},
		{"range start out of range", []any{record.Span(-10, 0)}, record.ErrRangeOutOfRange, "-10..0 out of range"},
		{"exclusive range message", []any{record.SpanExclusive(-3, 0)}, record.ErrRangeOutOfRange, "-3...0 out of range"},
		{"offset reported before an earlier range", []any{record.Span(-10, 0), -100}, record.ErrIndexOutOfRange, "offset -100 too small for test(size:2)"},
		{"first bad range wins", []any{record.Span(-5, 0), record.Span(-9, 0)}, record.ErrRangeOutOfRange, "-5..0 out of range"},
		{"offset before range", []any{-100, record.Span(-10, 0)}, record.ErrIndexOutOfRange, "offset -100 too small for test(size:2)"},
		{"unsupported selector", []any{"a"}, record.ErrInvalidArguments, "no implicit conversion of string into Integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ValuesAt(tt.selectors...)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.target)
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestRange_String(t *testing.T) {
	assert.Equal(t, "0..3", record.Span(0, 3).String())
	assert.Equal(t, "-1...2", record.SpanExclusive(-1, 2).String())
}
