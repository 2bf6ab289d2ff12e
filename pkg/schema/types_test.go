package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sku string

type level uint8

func TestFieldTypes_Validate(t *testing.T) {
	tests := []struct {
		name  string
		typ   Type
		value any
		ok    bool
	}{
		{"any takes a struct", Any(), struct{}{}, true},
		{"any takes a record-like pointer", Any(), &struct{ x int }{}, true},
		{"string", String(), "PR", true},
		{"named string", String(), sku("A-1"), true},
		{"string rejects bytes", String(), []byte("PR"), false},
		{"int", Int(), 7, true},
		{"int64", Int(), int64(-7), true},
		{"uint", Int(), uint(7), true},
		{"named uint", Int(), level(3), true},
		{"whole float as int", Int(), 3.0, true},
		{"fractional float as int", Int(), 3.5, false},
		{"string as int", Int(), "7", false},
		{"float", Float(), 9.5, true},
		{"float32", Float(), float32(9.5), true},
		{"int as float", Float(), 9, true},
		{"uint64 as float", Float(), uint64(9), true},
		{"bool", Bool(), true, true},
		{"int as bool", Bool(), 1, false},
		{"list of strings", Slice(String()), []any{"hq", "sales"}, true},
		{"typed list", Slice(Int()), []int{1, 2}, true},
		{"array", Slice(Int()), [2]int{1, 2}, true},
		{"absent element", Slice(Int()), []any{1, nil, 3}, true},
		{"bad element", Slice(Int()), []any{1, "2"}, false},
		{"nested list", Slice(Slice(String())), [][]string{{"a"}, {"b", "c"}}, true},
		{"scalar as list", Slice(String()), "hq", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.typ.Validate(tt.value)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFieldTypes_Messages(t *testing.T) {
	assert.EqualError(t, Int().Validate("7"), "expected int, got string")
	assert.EqualError(t, Int().Validate(2.5), "expected int, got 2.5 (not a whole number)")
	assert.EqualError(t, Slice(Int()).Validate([]any{1, true}), "element 1: expected int, got bool")
	assert.EqualError(t, Slice(Int()).Validate(1), "expected [int], got int")
}

func TestFieldTypes_AbsentValuesPass(t *testing.T) {
	s := Schema{"id": Int(), "tags": Slice(String()), "on": Bool()}

	for field := range s {
		assert.NoError(t, ValidateField(s, field, nil), field)
	}
	assert.NoError(t, Validate(s, []string{"id", "tags", "on"}, []any{nil, nil}))
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"any", "any"},
		{"string", "string"},
		{"int", "int"},
		{" int ", "int"},
		{"float", "float"},
		{"bool", "bool"},
		{"[string]", "[string]"},
		{"[ int ]", "[int]"},
		{"[[string]]", "[[string]]"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			typ, err := ParseType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, typ.Name())

			again, err := ParseType(typ.Name())
			require.NoError(t, err)
			assert.Equal(t, typ.Name(), again.Name(), "Name reads back")
		})
	}
}

func TestParseType_Errors(t *testing.T) {
	for _, in := range []string{"", "date", "Int", "[]", "[int", "[date]"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseType(in)
			assert.ErrorContains(t, err, "unsupported type")
		})
	}
}

func TestParseTypeMap(t *testing.T) {
	s, err := ParseTypeMap(map[string]string{
		"id":    "int",
		"price": "float",
		"tags":  "[string]",
	})
	require.NoError(t, err)
	require.Len(t, s, 3)
	assert.Equal(t, "[string]", s["tags"].Name())
	assert.NoError(t, Validate(s, []string{"id", "price", "tags"}, []any{1, 9.5, []any{"hq"}}))

	_, err = ParseTypeMap(map[string]string{"b": "date", "a": "when"})
	assert.EqualError(t, err, "field a: unsupported type: when", "first failing field in name order")
}
