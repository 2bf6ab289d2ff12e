package validator

import (
	"strings"
	"testing"

	"github.com/aretw0/factory/pkg/definition"
)

func TestValidateDefinition(t *testing.T) {
	// 1. Scenario A: Valid definition
	valid := &definition.File{
		Namespace: "Acme",
		Types: []definition.TypeSpec{
			{Name: "Worker", Fields: []string{"id", "position"}, Types: map[string]string{"id": "int"}},
			{Alias: "company", Fields: []string{"name", "worker"}},
		},
		Records: []definition.RecordSpec{
			{Type: "Worker", Values: []any{1, "PR"}},
			{Type: "company", Fields: map[string]any{"name": "Acme"}},
		},
	}

	if err := ValidateDefinition(valid); err != nil {
		t.Errorf("Scenario A (Valid) failed: %v", err)
	}

	// 2. Scenario B: Every entry is broken, all of them are reported
	broken := &definition.File{
		Namespace: "acme",
		Types: []definition.TypeSpec{
			{Name: "worker", Fields: []string{"id", "id", "bad field"}},
			{Alias: "p", Fields: []string{"x"}, Types: map[string]string{"x": "date", "y": "int"}},
			{Alias: "p"},
		},
		Records: []definition.RecordSpec{
			{Type: "ghost"},
			{Type: "p", Values: []any{1, 2}, Fields: map[string]any{"z": 1}},
		},
	}

	err := ValidateDefinition(broken)
	if err == nil {
		t.Fatal("Scenario B (Broken) should have failed, but got nil")
	}

	want := []string{
		"found 11 errors:",
		"namespace: wrong constant name acme",
		"types[0]: wrong constant name worker",
		"types[0]: duplicate member id",
		"types[0]: bad field is not a valid identifier",
		"types[1]: field x: unsupported type: date",
		"types[1]: type given for undeclared field y",
		"types[2]: duplicate type key p",
		`records[0]: unknown type "ghost"`,
		"records[1]: record sets both values and fields",
		"records[1]: p takes at most 0 values, got 2",
		"records[1]: no member 'z' in p",
	}
	for _, w := range want {
		if !strings.Contains(err.Error(), w) {
			t.Errorf("Expected %q in error, got:\n%v", w, err)
		}
	}
}
