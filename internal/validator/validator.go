package validator

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/aretw0/factory/pkg/definition"
	"github.com/aretw0/factory/pkg/schema"
)

// ValidateDefinition checks a definition file without generating anything.
// Unlike File.Apply it keeps going after a problem and reports all of them.
// Value constraints are only checked when records are built.
func ValidateDefinition(f *definition.File) error {
	var errors []string
	report := func(format string, args ...any) {
		errors = append(errors, fmt.Sprintf(format, args...))
	}

	if f.Namespace != "" && !schema.IsConstantName(f.Namespace) {
		report("namespace: wrong constant name %s", f.Namespace)
	}

	types := make(map[string]definition.TypeSpec, len(f.Types))
	for i, spec := range f.Types {
		key := spec.Key(i)
		if _, dup := types[key]; dup {
			report("types[%d]: duplicate type key %s", i, key)
		}
		types[key] = spec

		if spec.Name != "" && !schema.IsConstantName(spec.Name) {
			report("types[%d]: wrong constant name %s", i, spec.Name)
		}

		seen := make(map[string]bool, len(spec.Fields))
		for _, field := range spec.Fields {
			switch {
			case !schema.IsIdentifier(field):
				report("types[%d]: %s is not a valid identifier", i, field)
			case seen[field]:
				report("types[%d]: duplicate member %s", i, field)
			}
			seen[field] = true
		}

		for _, field := range slices.Sorted(maps.Keys(spec.Types)) {
			if !seen[field] {
				report("types[%d]: type given for undeclared field %s", i, field)
			}
			if _, err := schema.ParseType(spec.Types[field]); err != nil {
				report("types[%d]: field %s: %v", i, field, err)
			}
		}
	}

	for i, rec := range f.Records {
		spec, ok := types[rec.Type]
		if !ok {
			report("records[%d]: unknown type %q", i, rec.Type)
			continue
		}
		if len(rec.Values) > 0 && len(rec.Fields) > 0 {
			report("records[%d]: record sets both values and fields", i)
		}
		if len(rec.Values) > len(spec.Fields) {
			report("records[%d]: %s takes at most %d values, got %d", i, rec.Type, len(spec.Fields), len(rec.Values))
		}
		for _, field := range slices.Sorted(maps.Keys(rec.Fields)) {
			if !slices.Contains(spec.Fields, field) {
				report("records[%d]: no member '%s' in %s", i, field, rec.Type)
			}
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}

	return nil
}
