package schema

import (
	"maps"
	"slices"
)

// Schema maps field names to the type their values must satisfy.
// Fields without an entry accept any value.
type Schema map[string]Type

// ValidateField checks a single value against the type declared for field.
// Nil values and undeclared fields always pass.
func ValidateField(s Schema, field string, value any) error {
	if value == nil {
		return nil
	}
	typ, ok := s[field]
	if !ok || typ == nil {
		return nil
	}
	if err := typ.Validate(value); err != nil {
		return &ValidationError{
			Key:    field,
			Reason: err.Error(),
			Value:  value,
		}
	}
	return nil
}

// Validate checks values positionally against fields, reporting every
// failure in field order. values may be shorter than fields; missing values
// are treated as absent.
func Validate(s Schema, fields []string, values []any) error {
	if len(s) == 0 {
		return nil
	}

	var errs []error
	for i, field := range fields {
		if i >= len(values) {
			break
		}
		if err := ValidateField(s, field, values[i]); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// Check reports schema entries naming fields that are not in fields.
func Check(s Schema, fields []string) error {
	known := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		known[f] = struct{}{}
	}

	var errs []error
	for _, f := range slices.Sorted(maps.Keys(s)) {
		if _, ok := known[f]; !ok {
			errs = append(errs, &ValidationError{Key: f, Reason: "not a declared field"})
		}
	}
	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
