package schema

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Field is a field identifier. It exists so callers can mark a value as a
// field explicitly, even when it would otherwise read as a type name.
type Field string

var (
	identifierPattern = regexp.MustCompile(`\A[A-Za-z_][A-Za-z0-9_]*\z`)
	constantPattern   = regexp.MustCompile(`\A[A-Z][a-zA-Z0-9_]+\z`)
)

// IsIdentifier reports whether s can be used as a field name.
func IsIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// IsConstantName reports whether s can be used as a registered type name:
// an upper-case letter followed by at least one letter, digit or underscore.
func IsConstantName(s string) bool {
	return constantPattern.MatchString(s)
}

// LooksLikeName reports whether s starts with an upper-case letter, which is
// what marks a leading generator argument as a type name rather than a field.
func LooksLikeName(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsUpper(r)
}

// FieldName extracts a field name from an untyped argument.
// Only string kinds qualify; the returned name is not checked against
// IsIdentifier.
func FieldName(v any) (string, bool) {
	switch f := v.(type) {
	case string:
		return f, true
	case Field:
		return string(f), true
	default:
		return "", false
	}
}
