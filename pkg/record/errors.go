package record

import (
	"errors"
	"fmt"
)

// Kind classifies a record error.
type Kind int

const (
	KindUnknown Kind = iota
	// KindInvalidArguments: the generator got no arguments, or a selector of an unsupported kind.
	KindInvalidArguments
	// KindInvalidIdentifier: a field name is not an identifier, or is declared twice.
	KindInvalidIdentifier
	// KindInvalidTypeName: a type name is malformed or already registered.
	KindInvalidTypeName
	// KindSizeMismatch: more constructor values than declared fields.
	KindSizeMismatch
	// KindUnknownMember: lookup by a name the type does not declare.
	KindUnknownMember
	// KindIndexOutOfRange: lookup by an integer offset outside the record.
	KindIndexOutOfRange
	// KindRangeOutOfRange: a range whose start lies before the record.
	KindRangeOutOfRange
	// KindNotDiggable: Dig reached a value that cannot be looked into.
	KindNotDiggable
	// KindInvalidValue: a value rejected by the field's declared type.
	KindInvalidValue
)

var kindNames = map[Kind]string{
	KindUnknown:           "unknown",
	KindInvalidArguments:  "invalid_arguments",
	KindInvalidIdentifier: "invalid_identifier",
	KindInvalidTypeName:   "invalid_type_name",
	KindSizeMismatch:      "size_mismatch",
	KindUnknownMember:     "unknown_member",
	KindIndexOutOfRange:   "index_out_of_range",
	KindRangeOutOfRange:   "range_out_of_range",
	KindNotDiggable:       "not_diggable",
	KindInvalidValue:      "invalid_value",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Sentinel errors, one per Kind. Every *Error matches its sentinel with errors.Is.
var (
	ErrInvalidArguments  = errors.New("invalid arguments")
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrInvalidTypeName   = errors.New("invalid type name")
	ErrSizeMismatch      = errors.New("size mismatch")
	ErrUnknownMember     = errors.New("unknown member")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrRangeOutOfRange   = errors.New("range out of range")
	ErrNotDiggable       = errors.New("not diggable")
	ErrInvalidValue      = errors.New("invalid value")
)

var sentinels = map[Kind]error{
	KindInvalidArguments:  ErrInvalidArguments,
	KindInvalidIdentifier: ErrInvalidIdentifier,
	KindInvalidTypeName:   ErrInvalidTypeName,
	KindSizeMismatch:      ErrSizeMismatch,
	KindUnknownMember:     ErrUnknownMember,
	KindIndexOutOfRange:   ErrIndexOutOfRange,
	KindRangeOutOfRange:   ErrRangeOutOfRange,
	KindNotDiggable:       ErrNotDiggable,
	KindInvalidValue:      ErrInvalidValue,
}

// Error is returned by every failing operation in this package and by the
// generator. Msg is the full diagnostic; Value is the offending input.
type Error struct {
	Kind  Kind
	Msg   string
	Value any
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Msg == "" {
		return e.Err.Error()
	}
	return e.Msg
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an *Error of the given kind.
func Errorf(kind Kind, value any, format string, args ...any) *Error {
	return &Error{Kind: kind, Value: value, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
