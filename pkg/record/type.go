package record

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/aretw0/factory/pkg/schema"
)

// anonymousLabel names types generated without a type name.
const anonymousLabel = "factory"

var lastTypeID atomic.Uint64

// Observer receives notifications about types and their records.
// Implementations must be safe for concurrent use.
type Observer interface {
	TypeGenerated(t *Type)
	RecordConstructed(t *Type)
	// OperationFailed is called with a nil type when generation itself failed.
	OperationFailed(t *Type, err error)
}

// Type is a generated record type: an ordered, immutable list of fields
// plus the constructor for records holding one value per field.
type Type struct {
	id        uint64
	name      string
	namespace string
	fields    []string
	index     map[string]int
	schema    schema.Schema
	observer  Observer
}

// TypeOption configures a Type at creation.
type TypeOption func(*Type)

// WithName gives the type a constant-style name (e.g. "Point").
func WithName(name string) TypeOption {
	return func(t *Type) {
		t.name = name
	}
}

// WithNamespace qualifies a named type, so "Point" displays as "Geo::Point".
func WithNamespace(namespace string) TypeOption {
	return func(t *Type) {
		t.namespace = namespace
	}
}

// WithSchema constrains field values. Entries must name declared fields.
func WithSchema(s schema.Schema) TypeOption {
	return func(t *Type) {
		t.schema = maps.Clone(s)
	}
}

// WithObserver reports constructions and failures to o.
func WithObserver(o Observer) TypeOption {
	return func(t *Type) {
		t.observer = o
	}
}

// NewType validates fields and returns a new Type. Every call yields a
// distinct type, even for identical field lists.
func NewType(fields []string, opts ...TypeOption) (*Type, error) {
	t := &Type{
		fields: slices.Clone(fields),
		index:  make(map[string]int, len(fields)),
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.name != "" && !schema.IsConstantName(t.name) {
		return nil, Errorf(KindInvalidTypeName, t.name, "wrong constant name %s", t.name)
	}
	for i, f := range t.fields {
		if !schema.IsIdentifier(f) {
			return nil, Errorf(KindInvalidIdentifier, f, "%s is not a valid identifier", f)
		}
		if _, dup := t.index[f]; dup {
			return nil, Errorf(KindInvalidIdentifier, f, "duplicate member %s", f)
		}
		t.index[f] = i
	}
	if err := schema.Check(t.schema, t.fields); err != nil {
		return nil, &Error{Kind: KindInvalidIdentifier, Value: t.schema, Err: err}
	}

	t.id = lastTypeID.Add(1)
	return t, nil
}

// ID is unique per process.
func (t *Type) ID() uint64 { return t.id }

// Name returns the type name, or "" for anonymous types.
func (t *Type) Name() string { return t.name }

// QualifiedName returns the namespaced name ("Geo::Point"), or "" for anonymous types.
func (t *Type) QualifiedName() string {
	if t.name == "" {
		return ""
	}
	if t.namespace == "" {
		return t.name
	}
	return t.namespace + "::" + t.name
}

// Label is the lower-cased name used in messages and display strings.
func (t *Type) Label() string {
	if t.name == "" {
		return anonymousLabel
	}
	return strings.ToLower(t.name)
}

// Fields returns a copy of the field names in declaration order.
func (t *Type) Fields() []string { return slices.Clone(t.fields) }

// Size returns the number of fields.
func (t *Type) Size() int { return len(t.fields) }

// Index returns the position of field.
func (t *Type) Index(field string) (int, bool) {
	i, ok := t.index[field]
	return i, ok
}

// Schema returns a copy of the field value constraints.
func (t *Type) Schema() schema.Schema { return maps.Clone(t.schema) }

func (t *Type) String() string {
	if q := t.QualifiedName(); q != "" {
		return q
	}
	return fmt.Sprintf("%s(%s)", anonymousLabel, strings.Join(t.fields, ", "))
}

// New builds a record from positional values. Missing trailing values are
// left nil; more values than fields is an error.
func (t *Type) New(values ...any) (*Record, error) {
	if len(values) > len(t.fields) {
		return nil, t.fail(Errorf(KindSizeMismatch, values, "%s size differs", t.Label()))
	}

	slots := make([]any, len(t.fields))
	copy(slots, values)
	if err := schema.Validate(t.schema, t.fields, slots); err != nil {
		return nil, t.fail(&Error{Kind: KindInvalidValue, Value: values, Err: err})
	}

	return t.construct(slots), nil
}

// MustNew is like New but panics on error.
func (t *Type) MustNew(values ...any) *Record {
	r, err := t.New(values...)
	if err != nil {
		panic(err)
	}
	return r
}

// FromMap builds a record from named values. Fields absent from m are nil.
func (t *Type) FromMap(m map[string]any) (*Record, error) {
	slots := make([]any, len(t.fields))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		i, ok := t.index[k]
		if !ok {
			return nil, t.fail(t.unknownMember(k))
		}
		slots[i] = m[k]
	}
	if err := schema.Validate(t.schema, t.fields, slots); err != nil {
		return nil, t.fail(&Error{Kind: KindInvalidValue, Value: m, Err: err})
	}

	return t.construct(slots), nil
}

// Accessor returns the getter/setter pair for field.
func (t *Type) Accessor(field string) (Accessor, error) {
	i, ok := t.index[field]
	if !ok {
		return Accessor{}, t.fail(t.unknownMember(field))
	}
	return Accessor{typ: t, field: field, index: i}, nil
}

func (t *Type) construct(slots []any) *Record {
	if t.observer != nil {
		t.observer.RecordConstructed(t)
	}
	return &Record{typ: t, values: slots}
}

func (t *Type) unknownMember(key any) *Error {
	return Errorf(KindUnknownMember, key, "no member '%v' in %s", key, t.Label())
}

func (t *Type) fail(err *Error) error {
	if t.observer != nil {
		t.observer.OperationFailed(t, err)
	}
	return err
}

// Accessor reads and writes one field of records of a single type.
type Accessor struct {
	typ   *Type
	field string
	index int
}

// Field returns the accessed field name.
func (a Accessor) Field() string { return a.field }

// Get returns the field value. It panics if r is not of the accessor's type.
func (a Accessor) Get(r *Record) any {
	a.mustMatch(r)
	return r.values[a.index]
}

// Set stores v in the field, honoring the type's schema.
// It panics if r is not of the accessor's type.
func (a Accessor) Set(r *Record, v any) error {
	a.mustMatch(r)
	return r.store(a.index, v)
}

func (a Accessor) mustMatch(r *Record) {
	if r == nil || r.typ != a.typ {
		panic(fmt.Sprintf("record: accessor for %s.%s used on %v", a.typ, a.field, recordTypeOf(r)))
	}
}

func recordTypeOf(r *Record) any {
	if r == nil {
		return nil
	}
	return r.typ
}
