package definition

import (
	"errors"
	"fmt"

	"github.com/aretw0/factory/pkg/record"
	"github.com/aretw0/factory/pkg/schema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// File is a decoded definition file.
type File struct {
	Namespace string       `json:"namespace" mapstructure:"namespace"`
	Types     []TypeSpec   `json:"types" mapstructure:"types"`
	Records   []RecordSpec `json:"records" mapstructure:"records"`
}

// TypeSpec declares one record type. Name is optional; anonymous types are
// referenced through Alias or their position.
type TypeSpec struct {
	Name   string            `json:"name" mapstructure:"name"`
	Alias  string            `json:"alias" mapstructure:"alias"`
	Fields []string          `json:"fields" mapstructure:"fields"`
	Types  map[string]string `json:"types" mapstructure:"types"`
}

// Key is the reference records use for the type at position i.
func (s TypeSpec) Key(i int) string {
	switch {
	case s.Alias != "":
		return s.Alias
	case s.Name != "":
		return s.Name
	default:
		return fmt.Sprintf("type[%d]", i)
	}
}

// RecordSpec builds one record either from positional Values or from named
// Fields.
type RecordSpec struct {
	Type   string         `json:"type" mapstructure:"type"`
	Values []any          `json:"values" mapstructure:"values"`
	Fields map[string]any `json:"fields" mapstructure:"fields"`
}

// Generator defines record types. *factory.Factory satisfies it.
type Generator interface {
	Define(name string, fields []string, types schema.Schema) (*record.Type, error)
}

// Result holds what Apply produced. Types are keyed by TypeSpec.Key in
// declaration order.
type Result struct {
	Types   *orderedmap.OrderedMap[string, *record.Type]
	Records []*record.Record
}

var (
	// ErrDuplicateKey is returned when two type entries share a reference key.
	ErrDuplicateKey = errors.New("duplicate type key")
	// ErrUnknownType is returned when a record references an undeclared type.
	ErrUnknownType = errors.New("unknown type")
	// ErrAmbiguousRecord is returned when a record sets both values and fields.
	ErrAmbiguousRecord = errors.New("record sets both values and fields")
)

// Apply generates the declared types with g and then builds the records.
// It stops at the first failing entry.
func (f *File) Apply(g Generator) (*Result, error) {
	res := &Result{
		Types:   orderedmap.New[string, *record.Type](orderedmap.WithCapacity[string, *record.Type](len(f.Types))),
		Records: make([]*record.Record, 0, len(f.Records)),
	}

	for i, spec := range f.Types {
		key := spec.Key(i)
		if _, exists := res.Types.Get(key); exists {
			return nil, fmt.Errorf("types[%d]: %w: %s", i, ErrDuplicateKey, key)
		}

		var s schema.Schema
		if len(spec.Types) > 0 {
			var err error
			if s, err = schema.ParseTypeMap(spec.Types); err != nil {
				return nil, fmt.Errorf("types[%d]: %w", i, err)
			}
		}

		t, err := g.Define(spec.Name, spec.Fields, s)
		if err != nil {
			return nil, fmt.Errorf("types[%d]: %w", i, err)
		}
		res.Types.Set(key, t)
	}

	for i, spec := range f.Records {
		r, err := spec.build(res.Types)
		if err != nil {
			return nil, fmt.Errorf("records[%d]: %w", i, err)
		}
		res.Records = append(res.Records, r)
	}
	return res, nil
}

func (s RecordSpec) build(types *orderedmap.OrderedMap[string, *record.Type]) (*record.Record, error) {
	t, ok := types.Get(s.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, s.Type)
	}
	if len(s.Values) > 0 && len(s.Fields) > 0 {
		return nil, ErrAmbiguousRecord
	}
	if s.Fields != nil {
		return t.FromMap(s.Fields)
	}
	return t.New(s.Values...)
}
