package record

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ToMap returns the fields and values as a mapping that preserves
// declaration order.
func (r *Record) ToMap() *orderedmap.OrderedMap[string, any] {
	m := orderedmap.New[string, any](orderedmap.WithCapacity[string, any](len(r.values)))
	for i, v := range r.values {
		m.Set(r.typ.fields[i], v)
	}
	return m
}

// ToPlainMap returns the fields and values as a built-in map.
func (r *Record) ToPlainMap() map[string]any {
	m := make(map[string]any, len(r.values))
	for i, v := range r.values {
		m[r.typ.fields[i]] = v
	}
	return m
}

// MarshalJSON encodes the record as a JSON object in field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	return r.ToMap().MarshalJSON()
}

// Decode copies the record into out, typically a pointer to a struct.
// Fields match struct fields by `json` tag or case-insensitive name, and
// nested records decode into nested structs.
func (r *Record) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     out,
		DecodeHook: recordToMapHook,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(r.ToPlainMap()); err != nil {
		return fmt.Errorf("decode %s: %w", r.typ.Label(), err)
	}
	return nil
}

var recordType = reflect.TypeOf((*Record)(nil))

func recordToMapHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from != recordType || to == recordType || to == recordType.Elem() {
		return data, nil
	}
	if rec, ok := data.(*Record); ok && rec != nil {
		return rec.ToPlainMap(), nil
	}
	return data, nil
}
