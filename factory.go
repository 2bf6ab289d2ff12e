package factory

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/factory/internal/logging"
	"github.com/aretw0/factory/pkg/record"
	"github.com/aretw0/factory/pkg/registry"
	"github.com/aretw0/factory/pkg/schema"
)

// Name marks a generator argument as the type name. A plain string is
// also read as a name when it starts with an upper-case letter.
type Name string

// Factory generates record types and registers the named ones.
type Factory struct {
	registry *registry.Registry
	logger   *slog.Logger
	observer record.Observer
}

// Option defines a functional option for configuring the Factory.
type Option func(*Factory)

// WithRegistry sets the registry named types are registered in.
func WithRegistry(r *registry.Registry) Option {
	return func(f *Factory) {
		f.registry = r
	}
}

// WithNamespace gives the factory a fresh registry qualified by namespace.
func WithNamespace(namespace string) Option {
	return func(f *Factory) {
		f.registry = registry.New(registry.WithNamespace(namespace))
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Factory) {
		f.logger = logger
	}
}

// WithObserver reports generation, construction and failures to o.
func WithObserver(o record.Observer) Option {
	return func(f *Factory) {
		f.observer = o
	}
}

// NewFactory creates a Factory. Without options it owns an empty registry
// and discards its logs.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{}
	for _, opt := range opts {
		opt(f)
	}

	if f.registry == nil {
		f.registry = registry.New()
	}
	if f.logger == nil {
		f.logger = logging.NewNop()
	}
	return f
}

// Generate creates a record type from its arguments: an optional leading
// type name followed by field names.
//
//	f.Generate("Point", "x", "y")      // named, registered as Point
//	f.Generate("x", "y")               // anonymous
//	f.Generate(factory.Name("Point"))  // named, no fields
//
// A leading string that starts with an upper-case letter is the name and
// must match the constant name pattern. Fields are strings or schema.Field
// values and must be unique identifiers.
func (f *Factory) Generate(args ...any) (*record.Type, error) {
	return f.GenerateTyped(nil, args...)
}

// GenerateTyped is Generate with value constraints for some of the fields.
func (f *Factory) GenerateTyped(types schema.Schema, args ...any) (*record.Type, error) {
	name, fields, err := splitArgs(args)
	if err != nil {
		return nil, f.fail(err)
	}
	return f.Define(name, fields, types)
}

// Define creates a record type from an already separated name and field
// list. An empty name defines an anonymous type.
func (f *Factory) Define(name string, fields []string, types schema.Schema) (*record.Type, error) {
	opts := []record.TypeOption{
		record.WithName(name),
		record.WithSchema(types),
	}
	if name != "" {
		opts = append(opts, record.WithNamespace(f.registry.Namespace()))
	}
	if f.observer != nil {
		opts = append(opts, record.WithObserver(f.observer))
	}

	t, err := record.NewType(fields, opts...)
	if err != nil {
		return nil, f.fail(err)
	}

	if name != "" {
		if err := f.registry.Register(name, t); err != nil {
			f.logger.Warn("record type registration rejected", "name", name, "err", err)
			return nil, f.fail(err)
		}
	}

	f.logger.Debug("record type generated", "type", t.String(), "fields", t.Fields())
	if f.observer != nil {
		f.observer.TypeGenerated(t)
	}
	return t, nil
}

// Lookup returns a type generated under name by this factory.
func (f *Factory) Lookup(name string) (*record.Type, bool) {
	return f.registry.Lookup(name)
}

// Types returns the registered type names in generation order.
func (f *Factory) Types() []string {
	return f.registry.Names()
}

// Registry returns the registry named types are registered in.
func (f *Factory) Registry() *registry.Registry {
	return f.registry
}

func (f *Factory) fail(err error) error {
	f.logger.Debug("record type generation failed", "err", err)
	if f.observer != nil {
		f.observer.OperationFailed(nil, err)
	}
	return err
}

func splitArgs(args []any) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, record.Errorf(record.KindInvalidArguments, nil, "wrong number of arguments (given 0, expected 1+)")
	}

	var name string
	named := false
	switch first := args[0].(type) {
	case Name:
		name, named = string(first), true
	case string:
		name, named = first, schema.LooksLikeName(first)
	}

	rest := args
	if named {
		if !schema.IsConstantName(name) {
			return "", nil, record.Errorf(record.KindInvalidTypeName, name, "wrong constant name %s", name)
		}
		rest = args[1:]
	} else {
		name = ""
	}

	fields := make([]string, 0, len(rest))
	for _, arg := range rest {
		field, ok := schema.FieldName(arg)
		if !ok {
			return "", nil, record.Errorf(record.KindInvalidIdentifier, arg, "%s is not a valid identifier", describe(arg))
		}
		fields = append(fields, field)
	}
	return name, fields, nil
}

func describe(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", v)
}
