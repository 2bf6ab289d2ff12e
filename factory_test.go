package factory_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/aretw0/factory"
	"github.com/aretw0/factory/pkg/record"
	"github.com/aretw0/factory/pkg/registry"
	"github.com/aretw0/factory/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Named(t *testing.T) {
	f := factory.NewFactory()

	typ, err := f.Generate("Test", "a", "b")
	require.NoError(t, err)

	assert.Equal(t, "Test", typ.Name())
	assert.Equal(t, []string{"a", "b"}, typ.Fields())

	got, ok := f.Lookup("Test")
	assert.True(t, ok)
	assert.Same(t, typ, got)
	assert.Equal(t, []string{"Test"}, f.Types())
}

func TestGenerate_Anonymous(t *testing.T) {
	f := factory.NewFactory()

	typ, err := f.Generate("a", "b")
	require.NoError(t, err)
	assert.Equal(t, "", typ.Name())
	assert.Equal(t, []string{"a", "b"}, typ.MustNew().Members())
	assert.Empty(t, f.Types(), "anonymous types are not registered")
}

func TestGenerate_MixedFieldKinds(t *testing.T) {
	typ, err := factory.NewFactory().Generate("a", schema.Field("b"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, typ.Fields())
}

func TestGenerate_ExplicitName(t *testing.T) {
	f := factory.NewFactory()

	typ, err := f.Generate(factory.Name("Empty"))
	require.NoError(t, err)
	assert.Equal(t, 0, typ.Size())

	// an explicit field wins over the upper-case heuristic
	typ, err = f.Generate(schema.Field("Upper"), "lower")
	require.NoError(t, err)
	assert.Equal(t, []string{"Upper", "lower"}, typ.Fields())
	assert.Equal(t, "", typ.Name())
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []any
		target  error
		message string
	}{
		{"no arguments", nil, record.ErrInvalidArguments, "wrong number of arguments (given 0, expected 1+)"},
		{"non-string field", []any{"a", 1}, record.ErrInvalidIdentifier, "1 is not a valid identifier"},
		{"nil field", []any{"Test", nil}, record.ErrInvalidIdentifier, "nil is not a valid identifier"},
		{"malformed field", []any{"a", "b c"}, record.ErrInvalidIdentifier, "b c is not a valid identifier"},
		{"duplicate field", []any{"a", "a"}, record.ErrInvalidIdentifier, "duplicate member a"},
		{"malformed name", []any{"Wrong-Name", "a"}, record.ErrInvalidTypeName, "wrong constant name Wrong-Name"},
		{"explicit malformed name", []any{factory.Name("wrong_constant")}, record.ErrInvalidTypeName, "wrong constant name wrong_constant"},
		{"single letter name", []any{"T", "a"}, record.ErrInvalidTypeName, "wrong constant name T"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, err := factory.NewFactory().Generate(tt.args...)
			assert.Nil(t, typ)
			assert.ErrorIs(t, err, tt.target)
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestGenerate_DuplicateName(t *testing.T) {
	f := factory.NewFactory()

	_, err := f.Generate("Test", "a")
	require.NoError(t, err)

	_, err = f.Generate("Test", "b")
	assert.ErrorIs(t, err, record.ErrInvalidTypeName)
	assert.EqualError(t, err, "identifier Test is already defined")

	// another factory has its own namespace
	_, err = factory.NewFactory().Generate("Test", "b")
	assert.NoError(t, err)
}

func TestGenerate_SharedRegistry(t *testing.T) {
	reg := registry.New()
	a := factory.NewFactory(factory.WithRegistry(reg))
	b := factory.NewFactory(factory.WithRegistry(reg))

	_, err := a.Generate("Shared", "x")
	require.NoError(t, err)
	_, err = b.Generate("Shared", "x")
	assert.ErrorIs(t, err, record.ErrInvalidTypeName)
	assert.Same(t, reg, b.Registry())
}

func TestGenerateTyped(t *testing.T) {
	f := factory.NewFactory()

	typ, err := f.GenerateTyped(schema.Schema{"id": schema.Int()}, "Account", "id", "owner")
	require.NoError(t, err)

	_, err = typ.New(1, "ana")
	assert.NoError(t, err)
	_, err = typ.New("1", "ana")
	assert.ErrorIs(t, err, record.ErrInvalidValue)

	_, err = f.GenerateTyped(schema.Schema{"missing": schema.Int()}, "a")
	assert.ErrorIs(t, err, record.ErrInvalidIdentifier)
}

func TestDefine(t *testing.T) {
	f := factory.NewFactory(factory.WithNamespace("Factory"))

	typ, err := f.Define("Test", []string{"a", "b"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Factory::Test", typ.QualifiedName())
	assert.Equal(t, "#<test Factory::Test a=1, b=2>", typ.MustNew(1, 2).String())

	anon, err := f.Define("", []string{"a"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "#<factory a=1>", anon.MustNew(1).String())
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f := factory.NewFactory(factory.WithLogger(logger))

	_, err := f.Generate("Logged", "a")
	require.NoError(t, err)
	_, err = f.Generate("Logged", "a")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "record type generated")
	assert.Contains(t, out, "type=Logged")
	assert.Contains(t, out, "record type registration rejected")
}

type recordingObserver struct {
	generated []string
	failed    []record.Kind
}

func (o *recordingObserver) TypeGenerated(t *record.Type) {
	o.generated = append(o.generated, t.String())
}

func (o *recordingObserver) RecordConstructed(*record.Type) {}

func (o *recordingObserver) OperationFailed(_ *record.Type, err error) {
	o.failed = append(o.failed, record.KindOf(err))
}

func TestWithObserver(t *testing.T) {
	obs := &recordingObserver{}
	f := factory.NewFactory(factory.WithObserver(obs))

	typ, err := f.Generate("Seen", "a")
	require.NoError(t, err)
	_, _ = f.Generate()
	_, _ = typ.New(1, 2)

	assert.Equal(t, []string{"Seen"}, obs.generated)
	assert.Equal(t, []record.Kind{record.KindInvalidArguments, record.KindSizeMismatch}, obs.failed)
}

func TestNew_DefaultFactory(t *testing.T) {
	typ, err := factory.New("DefaultScope", "a")
	require.NoError(t, err)

	got, ok := factory.Default().Lookup("DefaultScope")
	assert.True(t, ok)
	assert.Same(t, typ, got)

	_, err = factory.New("DefaultScope", "a")
	assert.ErrorIs(t, err, record.ErrInvalidTypeName)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, factory.Version)
	assert.NotContains(t, factory.Version, "\n")
}

// The scenarios below walk through the documented behavior end to end.

func TestScenario_ValuesAndAccess(t *testing.T) {
	typ, err := factory.NewFactory().Generate("Test", "a", "b")
	require.NoError(t, err)
	r, err := typ.New(1, 2)
	require.NoError(t, err)

	assert.Equal(t, []any{1, 2}, r.Values())
	a, err := r.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 1, a)
	b, err := r.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 2, b)
}

func TestScenario_Errors(t *testing.T) {
	typ, err := factory.NewFactory().Generate("a", "b")
	require.NoError(t, err)

	_, err = typ.New(1, 2, 3)
	assert.EqualError(t, err, "factory size differs")

	r := typ.MustNew(1, 2)
	_, err = r.Get(2)
	assert.EqualError(t, err, "offset 2 too large for factory(size:2)")

	_, err = r.ValuesAt(0, 100)
	assert.EqualError(t, err, "offset 100 too large for factory(size:2)")
}

func TestScenario_Dig(t *testing.T) {
	f := factory.NewFactory()
	worker, err := f.Generate("id", "position")
	require.NoError(t, err)
	company, err := f.Generate("company", "worker")
	require.NoError(t, err)

	c := company.MustNew("Acme", worker.MustNew(1, "PR"))

	id, err := c.Dig("worker", "id")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	sex, err := c.Dig("worker", "sex")
	require.NoError(t, err)
	assert.Nil(t, sex)
}

func TestScenario_Display(t *testing.T) {
	typ, err := factory.NewFactory().Generate("Test", "a", "b")
	require.NoError(t, err)

	assert.Equal(t, "#<test Test a=1, b=2>", typ.MustNew(1, 2).String())
}
