package factory

import (
	"github.com/aretw0/factory/pkg/record"
)

// std is the process-wide factory behind New. It is created at startup,
// written only through registration and never cleared.
var std = NewFactory()

// New generates a record type with the process-wide factory.
// See (*Factory).Generate for the argument rules.
func New(args ...any) (*record.Type, error) {
	return std.Generate(args...)
}

// Default returns the process-wide factory used by New.
func Default() *Factory {
	return std
}
