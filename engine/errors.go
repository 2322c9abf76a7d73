package engine

import "errors"

// ErrUnknownEngine reports a name missing from a Registry.
var ErrUnknownEngine = errors.New("engine: unknown engine")

var errDuplicateEngine = errors.New("duplicate engine name")
