package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// meal does not exist in the directory. A claimed meal and a meal that never
// existed are indistinguishable to callers. Handlers map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails validation
// (missing required field, unknown temperature, non-positive portions, ...).
// Handlers map this to HTTP 400.
var ErrValidation = errors.New("validation error")
