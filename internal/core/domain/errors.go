package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrMalformedModel indicates the model snapshot failed structural
	// validation. A rebuild that hits this keeps the previous artifact set
	// in place rather than indexing a corrupt snapshot.
	ErrMalformedModel = errors.New("malformed model snapshot")

	// ErrNoModel indicates no artifact set has been built yet. Queries
	// require at least one successful rebuild.
	ErrNoModel = errors.New("no model loaded")

	// ErrModelSourceUnavailable indicates the model source is not
	// configured or its backing document cannot be read.
	ErrModelSourceUnavailable = errors.New("model source unavailable")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
