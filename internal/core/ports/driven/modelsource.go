package driven

import (
	"context"

	"github.com/emap-labs/emap-cli/internal/core/domain"
)

// ModelSource supplies the current model snapshot from wherever the external
// provider left it. Sources return a fresh, fully-decoded snapshot per call;
// the core never reaches around a source to its backing document.
type ModelSource interface {
	// Load reads and decodes the current snapshot. Structural problems in
	// the document surface as errors wrapping domain.ErrMalformedModel.
	Load(ctx context.Context) (*domain.ModelSnapshot, error)

	// Describe identifies the source for logs and error messages,
	// e.g. a file path.
	Describe() string
}
