package driving

import (
	"context"

	"github.com/emap-labs/emap-cli/internal/core/domain"
)

// RebuildService drives the derive-and-publish lifecycle of the artifacts.
type RebuildService interface {
	// Rebuild loads the snapshot from the model source, validates it,
	// derives the index and cross-references, and atomically publishes the
	// result. On a malformed snapshot it returns the validation error and
	// leaves the previous artifact set in place. Rebuilding an unchanged
	// snapshot returns the already-published set.
	Rebuild(ctx context.Context) (*domain.ArtifactSet, error)
}
