package driven

import "github.com/emap-labs/emap-cli/internal/core/domain"

// ArtifactStore holds the latest fully-built artifact set. Implementations
// must swap atomically: readers observe either the previous complete set or
// the new complete set, never a partially-built one.
type ArtifactStore interface {
	// Current returns the latest artifact set, or nil before the first
	// successful rebuild.
	Current() *domain.ArtifactSet

	// Swap publishes a new artifact set, replacing the previous one.
	Swap(set *domain.ArtifactSet)
}
