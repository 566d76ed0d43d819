// Package memory provides the in-memory artifact store.
package memory

import (
	"sync/atomic"

	"github.com/emap-labs/emap-cli/internal/core/domain"
	"github.com/emap-labs/emap-cli/internal/core/ports/driven"
)

// Ensure ArtifactStore implements the interface.
var _ driven.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore holds the latest artifact set behind an atomic pointer.
// Readers always observe a complete set: the swap replaces the whole
// reference, never fields of a live set.
type ArtifactStore struct {
	current atomic.Pointer[domain.ArtifactSet]
}

// NewArtifactStore creates an empty store; Current returns nil until the
// first Swap.
func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{}
}

// Current returns the latest published artifact set, or nil.
func (s *ArtifactStore) Current() *domain.ArtifactSet {
	return s.current.Load()
}

// Swap publishes a new artifact set.
func (s *ArtifactStore) Swap(set *domain.ArtifactSet) {
	s.current.Store(set)
}
