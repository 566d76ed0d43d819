package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/emap-labs/emap-cli/internal/core/domain"
	"github.com/emap-labs/emap-cli/internal/core/ports/driven"
	"github.com/emap-labs/emap-cli/internal/core/ports/driving"
	"github.com/emap-labs/emap-cli/internal/logger"
)

// Ensure RebuildService implements the interface.
var _ driving.RebuildService = (*RebuildService)(nil)

// RebuildService derives and publishes artifact sets. One rebuild runs at a
// time; queries keep reading the previously published set until the swap.
type RebuildService struct {
	mu     sync.Mutex
	source driven.ModelSource
	store  driven.ArtifactStore
}

// NewRebuildService creates a rebuild service over the given source and store.
func NewRebuildService(source driven.ModelSource, store driven.ArtifactStore) *RebuildService {
	return &RebuildService{source: source, store: store}
}

// Rebuild loads, validates, derives and publishes. A malformed snapshot
// returns an error wrapping domain.ErrMalformedModel and leaves the previous
// artifact set in place; an unchanged snapshot (same fingerprint) returns
// the already-published set without swapping.
func (s *RebuildService) Rebuild(ctx context.Context) (*domain.ArtifactSet, error) {
	if s.source == nil {
		return nil, domain.ErrModelSourceUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Section("Model Rebuild")
	logger.Debug("Source: %s", s.source.Describe())

	snapshot, err := s.source.Load(ctx)
	if err != nil {
		logger.Warn("Load failed: %v", err)
		return nil, fmt.Errorf("load model: %w", err)
	}

	if err := snapshot.Validate(); err != nil {
		logger.Warn("Validation failed: %v", err)
		return nil, err
	}

	fingerprint, err := snapshot.Fingerprint()
	if err != nil {
		return nil, fmt.Errorf("fingerprint model: %w", err)
	}

	if current := s.store.Current(); current != nil && current.Fingerprint == fingerprint {
		logger.Debug("Snapshot unchanged (fingerprint %.12s), keeping build %s",
			fingerprint, current.BuildID)
		return current, nil
	}

	set := &domain.ArtifactSet{
		BuildID:     uuid.NewString(),
		Fingerprint: fingerprint,
		BuiltAt:     time.Now().UTC(),
		Snapshot:    snapshot,
		Index:       BuildIndex(snapshot),
		Refs:        BuildCrossReferences(snapshot),
	}

	s.store.Swap(set)

	logger.Info("Build %s published: %d index entries, %d chapters",
		set.BuildID, len(set.Index), len(snapshot.Chapters))

	return set, nil
}
