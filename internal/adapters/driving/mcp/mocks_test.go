package mcp

import (
	"context"

	"github.com/emap-labs/emap-cli/internal/core/domain"
)

// mockExplorerService is a mock implementation of driving.ExplorerService.
type mockExplorerService struct {
	chapters    []domain.IndexEntry
	result      *domain.SearchResult
	ref         domain.CrossReference
	slices      []domain.EnrichedSlice
	links       []domain.CrossChapterLink
	suggestions []domain.Suggestion
	err         error
}

func (m *mockExplorerService) Chapters(_ context.Context) ([]domain.IndexEntry, error) {
	return m.chapters, m.err
}

func (m *mockExplorerService) Search(_ context.Context, _ string) (*domain.SearchResult, error) {
	return m.result, m.err
}

func (m *mockExplorerService) CrossReferences(
	_ context.Context, _ domain.RefKind, _ string,
) (domain.CrossReference, error) {
	return m.ref, m.err
}

func (m *mockExplorerService) WorkflowSlices(
	_ context.Context, _ string,
) ([]domain.EnrichedSlice, error) {
	return m.slices, m.err
}

func (m *mockExplorerService) CrossChapterLinks(
	_ context.Context, _ string, _ domain.Slice,
) ([]domain.CrossChapterLink, error) {
	return m.links, m.err
}

func (m *mockExplorerService) Suggest(
	_ context.Context, _ string, _ int,
) ([]domain.Suggestion, error) {
	return m.suggestions, m.err
}

// mockRebuildService is a mock implementation of driving.RebuildService.
type mockRebuildService struct {
	set *domain.ArtifactSet
	err error
}

func (m *mockRebuildService) Rebuild(_ context.Context) (*domain.ArtifactSet, error) {
	return m.set, m.err
}
