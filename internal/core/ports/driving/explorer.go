package driving

import (
	"context"

	"github.com/emap-labs/emap-cli/internal/core/domain"
)

// ExplorerService exposes the cross-reference query engine to external
// actors. All operations are pure reads of the latest built artifact set;
// the only error any of them returns is domain.ErrNoModel, before the first
// successful rebuild.
type ExplorerService interface {
	// Chapters lists the workflow index entries in model order, so a
	// caller can offer chapter navigation and pick its own default.
	Chapters(ctx context.Context) ([]domain.IndexEntry, error)

	// Search runs a case-folded substring search over the index.
	// A blank query returns (nil, nil): "not searching" is distinct from
	// a search that found nothing, which returns empty partitions.
	Search(ctx context.Context, query string) (*domain.SearchResult, error)

	// CrossReferences looks up usage of a name by kind. Unknown names
	// return a zero-value CrossReference.
	CrossReferences(ctx context.Context, kind domain.RefKind, name string) (domain.CrossReference, error)

	// WorkflowSlices returns the slices of a chapter in order, enriched
	// with resolved command and read-model detail. Unknown chapters
	// return an empty sequence.
	WorkflowSlices(ctx context.Context, chapterName string) ([]domain.EnrichedSlice, error)

	// CrossChapterLinks reports, for each event on the slice, which other
	// chapters also touch it. Events with no other chapters are included
	// with an empty set.
	CrossChapterLinks(ctx context.Context, chapterName string, slice domain.Slice) ([]domain.CrossChapterLink, error)

	// Suggest ranks index entry names by edit distance from the query,
	// closest first, for "did you mean" output.
	Suggest(ctx context.Context, query string, limit int) ([]domain.Suggestion, error)
}
