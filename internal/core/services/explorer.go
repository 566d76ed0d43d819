package services

import (
	"context"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/emap-labs/emap-cli/internal/core/domain"
	"github.com/emap-labs/emap-cli/internal/core/ports/driven"
	"github.com/emap-labs/emap-cli/internal/core/ports/driving"
	"github.com/emap-labs/emap-cli/internal/logger"
)

// Ensure ExplorerService implements the interface.
var _ driving.ExplorerService = (*ExplorerService)(nil)

// defaultSuggestLimit caps Suggest output when the caller passes no limit.
const defaultSuggestLimit = 5

// ExplorerService answers queries against the latest published artifact set.
// It holds no state of its own; every call reads the store's current set.
type ExplorerService struct {
	store driven.ArtifactStore
}

// NewExplorerService creates an explorer service over the artifact store.
func NewExplorerService(store driven.ArtifactStore) *ExplorerService {
	return &ExplorerService{store: store}
}

func (s *ExplorerService) current() (*domain.ArtifactSet, error) {
	set := s.store.Current()
	if set == nil {
		return nil, domain.ErrNoModel
	}
	return set, nil
}

// Chapters returns the workflow index entries in model order.
func (s *ExplorerService) Chapters(_ context.Context) ([]domain.IndexEntry, error) {
	set, err := s.current()
	if err != nil {
		return nil, err
	}

	chapters := make([]domain.IndexEntry, 0, len(set.Snapshot.Chapters))
	for _, entry := range set.Index {
		if entry.Kind == domain.EntryKindWorkflow {
			chapters = append(chapters, entry)
		}
	}
	return chapters, nil
}

// Search runs a case-folded substring search over the index and partitions
// matches into chapters, slices and elements. A blank query returns
// (nil, nil). Within each partition, entries whose display name contains the
// query rank before entries that matched only through their search text;
// ties keep index order.
func (s *ExplorerService) Search(_ context.Context, query string) (*domain.SearchResult, error) {
	set, err := s.current()
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	needle := foldText(query)

	logger.Debug("Search: %q over %d entries", needle, len(set.Index))

	// Two buckets per partition keep the rank sort stable without a
	// comparison sort: name matches first, text-only matches after.
	var (
		chapterName, chapterText []domain.IndexEntry
		sliceName, sliceText     []domain.IndexEntry
		elemName, elemText       []domain.IndexEntry
	)

	// Element entries whose name already surfaced as a slice match would
	// be duplicates; slice entries always precede elements in the index.
	sliceMatched := make(map[string]bool)

	for _, entry := range set.Index {
		nameHit := strings.Contains(foldText(entry.Name), needle)
		textHit := strings.Contains(entry.SearchText, needle)
		if !nameHit && !textHit {
			continue
		}

		switch entry.Kind {
		case domain.EntryKindWorkflow:
			if nameHit {
				chapterName = append(chapterName, entry)
			} else {
				chapterText = append(chapterText, entry)
			}
		case domain.EntryKindSlice:
			sliceMatched[entry.Name] = true
			if nameHit {
				sliceName = append(sliceName, entry)
			} else {
				sliceText = append(sliceText, entry)
			}
		case domain.EntryKindCommand, domain.EntryKindEvent:
			if sliceMatched[entry.Name] {
				continue
			}
			if nameHit {
				elemName = append(elemName, entry)
			} else {
				elemText = append(elemText, entry)
			}
		}
	}

	result := &domain.SearchResult{
		Chapters: append(chapterName, chapterText...),
		Slices:   append(sliceName, sliceText...),
		Elements: append(elemName, elemText...),
	}
	if result.Chapters == nil {
		result.Chapters = []domain.IndexEntry{}
	}
	if result.Slices == nil {
		result.Slices = []domain.IndexEntry{}
	}
	if result.Elements == nil {
		result.Elements = []domain.IndexEntry{}
	}

	logger.Debug("Search: %d chapters, %d slices, %d elements",
		len(result.Chapters), len(result.Slices), len(result.Elements))

	return result, nil
}

// CrossReferences looks up usage of a name by kind. Unknown names return a
// zero-value CrossReference, never an error.
func (s *ExplorerService) CrossReferences(
	_ context.Context, kind domain.RefKind, name string,
) (domain.CrossReference, error) {
	set, err := s.current()
	if err != nil {
		return domain.CrossReference{}, err
	}
	return set.Refs.Lookup(kind, name), nil
}

// WorkflowSlices returns a chapter's slices in order, each enriched with
// the resolved command and read-model declarations. Unknown chapters return
// an empty sequence.
func (s *ExplorerService) WorkflowSlices(
	_ context.Context, chapterName string,
) ([]domain.EnrichedSlice, error) {
	set, err := s.current()
	if err != nil {
		return nil, err
	}

	var chapter *domain.Chapter
	for i := range set.Snapshot.Chapters {
		if set.Snapshot.Chapters[i].Name == chapterName {
			chapter = &set.Snapshot.Chapters[i]
			break
		}
	}
	if chapter == nil {
		return []domain.EnrichedSlice{}, nil
	}

	commands := make(map[string]*domain.Command, len(set.Snapshot.Commands))
	for i := range set.Snapshot.Commands {
		commands[set.Snapshot.Commands[i].Name] = &set.Snapshot.Commands[i]
	}
	readModels := make(map[string]*domain.ReadModel, len(set.Snapshot.ReadModels))
	for i := range set.Snapshot.ReadModels {
		readModels[set.Snapshot.ReadModels[i].Name] = &set.Snapshot.ReadModels[i]
	}

	enriched := make([]domain.EnrichedSlice, 0, len(chapter.Slices))
	for si, sl := range chapter.Slices {
		es := domain.EnrichedSlice{
			Slice:       sl,
			ChapterName: chapter.Name,
			SliceIndex:  si,
		}
		if sl.Command != "" {
			es.CommandDetail = commands[sl.Command]
		}
		if sl.ReadModel != "" {
			es.ReadModelDetail = readModels[sl.ReadModel]
		}
		enriched = append(enriched, es)
	}

	return enriched, nil
}

// CrossChapterLinks reports, for each event on the slice, the other chapters
// touching it. Events unknown to the cross-reference map, or known only in
// this chapter, are included with an empty set; the caller decides whether
// they are worth showing.
func (s *ExplorerService) CrossChapterLinks(
	_ context.Context, chapterName string, slice domain.Slice,
) ([]domain.CrossChapterLink, error) {
	set, err := s.current()
	if err != nil {
		return nil, err
	}

	names := slice.EventNames()
	links := make([]domain.CrossChapterLink, 0, len(names))
	for _, ev := range names {
		ref := set.Refs.Events[ev]
		others := make([]string, 0, len(ref.Workflows))
		for _, wf := range ref.Workflows {
			if wf != chapterName {
				others = append(others, wf)
			}
		}
		links = append(links, domain.CrossChapterLink{
			EventName:      ev,
			OtherWorkflows: others,
		})
	}

	return links, nil
}

// Suggest ranks distinct index entry names by Levenshtein distance from the
// query, closest first; ties keep index order. A non-positive limit applies
// a small default.
func (s *ExplorerService) Suggest(
	_ context.Context, query string, limit int,
) ([]domain.Suggestion, error) {
	set, err := s.current()
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Suggestion{}, nil
	}
	if limit <= 0 {
		limit = defaultSuggestLimit
	}
	needle := foldText(query)

	seen := make(map[string]bool)
	suggestions := make([]domain.Suggestion, 0, len(set.Index))
	for _, entry := range set.Index {
		if seen[entry.Name] {
			continue
		}
		seen[entry.Name] = true
		suggestions = append(suggestions, domain.Suggestion{
			Name:     entry.Name,
			Distance: levenshtein.ComputeDistance(needle, foldText(entry.Name)),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Distance < suggestions[j].Distance
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}
