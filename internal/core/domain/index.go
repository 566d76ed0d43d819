package domain

// EntryKind classifies an index entry by the model entity it was derived from.
type EntryKind string

const (
	EntryKindWorkflow EntryKind = "workflow"
	EntryKindSlice    EntryKind = "slice"
	EntryKindCommand  EntryKind = "command"
	EntryKindEvent    EntryKind = "event"
)

// IndexEntry is one flat, searchable record derived from the snapshot.
// Entries are derived data: they are recomputed in full on every rebuild and
// reference snapshot entities rather than copying them.
type IndexEntry struct {
	// Kind is the entity class this entry represents.
	Kind EntryKind `json:"kind"`

	// Name is the display name: the chapter, command or event name, the
	// slice's command or read-model name, or a synthesized "Slice N"
	// placeholder for automation slices.
	Name string `json:"name"`

	// SearchText is the case-folded haystack substring queries run against.
	SearchText string `json:"search_text"`

	// ChapterIndex is the position of the owning chapter within the
	// snapshot, or -1 for entries not tied to a chapter.
	ChapterIndex int `json:"chapter_index"`

	// SliceIndex is the position of the slice within its chapter, or -1
	// for non-slice entries.
	SliceIndex int `json:"slice_index"`

	// ChapterName is the owning chapter's name for workflow and slice
	// entries, empty otherwise.
	ChapterName string `json:"chapter_name,omitempty"`

	// Exactly one of the following is set, matching Kind.
	Chapter *Chapter `json:"-"`
	Slice   *Slice   `json:"-"`
	Command *Command `json:"-"`
	Event   *Event   `json:"-"`
}

// SearchResult partitions matching index entries for the explorer surface.
// A nil *SearchResult means "not searching" (blank query); a non-nil result
// with empty partitions means the search ran and found nothing.
type SearchResult struct {
	Chapters []IndexEntry `json:"chapters"`
	Slices   []IndexEntry `json:"slices"`
	Elements []IndexEntry `json:"elements"`
}

// Total returns the number of entries across all partitions.
func (r *SearchResult) Total() int {
	if r == nil {
		return 0
	}
	return len(r.Chapters) + len(r.Slices) + len(r.Elements)
}

// Suggestion is a near-miss entry name offered when a lookup or search
// comes back empty.
type Suggestion struct {
	// Name is the candidate entry name.
	Name string `json:"name"`

	// Distance is the Levenshtein distance from the query; lower is closer.
	Distance int `json:"distance"`
}
