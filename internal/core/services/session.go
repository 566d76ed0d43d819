package services

import (
	"strings"

	"github.com/emap-labs/emap-cli/internal/core/domain"
)

// SessionState is the explorer surface's navigation state.
type SessionState string

const (
	// StateNoSelection means nothing is selected and no search is active.
	StateNoSelection SessionState = "noSelection"

	// StateWorkflowSelected means one chapter is selected; a slice within
	// it may additionally be expanded.
	StateWorkflowSelected SessionState = "workflowSelected"

	// StateSearching means a non-empty query is active. The previously
	// selected chapter, if any, is remembered for when the query clears.
	StateSearching SessionState = "searching"
)

// ExplorerSession is the pure navigation state machine for a surface
// consuming the query engine. It renders nothing and performs no queries;
// it only tracks where the user is:
//
//	NoSelection → WorkflowSelected → (slice expanded ⇄ collapsed)
//
// A non-empty query forces Searching; clearing the query returns to the
// last selected chapter, or NoSelection if none was ever selected.
type ExplorerSession struct {
	state         SessionState
	chapter       string
	lastChapter   string
	expandedSlice int
	query         string
}

// NewExplorerSession starts in NoSelection with no slice expanded.
func NewExplorerSession() *ExplorerSession {
	return &ExplorerSession{state: StateNoSelection, expandedSlice: -1}
}

// State returns the current navigation state.
func (s *ExplorerSession) State() SessionState { return s.state }

// Chapter returns the selected chapter name, empty outside WorkflowSelected.
func (s *ExplorerSession) Chapter() string {
	if s.state != StateWorkflowSelected {
		return ""
	}
	return s.chapter
}

// Query returns the active search query, empty outside Searching.
func (s *ExplorerSession) Query() string {
	if s.state != StateSearching {
		return ""
	}
	return s.query
}

// ExpandedSlice returns the expanded slice index within the selected
// chapter and whether one is expanded.
func (s *ExplorerSession) ExpandedSlice() (int, bool) {
	if s.state != StateWorkflowSelected || s.expandedSlice < 0 {
		return 0, false
	}
	return s.expandedSlice, true
}

// SelectChapter selects a chapter, collapsing any expanded slice and
// clearing any active search.
func (s *ExplorerSession) SelectChapter(name string) {
	s.state = StateWorkflowSelected
	s.chapter = name
	s.lastChapter = name
	s.expandedSlice = -1
	s.query = ""
}

// ExpandSlice expands the slice at the given index. Ignored unless a
// chapter is selected.
func (s *ExplorerSession) ExpandSlice(index int) {
	if s.state != StateWorkflowSelected || index < 0 {
		return
	}
	s.expandedSlice = index
}

// CollapseSlice collapses the expanded slice, staying on the chapter.
func (s *ExplorerSession) CollapseSlice() {
	if s.state != StateWorkflowSelected {
		return
	}
	s.expandedSlice = -1
}

// SetQuery updates the search query. A non-blank query enters Searching;
// a blank query leaves it, restoring the last selected chapter or falling
// back to NoSelection.
func (s *ExplorerSession) SetQuery(query string) {
	if strings.TrimSpace(query) != "" {
		s.state = StateSearching
		s.query = query
		return
	}

	s.query = ""
	if s.lastChapter != "" {
		s.state = StateWorkflowSelected
		s.chapter = s.lastChapter
		return
	}
	s.state = StateNoSelection
}

// ChooseResult resolves a picked search result deterministically: workflow
// results select the chapter; slice results select the owning chapter and
// expand the slice. Element results carry no chapter, so they just leave
// Searching the same way a cleared query does.
func (s *ExplorerSession) ChooseResult(entry domain.IndexEntry) {
	switch entry.Kind {
	case domain.EntryKindWorkflow:
		s.SelectChapter(entry.Name)
	case domain.EntryKindSlice:
		s.SelectChapter(entry.ChapterName)
		s.ExpandSlice(entry.SliceIndex)
	default:
		s.SetQuery("")
	}
}
