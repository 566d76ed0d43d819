package services

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/emap-labs/emap-cli/internal/core/domain"
)

// foldText case-folds a string for matching. Folding rather than plain
// lowercasing keeps substring matches correct for non-ASCII names.
func foldText(s string) string {
	return cases.Fold().String(s)
}

// searchText folds and space-joins the non-empty parts of an entry's
// searchable haystack.
func searchText(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return foldText(strings.Join(kept, " "))
}

// sliceDisplayName is the index display name for a slice: its command name,
// else its read-model name, else a synthesized placeholder. sliceIndex is
// zero-based; the placeholder is one-based for display.
func sliceDisplayName(s *domain.Slice, sliceIndex int) string {
	switch {
	case s.Command != "":
		return s.Command
	case s.ReadModel != "":
		return s.ReadModel
	default:
		return fmt.Sprintf("Slice %d", sliceIndex+1)
	}
}

// BuildIndex derives the flat searchable index from a snapshot.
//
// Entry order is deterministic: one workflow entry per chapter in chapter
// order, then one slice entry per slice in chapter-then-slice order, then
// one command entry per command not already represented by a slice, then
// one event entry per extracted event. Rebuilding an unchanged snapshot
// yields identical output.
func BuildIndex(snapshot *domain.ModelSnapshot) []domain.IndexEntry {
	var entries []domain.IndexEntry

	for ci := range snapshot.Chapters {
		ch := &snapshot.Chapters[ci]
		entries = append(entries, domain.IndexEntry{
			Kind:         domain.EntryKindWorkflow,
			Name:         ch.Name,
			SearchText:   searchText(ch.Name, ch.Description),
			ChapterIndex: ci,
			SliceIndex:   -1,
			ChapterName:  ch.Name,
			Chapter:      ch,
		})
	}

	// Commands already shown through a slice get no standalone entry.
	covered := make(map[string]bool)

	for ci := range snapshot.Chapters {
		ch := &snapshot.Chapters[ci]
		for si := range ch.Slices {
			sl := &ch.Slices[si]
			if sl.Command != "" {
				covered[sl.Command] = true
			}

			parts := []string{sl.Command, sl.ReadModel}
			parts = append(parts, sl.Events...)
			for _, gwt := range sl.GWTScenarios {
				parts = append(parts, gwt.Given, gwt.When, gwt.Then)
			}

			entries = append(entries, domain.IndexEntry{
				Kind:         domain.EntryKindSlice,
				Name:         sliceDisplayName(sl, si),
				SearchText:   searchText(parts...),
				ChapterIndex: ci,
				SliceIndex:   si,
				ChapterName:  ch.Name,
				Slice:        sl,
			})
		}
	}

	for i := range snapshot.Commands {
		cmd := &snapshot.Commands[i]
		if covered[cmd.Name] {
			continue
		}
		parts := []string{cmd.Name, cmd.Description}
		parts = append(parts, cmd.TriggersEvents...)
		entries = append(entries, domain.IndexEntry{
			Kind:         domain.EntryKindCommand,
			Name:         cmd.Name,
			SearchText:   searchText(parts...),
			ChapterIndex: -1,
			SliceIndex:   -1,
			Command:      cmd,
		})
	}

	for i := range snapshot.ExtractedEvents {
		ev := &snapshot.ExtractedEvents[i]
		entries = append(entries, domain.IndexEntry{
			Kind:         domain.EntryKindEvent,
			Name:         ev.Name,
			SearchText:   foldText(ev.Name),
			ChapterIndex: -1,
			SliceIndex:   -1,
			Event:        ev,
		})
	}

	return entries
}
