package services

import (
	"sort"

	"github.com/emap-labs/emap-cli/internal/core/domain"
)

// refAccum accumulates one name's usage during a build: the ordered
// contribution list (duplicates kept) and the chapter set. Chapters are
// held as a true set while building and sorted only at the output boundary.
type refAccum struct {
	list     []string
	chapters map[string]struct{}
}

func (a *refAccum) touch(chapter string) {
	a.chapters[chapter] = struct{}{}
}

type refAccums map[string]*refAccum

func (m refAccums) ensure(name string) *refAccum {
	acc, ok := m[name]
	if !ok {
		acc = &refAccum{chapters: make(map[string]struct{})}
		m[name] = acc
	}
	return acc
}

// finalize converts accumulators into the output map, with each entry's
// ordered list landing in the field selected by pick.
func (m refAccums) finalize(pick func(ref *domain.CrossReference, list []string)) map[string]domain.CrossReference {
	out := make(map[string]domain.CrossReference, len(m))
	for name, acc := range m {
		workflows := make([]string, 0, len(acc.chapters))
		for ch := range acc.chapters {
			workflows = append(workflows, ch)
		}
		sort.Strings(workflows)

		ref := domain.CrossReference{Workflows: workflows}
		pick(&ref, acc.list)
		out[name] = ref
	}
	return out
}

// BuildCrossReferences derives the three per-name reference maps from a
// snapshot in one ordered pass over chapters and slices.
//
// Only command+events slices contribute to the event map: automation
// trigger_events/result_events are deliberately left out, matching the
// observed explorer behavior. List fields keep insertion order and
// duplicates; the chapter sets are deduplicated and emitted sorted.
func BuildCrossReferences(snapshot *domain.ModelSnapshot) domain.CrossReferences {
	events := make(refAccums)
	commands := make(refAccums)
	readModels := make(refAccums)

	for ci := range snapshot.Chapters {
		ch := &snapshot.Chapters[ci]
		for si := range ch.Slices {
			sl := &ch.Slices[si]

			if sl.Command != "" {
				acc := commands.ensure(sl.Command)
				acc.list = append(acc.list, sl.Events...)
				acc.touch(ch.Name)
			}

			for _, ev := range sl.Events {
				acc := events.ensure(ev)
				if sl.Command != "" {
					acc.list = append(acc.list, sl.Command)
				}
				acc.touch(ch.Name)
			}

			if sl.ReadModel != "" {
				acc := readModels.ensure(sl.ReadModel)
				acc.list = append(acc.list, sl.EventNames()...)
				acc.touch(ch.Name)
			}
		}
	}

	return domain.CrossReferences{
		Events: events.finalize(func(ref *domain.CrossReference, list []string) {
			ref.ProducedBy = list
		}),
		Commands: commands.finalize(func(ref *domain.CrossReference, list []string) {
			ref.Triggers = list
		}),
		ReadModels: readModels.finalize(func(ref *domain.CrossReference, list []string) {
			ref.Sources = list
		}),
	}
}
