package domain

// RefKind selects which cross-reference map a lookup targets.
type RefKind string

const (
	RefKindEvent     RefKind = "event"
	RefKindCommand   RefKind = "command"
	RefKindReadModel RefKind = "readModel"
)

// ParseRefKind maps the wire spelling of a reference kind to a RefKind.
// Unknown spellings return ErrInvalidInput.
func ParseRefKind(s string) (RefKind, error) {
	switch s {
	case "event":
		return RefKindEvent, nil
	case "command":
		return RefKindCommand, nil
	case "readModel", "read_model", "view":
		return RefKindReadModel, nil
	default:
		return "", ErrInvalidInput
	}
}

// CrossReference aggregates where a single name is used across the model.
// Which list field is populated depends on the kind of the referenced name:
// ProducedBy for events, Triggers for commands, Sources for read models.
//
// The list fields preserve insertion order and may contain duplicates when
// several slices contribute the same name; duplicate frequency is observable
// and deliberately kept. Workflows is a deduplicated set, emitted sorted.
type CrossReference struct {
	// ProducedBy lists command names producing this event, in
	// slice-processing order.
	ProducedBy []string `json:"produced_by,omitempty"`

	// Triggers lists event names this command triggers, in
	// slice-processing order.
	Triggers []string `json:"triggers,omitempty"`

	// Sources lists event names feeding this read model, in
	// slice-processing order.
	Sources []string `json:"sources,omitempty"`

	// Workflows is the sorted, deduplicated set of chapter names touching
	// this name.
	Workflows []string `json:"workflows"`
}

// IsZero reports whether the cross-reference records no usage at all.
func (c CrossReference) IsZero() bool {
	return len(c.ProducedBy) == 0 && len(c.Triggers) == 0 &&
		len(c.Sources) == 0 && len(c.Workflows) == 0
}

// CrossReferences holds the three per-kind reference maps built from one
// snapshot. Like the index, it is derived data, recomputed in full.
type CrossReferences struct {
	Events     map[string]CrossReference
	Commands   map[string]CrossReference
	ReadModels map[string]CrossReference
}

// Lookup returns the cross-reference for a name of the given kind. Unknown
// names and kinds return a zero-value CrossReference, never an error.
func (c CrossReferences) Lookup(kind RefKind, name string) CrossReference {
	var m map[string]CrossReference
	switch kind {
	case RefKindEvent:
		m = c.Events
	case RefKindCommand:
		m = c.Commands
	case RefKindReadModel:
		m = c.ReadModels
	default:
		return CrossReference{}
	}
	return m[name]
}

// CrossChapterLink records, for one event on a slice, the other chapters
// that also touch the event. OtherWorkflows may be empty; callers decide
// whether an event with no links is worth rendering.
type CrossChapterLink struct {
	EventName      string   `json:"event_name"`
	OtherWorkflows []string `json:"other_workflows"`
}

// EnrichedSlice is a slice joined with its resolved command and read-model
// detail for display, plus its position within the owning chapter.
type EnrichedSlice struct {
	Slice

	ChapterName string `json:"chapter_name"`
	SliceIndex  int    `json:"slice_index"`

	// CommandDetail is the snapshot command matching Slice.Command, nil if
	// the name is unset or undeclared.
	CommandDetail *Command `json:"command_detail,omitempty"`

	// ReadModelDetail is the snapshot read model matching Slice.ReadModel,
	// nil if the name is unset or undeclared.
	ReadModelDetail *ReadModel `json:"read_model_detail,omitempty"`
}
