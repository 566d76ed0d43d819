package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ModelSnapshot is an immutable view of the event model as supplied by the
// external model provider. All derived artifacts (index, cross-references)
// are recomputed in full from a snapshot; nothing in it is ever mutated.
type ModelSnapshot struct {
	// Chapters are the workflows of the model, in authoring order.
	Chapters []Chapter `json:"chapters"`

	// Commands are all commands declared in the model, including ones
	// already referenced by a slice.
	Commands []Command `json:"commands"`

	// ExtractedEvents are all event declarations. An event may appear as a
	// bare name or as a name/description pair in the source document.
	ExtractedEvents []Event `json:"extracted_events"`

	// ReadModels are the views fed by events.
	ReadModels []ReadModel `json:"read_models"`
}

// Chapter is a workflow: a named user journey grouping an ordered sequence
// of slices. Identity is the chapter name, unique within one snapshot.
type Chapter struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Slices      []Slice `json:"slices"`
}

// SliceKind classifies a slice by which of its optional fields are set.
type SliceKind string

const (
	// SliceKindAction is a command slice: Command set, ReadModel absent.
	SliceKindAction SliceKind = "action"

	// SliceKindView is a read-model slice: ReadModel set, Command absent.
	SliceKindView SliceKind = "view"

	// SliceKindAutomation has neither; it reacts to trigger events and
	// emits result events.
	SliceKindAutomation SliceKind = "automation"
)

// Slice is one command→event(s)→view unit (or automation unit) within a
// chapter. A slice belongs to exactly one chapter at a fixed position.
type Slice struct {
	Command       string        `json:"command,omitempty"`
	ReadModel     string        `json:"read_model,omitempty"`
	Events        []string      `json:"events,omitempty"`
	SourceEvents  []string      `json:"source_events,omitempty"`
	TriggerEvents []string      `json:"trigger_events,omitempty"`
	ResultEvents  []string      `json:"result_events,omitempty"`
	GWTScenarios  []GWTScenario `json:"gwt_scenarios,omitempty"`
}

// Kind derives the slice kind from the fields that are set. A slice with
// both a command and a read model counts as an action slice.
func (s Slice) Kind() SliceKind {
	switch {
	case s.Command != "":
		return SliceKindAction
	case s.ReadModel != "":
		return SliceKindView
	default:
		return SliceKindAutomation
	}
}

// EventNames returns the event names a slice touches for cross-referencing:
// the Events list, falling back to SourceEvents when Events is empty.
func (s Slice) EventNames() []string {
	if len(s.Events) > 0 {
		return s.Events
	}
	return s.SourceEvents
}

// GWTScenario is a Given/When/Then test-case description attached to a slice.
type GWTScenario struct {
	Given string `json:"given,omitempty"`
	When  string `json:"when,omitempty"`
	Then  string `json:"then,omitempty"`
}

// Command is a named user/system intention that may trigger events.
// Identity is the name, unique within one snapshot.
type Command struct {
	Name           string      `json:"name"`
	Description    string      `json:"description,omitempty"`
	Parameters     []Parameter `json:"parameters,omitempty"`
	TriggersEvents []string    `json:"triggers_events,omitempty"`
}

// Parameter is one declared command parameter. The upstream contract leaves
// the parameter shape open; name/type pairs cover the documents we consume.
type Parameter struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Event is a named fact produced by a command. In source documents an event
// is either a bare string or a name/description mapping; both decode into
// this struct. Identity is the name, matched case-sensitively.
type Event struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UnmarshalJSON accepts either a bare string or a {name, description} object.
func (e *Event) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		e.Name = name
		e.Description = ""
		return nil
	}

	type alias Event
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("event must be a string or a mapping: %w", err)
	}
	*e = Event(a)
	return nil
}

// ReadModel is a named projection fed by one or more events. Source
// documents name the feeding events either "source_events" or "data_source";
// both decode into SourceEvents.
type ReadModel struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	SourceEvents []string `json:"source_events,omitempty"`
}

// readModelDoc is the permissive decoding shape for ReadModel.
type readModelDoc struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	SourceEvents []string `json:"source_events,omitempty"`
	DataSource   []string `json:"data_source,omitempty"`
}

func (d readModelDoc) into() ReadModel {
	rm := ReadModel{
		Name:         d.Name,
		Description:  d.Description,
		SourceEvents: d.SourceEvents,
	}
	if len(rm.SourceEvents) == 0 {
		rm.SourceEvents = d.DataSource
	}
	return rm
}

// UnmarshalJSON accepts "data_source" as an alias for "source_events".
func (r *ReadModel) UnmarshalJSON(data []byte) error {
	var d readModelDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*r = d.into()
	return nil
}

// Validate checks the structural invariants of a snapshot: chapters,
// commands, events and read models must carry names, and chapter names must
// be unique. A nil error means the snapshot is safe to index.
func (m *ModelSnapshot) Validate() error {
	seen := make(map[string]bool, len(m.Chapters))
	for i, ch := range m.Chapters {
		if ch.Name == "" {
			return fmt.Errorf("%w: chapters[%d]: missing name", ErrMalformedModel, i)
		}
		if seen[ch.Name] {
			return fmt.Errorf("%w: chapters[%d]: duplicate chapter name %q", ErrMalformedModel, i, ch.Name)
		}
		seen[ch.Name] = true
	}
	for i, cmd := range m.Commands {
		if cmd.Name == "" {
			return fmt.Errorf("%w: commands[%d]: missing name", ErrMalformedModel, i)
		}
	}
	for i, ev := range m.ExtractedEvents {
		if ev.Name == "" {
			return fmt.Errorf("%w: extracted_events[%d]: missing name", ErrMalformedModel, i)
		}
	}
	for i, rm := range m.ReadModels {
		if rm.Name == "" {
			return fmt.Errorf("%w: read_models[%d]: missing name", ErrMalformedModel, i)
		}
	}
	return nil
}

// Fingerprint returns a stable identity for the snapshot contents: the
// SHA-256 of its canonical JSON encoding. Two structurally equal snapshots
// always produce the same fingerprint.
func (m *ModelSnapshot) Fingerprint() (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
