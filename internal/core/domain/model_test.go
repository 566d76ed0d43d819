package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_UnmarshalJSON_BareString(t *testing.T) {
	var ev Event
	require.NoError(t, json.Unmarshal([]byte(`"UserRegistered"`), &ev))
	assert.Equal(t, "UserRegistered", ev.Name)
	assert.Empty(t, ev.Description)
}

func TestEvent_UnmarshalJSON_Mapping(t *testing.T) {
	var ev Event
	require.NoError(t, json.Unmarshal(
		[]byte(`{"name":"UserRegistered","description":"a new account exists"}`), &ev))
	assert.Equal(t, "UserRegistered", ev.Name)
	assert.Equal(t, "a new account exists", ev.Description)
}

func TestEvent_UnmarshalJSON_Invalid(t *testing.T) {
	var ev Event
	err := json.Unmarshal([]byte(`42`), &ev)
	require.Error(t, err)
}

func TestReadModel_UnmarshalJSON_DataSourceAlias(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "source_events key",
			doc:  `{"name":"Users","source_events":["UserRegistered"]}`,
			want: []string{"UserRegistered"},
		},
		{
			name: "data_source key",
			doc:  `{"name":"Users","data_source":["UserRegistered","UserDeleted"]}`,
			want: []string{"UserRegistered", "UserDeleted"},
		},
		{
			name: "source_events wins when both present",
			doc:  `{"name":"Users","source_events":["A"],"data_source":["B"]}`,
			want: []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rm ReadModel
			require.NoError(t, json.Unmarshal([]byte(tt.doc), &rm))
			assert.Equal(t, "Users", rm.Name)
			assert.Equal(t, tt.want, rm.SourceEvents)
		})
	}
}

func TestSlice_Kind(t *testing.T) {
	assert.Equal(t, SliceKindAction, Slice{Command: "Register"}.Kind())
	assert.Equal(t, SliceKindView, Slice{ReadModel: "Users"}.Kind())
	assert.Equal(t, SliceKindAutomation, Slice{TriggerEvents: []string{"A"}}.Kind())
	// Command takes precedence when both are set.
	assert.Equal(t, SliceKindAction, Slice{Command: "C", ReadModel: "R"}.Kind())
}

func TestSlice_EventNames_FallsBackToSourceEvents(t *testing.T) {
	sl := Slice{SourceEvents: []string{"A", "B"}}
	assert.Equal(t, []string{"A", "B"}, sl.EventNames())

	sl.Events = []string{"C"}
	assert.Equal(t, []string{"C"}, sl.EventNames())
}

func TestModelSnapshot_Validate(t *testing.T) {
	tests := []struct {
		name     string
		snapshot ModelSnapshot
		wantErr  string
	}{
		{
			name:     "empty snapshot is valid",
			snapshot: ModelSnapshot{},
		},
		{
			name: "unnamed chapter",
			snapshot: ModelSnapshot{
				Chapters: []Chapter{{Description: "nameless"}},
			},
			wantErr: "chapters[0]: missing name",
		},
		{
			name: "duplicate chapter names",
			snapshot: ModelSnapshot{
				Chapters: []Chapter{{Name: "Registration"}, {Name: "Registration"}},
			},
			wantErr: `chapters[1]: duplicate chapter name "Registration"`,
		},
		{
			name: "unnamed command",
			snapshot: ModelSnapshot{
				Commands: []Command{{Description: "nameless"}},
			},
			wantErr: "commands[0]: missing name",
		},
		{
			name: "unnamed event",
			snapshot: ModelSnapshot{
				ExtractedEvents: []Event{{}},
			},
			wantErr: "extracted_events[0]: missing name",
		},
		{
			name: "unnamed read model",
			snapshot: ModelSnapshot{
				ReadModels: []ReadModel{{}},
			},
			wantErr: "read_models[0]: missing name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.snapshot.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedModel)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestModelSnapshot_Fingerprint(t *testing.T) {
	snapshot := ModelSnapshot{
		Chapters: []Chapter{{Name: "Registration", Slices: []Slice{{Command: "Register"}}}},
	}

	first, err := snapshot.Fingerprint()
	require.NoError(t, err)
	second, err := snapshot.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	changed := snapshot
	changed.Chapters = []Chapter{{Name: "Support"}}
	other, err := changed.Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}
