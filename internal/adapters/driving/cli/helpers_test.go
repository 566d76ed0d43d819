package cli

import (
	"github.com/emap-labs/emap-cli/internal/adapters/driven/artifacts/memory"
	"github.com/emap-labs/emap-cli/internal/core/domain"
	"github.com/emap-labs/emap-cli/internal/core/services"
)

// testModelSnapshot is the model the CLI tests run against.
func testModelSnapshot() *domain.ModelSnapshot {
	return &domain.ModelSnapshot{
		Chapters: []domain.Chapter{
			{
				Name:        "Registration",
				Description: "New user signup",
				Slices: []domain.Slice{
					{Command: "Register", Events: []string{"UserRegistered"}},
					{ReadModel: "RegisteredUsers", Events: []string{"UserRegistered"}},
				},
			},
			{
				Name: "Support",
				Slices: []domain.Slice{
					{Command: "Reinstate", Events: []string{"UserRegistered"}},
				},
			},
		},
		Commands: []domain.Command{
			{Name: "Register"},
			{Name: "Reinstate"},
		},
		ExtractedEvents: []domain.Event{{Name: "UserRegistered"}},
		ReadModels:      []domain.ReadModel{{Name: "RegisteredUsers", SourceEvents: []string{"UserRegistered"}}},
	}
}

// setupTestServices wires the commands to artifacts built from the fixture
// model and returns a cleanup restoring the previous wiring.
func setupTestServices() func() {
	oldExplorer := explorerService
	oldRebuild := rebuildService

	snapshot := testModelSnapshot()
	store := memory.NewArtifactStore()
	store.Swap(&domain.ArtifactSet{
		Snapshot: snapshot,
		Index:    services.BuildIndex(snapshot),
		Refs:     services.BuildCrossReferences(snapshot),
	})

	explorerService = services.NewExplorerService(store)
	rebuildService = nil

	return func() {
		explorerService = oldExplorer
		rebuildService = oldRebuild
	}
}
