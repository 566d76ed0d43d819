package domain

import "time"

// ArtifactSet is the complete derived output of one rebuild: the searchable
// index and the cross-reference maps, together with the snapshot they were
// built from. A set is immutable once built; replacing it is an atomic swap
// of the whole reference, so queries never observe a half-built state.
type ArtifactSet struct {
	// BuildID uniquely identifies this rebuild.
	BuildID string

	// Fingerprint is the snapshot fingerprint the set was built from.
	// Rebuilds of an unchanged snapshot are detected through it.
	Fingerprint string

	// BuiltAt records when the rebuild completed.
	BuiltAt time.Time

	// Snapshot is the source model the artifacts derive from.
	Snapshot *ModelSnapshot

	// Index is the flat searchable index, in deterministic build order.
	Index []IndexEntry

	// Refs are the event/command/read-model cross-reference maps.
	Refs CrossReferences
}
