// Package domain defines the core business entities for emap.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ModelSnapshot: An immutable view of the event model
//   - Chapter/Slice: Workflows and their ordered slices
//   - Command/Event/ReadModel: The named elements slices connect
//   - IndexEntry: A flat searchable record derived from the snapshot
//   - CrossReference: Aggregated usage of one name across the model
//   - ArtifactSet: The complete derived output of one rebuild
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
