// Package services implements the driving port interfaces.
// Services contain the core business logic: deriving the searchable index
// and cross-reference maps from a model snapshot, and answering queries
// against the latest derived artifacts.
//
// Services are pure Go with no I/O of their own; all I/O happens behind
// driven ports (adapters).
package services
