package mcp

import (
	"github.com/emap-labs/emap-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Explorer answers search and cross-reference queries.
	Explorer driving.ExplorerService

	// Rebuild refreshes the artifacts from the model source.
	Rebuild driving.RebuildService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Explorer == nil {
		return ErrMissingExplorerService
	}
	// Rebuild is optional; without it the server answers from the
	// artifacts built at startup.
	return nil
}
