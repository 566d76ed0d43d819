// Package mcp provides an MCP (Model Context Protocol) server adapter for emap.
// It lets AI assistants explore the event model: search, cross-references,
// chapter slices.
package mcp

import "errors"

// ErrMissingExplorerService is returned when the explorer service is not provided.
var ErrMissingExplorerService = errors.New("mcp: explorer service is required")
