package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for emap resources.
	uriScheme = "emap://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing chapters.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "chapters",
		Name:        "chapters",
		Description: "List of all chapters (workflows) in the event model",
		MIMEType:    "application/json",
	}, s.handleChaptersResource)

	// Template for a chapter's slices.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "chapters/{chapter}/slices",
		Name:        "chapter-slices",
		Description: "Slices of a specific chapter with resolved detail",
		MIMEType:    "application/json",
	}, s.handleChapterSlicesResource)
}

// handleChaptersResource returns the chapter list.
func (s *Server) handleChaptersResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	entries, err := s.ports.Explorer.Chapters(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing chapters: %w", err)
	}

	// Build simplified chapter list.
	type chapterInfo struct {
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		Slices      int    `json:"slices"`
	}

	infos := make([]chapterInfo, len(entries))
	for i, entry := range entries {
		infos[i] = chapterInfo{Name: entry.Name}
		if entry.Chapter != nil {
			infos[i].Description = entry.Chapter.Description
			infos[i].Slices = len(entry.Chapter.Slices)
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling chapters: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleChapterSlicesResource returns the slices of a specific chapter.
func (s *Server) handleChapterSlicesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract chapter from URI: emap://chapters/{chapter}/slices
	chapter := extractChapterName(req.Params.URI)
	if chapter == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	slices, err := s.ports.Explorer.WorkflowSlices(ctx, chapter)
	if err != nil {
		return nil, fmt.Errorf("listing chapter slices: %w", err)
	}

	data, err := json.MarshalIndent(slices, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling slices: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractChapterName extracts the chapter from a URI like emap://chapters/{chapter}/slices.
func extractChapterName(uri string) string {
	const prefix = uriScheme + "chapters/"
	const suffix = "/slices"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
