package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/emap-labs/emap-cli/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"substring to search chapters, slices and elements for"`
}

// EntryOutput is one index entry in tool output.
type EntryOutput struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Chapter string `json:"chapter,omitempty"`
	Slice   int    `json:"slice,omitempty"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Chapters []EntryOutput `json:"chapters"`
	Slices   []EntryOutput `json:"slices"`
	Elements []EntryOutput `json:"elements"`
	Count    int           `json:"count"`
}

// XrefInput is the input schema for the cross_references tool.
type XrefInput struct {
	Kind string `json:"kind" jsonschema:"one of event, command, readModel"`
	Name string `json:"name" jsonschema:"the exact element name to look up"`
}

// XrefOutput is the output schema for the cross_references tool.
type XrefOutput struct {
	ProducedBy []string `json:"produced_by,omitempty"`
	Triggers   []string `json:"triggers,omitempty"`
	Sources    []string `json:"sources,omitempty"`
	Workflows  []string `json:"workflows"`
}

// ChapterSlicesInput is the input schema for the chapter_slices tool.
type ChapterSlicesInput struct {
	Chapter string `json:"chapter" jsonschema:"the chapter (workflow) name"`
}

// SliceOutput is one enriched slice in tool output.
type SliceOutput struct {
	Index     int      `json:"index"`
	Kind      string   `json:"kind"`
	Command   string   `json:"command,omitempty"`
	ReadModel string   `json:"read_model,omitempty"`
	Events    []string `json:"events,omitempty"`
}

// ChapterSlicesOutput is the output schema for the chapter_slices tool.
type ChapterSlicesOutput struct {
	Chapter string        `json:"chapter"`
	Slices  []SliceOutput `json:"slices"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the event model's chapters, slices and elements by substring",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "cross_references",
		Description: "Look up where an event, command or read model is used across chapters",
	}, s.handleCrossReferences)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "chapter_slices",
		Description: "List a chapter's slices in order with resolved command and read-model detail",
	}, s.handleChapterSlices)
}

func entryOutputs(entries []domain.IndexEntry) []EntryOutput {
	out := make([]EntryOutput, len(entries))
	for i, e := range entries {
		out[i] = EntryOutput{
			Kind:    string(e.Kind),
			Name:    e.Name,
			Chapter: e.ChapterName,
			Slice:   e.SliceIndex,
		}
	}
	return out
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	result, err := s.ports.Explorer.Search(ctx, input.Query)
	if err != nil {
		return nil, SearchOutput{}, err
	}
	if result == nil {
		// Blank query: nothing searched, nothing found.
		return nil, SearchOutput{
			Chapters: []EntryOutput{},
			Slices:   []EntryOutput{},
			Elements: []EntryOutput{},
		}, nil
	}

	return nil, SearchOutput{
		Chapters: entryOutputs(result.Chapters),
		Slices:   entryOutputs(result.Slices),
		Elements: entryOutputs(result.Elements),
		Count:    result.Total(),
	}, nil
}

// handleCrossReferences handles the cross_references tool invocation.
func (s *Server) handleCrossReferences(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input XrefInput,
) (*mcp.CallToolResult, XrefOutput, error) {
	kind, err := domain.ParseRefKind(input.Kind)
	if err != nil {
		return nil, XrefOutput{}, fmt.Errorf("unknown reference kind %q", input.Kind)
	}

	ref, err := s.ports.Explorer.CrossReferences(ctx, kind, input.Name)
	if err != nil {
		return nil, XrefOutput{}, err
	}

	workflows := ref.Workflows
	if workflows == nil {
		workflows = []string{}
	}

	return nil, XrefOutput{
		ProducedBy: ref.ProducedBy,
		Triggers:   ref.Triggers,
		Sources:    ref.Sources,
		Workflows:  workflows,
	}, nil
}

// handleChapterSlices handles the chapter_slices tool invocation.
func (s *Server) handleChapterSlices(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ChapterSlicesInput,
) (*mcp.CallToolResult, ChapterSlicesOutput, error) {
	slices, err := s.ports.Explorer.WorkflowSlices(ctx, input.Chapter)
	if err != nil {
		return nil, ChapterSlicesOutput{}, err
	}

	out := ChapterSlicesOutput{
		Chapter: input.Chapter,
		Slices:  make([]SliceOutput, len(slices)),
	}
	for i, sl := range slices {
		out.Slices[i] = SliceOutput{
			Index:     sl.SliceIndex,
			Kind:      string(sl.Kind()),
			Command:   sl.Command,
			ReadModel: sl.ReadModel,
			Events:    sl.Events,
		}
	}

	return nil, out, nil
}
