package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/emap-labs/emap-cli/internal/core/domain"
)

var chapterJSON bool

var chapterCmd = &cobra.Command{
	Use:   "chapter",
	Short: "Inspect chapters (workflows) of the model",
}

var chapterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all chapters",
	Args:  cobra.NoArgs,
	RunE:  runChapterList,
}

var chapterSlicesCmd = &cobra.Command{
	Use:   "slices [chapter]",
	Short: "List a chapter's slices with resolved detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runChapterSlices,
}

var chapterLinksCmd = &cobra.Command{
	Use:   "links [chapter] [slice]",
	Short: "Show which other chapters share a slice's events",
	Long: `For each event on the given slice (one-based index within the
chapter), lists the other chapters that also touch the event.`,
	Args: cobra.ExactArgs(2),
	RunE: runChapterLinks,
}

func init() {
	chapterCmd.PersistentFlags().BoolVar(&chapterJSON, "json", false, "output as JSON")
	chapterCmd.AddCommand(chapterListCmd)
	chapterCmd.AddCommand(chapterSlicesCmd)
	chapterCmd.AddCommand(chapterLinksCmd)
	rootCmd.AddCommand(chapterCmd)
}

func runChapterList(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	chapters, err := explorerService.Chapters(cmd.Context())
	if err != nil {
		return fmt.Errorf("list chapters failed: %w", err)
	}

	if chapterJSON {
		return printJSON(cmd, chapters)
	}

	if len(chapters) == 0 {
		cmd.Println("The model has no chapters.")
		return nil
	}
	for _, entry := range chapters {
		line := entry.Name
		if entry.Chapter != nil && entry.Chapter.Description != "" {
			line += " - " + entry.Chapter.Description
		}
		cmd.Println(line)
	}
	return nil
}

func runChapterSlices(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	slices, err := explorerService.WorkflowSlices(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("list slices failed: %w", err)
	}

	if chapterJSON {
		return printJSON(cmd, slices)
	}

	if len(slices) == 0 {
		cmd.Printf("Chapter %q has no slices (or does not exist).\n", args[0])
		return nil
	}
	for _, sl := range slices {
		cmd.Printf("  [%d] %s\n", sl.SliceIndex+1, describeSlice(sl))
	}
	return nil
}

func runChapterLinks(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	index, err := strconv.Atoi(args[1])
	if err != nil || index < 1 {
		return fmt.Errorf("slice must be a positive number, got %q", args[1])
	}

	ctx := cmd.Context()
	chapter := args[0]

	slices, err := explorerService.WorkflowSlices(ctx, chapter)
	if err != nil {
		return fmt.Errorf("list slices failed: %w", err)
	}
	if index > len(slices) {
		return fmt.Errorf("chapter %q has %d slices, slice %d does not exist", chapter, len(slices), index)
	}

	links, err := explorerService.CrossChapterLinks(ctx, chapter, slices[index-1].Slice)
	if err != nil {
		return fmt.Errorf("cross-chapter links failed: %w", err)
	}

	if chapterJSON {
		return printJSON(cmd, links)
	}

	if len(links) == 0 {
		cmd.Println("The slice touches no events.")
		return nil
	}
	for _, link := range links {
		if len(link.OtherWorkflows) == 0 {
			cmd.Printf("  %s: only used here\n", link.EventName)
			continue
		}
		cmd.Printf("  %s: also used in ", link.EventName)
		for i, wf := range link.OtherWorkflows {
			if i > 0 {
				cmd.Print(", ")
			}
			cmd.Print(wf)
		}
		cmd.Println()
	}
	return nil
}

func describeSlice(sl domain.EnrichedSlice) string {
	switch sl.Kind() {
	case domain.SliceKindAction:
		desc := sl.Command
		if len(sl.Events) > 0 {
			desc += " -> " + sl.Events[0]
			for _, ev := range sl.Events[1:] {
				desc += ", " + ev
			}
		}
		return desc
	case domain.SliceKindView:
		return sl.ReadModel + " (view)"
	default:
		return fmt.Sprintf("Slice %d (automation)", sl.SliceIndex+1)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
