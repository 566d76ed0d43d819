package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emap-labs/emap-cli/internal/core/domain"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search chapters, slices and elements by substring",
	Long: `Runs a case-folded substring search over the model index.
Matches are partitioned into chapters, slices and elements; within each
partition, entries whose name contains the query rank first.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	query := args[0]
	ctx := cmd.Context()

	result, err := explorerService.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if result == nil {
		cmd.Println("Empty query.")
		return nil
	}

	if searchJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if result.Total() == 0 {
		cmd.Println("No results found.")
		suggestions, err := explorerService.Suggest(ctx, query, 3)
		if err == nil && len(suggestions) > 0 {
			cmd.Println("Did you mean:")
			for _, sg := range suggestions {
				cmd.Printf("  %s\n", sg.Name)
			}
		}
		return nil
	}

	printPartition(cmd, "Chapters", result.Chapters)
	printPartition(cmd, "Slices", result.Slices)
	printPartition(cmd, "Elements", result.Elements)
	return nil
}

func printPartition(cmd *cobra.Command, title string, entries []domain.IndexEntry) {
	if len(entries) == 0 {
		return
	}
	cmd.Printf("%s:\n", title)
	for _, entry := range entries {
		switch entry.Kind {
		case domain.EntryKindSlice:
			cmd.Printf("  %s (%s, slice %d)\n", entry.Name, entry.ChapterName, entry.SliceIndex+1)
		case domain.EntryKindWorkflow:
			cmd.Printf("  %s\n", entry.Name)
		default:
			cmd.Printf("  %s (%s)\n", entry.Name, entry.Kind)
		}
	}
	cmd.Println()
}
