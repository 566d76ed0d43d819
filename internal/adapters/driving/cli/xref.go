package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emap-labs/emap-cli/internal/core/domain"
)

var xrefJSON bool

var xrefCmd = &cobra.Command{
	Use:   "xref [kind] [name]",
	Short: "Show where an event, command or read model is used",
	Long: `Looks up a name in the cross-reference maps built from the model.
Kind is one of: event, command, readModel. Unknown names report no usage
rather than failing.`,
	Args: cobra.ExactArgs(2),
	RunE: runXref,
}

func init() {
	xrefCmd.Flags().BoolVar(&xrefJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(xrefCmd)
}

func runXref(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	kind, err := domain.ParseRefKind(args[0])
	if err != nil {
		return fmt.Errorf("unknown reference kind %q (want event, command or readModel)", args[0])
	}
	name := args[1]

	ref, err := explorerService.CrossReferences(cmd.Context(), kind, name)
	if err != nil {
		return fmt.Errorf("cross-reference lookup failed: %w", err)
	}

	if xrefJSON {
		data, err := json.MarshalIndent(ref, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal cross-reference: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if ref.IsZero() {
		cmd.Printf("%s %q is not used anywhere in the model.\n", kind, name)
		return nil
	}

	cmd.Printf("%s %q\n", kind, name)
	switch kind {
	case domain.RefKindEvent:
		printNameList(cmd, "Produced by", ref.ProducedBy)
	case domain.RefKindCommand:
		printNameList(cmd, "Triggers", ref.Triggers)
	case domain.RefKindReadModel:
		printNameList(cmd, "Sourced from", ref.Sources)
	}
	printNameList(cmd, "Workflows", ref.Workflows)
	return nil
}

func printNameList(cmd *cobra.Command, title string, names []string) {
	if len(names) == 0 {
		return
	}
	cmd.Printf("  %s: %s\n", title, strings.Join(names, ", "))
}
