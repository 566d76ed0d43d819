package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/emap-labs/emap-cli/internal/adapters/driven/config/file"
	modelfile "github.com/emap-labs/emap-cli/internal/adapters/driven/modelsource/file"
	"github.com/emap-labs/emap-cli/internal/logger"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the model document without building artifacts",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	path := modelFlag
	if path == "" {
		if store, err := configfile.NewConfigStore(configDir); err == nil {
			path = store.GetString(configfile.KeyModelPath)
		}
	}
	if path == "" {
		return errors.New("no model document: pass --model or set model.path in the config file")
	}

	source, err := modelfile.NewSource(path)
	if err != nil {
		return err
	}

	snapshot, err := source.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("invalid model: %w", err)
	}
	if err := snapshot.Validate(); err != nil {
		return fmt.Errorf("invalid model: %w", err)
	}

	cmd.Printf("%s is valid: %d chapters, %d commands, %d events, %d read models\n",
		path, len(snapshot.Chapters), len(snapshot.Commands),
		len(snapshot.ExtractedEvents), len(snapshot.ReadModels))
	return nil
}
