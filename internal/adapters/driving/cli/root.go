// Package cli provides the cobra command-line adapter for emap.
// Commands drive the core exclusively through its driving ports; wiring of
// the concrete services happens once per invocation in ensureServices.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emap-labs/emap-cli/internal/adapters/driven/artifacts/memory"
	configfile "github.com/emap-labs/emap-cli/internal/adapters/driven/config/file"
	modelfile "github.com/emap-labs/emap-cli/internal/adapters/driven/modelsource/file"
	"github.com/emap-labs/emap-cli/internal/core/ports/driven"
	"github.com/emap-labs/emap-cli/internal/core/ports/driving"
	"github.com/emap-labs/emap-cli/internal/core/services"
	"github.com/emap-labs/emap-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	modelFlag   string
	configDir   string
)

// Services the commands run against. Tests inject fakes here.
var (
	explorerService driving.ExplorerService
	rebuildService  driving.RebuildService
	configStore     driven.ConfigStore
	modelPath       string
)

var rootCmd = &cobra.Command{
	Use:   "emap",
	Short: "Explore an event model's workflows, slices and cross-references",
	Long: `emap indexes a generated event model document and answers
cross-reference queries over it: substring search across chapters, slices
and elements, per-chapter slice listings with resolved detail, and
"where else is this used" lookups for events, commands and read models.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "path to the event model document (.json, .yaml)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.emap)")
}

// ensureServices wires the concrete adapters and runs the initial rebuild.
// Commands that answer queries call this first; version does not.
func ensureServices(cmd *cobra.Command) error {
	logger.SetVerbose(verboseFlag)

	if explorerService != nil {
		return nil
	}

	if configStore == nil {
		store, err := configfile.NewConfigStore(configDir)
		if err != nil {
			logger.Warn("Config store unavailable: %v", err)
		} else {
			configStore = store
		}
	}

	path := modelFlag
	if path == "" && configStore != nil {
		path = configStore.GetString(configfile.KeyModelPath)
	}
	if path == "" {
		return errors.New("no model document: pass --model or set model.path in the config file")
	}
	modelPath = path

	source, err := modelfile.NewSource(path)
	if err != nil {
		return err
	}

	artifacts := memory.NewArtifactStore()
	rebuild := services.NewRebuildService(source, artifacts)
	if _, err := rebuild.Rebuild(cmd.Context()); err != nil {
		return fmt.Errorf("build model artifacts: %w", err)
	}

	rebuildService = rebuild
	explorerService = services.NewExplorerService(artifacts)
	return nil
}
