package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/emap-labs/emap-cli/internal/adapters/driven/config/file"
	"github.com/emap-labs/emap-cli/internal/adapters/driven/watch"
	"github.com/emap-labs/emap-cli/internal/adapters/driving/mcp"
	"github.com/emap-labs/emap-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead. With --watch, the model
document is watched and the artifacts rebuilt whenever it changes;
queries keep answering from the previous build until the new one lands.

Examples:
  # Stdio mode (default, for Claude Desktop)
  emap mcp serve --model model.json

  # HTTP mode with rebuild-on-change
  emap mcp serve --model model.json --port 8080 --watch`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("watch", false, "rebuild when the model document changes")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	watchFlag, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("getting watch flag: %w", err)
	}
	if !watchFlag && configStore != nil {
		watchFlag = configStore.GetBool(configfile.KeyWatch)
	}

	ports := &mcp.Ports{
		Explorer: explorerService,
		Rebuild:  rebuildService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if watchFlag && rebuildService != nil && modelPath != "" {
		watcher := watch.NewWatcher(modelPath, rebuildService)
		go func() {
			if err := watcher.Run(cmd.Context()); err != nil && cmd.Context().Err() == nil {
				logger.Warn("Watcher stopped: %v", err)
			}
		}()
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
