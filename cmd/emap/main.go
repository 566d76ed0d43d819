// Command emap explores a generated event model: search, chapter slices and
// cross-reference queries over workflows, commands, events and read models.
package main

import (
	"os"

	"github.com/emap-labs/emap-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
