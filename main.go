// langpack - Language Pack Inspector
//
// Reports how completely the installed language packs translate the
// system: coverage per compiled catalog, owning packages, outdated files,
// and the Launchpad templates behind them.
package main

import (
	"os"

	// Bootstrap MUST be imported first to configure logging before other packages initialize
	_ "github.com/joeblew999/langpack-inspector/internal/bootstrap"

	"github.com/joeblew999/langpack-inspector/cmd/langpack/cmd"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "langpack",
		Short: "Inspect translation coverage of installed language packs",
		Long: `langpack inspects the compiled translation catalogs (.mo files) of a
language and reports how much of each is translated.

TYPICAL WORKFLOW:
  1. langpack packs sv          # Which Swedish language packs are installed
  2. langpack scan sv           # Coverage per catalog, oldest marked [old]
  3. langpack heatmap sv        # Spot the gaps at a glance
  4. langpack templates gedit   # What Launchpad has for a package
  5. langpack export sv -o sv.csv

KEY COMMANDS:
  scan       - Coverage list for a language
  heatmap    - Coverage heatmap for a language
  packs      - Installed language packs (dpkg)
  templates  - Launchpad translation templates
  export     - CSV/JSON/YAML export
  config     - Persisted settings
  mcp        - MCP server for AI assistants`,
		SilenceUsage: true,
	}

	// Pass version to the version command
	cmd.SetVersion(Version)

	// Inspection
	rootCmd.AddCommand(cmd.ScanCmd)
	rootCmd.AddCommand(cmd.HeatmapCmd)
	rootCmd.AddCommand(cmd.PacksCmd)
	rootCmd.AddCommand(cmd.TemplatesCmd)
	rootCmd.AddCommand(cmd.ExportCmd)

	// Settings
	rootCmd.AddCommand(cmd.ConfigCmd)

	// MCP - Model Context Protocol server for AI IDEs
	rootCmd.AddCommand(cmd.MCPCmd)

	rootCmd.AddCommand(cmd.VersionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
