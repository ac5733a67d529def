package cmd

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/joeblew999/langpack-inspector/internal/config"
)

var version = "dev"

// SetVersion sets the version string (called from main)
func SetVersion(v string) {
	version = v
}

// VersionCmd prints the version
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print langpack version",
	Long: `Print langpack version.

With --debug, prints the system information to attach to bug reports.`,
	Run: func(cmd *cobra.Command, args []string) {
		if versionDebug {
			writeSystemInfo(cmd.OutOrStdout())
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

var versionDebug bool

func init() {
	VersionCmd.Flags().BoolVar(&versionDebug, "debug", false, "Print system information for bug reports")
}

func writeSystemInfo(w io.Writer) {
	fmt.Fprintln(w, "App: Language Pack Inspector")
	fmt.Fprintf(w, "Version: %s\n", version)
	fmt.Fprintf(w, "Go: %s\n", runtime.Version())
	fmt.Fprintf(w, "OS: %s (%s)\n", runtime.GOOS, runtime.GOARCH)
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		fmt.Fprintf(w, "Module: %s %s\n", info.Main.Path, info.Main.Version)
	}
	fmt.Fprintf(w, "Settings: %s\n", config.SettingsFile())
}
