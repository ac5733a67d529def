package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joeblew999/langpack-inspector/internal/config"
	"github.com/joeblew999/langpack-inspector/internal/inspector"
)

// ExportCmd writes a scan to a file
var ExportCmd = &cobra.Command{
	Use:   "export [lang]",
	Short: "Export the catalogs of a language as CSV, JSON or YAML",
	Long: `Scan a language and write one row per catalog.

Without --output the export is written to stdout.

Examples:
  langpack export sv -o sv.csv
  langpack export de --format json -o de.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var (
	exportFormat     string
	exportOutput     string
	exportLocaleDirs []string
)

func init() {
	ExportCmd.Flags().StringVarP(&exportFormat, "format", "f", inspector.FormatCSV, "Export format: csv, json, yaml")
	ExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
	ExportCmd.Flags().StringSliceVar(&exportLocaleDirs, "locale-dir", nil, "Locale root to scan (repeatable, default from settings)")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFormat != inspector.FormatCSV && exportFormat != inspector.FormatJSON && exportFormat != inspector.FormatYAML {
		return fmt.Errorf("unsupported export format %q (use csv, json or yaml)", exportFormat)
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	lang := languageOf(args, settings)

	result, err := inspector.New(localeDirs(exportLocaleDirs, settings)...).Scan(cmd.Context(), lang)
	if err != nil {
		return fmt.Errorf("scan of %s failed: %w", lang, err)
	}

	write := func(w io.Writer) error {
		if exportFormat == inspector.FormatCSV {
			return inspector.WriteCSV(w, result.Catalogs)
		}
		return inspector.Encode(w, exportFormat, result)
	}

	if exportOutput == "" {
		if err := write(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		return nil
	}

	f, err := os.OpenFile(exportOutput, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, config.DefaultFilePerms)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", exportOutput, err)
	}
	if err := writeAndClose(f, exportOutput, write); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d catalogs to %s\n", len(result.Catalogs), exportOutput)
	return nil
}

// writeAndClose runs write on wc and closes it. A close error fails the export.
func writeAndClose(wc io.WriteCloser, path string, write func(io.Writer) error) error {
	if err := write(wc); err != nil {
		wc.Close()
		return fmt.Errorf("export failed: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}
