package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joeblew999/langpack-inspector/internal/config"
	"github.com/joeblew999/langpack-inspector/internal/inspector"
)

// ErrIssues is returned with --fail-on-issues when a catalog is incomplete or outdated.
var ErrIssues = errors.New("incomplete or outdated catalogs found")

// ScanCmd reports translation coverage for one language
var ScanCmd = &cobra.Command{
	Use:   "scan [lang]",
	Short: "Show translation coverage of a language",
	Long: `Scan every compiled catalog (.mo) of a language and report how much of
each is translated, which language pack owns it and how old it is.

The language defaults to the "language" setting, then to the environment
(LC_ALL, LC_MESSAGES, LANG). Regional variants are included: "sv" also
scans sv_SE and sv_FI.

Catalogs older than 180 days are marked [old].

Examples:
  langpack scan                       # Current language
  langpack scan sv                    # Swedish
  langpack scan de --filter gtk       # Domains containing "gtk"
  langpack scan sv --sort coverage    # Least translated first
  langpack scan sv -f json            # Machine-readable
  langpack scan sv --jq '.catalogs[] | select(.outdated) | .domain' -r
  langpack scan sv --fail-on-issues   # Exit 1 if anything needs work`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

// HeatmapCmd shows the coverage heatmap for one language
var HeatmapCmd = &cobra.Command{
	Use:   "heatmap [lang]",
	Short: "Show a coverage heatmap of a language",
	Long: `Show one coloured cell per catalog:

  green  ≥ 90%    yellow ≥ 70%    orange ≥ 50%    red > 0%    gray 0%

Accepts the same flags as scan.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scanHeatmap = true
		return runScan(cmd, args)
	},
}

var (
	scanOut          outputFlags
	scanFilter       string
	scanSort         string
	scanHeatmap      bool
	scanColumns      int
	scanLocaleDirs   []string
	scanFailOnIssues bool
)

func init() {
	for _, c := range []*cobra.Command{ScanCmd, HeatmapCmd} {
		scanOut.register(c)
		c.Flags().StringVar(&scanFilter, "filter", "", "Only show domains containing this text")
		c.Flags().StringVar(&scanSort, "sort", "", "Sort by: "+strings.Join(inspector.SortKeys, ", ")+" (default from settings)")
		c.Flags().IntVar(&scanColumns, "columns", inspector.DefaultColumns, "Heatmap cells per row")
		c.Flags().StringSliceVar(&scanLocaleDirs, "locale-dir", nil, "Locale root to scan (repeatable, default from settings)")
		c.Flags().BoolVar(&scanFailOnIssues, "fail-on-issues", false, "Exit 1 if any catalog is incomplete or outdated")
	}
	ScanCmd.Flags().BoolVar(&scanHeatmap, "heatmap", false, "Show the heatmap instead of the list")
}

func runScan(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	lang := languageOf(args, settings)

	in := inspector.New(localeDirs(scanLocaleDirs, settings)...)
	result, err := in.Scan(cmd.Context(), lang)
	if err != nil {
		return fmt.Errorf("scan of %s failed: %w", lang, err)
	}

	sortKey := scanSort
	if sortKey == "" {
		sortKey = settings.Sort
	}
	records, err := inspector.Sort(inspector.Filter(result.Catalogs, scanFilter), sortKey)
	if err != nil {
		return err
	}
	result = result.WithCatalogs(records)

	out := cmd.OutOrStdout()
	handled, err := scanOut.encoded(out, result)
	if err != nil {
		return err
	}
	if !handled {
		p, err := scanOut.presenter(out, settings)
		if err != nil {
			return err
		}
		if scanOut.format == inspector.FormatText {
			welcome(cmd.ErrOrStderr(), settings)
		}
		if tp, ok := p.(*inspector.TerminalPresenter); ok {
			tp.Columns = scanColumns
		}

		if scanHeatmap || (!cmd.Flags().Changed("heatmap") && settings.View == config.ViewHeatmap) {
			p.Heatmap(result)
		} else {
			p.Scan(result)
		}
	}

	if scanFailOnIssues && result.HasIssues() {
		return ErrIssues
	}
	return nil
}
