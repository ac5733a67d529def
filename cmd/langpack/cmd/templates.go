package cmd

import (
	"github.com/spf13/cobra"

	"github.com/joeblew999/langpack-inspector/internal/inspector"
	"github.com/joeblew999/langpack-inspector/internal/launchpad"
)

// TemplatesCmd fetches Launchpad translation templates
var TemplatesCmd = &cobra.Command{
	Use:   "templates <source-package>",
	Short: "Show Launchpad translation templates of a source package",
	Long: `Fetch the translation templates (POT) Launchpad holds for an Ubuntu
source package. Network failures print an empty list.

The series defaults to the "series" setting (noble).

Examples:
  langpack templates gedit
  langpack templates nautilus --series jammy
  langpack templates gedit -f json`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplates,
}

var (
	templatesOut    outputFlags
	templatesSeries string
)

func init() {
	templatesOut.register(TemplatesCmd)
	TemplatesCmd.Flags().StringVar(&templatesSeries, "series", "", "Ubuntu series (default from settings)")
}

func runTemplates(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	series := templatesSeries
	if series == "" {
		series = settings.Series
	}

	client := launchpad.New()
	result := inspector.TemplatesResult{
		Package:   args[0],
		Series:    series,
		URL:       client.TemplatesURL(args[0], series),
		Templates: client.Templates(cmd.Context(), args[0], series),
	}

	out := cmd.OutOrStdout()
	if handled, err := templatesOut.encoded(out, result); handled || err != nil {
		return err
	}
	p, err := templatesOut.presenter(out, settings)
	if err != nil {
		return err
	}
	p.Templates(result)
	return nil
}
