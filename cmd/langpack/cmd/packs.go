package cmd

import (
	"github.com/spf13/cobra"

	"github.com/joeblew999/langpack-inspector/internal/catalog"
	"github.com/joeblew999/langpack-inspector/internal/dpkg"
	"github.com/joeblew999/langpack-inspector/internal/inspector"
)

// PacksCmd lists installed language packs
var PacksCmd = &cobra.Command{
	Use:   "packs [lang]",
	Short: "List installed language packs",
	Long: `List the installed language-pack-* packages as reported by dpkg.

With a language argument only the packs of that language are shown.
Prints nothing on systems without dpkg.

Examples:
  langpack packs
  langpack packs sv
  langpack packs -f json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPacks,
}

var packsOut outputFlags

func init() {
	packsOut.register(PacksCmd)
}

func runPacks(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	result := inspector.PacksResult{Packs: dpkg.New().ListLanguagePacks(cmd.Context())}
	if len(args) > 0 {
		result.Language = args[0]
		var packs []catalog.LanguagePack
		for _, p := range result.Packs {
			if p.MatchesLanguage(result.Language) {
				packs = append(packs, p)
			}
		}
		result.Packs = packs
	}

	out := cmd.OutOrStdout()
	if handled, err := packsOut.encoded(out, result); handled || err != nil {
		return err
	}
	p, err := packsOut.presenter(out, settings)
	if err != nil {
		return err
	}
	p.Packs(result)
	return nil
}
