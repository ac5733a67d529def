// Package cmd provides CLI commands for langpack.
package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/joeblew999/langpack-inspector/internal/config"
	"github.com/joeblew999/langpack-inspector/internal/inspector"
	"github.com/joeblew999/langpack-inspector/internal/locale"
)

// outputFlags are shared by every command that prints a result.
type outputFlags struct {
	format  string
	jq      string
	raw     bool
	noColor bool
}

func (o *outputFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&o.format, "format", "f", inspector.FormatText, "Output format: text, markdown, json, yaml")
	c.Flags().StringVar(&o.jq, "jq", "", "jq expression applied to the JSON output")
	c.Flags().BoolVarP(&o.raw, "raw-output", "r", false, "With --jq, print strings without quotes")
	c.Flags().BoolVar(&o.noColor, "no-color", false, "Disable coloured output")
}

// encoded writes v when a structured format or a jq query was requested. It
// reports whether it handled the output.
func (o *outputFlags) encoded(w io.Writer, v any) (bool, error) {
	if o.jq != "" {
		return true, inspector.Query(w, v, o.jq, o.raw)
	}
	switch o.format {
	case inspector.FormatJSON, inspector.FormatYAML:
		return true, inspector.Encode(w, o.format, v)
	}
	return false, nil
}

// presenter returns the presenter for the text formats.
func (o *outputFlags) presenter(w io.Writer, s *config.Settings) (inspector.Presenter, error) {
	switch o.format {
	case "", inspector.FormatText:
		return inspector.NewTerminalPresenterTo(w, o.useColor(s)), nil
	case inspector.FormatMarkdown:
		return inspector.NewMarkdownPresenterTo(w), nil
	}
	return nil, fmt.Errorf("unsupported format %q (use text, markdown, json or yaml)", o.format)
}

// useColor resolves --no-color, then the color setting, then terminal detection.
func (o *outputFlags) useColor(s *config.Settings) bool {
	if o.noColor {
		return false
	}
	if enabled, set := s.ColorEnabled(); set {
		return enabled
	}
	return !color.NoColor
}

func loadSettings() (*config.Settings, error) {
	s, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return s, nil
}

// languageOf picks the language from the argument, the settings, then the
// environment.
func languageOf(args []string, s *config.Settings) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if s.Language != "" {
		return s.Language
	}
	return locale.SystemLanguage()
}

// localeDirs returns the --locale-dir values, or the configured roots.
func localeDirs(flagDirs []string, s *config.Settings) []string {
	if len(flagDirs) > 0 {
		return flagDirs
	}
	return s.ResolvedLocaleDirs()
}

// welcome prints a one-time introduction on the first interactive run.
func welcome(w io.Writer, s *config.Settings) {
	if s.WelcomeShown {
		return
	}
	fmt.Fprintln(w, "Welcome to Language Pack Inspector.")
	fmt.Fprintln(w, "  langpack packs           Browse installed language packs")
	fmt.Fprintln(w, "  langpack scan [lang]     Check translation coverage")
	fmt.Fprintln(w, "  langpack heatmap [lang]  Find missing translations at a glance")
	fmt.Fprintln(w)

	s.WelcomeShown = true
	if err := s.Save(); err != nil {
		log.Debug().Err(err).Msg("could not record welcome")
	}
}
