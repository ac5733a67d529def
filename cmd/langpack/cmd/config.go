package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joeblew999/langpack-inspector/internal/config"
)

// ConfigCmd is the parent command for settings
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and change persisted settings",
	Long: `Read and change the settings kept in settings.yaml.

Keys: color, language, locale_dirs, series, sort, view, welcome_shown

Examples:
  langpack config list
  langpack config get series
  langpack config set language sv
  langpack config set locale_dirs '/usr/share/locale,$HOME/.local/share/locale'
  langpack config set color auto
  langpack config path`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		v, err := s.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		if err := s.Set(args[0], args[1]); err != nil {
			return err
		}
		return s.Save()
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		for _, key := range config.Keys() {
			v, _ := s.Get(key)
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", key, v)
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.SettingsFile())
	},
}

func init() {
	ConfigCmd.AddCommand(configGetCmd)
	ConfigCmd.AddCommand(configSetCmd)
	ConfigCmd.AddCommand(configListCmd)
	ConfigCmd.AddCommand(configPathCmd)
}
