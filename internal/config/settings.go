package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/a8m/envsubst"
	"gopkg.in/yaml.v3"
)

// View names accepted by Settings.View.
const (
	ViewList    = "list"
	ViewHeatmap = "heatmap"
)

// Settings holds the user preferences persisted between runs.
type Settings struct {
	Language     string   `yaml:"language,omitempty"`
	Series       string   `yaml:"series,omitempty"`
	View         string   `yaml:"view,omitempty"`
	Sort         string   `yaml:"sort,omitempty"`
	LocaleDirs   []string `yaml:"locale_dirs,omitempty"`
	Color        *bool    `yaml:"color,omitempty"`
	WelcomeShown bool     `yaml:"welcome_shown,omitempty"`
}

// Defaults returns the settings used when no file exists.
func Defaults() *Settings {
	return &Settings{
		Series:     DefaultSeries,
		View:       ViewList,
		Sort:       "domain",
		LocaleDirs: []string{DefaultLocaleDir},
	}
}

// LoadSettings reads the settings from SettingsFile.
// Returns defaults if the file doesn't exist.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(SettingsFile())
}

// LoadSettingsFrom reads settings from path. Unset fields keep their defaults.
func LoadSettingsFrom(path string) (*Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	if len(s.LocaleDirs) == 0 {
		s.LocaleDirs = []string{DefaultLocaleDir}
	}
	return s, nil
}

// Save writes the settings to SettingsFile.
func (s *Settings) Save() error {
	return s.SaveTo(SettingsFile())
}

// SaveTo writes the settings to path, creating the parent directory.
func (s *Settings) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPerms); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, DefaultFilePerms); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// ResolvedLocaleDirs returns LocaleDirs with environment references
// ($HOME, ${SNAP}, ...) expanded. Entries that fail to expand are kept as written.
func (s *Settings) ResolvedLocaleDirs() []string {
	dirs := make([]string, 0, len(s.LocaleDirs))
	for _, d := range s.LocaleDirs {
		expanded, err := envsubst.String(d)
		if err != nil {
			expanded = d
		}
		if expanded != "" {
			dirs = append(dirs, filepath.Clean(expanded))
		}
	}
	return dirs
}

// ColorEnabled reports the color preference; unset means auto.
func (s *Settings) ColorEnabled() (enabled, set bool) {
	if s.Color == nil {
		return false, false
	}
	return *s.Color, true
}

// Keys returns the settable key names in sorted order.
func Keys() []string {
	keys := []string{"language", "series", "view", "sort", "locale_dirs", "color", "welcome_shown"}
	sort.Strings(keys)
	return keys
}

// Get returns the string form of a setting.
func (s *Settings) Get(key string) (string, error) {
	switch key {
	case "language":
		return s.Language, nil
	case "series":
		return s.Series, nil
	case "view":
		return s.View, nil
	case "sort":
		return s.Sort, nil
	case "locale_dirs":
		return strings.Join(s.LocaleDirs, ","), nil
	case "color":
		if s.Color == nil {
			return "auto", nil
		}
		return strconv.FormatBool(*s.Color), nil
	case "welcome_shown":
		return strconv.FormatBool(s.WelcomeShown), nil
	}
	return "", fmt.Errorf("unknown setting %q (known: %s)", key, strings.Join(Keys(), ", "))
}

// Set parses value and assigns it to key.
func (s *Settings) Set(key, value string) error {
	switch key {
	case "language":
		s.Language = value
	case "series":
		s.Series = value
	case "view":
		if value != ViewList && value != ViewHeatmap {
			return fmt.Errorf("invalid view %q: use %s or %s", value, ViewList, ViewHeatmap)
		}
		s.View = value
	case "sort":
		s.Sort = value
	case "locale_dirs":
		var dirs []string
		for _, d := range strings.Split(value, ",") {
			if d = strings.TrimSpace(d); d != "" {
				dirs = append(dirs, d)
			}
		}
		s.LocaleDirs = dirs
	case "color":
		if value == "auto" {
			s.Color = nil
			return nil
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid color %q: use true, false or auto", value)
		}
		s.Color = &b
	case "welcome_shown":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid welcome_shown %q: %w", value, err)
		}
		s.WelcomeShown = b
	default:
		return fmt.Errorf("unknown setting %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}
