// Package config provides centralized configuration and paths for langpack.
//
// This package defines:
// - Policy constants used across langpack (outdated threshold, default series)
// - Remote endpoints and external tool limits
// - The config directory and the persisted settings file
//
// Environment variables:
//   - LANGPACK_HOME: Override the config directory
//     (default: $XDG_CONFIG_HOME/langpack-inspector or ~/.config/langpack-inspector)
//   - LANGPACK_LOG_LEVEL: zerolog level (default: warn)
package config

import (
	"os"
	"path/filepath"
	"time"
)

// AppName is used for the config directory and user-facing output.
const AppName = "langpack-inspector"

// === Catalog policy ===

const (
	// OutdatedAfterDays is the age in whole days after which a catalog is
	// reported as outdated.
	OutdatedAfterDays = 180

	// DefaultLocaleDir is the conventional root of compiled catalogs.
	DefaultLocaleDir = "/usr/share/locale"

	// DefaultLanguage is used when no language can be derived from the environment.
	DefaultLanguage = "en"
)

// === Launchpad ===

const (
	// LaunchpadAPI is the base of the Launchpad REST API.
	LaunchpadAPI = "https://api.launchpad.net/devel"

	// LaunchpadTranslations is the base of the Launchpad translations web UI.
	LaunchpadTranslations = "https://translations.launchpad.net"

	// DefaultSeries is the Ubuntu series queried for translation templates.
	DefaultSeries = "noble"

	// LaunchpadTimeout bounds a single template request.
	LaunchpadTimeout = 10 * time.Second
)

// === dpkg ===

const (
	// LanguagePackPattern is the dpkg-query pattern for language packs.
	LanguagePackPattern = "language-pack-*"

	// OwnerBatchSize caps the number of paths passed to one dpkg -S call.
	OwnerBatchSize = 50

	// ListTimeout bounds the dpkg-query call.
	ListTimeout = 10 * time.Second

	// OwnerTimeout bounds one dpkg -S batch.
	OwnerTimeout = 15 * time.Second
)

// === MCP ===

const (
	// DefaultMCPPort is the default port for the MCP HTTP transport.
	DefaultMCPPort = "8766"
)

// === Default permissions ===

const (
	// DefaultDirPerms is the default permission mode for created directories.
	DefaultDirPerms = 0755

	// DefaultFilePerms is the default permission mode for created files.
	DefaultFilePerms = 0644
)

// Home returns the langpack config directory.
// Uses LANGPACK_HOME if set, then $XDG_CONFIG_HOME/langpack-inspector,
// otherwise ~/.config/langpack-inspector.
func Home() string {
	if h := os.Getenv("LANGPACK_HOME"); h != "" {
		return h
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsFile returns the path of the persisted settings.
// Returns <Home>/settings.yaml
func SettingsFile() string {
	return filepath.Join(Home(), "settings.yaml")
}
