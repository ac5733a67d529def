// Package locale finds compiled catalogs in locale directory trees and
// resolves the user's language.
package locale

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"

	"github.com/joeblew999/langpack-inspector/internal/config"
)

// Locator finds .mo files for a language under one or more locale roots.
type Locator struct {
	Roots []string
}

// NewLocator returns a Locator over roots, or the system locale directory
// when roots is empty.
func NewLocator(roots ...string) *Locator {
	if len(roots) == 0 {
		roots = []string{config.DefaultLocaleDir}
	}
	return &Locator{Roots: roots}
}

// Pattern returns the glob, relative to a locale root, matching the catalogs
// of lang and of its regional variants (sv matches sv and sv_SE, sv_FI).
func Pattern(lang string) string {
	return "{" + lang + "," + lang + "_*}/LC_MESSAGES/*.mo"
}

// Find returns the sorted, deduplicated catalog paths for lang. Missing or
// unreadable roots contribute nothing.
func (l *Locator) Find(lang string) []string {
	if !ValidLanguage(lang) {
		log.Debug().Str("lang", lang).Msg("rejecting language code")
		return nil
	}

	seen := make(map[string]struct{})
	pattern := Pattern(lang)
	for _, root := range l.Roots {
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			continue
		}
		matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
		if err != nil {
			log.Debug().Err(err).Str("root", root).Msg("glob failed")
			continue
		}
		for _, m := range matches {
			seen[filepath.Join(root, filepath.FromSlash(m))] = struct{}{}
		}
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// ValidLanguage rejects codes that would change the meaning of the glob or
// escape the locale root.
func ValidLanguage(lang string) bool {
	if lang == "" || lang == "." || lang == ".." {
		return false
	}
	return !strings.ContainsAny(lang, `/\*?[]{},`)
}

// SystemLanguage returns the language of the environment (LC_ALL, then
// LC_MESSAGES, then LANG) without region or encoding, e.g. "sv" for
// "sv_SE.UTF-8". It falls back to "en".
func SystemLanguage() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			if lang := baseLanguage(v); lang != "" {
				return lang
			}
		}
	}
	return config.DefaultLanguage
}

func baseLanguage(v string) string {
	if v == "C" || v == "POSIX" || strings.HasPrefix(v, "C.") {
		return ""
	}
	if i := strings.IndexAny(v, "_.@"); i >= 0 {
		v = v[:i]
	}
	return v
}
