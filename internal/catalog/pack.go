package catalog

import "strings"

// Language pack name prefixes, stripped in this order to derive the language.
var packPrefixes = []string{
	"language-pack-gnome-",
	"language-pack-kde-",
	"language-pack-",
}

// LanguagePack is an installed language-pack package and the catalogs
// associated with it during a scan.
type LanguagePack struct {
	Name     string   `json:"name" yaml:"name"`
	Version  string   `json:"version" yaml:"version"`
	Language string   `json:"language" yaml:"language"`
	Catalogs []Record `json:"catalogs,omitempty" yaml:"catalogs,omitempty"`
}

// NewLanguagePack returns a pack with its language derived from name.
func NewLanguagePack(name, version string) LanguagePack {
	return LanguagePack{
		Name:     name,
		Version:  version,
		Language: LanguageFromPackage(name),
	}
}

// LanguageFromPackage derives the language code from a package name,
// e.g. "language-pack-gnome-sv" -> "sv", "language-pack-pt-base" -> "pt-base".
func LanguageFromPackage(name string) string {
	for _, p := range packPrefixes {
		name = strings.TrimPrefix(name, p)
	}
	return name
}

// MatchesLanguage reports whether the pack belongs to lang: either its derived
// language equals lang or lang occurs in the package name.
func (p LanguagePack) MatchesLanguage(lang string) bool {
	if lang == "" {
		return false
	}
	return p.Language == lang || strings.Contains(p.Name, lang)
}

// TotalTranslated sums Translated over the pack's catalogs.
func (p LanguagePack) TotalTranslated() int {
	n := 0
	for _, r := range p.Catalogs {
		n += r.Translated
	}
	return n
}

// TotalStrings sums Total over the pack's catalogs.
func (p LanguagePack) TotalStrings() int {
	n := 0
	for _, r := range p.Catalogs {
		n += r.Total
	}
	return n
}

// Coverage returns the pack-wide translated percentage.
func (p LanguagePack) Coverage() float64 {
	return percent(p.TotalTranslated(), p.TotalStrings())
}
