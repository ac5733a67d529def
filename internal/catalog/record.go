// Package catalog models compiled translation catalogs and the coverage
// statistics derived from them.
//
// Every type here is a plain value built once per scan. Nothing is cached or
// shared between scans.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joeblew999/langpack-inspector/internal/config"
	"github.com/joeblew999/langpack-inspector/internal/mo"
)

// Record describes one compiled catalog on disk.
type Record struct {
	Path         string     `json:"path" yaml:"path"`
	Domain       string     `json:"domain" yaml:"domain"`
	Package      string     `json:"package,omitempty" yaml:"package,omitempty"`
	Translated   int        `json:"translated" yaml:"translated"`
	Untranslated int        `json:"untranslated" yaml:"untranslated"`
	Total        int        `json:"total" yaml:"total"`
	ModifiedAt   *time.Time `json:"modified_at,omitempty" yaml:"modified_at,omitempty"`
	ReferenceURL string     `json:"reference_url" yaml:"reference_url"`
	Outdated     bool       `json:"outdated" yaml:"outdated"`
}

// NewRecord builds a Record for the catalog at path, evaluating its age
// against the current time.
func NewRecord(path, lang, pkg string) Record {
	return BuildRecord(path, lang, pkg, time.Now())
}

// BuildRecord builds a Record for the catalog at path, evaluating its age
// against now. A failed stat leaves ModifiedAt unset.
func BuildRecord(path, lang, pkg string, now time.Time) Record {
	translated, total := mo.CountFile(path)
	r := Record{
		Path:         path,
		Domain:       DomainOf(path),
		Package:      pkg,
		Translated:   translated,
		Untranslated: total - translated,
		Total:        total,
	}
	r.ReferenceURL = ReferenceURL(r.Domain, lang)

	if info, err := os.Stat(path); err == nil {
		mtime := info.ModTime()
		r.ModifiedAt = &mtime
	}
	r.Outdated = outdated(r.ModifiedAt, now)
	return r
}

// DomainOf returns the translation domain of a catalog path: the file name
// without its extension. A name that is only an extension (".mo") is kept whole.
func DomainOf(path string) string {
	base := filepath.Base(path)
	if domain := strings.TrimSuffix(base, filepath.Ext(base)); domain != "" {
		return domain
	}
	return base
}

// ReferenceURL returns the Launchpad translation page for domain in lang.
// The URL is not validated.
func ReferenceURL(domain, lang string) string {
	return fmt.Sprintf("%s/ubuntu/+source/%s/+pots/%s/%s/+translate",
		config.LaunchpadTranslations, domain, domain, lang)
}

// Coverage returns the translated share of Total as a percentage.
func (r Record) Coverage() float64 {
	return percent(r.Translated, r.Total)
}

// IsOutdated reports whether the catalog was older than the outdated
// threshold when the record was built.
func (r Record) IsOutdated() bool {
	return r.Outdated
}

// outdated counts whole days of age, so a file 180.9 days old is still current.
func outdated(mtime *time.Time, now time.Time) bool {
	if mtime == nil {
		return false
	}
	days := int(now.Sub(*mtime) / (24 * time.Hour))
	return days > config.OutdatedAfterDays
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) * 100 / float64(whole)
}
