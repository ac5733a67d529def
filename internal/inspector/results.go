// Package inspector scans the installed language packs and catalogs of one
// language and formats the results.
//
// This file defines result types for the inspector commands.
// These structs carry computed data (no printing) and are passed to presenters for output.
package inspector

import (
	"time"

	"github.com/joeblew999/langpack-inspector/internal/catalog"
	"github.com/joeblew999/langpack-inspector/internal/launchpad"
)

// ScanResult is the outcome of scanning one language.
type ScanResult struct {
	Language       string                 `json:"language" yaml:"language"`
	ScannedAt      time.Time              `json:"scanned_at" yaml:"scanned_at"`
	InstalledPacks int                    `json:"installed_packs" yaml:"installed_packs"`
	Packs          []catalog.LanguagePack `json:"packs" yaml:"packs"`
	Catalogs       []catalog.Record       `json:"catalogs" yaml:"catalogs"`
	Summary        catalog.Summary        `json:"summary" yaml:"summary"`
}

// HasIssues returns true if any catalog is incomplete or outdated
func (r ScanResult) HasIssues() bool {
	return r.Summary.Untranslated > 0 || r.Summary.OutdatedCount > 0
}

// WithCatalogs returns a copy of r showing only records. The summary and
// each pack's catalogs are recomputed over them.
func (r ScanResult) WithCatalogs(records []catalog.Record) ScanResult {
	r.Catalogs = records
	r.Summary = catalog.Summarize(records)
	if r.Packs != nil {
		packs := make([]catalog.LanguagePack, len(r.Packs))
		for i, p := range r.Packs {
			p.Catalogs = ownedBy(records, p.Name)
			packs[i] = p
		}
		r.Packs = packs
	}
	return r
}

// PacksResult lists installed language packs.
type PacksResult struct {
	Language string                 `json:"language,omitempty" yaml:"language,omitempty"`
	Packs    []catalog.LanguagePack `json:"packs" yaml:"packs"`
}

// TemplatesResult holds the Launchpad templates of one source package.
type TemplatesResult struct {
	Package   string               `json:"package" yaml:"package"`
	Series    string               `json:"series" yaml:"series"`
	URL       string               `json:"url" yaml:"url"`
	Templates []launchpad.Template `json:"templates" yaml:"templates"`
}
