// Package inspector scans the installed language packs and catalogs of one
// language and formats the results.
//
// This file contains the scan itself. Results are defined in results.go and
// rendered by the presenters in presenter.go.
package inspector

import (
	"context"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/joeblew999/langpack-inspector/internal/catalog"
	"github.com/joeblew999/langpack-inspector/internal/dpkg"
	"github.com/joeblew999/langpack-inspector/internal/locale"
)

// PackLister lists installed language packs.
type PackLister interface {
	ListLanguagePacks(ctx context.Context) []catalog.LanguagePack
}

// CatalogFinder returns the catalog paths of a language.
type CatalogFinder interface {
	Find(lang string) []string
}

// OwnerMapper maps catalog paths to owning packages.
type OwnerMapper interface {
	Owners(ctx context.Context, paths []string) map[string]string
}

// Inspector wires the collaborators of a scan.
type Inspector struct {
	Packs    PackLister
	Catalogs CatalogFinder
	Owners   OwnerMapper

	// Now is read once per scan; defaults to time.Now.
	Now func() time.Time

	// Workers bounds concurrent catalog reads; defaults to GOMAXPROCS.
	Workers int
}

// New returns an Inspector backed by dpkg and the given locale roots.
func New(localeDirs ...string) *Inspector {
	client := dpkg.New()
	return &Inspector{
		Packs:    client,
		Catalogs: locale.NewLocator(localeDirs...),
		Owners:   client,
	}
}

// Scan inspects every catalog of lang. The only error is the context's.
func (in *Inspector) Scan(ctx context.Context, lang string) (ScanResult, error) {
	now := time.Now
	if in.Now != nil {
		now = in.Now
	}
	scannedAt := now()

	var installed []catalog.LanguagePack
	if in.Packs != nil {
		installed = in.Packs.ListLanguagePacks(ctx)
	}

	paths := in.Catalogs.Find(lang)

	owners := map[string]string{}
	if in.Owners != nil && len(paths) > 0 {
		owners = in.Owners.Owners(ctx, paths)
	}

	records, err := in.buildRecords(ctx, paths, lang, owners, scannedAt)
	if err != nil {
		return ScanResult{}, err
	}

	packs := attachCatalogs(installed, records, lang)

	log.Debug().
		Str("lang", lang).
		Int("catalogs", len(records)).
		Int("packs", len(packs)).
		Int("owned", len(owners)).
		Msg("scan complete")

	return ScanResult{
		Language:       lang,
		ScannedAt:      scannedAt,
		InstalledPacks: len(installed),
		Packs:          packs,
		Catalogs:       records,
		Summary:        catalog.Summarize(records),
	}, nil
}

// buildRecords reads the catalogs on a bounded pool. records keeps the order
// of paths.
func (in *Inspector) buildRecords(ctx context.Context, paths []string, lang string, owners map[string]string, now time.Time) ([]catalog.Record, error) {
	workers := in.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	records := make([]catalog.Record, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records[i] = catalog.BuildRecord(path, lang, owners[path], now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// attachCatalogs keeps the packs of lang and gives each the records it owns.
func attachCatalogs(installed []catalog.LanguagePack, records []catalog.Record, lang string) []catalog.LanguagePack {
	var packs []catalog.LanguagePack
	for _, p := range installed {
		if !p.MatchesLanguage(lang) {
			continue
		}
		p.Catalogs = ownedBy(records, p.Name)
		packs = append(packs, p)
	}
	return packs
}

// ownedBy returns the records owned by the package pkg, in order.
func ownedBy(records []catalog.Record, pkg string) []catalog.Record {
	var owned []catalog.Record
	for _, r := range records {
		if r.Package == pkg {
			owned = append(owned, r)
		}
	}
	return owned
}
