package inspector

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/joeblew999/langpack-inspector/internal/catalog"
)

// Sort keys accepted by Sort.
const (
	SortDomain       = "domain"
	SortCoverage     = "coverage"
	SortUntranslated = "untranslated"
	SortModified     = "modified"
)

// SortKeys lists the accepted sort keys.
var SortKeys = []string{SortDomain, SortCoverage, SortUntranslated, SortModified}

// HeatClass buckets a coverage percentage into the heatmap colours.
type HeatClass string

const (
	HeatGreen  HeatClass = "green"
	HeatYellow HeatClass = "yellow"
	HeatOrange HeatClass = "orange"
	HeatRed    HeatClass = "red"
	HeatGray   HeatClass = "gray"
)

// Heat returns the heatmap class of pct.
func Heat(pct float64) HeatClass {
	switch {
	case pct >= 90:
		return HeatGreen
	case pct >= 70:
		return HeatYellow
	case pct >= 50:
		return HeatOrange
	case pct > 0:
		return HeatRed
	}
	return HeatGray
}

// Indicator is the list-view status of a catalog.
type Indicator string

const (
	IndicatorOK      Indicator = "ok"
	IndicatorWarning Indicator = "warning"
	IndicatorError   Indicator = "error"
)

// IndicatorFor returns the list-view status of pct.
func IndicatorFor(pct float64) Indicator {
	switch {
	case pct >= 90:
		return IndicatorOK
	case pct >= 50:
		return IndicatorWarning
	}
	return IndicatorError
}

// Filter returns the records whose domain contains query, ignoring case.
// An empty query returns records unchanged.
func Filter(records []catalog.Record, query string) []catalog.Record {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records
	}
	var out []catalog.Record
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Domain), query) {
			out = append(out, r)
		}
	}
	return out
}

// Sort returns a sorted copy of records. Ties are broken by domain, then path.
// coverage sorts ascending so the least translated come first; untranslated
// and modified sort descending.
func Sort(records []catalog.Record, key string) ([]catalog.Record, error) {
	var by func(a, b catalog.Record) int
	switch key {
	case "", SortDomain:
		by = func(a, b catalog.Record) int { return 0 }
	case SortCoverage:
		by = func(a, b catalog.Record) int { return cmp.Compare(a.Coverage(), b.Coverage()) }
	case SortUntranslated:
		by = func(a, b catalog.Record) int { return cmp.Compare(b.Untranslated, a.Untranslated) }
	case SortModified:
		by = func(a, b catalog.Record) int { return cmp.Compare(unix(b), unix(a)) }
	default:
		return nil, fmt.Errorf("unknown sort key %q (use %s)", key, strings.Join(SortKeys, ", "))
	}

	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b catalog.Record) int {
		if c := by(a, b); c != 0 {
			return c
		}
		if c := strings.Compare(a.Domain, b.Domain); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
	return out, nil
}

func unix(r catalog.Record) int64 {
	if r.ModifiedAt == nil {
		return 0
	}
	return r.ModifiedAt.UnixNano()
}
