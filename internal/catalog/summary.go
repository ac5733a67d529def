package catalog

// Summary aggregates a set of records.
type Summary struct {
	TotalStrings  int     `json:"total_strings" yaml:"total_strings"`
	Translated    int     `json:"translated" yaml:"translated"`
	Untranslated  int     `json:"untranslated" yaml:"untranslated"`
	Coverage      float64 `json:"coverage_pct" yaml:"coverage_pct"`
	FileCount     int     `json:"num_mo_files" yaml:"num_mo_files"`
	OutdatedCount int     `json:"outdated_files" yaml:"outdated_files"`
}

// Summarize folds records into a Summary. The result does not depend on the
// order of records; an empty input yields the zero Summary.
func Summarize(records []Record) Summary {
	var s Summary
	for _, r := range records {
		s.TotalStrings += r.Total
		s.Translated += r.Translated
		if r.IsOutdated() {
			s.OutdatedCount++
		}
	}
	s.FileCount = len(records)
	s.Untranslated = s.TotalStrings - s.Translated
	s.Coverage = percent(s.Translated, s.TotalStrings)
	return s
}
