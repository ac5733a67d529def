package catalog

import "encoding/json"

// The derived percentages are methods, so the encoders add them explicitly.

type plainRecord Record

type recordView struct {
	plainRecord `yaml:",inline"`
	Coverage    float64 `json:"coverage_pct" yaml:"coverage_pct"`
}

// MarshalJSON adds coverage_pct to the record's fields.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordView{plainRecord(r), r.Coverage()})
}

// MarshalYAML adds coverage_pct to the record's fields.
func (r Record) MarshalYAML() (any, error) {
	return recordView{plainRecord(r), r.Coverage()}, nil
}

type plainPack LanguagePack

type packView struct {
	plainPack       `yaml:",inline"`
	TotalTranslated int     `json:"total_translated" yaml:"total_translated"`
	TotalStrings    int     `json:"total_strings" yaml:"total_strings"`
	Coverage        float64 `json:"coverage_pct" yaml:"coverage_pct"`
}

// MarshalJSON adds the pack totals to its fields.
func (p LanguagePack) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.view())
}

// MarshalYAML adds the pack totals to its fields.
func (p LanguagePack) MarshalYAML() (any, error) {
	return p.view(), nil
}

func (p LanguagePack) view() packView {
	return packView{plainPack(p), p.TotalTranslated(), p.TotalStrings(), p.Coverage()}
}
