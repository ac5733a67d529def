package inspector

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/itchyny/gojq"
	"gopkg.in/yaml.v3"

	"github.com/joeblew999/langpack-inspector/internal/catalog"
)

// Output formats accepted by Encode.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatCSV      = "csv"
)

// Encode writes v as JSON or YAML.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format %q", format)
}

// Query runs a jq expression over the JSON form of v and writes each result.
// With raw set, string results are written without quotes.
func Query(w io.Writer, v any, expr string, raw bool) error {
	query, err := gojq.Parse(expr)
	if err != nil {
		return fmt.Errorf("invalid query: %w", err)
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return fmt.Errorf("compile error: %w", err)
	}

	// gojq works on plain JSON values, not Go structs.
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return err
	}

	iter := code.Run(input)
	for {
		out, ok := iter.Next()
		if !ok {
			return nil
		}
		if err, ok := out.(error); ok {
			return err
		}
		if s, ok := out.(string); ok && raw {
			fmt.Fprintln(w, s)
			continue
		}
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("cannot encode output: %w", err)
		}
		fmt.Fprintln(w, string(b))
	}
}

var csvHeader = []string{
	"domain", "package", "translated", "untranslated", "total",
	"coverage_pct", "modified", "outdated", "path", "reference_url",
}

// WriteCSV exports records, one row per catalog.
func WriteCSV(w io.Writer, records []catalog.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		modified := ""
		if r.ModifiedAt != nil {
			modified = r.ModifiedAt.UTC().Format(time.RFC3339)
		}
		row := []string{
			r.Domain,
			r.Package,
			strconv.Itoa(r.Translated),
			strconv.Itoa(r.Untranslated),
			strconv.Itoa(r.Total),
			strconv.FormatFloat(r.Coverage(), 'f', 1, 64),
			modified,
			strconv.FormatBool(r.IsOutdated()),
			r.Path,
			r.ReferenceURL,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
