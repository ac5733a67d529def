// Package inspector scans the installed language packs and catalogs of one
// language and formats the results.
//
// This file defines presenters for formatting command output.
// Presenters implement the Presenter interface and handle all output formatting,
// keeping the scan (in inspector.go) pure and testable.
package inspector

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/joeblew999/langpack-inspector/internal/catalog"
)

// Presenter defines the interface for formatting command output.
type Presenter interface {
	Scan(r ScanResult)
	Heatmap(r ScanResult)
	Packs(r PacksResult)
	Templates(r TemplatesResult)
}

// SummaryLine renders the one-line summary of a scan.
func SummaryLine(r ScanResult) string {
	s := r.Summary
	return fmt.Sprintf("Language: %s — %s/%s strings translated (%.1f%%) — %d .mo files — %d outdated",
		r.Language,
		humanize.Comma(int64(s.Translated)),
		humanize.Comma(int64(s.TotalStrings)),
		s.Coverage,
		s.FileCount,
		s.OutdatedCount,
	)
}

// ============================================================================
// Terminal Presenter - Human-readable output for CLI
// ============================================================================

// DefaultColumns is the number of heatmap cells per row.
const DefaultColumns = 4

// cellWidth is the width of a heatmap cell's domain label.
const cellWidth = 16

// TerminalPresenter formats output for interactive terminal use.
type TerminalPresenter struct {
	w       io.Writer
	color   bool
	Columns int
}

// NewTerminalPresenter creates a presenter that writes to stdout, colouring
// output when stdout is a terminal.
func NewTerminalPresenter() *TerminalPresenter {
	return &TerminalPresenter{w: os.Stdout, color: !color.NoColor, Columns: DefaultColumns}
}

// NewTerminalPresenterTo creates a presenter that writes to a custom writer.
func NewTerminalPresenterTo(w io.Writer, useColor bool) *TerminalPresenter {
	return &TerminalPresenter{w: w, color: useColor, Columns: DefaultColumns}
}

func (p *TerminalPresenter) paint(text string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if p.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

func (p *TerminalPresenter) section(title string) {
	fmt.Fprintln(p.w, p.paint("=== "+title+" ===", color.Bold))
}

func (p *TerminalPresenter) packLines(r ScanResult) {
	p.section("Language packs")
	if len(r.Packs) == 0 {
		fmt.Fprintf(p.w, "No language packs found for '%s'\n", r.Language)
	}
	for _, pk := range r.Packs {
		line := fmt.Sprintf("• %s (%s)", pk.Name, pk.Version)
		if pk.TotalStrings() > 0 {
			line += fmt.Sprintf(" — %d/%d (%.0f%%)", pk.TotalTranslated(), pk.TotalStrings(), pk.Coverage())
		}
		fmt.Fprintln(p.w, line)
	}
	fmt.Fprintln(p.w)
}

// Scan formats the list view.
func (p *TerminalPresenter) Scan(r ScanResult) {
	p.packLines(r)

	p.section("Catalogs")
	if len(r.Catalogs) == 0 {
		fmt.Fprintln(p.w, "(none)")
	}
	for _, rec := range r.Catalogs {
		p.row(r, rec)
	}
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, SummaryLine(r))
}

func (p *TerminalPresenter) row(r ScanResult, rec catalog.Record) {
	pct := rec.Coverage()

	var icon string
	switch IndicatorFor(pct) {
	case IndicatorOK:
		icon = p.paint("✓", color.FgGreen)
	case IndicatorWarning:
		icon = p.paint("!", color.FgYellow)
	default:
		icon = p.paint("✗", color.FgRed)
	}

	title := rec.Domain
	if rec.IsOutdated() {
		title += " " + p.paint("[old]", color.FgRed)
	}
	fmt.Fprintf(p.w, "%s %s\n", icon, title)

	var parts []string
	if rec.Package != "" {
		parts = append(parts, rec.Package)
	}
	parts = append(parts, fmt.Sprintf("%d/%d (%.0f%%)", rec.Translated, rec.Total, pct))
	if rec.ModifiedAt != nil {
		parts = append(parts, fmt.Sprintf("%s (%s)",
			rec.ModifiedAt.Format("2006-01-02"),
			humanize.RelTime(*rec.ModifiedAt, r.ScannedAt, "ago", "from now")))
	}
	fmt.Fprintf(p.w, "    %s\n", strings.Join(parts, " · "))
	if rec.ReferenceURL != "" {
		fmt.Fprintf(p.w, "    %s\n", p.paint(rec.ReferenceURL, color.Faint))
	}
}

var heatAttrs = map[HeatClass][]color.Attribute{
	HeatGreen:  {color.BgGreen, color.FgBlack},
	HeatYellow: {color.BgHiYellow, color.FgBlack},
	HeatOrange: {color.BgYellow, color.FgBlack},
	HeatRed:    {color.BgRed, color.FgWhite},
	HeatGray:   {color.BgHiBlack, color.FgWhite},
}

// Heatmap formats the heatmap view: one cell per catalog, coloured by coverage.
func (p *TerminalPresenter) Heatmap(r ScanResult) {
	cols := p.Columns
	if cols <= 0 {
		cols = DefaultColumns
	}

	p.section("Coverage heatmap")
	if len(r.Catalogs) == 0 {
		fmt.Fprintln(p.w, "(none)")
	}
	for i, rec := range r.Catalogs {
		fmt.Fprint(p.w, p.cell(rec))
		if (i+1)%cols == 0 || i == len(r.Catalogs)-1 {
			fmt.Fprintln(p.w)
		} else {
			fmt.Fprint(p.w, " ")
		}
	}
	fmt.Fprintln(p.w)
	p.legend()
	fmt.Fprintln(p.w, SummaryLine(r))
}

func (p *TerminalPresenter) cell(rec catalog.Record) string {
	text := fmt.Sprintf(" %-*s %4.0f%% ", cellWidth, truncate(rec.Domain, cellWidth), rec.Coverage())
	return p.paint(text, heatAttrs[Heat(rec.Coverage())]...)
}

func (p *TerminalPresenter) legend() {
	entries := []struct {
		class HeatClass
		label string
	}{
		{HeatGreen, "≥90%"},
		{HeatYellow, "≥70%"},
		{HeatOrange, "≥50%"},
		{HeatRed, ">0%"},
		{HeatGray, "0%"},
	}
	var parts []string
	for _, e := range entries {
		parts = append(parts, p.paint(" "+string(e.class)+" ", heatAttrs[e.class]...)+" "+e.label)
	}
	fmt.Fprintln(p.w, strings.Join(parts, "  "))
}

// Packs formats the installed language packs.
func (p *TerminalPresenter) Packs(r PacksResult) {
	p.section("Installed language packs")
	if len(r.Packs) == 0 {
		fmt.Fprintln(p.w, "(none)")
		return
	}
	for _, pk := range r.Packs {
		fmt.Fprintf(p.w, "%-40s %-8s %s\n", pk.Name, pk.Language, pk.Version)
	}
}

// Templates formats Launchpad translation templates.
func (p *TerminalPresenter) Templates(r TemplatesResult) {
	p.section(fmt.Sprintf("Launchpad templates: %s (%s)", r.Package, r.Series))
	if len(r.Templates) == 0 {
		fmt.Fprintln(p.w, "(none)")
		return
	}
	for _, t := range r.Templates {
		name := t.Name
		if t.IsCurrent {
			name += " " + p.paint("[current]", color.FgGreen)
		}
		fmt.Fprintln(p.w, name)
		var parts []string
		if t.TranslationDomain != "" {
			parts = append(parts, "domain "+t.TranslationDomain)
		}
		if t.MessageCount > 0 {
			parts = append(parts, humanize.Comma(int64(t.MessageCount))+" messages")
		}
		if t.Path != "" {
			parts = append(parts, t.Path)
		}
		if len(parts) > 0 {
			fmt.Fprintf(p.w, "    %s\n", strings.Join(parts, " · "))
		}
		if t.WebLink != "" {
			fmt.Fprintf(p.w, "    %s\n", p.paint(t.WebLink, color.Faint))
		}
	}
}

// ============================================================================
// Markdown Presenter - Output for GitHub issues and reports
// ============================================================================

// MarkdownPresenter formats output as GitHub-flavored Markdown.
type MarkdownPresenter struct {
	w io.Writer
}

// NewMarkdownPresenter creates a presenter that writes to stdout.
func NewMarkdownPresenter() *MarkdownPresenter {
	return &MarkdownPresenter{w: os.Stdout}
}

// NewMarkdownPresenterTo creates a presenter that writes to a custom writer.
func NewMarkdownPresenterTo(w io.Writer) *MarkdownPresenter {
	return &MarkdownPresenter{w: w}
}

// Scan formats the list view as a table.
func (p *MarkdownPresenter) Scan(r ScanResult) {
	fmt.Fprintf(p.w, "## Translation coverage: %s\n\n", r.Language)
	fmt.Fprintf(p.w, "%s\n\n", SummaryLine(r))

	if len(r.Packs) > 0 {
		for _, pk := range r.Packs {
			fmt.Fprintf(p.w, "- `%s` (%s)\n", pk.Name, pk.Version)
		}
		fmt.Fprintln(p.w)
	}

	if len(r.Catalogs) == 0 {
		fmt.Fprintln(p.w, "_No catalogs found._")
		return
	}
	fmt.Fprintln(p.w, "| Domain | Package | Translated | Total | Coverage | Modified | Outdated |")
	fmt.Fprintln(p.w, "|---|---|---:|---:|---:|---|---|")
	for _, rec := range r.Catalogs {
		modified := ""
		if rec.ModifiedAt != nil {
			modified = rec.ModifiedAt.Format("2006-01-02")
		}
		outdated := ""
		if rec.IsOutdated() {
			outdated = "yes"
		}
		fmt.Fprintf(p.w, "| [%s](%s) | %s | %d | %d | %.1f%% | %s | %s |\n",
			rec.Domain, rec.ReferenceURL, rec.Package, rec.Translated, rec.Total, rec.Coverage(), modified, outdated)
	}
}

var heatEmoji = map[HeatClass]string{
	HeatGreen:  "🟩",
	HeatYellow: "🟨",
	HeatOrange: "🟧",
	HeatRed:    "🟥",
	HeatGray:   "⬜",
}

// Heatmap formats the heatmap as a list of coloured squares.
func (p *MarkdownPresenter) Heatmap(r ScanResult) {
	fmt.Fprintf(p.w, "## Coverage heatmap: %s\n\n", r.Language)
	for _, rec := range r.Catalogs {
		fmt.Fprintf(p.w, "- %s `%s` %.0f%%\n", heatEmoji[Heat(rec.Coverage())], rec.Domain, rec.Coverage())
	}
	fmt.Fprintf(p.w, "\n%s\n", SummaryLine(r))
}

// Packs formats the installed language packs as a table.
func (p *MarkdownPresenter) Packs(r PacksResult) {
	fmt.Fprintln(p.w, "| Package | Language | Version |")
	fmt.Fprintln(p.w, "|---|---|---|")
	for _, pk := range r.Packs {
		fmt.Fprintf(p.w, "| %s | %s | %s |\n", pk.Name, pk.Language, pk.Version)
	}
}

// Templates formats Launchpad templates as a table.
func (p *MarkdownPresenter) Templates(r TemplatesResult) {
	fmt.Fprintf(p.w, "## Launchpad templates: %s (%s)\n\n", r.Package, r.Series)
	if len(r.Templates) == 0 {
		fmt.Fprintln(p.w, "_No templates found._")
		return
	}
	fmt.Fprintln(p.w, "| Name | Domain | Messages | Current |")
	fmt.Fprintln(p.w, "|---|---|---:|---|")
	for _, t := range r.Templates {
		current := ""
		if t.IsCurrent {
			current = "yes"
		}
		fmt.Fprintf(p.w, "| %s | %s | %d | %s |\n", t.Name, t.TranslationDomain, t.MessageCount, current)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
