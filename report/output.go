package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Format selects a report rendering.
type Format string

// Output formats.
const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formats returns all supported output formats.
func Formats() []Format {
	return []Format{FormatTable, FormatCSV, FormatJSON, FormatMarkdown}
}

// ParseFormat parses an output format name case-insensitively. "md" is
// accepted for markdown.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "md" {
		return FormatMarkdown, nil
	}

	for _, f := range Formats() {
		if name == string(f) {
			return f, nil
		}
	}

	return "", fmt.Errorf("report: unknown format %q", s)
}

// Write renders the report in the given format.
func (r *Report) Write(w io.Writer, format Format) error {
	switch format {
	case FormatTable:
		return r.WriteTable(w)
	case FormatCSV:
		return r.WriteCSV(w)
	case FormatJSON:
		return r.WriteJSON(w)
	case FormatMarkdown:
		return r.WriteMarkdown(w)
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}
}

func (r *Report) header() []string {
	cols := []string{"Category", "Filter"}
	if r.Param != "" {
		cols = append(cols, r.paramHeader())
	}

	return append(cols, "Metric", "N", "Mean", "Std", "Median", "Min", "Max")
}

func (r *Report) paramHeader() string {
	if len(r.Rows) > 0 && r.Rows[0].ParamLabel != "" {
		return r.Rows[0].ParamLabel
	}

	return r.Param
}

// cells returns the display cells of one row, matching header.
func (r *Report) cells(row Row) []string {
	category := string(row.Category)
	if category == "" {
		category = "-"
	}

	cols := []string{category, row.FilterLabel}
	if r.Param != "" {
		cols = append(cols, row.ParamValue)
	}

	cols = append(cols, row.MetricLabel, strconv.Itoa(row.Stats.Count))

	if row.Stats.Count == 0 {
		return append(cols, "-", "-", "-", "-", "-")
	}

	return append(cols,
		formatStat(row.Stats.Mean),
		formatStat(row.Stats.Std),
		formatStat(row.Stats.Median),
		formatStat(row.Stats.Min),
		formatStat(row.Stats.Max),
	)
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// WriteTable renders the report as an aligned text table.
func (r *Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := r.header()
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	rule := make([]string, len(header))
	for i, h := range header {
		rule[i] = strings.Repeat("-", len([]rune(h)))
	}

	if _, err := fmt.Fprintln(tw, strings.Join(rule, "\t")); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	for _, row := range r.Rows {
		if _, err := fmt.Fprintln(tw, strings.Join(r.cells(row), "\t")); err != nil {
			return fmt.Errorf("report: write row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report: flush: %w", err)
	}

	return nil
}

// WriteMarkdown renders the report as a Markdown pipe table.
func (r *Report) WriteMarkdown(w io.Writer) error {
	var b strings.Builder

	header := r.header()
	writeMarkdownRow(&b, header)

	rule := make([]string, len(header))
	for i := range rule {
		rule[i] = "---"
	}

	writeMarkdownRow(&b, rule)

	for _, row := range r.Rows {
		writeMarkdownRow(&b, r.cells(row))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("report: write markdown: %w", err)
	}

	return nil
}

func writeMarkdownRow(b *strings.Builder, cells []string) {
	b.WriteString("|")

	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(strings.ReplaceAll(c, "|", `\|`))
		b.WriteString(" |")
	}

	b.WriteString("\n")
}

// WriteCSV renders the report as CSV with identifiers, labels and raw
// statistics.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"category", "filter", "filter_label"}
	if r.Param != "" {
		header = append(header, "param", "param_label", "param_value")
	}

	header = append(header, "metric", "metric_label", "count", "missing", "mean", "std", "median", "min", "max", "rms")

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("report: write csv header: %w", err)
	}

	for _, row := range r.Rows {
		rec := []string{string(row.Category), row.Filter, row.FilterLabel}
		if r.Param != "" {
			rec = append(rec, row.Param, row.ParamLabel, row.ParamValue)
		}

		s := row.Stats
		rec = append(rec,
			row.Metric, row.MetricLabel,
			strconv.Itoa(s.Count), strconv.Itoa(s.Missing),
			csvFloat(s.Mean), csvFloat(s.Std), csvFloat(s.Median),
			csvFloat(s.Min), csvFloat(s.Max), csvFloat(s.RMS),
		)

		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("report: write csv row: %w", err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flush csv: %w", err)
	}

	return nil
}

func csvFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteJSON renders the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}

	return nil
}
