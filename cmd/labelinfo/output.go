package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-labels/report"
)

// table is a small header + rows result printed by list and lookup.
type table struct {
	header []string
	rows   [][]string
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) write(w io.Writer, format report.Format) error {
	switch format {
	case report.FormatCSV:
		return t.writeCSV(w)
	case report.FormatJSON:
		return t.writeJSON(w)
	case report.FormatMarkdown:
		return t.writeMarkdown(w)
	default:
		return t.writeText(w)
	}
}

func (t *table) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	rule := make([]string, len(t.header))
	for i, h := range t.header {
		rule[i] = strings.Repeat("-", len(h))
	}

	for _, cells := range append([][]string{t.header, rule}, t.rows...) {
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

func (t *table) writeCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	keys := make([]string, len(t.header))
	for i, h := range t.header {
		keys[i] = jsonKey(h)
	}

	if err := cw.Write(keys); err != nil {
		return err
	}

	if err := cw.WriteAll(t.rows); err != nil {
		return err
	}

	return cw.Error()
}

func (t *table) writeMarkdown(w io.Writer) error {
	var b strings.Builder

	rule := make([]string, len(t.header))
	for i := range rule {
		rule[i] = "---"
	}

	for _, cells := range append([][]string{t.header, rule}, t.rows...) {
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func (t *table) writeJSON(w io.Writer) error {
	out := make([]map[string]string, 0, len(t.rows))

	for _, cells := range t.rows {
		obj := make(map[string]string, len(cells))
		for i, c := range cells {
			if c != "" && c != "-" {
				obj[jsonKey(t.header[i])] = c
			}
		}

		out = append(out, obj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

func jsonKey(header string) string {
	return strings.ReplaceAll(strings.ToLower(header), " ", "_")
}
