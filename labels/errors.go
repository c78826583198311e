package labels

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// ErrNotFound is matched by every lookup failure of an unknown identifier.
var ErrNotFound = errors.New("identifier not found")

// Table names the mapping a lookup was made against.
type Table string

// Lookup tables.
const (
	TableCategory Table = "category"
	TableFilter   Table = "filter"
	TableMetric   Table = "metric"
)

// NotFoundError reports an identifier missing from a table, together with
// the closest known identifiers.
type NotFoundError struct {
	Table       Table
	ID          string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "labels: unknown %s identifier %q", e.Table, e.ID)

	if len(e.Suggestions) > 0 {
		b.WriteString(" (did you mean ")

		for i, s := range e.Suggestions {
			if i > 0 {
				b.WriteString(", ")
			}

			fmt.Fprintf(&b, "%q", s)
		}

		b.WriteString("?)")
	}

	return b.String()
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// suggest returns up to limit identifiers from candidates that are close to
// id, nearest first. Candidates further away than a third of the longer
// string (minimum 2 edits) are not suggested.
func suggest(id string, candidates []string, limit int) []string {
	if limit <= 0 || id == "" {
		return nil
	}

	type scored struct {
		id   string
		dist int
	}

	query := strings.ToLower(id)

	var hits []scored

	for _, c := range candidates {
		d := levenshtein.Distance(query, c, nil)

		maxLen := len(query)
		if len(c) > maxLen {
			maxLen = len(c)
		}

		threshold := maxLen / 3
		if threshold < 2 {
			threshold = 2
		}

		if d <= threshold {
			hits = append(hits, scored{id: c, dist: d})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}

		return hits[i].id < hits[j].id
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.id
	}

	return out
}
