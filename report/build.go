package report

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-labels/labels"
	"github.com/cwbudde/algo-labels/stats/summary"
)

// Row is the summary of one metric for one filter (and parameter value).
type Row struct {
	Category    labels.Category `json:"category,omitempty"`
	Filter      string          `json:"filter"`
	FilterLabel string          `json:"filter_label"`
	Param       string          `json:"param,omitempty"`
	ParamLabel  string          `json:"param_label,omitempty"`
	ParamValue  string          `json:"param_value,omitempty"`
	Metric      string          `json:"metric"`
	MetricLabel string          `json:"metric_label"`
	Stats       summary.Stats   `json:"stats"`
}

// Report is an ordered list of summary rows.
type Report struct {
	Param string `json:"param,omitempty"`
	Rows  []Row  `json:"rows"`
}

type buildConfig struct {
	metrics    []string
	groupParam string
}

// Option configures Build.
type Option func(*buildConfig)

// WithMetrics restricts the report to the given metrics, in the given order.
// Repeated ids are reported once.
// By default every metric present in the results is reported, in metric
// table order.
func WithMetrics(ids ...string) Option {
	return func(cfg *buildConfig) {
		cfg.metrics = append(cfg.metrics, ids...)
	}
}

// WithGroupParam splits each filter's rows by the value of one parameter,
// e.g. the kernel size "k".
func WithGroupParam(id string) Option {
	return func(cfg *buildConfig) { cfg.groupParam = id }
}

var errNotParameter = errors.New("report: not a parameter")

type groupKey struct {
	filter string
	value  string
}

type group struct {
	key         groupKey
	category    labels.Category
	filterLabel string
	filterRank  int
	valueRank   int
	samples     map[string][]float64
}

// Build groups, labels and summarises results. Unknown filter, metric or
// parameter identifiers fail with an error matching labels.ErrNotFound.
func Build(res *labels.Resolver, results []Result, opts ...Option) (*Report, error) {
	var cfg buildConfig

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var paramLabel string

	if cfg.groupParam != "" {
		l, err := res.MetricLabel(cfg.groupParam)
		if err != nil {
			return nil, err
		}

		if !res.IsParameter(cfg.groupParam) {
			return nil, fmt.Errorf("%w: %q", errNotParameter, cfg.groupParam)
		}

		paramLabel = l
	}

	metrics, err := selectMetrics(res, results, cfg.metrics)
	if err != nil {
		return nil, err
	}

	filterRank := make(map[string]int)
	for i, id := range res.Filters() {
		filterRank[id] = i
	}

	groups := make(map[groupKey]*group)
	valueRanks := make(map[string]map[string]int)

	for _, r := range results {
		key := groupKey{filter: r.Filter}
		if cfg.groupParam != "" {
			key.value = r.Params[cfg.groupParam]
		}

		g, ok := groups[key]
		if !ok {
			g, err = newGroup(res, key, filterRank)
			if err != nil {
				return nil, err
			}

			ranks := valueRanks[key.filter]
			if ranks == nil {
				ranks = make(map[string]int)
				valueRanks[key.filter] = ranks
			}

			g.valueRank = len(ranks)
			ranks[key.value] = g.valueRank
			groups[key] = g
		}

		for _, m := range metrics {
			v, ok := r.Metrics[m]
			if !ok {
				v = math.NaN()
			}

			g.samples[m] = append(g.samples[m], v)
		}
	}

	ordered := make([]*group, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}

	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if ra, rb := categoryRank(a), categoryRank(b); ra != rb {
			return ra < rb
		}

		if a.filterRank != b.filterRank {
			return a.filterRank < b.filterRank
		}

		return a.valueRank < b.valueRank
	})

	rep := &Report{Param: cfg.groupParam}

	for _, g := range ordered {
		for _, m := range metrics {
			label, err := res.MetricLabel(m)
			if err != nil {
				return nil, err
			}

			row := Row{
				Category:    g.category,
				Filter:      g.key.filter,
				FilterLabel: g.filterLabel,
				Metric:      m,
				MetricLabel: label,
				Stats:       summary.Calculate(g.samples[m]),
			}

			if cfg.groupParam != "" {
				row.Param = cfg.groupParam
				row.ParamLabel = paramLabel
				row.ParamValue = g.key.value
			}

			rep.Rows = append(rep.Rows, row)
		}
	}

	return rep, nil
}

func newGroup(res *labels.Resolver, key groupKey, filterRank map[string]int) (*group, error) {
	label, err := res.FilterLabel(key.filter)
	if err != nil {
		return nil, err
	}

	g := &group{
		key:         key,
		filterLabel: label,
		filterRank:  filterRank[key.filter],
		samples:     make(map[string][]float64),
	}

	if key.filter != labels.Baseline {
		g.category, err = res.FilterCategory(key.filter)
		if err != nil {
			return nil, err
		}
	}

	return g, nil
}

// categoryRank puts the baseline ahead of every category.
func categoryRank(g *group) int {
	if g.key.filter == labels.Baseline {
		return -1
	}

	return g.category.Rank()
}

// selectMetrics validates the requested metrics, or collects every
// non-parameter metric present in the results in table order.
func selectMetrics(res *labels.Resolver, results []Result, requested []string) ([]string, error) {
	if len(requested) > 0 {
		out := make([]string, 0, len(requested))
		seen := make(map[string]struct{}, len(requested))

		for _, m := range requested {
			if _, err := res.MetricLabel(m); err != nil {
				return nil, err
			}

			if _, dup := seen[m]; dup {
				continue
			}

			seen[m] = struct{}{}
			out = append(out, m)
		}

		return out, nil
	}

	seen := make(map[string]struct{})

	for _, r := range results {
		for m := range r.Metrics {
			seen[m] = struct{}{}
		}
	}

	// Validate in sorted order so the reported error is deterministic.
	names := make([]string, 0, len(seen))
	for m := range seen {
		names = append(names, m)
	}

	sort.Strings(names)

	for _, m := range names {
		if _, err := res.MetricLabel(m); err != nil {
			return nil, err
		}
	}

	var out []string

	for _, m := range res.Metrics() {
		if _, ok := seen[m]; ok && !res.IsParameter(m) {
			out = append(out, m)
		}
	}

	return out, nil
}
