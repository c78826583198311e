package labels

import (
	"fmt"
	"maps"
)

// Resolver holds one immutable set of label and category tables.
type Resolver struct {
	categories   map[string]Category
	kinds        map[string]Kind
	filterLabels map[string]string
	metricLabels map[string]string
	parameters   map[string]struct{}

	kindOrder   []string
	filterOrder []string
	metricOrder []string

	maxSuggestions int
}

// New builds a Resolver from the built-in tables and the given options.
func New(opts ...Option) (*Resolver, error) {
	cfg := defaultResolverConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	categories, err := deriveCategories(filterKinds, kindCategories)
	if err != nil {
		return nil, err
	}

	filters, filterOrder, err := indexEntries(filterLabels)
	if err != nil {
		return nil, err
	}

	metrics, metricOrder, err := indexEntries(metricLabels)
	if err != nil {
		return nil, err
	}

	if err := applyOverrides(filters, cfg.filterLabels, TableFilter); err != nil {
		return nil, err
	}

	if err := applyOverrides(metrics, cfg.metricLabels, TableMetric); err != nil {
		return nil, err
	}

	if cfg.plainLabels {
		for id, label := range filters {
			filters[id] = PlainLabel(label)
		}

		for id, label := range metrics {
			metrics[id] = PlainLabel(label)
		}
	}

	kinds := make(map[string]Kind, len(filterKinds))
	kindOrder := make([]string, 0, len(filterKinds))

	for _, e := range filterKinds {
		if _, ok := filters[e.id]; !ok {
			return nil, fmt.Errorf("labels: filter %q has a kind but no label", e.id)
		}

		kinds[e.id] = e.kind
		kindOrder = append(kindOrder, e.id)
	}

	params := make(map[string]struct{}, len(parameterIDs))
	for _, id := range parameterIDs {
		params[id] = struct{}{}
	}

	return &Resolver{
		categories:     categories,
		kinds:          kinds,
		filterLabels:   filters,
		metricLabels:   metrics,
		parameters:     params,
		kindOrder:      kindOrder,
		filterOrder:    filterOrder,
		metricOrder:    metricOrder,
		maxSuggestions: cfg.maxSuggestions,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Resolver {
	r, err := New(opts...)
	if err != nil {
		panic(err.Error())
	}

	return r
}

func applyOverrides(dst, overrides map[string]string, table Table) error {
	for id, label := range overrides {
		if _, ok := dst[id]; !ok {
			return &NotFoundError{Table: table, ID: id}
		}

		if label == "" {
			return fmt.Errorf("labels: empty %s label override for %q", table, id)
		}

		dst[id] = label
	}

	return nil
}

// FilterCategory returns the category of a filter.
func (r *Resolver) FilterCategory(id string) (Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return "", r.notFound(TableCategory, id, r.kindOrder)
	}

	return c, nil
}

// FilterKind returns the coarse kind of a filter.
func (r *Resolver) FilterKind(id string) (Kind, error) {
	k, ok := r.kinds[id]
	if !ok {
		return "", r.notFound(TableCategory, id, r.kindOrder)
	}

	return k, nil
}

// FilterLabel returns the display label of a filter.
func (r *Resolver) FilterLabel(id string) (string, error) {
	l, ok := r.filterLabels[id]
	if !ok {
		return "", r.notFound(TableFilter, id, r.filterOrder)
	}

	return l, nil
}

// MetricLabel returns the display label of a metric or parameter.
func (r *Resolver) MetricLabel(id string) (string, error) {
	l, ok := r.metricLabels[id]
	if !ok {
		return "", r.notFound(TableMetric, id, r.metricOrder)
	}

	return l, nil
}

// IsParameter reports whether id names a filter parameter rather than a
// measured metric.
func (r *Resolver) IsParameter(id string) bool {
	_, ok := r.parameters[id]
	return ok
}

// Filters returns all filter identifiers in presentation order, baseline
// first.
func (r *Resolver) Filters() []string {
	return append([]string(nil), r.filterOrder...)
}

// FiltersIn returns the filters of one category in presentation order.
func (r *Resolver) FiltersIn(c Category) []string {
	var out []string

	for _, id := range r.filterOrder {
		if r.categories[id] == c {
			out = append(out, id)
		}
	}

	return out
}

// Metrics returns all metric and parameter identifiers in table order.
func (r *Resolver) Metrics() []string {
	return append([]string(nil), r.metricOrder...)
}

// CategoryTable returns a copy of the filter → category mapping.
func (r *Resolver) CategoryTable() map[string]Category {
	return maps.Clone(r.categories)
}

// FilterLabelTable returns a copy of the filter → label mapping.
func (r *Resolver) FilterLabelTable() map[string]string {
	return maps.Clone(r.filterLabels)
}

// MetricLabelTable returns a copy of the metric → label mapping.
func (r *Resolver) MetricLabelTable() map[string]string {
	return maps.Clone(r.metricLabels)
}

func (r *Resolver) notFound(table Table, id string, candidates []string) error {
	return &NotFoundError{
		Table:       table,
		ID:          id,
		Suggestions: suggest(id, candidates, r.maxSuggestions),
	}
}
