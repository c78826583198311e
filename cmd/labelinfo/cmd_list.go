package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-labels/labels"
)

const (
	listFilters    = "filters"
	listMetrics    = "metrics"
	listCategories = "categories"
)

func newListCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:       "list [filters|metrics|categories]",
		Short:     "List the built-in identifiers with their labels",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{listFilters, listMetrics, listCategories},
		RunE: func(cmd *cobra.Command, args []string) error {
			what := listFilters
			if len(args) == 1 {
				what = args[0]
			}

			var (
				t   *table
				err error
			)

			switch what {
			case listFilters:
				t, err = a.filterTable(category)
			case listMetrics:
				t, err = a.metricTable()
			case listCategories:
				t = a.categoryTable()
			}

			if err != nil {
				return err
			}

			return t.write(cmd.OutOrStdout(), a.outputFormat())
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list filters of this category")

	return cmd
}

func (a *app) filterTable(category string) (*table, error) {
	ids := a.resolver.Filters()

	if category != "" {
		c, err := labels.ParseCategory(category)
		if err != nil {
			return nil, err
		}

		ids = a.resolver.FiltersIn(c)
	}

	t := &table{header: []string{"ID", "Label", "Kind", "Category"}}

	for _, id := range ids {
		label, err := a.resolver.FilterLabel(id)
		if err != nil {
			return nil, err
		}

		kind, cat := "-", "-"

		if id != labels.Baseline {
			k, err := a.resolver.FilterKind(id)
			if err != nil {
				return nil, err
			}

			c, err := a.resolver.FilterCategory(id)
			if err != nil {
				return nil, err
			}

			kind, cat = string(k), string(c)
		}

		t.add(id, label, kind, cat)
	}

	return t, nil
}

func (a *app) metricTable() (*table, error) {
	t := &table{header: []string{"ID", "Label", "Type"}}

	for _, id := range a.resolver.Metrics() {
		label, err := a.resolver.MetricLabel(id)
		if err != nil {
			return nil, err
		}

		t.add(id, label, metricType(a.resolver, id))
	}

	return t, nil
}

func metricType(res *labels.Resolver, id string) string {
	if res.IsParameter(id) {
		return "parameter"
	}

	return "metric"
}

func (a *app) categoryTable() *table {
	t := &table{header: []string{"Category", "Filters"}}

	for _, c := range labels.Categories() {
		t.add(string(c), strings.Join(a.resolver.FiltersIn(c), ", "))
	}

	return t
}
