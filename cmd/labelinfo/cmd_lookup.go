package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNoMatches = errors.New("no matching identifiers")

func newLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <id>...",
		Short: "Look up labels and categories of identifiers",
		Long: `Looks up each identifier in the filter table first and in the metric
table second. Unknown identifiers are reported as warnings with the
closest known identifiers; the command fails if none resolves.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &table{header: []string{"ID", "Table", "Label", "Category"}}

			for _, id := range args {
				id = strings.TrimSpace(id)

				cells, err := a.describe(id)
				if err != nil {
					a.logger.Debug("Lookup failed", zap.String("id", id), zap.Error(err))
					warnf(cmd.ErrOrStderr(), "%v", err)

					continue
				}

				t.add(cells...)
			}

			if len(t.rows) == 0 {
				return errNoMatches
			}

			return t.write(cmd.OutOrStdout(), a.outputFormat())
		},
	}
}

// describe resolves id against the filter table, then the metric table.
func (a *app) describe(id string) ([]string, error) {
	if label, err := a.resolver.FilterLabel(id); err == nil {
		category := "-"
		if c, err := a.resolver.FilterCategory(id); err == nil {
			category = string(c)
		}

		return []string{id, "filter", label, category}, nil
	}

	label, err := a.resolver.MetricLabel(id)
	if err != nil {
		return nil, err
	}

	return []string{id, metricType(a.resolver, id), label, "-"}, nil
}
