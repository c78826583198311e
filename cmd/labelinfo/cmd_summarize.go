package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-labels/report"
)

func newSummarizeCmd(a *app) *cobra.Command {
	var (
		metrics []string
		groupBy string
	)

	cmd := &cobra.Command{
		Use:   "summarize <results.csv|results.json>",
		Short: "Summarise experiment results into a labelled table",
		Long: `Reads experiment results (CSV with a "filter" column, or a JSON array of
{"filter", "params", "metrics"} objects), groups them by filter and
optionally by one parameter, and prints per-metric summary statistics with
display labels and filter categories. Use "-" to read CSV from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.readResults(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			a.logger.Debug("Results loaded", zap.String("path", args[0]), zap.Int("rows", len(results)))

			var opts []report.Option
			if len(metrics) > 0 {
				opts = append(opts, report.WithMetrics(metrics...))
			}

			if groupBy != "" {
				opts = append(opts, report.WithGroupParam(groupBy))
			}

			rep, err := report.Build(a.resolver, results, opts...)
			if err != nil {
				return err
			}

			return rep.Write(cmd.OutOrStdout(), a.outputFormat())
		},
	}

	cmd.Flags().StringSliceVarP(&metrics, "metric", "m", nil, "metrics to report (default: all present)")
	cmd.Flags().StringVarP(&groupBy, "group-by", "g", "", "parameter to split filter rows by, e.g. k")

	return cmd
}

func (a *app) readResults(stdin io.Reader, path string) ([]report.Result, error) {
	if path == "-" {
		return report.ReadCSV(stdin, a.resolver)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return report.ReadJSON(f)
	}

	return report.ReadCSV(f, a.resolver)
}
