// Command labelinfo prints display labels and categories of the iris filter
// experiment identifiers, summarises experiment results, and serves the
// label tables over HTTP.
//
// Usage:
//
//	labelinfo [flags] <command>
//
// Examples:
//
//	labelinfo list filters
//	labelinfo list metrics --format markdown
//	labelinfo lookup median_filter sigma_s
//	labelinfo summarize results.csv --metric iris_code_similarity --group-by k
//	labelinfo serve --listen :8080
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-labels/internal/config"
	"github.com/cwbudde/algo-labels/labels"
	"github.com/cwbudde/algo-labels/report"
)

type app struct {
	configPath string
	verbose    bool
	format     string

	cfg      config.Config
	resolver *labels.Resolver
	logger   *zap.Logger
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "labelinfo",
		Short: "Display labels and categories of iris filter experiment identifiers",
		Long: `labelinfo translates filter, metric and parameter identifiers of the
iris filter experiments into display labels and filter categories.

It can list the built-in tables, look up single identifiers, summarise
experiment result files into labelled tables, and serve the tables as a
JSON API.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "", "output format: table, csv, json or markdown")

	root.AddCommand(
		newListCmd(a),
		newLookupCmd(a),
		newSummarizeCmd(a),
		newServeCmd(a),
	)

	return root
}

// setup loads configuration, logger and resolver before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.logger == nil {
		zcfg := zap.NewProductionConfig()
		if a.verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		logger, err := zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		a.logger = logger
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if a.format == "" {
		a.format = cfg.Format
	}

	if _, err := report.ParseFormat(a.format); err != nil {
		return err
	}

	res, err := cfg.Resolver()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.resolver = res

	a.logger.Debug("Configuration loaded",
		zap.String("config", a.configPath),
		zap.String("format", a.format),
		zap.String("command", cmd.Name()))

	return nil
}

func (a *app) outputFormat() report.Format {
	f, err := report.ParseFormat(a.format)
	if err != nil {
		return report.FormatTable
	}

	return f
}

func warnf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "warning: "+format+"\n", args...)
}
