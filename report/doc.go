// Package report turns raw experiment results into labelled summary tables.
//
// A [Result] is one row of experiment output: the filter that was applied,
// its parameters, and the metric values measured on one image. [Build]
// groups results by filter (and optionally by one parameter), resolves
// display labels and categories through a [labels.Resolver], and summarises
// every metric with [summary.Calculate]. The resulting [Report] renders as an
// aligned text table, CSV, JSON or Markdown.
//
// The package does not compute metrics; it only consumes them.
package report
