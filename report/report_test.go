package report

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-labels/internal/testutil"
	"github.com/cwbudde/algo-labels/labels"
)

func sampleResults(t *testing.T) []Result {
	t.Helper()

	in := testutil.ResultsCSV(
		[]string{"snow", "median_filter", labels.Baseline, "super_filter"},
		[]string{"iris_code_similarity", "gaze_relative_error"},
		4,
	)

	results, err := ReadCSV(strings.NewReader(in), labels.Default())
	require.NoError(t, err)

	return results
}

func TestReadCSV(t *testing.T) {
	results := sampleResults(t)
	require.Len(t, results, 16)

	first := results[0]
	assert.Equal(t, "snow", first.Filter)
	assert.Equal(t, map[string]string{"k": "3"}, first.Params)
	assert.Equal(t, map[string]float64{"iris_code_similarity": 0, "gaze_relative_error": 1}, first.Metrics)
}

func TestReadCSVMissingValues(t *testing.T) {
	in := "filter,iris_code_similarity,density\nsnow,,0.1\nsnow,NaN,0.2\nsnow,0.5,0.3\n"

	results, err := ReadCSV(strings.NewReader(in), labels.Default())
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, math.IsNaN(results[0].Metrics["iris_code_similarity"]))
	assert.True(t, math.IsNaN(results[1].Metrics["iris_code_similarity"]))
	assert.Equal(t, 0.5, results[2].Metrics["iris_code_similarity"])
	assert.Equal(t, "0.2", results[1].Params["density"])
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""), labels.Default())
	assert.ErrorIs(t, err, errMissingFilterColumn)

	_, err = ReadCSV(strings.NewReader("k,iris_code_similarity\n3,0.5\n"), labels.Default())
	assert.ErrorIs(t, err, errMissingFilterColumn)

	_, err = ReadCSV(strings.NewReader("filter,iris_code_similarity\nsnow,abc\n"), labels.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = ReadCSV(strings.NewReader("filter,iris_code_similarity,iris_code_similarity\nsnow,1,2\n"), labels.Default())
	assert.ErrorIs(t, err, errDuplicateColumn)

	for _, cell := range []string{"inf", "-Inf", "+infinity"} {
		in := "filter,iris_code_similarity\nsnow,1\nsnow," + cell + "\n"

		_, err = ReadCSV(strings.NewReader(in), labels.Default())
		require.ErrorIs(t, err, errNotFinite, cell)
		assert.Contains(t, err.Error(), "line 3", cell)
	}
}

func TestReadJSON(t *testing.T) {
	in := `[
		{"filter": "gaussian_filter", "params": {"sigma": 1.5, "k": "5"}, "metrics": {"iris_code_similarity": 0.9}},
		{"filter": "gaussian_filter", "params": {"sigma": 2}, "metrics": {"iris_code_similarity": null}}
	]`

	results, err := ReadJSON(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, map[string]string{"sigma": "1.5", "k": "5"}, results[0].Params)
	assert.Equal(t, 0.9, results[0].Metrics["iris_code_similarity"])
	assert.Equal(t, "2", results[1].Params["sigma"])
	assert.True(t, math.IsNaN(results[1].Metrics["iris_code_similarity"]))

	_, err = ReadJSON(strings.NewReader(`[{"metrics": {}}]`))
	assert.ErrorIs(t, err, errMissingFilterColumn)

	_, err = ReadJSON(strings.NewReader(`{`))
	assert.Error(t, err)
}

func TestBuildOrdering(t *testing.T) {
	rep, err := Build(labels.Default(), sampleResults(t))
	require.NoError(t, err)
	require.Len(t, rep.Rows, 8)

	type key struct {
		Filter, Metric string
		Category       labels.Category
	}

	var got []key
	for _, row := range rep.Rows {
		got = append(got, key{row.Filter, row.Metric, row.Category})
	}

	want := []key{
		{labels.Baseline, "iris_code_similarity", ""},
		{labels.Baseline, "gaze_relative_error", ""},
		{"median_filter", "iris_code_similarity", labels.CategoryDestructive},
		{"median_filter", "gaze_relative_error", labels.CategoryDestructive},
		{"snow", "iris_code_similarity", labels.CategoryAdditive},
		{"snow", "gaze_relative_error", labels.CategoryAdditive},
		{"super_filter", "iris_code_similarity", labels.CategoryCombined},
		{"super_filter", "gaze_relative_error", labels.CategoryCombined},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("row order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildStatistics(t *testing.T) {
	rep, err := Build(labels.Default(), sampleResults(t), WithMetrics("gaze_relative_error"))
	require.NoError(t, err)
	require.Len(t, rep.Rows, 4)

	// median_filter is the second filter written: values 10+1+n for n in 0..3.
	row := rep.Rows[1]
	assert.Equal(t, "median_filter", row.Filter)
	assert.Equal(t, "Median filter", row.FilterLabel)
	assert.Equal(t, "Gaze error relative", row.MetricLabel)
	assert.Equal(t, 4, row.Stats.Count)
	testutil.RequireNearlyEqual(t, row.Stats.Mean, 12.5, 1e-12, "Mean")
	assert.Equal(t, 11.0, row.Stats.Min)
	assert.Equal(t, 14.0, row.Stats.Max)
}

func TestBuildGroupParam(t *testing.T) {
	rep, err := Build(labels.Default(), sampleResults(t),
		WithMetrics("iris_code_similarity"), WithGroupParam("k"))
	require.NoError(t, err)
	require.Len(t, rep.Rows, 8)

	assert.Equal(t, "k", rep.Param)

	first, second := rep.Rows[0], rep.Rows[1]
	assert.Equal(t, labels.Baseline, first.Filter)
	assert.Equal(t, "3", first.ParamValue)
	assert.Equal(t, "5", second.ParamValue)
	assert.Equal(t, "Kernel size", first.ParamLabel)
	assert.Equal(t, 2, first.Stats.Count)
}

func TestBuildRepeatedMetric(t *testing.T) {
	results := []Result{
		{Filter: "snow", Metrics: map[string]float64{"iris_code_similarity": 0.5}},
		{Filter: "snow", Metrics: map[string]float64{"iris_code_similarity": 0.7}},
	}

	rep, err := Build(labels.Default(), results,
		WithMetrics("iris_code_similarity", "iris_code_similarity"))
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, 2, rep.Rows[0].Stats.Count)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteJSON(&buf))
}

func TestBuildMissingMetricCountsAsMissing(t *testing.T) {
	results := []Result{
		{Filter: "snow", Metrics: map[string]float64{"iris_code_similarity": 0.5}},
		{Filter: "snow", Metrics: map[string]float64{"gaze_relative_error": 2}},
	}

	rep, err := Build(labels.Default(), results)
	require.NoError(t, err)
	require.Len(t, rep.Rows, 2)

	for _, row := range rep.Rows {
		assert.Equal(t, 1, row.Stats.Count, row.Metric)
		assert.Equal(t, 1, row.Stats.Missing, row.Metric)
	}
}

func TestBuildUnknownIdentifiers(t *testing.T) {
	_, err := Build(labels.Default(), []Result{{Filter: "wavelet", Metrics: map[string]float64{"k": 1}}})
	assert.ErrorIs(t, err, labels.ErrNotFound)

	_, err = Build(labels.Default(), []Result{{Filter: "snow", Metrics: map[string]float64{"entropy": 1}}})
	assert.ErrorIs(t, err, labels.ErrNotFound)

	_, err = Build(labels.Default(), nil, WithMetrics("entropy"))
	assert.ErrorIs(t, err, labels.ErrNotFound)

	_, err = Build(labels.Default(), nil, WithGroupParam("kk"))
	assert.ErrorIs(t, err, labels.ErrNotFound)

	_, err = Build(labels.Default(), nil, WithGroupParam("iris_code_similarity"))
	assert.ErrorIs(t, err, errNotParameter)
}

func TestBuildEmpty(t *testing.T) {
	rep, err := Build(labels.Default(), nil)
	require.NoError(t, err)
	assert.Empty(t, rep.Rows)
}

func TestWriteFormats(t *testing.T) {
	rep, err := Build(labels.Default(), sampleResults(t), WithMetrics("iris_code_similarity"))
	require.NoError(t, err)

	var table bytes.Buffer
	require.NoError(t, rep.Write(&table, FormatTable))

	lines := strings.Split(strings.TrimSpace(table.String()), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "Category"))
	assert.Contains(t, lines[2], "Baseline")
	assert.Contains(t, lines[3], "Destructive")
	assert.Contains(t, lines[3], "Median filter")
	assert.Contains(t, lines[3], "11.5000")

	var md bytes.Buffer
	require.NoError(t, rep.Write(&md, FormatMarkdown))
	assert.Contains(t, md.String(), "| Destructive | Median filter | Iris code similarity | 4 | 11.5000 |")

	var csvOut bytes.Buffer
	require.NoError(t, rep.Write(&csvOut, FormatCSV))
	csvLines := strings.Split(strings.TrimSpace(csvOut.String()), "\n")
	require.Len(t, csvLines, 5)
	assert.Equal(t, "category,filter,filter_label,metric,metric_label,count,missing,mean,std,median,min,max,rms", csvLines[0])
	assert.True(t, strings.HasPrefix(csvLines[2], "Destructive,median_filter,Median filter,iris_code_similarity,"))

	var js bytes.Buffer
	require.NoError(t, rep.Write(&js, FormatJSON))

	var decoded Report
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, rep.Rows, decoded.Rows)

	assert.Error(t, rep.Write(&js, Format("xml")))
}

func TestWriteTableEmptyStats(t *testing.T) {
	rep := &Report{Rows: []Row{{Filter: "snow", FilterLabel: "Snow noise", Metric: "k", MetricLabel: "Kernel size"}}}

	var out bytes.Buffer
	require.NoError(t, rep.WriteTable(&out))
	assert.Contains(t, out.String(), "-  ")
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseFormat(strings.ToUpper(string(f)))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseFormat("md")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, got)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
