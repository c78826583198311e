package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-labels/labels"
)

// FilterColumn is the result column naming the applied filter.
const FilterColumn = "filter"

// Result is one row of experiment output. A NaN metric value marks a
// missing measurement.
type Result struct {
	Filter  string             `json:"filter"`
	Params  map[string]string  `json:"params,omitempty"`
	Metrics map[string]float64 `json:"metrics"`
}

var (
	errMissingFilterColumn = errors.New("report: missing filter column")
	errDuplicateColumn     = errors.New("report: duplicate column")
	errNotFinite           = errors.New("value is not finite")
)

// ReadCSV reads results from CSV with a header row. The "filter" column is
// required. Columns naming a parameter (per res.IsParameter) become
// parameters; every other named column is parsed as a metric value, with
// empty cells and "nan" read as missing. Infinite values and repeated column
// names are rejected. Unnamed columns, such as a leading index column, are
// ignored.
func ReadCSV(r io.Reader, res *labels.Resolver) ([]Result, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errMissingFilterColumn
		}

		return nil, fmt.Errorf("report: read header: %w", err)
	}

	filterCol := -1
	columns := make(map[string]struct{}, len(header))

	for i, name := range header {
		name = strings.TrimSpace(name)
		header[i] = name

		if name == "" {
			continue
		}

		if _, dup := columns[name]; dup {
			return nil, fmt.Errorf("%w: %q", errDuplicateColumn, name)
		}

		columns[name] = struct{}{}

		if name == FilterColumn {
			filterCol = i
		}
	}

	if filterCol < 0 {
		return nil, errMissingFilterColumn
	}

	var results []Result

	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("report: read line %d: %w", line, err)
		}

		result := Result{
			Filter:  strings.TrimSpace(record[filterCol]),
			Metrics: make(map[string]float64),
		}

		for i, name := range header {
			if i == filterCol || name == "" {
				continue
			}

			cell := strings.TrimSpace(record[i])

			if res.IsParameter(name) {
				if result.Params == nil {
					result.Params = make(map[string]string)
				}

				result.Params[name] = cell

				continue
			}

			v, err := parseValue(cell)
			if err != nil {
				return nil, fmt.Errorf("report: line %d column %q: %w", line, name, err)
			}

			result.Metrics[name] = v
		}

		results = append(results, result)
	}

	return results, nil
}

func parseValue(cell string) (float64, error) {
	if cell == "" || strings.EqualFold(cell, "nan") {
		return math.NaN(), nil
	}

	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, err
	}

	if math.IsInf(v, 0) {
		return 0, errNotFinite
	}

	return v, nil
}

type jsonResult struct {
	Filter  string              `json:"filter"`
	Params  map[string]any      `json:"params"`
	Metrics map[string]*float64 `json:"metrics"`
}

// ReadJSON reads results from a JSON array of objects with "filter",
// "params" and "metrics" fields. Parameter values may be strings or numbers;
// a null metric value marks a missing measurement.
func ReadJSON(r io.Reader) ([]Result, error) {
	var raw []jsonResult
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("report: decode results: %w", err)
	}

	results := make([]Result, len(raw))

	for i, jr := range raw {
		if jr.Filter == "" {
			return nil, fmt.Errorf("report: result %d: %w", i, errMissingFilterColumn)
		}

		result := Result{Filter: jr.Filter, Metrics: make(map[string]float64, len(jr.Metrics))}

		if len(jr.Params) > 0 {
			result.Params = make(map[string]string, len(jr.Params))
			for k, v := range jr.Params {
				result.Params[k] = formatParam(v)
			}
		}

		for k, v := range jr.Metrics {
			if v == nil {
				result.Metrics[k] = math.NaN()
				continue
			}

			result.Metrics[k] = *v
		}

		results[i] = result
	}

	return results, nil
}

func formatParam(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
