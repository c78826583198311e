package labels_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-labels/labels"
)

func ExampleFilterLabel() {
	label, _ := labels.FilterLabel("median_filter")
	category, _ := labels.FilterCategory("median_filter")
	fmt.Printf("%s (%s)\n", label, category)

	// Output:
	// Median filter (Destructive)
}

func ExampleMetricLabel() {
	_, err := labels.MetricLabel("sigma_z")
	fmt.Println(errors.Is(err, labels.ErrNotFound))
	fmt.Println(err)

	// Output:
	// true
	// labels: unknown metric identifier "sigma_z" (did you mean "sigma_c", "sigma_s", "sigma"?)
}
