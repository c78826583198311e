package metrickey_test

import (
	"fmt"

	"github.com/cwbudde/algo-labels/labels/metrickey"
)

func ExampleParse() {
	k, err := metrickey.Parse("gabor_entropy_iris_source_0.5x")
	if err != nil {
		panic(err)
	}

	fmt.Println(k.Side, k.Scale, k.PixelSize())
	fmt.Println(k.Label())

	// Output:
	// source 0.5 6
	// Entropy of source (iris) - gabor method (6px)
}
