package metrickey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-labels/labels"
	"github.com/cwbudde/algo-labels/labels/metrickey"
)

func TestParse(t *testing.T) {
	tests := []struct {
		key  string
		want metrickey.Key
	}{
		{
			key: "gradient_entropy_iris_source",
			want: metrickey.Key{
				Method: metrickey.MethodGradient, Quantity: metrickey.QuantityEntropy,
				Region: metrickey.RegionIris, Side: metrickey.SideSource,
			},
		},
		{
			key: "gradient_mutual_information_image",
			want: metrickey.Key{
				Method: metrickey.MethodGradient, Quantity: metrickey.QuantityMutualInformation,
				Region: metrickey.RegionImage,
			},
		},
		{
			key: "gabor_entropy_image_filtered_0.0625x",
			want: metrickey.Key{
				Method: metrickey.MethodGabor, Quantity: metrickey.QuantityEntropy,
				Region: metrickey.RegionImage, Side: metrickey.SideFiltered, Scale: 0.0625,
			},
		},
		{
			key: "gabor_mutual_information_iris_1.0x",
			want: metrickey.Key{
				Method: metrickey.MethodGabor, Quantity: metrickey.QuantityMutualInformation,
				Region: metrickey.RegionIris, Scale: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := metrickey.Parse(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.key, got.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"",
		"iris_code_similarity",
		"gabor_entropy_iris_source",
		"gabor_entropy_iris_source_x",
		"gabor_entropy_iris_source_-1x",
		"gabor_entropy_iris_source_abcx",
		"gabor_entropy_iris_source_NaNx",
		"gabor_entropy_iris_source_Infx",
		"gabor_entropy_iris_source_7x",
		"gabor_entropy_iris_source_0.50x",
		"gabor_entropy_iris_source_1x",
		"gradient_entropy_iris",
		"gradient_entropy_pupil_source",
		"gradient_entropy_iris_source_0.5x",
		"gradient_variance_iris_source",
		"gabor_mutual_information_iris_source_0.5x",
	}

	for _, key := range bad {
		_, err := metrickey.Parse(key)
		assert.ErrorIs(t, err, metrickey.ErrSyntax, key)
	}
}

func TestLabelsMatchMetricTable(t *testing.T) {
	keys := metrickey.Keys()
	require.Len(t, keys, 36)

	ids := labels.Metrics()
	for i, k := range keys {
		assert.Equal(t, ids[i], k.String(), "table position %d", i)

		want, err := labels.MetricLabel(k.String())
		require.NoError(t, err, k.String())
		assert.Equal(t, want, k.Label(), k.String())

		parsed, err := metrickey.Parse(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
}

func TestNonInformationMetricsDoNotParse(t *testing.T) {
	for _, id := range labels.Metrics()[36:] {
		_, err := metrickey.Parse(id)
		assert.Error(t, err, id)
	}
}

func TestPixelSize(t *testing.T) {
	assert.InDelta(t, 48.0, metrickey.MustParse("gabor_entropy_iris_source_0.0625x").PixelSize(), 1e-12)
	assert.InDelta(t, 3.0, metrickey.MustParse("gabor_entropy_iris_source_1.0x").PixelSize(), 1e-12)
	assert.Zero(t, metrickey.MustParse("gradient_entropy_iris_source").PixelSize())
}

func TestScalesCopy(t *testing.T) {
	s := metrickey.Scales()
	s[0] = 42
	assert.Equal(t, []float64{1.0, 0.5, 0.25, 0.125, 0.0625}, metrickey.Scales())
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { metrickey.MustParse("nope") })
}
