package labels

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveCategoriesDangling(t *testing.T) {
	kinds := []kindEntry{
		{"median_filter", KindBlur},
		{"wavelet_filter", Kind("wavelet")},
	}

	_, err := deriveCategories(kinds, kindCategories)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"wavelet_filter"`)
	assert.Contains(t, err.Error(), `"wavelet"`)
}

func TestDeriveCategoriesDuplicate(t *testing.T) {
	kinds := []kindEntry{
		{"snow", KindNoise},
		{"snow", KindBlur},
	}

	_, err := deriveCategories(kinds, kindCategories)
	assert.True(t, errors.Is(err, errDuplicateID))
}

func TestDeriveCategoriesBuiltin(t *testing.T) {
	got, err := deriveCategories(filterKinds, kindCategories)
	require.NoError(t, err)
	assert.Len(t, got, len(filterKinds))

	for _, e := range filterKinds {
		assert.Equal(t, kindCategories[e.kind], got[e.id], e.id)
	}
}

func TestIndexEntriesRejectsEmpty(t *testing.T) {
	_, _, err := indexEntries([]entry{{"k", ""}})
	assert.Error(t, err)

	_, _, err = indexEntries([]entry{{"", "Label"}})
	assert.Error(t, err)

	_, _, err = indexEntries([]entry{{"k", "A"}, {"k", "B"}})
	assert.ErrorIs(t, err, errDuplicateID)
}

func TestNewWithOverrides(t *testing.T) {
	r, err := New(
		WithFilterLabels(map[string]string{"snow": "Snow"}),
		WithMetricLabels(map[string]string{"h": "Filter strength"}),
	)
	require.NoError(t, err)

	label, err := r.FilterLabel("snow")
	require.NoError(t, err)
	assert.Equal(t, "Snow", label)

	label, err = r.MetricLabel("h")
	require.NoError(t, err)
	assert.Equal(t, "Filter strength", label)

	// Default tables are untouched.
	label, err = FilterLabel("snow")
	require.NoError(t, err)
	assert.Equal(t, "Snow noise", label)
}

func TestNewRejectsUnknownOverride(t *testing.T) {
	_, err := New(WithFilterLabels(map[string]string{"wavelet": "Wavelet"}))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = New(WithMetricLabels(map[string]string{"k": ""}))
	assert.Error(t, err)
}

func TestPlainLabels(t *testing.T) {
	r := MustNew(WithPlainLabels())

	label, err := r.MetricLabel("h")
	require.NoError(t, err)
	assert.Equal(t, "h", label)

	label, err = r.MetricLabel("sigma_s")
	require.NoError(t, err)
	assert.Equal(t, "Spatial variance", label)
}

func TestPlainLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"$h$", "h"},
		{`$\sigma$`, "σ"},
		{"Median filter", "Median filter"},
		{`$k\_{max}$`, "k_{max}"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PlainLabel(tt.in), tt.in)
	}
}

func TestWithMaxSuggestions(t *testing.T) {
	r := MustNew(WithMaxSuggestions(0))

	_, err := r.FilterLabel("median_filtr")

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Empty(t, nf.Suggestions)

	r = MustNew(WithMaxSuggestions(1))
	_, err = r.FilterLabel("gaussian_nois")
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, []string{"gaussian_noise"}, nf.Suggestions)
}

func TestCategoryParse(t *testing.T) {
	c, err := ParseCategory(" additive ")
	require.NoError(t, err)
	assert.Equal(t, CategoryAdditive, c)

	_, err = ParseCategory("blur")
	assert.Error(t, err)

	assert.Equal(t, []Category{CategoryDestructive, CategoryAdditive, CategoryCombined}, Categories())
	assert.Equal(t, 2, CategoryCombined.Rank())
	assert.Equal(t, 3, Category("Other").Rank())
	assert.False(t, Category("Other").Valid())
}
