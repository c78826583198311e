package labels

import (
	"errors"
	"fmt"
)

// Baseline is the identifier of the unfiltered reference run. It has a
// display label but no kind or category.
const Baseline = "baseline"

type entry struct {
	id    string
	label string
}

type kindEntry struct {
	id   string
	kind Kind
}

var errDuplicateID = errors.New("duplicate identifier")

var kindCategories = map[Kind]Category{
	KindBlur:  CategoryDestructive,
	KindNoise: CategoryAdditive,
	KindCombo: CategoryCombined,
}

var filterKinds = []kindEntry{
	{"bilateral_filter", KindBlur},
	{"gaussian_filter", KindBlur},
	{"mean_filter", KindBlur},
	{"median_filter", KindBlur},
	{"non_local_means", KindBlur},
	{"uniform_noise", KindNoise},
	{"gaussian_noise", KindNoise},
	{"cauchy_noise", KindNoise},
	{"laplacian_noise", KindNoise},
	{"snow", KindNoise},
	{"salt_and_pepper", KindNoise},
	{"super_filter", KindCombo},
	{"super_filter_reverse", KindCombo},
}

var filterLabels = []entry{
	{Baseline, "Baseline"},
	{"bilateral_filter", "Bilateral filter"},
	{"gaussian_filter", "Gaussian filter"},
	{"mean_filter", "Mean filter"},
	{"median_filter", "Median filter"},
	{"non_local_means", "Non-local means"},
	{"uniform_noise", "Uniform noise"},
	{"gaussian_noise", "Gaussian noise"},
	{"cauchy_noise", "Cauchy noise"},
	{"laplacian_noise", "Laplacian noise"},
	{"snow", "Snow noise"},
	{"salt_and_pepper", "Salt-and-pepper noise"},
	{"super_filter", "Comb"},
	{"super_filter_reverse", "Comb Reverse"},
}

//nolint:lll
var metricLabels = []entry{
	{"gradient_entropy_iris_source", "Entropy of source (iris) - gradient method"},
	{"gradient_entropy_iris_filtered", "Entropy of result (iris) - gradient method"},
	{"gradient_mutual_information_iris", "Mutual information (iris) - gradient method"},
	{"gabor_entropy_iris_source_1.0x", "Entropy of source (iris) - gabor method (3px)"},
	{"gabor_entropy_iris_source_0.5x", "Entropy of source (iris) - gabor method (6px)"},
	{"gabor_entropy_iris_source_0.25x", "Entropy of source (iris) - gabor method (12px)"},
	{"gabor_entropy_iris_source_0.125x", "Entropy of source (iris) - gabor method (24px)"},
	{"gabor_entropy_iris_source_0.0625x", "Entropy of source (iris) - gabor method (48px)"},
	{"gabor_entropy_iris_filtered_1.0x", "Entropy of result (iris) - gabor method (3px)"},
	{"gabor_entropy_iris_filtered_0.5x", "Entropy of result (iris) - gabor method (6px)"},
	{"gabor_entropy_iris_filtered_0.25x", "Entropy of result (iris) - gabor method (12px)"},
	{"gabor_entropy_iris_filtered_0.125x", "Entropy of result (iris) - gabor method (24px)"},
	{"gabor_entropy_iris_filtered_0.0625x", "Entropy of result (iris) - gabor method (48px)"},
	{"gabor_mutual_information_iris_1.0x", "Mutual information (iris) - gabor method (3px)"},
	{"gabor_mutual_information_iris_0.5x", "Mutual information (iris) - gabor method (6px)"},
	{"gabor_mutual_information_iris_0.25x", "Mutual information (iris) - gabor method (12px)"},
	{"gabor_mutual_information_iris_0.125x", "Mutual information (iris) - gabor method (24px)"},
	{"gabor_mutual_information_iris_0.0625x", "Mutual information (iris) - gabor method (48px)"},
	{"gradient_entropy_image_source", "Entropy of source (image) - gradient method"},
	{"gradient_entropy_image_filtered", "Entropy of result (image) - gradient method"},
	{"gradient_mutual_information_image", "Mutual information (image) - gradient method"},
	{"gabor_entropy_image_source_1.0x", "Entropy of source (image) - gabor method (3px)"},
	{"gabor_entropy_image_source_0.5x", "Entropy of source (image) - gabor method (6px)"},
	{"gabor_entropy_image_source_0.25x", "Entropy of source (image) - gabor method (12px)"},
	{"gabor_entropy_image_source_0.125x", "Entropy of source (image) - gabor method (24px)"},
	{"gabor_entropy_image_source_0.0625x", "Entropy of source (image) - gabor method (48px)"},
	{"gabor_entropy_image_filtered_1.0x", "Entropy of result (image) - gabor method (3px)"},
	{"gabor_entropy_image_filtered_0.5x", "Entropy of result (image) - gabor method (6px)"},
	{"gabor_entropy_image_filtered_0.25x", "Entropy of result (image) - gabor method (12px)"},
	{"gabor_entropy_image_filtered_0.125x", "Entropy of result (image) - gabor method (24px)"},
	{"gabor_entropy_image_filtered_0.0625x", "Entropy of result (image) - gabor method (48px)"},
	{"gabor_mutual_information_image_1.0x", "Mutual information (image) - gabor method (3px)"},
	{"gabor_mutual_information_image_0.5x", "Mutual information (image) - gabor method (6px)"},
	{"gabor_mutual_information_image_0.25x", "Mutual information (image) - gabor method (12px)"},
	{"gabor_mutual_information_image_0.125x", "Mutual information (image) - gabor method (24px)"},
	{"gabor_mutual_information_image_0.0625x", "Mutual information (image) - gabor method (48px)"},
	{"iris_code_similarity", "Iris code similarity"},
	{"image_normalized_similarity", "Image similarity"},
	{"gaze_angle_error_source", "Gaze error source"},
	{"gaze_angle_error_filtered", "Gaze error result"},
	{"gaze_relative_error", "Gaze error relative"},
	{"pupil_distance_else_pixel_error_source", "Pupil pixel distance error of source - ELSE method"},
	{"pupil_distance_else_pixel_error_filtered", "Pupil pixel distance error of result - ELSE method"},
	{"pupil_distance_deep_eye_pixel_error_source", "Pupil pixel distance error of source - DeepEye method"},
	{"pupil_distance_deep_eye_pixel_error_filtered", "Pupil pixel distance error of result - DeepEye method"},
	{"pupil_relative_error_else", "Pupil pixel distance relative - ELSE method"},
	{"pupil_relative_error_deep_eye", "Pupil pixel distance relative - DeepEye method"},
	{"filter", "Filter"},
	{"k", "Kernel size"},
	{"h", "$h$"},
	{"sigma", "Variance"},
	{"scale", "Variance"},
	{"intensity", "Intensity"},
	{"density", "Density"},
	{"sigma_s", "Spatial variance"},
	{"sigma_c", "Colour variance"},
}

// Keys of the metric table that name filter parameters rather than
// measurements.
var parameterIDs = []string{"filter", "k", "h", "sigma", "scale", "intensity", "density", "sigma_s", "sigma_c"}

// deriveCategories composes filter→kind with kind→category. A filter whose
// kind has no category is a dangling reference and fails the derivation.
func deriveCategories(kinds []kindEntry, categories map[Kind]Category) (map[string]Category, error) {
	out := make(map[string]Category, len(kinds))

	for _, e := range kinds {
		c, ok := categories[e.kind]
		if !ok {
			return nil, fmt.Errorf("labels: filter %q references unknown kind %q", e.id, e.kind)
		}

		if _, exists := out[e.id]; exists {
			return nil, fmt.Errorf("%w: %s", errDuplicateID, e.id)
		}

		out[e.id] = c
	}

	return out, nil
}

// indexEntries turns an ordered table into a lookup map plus the key order.
func indexEntries(entries []entry) (map[string]string, []string, error) {
	m := make(map[string]string, len(entries))
	order := make([]string, 0, len(entries))

	for _, e := range entries {
		if e.id == "" || e.label == "" {
			return nil, nil, fmt.Errorf("labels: empty identifier or label in entry %q", e.id)
		}

		if _, exists := m[e.id]; exists {
			return nil, nil, fmt.Errorf("%w: %s", errDuplicateID, e.id)
		}

		m[e.id] = e.label
		order = append(order, e.id)
	}

	return m, order, nil
}
