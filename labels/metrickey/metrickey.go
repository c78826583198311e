// Package metrickey parses and formats the keys of the information metrics
// (entropy and mutual information) reported by the iris filter experiments.
//
// Keys follow the grammar
//
//	<method>_<quantity>_<region>[_<side>][_<scale>x]
//
// where the side is present for entropies only and the scale is present for
// the gabor method only, e.g. "gabor_entropy_iris_source_0.5x" or
// "gradient_mutual_information_image".
package metrickey

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrSyntax is returned for keys that do not follow the grammar.
var ErrSyntax = errors.New("invalid metric key")

// Method is the feature extraction method an information metric is built on.
type Method string

// Methods.
const (
	MethodGradient Method = "gradient"
	MethodGabor    Method = "gabor"
)

// Quantity is the information-theoretic quantity measured.
type Quantity string

// Quantities.
const (
	QuantityEntropy           Quantity = "entropy"
	QuantityMutualInformation Quantity = "mutual_information"
)

// Region is the part of the eye image the metric is computed over.
type Region string

// Regions.
const (
	RegionIris  Region = "iris"
	RegionImage Region = "image"
)

// Side selects the unfiltered source or the filtered result image.
type Side string

// Sides. Mutual information relates both images and has no side.
const (
	SideNone     Side = ""
	SideSource   Side = "source"
	SideFiltered Side = "filtered"
)

// BasePixels is the gabor wavelength in pixels at scale 1.
const BasePixels = 3.0

var scales = []float64{1.0, 0.5, 0.25, 0.125, 0.0625}

// Scales returns the gabor scales used by the experiments, largest first.
func Scales() []float64 {
	return append([]float64(nil), scales...)
}

// Key is a parsed information metric key.
type Key struct {
	Method   Method
	Quantity Quantity
	Region   Region
	Side     Side
	// Scale is the gabor image scale. Zero for the gradient method.
	Scale float64
}

// Parse parses an information metric key.
func Parse(s string) (Key, error) {
	var k Key

	rest, ok := cutToken(s, string(MethodGradient))
	if ok {
		k.Method = MethodGradient
	} else if rest, ok = cutToken(s, string(MethodGabor)); ok {
		k.Method = MethodGabor
	} else {
		return Key{}, syntaxError(s, "unknown method")
	}

	if r, ok := cutToken(rest, string(QuantityMutualInformation)); ok {
		k.Quantity, rest = QuantityMutualInformation, r
	} else if r, ok := cutToken(rest, string(QuantityEntropy)); ok {
		k.Quantity, rest = QuantityEntropy, r
	} else {
		return Key{}, syntaxError(s, "unknown quantity")
	}

	if r, ok := cutToken(rest, string(RegionIris)); ok {
		k.Region, rest = RegionIris, r
	} else if r, ok := cutToken(rest, string(RegionImage)); ok {
		k.Region, rest = RegionImage, r
	} else {
		return Key{}, syntaxError(s, "unknown region")
	}

	if k.Quantity == QuantityEntropy {
		if r, ok := cutToken(rest, string(SideSource)); ok {
			k.Side, rest = SideSource, r
		} else if r, ok := cutToken(rest, string(SideFiltered)); ok {
			k.Side, rest = SideFiltered, r
		} else {
			return Key{}, syntaxError(s, "entropy requires source or filtered side")
		}
	}

	switch k.Method {
	case MethodGradient:
		if rest != "" {
			return Key{}, syntaxError(s, "unexpected suffix "+strconv.Quote(rest))
		}
	case MethodGabor:
		scale, err := parseScale(rest)
		if err != nil {
			return Key{}, syntaxError(s, err.Error())
		}

		k.Scale = scale
	}

	return k, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Key {
	k, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}

	return k
}

// cutToken removes tok and the separator that follows it from the front of
// s. A token at the very end of s is accepted without separator.
func cutToken(s, tok string) (string, bool) {
	if s == tok {
		return "", true
	}

	return strings.CutPrefix(s, tok+"_")
}

func parseScale(s string) (float64, error) {
	num, ok := strings.CutSuffix(s, "x")
	if !ok || num == "" {
		return 0, fmt.Errorf("gabor method requires a scale suffix, got %q", s)
	}

	for _, v := range scales {
		if formatScale(v) == num {
			return v, nil
		}
	}

	return 0, fmt.Errorf("invalid scale %q", num)
}

func syntaxError(key, reason string) error {
	return fmt.Errorf("metrickey: %w %q: %s", ErrSyntax, key, reason)
}

// String formats k back into its key form.
func (k Key) String() string {
	var b strings.Builder

	b.WriteString(string(k.Method))
	b.WriteByte('_')
	b.WriteString(string(k.Quantity))
	b.WriteByte('_')
	b.WriteString(string(k.Region))

	if k.Side != SideNone {
		b.WriteByte('_')
		b.WriteString(string(k.Side))
	}

	if k.Method == MethodGabor {
		b.WriteByte('_')
		b.WriteString(formatScale(k.Scale))
		b.WriteByte('x')
	}

	return b.String()
}

func formatScale(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PixelSize returns the gabor wavelength in pixels, or 0 for the gradient
// method.
func (k Key) PixelSize() float64 {
	if k.Method != MethodGabor || k.Scale == 0 {
		return 0
	}

	return BasePixels / k.Scale
}

// Label returns the display label of k, e.g.
// "Entropy of source (iris) - gabor method (6px)".
func (k Key) Label() string {
	var b strings.Builder

	switch k.Quantity {
	case QuantityEntropy:
		side := "source"
		if k.Side == SideFiltered {
			side = "result"
		}

		fmt.Fprintf(&b, "Entropy of %s (%s)", side, k.Region)
	case QuantityMutualInformation:
		fmt.Fprintf(&b, "Mutual information (%s)", k.Region)
	}

	fmt.Fprintf(&b, " - %s method", k.Method)

	if px := k.PixelSize(); px > 0 {
		fmt.Fprintf(&b, " (%spx)", strconv.FormatFloat(px, 'f', -1, 64))
	}

	return b.String()
}

// Keys returns every information metric key reported by the experiments, in
// the order they appear in the metric label table.
func Keys() []Key {
	var out []Key

	for _, region := range []Region{RegionIris, RegionImage} {
		out = append(out,
			Key{Method: MethodGradient, Quantity: QuantityEntropy, Region: region, Side: SideSource},
			Key{Method: MethodGradient, Quantity: QuantityEntropy, Region: region, Side: SideFiltered},
			Key{Method: MethodGradient, Quantity: QuantityMutualInformation, Region: region},
		)

		for _, side := range []Side{SideSource, SideFiltered, SideNone} {
			q := QuantityEntropy
			if side == SideNone {
				q = QuantityMutualInformation
			}

			for _, scale := range scales {
				out = append(out, Key{Method: MethodGabor, Quantity: q, Region: region, Side: side, Scale: scale})
			}
		}
	}

	return out
}
