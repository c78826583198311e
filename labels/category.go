package labels

import (
	"fmt"
	"strings"
)

// Category is the coarse classification of a filter's effect on an image.
type Category string

// Filter categories in presentation order.
const (
	CategoryDestructive Category = "Destructive"
	CategoryAdditive    Category = "Additive"
	CategoryCombined    Category = "Combined"
)

// Kind is the coarse filter type a category is derived from.
type Kind string

// Filter kinds.
const (
	KindBlur  Kind = "blur"
	KindNoise Kind = "noise"
	KindCombo Kind = "combo"
)

var categoryOrder = []Category{CategoryDestructive, CategoryAdditive, CategoryCombined}

// Categories returns all categories in presentation order.
func Categories() []Category {
	return append([]Category(nil), categoryOrder...)
}

// String implements fmt.Stringer.
func (c Category) String() string { return string(c) }

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}

	return false
}

// Rank returns the presentation position of c, or len(Categories()) for
// unknown values so they sort last.
func (c Category) Rank() int {
	for i, known := range categoryOrder {
		if c == known {
			return i
		}
	}

	return len(categoryOrder)
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	name := strings.TrimSpace(s)
	for _, c := range categoryOrder {
		if strings.EqualFold(name, string(c)) {
			return c, nil
		}
	}

	return "", fmt.Errorf("labels: unknown category %q", s)
}
