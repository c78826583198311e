package labels

import "strings"

// DefaultMaxSuggestions bounds the number of identifiers suggested in a
// NotFoundError.
const DefaultMaxSuggestions = 3

type resolverConfig struct {
	filterLabels   map[string]string
	metricLabels   map[string]string
	plainLabels    bool
	maxSuggestions int
}

// Option configures a Resolver built by New.
type Option func(*resolverConfig)

func defaultResolverConfig() resolverConfig {
	return resolverConfig{maxSuggestions: DefaultMaxSuggestions}
}

// WithFilterLabels overrides the display labels of known filters. Unknown
// identifiers make New fail.
func WithFilterLabels(overrides map[string]string) Option {
	return func(cfg *resolverConfig) {
		if cfg.filterLabels == nil {
			cfg.filterLabels = make(map[string]string, len(overrides))
		}

		for id, label := range overrides {
			cfg.filterLabels[id] = label
		}
	}
}

// WithMetricLabels overrides the display labels of known metrics and
// parameters. Unknown identifiers make New fail.
func WithMetricLabels(overrides map[string]string) Option {
	return func(cfg *resolverConfig) {
		if cfg.metricLabels == nil {
			cfg.metricLabels = make(map[string]string, len(overrides))
		}

		for id, label := range overrides {
			cfg.metricLabels[id] = label
		}
	}
}

// WithPlainLabels strips TeX math delimiters from labels, so "$h$" is
// rendered as "h".
func WithPlainLabels() Option {
	return func(cfg *resolverConfig) { cfg.plainLabels = true }
}

// WithMaxSuggestions sets how many near matches a NotFoundError carries.
// Zero disables suggestions.
func WithMaxSuggestions(n int) Option {
	return func(cfg *resolverConfig) {
		if n >= 0 {
			cfg.maxSuggestions = n
		}
	}
}

var texReplacer = strings.NewReplacer(`$`, "", `\sigma`, "σ", `\_`, "_", `\`, "")

// PlainLabel removes TeX math delimiters and the most common TeX escapes.
func PlainLabel(label string) string {
	return strings.TrimSpace(texReplacer.Replace(label))
}
