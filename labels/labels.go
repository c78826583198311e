package labels

var defaultResolver = MustNew()

// Default returns the resolver over the built-in tables.
func Default() *Resolver { return defaultResolver }

// FilterCategory returns the category of a filter from the built-in tables.
func FilterCategory(id string) (Category, error) { return defaultResolver.FilterCategory(id) }

// FilterKind returns the coarse kind of a filter from the built-in tables.
func FilterKind(id string) (Kind, error) { return defaultResolver.FilterKind(id) }

// FilterLabel returns the display label of a filter from the built-in tables.
func FilterLabel(id string) (string, error) { return defaultResolver.FilterLabel(id) }

// MetricLabel returns the display label of a metric or parameter from the
// built-in tables.
func MetricLabel(id string) (string, error) { return defaultResolver.MetricLabel(id) }

// IsParameter reports whether id names a filter parameter.
func IsParameter(id string) bool { return defaultResolver.IsParameter(id) }

// Filters returns the built-in filter identifiers in presentation order.
func Filters() []string { return defaultResolver.Filters() }

// FiltersIn returns the built-in filters of one category.
func FiltersIn(c Category) []string { return defaultResolver.FiltersIn(c) }

// Metrics returns the built-in metric and parameter identifiers.
func Metrics() []string { return defaultResolver.Metrics() }

// CategoryTable returns a copy of the built-in filter → category mapping.
func CategoryTable() map[string]Category { return defaultResolver.CategoryTable() }

// FilterLabelTable returns a copy of the built-in filter → label mapping.
func FilterLabelTable() map[string]string { return defaultResolver.FilterLabelTable() }

// MetricLabelTable returns a copy of the built-in metric → label mapping.
func MetricLabelTable() map[string]string { return defaultResolver.MetricLabelTable() }
