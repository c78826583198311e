// Package labels translates the identifiers used by the iris filter
// experiments into display labels and coarse categories.
//
// Three read-only mappings are exposed:
//
//   - filter identifier → [Category] (via an intermediate [Kind])
//   - filter identifier → display label
//   - metric or parameter identifier → display label
//
// The package-level functions resolve against the built-in tables. A
// [Resolver] built with [New] can override individual labels, for example to
// strip TeX markup for plain-text output. Every lookup of an unknown
// identifier fails with an error matching [ErrNotFound].
//
// All tables are immutable after construction and safe for concurrent reads.
package labels
