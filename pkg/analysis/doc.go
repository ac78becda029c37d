// Package analysis exposes the value types produced by the data introspection
// engine: field descriptors, structural pattern flags, complexity tiers, and
// the per-record and per-collection analysis results. Everything in this
// package is an immutable value created by the introspect package; callers
// never construct analyses by hand outside of tests.
package analysis
