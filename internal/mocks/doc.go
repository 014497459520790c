// Package mocks provides test doubles for the store and generation
// interfaces. Each mock exposes function fields for per-test behavior and
// falls back to a simple in-memory default when a field is nil.
package mocks
