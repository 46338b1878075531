// Package mocks provides hand-written mock implementations of the store and
// auth interfaces for use in tests. Each mock exposes optional function
// fields for per-test behavior and a usable in-memory default.
package mocks
