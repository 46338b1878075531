// Package store defines the persistence interfaces and error taxonomy used
// by the rest of the application. Implementations live under
// internal/platform; handlers and services depend only on these interfaces
// so tests can substitute in-memory fakes.
package store
