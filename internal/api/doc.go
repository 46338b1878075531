// Package api implements the HTTP handlers for the book catalog: user
// registration and management, login, and the authenticated catalog reads.
// Handlers depend on the store interfaces and the auth services, all
// injected at construction so tests can swap in mocks.
package api
