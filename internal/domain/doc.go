// Package domain contains the core business entities of the book catalog:
// users with their favourite-book lists, and the books themselves. It is
// independent of any specific infrastructure or delivery mechanism.
package domain
