// Package mongodb implements the store interfaces on top of a MongoDB
// database using the official driver. Users and books live in two
// collections; user identity uniqueness is enforced with unique indexes so
// the database, not an application-level pre-check, is the final arbiter of
// duplicate registrations.
package mongodb
