package store

import (
	"context"

	"github.com/bukness/bukness-api/internal/domain"
)

// BookStore defines the interface for book catalog persistence.
// The catalog is read-only over the API, so no write operations are exposed.
type BookStore interface {
	// List returns all books in the catalog. An empty catalog yields an
	// empty slice, not an error.
	List(ctx context.Context) ([]domain.Book, error)

	// FindByTitle returns all books whose Title matches exactly.
	// No match yields an empty slice, not an error.
	FindByTitle(ctx context.Context, title string) ([]domain.Book, error)
}
