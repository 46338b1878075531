package mocks

import (
	"context"

	"github.com/bukness/bukness-api/internal/domain"
	"github.com/bukness/bukness-api/internal/store"
)

// MockBookStore implements store.BookStore for testing.
type MockBookStore struct {
	// Function fields for customizable behavior
	ListFn        func(ctx context.Context) ([]domain.Book, error)
	FindByTitleFn func(ctx context.Context, title string) ([]domain.Book, error)

	// Data for default implementation
	Books []domain.Book

	// Forced error for the default implementation
	Err error
}

// Ensure MockBookStore implements store.BookStore
var _ store.BookStore = (*MockBookStore)(nil)

// List implements the BookStore interface.
func (m *MockBookStore) List(ctx context.Context) ([]domain.Book, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Books == nil {
		return []domain.Book{}, nil
	}
	return m.Books, nil
}

// FindByTitle implements the BookStore interface.
func (m *MockBookStore) FindByTitle(ctx context.Context, title string) ([]domain.Book, error) {
	if m.FindByTitleFn != nil {
		return m.FindByTitleFn(ctx, title)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	matches := []domain.Book{}
	for _, b := range m.Books {
		if b.Title == title {
			matches = append(matches, b)
		}
	}
	return matches, nil
}
