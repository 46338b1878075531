package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bukness/bukness-api/internal/domain"
	"github.com/bukness/bukness-api/internal/store"
)

// MockUserStore implements store.UserStore for testing. The default
// implementation is a usable in-memory store keyed by username; individual
// methods can be overridden through the function fields.
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn          func(ctx context.Context, user *domain.User) error
	GetByIDFn         func(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByNameFn       func(ctx context.Context, name string) (*domain.User, error)
	ListFn            func(ctx context.Context) ([]domain.User, error)
	UpdateFn          func(ctx context.Context, name string, user *domain.User) (*domain.User, error)
	DeleteFn          func(ctx context.Context, name string) error
	AddFavouriteFn    func(ctx context.Context, name string, bookID primitive.ObjectID) (*domain.User, error)
	RemoveFavouriteFn func(ctx context.Context, name string, bookID primitive.ObjectID) (*domain.User, error)

	// Data for default implementation
	Users map[string]*domain.User

	// Forced errors for the default implementation
	CreateError error
	LookupError error

	// Mutations counts every call that could change stored state, so tests
	// can assert that rejected requests performed no store mutation.
	Mutations int
}

// Ensure MockUserStore implements store.UserStore
var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	if m.CreateError != nil {
		return m.CreateError
	}

	m.Mutations++
	if _, exists := m.Users[user.Name]; exists {
		return store.ErrNameOrEmailExists
	}
	for _, u := range m.Users {
		if u.Email == user.Email {
			return store.ErrNameOrEmailExists
		}
	}

	m.Users[user.Name] = user
	return nil
}

// GetByID implements the UserStore interface.
func (m *MockUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.LookupError != nil {
		return nil, m.LookupError
	}

	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByName implements the UserStore interface.
func (m *MockUserStore) GetByName(ctx context.Context, name string) (*domain.User, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	if m.LookupError != nil {
		return nil, m.LookupError
	}

	user, exists := m.Users[name]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// List implements the UserStore interface.
func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if m.LookupError != nil {
		return nil, m.LookupError
	}

	users := []domain.User{}
	for _, u := range m.Users {
		users = append(users, *u)
	}
	return users, nil
}

// Update implements the UserStore interface.
func (m *MockUserStore) Update(ctx context.Context, name string, user *domain.User) (*domain.User, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, name, user)
	}

	existing, exists := m.Users[name]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	m.Mutations++
	existing.Name = user.Name
	existing.HashedPassword = user.HashedPassword
	existing.Email = user.Email
	existing.Birthday = user.Birthday
	if name != user.Name {
		delete(m.Users, name)
		m.Users[user.Name] = existing
	}
	return existing, nil
}

// Delete implements the UserStore interface.
func (m *MockUserStore) Delete(ctx context.Context, name string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, name)
	}

	if _, exists := m.Users[name]; !exists {
		return store.ErrUserNotFound
	}
	m.Mutations++
	delete(m.Users, name)
	return nil
}

// AddFavourite implements the UserStore interface with set semantics.
func (m *MockUserStore) AddFavourite(ctx context.Context, name string, bookID primitive.ObjectID) (*domain.User, error) {
	if m.AddFavouriteFn != nil {
		return m.AddFavouriteFn(ctx, name, bookID)
	}

	user, exists := m.Users[name]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	m.Mutations++
	if !user.HasFavourite(bookID) {
		user.FavouriteBooks = append(user.FavouriteBooks, bookID)
	}
	return user, nil
}

// RemoveFavourite implements the UserStore interface.
func (m *MockUserStore) RemoveFavourite(ctx context.Context, name string, bookID primitive.ObjectID) (*domain.User, error) {
	if m.RemoveFavouriteFn != nil {
		return m.RemoveFavouriteFn(ctx, name, bookID)
	}

	user, exists := m.Users[name]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	m.Mutations++
	kept := user.FavouriteBooks[:0]
	for _, id := range user.FavouriteBooks {
		if id != bookID {
			kept = append(kept, id)
		}
	}
	user.FavouriteBooks = kept
	return user, nil
}
