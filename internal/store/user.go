package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bukness/bukness-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The caller must have hashed the
	// password already; only the hash is persisted.
	// Returns ErrNameOrEmailExists if the name or email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)

	// GetByName retrieves a user by their exact username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByName(ctx context.Context, name string) (*domain.User, error)

	// List returns all users.
	List(ctx context.Context) ([]domain.User, error)

	// Update overwrites the identity fields (Name, Password hash, Email,
	// Birthday) of the user matched by name. The favourites list is left
	// untouched. Returns the updated user, or ErrUserNotFound if no user
	// matches.
	Update(ctx context.Context, name string, user *domain.User) (*domain.User, error)

	// Delete removes a user from the store by their exact username.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, name string) error

	// AddFavourite adds the book ID to the named user's favourites with set
	// semantics: adding an ID that is already present is a no-op. Returns
	// the updated user, or ErrUserNotFound if no user matches.
	AddFavourite(ctx context.Context, name string, bookID primitive.ObjectID) (*domain.User, error)

	// RemoveFavourite removes the book ID from the named user's favourites.
	// Removing an absent ID is a no-op. Returns the updated user, or
	// ErrUserNotFound if no user matches.
	RemoveFavourite(ctx context.Context, name string, bookID primitive.ObjectID) (*domain.User, error)
}
