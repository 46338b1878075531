package domain

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Common validation errors
var (
	ErrNameTooShort  = errors.New("username longer than 5 characters is required")
	ErrNameNotAlnum  = errors.New("username contains non alphanumeric characters - not allowed")
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrInvalidEmail  = errors.New("invalid email format")
)

// User represents a registered user of the catalog together with their
// favourite-book list. The JSON field names are part of the public wire
// format and are capitalized deliberately.
type User struct {
	ID             primitive.ObjectID   `json:"_id,omitempty"  bson:"_id,omitempty"`
	Name           string               `json:"Name"           bson:"Name"`
	Password       string               `json:"-"              bson:"-"`        // Plaintext, held only between decode and hashing
	HashedPassword string               `json:"-"              bson:"Password"` // Never exposed in JSON
	Email          string               `json:"Email"          bson:"Email"`
	Birthday       Date                 `json:"Birthday"       bson:"Birthday"`
	FavouriteBooks []primitive.ObjectID `json:"FavouriteBooks" bson:"FavouriteBooks"`
}

// NewUser creates a new User with the given identity fields.
// It generates a new ObjectID and an empty favourites list.
// Returns an error if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext
// password. The caller is responsible for hashing the password before
// storing the user.
func NewUser(name, password, email string, birthday Date) (*User, error) {
	user := &User{
		ID:             primitive.NewObjectID(),
		Name:           name,
		Password:       password, // must be hashed before storage
		Email:          email,
		Birthday:       birthday,
		FavouriteBooks: []primitive.ObjectID{},
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if err := ValidateUsername(u.Name); err != nil {
		return err
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	// Either the plaintext password (pre-hash) or the stored hash must be
	// present; users loaded from the store carry only the hash.
	if u.Password == "" && u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// HasFavourite reports whether the given book ID is in the user's
// favourites list.
func (u *User) HasFavourite(bookID primitive.ObjectID) bool {
	for _, id := range u.FavouriteBooks {
		if id == bookID {
			return true
		}
	}
	return false
}

// ValidateUsername checks the username rules: at least 5 characters, all of
// them alphanumeric or space. Length counts runes, matching the request
// layer's min rule.
func ValidateUsername(name string) error {
	if utf8.RuneCountInString(name) < 5 {
		return ErrNameTooShort
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' ' {
			return ErrNameNotAlnum
		}
	}
	return nil
}

// validEmailFormat performs basic validation of email format: a single '@'
// with a dotted domain part. Request-level validation uses a full validator;
// this is the last line of defense for entities built in code.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
