package mocks

import (
	"errors"

	"github.com/bukness/bukness-api/internal/service/auth"
)

// MockPasswordVerifier implements auth.PasswordVerifier and
// auth.PasswordHasher for testing.
type MockPasswordVerifier struct {
	// ShouldSucceed makes Compare succeed regardless of input when true.
	ShouldSucceed bool

	// HashFn allows test cases to mock the Hash behavior
	HashFn func(password string) (string, error)

	// HashErr forces Hash to fail
	HashErr error
}

// Ensure the mock satisfies both interfaces
var (
	_ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)
	_ auth.PasswordHasher   = (*MockPasswordVerifier)(nil)
)

// Compare implements the auth.PasswordVerifier interface.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}

// Hash implements the auth.PasswordHasher interface. The default "hashes"
// by prefixing, which keeps test assertions readable.
func (m *MockPasswordVerifier) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return "hashed:" + password, nil
}
