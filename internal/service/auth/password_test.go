package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHashAndCompare(t *testing.T) {
	t.Parallel()

	v := NewBcryptVerifier()

	digest, err := v.Hash("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", digest)

	assert.NoError(t, v.Compare(digest, "pw123"))
	assert.Error(t, v.Compare(digest, "wrong"))
}

func TestBcryptHashIsSalted(t *testing.T) {
	t.Parallel()

	v := NewBcryptVerifier()

	first, err := v.Hash("same password")
	require.NoError(t, err)
	second, err := v.Hash("same password")
	require.NoError(t, err)

	// The salt makes two digests of the same plaintext unequal; Compare is
	// the only legitimate equality check.
	assert.NotEqual(t, first, second)
	assert.NoError(t, v.Compare(first, "same password"))
	assert.NoError(t, v.Compare(second, "same password"))
}
