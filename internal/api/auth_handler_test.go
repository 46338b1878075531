package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials return user and token", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(primitive.NilObjectID)
		env.seedUser(t, "alice1")

		rec := env.do(t, http.MethodPost, "/login",
			map[string]string{"Name": "alice1", "Password": "pw123"}, false)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "test-token", body["token"])

		user, ok := body["user"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "alice1", user["Name"])

		// Neither the plaintext nor the stored hash may appear anywhere in
		// the response.
		assert.NotContains(t, rec.Body.String(), "pw123")
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(primitive.NilObjectID)

		rec := env.do(t, http.MethodPost, "/login",
			map[string]string{"Name": "nobody1", "Password": "pw123"}, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
	})

	t.Run("wrong password is rejected with the same message", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(primitive.NilObjectID)
		env.verifier.ShouldSucceed = false
		env.seedUser(t, "alice1")

		rec := env.do(t, http.MethodPost, "/login",
			map[string]string{"Name": "alice1", "Password": "wrong"}, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(primitive.NilObjectID)

		rec := env.do(t, http.MethodPost, "/login", "not an object", false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure surfaces as a 500 text body", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(primitive.NilObjectID)
		env.users.LookupError = errors.New("connection refused")

		rec := env.do(t, http.MethodPost, "/login",
			map[string]string{"Name": "alice1", "Password": "pw123"}, false)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Error: connection refused", rec.Body.String())
	})

	t.Run("missing fields are treated as bad credentials", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(primitive.NilObjectID)

		rec := env.do(t, http.MethodPost, "/login", map[string]string{}, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
