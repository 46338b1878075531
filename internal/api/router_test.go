package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStaticAndFallbackRoutes(t *testing.T) {
	t.Parallel()

	env := newTestEnv(primitive.NilObjectID)

	t.Run("root serves a page", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/", nil, false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	})

	t.Run("unknown path redirects home", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/no/such/route", nil, false)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("wrong method redirects home", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/login", nil, false)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})
}

// TestAccountLifecycle walks one user through the whole account flow:
// register, log in, manage favourites, read the profile back, then delete
// the account twice to observe both delete outcomes.
func TestAccountLifecycle(t *testing.T) {
	t.Parallel()

	env := newTestEnv(primitive.NilObjectID)
	bookID := primitive.NewObjectID()

	// Register.
	rec := env.do(t, http.MethodPost, "/users", map[string]string{
		"Name":     "alice1",
		"Password": "pw123",
		"Email":    "a@example.com",
		"Birthday": "2000-01-01",
	}, false)
	require.Equal(t, http.StatusCreated, rec.Code)

	created, ok := env.users.Users["alice1"]
	require.True(t, ok)
	env.jwt.Claims.UserID = created.ID

	// Log in with the same credentials.
	rec = env.do(t, http.MethodPost, "/login", map[string]string{
		"Name":     "alice1",
		"Password": "pw123",
	}, false)
	require.Equal(t, http.StatusOK, rec.Code)
	login := decodeBody(t, rec)
	require.Equal(t, "test-token", login["token"])

	// Add a favourite, then read the profile back over the gated route.
	favPath := "/users/alice1/Books/" + bookID.Hex()
	rec = env.do(t, http.MethodPost, favPath, nil, false)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/users/alice1", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decodeBody(t, rec)
	favs, ok := profile["FavouriteBooks"].([]interface{})
	require.True(t, ok)
	require.Len(t, favs, 1)
	assert.Equal(t, bookID.Hex(), favs[0])

	// Remove it again.
	rec = env.do(t, http.MethodDelete, favPath, nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, env.users.Users["alice1"].HasFavourite(bookID))

	// Delete the account; the second attempt reports the absence.
	rec = env.do(t, http.MethodDelete, "/users/alice1", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice1 was deleted.", rec.Body.String())

	rec = env.do(t, http.MethodDelete, "/users/alice1", nil, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "alice1 was not found", rec.Body.String())
}

func TestGatedRoutesRejectAnonymousRequests(t *testing.T) {
	t.Parallel()

	env := newTestEnv(primitive.NilObjectID)

	for _, path := range []string{"/users", "/users/alice1", "/API/books", "/API/books/Kindred"} {
		rec := env.do(t, http.MethodGet, path, nil, false)
		assert.Equalf(t, http.StatusUnauthorized, rec.Code, "GET %s without a token", path)
		assert.Truef(t, strings.Contains(rec.Body.String(), "Authorization header required"),
			"GET %s body: %s", path, rec.Body.String())
	}
}
