package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bukness/bukness-api/internal/domain"
)

func seedCatalog(env *testEnv) {
	env.books.Books = []domain.Book{
		{
			ID:          primitive.NewObjectID(),
			Title:       "The Dispossessed",
			Description: "An ambiguous utopia.",
			Genre:       domain.Genre{Name: "Science Fiction"},
			Author:      domain.Author{Name: "Ursula K. Le Guin"},
		},
		{
			ID:          primitive.NewObjectID(),
			Title:       "Kindred",
			Description: "A time travel novel.",
			Genre:       domain.Genre{Name: "Science Fiction"},
			Author:      domain.Author{Name: "Octavia E. Butler"},
		},
	}
}

func TestListBooks(t *testing.T) {
	t.Parallel()

	t.Run("returns the whole catalog", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(primitive.NilObjectID)
		principal := env.seedUser(t, "alice1")
		env.jwt.Claims.UserID = principal.ID
		seedCatalog(env)

		rec := env.do(t, http.MethodGet, "/API/books", nil, true)

		require.Equal(t, http.StatusOK, rec.Code)

		var books []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &books))
		require.Len(t, books, 2)
		assert.Equal(t, "The Dispossessed", books[0]["Title"])
	})

	t.Run("empty catalog is an empty array", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(primitive.NilObjectID)
		principal := env.seedUser(t, "alice1")
		env.jwt.Claims.UserID = principal.ID

		rec := env.do(t, http.MethodGet, "/API/books", nil, true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("requires a token", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(primitive.NilObjectID)

		rec := env.do(t, http.MethodGet, "/API/books", nil, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestFindBooksByTitle(t *testing.T) {
	t.Parallel()

	t.Run("exact title match", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(primitive.NilObjectID)
		principal := env.seedUser(t, "alice1")
		env.jwt.Claims.UserID = principal.ID
		seedCatalog(env)

		rec := env.do(t, http.MethodGet, "/API/books/Kindred", nil, true)

		require.Equal(t, http.StatusOK, rec.Code)

		var books []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &books))
		require.Len(t, books, 1)
		assert.Equal(t, "Kindred", books[0]["Title"])
	})

	t.Run("no match is an empty array, not a 404", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(primitive.NilObjectID)
		principal := env.seedUser(t, "alice1")
		env.jwt.Claims.UserID = principal.ID
		seedCatalog(env)

		rec := env.do(t, http.MethodGet, "/API/books/Nonexistent", nil, true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}
