package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bukness/bukness-api/internal/domain"
	"github.com/bukness/bukness-api/internal/mocks"
	"github.com/bukness/bukness-api/internal/service/auth"
)

// testEnv bundles a router wired with mocks, plus the mocks themselves so
// tests can seed data and assert on store state.
type testEnv struct {
	router   http.Handler
	users    *mocks.MockUserStore
	books    *mocks.MockBookStore
	jwt      *mocks.MockJWTService
	verifier *mocks.MockPasswordVerifier
}

// newTestEnv builds a router over fresh mocks. The JWT mock accepts any
// bearer token and resolves it to the given principal ID; pass
// primitive.NilObjectID when no gated route is exercised.
func newTestEnv(principalID primitive.ObjectID) *testEnv {
	users := mocks.NewMockUserStore()
	books := &mocks.MockBookStore{}
	verifier := &mocks.MockPasswordVerifier{ShouldSucceed: true}
	jwt := &mocks.MockJWTService{
		Token:  "test-token",
		Claims: &auth.Claims{UserID: principalID},
	}

	return &testEnv{
		router: NewRouter(RouterDeps{
			UserStore:        users,
			BookStore:        books,
			JWTService:       jwt,
			PasswordVerifier: verifier,
			PasswordHasher:   verifier,
		}),
		users:    users,
		books:    books,
		jwt:      jwt,
		verifier: verifier,
	}
}

// seedUser inserts a user fixture directly into the mock store and returns it.
func (e *testEnv) seedUser(t *testing.T, name string) *domain.User {
	t.Helper()

	birthday, err := domain.ParseDate("2000-01-01")
	require.NoError(t, err)

	user := &domain.User{
		ID:             primitive.NewObjectID(),
		Name:           name,
		HashedPassword: "hashed:pw123",
		Email:          name + "@example.com",
		Birthday:       birthday,
		FavouriteBooks: []primitive.ObjectID{},
	}
	e.users.Users[name] = user
	return user
}

// do runs a request against the router and returns the recorder.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf).WithContext(context.Background())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer test-token")
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a JSON response body into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
