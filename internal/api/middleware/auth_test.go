package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bukness/bukness-api/internal/domain"
	"github.com/bukness/bukness-api/internal/mocks"
	"github.com/bukness/bukness-api/internal/service/auth"
)

// runAuthenticated wraps a probe handler in the middleware and fires a
// request with the given Authorization header. The probe records whether it
// ran and what principal it saw.
func runAuthenticated(t *testing.T, jwt *mocks.MockJWTService, users *mocks.MockUserStore, header string) (*httptest.ResponseRecorder, *domain.User, bool) {
	t.Helper()

	var (
		handlerRan bool
		principal  *domain.User
	)
	probe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerRan = true
		principal, _ = GetPrincipal(r)
		w.WriteHeader(http.StatusOK)
	})

	mw := NewAuthMiddleware(jwt, users)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	mw.Authenticate(probe).ServeHTTP(rec, req)

	return rec, principal, handlerRan
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID()

	newUsers := func() *mocks.MockUserStore {
		users := mocks.NewMockUserStore()
		users.Users["alice1"] = &domain.User{ID: userID, Name: "alice1"}
		return users
	}

	t.Run("valid token resolves the principal", func(t *testing.T) {
		t.Parallel()

		jwt := &mocks.MockJWTService{Claims: &auth.Claims{UserID: userID}}
		rec, principal, ran := runAuthenticated(t, jwt, newUsers(), "Bearer good-token")

		assert.Equal(t, http.StatusOK, rec.Code)
		require.True(t, ran)
		require.NotNil(t, principal)
		assert.Equal(t, "alice1", principal.Name)
	})

	t.Run("rejections", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name       string
			header     string
			jwt        *mocks.MockJWTService
			wantStatus int
			wantBody   string
		}{
			{
				name:       "missing header",
				header:     "",
				jwt:        &mocks.MockJWTService{Claims: &auth.Claims{UserID: userID}},
				wantStatus: http.StatusUnauthorized,
				wantBody:   "Authorization header required",
			},
			{
				name:       "not a bearer scheme",
				header:     "Basic abc123",
				jwt:        &mocks.MockJWTService{Claims: &auth.Claims{UserID: userID}},
				wantStatus: http.StatusUnauthorized,
				wantBody:   "Invalid authorization format",
			},
			{
				name:       "expired token",
				header:     "Bearer stale",
				jwt:        &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken},
				wantStatus: http.StatusUnauthorized,
				wantBody:   "Token expired",
			},
			{
				name:       "invalid token",
				header:     "Bearer garbage",
				jwt:        &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken},
				wantStatus: http.StatusUnauthorized,
				wantBody:   "Invalid token",
			},
			{
				name:       "valid token for a deleted user",
				header:     "Bearer orphaned",
				jwt:        &mocks.MockJWTService{Claims: &auth.Claims{UserID: primitive.NewObjectID()}},
				wantStatus: http.StatusUnauthorized,
				wantBody:   "Invalid token",
			},
		}

		for _, tc := range tests {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				rec, _, ran := runAuthenticated(t, tc.jwt, newUsers(), tc.header)

				assert.Equal(t, tc.wantStatus, rec.Code)
				assert.Contains(t, rec.Body.String(), tc.wantBody)
				assert.False(t, ran, "wrapped handler must not run on rejection")
			})
		}
	})
}
