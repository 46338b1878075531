package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bukness/bukness-api/internal/api/shared"
	"github.com/bukness/bukness-api/internal/domain"
	"github.com/bukness/bukness-api/internal/redact"
	"github.com/bukness/bukness-api/internal/service/auth"
	"github.com/bukness/bukness-api/internal/store"
)

// UserHandler handles user registration and account management requests.
type UserHandler struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, hasher auth.PasswordHasher) *UserHandler {
	return &UserHandler{
		userStore: userStore,
		hasher:    hasher,
		validator: newValidator(),
	}
}

// List handles GET /users. The 201 status on a read is a long-standing quirk
// of this API's wire contract and is preserved deliberately.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		shared.RespondWithStoreFailure(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, users)
}

// Get handles GET /users/{Username}. A missing user is a 200 with a JSON
// null body, not a 404; clients of this API have always distinguished the
// two cases by body, not status.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "Username")

	user, err := h.userStore.GetByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithJSON(w, r, http.StatusOK, nil)
			return
		}
		shared.RespondWithStoreFailure(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// Register handles POST /users. Validation failures return the full list of
// failed rules as a 422; duplicate identities surface the store's unique
// index violation as the historical 400 text message.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req UserPayload

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if errs := userPayloadErrors(h.validator, req); len(errs) > 0 {
		shared.RespondWithJSON(w, r, http.StatusUnprocessableEntity,
			ValidationErrorResponse{Errors: errs})
		return
	}

	user, err := domain.NewUser(req.Name, req.Password, req.Email, req.Birthday)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	hashed, err := h.hasher.Hash(user.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if store.IsDuplicateError(err) {
			shared.RespondWithText(w, r, http.StatusBadRequest,
				"'"+req.Name+"' username already exists, or the introduced email is already been used. Please try again.")
			return
		}
		shared.RespondWithStoreFailure(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// Update handles PUT /users/{Username}: a full-field overwrite of the
// profile keyed by the path username, with the same validation as
// registration. A missing user yields a 201 with a null body, mirroring
// Get's leniency.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "Username")

	var req UserPayload

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if errs := userPayloadErrors(h.validator, req); len(errs) > 0 {
		shared.RespondWithJSON(w, r, http.StatusUnprocessableEntity,
			ValidationErrorResponse{Errors: errs})
		return
	}

	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update user")
		return
	}

	updated, err := h.userStore.Update(r.Context(), name, &domain.User{
		Name:           req.Name,
		HashedPassword: hashed,
		Email:          req.Email,
		Birthday:       req.Birthday,
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithJSON(w, r, http.StatusCreated, nil)
			return
		}
		shared.RespondWithStoreFailure(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, updated)
}

// Delete handles DELETE /users/{Username}. Unlike the other lookups this one
// checks existence explicitly and answers in plain text.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "Username")

	if err := h.userStore.Delete(r.Context(), name); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithText(w, r, http.StatusBadRequest, name+" was not found")
			return
		}
		shared.RespondWithStoreFailure(w, r, err)
		return
	}

	shared.RespondWithText(w, r, http.StatusOK, name+" was deleted.")
}

// AddFavourite handles POST /users/{Username}/Books/{BookID}. The book ID is
// added with set semantics; adding a book twice keeps a single copy.
func (h *UserHandler) AddFavourite(w http.ResponseWriter, r *http.Request) {
	h.mutateFavourites(w, r, h.userStore.AddFavourite)
}

// RemoveFavourite handles DELETE /users/{Username}/Books/{BookID}. Removing
// a book that is not in the list is a no-op that still returns the user.
func (h *UserHandler) RemoveFavourite(w http.ResponseWriter, r *http.Request) {
	h.mutateFavourites(w, r, h.userStore.RemoveFavourite)
}

// mutateFavourites shares the request plumbing of the two favourites routes:
// parse the book ID, apply the store mutation by username, and answer with
// the updated user, or a null body when the user does not exist. A malformed
// book ID surfaces as a store-style failure, which is the same observable
// class the document mapper has always produced for bad ids.
func (h *UserHandler) mutateFavourites(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, name string, bookID primitive.ObjectID) (*domain.User, error),
) {
	name := chi.URLParam(r, "Username")

	bookID, err := getPathObjectID(r, "BookID")
	if err != nil {
		shared.RespondWithStoreFailure(w, r, err)
		return
	}

	updated, err := op(r.Context(), name, bookID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithJSON(w, r, http.StatusOK, nil)
			return
		}
		shared.RespondWithStoreFailure(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}
