package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bukness/bukness-api/internal/api/shared"
	"github.com/bukness/bukness-api/internal/store"
)

// BookHandler handles the read-only catalog endpoints. Both routes sit
// behind the bearer-token middleware; by the time a handler runs, the
// request carries an authenticated principal.
type BookHandler struct {
	bookStore store.BookStore
}

// NewBookHandler creates a new BookHandler with the given dependencies.
func NewBookHandler(bookStore store.BookStore) *BookHandler {
	return &BookHandler{bookStore: bookStore}
}

// List handles GET /API/books. An empty catalog is a 200 with an empty
// array, never an error.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookStore.List(r.Context())
	if err != nil {
		shared.RespondWithStoreFailure(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, books)
}

// FindByTitle handles GET /API/books/{title}: all books whose Title matches
// the path parameter exactly. No match is an empty array, not a 404.
func (h *BookHandler) FindByTitle(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	books, err := h.bookStore.FindByTitle(r.Context(), title)
	if err != nil {
		shared.RespondWithStoreFailure(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, books)
}
