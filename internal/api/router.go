package api

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	apimiddleware "github.com/bukness/bukness-api/internal/api/middleware"
	"github.com/bukness/bukness-api/internal/service/auth"
	"github.com/bukness/bukness-api/internal/store"
)

// RouterDeps carries everything the router needs to build its handlers.
// The authentication pieces are injected explicitly so tests can substitute
// a fake verifier instead of relying on any process-wide registry.
type RouterDeps struct {
	UserStore        store.UserStore
	BookStore        store.BookStore
	JWTService       auth.JWTService
	PasswordVerifier auth.PasswordVerifier
	PasswordHasher   auth.PasswordHasher

	// PublicDir is the directory holding the static landing and
	// documentation pages. Empty disables the static routes' file serving.
	PublicDir string
}

// NewRouter creates and configures the application router with all routes
// and middleware.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	authHandler := NewAuthHandler(deps.UserStore, deps.JWTService, deps.PasswordVerifier)
	userHandler := NewUserHandler(deps.UserStore, deps.PasswordHasher)
	bookHandler := NewBookHandler(deps.BookStore)
	authMiddleware := apimiddleware.NewAuthMiddleware(deps.JWTService, deps.UserStore)

	// Static pages (public)
	r.Get("/", servePage(deps.PublicDir, "index.html"))
	r.Get("/documentation", servePage(deps.PublicDir, "documentation.html"))

	// Authentication (public)
	r.Post("/login", authHandler.Login)

	// Catalog reads (token gated)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Get("/API/books", bookHandler.List)
		r.Get("/API/books/{title}", bookHandler.FindByTitle)
		r.Get("/users", userHandler.List)
		r.Get("/users/{Username}", userHandler.Get)
	})

	// Account management (public, matching the API's historical gating)
	r.Post("/users", userHandler.Register)
	r.Put("/users/{Username}", userHandler.Update)
	r.Delete("/users/{Username}", userHandler.Delete)
	r.Post("/users/{Username}/Books/{BookID}", userHandler.AddFavourite)
	r.Delete("/users/{Username}/Books/{BookID}", userHandler.RemoveFavourite)

	// Anything unmatched bounces back to the landing page.
	r.NotFound(redirectHome)
	r.MethodNotAllowed(redirectHome)

	return r
}

// redirectHome sends the client back to the root with a 302.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

// servePage serves a single static HTML file from the public directory.
// Without a configured directory it falls back to a minimal inline page so
// the root route never redirects to itself.
func servePage(dir, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if dir == "" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<!DOCTYPE html><html><body><h1>bukness API</h1></body></html>"))
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, name))
	}
}
