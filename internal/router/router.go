// Package router sets up all HTTP routes and middleware chains: the
// public JSON content API, the contact intake, and the gated admin
// surface under a configurable prefix.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"devfolio/internal/handlers"
	"devfolio/internal/middleware"
	"devfolio/internal/session"
)

// Config carries everything the route tree depends on.
type Config struct {
	Sessions  *session.Store
	BlogPosts *handlers.BlogPosts
	Projects  *handlers.Projects
	Contact   *handlers.Contact
	Admin     *handlers.Admin

	// AdminPath is the gate prefix, "/admin" unless reconfigured.
	AdminPath string

	// SecureCookies marks the CSRF cookie HTTPS-only.
	SecureCookies bool
}

// Rate limits for the two abuse-prone endpoints: contact intake and the
// login form.
const (
	contactLimit  = 5
	contactWindow = time.Minute
	loginLimit    = 5
	loginWindow   = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(cfg Config) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(cfg.Sessions))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Content API — trusts all callers, reads served through the syncer.
	r.Route("/api", func(r chi.Router) {
		r.Route("/blog-posts", func(r chi.Router) {
			r.Get("/", cfg.BlogPosts.List)
			r.Post("/", cfg.BlogPosts.Create)
			r.Get("/featured", cfg.BlogPosts.Featured)
			r.Get("/{id}", cfg.BlogPosts.Get)
			r.Get("/{id}/html", cfg.BlogPosts.GetHTML)
			r.Put("/{id}", cfg.BlogPosts.Update)
			r.Delete("/{id}", cfg.BlogPosts.Delete)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", cfg.Projects.List)
			r.Post("/", cfg.Projects.Create)
			r.Get("/{id}", cfg.Projects.Get)
			r.Put("/{id}", cfg.Projects.Update)
			r.Delete("/{id}", cfg.Projects.Delete)
		})

		// Contact intake is the one public write, so it alone is rate
		// limited.
		contactLimiter := middleware.NewRateLimiter(contactLimit, contactWindow)
		r.With(contactLimiter.Middleware).Post("/contact-messages", cfg.Contact.Create)
	})

	// Admin gate under the configured prefix.
	r.Route(cfg.AdminPath, func(r chi.Router) {
		r.Use(middleware.NewCSRF(cfg.SecureCookies))

		loginLimiter := middleware.NewRateLimiter(loginLimit, loginWindow)
		r.With(loginLimiter.Middleware).Post("/login", cfg.Admin.Login)
		r.Post("/logout", cfg.Admin.Logout)
		r.Get("/session", cfg.Admin.Session)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(cfg.AdminPath + "/login"))
			r.Get("/stats", cfg.Admin.Stats)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
