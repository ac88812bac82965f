package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"golang.org/x/crypto/bcrypt"

	"devfolio/internal/middleware"
	"devfolio/internal/session"
	"devfolio/internal/store"
)

// Admin implements the gate in front of the operator surface. There is
// one shared secret and one operator; the gate grants a Valkey session
// and nothing finer-grained. The content API itself stays ungated.
type Admin struct {
	sessions     *session.Store
	passwordHash []byte
	posts        store.BlogPosts
	projects     store.Projects
	messages     store.ContactMessages
}

// NewAdmin creates the admin gate handlers. password is the configured
// shared secret; it is hashed once here so the plaintext never outlives
// startup.
func NewAdmin(sessions *session.Store, password string, posts store.BlogPosts, projects store.Projects, messages store.ContactMessages) (*Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Admin{
		sessions:     sessions,
		passwordHash: hash,
		posts:        posts,
		projects:     projects,
		messages:     messages,
	}, nil
}

// loginRequest is the JSON login payload. A plain form post with a
// "password" field is accepted too.
type loginRequest struct {
	Password string `json:"password"`
}

// Login checks the shared secret and mints a session on a match.
func (a *Admin) Login(w http.ResponseWriter, r *http.Request) {
	password := r.FormValue("password")
	if password == "" && strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req loginRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			badRequest(w, r)
			return
		}
		password = req.Password
	}

	if bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) != nil {
		slog.Warn("admin login rejected", "remote", r.RemoteAddr)
		unauthorized(w, r)
		return
	}

	if _, err := a.sessions.Create(r.Context(), w); err != nil {
		internalError(w, r, "session create failed", err)
		return
	}

	render.JSON(w, r, map[string]bool{"authenticated": true})
}

// Logout destroys the current session. Always answers 204, session or not.
func (a *Admin) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session reports whether the caller holds a live session, so the admin
// UI can decide between the dashboard and the login form.
func (a *Admin) Session(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionFromCtx(r.Context()) == nil {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, map[string]bool{"authenticated": false})
		return
	}
	render.JSON(w, r, map[string]bool{"authenticated": true})
}

// Stats returns entity counts for the dashboard.
func (a *Admin) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	postCount, err := a.posts.Count(ctx)
	if err != nil {
		internalError(w, r, "blog post count failed", err)
		return
	}
	projectCount, err := a.projects.Count(ctx)
	if err != nil {
		internalError(w, r, "project count failed", err)
		return
	}
	messageCount, err := a.messages.Count(ctx)
	if err != nil {
		internalError(w, r, "contact message count failed", err)
		return
	}

	render.JSON(w, r, map[string]int{
		"blogPosts":       postCount,
		"projects":        projectCount,
		"contactMessages": messageCount,
	})
}
