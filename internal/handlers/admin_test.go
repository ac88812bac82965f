package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"devfolio/internal/middleware"
	"devfolio/internal/models"
	"devfolio/internal/session"
	"devfolio/internal/store"
)

func blogInput(title string, featured, published *bool) *models.BlogPostInput {
	return &models.BlogPostInput{
		Title:     title,
		Excerpt:   "excerpt",
		Content:   "content",
		ImageURL:  "https://cdn.example.com/cover.jpg",
		Category:  "go",
		ReadTime:  "3 min",
		Featured:  featured,
		Published: published,
	}
}

func contactInput() *models.ContactMessageInput {
	return &models.ContactMessageInput{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "I would like to talk about a project.",
	}
}

const testAdminPassword = "correct horse battery staple"

// newTestAdmin builds the admin gate over memory stores. The session
// store is backed by Valkey only on the login success path; tests that
// need it call requireValkey first.
func newTestAdmin(t *testing.T, client *redis.Client) (*Admin, *store.MemoryBlogPosts, *store.MemoryProjects, *store.MemoryContactMessages) {
	t.Helper()

	posts := store.NewMemoryBlogPosts()
	projects := store.NewMemoryProjects()
	messages := store.NewMemoryContactMessages()

	admin, err := NewAdmin(session.NewStore(client, false), testAdminPassword, posts, projects, messages)
	if err != nil {
		t.Fatalf("NewAdmin: %v", err)
	}
	return admin, posts, projects, messages
}

// requireValkey returns a client on test DB 15 or skips.
func requireValkey(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("valkey not available: %v", err)
	}
	t.Cleanup(func() {
		keys, _ := client.Keys(context.Background(), "session:*").Result()
		if len(keys) > 0 {
			client.Del(context.Background(), keys...)
		}
		client.Close()
	})
	return client
}

func TestAdminLoginRejectsWrongPassword(t *testing.T) {
	admin, _, _, _ := newTestAdmin(t, nil)

	form := url.Values{"password": {"guess"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	admin.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			t.Error("rejected login must not set a session cookie")
		}
	}
}

func TestAdminLoginSuccess(t *testing.T) {
	client := requireValkey(t)
	admin, _, _, _ := newTestAdmin(t, client)

	form := url.Values{"password": {testAdminPassword}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	admin.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body)
	}

	var resp map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !resp["authenticated"] {
		t.Error("body should report authenticated=true")
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("login should set the session cookie")
	}
	if !cookie.HttpOnly {
		t.Error("session cookie should be HttpOnly")
	}
}

func TestAdminLoginJSONBody(t *testing.T) {
	client := requireValkey(t)
	admin, _, _, _ := newTestAdmin(t, client)

	req := httptest.NewRequest(http.MethodPost, "/admin/login",
		strings.NewReader(`{"password":"`+testAdminPassword+`"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	admin.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body)
	}
}

func TestAdminSessionEndpoint(t *testing.T) {
	admin, _, _, _ := newTestAdmin(t, nil)

	t.Run("without session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
		rec := httptest.NewRecorder()
		admin.Session(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("with session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
		ctx := context.WithValue(req.Context(), middleware.SessionKey, &session.Data{CreatedAt: time.Now()})
		rec := httptest.NewRecorder()
		admin.Session(rec, req.WithContext(ctx))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"authenticated":true`) {
			t.Errorf("body = %s, want authenticated true", rec.Body)
		}
	})
}

func TestAdminStats(t *testing.T) {
	admin, posts, _, messages := newTestAdmin(t, nil)
	ctx := context.Background()

	published := true
	featured := false
	for _, title := range []string{"one", "two"} {
		if _, err := posts.Create(ctx, blogInput(title, &featured, &published)); err != nil {
			t.Fatalf("seed post: %v", err)
		}
	}
	if _, err := messages.Create(ctx, contactInput()); err != nil {
		t.Fatalf("seed message: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	rec := httptest.NewRecorder()
	admin.Stats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body)
	}

	var counts map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &counts); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if counts["blogPosts"] != 2 || counts["projects"] != 0 || counts["contactMessages"] != 1 {
		t.Errorf("counts = %v, want blogPosts=2 projects=0 contactMessages=1", counts)
	}
}
