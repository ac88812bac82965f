// postgres_test.go provides a shared test database helper for the
// PostgreSQL store implementations. Tests are skipped if PostgreSQL is
// not available.
package store

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"devfolio/internal/database"
	"devfolio/internal/models"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDSN returns the PostgreSQL connection string for testing.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "devfolio")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "devfolio")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

func TestPGBlogPostCRUD(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	s := NewBlogPostStore(db)

	created, err := s.Create(ctx, postInput("PG Round Trip", false))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM blog_posts WHERE id = $1", created.ID) })

	if created.CreatedAt.IsZero() {
		t.Error("expected database-assigned created_at")
	}

	got, err := s.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != created.Title || !got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, created)
	}

	title := "PG Updated"
	updated, err := s.Update(ctx, created.ID, &models.BlogPostPatch{Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "PG Updated" {
		t.Errorf("Title = %q, want %q", updated.Title, "PG Updated")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("CreatedAt changed on update")
	}

	if err := s.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, created.ID); err != ErrNotFound {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestPGProjectTechStackRoundTrip(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	s := NewProjectStore(db)

	in := projectInput("PG Project")
	in.TechStack = []string{"Go", "PostgreSQL", "Go"}
	created, err := s.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM projects WHERE id = $1", created.ID) })

	got, err := s.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.TechStack) != 3 || got.TechStack[2] != "Go" {
		t.Errorf("TechStack = %v, want order and duplicates preserved", got.TechStack)
	}
}

func TestPGContactMessageCreate(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	s := NewContactMessageStore(db)

	created, err := s.Create(ctx, &models.ContactMessageInput{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Message: "I would like to talk about a project.",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM contact_messages WHERE id = $1", created.ID) })

	if created.CreatedAt.IsZero() {
		t.Error("expected database-assigned created_at")
	}
}
