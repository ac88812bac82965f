// Package store owns the entity lifecycle for the three content
// collections. Interfaces keep the rest of the application
// persistence-agnostic: the postgres implementations back the deployed
// site, the memory implementations back unit tests and local development
// without a database.
//
// Every method takes a context and returns an explicit outcome. Expected
// misses are ErrNotFound, never a panic or an opaque error; validation is
// the caller's gate and payloads reaching Create/Update are trusted.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"devfolio/internal/models"
)

// ErrNotFound is returned when a requested record does not exist, both
// for id lookups and for the featured-post read when nothing is featured.
var ErrNotFound = errors.New("store: not found")

// BlogPosts manages the blog post collection.
type BlogPosts interface {
	// Create assigns id and createdAt, persists, and returns the full record.
	Create(ctx context.Context, in *models.BlogPostInput) (*models.BlogPost, error)

	// List returns every post, newest first. Admin surface only.
	List(ctx context.Context) ([]models.BlogPost, error)

	// ListPublished returns published posts for the public listing, newest
	// first, with featured posts excluded — the featured post is fetched
	// separately via GetFeatured.
	ListPublished(ctx context.Context) ([]models.BlogPost, error)

	// GetByID returns the post with the exact id, or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*models.BlogPost, error)

	// GetFeatured returns the most recently created published post with
	// featured set. Nothing enforces a single featured post at write time;
	// the newest one wins here, at read time.
	GetFeatured(ctx context.Context) (*models.BlogPost, error)

	// Update merges the supplied fields onto the existing record. Id and
	// createdAt are immutable; patches cannot carry them.
	Update(ctx context.Context, id uuid.UUID, patch *models.BlogPostPatch) (*models.BlogPost, error)

	// Delete removes the record, reporting ErrNotFound for a missing id.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of posts.
	Count(ctx context.Context) (int, error)
}

// Projects manages the portfolio project collection.
type Projects interface {
	Create(ctx context.Context, in *models.ProjectInput) (*models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	ListPublished(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	Update(ctx context.Context, id uuid.UUID, patch *models.ProjectPatch) (*models.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

// ContactMessages is a write-only sink from the public surface. No list,
// update, or delete is exposed; the operator reads messages out of band.
type ContactMessages interface {
	Create(ctx context.Context, in *models.ContactMessageInput) (*models.ContactMessage, error)
	Count(ctx context.Context) (int, error)
}
