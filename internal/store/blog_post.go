package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"devfolio/internal/models"
)

const blogPostColumns = `id, title, excerpt, content, image_url, category,
       read_time, featured, published, created_at`

// BlogPostStore is the PostgreSQL implementation of BlogPosts.
type BlogPostStore struct {
	db *sql.DB
}

// NewBlogPostStore creates a BlogPostStore over the given connection pool.
func NewBlogPostStore(db *sql.DB) *BlogPostStore {
	return &BlogPostStore{db: db}
}

// Create inserts a new post. The database assigns id and created_at.
func (s *BlogPostStore) Create(ctx context.Context, in *models.BlogPostInput) (*models.BlogPost, error) {
	p := &models.BlogPost{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO blog_posts (title, excerpt, content, image_url, category,
		                        read_time, featured, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+blogPostColumns,
		in.Title, in.Excerpt, in.Content, in.ImageURL, in.Category,
		in.ReadTime, *in.Featured, *in.Published,
	).Scan(
		&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.ImageURL, &p.Category,
		&p.ReadTime, &p.Featured, &p.Published, &p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}
	return p, nil
}

// List returns every post, newest first.
func (s *BlogPostStore) List(ctx context.Context) ([]models.BlogPost, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+blogPostColumns+`
		FROM blog_posts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()
	return scanBlogPosts(rows)
}

// ListPublished returns published posts with featured ones excluded,
// newest first.
func (s *BlogPostStore) ListPublished(ctx context.Context) ([]models.BlogPost, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+blogPostColumns+`
		FROM blog_posts
		WHERE published AND NOT featured
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list published blog posts: %w", err)
	}
	defer rows.Close()
	return scanBlogPosts(rows)
}

// GetByID retrieves a post by its UUID.
func (s *BlogPostStore) GetByID(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	p := &models.BlogPost{}
	err := s.db.QueryRowContext(ctx, `
		SELECT `+blogPostColumns+`
		FROM blog_posts WHERE id = $1
	`, id).Scan(
		&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.ImageURL, &p.Category,
		&p.ReadTime, &p.Featured, &p.Published, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get blog post: %w", err)
	}
	return p, nil
}

// GetFeatured returns the most recently created published featured post.
func (s *BlogPostStore) GetFeatured(ctx context.Context) (*models.BlogPost, error) {
	p := &models.BlogPost{}
	err := s.db.QueryRowContext(ctx, `
		SELECT `+blogPostColumns+`
		FROM blog_posts
		WHERE featured AND published
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(
		&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.ImageURL, &p.Category,
		&p.ReadTime, &p.Featured, &p.Published, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get featured blog post: %w", err)
	}
	return p, nil
}

// Update merges the patch onto the stored record and writes it back.
// Concurrent updates to the same id follow last-write-wins.
func (s *BlogPostStore) Update(ctx context.Context, id uuid.UUID, patch *models.BlogPostPatch) (*models.BlogPost, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(p)

	_, err = s.db.ExecContext(ctx, `
		UPDATE blog_posts SET
			title = $1, excerpt = $2, content = $3, image_url = $4,
			category = $5, read_time = $6, featured = $7, published = $8
		WHERE id = $9
	`, p.Title, p.Excerpt, p.Content, p.ImageURL,
		p.Category, p.ReadTime, p.Featured, p.Published, p.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update blog post: %w", err)
	}
	return p, nil
}

// Delete removes a post by id.
func (s *BlogPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of posts.
func (s *BlogPostStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blog_posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count blog posts: %w", err)
	}
	return count, nil
}

func scanBlogPosts(rows *sql.Rows) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	for rows.Next() {
		var p models.BlogPost
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.ImageURL, &p.Category,
			&p.ReadTime, &p.Featured, &p.Published, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
