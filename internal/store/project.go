package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"devfolio/internal/models"
)

const projectColumns = `id, title, description, video_id, tech_stack,
       demo_url, github_url, featured, published, created_at`

// ProjectStore is the PostgreSQL implementation of Projects. The tech
// stack is stored as a jsonb array to keep its order and duplicates.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a ProjectStore over the given connection pool.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// Create inserts a new project. The database assigns id and created_at.
func (s *ProjectStore) Create(ctx context.Context, in *models.ProjectInput) (*models.Project, error) {
	stack, err := json.Marshal(in.TechStack)
	if err != nil {
		return nil, fmt.Errorf("encode tech stack: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO projects (title, description, video_id, tech_stack,
		                      demo_url, github_url, featured, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+projectColumns,
		in.Title, in.Description, in.VideoID, stack,
		in.DemoURL, in.GithubURL, *in.Featured, *in.Published,
	)
	p, err := scanProjectRow(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

// List returns every project, newest first.
func (s *ProjectStore) List(ctx context.Context) ([]models.Project, error) {
	return s.list(ctx, `
		SELECT `+projectColumns+`
		FROM projects
		ORDER BY created_at DESC
	`)
}

// ListPublished returns published projects, newest first.
func (s *ProjectStore) ListPublished(ctx context.Context) ([]models.Project, error) {
	return s.list(ctx, `
		SELECT `+projectColumns+`
		FROM projects
		WHERE published
		ORDER BY created_at DESC
	`)
}

func (s *ProjectStore) list(ctx context.Context, query string) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProjectRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// GetByID retrieves a project by its UUID.
func (s *ProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+projectColumns+`
		FROM projects WHERE id = $1
	`, id)
	p, err := scanProjectRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// Update merges the patch onto the stored record and writes it back.
func (s *ProjectStore) Update(ctx context.Context, id uuid.UUID, patch *models.ProjectPatch) (*models.Project, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(p)

	stack, err := json.Marshal(p.TechStack)
	if err != nil {
		return nil, fmt.Errorf("encode tech stack: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE projects SET
			title = $1, description = $2, video_id = $3, tech_stack = $4,
			demo_url = $5, github_url = $6, featured = $7, published = $8
		WHERE id = $9
	`, p.Title, p.Description, p.VideoID, stack,
		p.DemoURL, p.GithubURL, p.Featured, p.Published, p.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return p, nil
}

// Delete removes a project by id.
func (s *ProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of projects.
func (s *ProjectStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return count, nil
}

// scanProjectRow scans one project row, decoding the jsonb tech stack.
func scanProjectRow(scan func(dest ...any) error) (*models.Project, error) {
	p := &models.Project{}
	var stack []byte
	if err := scan(
		&p.ID, &p.Title, &p.Description, &p.VideoID, &stack,
		&p.DemoURL, &p.GithubURL, &p.Featured, &p.Published, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(stack, &p.TechStack); err != nil {
		return nil, fmt.Errorf("decode tech stack: %w", err)
	}
	return p, nil
}
