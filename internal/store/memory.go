package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"devfolio/internal/models"
)

// memoryRecord pairs an entity with an insertion sequence number so that
// records created within the same clock tick still order deterministically.
type memoryRecord[T any] struct {
	value T
	seq   uint64
}

// MemoryBlogPosts is the in-memory implementation of BlogPosts, used by
// unit tests and the database-free development backend.
type MemoryBlogPosts struct {
	mu    sync.RWMutex
	posts map[uuid.UUID]memoryRecord[models.BlogPost]
	seq   uint64
}

// NewMemoryBlogPosts creates an empty in-memory blog post store.
func NewMemoryBlogPosts() *MemoryBlogPosts {
	return &MemoryBlogPosts{posts: make(map[uuid.UUID]memoryRecord[models.BlogPost])}
}

func (s *MemoryBlogPosts) Create(ctx context.Context, in *models.BlogPostInput) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	p := models.BlogPost{
		ID:        uuid.New(),
		Title:     in.Title,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		ImageURL:  in.ImageURL,
		Category:  in.Category,
		ReadTime:  in.ReadTime,
		Featured:  *in.Featured,
		Published: *in.Published,
		CreatedAt: time.Now().UTC(),
	}
	s.posts[p.ID] = memoryRecord[models.BlogPost]{value: p, seq: s.seq}
	return &p, nil
}

func (s *MemoryBlogPosts) List(ctx context.Context) ([]models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(models.BlogPost) bool { return true }), nil
}

func (s *MemoryBlogPosts) ListPublished(ctx context.Context) ([]models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(p models.BlogPost) bool { return p.Published && !p.Featured }), nil
}

func (s *MemoryBlogPosts) GetByID(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	p := rec.value
	return &p, nil
}

func (s *MemoryBlogPosts) GetFeatured(ctx context.Context) (*models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	featured := s.collect(func(p models.BlogPost) bool { return p.Featured && p.Published })
	if len(featured) == 0 {
		return nil, ErrNotFound
	}
	p := featured[0]
	return &p, nil
}

func (s *MemoryBlogPosts) Update(ctx context.Context, id uuid.UUID, patch *models.BlogPostPatch) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&rec.value)
	s.posts[id] = rec
	p := rec.value
	return &p, nil
}

func (s *MemoryBlogPosts) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return ErrNotFound
	}
	delete(s.posts, id)
	return nil
}

func (s *MemoryBlogPosts) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts), nil
}

// collect returns matching posts newest first. Callers hold the lock.
func (s *MemoryBlogPosts) collect(match func(models.BlogPost) bool) []models.BlogPost {
	recs := make([]memoryRecord[models.BlogPost], 0, len(s.posts))
	for _, rec := range s.posts {
		if match(rec.value) {
			recs = append(recs, rec)
		}
	}
	sortNewestFirst(recs, func(p models.BlogPost) time.Time { return p.CreatedAt })
	posts := make([]models.BlogPost, len(recs))
	for i, rec := range recs {
		posts[i] = rec.value
	}
	return posts
}

// MemoryProjects is the in-memory implementation of Projects.
type MemoryProjects struct {
	mu       sync.RWMutex
	projects map[uuid.UUID]memoryRecord[models.Project]
	seq      uint64
}

// NewMemoryProjects creates an empty in-memory project store.
func NewMemoryProjects() *MemoryProjects {
	return &MemoryProjects{projects: make(map[uuid.UUID]memoryRecord[models.Project])}
}

func (s *MemoryProjects) Create(ctx context.Context, in *models.ProjectInput) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	p := models.Project{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		VideoID:     in.VideoID,
		TechStack:   append([]string(nil), in.TechStack...),
		DemoURL:     in.DemoURL,
		GithubURL:   in.GithubURL,
		Featured:    *in.Featured,
		Published:   *in.Published,
		CreatedAt:   time.Now().UTC(),
	}
	s.projects[p.ID] = memoryRecord[models.Project]{value: p, seq: s.seq}
	return &p, nil
}

func (s *MemoryProjects) List(ctx context.Context) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(models.Project) bool { return true }), nil
}

func (s *MemoryProjects) ListPublished(ctx context.Context) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(p models.Project) bool { return p.Published }), nil
}

func (s *MemoryProjects) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	p := rec.value
	return &p, nil
}

func (s *MemoryProjects) Update(ctx context.Context, id uuid.UUID, patch *models.ProjectPatch) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&rec.value)
	s.projects[id] = rec
	p := rec.value
	return &p, nil
}

func (s *MemoryProjects) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return ErrNotFound
	}
	delete(s.projects, id)
	return nil
}

func (s *MemoryProjects) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.projects), nil
}

func (s *MemoryProjects) collect(match func(models.Project) bool) []models.Project {
	recs := make([]memoryRecord[models.Project], 0, len(s.projects))
	for _, rec := range s.projects {
		if match(rec.value) {
			recs = append(recs, rec)
		}
	}
	sortNewestFirst(recs, func(p models.Project) time.Time { return p.CreatedAt })
	projects := make([]models.Project, len(recs))
	for i, rec := range recs {
		projects[i] = rec.value
	}
	return projects
}

// MemoryContactMessages is the in-memory implementation of ContactMessages.
type MemoryContactMessages struct {
	mu       sync.Mutex
	messages []models.ContactMessage
}

// NewMemoryContactMessages creates an empty in-memory message sink.
func NewMemoryContactMessages() *MemoryContactMessages {
	return &MemoryContactMessages{}
}

func (s *MemoryContactMessages) Create(ctx context.Context, in *models.ContactMessageInput) (*models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := models.ContactMessage{
		ID:        uuid.New(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}
	s.messages = append(s.messages, m)
	return &m, nil
}

func (s *MemoryContactMessages) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages), nil
}

// sortNewestFirst orders records by creation time descending, breaking
// same-timestamp ties by insertion order.
func sortNewestFirst[T any](recs []memoryRecord[T], createdAt func(T) time.Time) {
	sort.Slice(recs, func(i, j int) bool {
		ti, tj := createdAt(recs[i].value), createdAt(recs[j].value)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return recs[i].seq > recs[j].seq
	})
}
