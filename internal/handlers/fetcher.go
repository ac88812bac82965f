package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"devfolio/internal/cache"
	"devfolio/internal/markdown"
	"devfolio/internal/store"
)

// NewFetcher builds the syncer's fetch function over the content stores.
// It is the only place that maps cache keys back to store reads, so the
// key grammar (collection, record, rendered, featured) lives here and in
// the cache package and nowhere else. Store misses surface as
// store.ErrNotFound for the handlers to translate.
func NewFetcher(posts store.BlogPosts, projects store.Projects) cache.Fetcher {
	return func(ctx context.Context, key cache.Key) ([]byte, error) {
		switch key {
		case cache.FeaturedKey:
			post, err := posts.GetFeatured(ctx)
			if err != nil {
				return nil, err
			}
			return json.Marshal(post)
		case cache.CollectionKey(cache.KindBlogPosts):
			list, err := posts.ListPublished(ctx)
			if err != nil {
				return nil, err
			}
			return json.Marshal(list)
		case cache.CollectionKey(cache.KindProjects):
			list, err := projects.ListPublished(ctx)
			if err != nil {
				return nil, err
			}
			return json.Marshal(list)
		}

		parts := strings.Split(string(key), "/")
		if len(parts) < 2 {
			return nil, fmt.Errorf("fetch: unknown cache key %q", key)
		}

		id, err := uuid.Parse(parts[1])
		if err != nil {
			return nil, store.ErrNotFound
		}

		switch cache.Kind(parts[0]) {
		case cache.KindBlogPosts:
			post, err := posts.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if len(parts) == 3 && parts[2] == "html" {
				html, err := markdown.ToHTML(post.Content)
				if err != nil {
					return nil, fmt.Errorf("fetch: render post %s: %w", id, err)
				}
				return []byte(html), nil
			}
			return json.Marshal(post)
		case cache.KindProjects:
			project, err := projects.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return json.Marshal(project)
		}

		return nil, fmt.Errorf("fetch: unknown cache key %q", key)
	}
}
