// Package cache keeps public reads and admin mutations pointing at the
// same state. A Syncer holds the last-fetched value for each cache key;
// mutations mark the affected keys stale through a single static table
// instead of ad hoc invalidation calls at every mutation site.
package cache

import (
	"github.com/google/uuid"
)

// Kind names a cached entity collection. Contact messages are write-only
// and never cached, so they have no kind here.
type Kind string

const (
	KindBlogPosts Kind = "blog-posts"
	KindProjects  Kind = "projects"
)

// Key identifies one cached read result: a collection, a single record,
// a rendered record body, or the featured singleton.
type Key string

// FeaturedKey is the singleton key for the featured blog post.
const FeaturedKey Key = "blog-posts/featured"

// CollectionKey returns the key for a kind's public listing.
func CollectionKey(kind Kind) Key {
	return Key(kind)
}

// RecordKey returns the key for a single record fetch.
func RecordKey(kind Kind, id uuid.UUID) Key {
	return Key(string(kind) + "/" + id.String())
}

// RenderedKey returns the key for a record's rendered HTML body.
func RenderedKey(kind Kind, id uuid.UUID) Key {
	return Key(string(kind) + "/" + id.String() + "/html")
}

// Mutation is the kind of store write that just settled.
type Mutation int

const (
	MutationCreate Mutation = iota
	MutationUpdate
	MutationDelete
)

// MutationKeys is the static invalidation table: given a settled mutation
// it returns every key that must go stale. Each mutation invalidates its
// kind's collection key; updates and deletes also invalidate the record
// keys for the affected id. Any blog post mutation invalidates the
// featured singleton, whether or not the featured flag changed — working
// out whether it could have changed is not worth the bookkeeping, and a
// stale featured post is a visible, recoverable error rather than a
// silent one.
func MutationKeys(kind Kind, id uuid.UUID, op Mutation) []Key {
	keys := []Key{CollectionKey(kind)}
	if op != MutationCreate {
		keys = append(keys, RecordKey(kind, id))
		if kind == KindBlogPosts {
			keys = append(keys, RenderedKey(kind, id))
		}
	}
	if kind == KindBlogPosts {
		keys = append(keys, FeaturedKey)
	}
	return keys
}
