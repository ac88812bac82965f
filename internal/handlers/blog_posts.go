package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"devfolio/internal/cache"
	"devfolio/internal/models"
	"devfolio/internal/store"
	"devfolio/internal/validate"
)

// BlogPosts groups the blog post API handlers. Public reads are served
// through the syncer; mutations hit the store directly and invalidate
// the affected keys afterwards.
type BlogPosts struct {
	store  store.BlogPosts
	syncer *cache.Syncer
}

// NewBlogPosts creates the blog post handler group.
func NewBlogPosts(s store.BlogPosts, syncer *cache.Syncer) *BlogPosts {
	return &BlogPosts{store: s, syncer: syncer}
}

// List serves the published listing, featured post excluded.
func (h *BlogPosts) List(w http.ResponseWriter, r *http.Request) {
	body, err := h.syncer.Read(r.Context(), cache.CollectionKey(cache.KindBlogPosts))
	if err != nil {
		internalError(w, r, "list blog posts failed", err)
		return
	}
	writeCached(w, "application/json; charset=utf-8", body)
}

// Featured serves the single featured post, or not_found when no
// published post carries the flag.
func (h *BlogPosts) Featured(w http.ResponseWriter, r *http.Request) {
	body, err := h.syncer.Read(r.Context(), cache.FeaturedKey)
	if errors.Is(err, store.ErrNotFound) {
		notFound(w, r)
		return
	}
	if err != nil {
		internalError(w, r, "featured blog post lookup failed", err)
		return
	}
	writeCached(w, "application/json; charset=utf-8", body)
}

// Get serves a single post by id. Unparseable ids read as missing
// records, not bad requests.
func (h *BlogPosts) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		notFound(w, r)
		return
	}

	body, err := h.syncer.Read(r.Context(), cache.RecordKey(cache.KindBlogPosts, id))
	if errors.Is(err, store.ErrNotFound) {
		notFound(w, r)
		return
	}
	if err != nil {
		internalError(w, r, "blog post lookup failed", err)
		return
	}
	writeCached(w, "application/json; charset=utf-8", body)
}

// GetHTML serves the post body rendered from markdown to HTML.
func (h *BlogPosts) GetHTML(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		notFound(w, r)
		return
	}

	body, err := h.syncer.Read(r.Context(), cache.RenderedKey(cache.KindBlogPosts, id))
	if errors.Is(err, store.ErrNotFound) {
		notFound(w, r)
		return
	}
	if err != nil {
		internalError(w, r, "blog post render failed", err)
		return
	}
	writeCached(w, "text/html; charset=utf-8", body)
}

// Create validates and persists a new post, then answers 201 with the
// full record including the assigned id and createdAt.
func (h *BlogPosts) Create(w http.ResponseWriter, r *http.Request) {
	var in models.BlogPostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badRequest(w, r)
		return
	}

	if errs := validate.BlogPost(&in); len(errs) > 0 {
		validationFailed(w, r, errs)
		return
	}

	created, err := h.store.Create(r.Context(), &in)
	if err != nil {
		internalError(w, r, "blog post create failed", err)
		return
	}

	h.syncer.Invalidate(cache.MutationKeys(cache.KindBlogPosts, created.ID, cache.MutationCreate)...)

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

// Update merges a partial payload onto an existing post. Unknown fields
// in the body, including id and createdAt, are silently ignored.
func (h *BlogPosts) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		notFound(w, r)
		return
	}

	var patch models.BlogPostPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, r)
		return
	}

	if errs := validate.BlogPostPatch(&patch); len(errs) > 0 {
		validationFailed(w, r, errs)
		return
	}

	updated, err := h.store.Update(r.Context(), id, &patch)
	if errors.Is(err, store.ErrNotFound) {
		notFound(w, r)
		return
	}
	if err != nil {
		internalError(w, r, "blog post update failed", err)
		return
	}

	h.syncer.Invalidate(cache.MutationKeys(cache.KindBlogPosts, id, cache.MutationUpdate)...)

	render.JSON(w, r, updated)
}

// Delete removes a post and answers 204.
func (h *BlogPosts) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		notFound(w, r)
		return
	}

	err = h.store.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		notFound(w, r)
		return
	}
	if err != nil {
		internalError(w, r, "blog post delete failed", err)
		return
	}

	h.syncer.Invalidate(cache.MutationKeys(cache.KindBlogPosts, id, cache.MutationDelete)...)

	w.WriteHeader(http.StatusNoContent)
}
