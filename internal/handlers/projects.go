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

// Projects groups the portfolio project API handlers, mirroring the blog
// post group minus the featured singleton and rendered-body routes.
type Projects struct {
	store  store.Projects
	syncer *cache.Syncer
}

// NewProjects creates the project handler group.
func NewProjects(s store.Projects, syncer *cache.Syncer) *Projects {
	return &Projects{store: s, syncer: syncer}
}

// List serves every published project.
func (h *Projects) List(w http.ResponseWriter, r *http.Request) {
	body, err := h.syncer.Read(r.Context(), cache.CollectionKey(cache.KindProjects))
	if err != nil {
		internalError(w, r, "list projects failed", err)
		return
	}
	writeCached(w, "application/json; charset=utf-8", body)
}

// Get serves a single project by id.
func (h *Projects) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		notFound(w, r)
		return
	}

	body, err := h.syncer.Read(r.Context(), cache.RecordKey(cache.KindProjects, id))
	if errors.Is(err, store.ErrNotFound) {
		notFound(w, r)
		return
	}
	if err != nil {
		internalError(w, r, "project lookup failed", err)
		return
	}
	writeCached(w, "application/json; charset=utf-8", body)
}

// Create validates and persists a new project.
func (h *Projects) Create(w http.ResponseWriter, r *http.Request) {
	var in models.ProjectInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badRequest(w, r)
		return
	}

	if errs := validate.Project(&in); len(errs) > 0 {
		validationFailed(w, r, errs)
		return
	}

	created, err := h.store.Create(r.Context(), &in)
	if err != nil {
		internalError(w, r, "project create failed", err)
		return
	}

	h.syncer.Invalidate(cache.MutationKeys(cache.KindProjects, created.ID, cache.MutationCreate)...)

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

// Update merges a partial payload onto an existing project.
func (h *Projects) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		notFound(w, r)
		return
	}

	var patch models.ProjectPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, r)
		return
	}

	if errs := validate.ProjectPatch(&patch); len(errs) > 0 {
		validationFailed(w, r, errs)
		return
	}

	updated, err := h.store.Update(r.Context(), id, &patch)
	if errors.Is(err, store.ErrNotFound) {
		notFound(w, r)
		return
	}
	if err != nil {
		internalError(w, r, "project update failed", err)
		return
	}

	h.syncer.Invalidate(cache.MutationKeys(cache.KindProjects, id, cache.MutationUpdate)...)

	render.JSON(w, r, updated)
}

// Delete removes a project and answers 204.
func (h *Projects) Delete(w http.ResponseWriter, r *http.Request) {
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
		internalError(w, r, "project delete failed", err)
		return
	}

	h.syncer.Invalidate(cache.MutationKeys(cache.KindProjects, id, cache.MutationDelete)...)

	w.WriteHeader(http.StatusNoContent)
}
