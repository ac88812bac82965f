package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"

	"devfolio/internal/models"
	"devfolio/internal/store"
	"devfolio/internal/validate"
)

// Contact accepts contact form submissions. Messages are write-only:
// there is no public or admin read path, so nothing here touches the
// cache syncer.
type Contact struct {
	store store.ContactMessages
}

// NewContact creates the contact message handler.
func NewContact(s store.ContactMessages) *Contact {
	return &Contact{store: s}
}

// Create validates and persists a submission, answering 201 with the
// stored record.
func (h *Contact) Create(w http.ResponseWriter, r *http.Request) {
	var in models.ContactMessageInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badRequest(w, r)
		return
	}

	if errs := validate.ContactMessage(&in); len(errs) > 0 {
		validationFailed(w, r, errs)
		return
	}

	created, err := h.store.Create(r.Context(), &in)
	if err != nil {
		internalError(w, r, "contact message create failed", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}
