// Package handlers implements the JSON content API and the admin gate.
// Public reads go through the cache syncer; mutations validate, write to
// the store, and mark the affected cache keys stale.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"devfolio/internal/validate"
)

// errorBody is the uniform shape for non-validation API errors.
type errorBody struct {
	Kind string `json:"kind"`
}

// validationBody wraps the full list of field errors from a rejected payload.
type validationBody struct {
	FieldErrors []validate.FieldError `json:"fieldErrors"`
}

func badRequest(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, errorBody{Kind: "bad_request"})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusNotFound)
	render.JSON(w, r, errorBody{Kind: "not_found"})
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, errorBody{Kind: "unauthorized"})
}

// internalError logs the failure and answers with an opaque 500. The API
// never retries on the caller's behalf.
func internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg, "error", err, "path", r.URL.Path)
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, errorBody{Kind: "internal"})
}

// validationFailed answers 422 with every field error at once.
func validationFailed(w http.ResponseWriter, r *http.Request, errs []validate.FieldError) {
	render.Status(r, http.StatusUnprocessableEntity)
	render.JSON(w, r, validationBody{FieldErrors: errs})
}

// writeCached writes a syncer-served body verbatim. The syncer stores
// responses already encoded, so re-marshalling would only burn cycles.
func writeCached(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
