package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"association-reports/internal/app"
	"association-reports/internal/db"

	"github.com/go-chi/chi/v5"
)

type templateResponse struct {
	ID   string          `json:"id"`
	Kind string          `json:"kind"`
	Name string          `json:"name"`
	Body json.RawMessage `json:"body"`
}

type saveTemplateRequest struct {
	Kind string          `json:"kind"`
	Name string          `json:"name"`
	Body json.RawMessage `json:"body"`
}

// listTemplates handles GET /api/templates.
func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.svc.ListTemplates(r.Context())
	if err != nil {
		writeError(w, r, "failed to list templates: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, templates)
}

// getTemplate handles GET /api/templates/{id}.
func (h *Handler) getTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := h.svc.GetTemplate(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrTemplateNotFound) {
			writeError(w, r, "template "+id+" not found", "NOT_FOUND", http.StatusNotFound)
			return
		}
		writeError(w, r, "failed to load template: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, templateResponse{ID: rec.ID, Kind: rec.Kind, Name: rec.Name, Body: rec.Body})
}

// saveTemplate handles PUT /api/templates/{id}.
func (h *Handler) saveTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req saveTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "invalid JSON body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	err := h.svc.SaveTemplate(r.Context(), db.TemplateRecord{
		ID:   id,
		Kind: req.Kind,
		Name: req.Name,
		Body: req.Body,
	})
	if err != nil {
		if errors.Is(err, app.ErrNoTemplateStore) {
			writeError(w, r, err.Error(), "NOT_IMPLEMENTED", http.StatusNotImplemented)
			return
		}
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]string{"status": "saved", "id": id})
}
