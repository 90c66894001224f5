package httpx

import (
	"net/http"

	"github.com/nextgen-academy/academy-api/internal/domain/model"
	"github.com/nextgen-academy/academy-api/internal/service"
)

// FAQHandlers provides HTTP handlers for FAQ entries.
type FAQHandlers struct {
	Svc *service.FAQService
}

// List returns all FAQ entries in display order.
// GET /api/faqs.
func (h *FAQHandlers) List(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.Svc.List(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"faqs": faqs})
}

// Create adds an FAQ entry.
// POST /api/admin/faqs.
func (h *FAQHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateFAQRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	faq, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, faq)
}

// Update applies a partial update.
// PATCH /api/admin/faqs/{id}.
func (h *FAQHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateFAQRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	faq, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, faq)
}

// Delete removes an FAQ entry.
// DELETE /api/admin/faqs/{id}.
func (h *FAQHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
