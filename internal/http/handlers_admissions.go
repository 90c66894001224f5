package httpx

import (
	"net/http"

	"github.com/nextgen-academy/academy-api/internal/domain/model"
	"github.com/nextgen-academy/academy-api/internal/service"
)

// AdmissionHandlers provides HTTP handlers for admission submissions.
type AdmissionHandlers struct {
	Svc *service.AdmissionService
}

// Submit records a public admission form submission.
// POST /api/admissions.
func (h *AdmissionHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAdmissionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	admission, err := h.Svc.Submit(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, admission)
}

// List returns submissions for the back-office, newest first.
// GET /api/admin/admissions?status=&course=&limit=&offset=.
func (h *AdmissionHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 20, 100)
	opts := model.AdmissionsListOptions{
		Status: optionalQuery(r, "status"),
		Course: optionalQuery(r, "course"),
		Limit:  limit,
		Offset: offset,
	}

	admissions, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"admissions": admissions})
}

// Get returns one submission.
// GET /api/admin/admissions/{id}.
func (h *AdmissionHandlers) Get(w http.ResponseWriter, r *http.Request) {
	admission, err := h.Svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, admission)
}

// UpdateStatus moves a submission through the review workflow.
// PATCH /api/admin/admissions/{id}/status {"status": ...}.
func (h *AdmissionHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateAdmissionStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	admission, err := h.Svc.UpdateStatus(r.Context(), r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, admission)
}

// Delete removes a submission.
// DELETE /api/admin/admissions/{id}.
func (h *AdmissionHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
