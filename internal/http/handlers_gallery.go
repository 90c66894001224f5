package httpx

import (
	"errors"
	"io/fs"
	"net/http"
	"os"

	"github.com/nextgen-academy/academy-api/internal/service"
)

// ImageOpener serves stored gallery files back to clients.
type ImageOpener interface {
	Open(path string) (*os.File, error)
}

// GalleryHandlers provides HTTP handlers for the image gallery.
type GalleryHandlers struct {
	Svc   *service.GalleryService
	Files ImageOpener
	// MaxUploadBytes bounds the multipart form memory; the image store
	// enforces the per-file limit.
	MaxUploadBytes int64
}

// List returns gallery entries, newest first.
// GET /api/gallery?limit=&offset=.
func (h *GalleryHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 20, 100)
	images, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"images": images})
}

// Upload stores an uploaded image and records a gallery entry.
// POST /api/admin/gallery, multipart form with "title" and "image" fields.
func (h *GalleryHandlers) Upload(w http.ResponseWriter, r *http.Request) {
	maxBytes := h.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_form", Err: err})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_image",
			Err:     errors.New("an image file is required"),
		})
		return
	}
	defer file.Close()

	image, err := h.Svc.Upload(r.Context(), r.FormValue("title"), header.Filename, file)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, image)
}

// Delete removes a gallery entry and its stored file.
// DELETE /api/admin/gallery/{id}.
func (h *GalleryHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Serve streams a stored gallery file.
// GET /images/{file}.
func (h *GalleryHandlers) Serve(w http.ResponseWriter, r *http.Request) {
	f, err := h.Files.Open(r.PathValue("file"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("invalid image path")})
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
