package helpers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"weddinginvite/internal/domain"
)

// maxFormMemory is the in-memory threshold handed to ParseMultipartForm;
// larger parts spill to temp files.
const maxFormMemory = 32 << 20

// ParseMultipart parses the request as multipart/form-data. On failure it
// writes a 400 JSON error and returns false.
func ParseMultipart(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid multipart form: "+err.Error())
		return false
	}
	return true
}

// FormUpload reads a single optional file field. Returns nil when the field
// is absent.
func FormUpload(r *http.Request, field string) (*domain.Upload, error) {
	if r.MultipartForm == nil || len(r.MultipartForm.File[field]) == 0 {
		return nil, nil
	}
	return readUpload(r.MultipartForm.File[field][0])
}

// FormUploads reads all files submitted under a repeated file field, in
// submission order. Returns an empty slice when the field is absent.
func FormUploads(r *http.Request, field string) ([]*domain.Upload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[field]
	uploads := make([]*domain.Upload, 0, len(headers))
	for _, h := range headers {
		u, err := readUpload(h)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, u)
	}
	return uploads, nil
}

func readUpload(h *multipart.FileHeader) (*domain.Upload, error) {
	f, err := h.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file %q: %w", h.Filename, err)
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file %q: %w", h.Filename, err)
	}
	contentType := h.Header.Get("Content-Type")
	return &domain.Upload{
		Content:     content,
		ContentType: contentType,
		Size:        int64(len(content)),
	}, nil
}
