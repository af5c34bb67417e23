package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"weddinginvite/internal/delivery/http/helpers"
	"weddinginvite/internal/domain"
)

type GuestbookController struct {
	Logger  *slog.Logger
	Service domain.GuestbookService
}

func NewGuestbookController(logger *slog.Logger, svc domain.GuestbookService) *GuestbookController {
	return &GuestbookController{Logger: logger, Service: svc}
}

// writeEntryError maps errors for the per-entry secret surfaces (guestbook
// and reviews). Missing entry and wrong secret render identically.
func writeEntryError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrAuthenticationFailed):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "no matching entry")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}

// CreateGuestbookEntryRequest is the request body for POST /invitations/{slug}/guestbook.
type CreateGuestbookEntryRequest struct {
	Name    string `json:"name"`
	Secret  string `json:"secret"`
	Message string `json:"message"`
}

// Validate implements Validator.
func (c CreateGuestbookEntryRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.Secret == "" {
		errs = append(errs, "secret is required")
	}
	if c.Message == "" {
		errs = append(errs, "message is required")
	}
	return errs
}

// GuestbookEntrySuccessResponse is the success response envelope for guestbook entry endpoints.
type GuestbookEntrySuccessResponse struct {
	Data  *domain.GuestbookEntry `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// Create godoc
// @Summary Leave a guestbook message
// @Description Adds a message to the invitation's guestbook. The submitted secret becomes the credential for editing or deleting this entry.
// @Tags guestbook
// @Accept json
// @Produce json
// @Param slug path string true "Invitation slug"
// @Param body body CreateGuestbookEntryRequest true "Entry data"
// @Success 201 {object} controllers.GuestbookEntrySuccessResponse "data contains the created entry"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{slug}/guestbook [post]
func (c *GuestbookController) Create(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	var req CreateGuestbookEntryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	entry, err := c.Service.Create(r.Context(), slug, req.Name, req.Secret, req.Message)
	if err != nil {
		writeEntryError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, entry)
}

// ListGuestbookSuccessResponse is the success response envelope for GET /invitations/{slug}/guestbook (200).
type ListGuestbookSuccessResponse struct {
	Data  []*domain.GuestbookEntry `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// List godoc
// @Summary List guestbook messages
// @Description Returns the invitation's guestbook entries, newest first.
// @Tags guestbook
// @Produce json
// @Param slug path string true "Invitation slug"
// @Success 200 {object} controllers.ListGuestbookSuccessResponse "data is an array of entries"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{slug}/guestbook [get]
func (c *GuestbookController) List(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	entries, err := c.Service.List(r.Context(), slug)
	if err != nil {
		writeEntryError(c.Logger, w, r, err)
		return
	}
	if entries == nil {
		entries = []*domain.GuestbookEntry{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entries)
}

// UpdateGuestbookEntryRequest is the request body for PUT /guestbook/{entryID}.
type UpdateGuestbookEntryRequest struct {
	Secret  string `json:"secret"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Validate implements Validator.
func (u UpdateGuestbookEntryRequest) Validate() []string {
	var errs []string
	if u.Secret == "" {
		errs = append(errs, "secret is required")
	}
	if u.Name == "" {
		errs = append(errs, "name is required")
	}
	if u.Message == "" {
		errs = append(errs, "message is required")
	}
	return errs
}

// Update godoc
// @Summary Edit a guestbook message
// @Description Overwrites the entry's name and message after verifying its secret.
// @Tags guestbook
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param body body UpdateGuestbookEntryRequest true "Secret plus new content"
// @Success 200 {object} controllers.GuestbookEntrySuccessResponse "data contains the updated entry"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /guestbook/{entryID} [put]
func (c *GuestbookController) Update(w http.ResponseWriter, r *http.Request) {
	entryID := r.PathValue("entryID")
	if entryID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing entryID")
		return
	}
	var req UpdateGuestbookEntryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	entry, err := c.Service.Update(r.Context(), entryID, req.Secret, req.Name, req.Message)
	if err != nil {
		writeEntryError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entry)
}

// DeleteEntryRequest is the request body for guestbook and review deletes.
type DeleteEntryRequest struct {
	Secret string `json:"secret"`
}

// Validate implements Validator.
func (d DeleteEntryRequest) Validate() []string {
	if d.Secret == "" {
		return []string{"secret is required"}
	}
	return nil
}

// DeleteEntryResponse is the data payload for entry deletes (200).
type DeleteEntryResponse struct {
	Status string `json:"status"`
}

// DeleteEntrySuccessResponse is the success response envelope for entry deletes (200).
type DeleteEntrySuccessResponse struct {
	Data  DeleteEntryResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// Delete godoc
// @Summary Delete a guestbook message
// @Description Deletes the entry after verifying its secret.
// @Tags guestbook
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param body body DeleteEntryRequest true "Entry secret"
// @Success 200 {object} controllers.DeleteEntrySuccessResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /guestbook/{entryID} [delete]
func (c *GuestbookController) Delete(w http.ResponseWriter, r *http.Request) {
	entryID := r.PathValue("entryID")
	if entryID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing entryID")
		return
	}
	var req DeleteEntryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.Delete(r.Context(), entryID, req.Secret); err != nil {
		writeEntryError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteEntryResponse{Status: "deleted"})
}
