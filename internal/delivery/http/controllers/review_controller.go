package controllers

import (
	"log/slog"
	"net/http"

	"weddinginvite/internal/delivery/http/helpers"
	"weddinginvite/internal/domain"
)

type ReviewController struct {
	Logger  *slog.Logger
	Service domain.ReviewService
}

func NewReviewController(logger *slog.Logger, svc domain.ReviewService) *ReviewController {
	return &ReviewController{Logger: logger, Service: svc}
}

// CreateReviewRequest is the request body for POST /reviews.
type CreateReviewRequest struct {
	Name    string `json:"name"`
	Secret  string `json:"secret"`
	Content string `json:"content"`
	Rating  *int   `json:"rating"`
}

// Validate implements Validator.
func (c CreateReviewRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.Secret == "" {
		errs = append(errs, "secret is required")
	}
	if c.Content == "" {
		errs = append(errs, "content is required")
	}
	if c.Rating != nil && (*c.Rating < 1 || *c.Rating > 5) {
		errs = append(errs, "rating must be between 1 and 5")
	}
	return errs
}

// ReviewSuccessResponse is the success response envelope for single-review endpoints.
type ReviewSuccessResponse struct {
	Data  *domain.ReviewEntry `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// Create godoc
// @Summary Post a review
// @Description Creates a site-wide review of the service with an optional 1-5 rating. The submitted secret becomes the credential for editing or deleting the review.
// @Tags reviews
// @Accept json
// @Produce json
// @Param body body CreateReviewRequest true "Review data"
// @Success 201 {object} controllers.ReviewSuccessResponse "data contains the created review"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reviews [post]
func (c *ReviewController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	entry, err := c.Service.Create(r.Context(), req.Name, req.Secret, req.Content, req.Rating)
	if err != nil {
		writeEntryError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, entry)
}

// ListReviewsResponse is the data payload for GET /reviews (200).
type ListReviewsResponse struct {
	Items      []*domain.ReviewEntry  `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListReviewsSuccessResponse is the success response envelope for GET /reviews (200).
type ListReviewsSuccessResponse struct {
	Data  ListReviewsResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// List godoc
// @Summary List reviews
// @Description Returns reviews newest first, offset-paginated via page and page_size query params.
// @Tags reviews
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListReviewsSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reviews [get]
func (c *ReviewController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	entries, total, err := c.Service.List(r.Context(), params)
	if err != nil {
		writeEntryError(c.Logger, w, r, err)
		return
	}
	if entries == nil {
		entries = []*domain.ReviewEntry{}
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListReviewsResponse{Items: entries, Pagination: meta})
}

// UpdateReviewRequest is the request body for PUT /reviews/{reviewID}.
type UpdateReviewRequest struct {
	Secret  string `json:"secret"`
	Content string `json:"content"`
	Rating  *int   `json:"rating"`
}

// Validate implements Validator.
func (u UpdateReviewRequest) Validate() []string {
	var errs []string
	if u.Secret == "" {
		errs = append(errs, "secret is required")
	}
	if u.Content == "" {
		errs = append(errs, "content is required")
	}
	if u.Rating != nil && (*u.Rating < 1 || *u.Rating > 5) {
		errs = append(errs, "rating must be between 1 and 5")
	}
	return errs
}

// Update godoc
// @Summary Edit a review
// @Description Overwrites the review's content and rating after verifying its secret.
// @Tags reviews
// @Accept json
// @Produce json
// @Param reviewID path string true "Review ID"
// @Param body body UpdateReviewRequest true "Secret plus new content"
// @Success 200 {object} controllers.ReviewSuccessResponse "data contains the updated review"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reviews/{reviewID} [put]
func (c *ReviewController) Update(w http.ResponseWriter, r *http.Request) {
	reviewID := r.PathValue("reviewID")
	if reviewID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing reviewID")
		return
	}
	var req UpdateReviewRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	entry, err := c.Service.Update(r.Context(), reviewID, req.Secret, req.Content, req.Rating)
	if err != nil {
		writeEntryError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entry)
}

// Delete godoc
// @Summary Delete a review
// @Description Deletes the review after verifying its secret.
// @Tags reviews
// @Accept json
// @Produce json
// @Param reviewID path string true "Review ID"
// @Param body body DeleteEntryRequest true "Review secret"
// @Success 200 {object} controllers.DeleteEntrySuccessResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reviews/{reviewID} [delete]
func (c *ReviewController) Delete(w http.ResponseWriter, r *http.Request) {
	reviewID := r.PathValue("reviewID")
	if reviewID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing reviewID")
		return
	}
	var req DeleteEntryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.Delete(r.Context(), reviewID, req.Secret); err != nil {
		writeEntryError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteEntryResponse{Status: "deleted"})
}
