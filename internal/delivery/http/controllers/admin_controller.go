package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"weddinginvite/internal/delivery/http/helpers"
	"weddinginvite/internal/domain"
	"weddinginvite/internal/services"
)

type AdminController struct {
	Logger    *slog.Logger
	Admin     *services.AdminService
	Retention domain.RetentionService
}

func NewAdminController(logger *slog.Logger, admin *services.AdminService, retention domain.RetentionService) *AdminController {
	return &AdminController{Logger: logger, Admin: admin, Retention: retention}
}

// AdminLoginRequest is the request body for POST /admin/login.
type AdminLoginRequest struct {
	Secret string `json:"secret"`
}

// Validate implements Validator.
func (a AdminLoginRequest) Validate() []string {
	if a.Secret == "" {
		return []string{"secret is required"}
	}
	return nil
}

// AdminLoginResponse is the data payload for POST /admin/login (200).
type AdminLoginResponse struct {
	Token string `json:"token"`
}

// AdminLoginSuccessResponse is the success response envelope for POST /admin/login (200).
type AdminLoginSuccessResponse struct {
	Data  AdminLoginResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// Login godoc
// @Summary Operator login
// @Description Exchanges the operator secret for an admin token that gates the retention surface.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body AdminLoginRequest true "Operator secret"
// @Success 200 {object} controllers.AdminLoginSuccessResponse "data contains the admin token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/login [post]
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Admin.Login(req.Secret)
	if err != nil {
		if errors.Is(err, domain.ErrAuthenticationFailed) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AdminLoginResponse{Token: token})
}

// SweepSuccessResponse is the success response envelope for POST /admin/retention/sweep (200).
type SweepSuccessResponse struct {
	Data  *domain.RetentionReport `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// Sweep godoc
// @Summary Run the retention sweep
// @Description Purges every invitation whose wedding date is past the retention window, together with its media directory. Safe to trigger repeatedly. Requires an admin Bearer token or the X-Cron-Key header.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.SweepSuccessResponse "data contains the sweep report"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/retention/sweep [post]
func (c *AdminController) Sweep(w http.ResponseWriter, r *http.Request) {
	report, err := c.Retention.Sweep(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, report)
}
