package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"weddinginvite/internal/delivery/http/helpers"
	"weddinginvite/internal/delivery/http/middleware"
	"weddinginvite/internal/domain"
)

// writeInvitationError maps service errors on the owner surface. A missing
// invitation and a failed secret render identically so callers cannot probe
// which slugs or secrets exist.
func writeInvitationError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnsupportedMedia):
		helpers.WriteJSONError(w, http.StatusUnsupportedMediaType, helpers.ErrCodeUnsupportedMedia, "unsupported image type")
	case errors.Is(err, domain.ErrPayloadTooLarge):
		helpers.WriteJSONError(w, http.StatusRequestEntityTooLarge, helpers.ErrCodePayloadTooLarge, "file exceeds the size limit")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrAuthenticationFailed):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "no matching invitation")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

func NewInvitationController(logger *slog.Logger, svc domain.InvitationService) *InvitationController {
	return &InvitationController{Logger: logger, Service: svc}
}

// parseWeddingDate accepts RFC 3339 or a bare date.
func parseWeddingDate(raw string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// invitationFieldsFromForm reads the scalar form values of a multipart
// create or update request. Field-level validation happens in the service.
func invitationFieldsFromForm(r *http.Request) (domain.InvitationFields, bool) {
	fields := domain.InvitationFields{
		GroomName:    r.FormValue("groom_name"),
		GroomContact: r.FormValue("groom_contact"),
		GroomFather:  r.FormValue("groom_father"),
		GroomMother:  r.FormValue("groom_mother"),
		BrideName:    r.FormValue("bride_name"),
		BrideContact: r.FormValue("bride_contact"),
		BrideFather:  r.FormValue("bride_father"),
		BrideMother:  r.FormValue("bride_mother"),
		VenueName:    r.FormValue("venue_name"),
		VenueDetail:  r.FormValue("venue_detail"),
		VenueAddress: r.FormValue("venue_address"),
		WelcomeMsg:   r.FormValue("welcome_msg"),
		TransitInfo:  r.FormValue("transit_info"),
		Template:     r.FormValue("template"),
	}
	if raw := r.FormValue("wedding_date"); raw != "" {
		t, ok := parseWeddingDate(raw)
		if !ok {
			return fields, false
		}
		fields.WeddingDate = t
	}
	return fields, true
}

// childrenFromForm decodes the JSON-encoded accounts and interviews form
// fields. An absent field stays nil, meaning "leave unchanged" on update.
func childrenFromForm(r *http.Request) (domain.ChildReplacements, error) {
	var repl domain.ChildReplacements
	if raw := r.FormValue("accounts"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &repl.Accounts); err != nil {
			return repl, errors.New("accounts must be a JSON array")
		}
		if repl.Accounts == nil {
			repl.Accounts = []*domain.AccountEntry{}
		}
	}
	if raw := r.FormValue("interviews"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &repl.Interviews); err != nil {
			return repl, errors.New("interviews must be a JSON array")
		}
		if repl.Interviews == nil {
			repl.Interviews = []*domain.InterviewEntry{}
		}
	}
	return repl, nil
}

func uploadsFromForm(w http.ResponseWriter, r *http.Request) (*domain.InvitationUploads, bool) {
	main, err := helpers.FormUploads(r, "main_images")
	if err == nil {
		var gallery []*domain.Upload
		gallery, err = helpers.FormUploads(r, "gallery_images")
		if err == nil {
			uploads := &domain.InvitationUploads{MainImages: main, GalleryImages: gallery}
			if uploads.MiddleImage, err = helpers.FormUpload(r, "middle_image"); err == nil {
				if uploads.OgImage, err = helpers.FormUpload(r, "og_image"); err == nil {
					return uploads, true
				}
			}
		}
	}
	helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	return nil, false
}

// CreateInvitationSuccessResponse is the success response envelope for POST /invitations (201).
type CreateInvitationSuccessResponse struct {
	Data  *domain.Invitation `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// Create godoc
// @Summary Create an invitation
// @Description Creates a wedding invitation page from a multipart form. Scalar fields are form values; accounts and interviews are JSON-encoded form fields; images are file fields (main_images 1-3, gallery_images 1+, optional middle_image and og_image). The server allocates the slug; the submitted secret becomes the edit credential.
// @Tags invitations
// @Accept multipart/form-data
// @Produce json
// @Param groom_name formData string true "Groom name"
// @Param bride_name formData string true "Bride name"
// @Param wedding_date formData string true "Wedding date (RFC 3339 or YYYY-MM-DD)"
// @Param secret formData string true "Owner secret (4-6 characters)"
// @Param main_images formData file true "Main images (1-3)"
// @Success 201 {object} controllers.CreateInvitationSuccessResponse "data contains the created invitation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 413 {object} helpers.APIResponse "error.code: payload_too_large"
// @Failure 415 {object} helpers.APIResponse "error.code: unsupported_media"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations [post]
func (c *InvitationController) Create(w http.ResponseWriter, r *http.Request) {
	if !helpers.ParseMultipart(w, r) {
		return
	}
	fields, ok := invitationFieldsFromForm(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "wedding_date must be RFC 3339 or YYYY-MM-DD")
		return
	}
	repl, err := childrenFromForm(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	uploads, ok := uploadsFromForm(w, r)
	if !ok {
		return
	}

	inv, err := c.Service.Create(r.Context(), fields, r.FormValue("secret"), uploads, repl)
	if err != nil {
		writeInvitationError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, inv)
}

// GetInvitationSuccessResponse is the success response envelope for GET /invitations/{slug} (200).
type GetInvitationSuccessResponse struct {
	Data  *domain.Invitation `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// Get godoc
// @Summary Get an invitation by slug
// @Description Returns the full invitation aggregate: scalar fields, gallery, accounts, and interviews. Public, no authentication.
// @Tags invitations
// @Produce json
// @Param slug path string true "Invitation slug"
// @Success 200 {object} controllers.GetInvitationSuccessResponse "data contains the invitation"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{slug} [get]
func (c *InvitationController) Get(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	inv, err := c.Service.Get(r.Context(), slug)
	if err != nil {
		writeInvitationError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, inv)
}

// AuthenticateRequest is the request body for POST /invitations/{slug}/auth.
type AuthenticateRequest struct {
	Secret string `json:"secret"`
}

// Validate implements Validator.
func (a AuthenticateRequest) Validate() []string {
	if a.Secret == "" {
		return []string{"secret is required"}
	}
	return nil
}

// AuthenticateResponse is the data payload for POST /invitations/{slug}/auth (200).
type AuthenticateResponse struct {
	Token string `json:"token"`
}

// AuthenticateSuccessResponse is the success response envelope for POST /invitations/{slug}/auth (200).
type AuthenticateSuccessResponse struct {
	Data  AuthenticateResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// Authenticate godoc
// @Summary Verify the owner secret
// @Description Verifies the secret against the invitation and returns a short-lived edit token for subsequent updates. A wrong secret and an unknown slug are indistinguishable.
// @Tags invitations
// @Accept json
// @Produce json
// @Param slug path string true "Invitation slug"
// @Param body body AuthenticateRequest true "Owner secret"
// @Success 200 {object} controllers.AuthenticateSuccessResponse "data contains the edit token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{slug}/auth [post]
func (c *InvitationController) Authenticate(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	var req AuthenticateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Service.Authenticate(r.Context(), slug, req.Secret)
	if err != nil {
		writeInvitationError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AuthenticateResponse{Token: token})
}

// UpdateInvitationSuccessResponse is the success response envelope for PUT /invitations/{slug} (200).
type UpdateInvitationSuccessResponse struct {
	Data  *domain.Invitation `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// Update godoc
// @Summary Update an invitation
// @Description Overwrites the invitation's scalar fields from a multipart form and stores any newly submitted images. Submitted accounts or interviews fields replace the whole collection; absent fields leave it untouched. Authenticate with the secret form value or a Bearer edit token.
// @Tags invitations
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Invitation slug"
// @Success 200 {object} controllers.UpdateInvitationSuccessResponse "data contains the updated invitation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 413 {object} helpers.APIResponse "error.code: payload_too_large"
// @Failure 415 {object} helpers.APIResponse "error.code: unsupported_media"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{slug} [put]
func (c *InvitationController) Update(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	if !helpers.ParseMultipart(w, r) {
		return
	}
	fields, ok := invitationFieldsFromForm(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "wedding_date must be RFC 3339 or YYYY-MM-DD")
		return
	}
	repl, err := childrenFromForm(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	uploads, ok := uploadsFromForm(w, r)
	if !ok {
		return
	}
	auth := domain.OwnerAuth{
		Secret: r.FormValue("secret"),
		Token:  middleware.BearerToken(r),
	}
	inv, err := c.Service.Update(r.Context(), slug, auth, fields, uploads, repl)
	if err != nil {
		writeInvitationError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, inv)
}

// DeleteInvitationRequest is the optional request body for DELETE /invitations/{slug}.
type DeleteInvitationRequest struct {
	Secret string `json:"secret"`
}

// DeleteInvitationResponse is the data payload for DELETE /invitations/{slug} (200).
type DeleteInvitationResponse struct {
	Status string `json:"status"`
}

// DeleteInvitationSuccessResponse is the success response envelope for DELETE /invitations/{slug} (200).
type DeleteInvitationSuccessResponse struct {
	Data  DeleteInvitationResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// Delete godoc
// @Summary Delete an invitation
// @Description Deletes the invitation, its child collections, and its media directory. Authenticate with {"secret": ...} in the body or a Bearer edit token.
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Invitation slug"
// @Param body body DeleteInvitationRequest false "Owner secret (omit when using a Bearer token)"
// @Success 200 {object} controllers.DeleteInvitationSuccessResponse "data contains status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{slug} [delete]
func (c *InvitationController) Delete(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	var req DeleteInvitationRequest
	if r.Body != nil && r.ContentLength != 0 {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	auth := domain.OwnerAuth{Secret: req.Secret, Token: middleware.BearerToken(r)}
	if err := c.Service.Delete(r.Context(), slug, auth); err != nil {
		writeInvitationError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteInvitationResponse{Status: "deleted"})
}

// LookupRequest is the request body for POST /invitations/lookup.
type LookupRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Secret  string `json:"secret"`
}

// Validate implements Validator.
func (l LookupRequest) Validate() []string {
	var errs []string
	if l.Name == "" {
		errs = append(errs, "name is required")
	}
	if l.Contact == "" {
		errs = append(errs, "contact is required")
	}
	if l.Secret == "" {
		errs = append(errs, "secret is required")
	}
	return errs
}

// LookupSuccessResponse is the success response envelope for POST /invitations/lookup (200).
type LookupSuccessResponse struct {
	Data  []*domain.Invitation `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// Lookup godoc
// @Summary Find invitations by party name and contact
// @Description Self-service lookup for owners who lost the share link: returns every invitation whose groom or bride name/contact pair matches and whose secret verifies.
// @Tags invitations
// @Accept json
// @Produce json
// @Param body body LookupRequest true "Party name, contact, and secret"
// @Success 200 {object} controllers.LookupSuccessResponse "data is an array of matching invitations"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/lookup [post]
func (c *InvitationController) Lookup(w http.ResponseWriter, r *http.Request) {
	var req LookupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	matched, err := c.Service.Lookup(r.Context(), req.Name, req.Contact, req.Secret)
	if err != nil {
		writeInvitationError(c.Logger, w, r, err)
		return
	}
	if matched == nil {
		matched = []*domain.Invitation{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, matched)
}
