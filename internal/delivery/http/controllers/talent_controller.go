package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"venuehub/internal/delivery/http/helpers"
	"venuehub/internal/delivery/http/middleware"
	"venuehub/internal/domain"
)

// CreateTalentRequest is the request body for POST /talents. The credential
// is write-only: it is hashed server-side and never returned.
type CreateTalentRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Domain      string `json:"domain"`
	Description string `json:"description"`
	IsTalent    bool   `json:"is_talent"`
	Credential  string `json:"credential"`
}

// Validate implements Validator.
func (c CreateTalentRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, "email is required")
	}
	if strings.TrimSpace(c.Credential) == "" {
		errs = append(errs, "credential is required")
	}
	return errs
}

// UpdateTalentRequest is the request body for PUT /talents/{id}. All fields
// optional; omitted fields are unchanged. A credential, when present, is the
// new plaintext credential to hash.
type UpdateTalentRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Domain      *string `json:"domain"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
	IsTalent    *bool   `json:"is_talent"`
	Credential  *string `json:"credential"`
}

// Validate implements Validator.
func (u UpdateTalentRequest) Validate() []string {
	var errs []string
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, "name cannot be empty")
	}
	if u.Email != nil && strings.TrimSpace(*u.Email) == "" {
		errs = append(errs, "email cannot be empty")
	}
	if u.Status != nil && !domain.ValidTalentStatus(domain.TalentStatus(*u.Status)) {
		errs = append(errs, "status must be one of pending_validation, active, inactive")
	}
	return errs
}

// TalentSuccessResponse is the success response envelope carrying a single talent.
type TalentSuccessResponse struct {
	Data  *domain.Talent    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListTalentsSuccessResponse is the success response envelope for GET /talents (200).
type ListTalentsSuccessResponse struct {
	Data  []*domain.Talent  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type TalentController struct {
	Logger  *slog.Logger
	Service domain.TalentService
}

func NewTalentController(logger *slog.Logger, svc domain.TalentService) *TalentController {
	return &TalentController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List talents
// @Description Returns the talent directory. Credentials are never included. No authentication required.
// @Tags talents
// @Produce json
// @Success 200 {object} controllers.ListTalentsSuccessResponse "data is an array of talents"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /talents [get]
func (c *TalentController) List(w http.ResponseWriter, r *http.Request) {
	talents, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if talents == nil {
		talents = []*domain.Talent{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, talents)
}

// GetByID godoc
// @Summary Get a talent by ID
// @Description Returns a single talent profile. The credential is never included. No authentication required.
// @Tags talents
// @Produce json
// @Param id path string true "Talent ID"
// @Success 200 {object} controllers.TalentSuccessResponse "data contains the talent"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /talents/{id} [get]
func (c *TalentController) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	talent, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "talent not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, talent)
}

// Create godoc
// @Summary Register a talent account
// @Description Creates a talent account in pending_validation status. The credential is hashed and never echoed back. Requires authentication.
// @Tags talents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param talent body CreateTalentRequest true "Talent data"
// @Success 201 {object} controllers.TalentSuccessResponse "data contains the created talent, without credential"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email already registered)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /talents [post]
func (c *TalentController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTalentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	talent := &domain.Talent{
		Name:        req.Name,
		Email:       req.Email,
		Domain:      req.Domain,
		Description: req.Description,
		IsTalent:    req.IsTalent,
	}
	if err := c.Service.Create(r.Context(), talent, req.Credential); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "email already registered")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, talent)
}

// Update godoc
// @Summary Update a talent account
// @Description Partially updates a talent profile. Omitted fields are unchanged; a supplied credential is re-hashed. Requires authentication.
// @Tags talents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Talent ID"
// @Param talent body UpdateTalentRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.TalentSuccessResponse "data contains the updated talent"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email already registered)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /talents/{id} [put]
func (c *TalentController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	var req UpdateTalentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	patch := domain.TalentPatch{
		Name:        req.Name,
		Email:       req.Email,
		Domain:      req.Domain,
		Description: req.Description,
		IsTalent:    req.IsTalent,
		Credential:  req.Credential,
	}
	if req.Status != nil {
		status := domain.TalentStatus(*req.Status)
		patch.Status = &status
	}
	talent, err := c.Service.Patch(r.Context(), id, patch, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "talent not found")
			return
		}
		if errors.Is(err, domain.ErrDuplicateEmail) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "email already registered")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, talent)
}

// Delete godoc
// @Summary Delete a talent account
// @Description Removes a talent account. Requires the super_admin role.
// @Tags talents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Talent ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /talents/{id} [delete]
func (c *TalentController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.Delete(r.Context(), id, actor); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "talent not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteReservationResponse{Status: "deleted"})
}
