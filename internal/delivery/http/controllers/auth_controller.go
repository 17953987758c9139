package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"venuehub/internal/delivery/http/helpers"
	"venuehub/internal/domain"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email      string `json:"email"`
	Credential string `json:"credential"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	if l.Credential == "" {
		errs = append(errs, "credential is required")
	}
	return errs
}

// LoginResponse is the data payload for POST /auth/login (200).
type LoginResponse struct {
	Token  string         `json:"token"`
	Talent *domain.Talent `json:"talent"`
}

// LoginSuccessResponse is the success response envelope for POST /auth/login (200).
type LoginSuccessResponse struct {
	Data  LoginResponse     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.TalentService
}

func NewAuthController(logger *slog.Logger, svc domain.TalentService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Login godoc
// @Summary Authenticate a talent
// @Description Exchanges email and credential for a Bearer token. Unknown emails and wrong credentials both return 401 without distinguishing the two.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Email and credential"
// @Success 200 {object} controllers.LoginSuccessResponse "data contains token and talent profile"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, talent, err := c.Service.Authenticate(r.Context(), req.Email, req.Credential)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid email or credential")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, Talent: talent})
}
