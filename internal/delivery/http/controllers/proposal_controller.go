package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"venuehub/internal/delivery/http/helpers"
	"venuehub/internal/delivery/http/middleware"
	"venuehub/internal/domain"
)

// maxPosterBytes caps the poster attachment size at 5 MiB.
const maxPosterBytes = 5 << 20

// ProposalSuccessResponse is the success response envelope carrying a single proposal.
type ProposalSuccessResponse struct {
	Data  *domain.EventProposal `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// ListProposalsSuccessResponse is the success response envelope for GET /proposals (200).
type ListProposalsSuccessResponse struct {
	Data  []*domain.EventProposal `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// DecideProposalRequest is the request body for PUT /proposals/{id}/decision.
type DecideProposalRequest struct {
	Decision string `json:"decision"`
}

// Validate implements Validator.
func (d DecideProposalRequest) Validate() []string {
	if d.Decision == "" {
		return []string{"decision is required"}
	}
	return nil
}

type ProposalController struct {
	Logger  *slog.Logger
	Service domain.ProposalService
}

func NewProposalController(logger *slog.Logger, svc domain.ProposalService) *ProposalController {
	return &ProposalController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Submit an event proposal
// @Description Submits a proposal as multipart form data: a "proposal" field holding the JSON payload and an optional "poster" file attachment. Requires authentication.
// @Tags proposals
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param proposal formData string true "Proposal JSON"
// @Param poster formData file false "Poster image"
// @Success 201 {object} controllers.ProposalSuccessResponse "data contains the created proposal"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /proposals [post]
func (c *ProposalController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPosterBytes); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	raw := r.FormValue("proposal")
	if raw == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing proposal field")
		return
	}
	var proposal domain.EventProposal
	if err := json.Unmarshal([]byte(raw), &proposal); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid proposal payload: "+err.Error())
		return
	}

	var poster *domain.PosterUpload
	if file, header, err := r.FormFile("poster"); err == nil {
		defer func() { _ = file.Close() }()
		data, readErr := io.ReadAll(io.LimitReader(file, maxPosterBytes+1))
		if readErr != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "could not read poster")
			return
		}
		if len(data) > maxPosterBytes {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "poster too large")
			return
		}
		poster = &domain.PosterUpload{Filename: header.Filename, Data: data}
	}

	if err := c.Service.Create(r.Context(), &proposal, poster); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, &proposal)
}

// List godoc
// @Summary List proposals
// @Description Returns all submitted proposals. Requires authentication.
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListProposalsSuccessResponse "data is an array of proposals"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /proposals [get]
func (c *ProposalController) List(w http.ResponseWriter, r *http.Request) {
	proposals, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if proposals == nil {
		proposals = []*domain.EventProposal{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, proposals)
}

// Decide godoc
// @Summary Approve or reject a proposal
// @Description Transitions a pending proposal to approved or rejected, exactly once. Deciding an already-decided proposal returns 409. Requires authentication.
// @Tags proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Param decision body DecideProposalRequest true "approve or reject"
// @Success 200 {object} controllers.ProposalSuccessResponse "data contains the decided proposal"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already decided)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /proposals/{id}/decision [put]
func (c *ProposalController) Decide(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	var req DecideProposalRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	proposal, err := c.Service.Decide(r.Context(), id, domain.Decision(req.Decision), actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "proposal already decided")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "proposal not found")
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
	helpers.WriteJSONSuccess(w, http.StatusOK, proposal)
}
