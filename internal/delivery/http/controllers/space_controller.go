package controllers

import (
	"log/slog"
	"net/http"

	"venuehub/internal/delivery/http/helpers"
	"venuehub/internal/domain"
)

// ListSpacesSuccessResponse is the success response envelope for GET /spaces (200).
type ListSpacesSuccessResponse struct {
	Data  []*domain.Space   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SpaceController serves the read-only space catalog used to populate
// booking and proposal forms.
type SpaceController struct {
	Logger *slog.Logger
	Repo   domain.SpaceRepository
}

func NewSpaceController(logger *slog.Logger, repo domain.SpaceRepository) *SpaceController {
	return &SpaceController{
		Logger: logger,
		Repo:   repo,
	}
}

// List godoc
// @Summary List spaces
// @Description Returns the bookable spaces of the venue. No authentication required.
// @Tags spaces
// @Produce json
// @Success 200 {object} controllers.ListSpacesSuccessResponse "data is an array of spaces"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /spaces [get]
func (c *SpaceController) List(w http.ResponseWriter, r *http.Request) {
	spaces, err := c.Repo.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if spaces == nil {
		spaces = []*domain.Space{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, spaces)
}
