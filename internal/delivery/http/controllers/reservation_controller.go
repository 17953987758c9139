package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"venuehub/internal/adapters/cache"
	"venuehub/internal/delivery/http/helpers"
	"venuehub/internal/delivery/http/middleware"
	"venuehub/internal/domain"
)

// CreateReservationRequest is the request body for POST /reservations.
type CreateReservationRequest struct {
	RequesterName  string    `json:"requester_name"`
	RequesterEmail string    `json:"requester_email"`
	SpaceID        string    `json:"space_id"`
	EventID        *string   `json:"event_id"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	Comment        string    `json:"comment"`
}

// Validate implements Validator. Deep validation (email syntax, space
// existence) happens in the service.
func (c CreateReservationRequest) Validate() []string {
	errs := domain.MissingFields(map[string]string{
		"requester_name":  c.RequesterName,
		"requester_email": c.RequesterEmail,
		"space_id":        c.SpaceID,
	}, []string{"requester_name", "requester_email", "space_id"})
	for i, f := range errs {
		errs[i] = f + " is required"
	}
	if !c.StartsAt.IsZero() && !c.EndsAt.IsZero() && !c.EndsAt.After(c.StartsAt) {
		errs = append(errs, "ends_at must be after starts_at")
	}
	return errs
}

// UpdateReservationRequest is the request body for PUT /reservations/{id}.
// Update is full-record: every field is written.
type UpdateReservationRequest struct {
	RequesterName  string    `json:"requester_name"`
	RequesterEmail string    `json:"requester_email"`
	SpaceID        string    `json:"space_id"`
	EventID        *string   `json:"event_id"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	Comment        string    `json:"comment"`
}

// Validate implements Validator.
func (u UpdateReservationRequest) Validate() []string {
	return CreateReservationRequest(u).Validate()
}

// DecideReservationRequest is the request body for PUT /reservations/{id}/decision.
type DecideReservationRequest struct {
	Decision string `json:"decision"`
}

// Validate implements Validator.
func (d DecideReservationRequest) Validate() []string {
	if d.Decision == "" {
		return []string{"decision is required"}
	}
	return nil
}

// ReservationSuccessResponse is the success response envelope carrying a single reservation.
type ReservationSuccessResponse struct {
	Data  *domain.Reservation `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ListReservationsSuccessResponse is the success response envelope for GET /reservations (200).
type ListReservationsSuccessResponse struct {
	Data  []*domain.Reservation `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// DeleteReservationResponse is the data payload for DELETE /reservations/{id} (200).
type DeleteReservationResponse struct {
	Status string `json:"status"`
}

type ReservationController struct {
	Logger  *slog.Logger
	Service domain.ReservationService
	Cache   *cache.Cache
}

func NewReservationController(logger *slog.Logger, svc domain.ReservationService, c *cache.Cache) *ReservationController {
	return &ReservationController{
		Logger:  logger,
		Service: svc,
		Cache:   c,
	}
}

func reservationListCacheKey(filter domain.ReservationFilter) string {
	return "reservations:" + string(filter.Status) + ":" + filter.SpaceID
}

// Create godoc
// @Summary Submit a booking request
// @Description Creates a reservation for a space. No authentication required; the reservation starts in pending state with decided_at unset.
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation body CreateReservationRequest true "Reservation data"
// @Success 201 {object} controllers.ReservationSuccessResponse "data contains the created reservation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reservations [post]
func (c *ReservationController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reservation := domain.NewReservation(req.RequesterName, req.RequesterEmail, req.SpaceID, req.EventID, req.StartsAt, req.EndsAt, req.Comment)
	if err := c.Service.Create(r.Context(), reservation); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	c.Cache.Invalidate(r.Context(), reservationListCacheKey(domain.ReservationFilter{}))
	helpers.WriteJSONSuccess(w, http.StatusCreated, reservation)
}

// List godoc
// @Summary List reservations
// @Description Returns reservations ordered by creation time. Supports optional status and space_id filters. No authentication required. The unfiltered listing is served from cache when available.
// @Tags reservations
// @Produce json
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Param space_id query string false "Filter by space"
// @Success 200 {object} controllers.ListReservationsSuccessResponse "data is an array of reservations"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reservations [get]
func (c *ReservationController) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.ReservationFilter{
		Status:  domain.ReservationStatus(r.URL.Query().Get("status")),
		SpaceID: r.URL.Query().Get("space_id"),
	}
	key := reservationListCacheKey(filter)
	if raw, ok := c.Cache.Get(r.Context(), key); ok {
		helpers.WriteJSONSuccess(w, http.StatusOK, json.RawMessage(raw))
		return
	}

	reservations, err := c.Service.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if reservations == nil {
		reservations = []*domain.Reservation{}
	}
	if raw, err := json.Marshal(reservations); err == nil {
		c.Cache.Set(r.Context(), key, raw)
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reservations)
}

// Update godoc
// @Summary Update a reservation
// @Description Replaces the mutable fields of a reservation. Requires authentication.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param reservation body UpdateReservationRequest true "New reservation state"
// @Success 200 {object} controllers.ReservationSuccessResponse "data contains the updated reservation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reservations/{id} [put]
func (c *ReservationController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	var req UpdateReservationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	upd := domain.ReservationUpdate{
		RequesterName:  req.RequesterName,
		RequesterEmail: req.RequesterEmail,
		SpaceID:        req.SpaceID,
		EventID:        req.EventID,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		Comment:        req.Comment,
	}
	reservation, err := c.Service.Update(r.Context(), id, upd, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "reservation not found")
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
	c.Cache.Invalidate(r.Context(), reservationListCacheKey(domain.ReservationFilter{}))
	helpers.WriteJSONSuccess(w, http.StatusOK, reservation)
}

// Delete godoc
// @Summary Delete a reservation
// @Description Removes a reservation. Requires the super_admin role.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reservations/{id} [delete]
func (c *ReservationController) Delete(w http.ResponseWriter, r *http.Request) {
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
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "reservation not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	c.Cache.Invalidate(r.Context(), reservationListCacheKey(domain.ReservationFilter{}))
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteReservationResponse{Status: "deleted"})
}

// Decide godoc
// @Summary Approve or reject a reservation
// @Description Transitions a pending reservation to approved or rejected. The transition happens exactly once: deciding an already-decided reservation returns 409. Requires authentication.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param decision body DecideReservationRequest true "approve or reject"
// @Success 200 {object} controllers.ReservationSuccessResponse "data contains the decided reservation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already decided)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reservations/{id}/decision [put]
func (c *ReservationController) Decide(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	var req DecideReservationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	reservation, err := c.Service.Decide(r.Context(), id, domain.Decision(req.Decision), actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "reservation already decided")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "reservation not found")
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
	c.Cache.Invalidate(r.Context(),
		reservationListCacheKey(domain.ReservationFilter{}),
		reservationListCacheKey(domain.ReservationFilter{Status: domain.ReservationPending}),
	)
	helpers.WriteJSONSuccess(w, http.StatusOK, reservation)
}
