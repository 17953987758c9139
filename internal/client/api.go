// Package client is the Go SDK for the venuehub REST API. It wraps the
// {data, error} response envelope, carries an optional bearer token, and
// exposes the form controller and notification presenter used by embedding
// frontends.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"venuehub/internal/domain"
)

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

// API talks to a venuehub server. The zero value is not usable; use New.
type API struct {
	baseURL string
	http    *http.Client
	token   string
}

// New returns an API client for baseURL. Pass httpClient as nil to use a
// client with a 15s timeout.
func New(baseURL string, httpClient *http.Client) *API {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &API{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// SetToken attaches a bearer token to subsequent requests. An empty token
// clears it.
func (a *API) SetToken(token string) { a.token = token }

// envelope mirrors the server's response shape.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *API) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return &APIError{Status: resp.StatusCode, Code: "internal_error", Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Code: "internal_error", Message: http.StatusText(resp.StatusCode)}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

func (a *API) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}
	return a.do(ctx, method, path, body, "application/json", out)
}

// ListReservations returns reservations, optionally filtered by status and
// space.
func (a *API) ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	if filter.SpaceID != "" {
		q.Set("space_id", filter.SpaceID)
	}
	path := "/reservations"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out []*domain.Reservation
	err := a.do(ctx, http.MethodGet, path, nil, "", &out)
	return out, err
}

// CreateReservation submits a booking request. The server returns it in
// pending state.
func (a *API) CreateReservation(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	var out domain.Reservation
	if err := a.doJSON(ctx, http.MethodPost, "/reservations", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateReservation replaces the mutable fields of a reservation.
func (a *API) UpdateReservation(ctx context.Context, id string, upd domain.ReservationUpdate) (*domain.Reservation, error) {
	payload := map[string]any{
		"requester_name":  upd.RequesterName,
		"requester_email": upd.RequesterEmail,
		"space_id":        upd.SpaceID,
		"event_id":        upd.EventID,
		"starts_at":       upd.StartsAt,
		"ends_at":         upd.EndsAt,
		"comment":         upd.Comment,
	}
	var out domain.Reservation
	if err := a.doJSON(ctx, http.MethodPut, "/reservations/"+id, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteReservation removes a reservation. Requires the super_admin role.
func (a *API) DeleteReservation(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/reservations/"+id, nil, "", nil)
}

// DecideReservation approves or rejects a pending reservation.
func (a *API) DecideReservation(ctx context.Context, id string, decision domain.Decision) (*domain.Reservation, error) {
	var out domain.Reservation
	payload := map[string]string{"decision": string(decision)}
	if err := a.doJSON(ctx, http.MethodPut, "/reservations/"+id+"/decision", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEvents returns the published events.
func (a *API) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	var out []*domain.Event
	err := a.do(ctx, http.MethodGet, "/events", nil, "", &out)
	return out, err
}

// GetEvent returns one event by id.
func (a *API) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	var out domain.Event
	if err := a.do(ctx, http.MethodGet, "/events/"+id, nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateEvent creates an event owned by the authenticated actor.
func (a *API) CreateEvent(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	var out domain.Event
	if err := a.doJSON(ctx, http.MethodPost, "/events", e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEvent replaces an event.
func (a *API) UpdateEvent(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	var out domain.Event
	if err := a.doJSON(ctx, http.MethodPut, "/events/"+e.ID, e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEvent removes an event. Requires the super_admin role.
func (a *API) DeleteEvent(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/events/"+id, nil, "", nil)
}

// CreateProposal submits an event proposal as multipart form data, with an
// optional poster attachment.
func (a *API) CreateProposal(ctx context.Context, p *domain.EventProposal, poster *domain.PosterUpload) (*domain.EventProposal, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	meta, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode proposal: %w", err)
	}
	if err := w.WriteField("proposal", string(meta)); err != nil {
		return nil, fmt.Errorf("write proposal field: %w", err)
	}
	if poster != nil {
		part, err := w.CreateFormFile("poster", poster.Filename)
		if err != nil {
			return nil, fmt.Errorf("create poster part: %w", err)
		}
		if _, err := part.Write(poster.Data); err != nil {
			return nil, fmt.Errorf("write poster part: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finish multipart body: %w", err)
	}

	var out domain.EventProposal
	if err := a.do(ctx, http.MethodPost, "/proposals", &buf, w.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProposals returns the submitted proposals.
func (a *API) ListProposals(ctx context.Context) ([]*domain.EventProposal, error) {
	var out []*domain.EventProposal
	err := a.do(ctx, http.MethodGet, "/proposals", nil, "", &out)
	return out, err
}

// DecideProposal approves or rejects a pending proposal.
func (a *API) DecideProposal(ctx context.Context, id string, decision domain.Decision) (*domain.EventProposal, error) {
	var out domain.EventProposal
	payload := map[string]string{"decision": string(decision)}
	if err := a.doJSON(ctx, http.MethodPut, "/proposals/"+id+"/decision", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTalents returns the talent directory. Credentials are never present in
// the response.
func (a *API) ListTalents(ctx context.Context) ([]*domain.Talent, error) {
	var out []*domain.Talent
	err := a.do(ctx, http.MethodGet, "/talents", nil, "", &out)
	return out, err
}

// GetTalent returns one talent profile by id.
func (a *API) GetTalent(ctx context.Context, id string) (*domain.Talent, error) {
	var out domain.Talent
	if err := a.do(ctx, http.MethodGet, "/talents/"+id, nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTalent registers a talent account. The credential travels only in
// the request and is never echoed back.
func (a *API) CreateTalent(ctx context.Context, t *domain.Talent, credential string) (*domain.Talent, error) {
	payload := map[string]any{
		"name":        t.Name,
		"email":       t.Email,
		"domain":      t.Domain,
		"description": t.Description,
		"is_talent":   t.IsTalent,
		"credential":  credential,
	}
	var out domain.Talent
	if err := a.doJSON(ctx, http.MethodPost, "/talents", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTalent sends a partial update; nil patch fields are omitted from the
// request body and leave the stored value unchanged.
func (a *API) UpdateTalent(ctx context.Context, id string, patch domain.TalentPatch) (*domain.Talent, error) {
	payload := map[string]any{}
	if patch.Name != nil {
		payload["name"] = *patch.Name
	}
	if patch.Email != nil {
		payload["email"] = *patch.Email
	}
	if patch.Domain != nil {
		payload["domain"] = *patch.Domain
	}
	if patch.Status != nil {
		payload["status"] = *patch.Status
	}
	if patch.Description != nil {
		payload["description"] = *patch.Description
	}
	if patch.IsTalent != nil {
		payload["is_talent"] = *patch.IsTalent
	}
	if patch.Credential != nil {
		payload["credential"] = *patch.Credential
	}
	var out domain.Talent
	if err := a.doJSON(ctx, http.MethodPut, "/talents/"+id, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTalent removes a talent account. Requires the super_admin role.
func (a *API) DeleteTalent(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/talents/"+id, nil, "", nil)
}

// ListSpaces returns the bookable spaces.
func (a *API) ListSpaces(ctx context.Context) ([]*domain.Space, error) {
	var out []*domain.Space
	err := a.do(ctx, http.MethodGet, "/spaces", nil, "", &out)
	return out, err
}

// LoginResult is the successful authentication payload.
type LoginResult struct {
	Token  string         `json:"token"`
	Talent *domain.Talent `json:"talent"`
}

// Login exchanges credentials for a bearer token and stores it on the client.
func (a *API) Login(ctx context.Context, email, credential string) (*LoginResult, error) {
	payload := map[string]string{"email": email, "credential": credential}
	var out LoginResult
	if err := a.doJSON(ctx, http.MethodPost, "/auth/login", payload, &out); err != nil {
		return nil, err
	}
	a.token = out.Token
	return &out, nil
}
