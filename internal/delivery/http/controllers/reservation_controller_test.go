package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"venuehub/internal/delivery/http/helpers"
	"venuehub/internal/delivery/http/middleware"
	"venuehub/internal/domain"
)

type mockReservationService struct {
	created    *domain.Reservation
	listed     []*domain.Reservation
	decided    *domain.Reservation
	createErr  error
	listErr    error
	decideErr  error
	deleteErr  error
	deleteCall int
}

func (m *mockReservationService) Create(ctx context.Context, r *domain.Reservation) error {
	if m.createErr != nil {
		return m.createErr
	}
	r.ID = "res-1"
	r.CreatedAt = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	m.created = r
	return nil
}

func (m *mockReservationService) List(ctx context.Context, f domain.ReservationFilter) ([]*domain.Reservation, error) {
	return m.listed, m.listErr
}

func (m *mockReservationService) Update(ctx context.Context, id string, upd domain.ReservationUpdate, actorID string) (*domain.Reservation, error) {
	return &domain.Reservation{ID: id, RequesterName: upd.RequesterName}, nil
}

func (m *mockReservationService) Delete(ctx context.Context, id string, actor domain.Actor) error {
	m.deleteCall++
	return m.deleteErr
}

func (m *mockReservationService) Decide(ctx context.Context, id string, d domain.Decision, actorID string) (*domain.Reservation, error) {
	if m.decideErr != nil {
		return nil, m.decideErr
	}
	return m.decided, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestReservationController_Create_Pending(t *testing.T) {
	svc := &mockReservationService{}
	ctrl := NewReservationController(testLogger(), svc, nil)

	body := `{"requester_name":"Ana","requester_email":"ana@example.com","space_id":"space-1","starts_at":"2025-04-01T18:00:00Z","ends_at":"2025-04-01T20:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.Create(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
	var resp struct {
		Data  *domain.Reservation `json:"data"`
		Error *helpers.APIError   `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.Status != domain.ReservationPending {
		t.Fatalf("expected pending status, got %q", resp.Data.Status)
	}
	if resp.Data.DecidedAt != nil {
		t.Fatalf("expected decided_at unset on create, got %v", resp.Data.DecidedAt)
	}
}

func TestReservationController_Create_EndBeforeStart(t *testing.T) {
	svc := &mockReservationService{}
	ctrl := NewReservationController(testLogger(), svc, nil)

	body := `{"requester_name":"Ana","requester_email":"ana@example.com","space_id":"space-1","starts_at":"2025-04-01T20:00:00Z","ends_at":"2025-04-01T18:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.Create(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if svc.created != nil {
		t.Fatal("service must not be reached on validation failure")
	}
}

func TestReservationController_Create_MissingFieldsAllReported(t *testing.T) {
	svc := &mockReservationService{}
	ctrl := NewReservationController(testLogger(), svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	ctrl.Create(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	for _, field := range []string{"requester_name", "requester_email", "space_id"} {
		if !strings.Contains(resp.Error.Message, field) {
			t.Fatalf("expected %q in error message, got %q", field, resp.Error.Message)
		}
	}
}

func TestReservationController_List(t *testing.T) {
	decidedAt := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	svc := &mockReservationService{listed: []*domain.Reservation{
		{ID: "res-1", Status: domain.ReservationPending},
		{ID: "res-2", Status: domain.ReservationApproved, DecidedAt: &decidedAt},
	}}
	ctrl := NewReservationController(testLogger(), svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/reservations?status=pending", nil)
	w := httptest.NewRecorder()

	ctrl.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp struct {
		Data []*domain.Reservation `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 reservations, got %d", len(resp.Data))
	}
}

func TestReservationController_Decide(t *testing.T) {
	decidedAt := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name       string
		body       string
		svc        *mockReservationService
		wantStatus int
		wantCode   string
	}{
		{
			name: "approve succeeds",
			body: `{"decision":"approve"}`,
			svc: &mockReservationService{decided: &domain.Reservation{
				ID: "res-1", Status: domain.ReservationApproved, DecidedAt: &decidedAt,
			}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "replay returns conflict",
			body:       `{"decision":"approve"}`,
			svc:        &mockReservationService{decideErr: domain.ErrInvalidTransition},
			wantStatus: http.StatusConflict,
			wantCode:   helpers.ErrCodeConflict,
		},
		{
			name:       "unknown reservation",
			body:       `{"decision":"reject"}`,
			svc:        &mockReservationService{decideErr: domain.ErrNotFound},
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
		{
			name:       "unknown decision",
			body:       `{"decision":"maybe"}`,
			svc:        &mockReservationService{decideErr: &domain.InvalidFieldError{Field: "decision", Reason: "unknown"}},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "empty decision rejected before service",
			body:       `{"decision":""}`,
			svc:        &mockReservationService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewReservationController(testLogger(), tt.svc, nil)

			req := httptest.NewRequest(http.MethodPut, "/reservations/res-1/decision", strings.NewReader(tt.body))
			req.SetPathValue("id", "res-1")
			req = req.WithContext(middleware.SetActor(req.Context(), domain.Actor{ID: "admin-1"}))
			w := httptest.NewRecorder()

			ctrl.Decide(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantCode != "" {
				var resp helpers.APIResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to unmarshal response: %v", err)
				}
				if resp.Error == nil || resp.Error.Code != tt.wantCode {
					t.Fatalf("expected error code %q, got %+v", tt.wantCode, resp.Error)
				}
			}
		})
	}
}

func TestReservationController_Decide_SetsDecidedAt(t *testing.T) {
	decidedAt := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	svc := &mockReservationService{decided: &domain.Reservation{
		ID: "res-1", Status: domain.ReservationApproved, DecidedAt: &decidedAt,
	}}
	ctrl := NewReservationController(testLogger(), svc, nil)

	req := httptest.NewRequest(http.MethodPut, "/reservations/res-1/decision", strings.NewReader(`{"decision":"approve"}`))
	req.SetPathValue("id", "res-1")
	req = req.WithContext(middleware.SetActor(req.Context(), domain.Actor{ID: "admin-1"}))
	w := httptest.NewRecorder()

	ctrl.Decide(w, req)

	var resp struct {
		Data *domain.Reservation `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.Status != domain.ReservationApproved {
		t.Fatalf("expected approved, got %q", resp.Data.Status)
	}
	if resp.Data.DecidedAt == nil || !resp.Data.DecidedAt.Equal(decidedAt) {
		t.Fatalf("expected decided_at %v, got %v", decidedAt, resp.Data.DecidedAt)
	}
}

func TestReservationController_Delete_Forbidden(t *testing.T) {
	svc := &mockReservationService{deleteErr: domain.ErrForbidden}
	ctrl := NewReservationController(testLogger(), svc, nil)

	req := httptest.NewRequest(http.MethodDelete, "/reservations/res-1", nil)
	req.SetPathValue("id", "res-1")
	req = req.WithContext(middleware.SetActor(req.Context(), domain.Actor{ID: "tal-1", Roles: []string{"talent"}}))
	w := httptest.NewRecorder()

	ctrl.Delete(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != helpers.ErrCodeForbidden {
		t.Fatalf("expected forbidden code, got %+v", resp.Error)
	}
}

func TestReservationController_Decide_Unauthenticated(t *testing.T) {
	ctrl := NewReservationController(testLogger(), &mockReservationService{}, nil)

	req := httptest.NewRequest(http.MethodPut, "/reservations/res-1/decision", strings.NewReader(`{"decision":"approve"}`))
	req.SetPathValue("id", "res-1")
	w := httptest.NewRecorder()

	ctrl.Decide(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}
