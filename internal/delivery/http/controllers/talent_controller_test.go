package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"venuehub/internal/delivery/http/helpers"
	"venuehub/internal/delivery/http/middleware"
	"venuehub/internal/domain"
)

type mockTalentService struct {
	created   *domain.Talent
	patched   domain.TalentPatch
	createErr error
	patchErr  error
}

func (m *mockTalentService) Create(ctx context.Context, t *domain.Talent, credential string) error {
	if m.createErr != nil {
		return m.createErr
	}
	t.ID = "tal-1"
	t.Status = domain.TalentPendingValidation
	t.CredentialHash = "$2a$10$hash"
	m.created = t
	return nil
}

func (m *mockTalentService) GetByID(ctx context.Context, id string) (*domain.Talent, error) {
	return &domain.Talent{ID: id, Name: "Ana", CredentialHash: "$2a$10$hash"}, nil
}

func (m *mockTalentService) List(ctx context.Context) ([]*domain.Talent, error) {
	return []*domain.Talent{{ID: "tal-1", CredentialHash: "$2a$10$hash"}}, nil
}

func (m *mockTalentService) Patch(ctx context.Context, id string, patch domain.TalentPatch, actorID string) (*domain.Talent, error) {
	if m.patchErr != nil {
		return nil, m.patchErr
	}
	m.patched = patch
	return &domain.Talent{ID: id, Name: "Ana"}, nil
}

func (m *mockTalentService) Delete(ctx context.Context, id string, actor domain.Actor) error {
	return nil
}

func (m *mockTalentService) Authenticate(ctx context.Context, email, credential string) (string, *domain.Talent, error) {
	return "", nil, domain.ErrInvalidCredentials
}

func TestTalentController_Create_CredentialNeverSerialized(t *testing.T) {
	svc := &mockTalentService{}
	ctrl := NewTalentController(testLogger(), svc)

	body := `{"name":"Ana","email":"ana@example.com","domain":"music","credential":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/talents", strings.NewReader(body))
	req = req.WithContext(middleware.SetActor(req.Context(), domain.Actor{ID: "admin-1"}))
	w := httptest.NewRecorder()

	ctrl.Create(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
	raw := w.Body.String()
	if strings.Contains(raw, "secret") || strings.Contains(raw, "$2a$") || strings.Contains(raw, "credential") {
		t.Fatalf("credential material leaked into response: %s", raw)
	}
	var resp struct {
		Data *domain.Talent `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.Status != domain.TalentPendingValidation {
		t.Fatalf("expected pending_validation, got %q", resp.Data.Status)
	}
}

func TestTalentController_Create_DuplicateEmail(t *testing.T) {
	svc := &mockTalentService{createErr: domain.ErrDuplicateEmail}
	ctrl := NewTalentController(testLogger(), svc)

	body := `{"name":"Ana","email":"ana@example.com","credential":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/talents", strings.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.Create(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != helpers.ErrCodeConflict {
		t.Fatalf("expected conflict code, got %+v", resp.Error)
	}
}

func TestTalentController_Create_MissingCredential(t *testing.T) {
	svc := &mockTalentService{}
	ctrl := NewTalentController(testLogger(), svc)

	body := `{"name":"Ana","email":"ana@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/talents", strings.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.Create(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if svc.created != nil {
		t.Fatal("service must not be reached without a credential")
	}
}

func TestTalentController_Update_PartialPatch(t *testing.T) {
	svc := &mockTalentService{}
	ctrl := NewTalentController(testLogger(), svc)

	body := `{"name":"Ana Silva"}`
	req := httptest.NewRequest(http.MethodPut, "/talents/tal-1", strings.NewReader(body))
	req.SetPathValue("id", "tal-1")
	req = req.WithContext(middleware.SetActor(req.Context(), domain.Actor{ID: "tal-1"}))
	w := httptest.NewRecorder()

	ctrl.Update(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	if svc.patched.Name == nil || *svc.patched.Name != "Ana Silva" {
		t.Fatalf("expected name patch, got %+v", svc.patched.Name)
	}
	if svc.patched.Email != nil || svc.patched.Credential != nil || svc.patched.Status != nil {
		t.Fatal("omitted fields must stay nil in the patch")
	}
}

func TestTalentController_Update_InvalidStatus(t *testing.T) {
	svc := &mockTalentService{}
	ctrl := NewTalentController(testLogger(), svc)

	body := `{"status":"banned"}`
	req := httptest.NewRequest(http.MethodPut, "/talents/tal-1", strings.NewReader(body))
	req.SetPathValue("id", "tal-1")
	req = req.WithContext(middleware.SetActor(req.Context(), domain.Actor{ID: "tal-1"}))
	w := httptest.NewRecorder()

	ctrl.Update(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestTalentController_List_CredentialOmitted(t *testing.T) {
	ctrl := NewTalentController(testLogger(), &mockTalentService{})

	req := httptest.NewRequest(http.MethodGet, "/talents", nil)
	w := httptest.NewRecorder()

	ctrl.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if strings.Contains(w.Body.String(), "$2a$") {
		t.Fatalf("credential hash leaked into listing: %s", w.Body.String())
	}
}
