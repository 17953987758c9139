package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"venuehub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPI_CreateReservationDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/reservations", r.URL.Path)

		var in domain.Reservation
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "ana@example.com", in.RequesterEmail)

		in.ID = "res-1"
		in.Status = domain.ReservationPending
		in.CreatedAt = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"data": in})
	}))
	defer srv.Close()

	api := New(srv.URL, srv.Client())
	created, err := api.CreateReservation(context.Background(), &domain.Reservation{
		RequesterName:  "Ana",
		RequesterEmail: "ana@example.com",
		SpaceID:        "space-1",
		StartsAt:       time.Date(2025, 4, 1, 18, 0, 0, 0, time.UTC),
		EndsAt:         time.Date(2025, 4, 1, 20, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "res-1", created.ID)
	assert.Equal(t, domain.ReservationPending, created.Status)
	assert.Nil(t, created.DecidedAt)
}

func TestAPI_ErrorEnvelopeBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"code": "conflict", "message": "reservation already decided"},
		})
	}))
	defer srv.Close()

	api := New(srv.URL, srv.Client())
	_, err := api.DecideReservation(context.Background(), "res-1", domain.DecisionApprove)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "conflict", apiErr.Code)
	assert.Equal(t, "reservation already decided", apiErr.Message)
}

func TestAPI_BearerTokenAttached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))
	defer srv.Close()

	api := New(srv.URL, srv.Client())
	api.SetToken("tok-123")
	_, err := api.ListProposals(context.Background())
	require.NoError(t, err)
}

func TestAPI_LoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			var in map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "ana@example.com", in["email"])
			_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
				"token":  "tok-456",
				"talent": map[string]any{"id": "tal-1", "email": "ana@example.com"},
			}})
		case "/proposals":
			assert.Equal(t, "Bearer tok-456", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	api := New(srv.URL, srv.Client())
	res, err := api.Login(context.Background(), "ana@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-456", res.Token)

	_, err = api.ListProposals(context.Background())
	require.NoError(t, err)
}

func TestAPI_CreateProposalMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		var p domain.EventProposal
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("proposal")), &p))
		assert.Equal(t, "Jazz night", p.Title)

		file, header, err := r.FormFile("poster")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "jazz.png", header.Filename)

		p.ID = "prop-1"
		p.Status = domain.ReservationPending
		p.PosterRef = "abc123.png"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"data": p})
	}))
	defer srv.Close()

	api := New(srv.URL, srv.Client())
	created, err := api.CreateProposal(context.Background(), &domain.EventProposal{
		Title:         "Jazz night",
		Type:          domain.EventSpectacle,
		Description:   "An evening of jazz",
		SpaceID:       "space-1",
		ProposerName:  "Ana",
		ProposerEmail: "ana@example.com",
		StartsAt:      time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC),
		EndsAt:        time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC),
	}, &domain.PosterUpload{Filename: "jazz.png", Data: []byte("png-bytes")})
	require.NoError(t, err)
	assert.Equal(t, "prop-1", created.ID)
	assert.Equal(t, "abc123.png", created.PosterRef)
}

func TestAPI_UpdateTalentOmitsAbsentFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		assert.Equal(t, map[string]any{"name": "New Name"}, body, "absent patch fields must not appear in the request")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": "tal-1", "name": "New Name"}})
	}))
	defer srv.Close()

	name := "New Name"
	api := New(srv.URL, srv.Client())
	updated, err := api.UpdateTalent(context.Background(), "tal-1", domain.TalentPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
}

func TestAPI_DeleteNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	api := New(srv.URL, srv.Client())
	require.NoError(t, api.DeleteReservation(context.Background(), "res-1"))
}

func TestAPI_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	api := New(srv.URL, srv.Client())
	_, err := api.ListEvents(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}
