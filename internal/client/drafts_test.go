package client

import (
	"errors"
	"testing"
	"time"

	"venuehub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSpaces = []*domain.Space{
	{ID: "space-1", Name: "Main hall", Capacity: 200},
	{ID: "space-2", Name: "Studio", Capacity: 40},
}

func TestNewReservationDraft_Seeding(t *testing.T) {
	now := time.Date(2025, 3, 1, 14, 30, 0, 0, time.UTC)
	d := NewReservationDraft(now, testSpaces)

	assert.Equal(t, now, d.StartsAt)
	assert.Equal(t, now.Add(2*time.Hour), d.EndsAt)
	assert.Equal(t, "space-1", d.SpaceID, "first space is pre-selected")

	empty := NewReservationDraft(now, nil)
	assert.Empty(t, empty.SpaceID)
}

func TestReservationDraft_ValidateEndBeforeStart(t *testing.T) {
	now := time.Date(2025, 3, 1, 14, 30, 0, 0, time.UTC)
	d := NewReservationDraft(now, testSpaces)
	d.RequesterName = "Ana"
	d.RequesterEmail = "ana@example.com"
	d.EndsAt = d.StartsAt.Add(-time.Hour)

	err := d.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestReservationDraft_BuildStripsEmptyEvent(t *testing.T) {
	now := time.Date(2025, 3, 1, 14, 30, 0, 0, time.UTC)
	d := NewReservationDraft(now, testSpaces)
	d.RequesterName = "  Ana  "
	d.RequesterEmail = "ana@example.com"
	d.EventID = "   "

	r := d.Reservation()
	assert.Equal(t, "Ana", r.RequesterName)
	assert.Nil(t, r.EventID, "blank event selection is sent as absent")
	assert.Equal(t, domain.ReservationPending, r.Status)
}

func TestEventDraft_PriceCoercion(t *testing.T) {
	now := time.Date(2025, 3, 1, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		price   string
		want    float64
		wantErr bool
	}{
		{name: "plain", price: "12.50", want: 12.5},
		{name: "comma decimal", price: "12,50", want: 12.5},
		{name: "blank means free", price: "", want: 0},
		{name: "garbage", price: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewEventDraft(now, testSpaces)
			d.Title = "Concert"
			d.Type = string(domain.EventSpectacle)
			d.Price = tt.price

			e, err := d.Event()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Price)
		})
	}
}

func TestProposalDraft_LeadTimeCheckedClientSide(t *testing.T) {
	now := time.Date(2025, 3, 1, 14, 30, 0, 0, time.UTC)
	d := NewProposalDraft(now, testSpaces)
	d.Title = "Jazz night"
	d.Type = string(domain.EventSpectacle)
	d.Description = "An evening of jazz"
	d.ProposerName = "Ana"
	d.ProposerEmail = "ana@example.com"
	d.StartsAt = now.Add(24 * time.Hour)
	d.EndsAt = d.StartsAt.Add(2 * time.Hour)

	_, err := d.Proposal(now, 7*24*time.Hour)
	require.Error(t, err, "start inside the lead-time window is rejected before any network call")

	d.StartsAt = now.Add(10 * 24 * time.Hour)
	d.EndsAt = d.StartsAt.Add(2 * time.Hour)
	p, err := d.Proposal(now, 7*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "Jazz night", p.Title)
}

func TestTalentDraft_CredentialNeverSeeded(t *testing.T) {
	current := &domain.Talent{
		ID:             "tal-1",
		Name:           "Ana",
		Email:          "ana@example.com",
		Domain:         "music",
		Status:         domain.TalentActive,
		CredentialHash: "$2a$10$something",
	}

	d := NewTalentDraft(current)
	assert.Empty(t, d.Credential, "hashes never round-trip into the form")
}

func TestTalentDraft_PatchOmitsUnchangedAndBlankCredential(t *testing.T) {
	current := &domain.Talent{
		ID:       "tal-1",
		Name:     "Ana",
		Email:    "ana@example.com",
		Domain:   "music",
		Status:   domain.TalentActive,
		IsTalent: true,
	}

	d := NewTalentDraft(current)
	d.Name = "Ana Silva"

	patch := d.Patch(current)
	require.NotNil(t, patch.Name)
	assert.Equal(t, "Ana Silva", *patch.Name)
	assert.Nil(t, patch.Email, "unchanged fields are omitted")
	assert.Nil(t, patch.Status)
	assert.Nil(t, patch.Credential, "blank credential is never sent")
	assert.Nil(t, patch.IsTalent)
}

func TestTalentDraft_PatchCarriesNewCredential(t *testing.T) {
	current := &domain.Talent{ID: "tal-1", Name: "Ana", Email: "ana@example.com"}
	d := NewTalentDraft(current)
	d.Credential = "new-secret"

	patch := d.Patch(current)
	require.NotNil(t, patch.Credential)
	assert.Equal(t, "new-secret", *patch.Credential)
}
