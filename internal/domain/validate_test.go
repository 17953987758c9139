package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDateRange(t *testing.T) {
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{name: "end after start", start: base, end: base.Add(2 * time.Hour), wantErr: false},
		{name: "end before start", start: base, end: base.Add(-time.Hour), wantErr: true},
		{name: "end equal to start", start: base, end: base, wantErr: true},
		{name: "one second after", start: base, end: base.Add(time.Second), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDateRange(tt.start, tt.end)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				var rangeErr *InvalidRangeError
				assert.True(t, errors.As(err, &rangeErr))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateRequired_ReportsEveryMissingField(t *testing.T) {
	fields := map[string]string{
		"title":          "Concert",
		"description":    "",
		"space_id":       "   ",
		"proposer_email": "ana@example.com",
	}
	required := []string{"title", "description", "space_id", "proposer_name", "proposer_email"}

	err := ValidateRequired(fields, required)
	require.Error(t, err)

	var missingErr *MissingFieldsError
	require.True(t, errors.As(err, &missingErr))
	// Every missing/blank key, in the order of required, not just the first.
	assert.Equal(t, []string{"description", "space_id", "proposer_name"}, missingErr.Fields)
}

func TestValidateRequired_AllPresent(t *testing.T) {
	err := ValidateRequired(map[string]string{"a": "1", "b": "2"}, []string{"a", "b"})
	require.NoError(t, err)
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		address string
		wantErr bool
	}{
		{"ana@example.com", false},
		{"ana.luisa+tag@sub.example.org", false},
		{"  padded@example.com ", false},
		{"no-at-sign.example.com", true},
		{"missing@tld", true},
		{"", true},
		{"two@@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			err := ValidateEmail(tt.address)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDecisionStatus(t *testing.T) {
	st, ok := DecisionApprove.Status()
	require.True(t, ok)
	assert.Equal(t, ReservationApproved, st)

	st, ok = DecisionReject.Status()
	require.True(t, ok)
	assert.Equal(t, ReservationRejected, st)

	_, ok = Decision("maybe").Status()
	assert.False(t, ok)
}

func TestActorIsSuperAdmin(t *testing.T) {
	assert.False(t, Actor{ID: "u1"}.IsSuperAdmin())
	assert.False(t, Actor{ID: "u1", Roles: []string{"talent"}}.IsSuperAdmin())
	assert.True(t, Actor{ID: "u1", Roles: []string{"talent", RoleSuperAdmin}}.IsSuperAdmin())
}
