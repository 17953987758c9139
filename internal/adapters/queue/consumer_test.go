package queue

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"venuehub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	to      string
	subject string
	err     error
}

func (m *recordingMailer) Send(to, subject, html, text string) error {
	if m.err != nil {
		return m.err
	}
	m.to = to
	m.subject = subject
	return nil
}

func TestHandleDecision(t *testing.T) {
	event := domain.DecisionEvent{
		Kind:           "reservation",
		ID:             "res-1",
		Status:         "approved",
		RequesterName:  "Ana",
		RequesterEmail: "ana@example.com",
		StartsAt:       time.Date(2025, 4, 1, 18, 0, 0, 0, time.UTC),
		EndsAt:         time.Date(2025, 4, 1, 21, 0, 0, 0, time.UTC),
		DecidedAt:      time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC),
	}
	body, err := json.Marshal(event)
	require.NoError(t, err)

	mailer := &recordingMailer{}
	require.NoError(t, handleDecision(body, mailer))
	assert.Equal(t, "ana@example.com", mailer.to)
	assert.Contains(t, mailer.subject, "approved")
}

func TestHandleDecision_Failures(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		err := handleDecision([]byte("{"), &recordingMailer{})
		require.Error(t, err)
	})

	t.Run("missing requester email", func(t *testing.T) {
		body, _ := json.Marshal(domain.DecisionEvent{ID: "res-1", Status: "approved"})
		err := handleDecision(body, &recordingMailer{})
		require.Error(t, err)
	})

	t.Run("mailer failure propagates", func(t *testing.T) {
		body, _ := json.Marshal(domain.DecisionEvent{
			ID: "res-1", Status: "approved", RequesterEmail: "ana@example.com", Kind: "reservation",
		})
		err := handleDecision(body, &recordingMailer{err: errors.New("smtp down")})
		require.Error(t, err)
	})
}
