package client

import (
	"strconv"
	"strings"
	"time"

	"venuehub/internal/domain"
)

// defaultDuration is the pre-filled slot length on new booking forms.
const defaultDuration = 2 * time.Hour

// ReservationDraft is the editable state behind the booking form. Text
// inputs stay strings until submission.
type ReservationDraft struct {
	RequesterName  string
	RequesterEmail string
	SpaceID        string
	EventID        string
	Comment        string
	StartsAt       time.Time
	EndsAt         time.Time
}

// NewReservationDraft seeds a draft the way the form opens: starting now,
// two hours long, first space pre-selected.
func NewReservationDraft(now time.Time, spaces []*domain.Space) *ReservationDraft {
	d := &ReservationDraft{StartsAt: now, EndsAt: now.Add(defaultDuration)}
	if len(spaces) > 0 {
		d.SpaceID = spaces[0].ID
	}
	return d
}

// Validate applies the client-side checks: required fields, email syntax,
// date order. It reports all missing fields at once.
func (d *ReservationDraft) Validate() error {
	if err := domain.ValidateRequired(map[string]string{
		"requester_name":  d.RequesterName,
		"requester_email": d.RequesterEmail,
		"space_id":        d.SpaceID,
	}, []string{"requester_name", "requester_email", "space_id"}); err != nil {
		return err
	}
	if err := domain.ValidateEmail(d.RequesterEmail); err != nil {
		return err
	}
	return domain.ValidateDateRange(d.StartsAt, d.EndsAt)
}

// Reservation builds the submission payload. An empty event selection is
// sent as absent, not as an empty string.
func (d *ReservationDraft) Reservation() *domain.Reservation {
	var eventID *string
	if v := strings.TrimSpace(d.EventID); v != "" {
		eventID = &v
	}
	return domain.NewReservation(
		strings.TrimSpace(d.RequesterName),
		strings.TrimSpace(d.RequesterEmail),
		strings.TrimSpace(d.SpaceID),
		eventID,
		d.StartsAt,
		d.EndsAt,
		strings.TrimSpace(d.Comment),
	)
}

// EventDraft is the editable state behind the event form. Price arrives as
// text and is coerced on build.
type EventDraft struct {
	Title       string
	Type        string
	Description string
	Price       string
	SpaceID     string
	StartsAt    time.Time
	EndsAt      time.Time
}

// NewEventDraft seeds an event draft with the default slot and first space.
func NewEventDraft(now time.Time, spaces []*domain.Space) *EventDraft {
	d := &EventDraft{StartsAt: now, EndsAt: now.Add(defaultDuration)}
	if len(spaces) > 0 {
		d.SpaceID = spaces[0].ID
	}
	return d
}

// Event coerces the draft into a submission payload. An unparsable price is
// an invalid-input error, not a silent zero.
func (d *EventDraft) Event() (*domain.Event, error) {
	price, err := parsePrice(d.Price)
	if err != nil {
		return nil, err
	}
	e := domain.NewEvent(
		strings.TrimSpace(d.Title),
		domain.EventType(strings.TrimSpace(d.Type)),
		d.StartsAt,
		d.EndsAt,
		strings.TrimSpace(d.Description),
		price,
		strings.TrimSpace(d.SpaceID),
		"",
	)
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// ProposalDraft is the editable state behind the public proposal form.
type ProposalDraft struct {
	Title         string
	Type          string
	Description   string
	Price         string
	SpaceID       string
	ProposerName  string
	ProposerEmail string
	ProposerPhone string
	Comments      string
	StartsAt      time.Time
	EndsAt        time.Time
}

// NewProposalDraft seeds a proposal draft with the default slot and first
// space.
func NewProposalDraft(now time.Time, spaces []*domain.Space) *ProposalDraft {
	d := &ProposalDraft{StartsAt: now, EndsAt: now.Add(defaultDuration)}
	if len(spaces) > 0 {
		d.SpaceID = spaces[0].ID
	}
	return d
}

// Proposal coerces the draft into a submission payload and runs the same
// validation the server applies, so a rejected draft never reaches the
// network.
func (d *ProposalDraft) Proposal(now time.Time, minLeadTime time.Duration) (*domain.EventProposal, error) {
	price, err := parsePrice(d.Price)
	if err != nil {
		return nil, err
	}
	p := &domain.EventProposal{
		Title:         strings.TrimSpace(d.Title),
		Type:          domain.EventType(strings.TrimSpace(d.Type)),
		StartsAt:      d.StartsAt,
		EndsAt:        d.EndsAt,
		Description:   strings.TrimSpace(d.Description),
		Price:         price,
		SpaceID:       strings.TrimSpace(d.SpaceID),
		ProposerName:  strings.TrimSpace(d.ProposerName),
		ProposerEmail: strings.TrimSpace(d.ProposerEmail),
		ProposerPhone: strings.TrimSpace(d.ProposerPhone),
		Comments:      strings.TrimSpace(d.Comments),
	}
	if err := p.Validate(now, minLeadTime); err != nil {
		return nil, err
	}
	return p, nil
}

// TalentDraft is the editable state behind the talent profile form. The
// credential field is only ever filled by the user; existing accounts load
// with it blank and it is stripped from updates when left blank.
type TalentDraft struct {
	Name        string
	Email       string
	Domain      string
	Status      string
	Description string
	IsTalent    bool
	Credential  string
}

// NewTalentDraft seeds an edit form from an existing profile. The credential
// starts blank: hashes never round-trip to the client.
func NewTalentDraft(t *domain.Talent) *TalentDraft {
	if t == nil {
		return &TalentDraft{}
	}
	return &TalentDraft{
		Name:        t.Name,
		Email:       t.Email,
		Domain:      t.Domain,
		Status:      string(t.Status),
		Description: t.Description,
		IsTalent:    t.IsTalent,
	}
}

// Patch builds a partial update against the loaded profile: only fields the
// user actually changed are sent, and a blank credential is omitted rather
// than interpreted as "clear it".
func (d *TalentDraft) Patch(current *domain.Talent) domain.TalentPatch {
	var patch domain.TalentPatch
	if v := strings.TrimSpace(d.Name); v != "" && (current == nil || v != current.Name) {
		patch.Name = &v
	}
	if v := strings.TrimSpace(d.Email); v != "" && (current == nil || v != current.Email) {
		patch.Email = &v
	}
	if v := strings.TrimSpace(d.Domain); v != "" && (current == nil || v != current.Domain) {
		patch.Domain = &v
	}
	if v := domain.TalentStatus(strings.TrimSpace(d.Status)); v != "" && (current == nil || v != current.Status) {
		patch.Status = &v
	}
	if v := strings.TrimSpace(d.Description); current == nil || v != current.Description {
		if v != "" || (current != nil && current.Description != "") {
			patch.Description = &v
		}
	}
	if current == nil || d.IsTalent != current.IsTalent {
		v := d.IsTalent
		patch.IsTalent = &v
	}
	if v := d.Credential; strings.TrimSpace(v) != "" {
		patch.Credential = &v
	}
	return patch
}

func parsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	price, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0, &domain.InvalidFieldError{Field: "price", Reason: "must be a number"}
	}
	return price, nil
}
