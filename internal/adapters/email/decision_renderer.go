package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"venuehub/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// decisionEmailData is the template payload for decision notifications.
type decisionEmailData struct {
	RequesterName string
	Kind          string
	Approved      bool
	Status        string
	StartsAt      string
	EndsAt        string
	DecidedAt     string
}

// RenderDecision renders the notification email for a decision-made event
// and returns subject, html and text bodies.
func RenderDecision(event domain.DecisionEvent) (subject, htmlBody, textBody string, err error) {
	data := decisionEmailData{
		RequesterName: event.RequesterName,
		Kind:          event.Kind,
		Approved:      event.Status == "approved",
		Status:        event.Status,
		StartsAt:      event.StartsAt.Format("2006-01-02 15:04"),
		EndsAt:        event.EndsAt.Format("2006-01-02 15:04"),
		DecidedAt:     event.DecidedAt.Format("2006-01-02 15:04"),
	}
	subject, err = renderFile("decision_subject.txt", data, false)
	if err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	htmlBody, err = renderFile("decision.html", data, true)
	if err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	textBody, err = renderFile("decision.txt", data, false)
	if err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	return strings.TrimSpace(subject), htmlBody, textBody, nil
}

func renderFile(name string, data any, html bool) (string, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", err
	}
	tmplStr := string(raw)
	var buf bytes.Buffer
	if html {
		t, err := template.New(name).Parse(tmplStr)
		if err != nil {
			return "", err
		}
		if err := t.Execute(&buf, data); err != nil {
			return "", err
		}
	} else {
		t, err := texttemplate.New(name).Parse(tmplStr)
		if err != nil {
			return "", err
		}
		if err := t.Execute(&buf, data); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
