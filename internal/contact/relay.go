package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/musantuli/portfolio/internal/types"
)

// DefaultEmailJSURL is the EmailJS REST send endpoint.
const DefaultEmailJSURL = "https://api.emailjs.com/api/v1.0/email/send"

const maxErrorBody = 512

// Message is one outbound contact email.
type Message struct {
	FromName  string
	FromEmail string
	Body      string
	ToName    string
}

// Relay delivers a message to the portfolio owner.
type Relay interface {
	Send(ctx context.Context, msg Message) error
}

// EmailJSRelay sends messages through the EmailJS REST API.
type EmailJSRelay struct {
	Endpoint string
	Tokens   types.EmailJS
	Client   *http.Client
}

// NewEmailJSRelay creates a relay for the given tokens. A nil client gets a
// 10 second timeout.
func NewEmailJSRelay(tokens types.EmailJS, client *http.Client) *EmailJSRelay {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &EmailJSRelay{
		Endpoint: DefaultEmailJSURL,
		Tokens:   tokens,
		Client:   client,
	}
}

// Configured reports whether all three tokens are set to real values.
func Configured(tokens types.EmailJS) bool {
	for _, tok := range []string{tokens.ServiceID, tokens.TemplateID, tokens.PublicKey} {
		tok = strings.TrimSpace(tok)
		if tok == "" || strings.HasPrefix(tok, "your_") {
			return false
		}
	}
	return true
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send posts the message once. It does not retry.
func (r *EmailJSRelay) Send(ctx context.Context, msg Message) error {
	if !Configured(r.Tokens) {
		return ErrRelayNotConfigured
	}

	payload, err := json.Marshal(emailJSRequest{
		ServiceID:  r.Tokens.ServiceID,
		TemplateID: r.Tokens.TemplateID,
		UserID:     r.Tokens.PublicKey,
		TemplateParams: map[string]string{
			"from_name":  msg.FromName,
			"from_email": msg.FromEmail,
			"message":    msg.Body,
			"to_name":    msg.ToName,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to encode email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return &SendError{Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return &SendError{Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &SendError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
