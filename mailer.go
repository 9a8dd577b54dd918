package imamsite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Message is an outgoing plain-text email.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Text    string
}

// Mailer sends outgoing mail. The zero value of the engine uses the
// Resend API when an API key is configured, otherwise logMailer.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// ResendMailer delivers mail through the Resend HTTP API.
type ResendMailer struct {
	apiKey string
	from   string
	http   *http.Client
}

// NewResendMailer creates a ResendMailer. from is the configured sender
// address, which must belong to a domain verified with Resend.
func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		apiKey: apiKey,
		from:   from,
		http:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	payload := map[string]interface{}{
		"from":    m.from,
		"to":      []string{msg.To},
		"subject": msg.Subject,
		"text":    msg.Text,
	}
	if msg.ReplyTo != "" {
		payload["reply_to"] = msg.ReplyTo
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.http.Do(req)
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("resend: status %d: %s", resp.StatusCode, detail)
	}
	return nil
}

// logMailer logs messages instead of sending them. Used when no Resend
// API key is configured, typically in development.
type logMailer struct{}

func (logMailer) Send(_ context.Context, msg Message) error {
	log.Printf("mail (not sent): to=%s subject=%q\n%s", msg.To, msg.Subject, msg.Text)
	return nil
}
