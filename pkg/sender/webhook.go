package sender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/umputun/autofeed/pkg/domain"
)

// Webhook posts messages as discord-style embeds to named webhook urls
type Webhook struct {
	client *http.Client
	hooks  map[string]string // destination name -> url
}

type embed struct {
	Title       string      `json:"title,omitempty"`
	URL         string      `json:"url,omitempty"`
	Description string      `json:"description,omitempty"`
	Color       *int        `json:"color,omitempty"`
	Thumbnail   *embedImage `json:"thumbnail,omitempty"`
	Footer      *embedText  `json:"footer,omitempty"`
	Timestamp   string      `json:"timestamp,omitempty"`
}

type embedImage struct {
	URL string `json:"url"`
}

type embedText struct {
	Text string `json:"text"`
}

// NewWebhook makes webhook sender, client may be nil
func NewWebhook(client *http.Client, hooks map[string]string) *Webhook {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Webhook{client: client, hooks: hooks}
}

// Resolve checks the destination is a configured hook
func (w *Webhook) Resolve(_ context.Context, destination string) (bool, error) {
	_, ok := w.hooks[destination]
	return ok, nil
}

// Send posts the message to the hook url, any non-2xx response is an error
func (w *Webhook) Send(ctx context.Context, destination string, msg domain.Message) error {
	hookURL, ok := w.hooks[destination]
	if !ok {
		return fmt.Errorf("unknown webhook %q", destination)
	}

	e := embed{Title: msg.Title, URL: msg.TitleURL, Description: msg.Description}
	if msg.HasColor {
		c := msg.Color
		e.Color = &c
	}
	if msg.Thumbnail != "" {
		e.Thumbnail = &embedImage{URL: msg.Thumbnail}
	}
	if msg.Footer != "" {
		e.Footer = &embedText{Text: msg.Footer}
	}
	if !msg.Timestamp.IsZero() {
		e.Timestamp = msg.Timestamp.UTC().Format(time.RFC3339)
	}

	body, err := json.Marshal(map[string][]embed{"embeds": {e}})
	if err != nil {
		return fmt.Errorf("marshal embed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("make request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("post to webhook %s: %w", destination, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook %s responded with %d: %s", destination, resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}
