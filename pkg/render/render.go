// Package render turns a feed payload into a transport-neutral message
package render

import (
	"errors"
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/autofeed/pkg/domain"
)

// Renderer builds messages from payloads, sanitizing user supplied text
type Renderer struct {
	strict *bluemonday.Policy
	rich   *bluemonday.Policy
	now    func() time.Time
}

// New makes a renderer with the subset of html tags chat transports understand
func New() *Renderer {
	rich := bluemonday.NewPolicy()
	rich.AllowElements("b", "strong", "i", "em", "u", "s", "code", "pre", "br")
	rich.AllowAttrs("href").OnElements("a")
	rich.AllowURLSchemes("http", "https")
	rich.RequireParseableURLs(true)

	return &Renderer{strict: bluemonday.StrictPolicy(), rich: rich, now: time.Now}
}

// Render validates payload and makes a message from it
func (r *Renderer) Render(p domain.Payload) (domain.Message, error) {
	title := r.plain(p.Title)
	description := strings.TrimSpace(p.Description)
	if title == "" && r.plain(description) == "" {
		return domain.Message{}, errors.New("payload has neither title nor description")
	}

	msg := domain.Message{
		Title:       title,
		Description: r.plain(description),
		Footer:      r.plain(p.Footer),
		Timestamp:   r.now().UTC(),
	}

	if p.Color != "" {
		c, err := ParseColor(p.Color)
		if err != nil {
			return domain.Message{}, err
		}
		msg.Color, msg.HasColor = c, true
	}

	if p.TitleURL != "" {
		if err := checkURL(p.TitleURL); err != nil {
			return domain.Message{}, fmt.Errorf("title url: %w", err)
		}
		msg.TitleURL = p.TitleURL
	}

	if p.Thumbnail != "" {
		if err := checkURL(p.Thumbnail); err != nil {
			return domain.Message{}, fmt.Errorf("thumbnail: %w", err)
		}
		msg.Thumbnail = p.Thumbnail
	}

	msg.HTML = r.html(msg, description)
	return msg, nil
}

// html makes the telegram-style rendition, description may carry allowed tags
func (r *Renderer) html(msg domain.Message, description string) string {
	var sb strings.Builder
	if msg.Title != "" {
		title := "<b>" + html.EscapeString(msg.Title) + "</b>"
		if msg.TitleURL != "" {
			title = `<a href="` + html.EscapeString(msg.TitleURL) + `">` + title + "</a>"
		}
		sb.WriteString(title)
	}
	if desc := r.rich.Sanitize(description); desc != "" {
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(desc)
	}
	if msg.Footer != "" {
		sb.WriteString("\n\n<i>" + html.EscapeString(msg.Footer) + "</i>")
	}
	return r.rich.Sanitize(sb.String())
}

// plain strips all tags and returns unescaped text
func (r *Renderer) plain(s string) string {
	return strings.TrimSpace(html.UnescapeString(r.strict.Sanitize(s)))
}

// ParseColor parses #RRGGBB (leading # optional) into 0xRRGGBB
func ParseColor(s string) (int, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("color %q is not in #RRGGBB form", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q is not in #RRGGBB form", s)
	}
	return int(v), nil
}

func checkURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("parse %q: %w", s, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme in %q", s)
	}
	if u.Host == "" {
		return fmt.Errorf("no host in %q", s)
	}
	return nil
}
