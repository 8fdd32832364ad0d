// Package bot implements telegram chat commands for feed management.
package bot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/autofeed/pkg/delivery"
	"github.com/umputun/autofeed/pkg/domain"
)

//go:generate moq -out mocks/feed_service.go -pkg mocks -skip-ensure -fmt goimports . FeedService

// FeedService is the set of feed operations available from chat
type FeedService interface {
	Status(ctx context.Context) ([]domain.FeedStatus, error)
	ToggleFeed(ctx context.Context, name string) (domain.Feed, error)
	DeleteFeedByName(ctx context.Context, name string) (domain.Feed, error)
	SendNow(ctx context.Context, id string) (delivery.Outcome, error)
}

const helpText = `<b>Autofeed commands</b>
/feeds - list feeds
/status - feeds with last delivery
/toggle &lt;name&gt; - enable or disable feed
/delete &lt;name&gt; - delete feed
/send &lt;name&gt; - deliver feed now`

// Commands handles text commands, replies are telegram HTML
type Commands struct {
	feeds   FeedService
	ownerID int64
}

// NewCommands makes command handler, mutating commands are allowed for ownerID only
func NewCommands(feeds FeedService, ownerID int64) *Commands {
	return &Commands{feeds: feeds, ownerID: ownerID}
}

// Handle runs command from text message of userID and returns reply.
// Empty reply means the message is not a known command.
func (c *Commands) Handle(ctx context.Context, userID int64, text string) string {
	cmd, arg := parse(text)
	switch cmd {
	case "start", "help":
		return helpText
	case "feeds":
		return c.list(ctx)
	case "status":
		return c.status(ctx)
	case "toggle", "delete", "send":
		if c.ownerID == 0 || userID != c.ownerID {
			lgr.Printf("[WARN] rejected /%s from user %d", cmd, userID)
			return "❌ Only the bot owner can use this command."
		}
		if arg == "" {
			return fmt.Sprintf("❌ Usage: /%s &lt;name&gt;", cmd)
		}
	default:
		return ""
	}

	lgr.Printf("[INFO] /%s %q by %d", cmd, arg, userID)
	switch cmd {
	case "toggle":
		return c.toggle(ctx, arg)
	case "delete":
		return c.delete(ctx, arg)
	default:
		return c.send(ctx, arg)
	}
}

func (c *Commands) list(ctx context.Context) string {
	feeds, err := c.feeds.Status(ctx)
	if err != nil {
		return failure(err)
	}
	if len(feeds) == 0 {
		return "📭 No autofeeds configured."
	}
	var sb strings.Builder
	sb.WriteString("📡 <b>Autofeeds:</b>")
	for _, f := range feeds {
		fmt.Fprintf(&sb, "\n%s <b>%s</b> - every %dm to %s", dot(f.Active), esc(f.Name), f.IntervalMinutes, esc(f.Destination))
	}
	return sb.String()
}

func (c *Commands) status(ctx context.Context) string {
	feeds, err := c.feeds.Status(ctx)
	if err != nil {
		return failure(err)
	}
	if len(feeds) == 0 {
		return "📭 No autofeeds configured."
	}
	var sb strings.Builder
	sb.WriteString("📡 <b>Autofeed status</b>")
	for _, f := range feeds {
		state := "🟢 Active"
		if !f.Active {
			state = "🔴 Inactive"
		}
		if f.Active && !f.Running {
			state += ", not scheduled"
		}
		last := "never"
		if f.LastDeliveredAt != nil {
			last = f.LastDeliveredAt.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(&sb, "\n\n<b>%s</b>\n%s\n<b>Destination:</b> %s\n<b>Interval:</b> %d minutes\n<b>Last delivered:</b> %s",
			esc(f.Name), state, esc(f.Destination), f.IntervalMinutes, last)
	}
	return sb.String()
}

func (c *Commands) toggle(ctx context.Context, name string) string {
	feed, err := c.feeds.ToggleFeed(ctx, name)
	if err != nil {
		return notFoundOr(name, err)
	}
	state := "enabled"
	if !feed.Active {
		state = "disabled"
	}
	return fmt.Sprintf("🔄 Autofeed \"%s\" %s.", esc(feed.Name), state)
}

func (c *Commands) delete(ctx context.Context, name string) string {
	feed, err := c.feeds.DeleteFeedByName(ctx, name)
	if err != nil {
		return notFoundOr(name, err)
	}
	return fmt.Sprintf("🗑️ Autofeed \"%s\" deleted.", esc(feed.Name))
}

func (c *Commands) send(ctx context.Context, name string) string {
	feeds, err := c.feeds.Status(ctx)
	if err != nil {
		return failure(err)
	}
	for _, f := range feeds {
		if !strings.EqualFold(f.Name, name) {
			continue
		}
		res, err := c.feeds.SendNow(ctx, f.ID)
		switch {
		case err != nil:
			return notFoundOr(name, err)
		case res.Skipped:
			return fmt.Sprintf("⏸️ Autofeed \"%s\" is inactive, nothing sent.", esc(f.Name))
		case !res.Delivered:
			return failure(res.Err)
		}
		return fmt.Sprintf("✅ Autofeed \"%s\" delivered to %s.", esc(f.Name), esc(f.Destination))
	}
	return notFoundOr(name, domain.ErrFeedNotFound)
}

// parse splits "/cmd@bot args" into lower-cased command and trimmed argument
func parse(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", ""
	}
	cmd, arg, _ = strings.Cut(text[1:], " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}

func notFoundOr(name string, err error) string {
	if errors.Is(err, domain.ErrFeedNotFound) {
		return fmt.Sprintf("❌ Autofeed \"%s\" not found.", esc(name))
	}
	return failure(err)
}

func failure(err error) string {
	if err == nil {
		err = errors.New("unknown error")
	}
	return "❌ Error: " + esc(err.Error())
}

func dot(active bool) string {
	if active {
		return "🟢"
	}
	return "🔴"
}

func esc(s string) string { return html.EscapeString(s) }
