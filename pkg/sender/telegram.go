package sender

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v4"

	"github.com/umputun/autofeed/pkg/domain"
)

//go:generate moq -out mocks/telegram_bot.go -pkg mocks -skip-ensure -fmt goimports . TelegramBot

const telegramCaptionLimit = 1024

// TelegramBot is the part of telebot api used by the sender
type TelegramBot interface {
	ChatByID(id int64) (*tele.Chat, error)
	ChatByUsername(name string) (*tele.Chat, error)
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Telegram delivers messages to chats and channels, destination is a numeric chat id or @username
type Telegram struct {
	bot     TelegramBot
	limiter *rate.Limiter
}

// recipient is a raw chat_id value, telegram accepts both ids and @usernames there
type recipient string

func (r recipient) Recipient() string { return string(r) }

// NewTelegram makes telegram sender limited to ratePerSec messages per second
func NewTelegram(bot TelegramBot, ratePerSec int) *Telegram {
	if ratePerSec <= 0 {
		ratePerSec = 20
	}
	return &Telegram{bot: bot, limiter: rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec)}
}

// Resolve checks the chat exists and is reachable by the bot
func (t *Telegram) Resolve(_ context.Context, destination string) (bool, error) {
	destination = strings.TrimSpace(destination)
	var err error
	switch {
	case strings.HasPrefix(destination, "@") && len(destination) > 1:
		_, err = t.bot.ChatByUsername(destination)
	default:
		id, perr := strconv.ParseInt(destination, 10, 64)
		if perr != nil {
			return false, nil
		}
		_, err = t.bot.ChatByID(id)
	}
	if err != nil {
		if errors.Is(err, tele.ErrChatNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("resolve chat %s: %w", destination, err)
	}
	return true, nil
}

// Send posts message as html, with thumbnail it goes as a photo with caption
func (t *Telegram) Send(ctx context.Context, destination string, msg domain.Message) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}
	to := recipient(strings.TrimSpace(destination))
	opts := &tele.SendOptions{ParseMode: tele.ModeHTML}

	if msg.Thumbnail == "" {
		if _, err := t.bot.Send(to, msg.HTML, opts); err != nil {
			return fmt.Errorf("send to %s: %w", destination, err)
		}
		return nil
	}

	photo := &tele.Photo{File: tele.FromURL(msg.Thumbnail)}
	if utf8.RuneCountInString(msg.HTML) <= telegramCaptionLimit {
		photo.Caption = msg.HTML
		if _, err := t.bot.Send(to, photo, opts); err != nil {
			return fmt.Errorf("send photo to %s: %w", destination, err)
		}
		return nil
	}

	if _, err := t.bot.Send(to, photo, opts); err != nil {
		return fmt.Errorf("send photo to %s: %w", destination, err)
	}
	if _, err := t.bot.Send(to, msg.HTML, opts); err != nil {
		return fmt.Errorf("send to %s: %w", destination, err)
	}
	return nil
}
