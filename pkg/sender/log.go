package sender

import (
	"context"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/autofeed/pkg/domain"
)

// Log is a dry-run sender, it accepts any non-empty destination and logs messages
type Log struct{}

// Resolve accepts any non-empty destination
func (Log) Resolve(_ context.Context, destination string) (bool, error) {
	return strings.TrimSpace(destination) != "", nil
}

// Send logs the message
func (Log) Send(_ context.Context, destination string, msg domain.Message) error {
	lgr.Printf("[INFO] dry-run delivery to %s: %q %q", destination, msg.Title, msg.Description)
	return nil
}
