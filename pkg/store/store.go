// Package store keeps feed definitions and persists them after every mutation.
// Two backends are provided: a flat JSON document (default) and SQLite.
package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/umputun/autofeed/pkg/domain"
)

// Store is the feed store contract shared by all backends
type Store interface {
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	Create(ctx context.Context, feed domain.Feed) (domain.Feed, error)
	Get(ctx context.Context, id string) (domain.Feed, error)
	All(ctx context.Context) ([]domain.Feed, error)
	FindByName(ctx context.Context, name string) (domain.Feed, error)
	Update(ctx context.Context, feed domain.Feed) (domain.Feed, error)
	Delete(ctx context.Context, id string) (bool, error)
	SetActive(ctx context.Context, id string, active bool) (domain.Feed, error)
	RecordDelivery(ctx context.Context, id string, ts time.Time) error
	SaveErr() error
	Close() error
}

// Config defines store backend and location
type Config struct {
	Driver string // json or sqlite
	Path   string // json document path or sqlite file
}

// New makes a store for the configured driver, it does not load persisted state
func New(ctx context.Context, cfg Config) (Store, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "json":
		return NewJSON(cfg.Path), nil
	case "sqlite":
		return NewSQLite(ctx, SQLiteConfig{DSN: sqliteDSN(cfg.Path)})
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}

func sqliteDSN(path string) string {
	if path == "" {
		path = "autofeed.db"
	}
	if strings.HasPrefix(path, "file:") {
		return path
	}
	return "file:" + path + "?cache=shared&mode=rwc&_txlock=immediate"
}

// newID makes a time-ordered feed id, falls back to random v4 if v7 can't be generated
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// sortFeeds orders feeds by creation time, id breaks ties
func sortFeeds(feeds []domain.Feed) {
	sort.SliceStable(feeds, func(i, j int) bool {
		if !feeds[i].CreatedAt.Equal(feeds[j].CreatedAt) {
			return feeds[i].CreatedAt.Before(feeds[j].CreatedAt)
		}
		return feeds[i].ID < feeds[j].ID
	})
}
