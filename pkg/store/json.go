package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/autofeed/pkg/domain"
)

// JSON keeps feeds in memory and mirrors them to a single JSON array document.
// Save failures don't roll back memory state, the process keeps working with what it has
// and SaveErr reports the degraded mode until the next successful save.
type JSON struct {
	path string

	mu      sync.RWMutex
	feeds   map[string]domain.Feed
	saveErr error

	now   func() time.Time
	newID func() string
}

// NewJSON makes a JSON document store for the given path
func NewJSON(path string) *JSON {
	if path == "" {
		path = "feeds.json"
	}
	return &JSON{
		path:  path,
		feeds: make(map[string]domain.Feed),
		now:   time.Now,
		newID: newID,
	}
}

// Load reads persisted document. Missing file means no feeds, a broken one is logged and skipped
func (s *JSON) Load(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feeds = make(map[string]domain.Feed)

	data, err := os.ReadFile(s.path) //nolint:gosec // path comes from config
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			lgr.Printf("[INFO] no feeds document at %s, starting empty", s.path)
			return nil
		}
		lgr.Printf("[WARN] can't read feeds from %s: %v", s.path, err)
		return &domain.PersistenceError{Op: "load", Path: s.path, Err: err}
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil
	}

	var feeds []domain.Feed
	if err := json.Unmarshal(data, &feeds); err != nil {
		lgr.Printf("[WARN] can't parse feeds document %s, starting empty: %v", s.path, err)
		return &domain.PersistenceError{Op: "load", Path: s.path, Err: err}
	}

	for _, f := range feeds {
		if f.ID == "" {
			lgr.Printf("[WARN] skip feed %q without id", f.Name)
			continue
		}
		s.feeds[f.ID] = f
	}
	lgr.Printf("[INFO] loaded %d feeds from %s", len(s.feeds), s.path)
	return nil
}

// Save writes all feeds to the document
func (s *JSON) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

// SaveErr returns the error of the last save, nil if it succeeded
func (s *JSON) SaveErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saveErr
}

// Close is a no-op, every mutation is already on disk
func (s *JSON) Close() error { return nil }

// Create stores a new feed with a fresh id and creation time
func (s *JSON) Create(ctx context.Context, feed domain.Feed) (domain.Feed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	for {
		if _, exists := s.feeds[id]; !exists {
			break
		}
		id = s.newID()
	}
	feed.ID = id
	feed.CreatedAt = s.now().UTC()
	feed.LastDeliveredAt = nil
	s.feeds[id] = feed.Clone()
	s.persist(ctx)
	return feed, nil
}

// Get returns feed by id
func (s *JSON) Get(_ context.Context, id string) (domain.Feed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.feeds[id]
	if !ok {
		return domain.Feed{}, fmt.Errorf("get feed %s: %w", id, domain.ErrFeedNotFound)
	}
	return f.Clone(), nil
}

// All returns all feeds ordered by creation time
func (s *JSON) All(_ context.Context) ([]domain.Feed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.allLocked(), nil
}

// FindByName returns the first feed with case-insensitive name match
func (s *JSON) FindByName(_ context.Context, name string) (domain.Feed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.allLocked() {
		if strings.EqualFold(f.Name, name) {
			return f, nil
		}
	}
	return domain.Feed{}, fmt.Errorf("find feed %q: %w", name, domain.ErrFeedNotFound)
}

// Update replaces editable fields of an existing feed, id, creation and delivery times are kept
func (s *JSON) Update(ctx context.Context, feed domain.Feed) (domain.Feed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.feeds[feed.ID]
	if !ok {
		return domain.Feed{}, fmt.Errorf("update feed %s: %w", feed.ID, domain.ErrFeedNotFound)
	}
	cur.Name = feed.Name
	cur.IntervalMinutes = feed.IntervalMinutes
	cur.Destination = feed.Destination
	cur.Payload = feed.Payload
	cur.Active = feed.Active
	s.feeds[cur.ID] = cur
	s.persist(ctx)
	return cur.Clone(), nil
}

// Delete removes feed, returns false if it didn't exist
func (s *JSON) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.feeds[id]; !ok {
		return false, nil
	}
	delete(s.feeds, id)
	s.persist(ctx)
	return true, nil
}

// SetActive sets active flag of the feed
func (s *JSON) SetActive(ctx context.Context, id string, active bool) (domain.Feed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.feeds[id]
	if !ok {
		return domain.Feed{}, fmt.Errorf("set active for feed %s: %w", id, domain.ErrFeedNotFound)
	}
	f.Active = active
	s.feeds[id] = f
	s.persist(ctx)
	return f.Clone(), nil
}

// RecordDelivery sets last successful delivery time
func (s *JSON) RecordDelivery(ctx context.Context, id string, ts time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.feeds[id]
	if !ok {
		return fmt.Errorf("record delivery for feed %s: %w", id, domain.ErrFeedNotFound)
	}
	ts = ts.UTC()
	f.LastDeliveredAt = &ts
	s.feeds[id] = f
	s.persist(ctx)
	return nil
}

func (s *JSON) allLocked() []domain.Feed {
	res := make([]domain.Feed, 0, len(s.feeds))
	for _, f := range s.feeds {
		res = append(res, f.Clone())
	}
	sortFeeds(res)
	return res
}

// persist saves after a mutation, failure is reported as a warning only
func (s *JSON) persist(ctx context.Context) {
	if err := s.saveLocked(ctx); err != nil {
		lgr.Printf("[WARN] feeds kept in memory only, %v", err)
	}
}

func (s *JSON) saveLocked(ctx context.Context) error {
	data, err := json.MarshalIndent(s.allLocked(), "", "  ")
	if err != nil {
		s.saveErr = &domain.PersistenceError{Op: "save", Path: s.path, Err: err}
		return s.saveErr
	}

	// the write must not be skipped because the caller gave up, the mutation is already applied in memory
	retrier := repeater.NewBackoff(3, 20*time.Millisecond, repeater.WithMaxDelay(200*time.Millisecond))
	err = retrier.Do(context.WithoutCancel(ctx), func() error { return writeAtomic(s.path, data) })
	if err != nil {
		s.saveErr = &domain.PersistenceError{Op: "save", Path: s.path, Err: err}
		return s.saveErr
	}
	s.saveErr = nil
	return nil
}

// writeAtomic writes data to a temp file in the target dir and renames it over the target
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("make dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
