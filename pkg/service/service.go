// Package service exposes boundary operations on feeds and keeps scheduler timers
// in sync with stored active flags: every mutation is persisted first, then timers are re-armed or disarmed.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/autofeed/pkg/delivery"
	"github.com/umputun/autofeed/pkg/domain"
)

//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

// Store is the feed store used by the service
type Store interface {
	Load(ctx context.Context) error
	Create(ctx context.Context, feed domain.Feed) (domain.Feed, error)
	Get(ctx context.Context, id string) (domain.Feed, error)
	All(ctx context.Context) ([]domain.Feed, error)
	FindByName(ctx context.Context, name string) (domain.Feed, error)
	Update(ctx context.Context, feed domain.Feed) (domain.Feed, error)
	Delete(ctx context.Context, id string) (bool, error)
	SetActive(ctx context.Context, id string, active bool) (domain.Feed, error)
}

// Scheduler arms and disarms feed timers
type Scheduler interface {
	Start(ctx context.Context, id string) error
	Stop(id string) bool
	StopAll() []string
	Running(id string) bool
	Trigger(ctx context.Context, id string) (delivery.Outcome, error)
}

// FeedRequest holds editable feed fields for create and update
type FeedRequest struct {
	Name            string         `json:"name"`
	IntervalMinutes int            `json:"intervalMinutes"`
	Destination     string         `json:"destination"`
	Payload         domain.Payload `json:"payload"`
	Active          *bool          `json:"active,omitempty"` // true if not set
}

// FeedService implements feed operations for http and telegram command callers.
// Mutations are serialized, so a store change and the matching timer change are never interleaved.
type FeedService struct {
	store Store
	sched Scheduler
	now   func() time.Time
	mu    sync.Mutex
}

// NewFeedService makes feed service
func NewFeedService(store Store, sched Scheduler) *FeedService {
	return &FeedService{store: store, sched: sched, now: time.Now}
}

// CreateFeed validates request, stores a new feed and starts it if active.
// Invalid request is rejected with *domain.ValidationError and nothing is stored.
func (s *FeedService) CreateFeed(ctx context.Context, req FeedRequest) (domain.Feed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		req.Name = fmt.Sprintf("Web Feed %d", s.now().UnixMilli())
	}
	if err := validate(req); err != nil {
		return domain.Feed{}, err
	}
	if err := s.checkName(ctx, req.Name, ""); err != nil {
		return domain.Feed{}, err
	}

	feed, err := s.store.Create(ctx, domain.Feed{
		Name:            req.Name,
		IntervalMinutes: req.IntervalMinutes,
		Destination:     strings.TrimSpace(req.Destination),
		Payload:         req.Payload,
		Active:          req.Active == nil || *req.Active,
	})
	if err != nil {
		return domain.Feed{}, fmt.Errorf("create feed %q: %w", req.Name, err)
	}
	lgr.Printf("[INFO] created feed %q (%s), every %d minutes to %s", feed.Name, feed.ID, feed.IntervalMinutes, feed.Destination)

	if feed.Active {
		if err := s.sched.Start(ctx, feed.ID); err != nil {
			return feed, fmt.Errorf("start created feed %s: %w", feed.ID, err)
		}
	}
	return feed, nil
}

// ListFeeds returns all feeds ordered by creation time
func (s *FeedService) ListFeeds(ctx context.Context) ([]domain.Feed, error) {
	feeds, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}
	return feeds, nil
}

// GetFeed returns feed by id
func (s *FeedService) GetFeed(ctx context.Context, id string) (domain.Feed, error) {
	return s.store.Get(ctx, id)
}

// DeleteFeed removes the feed and stops its timer, returns false if it didn't exist
func (s *FeedService) DeleteFeed(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteFeed(ctx, id)
}

// DeleteFeedByName deletes the feed matching name case-insensitively
func (s *FeedService) DeleteFeedByName(ctx context.Context, name string) (domain.Feed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	feed, err := s.store.FindByName(ctx, name)
	if err != nil {
		return domain.Feed{}, err
	}
	ok, err := s.deleteFeed(ctx, feed.ID)
	if err != nil {
		return domain.Feed{}, err
	}
	if !ok {
		return domain.Feed{}, fmt.Errorf("delete feed %q: %w", name, domain.ErrFeedNotFound)
	}
	return feed, nil
}

// ToggleFeed flips active flag of the feed found by name, then starts or stops its timer
func (s *FeedService) ToggleFeed(ctx context.Context, name string) (domain.Feed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	feed, err := s.store.FindByName(ctx, name)
	if err != nil {
		return domain.Feed{}, err
	}
	feed, err = s.store.SetActive(ctx, feed.ID, !feed.Active)
	if err != nil {
		return domain.Feed{}, fmt.Errorf("toggle feed %q: %w", name, err)
	}

	if !feed.Active {
		s.sched.Stop(feed.ID)
		lgr.Printf("[INFO] feed %q deactivated", feed.Name)
		return feed, nil
	}
	if err := s.sched.Start(ctx, feed.ID); err != nil {
		return feed, fmt.Errorf("start toggled feed %s: %w", feed.ID, err)
	}
	lgr.Printf("[INFO] feed %q activated", feed.Name)
	return feed, nil
}

// UpdateFeed replaces editable fields of the feed. Running timer is re-armed to pick up a new interval,
// active flag changes start or stop it.
func (s *FeedService) UpdateFeed(ctx context.Context, id string, req FeedRequest) (domain.Feed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Feed{}, err
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		req.Name = cur.Name
	}
	if err := validate(req); err != nil {
		return domain.Feed{}, err
	}
	if err := s.checkName(ctx, req.Name, id); err != nil {
		return domain.Feed{}, err
	}

	active := cur.Active
	if req.Active != nil {
		active = *req.Active
	}
	feed, err := s.store.Update(ctx, domain.Feed{ID: id, Name: req.Name, IntervalMinutes: req.IntervalMinutes,
		Destination: strings.TrimSpace(req.Destination), Payload: req.Payload, Active: active})
	if err != nil {
		return domain.Feed{}, fmt.Errorf("update feed %s: %w", id, err)
	}

	switch {
	case !feed.Active:
		s.sched.Stop(id)
	case feed.Active && (!cur.Active || s.sched.Running(id)):
		if err := s.sched.Start(ctx, id); err != nil {
			return feed, fmt.Errorf("restart updated feed %s: %w", id, err)
		}
	}
	return feed, nil
}

// SendNow delivers the feed right away regardless of its timer
func (s *FeedService) SendNow(ctx context.Context, id string) (delivery.Outcome, error) {
	return s.sched.Trigger(ctx, id)
}

// Status returns every feed with its timer state
func (s *FeedService) Status(ctx context.Context) ([]domain.FeedStatus, error) {
	feeds, err := s.ListFeeds(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]domain.FeedStatus, 0, len(feeds))
	for _, f := range feeds {
		res = append(res, domain.FeedStatus{Feed: f, Running: s.sched.Running(f.ID)})
	}
	return res, nil
}

// deleteFeed removes the feed first, so a timer can't be re-armed for it afterwards, then stops the timer
func (s *FeedService) deleteFeed(ctx context.Context, id string) (bool, error) {
	ok, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete feed %s: %w", id, err)
	}
	s.sched.Stop(id)
	if ok {
		lgr.Printf("[INFO] deleted feed %s", id)
	}
	return ok, nil
}

// checkName rejects a name already used by a feed other than exceptID
func (s *FeedService) checkName(ctx context.Context, name, exceptID string) error {
	existing, err := s.store.FindByName(ctx, name)
	switch {
	case errors.Is(err, domain.ErrFeedNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("check feed name %q: %w", name, err)
	case existing.ID != exceptID:
		return &domain.ValidationError{Field: "name", Msg: fmt.Sprintf("feed %q already exists", existing.Name)}
	}
	return nil
}

// validate checks fields the scheduler depends on, payload content is checked by the renderer at delivery
func validate(req FeedRequest) error {
	if req.IntervalMinutes < 1 {
		return &domain.ValidationError{Field: "intervalMinutes", Msg: "must be at least 1"}
	}
	if strings.TrimSpace(req.Destination) == "" {
		return &domain.ValidationError{Field: "destination", Msg: "is required"}
	}
	return nil
}
