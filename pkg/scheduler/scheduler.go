// Package scheduler owns per-feed timers. A feed has an armed timer only after Start and until
// Stop, StopAll or a restart with a new interval. Each tick hands the feed id to the delivery invoker.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/autofeed/pkg/delivery"
	"github.com/umputun/autofeed/pkg/domain"
)

//go:generate moq -out mocks/feed_getter.go -pkg mocks -skip-ensure -fmt goimports . FeedGetter
//go:generate moq -out mocks/invoker.go -pkg mocks -skip-ensure -fmt goimports . Invoker

// FeedGetter reads feed definitions
type FeedGetter interface {
	Get(ctx context.Context, id string) (domain.Feed, error)
}

// Invoker makes one delivery attempt for a feed
type Invoker interface {
	Deliver(ctx context.Context, id string) delivery.Outcome
}

// Ticker is the subset of time.Ticker used by the scheduler
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

// Params defines scheduler dependencies and settings
type Params struct {
	Store           FeedGetter
	Invoker         Invoker
	Unit            time.Duration                  // duration of one interval minute, time.Minute if not set
	DeliveryTimeout time.Duration                  // limit for a single delivery, 30s if not set
	NewTicker       func(d time.Duration) Ticker   // ticker factory, real ticker if not set
	OnOutcome       func(outcome delivery.Outcome) // optional hook called after each delivery
}

// Scheduler keeps one timer per running feed, joined with the store by feed id only
type Scheduler struct {
	store           FeedGetter
	invoker         Invoker
	unit            time.Duration
	deliveryTimeout time.Duration
	newTicker       func(d time.Duration) Ticker
	onOutcome       func(outcome delivery.Outcome)

	mu     sync.Mutex
	timers map[string]*timer
}

// timer is a cancellable ticking task of a single feed
type timer struct {
	cancel   context.CancelFunc
	interval time.Duration
	inFlight atomic.Bool
}

type realTicker struct{ *time.Ticker }

func (t realTicker) Chan() <-chan time.Time { return t.C }

// NewScheduler makes a scheduler with no armed timers
func NewScheduler(params Params) *Scheduler {
	if params.Unit <= 0 {
		params.Unit = time.Minute
	}
	if params.DeliveryTimeout <= 0 {
		params.DeliveryTimeout = 30 * time.Second
	}
	if params.NewTicker == nil {
		params.NewTicker = func(d time.Duration) Ticker { return realTicker{time.NewTicker(d)} }
	}
	return &Scheduler{
		store:           params.Store,
		invoker:         params.Invoker,
		unit:            params.Unit,
		deliveryTimeout: params.DeliveryTimeout,
		newTicker:       params.NewTicker,
		onOutcome:       params.OnOutcome,
		timers:          make(map[string]*timer),
	}
}

// Start arms timer for the feed, an already armed timer is replaced.
// Timer lifetime is not bound to ctx cancellation, only to Stop.
func (s *Scheduler) Start(ctx context.Context, id string) error {
	feed, err := s.store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("start feed %s: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.timers[id]; ok {
		prev.cancel()
		delete(s.timers, id)
	}

	tctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	t := &timer{cancel: cancel, interval: feed.Interval(s.unit)}
	s.timers[id] = t
	ticker := s.newTicker(t.interval)
	go s.run(tctx, id, t, ticker)

	lgr.Printf("[INFO] started feed %q (%s), every %d minutes", feed.Name, id, feed.IntervalMinutes)
	return nil
}

// Stop disarms feed timer, returns false if it wasn't armed. In-flight delivery is not interrupted
func (s *Scheduler) Stop(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.timers[id]
	if !ok {
		return false
	}
	t.cancel()
	delete(s.timers, id)
	lgr.Printf("[INFO] stopped feed %s", id)
	return true
}

// StopAll disarms every timer and returns ids of stopped feeds
func (s *Scheduler) StopAll() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.timers))
	for id, t := range s.timers {
		t.cancel()
		ids = append(ids, id)
	}
	s.timers = make(map[string]*timer)
	sort.Strings(ids)
	if len(ids) > 0 {
		lgr.Printf("[INFO] stopped %d feeds", len(ids))
	}
	return ids
}

// Running checks if feed has an armed timer
func (s *Scheduler) Running(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[id]
	return ok
}

// Armed returns sorted ids of all feeds with armed timers
func (s *Scheduler) Armed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.timers))
	for id := range s.timers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Trigger delivers the feed right away, outside of its timer
func (s *Scheduler) Trigger(ctx context.Context, id string) (delivery.Outcome, error) {
	if _, err := s.store.Get(ctx, id); err != nil {
		return delivery.Outcome{}, fmt.Errorf("trigger feed %s: %w", id, err)
	}
	dctx, cancel := context.WithTimeout(ctx, s.deliveryTimeout)
	defer cancel()
	res := s.invoker.Deliver(dctx, id)
	s.report(res)
	return res, nil
}

func (s *Scheduler) run(ctx context.Context, id string, t *timer, ticker Ticker) {
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			s.tick(ctx, id, t)
		}
	}
}

// tick starts a delivery unless the previous one of the same feed is still running,
// in which case the tick is dropped. Deliveries don't delay the ticker.
func (s *Scheduler) tick(ctx context.Context, id string, t *timer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.timers[id]; !ok || cur != t || ctx.Err() != nil {
		return // stopped or replaced
	}
	if !t.inFlight.CompareAndSwap(false, true) {
		lgr.Printf("[WARN] feed %s still delivering, tick dropped", id)
		return
	}

	go func() {
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.deliveryTimeout)
		defer cancel()
		res := s.invoker.Deliver(dctx, id)
		t.inFlight.Store(false) // next tick may deliver while this outcome is reported
		s.report(res)
	}()
}

// report logs delivery outcome, the only place delivery failures are observed
func (s *Scheduler) report(res delivery.Outcome) {
	var perr *domain.PersistenceError
	switch {
	case res.Delivered && res.Err == nil:
		lgr.Printf("[INFO] delivered feed %q to %s", res.FeedName, res.Destination)
	case res.Delivered && errors.As(res.Err, &perr):
		lgr.Printf("[WARN] delivered feed %q to %s, but delivery time not saved: %v", res.FeedName, res.Destination, res.Err)
	case res.Skipped:
		lgr.Printf("[DEBUG] feed %q inactive, delivery skipped", res.FeedName)
	case res.Err != nil:
		lgr.Printf("[WARN] %v", res.Err)
	}
	if s.onOutcome != nil {
		s.onOutcome(res)
	}
}
