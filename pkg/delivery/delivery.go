// Package delivery makes a single delivery attempt of a feed. It never logs or retries,
// the outcome is returned to the caller which decides how to report it.
package delivery

import (
	"context"
	"fmt"
	"time"

	"github.com/umputun/autofeed/pkg/domain"
)

//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/sender.go -pkg mocks -skip-ensure -fmt goimports . Sender
//go:generate moq -out mocks/renderer.go -pkg mocks -skip-ensure -fmt goimports . Renderer

// FeedStore is the part of the feed store used by the invoker
type FeedStore interface {
	Get(ctx context.Context, id string) (domain.Feed, error)
	RecordDelivery(ctx context.Context, id string, ts time.Time) error
}

// Sender resolves destinations and sends messages
type Sender interface {
	Resolve(ctx context.Context, destination string) (bool, error)
	Send(ctx context.Context, destination string, msg domain.Message) error
}

// Renderer makes a message from feed payload
type Renderer interface {
	Render(p domain.Payload) (domain.Message, error)
}

// Outcome is the result of one delivery attempt
type Outcome struct {
	FeedID      string
	FeedName    string
	Destination string
	Delivered   bool
	Skipped     bool // feed was inactive at tick time
	At          time.Time
	Err         error // *domain.DeliveryFailure, or *domain.PersistenceError when delivered but not recorded
}

// Invoker delivers feeds by id
type Invoker struct {
	store    FeedStore
	sender   Sender
	renderer Renderer
	now      func() time.Time
}

// NewInvoker makes delivery invoker
func NewInvoker(store FeedStore, sender Sender, renderer Renderer) *Invoker {
	return &Invoker{store: store, sender: sender, renderer: renderer, now: time.Now}
}

// Deliver re-reads feed from the store and makes exactly one delivery attempt.
// lastDeliveredAt is recorded only on success.
func (i *Invoker) Deliver(ctx context.Context, id string) (res Outcome) {
	res = Outcome{FeedID: id}
	stage := "lookup"
	defer func() {
		if r := recover(); r != nil {
			res.Delivered = false
			res.Err = &domain.DeliveryFailure{FeedID: id, Destination: res.Destination, Stage: stage,
				Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	feed, err := i.store.Get(ctx, id)
	if err != nil {
		res.Err = &domain.DeliveryFailure{FeedID: id, Stage: stage, Err: err}
		return res
	}
	res.FeedName, res.Destination = feed.Name, feed.Destination

	if !feed.Active {
		res.Skipped = true
		return res
	}

	stage = "resolve"
	ok, err := i.sender.Resolve(ctx, feed.Destination)
	if err != nil || !ok {
		if err == nil {
			err = fmt.Errorf("destination %q not found", feed.Destination)
		}
		res.Err = &domain.DeliveryFailure{FeedID: id, Destination: feed.Destination, Stage: stage, Err: err}
		return res
	}

	stage = "render"
	msg, err := i.renderer.Render(feed.Payload)
	if err != nil {
		res.Err = &domain.DeliveryFailure{FeedID: id, Destination: feed.Destination, Stage: stage, Err: err}
		return res
	}

	stage = "send"
	if err := i.sender.Send(ctx, feed.Destination, msg); err != nil {
		res.Err = &domain.DeliveryFailure{FeedID: id, Destination: feed.Destination, Stage: stage, Err: err}
		return res
	}

	stage = "record"
	res.Delivered, res.At = true, i.now().UTC()
	if err := i.store.RecordDelivery(ctx, id, res.At); err != nil {
		res.Err = &domain.PersistenceError{Op: "save", Path: "feed " + id, Err: err}
	}
	return res
}
