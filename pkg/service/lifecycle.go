package service

import (
	"context"

	"github.com/go-pkgz/lgr"
)

// Lifecycle loads feeds on startup, arms active ones and disarms everything on shutdown
type Lifecycle struct {
	store Store
	sched Scheduler
}

// NewLifecycle makes lifecycle manager
func NewLifecycle(store Store, sched Scheduler) *Lifecycle {
	return &Lifecycle{store: store, sched: sched}
}

// Startup loads the store and starts every active feed. Load and start errors are logged only,
// a broken document means no prior feeds.
func (l *Lifecycle) Startup(ctx context.Context) {
	if err := l.store.Load(ctx); err != nil {
		lgr.Printf("[WARN] starting without prior feeds, %v", err)
	}
	feeds, err := l.store.All(ctx)
	if err != nil {
		lgr.Printf("[WARN] can't list feeds, %v", err)
		return
	}

	started := 0
	for _, f := range feeds {
		if !f.Active {
			continue
		}
		if err := l.sched.Start(ctx, f.ID); err != nil {
			lgr.Printf("[WARN] can't start feed %q, %v", f.Name, err)
			continue
		}
		started++
	}
	lgr.Printf("[INFO] started %d of %d feeds", started, len(feeds))
}

// Shutdown disarms all timers, in-flight deliveries are not awaited
func (l *Lifecycle) Shutdown() {
	ids := l.sched.StopAll()
	lgr.Printf("[INFO] shutdown, %d feed timers stopped", len(ids))
}

// Run starts feeds and blocks until ctx is done, then shuts down
func (l *Lifecycle) Run(ctx context.Context) error {
	l.Startup(ctx)
	<-ctx.Done()
	l.Shutdown()
	return nil
}
