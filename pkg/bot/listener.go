package bot

import (
	"context"

	"github.com/go-pkgz/lgr"
	tele "gopkg.in/telebot.v4"
)

// Poller is the part of telebot bot receiving updates
type Poller interface {
	Handle(endpoint any, h tele.HandlerFunc, m ...tele.MiddlewareFunc)
	Start()
	Stop()
}

// Listener receives chat messages and replies to commands
type Listener struct {
	poller Poller
	cmds   *Commands
}

// NewListener makes listener for the poller
func NewListener(poller Poller, cmds *Commands) *Listener {
	return &Listener{poller: poller, cmds: cmds}
}

// Run polls updates until ctx is done
func (l *Listener) Run(ctx context.Context) error {
	l.poller.Handle(tele.OnText, func(c tele.Context) error {
		reply := l.reply(ctx, c.Sender(), c.Text())
		if reply == "" {
			return nil
		}
		return c.Send(reply, tele.ModeHTML)
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		lgr.Printf("[INFO] telegram polling started")
		l.poller.Start() // blocks until Stop
	}()

	<-ctx.Done()
	l.poller.Stop()
	<-done
	lgr.Printf("[INFO] telegram polling stopped")
	return nil
}

func (l *Listener) reply(ctx context.Context, sender *tele.User, text string) string {
	if sender == nil {
		return ""
	}
	return l.cmds.Handle(ctx, sender.ID, text)
}
