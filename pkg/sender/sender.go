// Package sender implements delivery transports. Each sender resolves a destination
// and sends a rendered message to it.
package sender

import (
	"context"
	"fmt"
	"strings"

	"github.com/umputun/autofeed/pkg/domain"
)

// Sender is a delivery transport
type Sender interface {
	Resolve(ctx context.Context, destination string) (bool, error)
	Send(ctx context.Context, destination string, msg domain.Message) error
}

// Multi routes destinations by "<prefix>:" to registered senders, unprefixed ones go to the default
type Multi struct {
	def    Sender
	routes map[string]Sender
}

// NewMulti makes a router with the default sender, def may be nil
func NewMulti(def Sender) *Multi {
	return &Multi{def: def, routes: map[string]Sender{}}
}

// Route registers sender for destinations starting with prefix + ":"
func (m *Multi) Route(prefix string, s Sender) *Multi {
	m.routes[prefix] = s
	return m
}

// Resolve checks destination with the matching sender
func (m *Multi) Resolve(ctx context.Context, destination string) (bool, error) {
	s, dest := m.pick(destination)
	if s == nil {
		return false, nil
	}
	return s.Resolve(ctx, dest)
}

// Send delivers message with the matching sender
func (m *Multi) Send(ctx context.Context, destination string, msg domain.Message) error {
	s, dest := m.pick(destination)
	if s == nil {
		return fmt.Errorf("no sender for destination %q", destination)
	}
	return s.Send(ctx, dest, msg)
}

func (m *Multi) pick(destination string) (Sender, string) {
	if prefix, rest, ok := strings.Cut(destination, ":"); ok {
		if s, found := m.routes[prefix]; found {
			return s, rest
		}
	}
	return m.def, destination
}
