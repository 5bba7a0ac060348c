// Package card implements the two dashboard cards: a shopping-list card and a
// cart card. Each instance owns its configuration, view state and image cache;
// nothing is shared across instances. All remote failures are converted into
// view state and rendered, never returned to the host.
package card

import (
	"log/slog"
	"time"

	"github.com/homegrocer/dashboard-cards/internal/domain"
	"github.com/homegrocer/dashboard-cards/internal/port"
)

const (
	// addQuantity is the quantity for every add-to-cart action.
	addQuantity = 1
	// searchLimit bounds product search results.
	searchLimit = 10
	// searchMinRunes is the shortest trimmed query that triggers a search.
	searchMinRunes = 2
)

// HostContext is what the host hands a card on attachment. It may be handed
// over repeatedly during the card's life.
type HostContext struct {
	Caller port.ServiceCaller
}

type options struct {
	logger   *slog.Logger
	toastTTL time.Duration
}

type Option func(*options)

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithToastTTL overrides the notification auto-dismiss delay.
func WithToastTTL(ttl time.Duration) Option {
	return func(o *options) { o.toastTTL = ttl }
}

func applyOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// StubListConfig is the starting configuration host-side editors offer for a
// new shopping-list card.
func StubListConfig() domain.CardConfig {
	return domain.CardConfig{Title: "Shopping list"}
}

// StubCartConfig is the starting configuration host-side editors offer for a
// new cart card.
func StubCartConfig() domain.CardConfig {
	return domain.CardConfig{Title: "Cart"}
}
