// Package dashboardcards exposes the grocery dashboard cards to host shims:
// a shopping-list card and a cart card, each rendering HTML into a mount and
// acting through a host-provided service-call facility.
package dashboardcards

import (
	"log/slog"

	"github.com/homegrocer/dashboard-cards/internal/card"
	"github.com/homegrocer/dashboard-cards/internal/domain"
	"github.com/homegrocer/dashboard-cards/internal/port"
)

type (
	CardConfig  = domain.CardConfig
	Product     = domain.Product
	CartLine    = domain.CartLine
	ImageMeta   = domain.ImageMeta
	Money       = domain.Money
	HostContext = card.HostContext
	Option      = card.Option

	ShoppingListCard = card.ShoppingListCard
	CartCard         = card.CartCard

	ServiceCaller = port.ServiceCaller
	Catalog       = port.Catalog
	Mount         = port.Mount
)

var (
	ErrMissingConnectionID = domain.ErrMissingConnectionID
	ErrMissingListID       = domain.ErrMissingListID
)

func NewShoppingListCard(cfg CardConfig, opts ...Option) (*ShoppingListCard, error) {
	return card.NewShoppingList(cfg, opts...)
}

func NewCartCard(cfg CardConfig, catalog Catalog, opts ...Option) (*CartCard, error) {
	return card.NewCart(cfg, catalog, opts...)
}

// StubListConfig and StubCartConfig are the starting configurations host-side
// card editors offer.
func StubListConfig() CardConfig { return card.StubListConfig() }
func StubCartConfig() CardConfig { return card.StubCartConfig() }

// WithLogger routes card logging to the given slog logger.
func WithLogger(l *slog.Logger) Option {
	return card.WithLogger(l)
}
