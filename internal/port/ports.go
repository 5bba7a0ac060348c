package port

import (
	"context"
	"encoding/json"

	"github.com/homegrocer/dashboard-cards/internal/domain"
)

// ServiceCaller is the host's remote service-call facility. Call issues one
// asynchronous action in the given service domain and returns the raw
// response, or an error carrying a human-readable message. Timeouts and
// transport details belong to the host.
type ServiceCaller interface {
	Call(ctx context.Context, serviceDomain, action string, payload map[string]any) (json.RawMessage, error)
}

// Backend is the typed view of the grocery backend the cards work against.
type Backend interface {
	GetShoppingList(ctx context.Context, listID string) (domain.ShoppingList, error)
	AddToCart(ctx context.Context, productID string, quantity int) error
	GetCartContent(ctx context.Context) (domain.CartContent, error)
	DeleteFromCart(ctx context.Context, lineID string) error
	SearchProduct(ctx context.Context, query string, limit int) ([]domain.Product, error)
}

// Catalog looks up image metadata for a batch of product ids. Best-effort:
// callers must tolerate failure and missing ids.
type Catalog interface {
	ImageLookup(ctx context.Context, ids []string) (map[string]domain.ImageMeta, error)
}

// Mount is the isolated subtree a card renders into. A card may outlive its
// mount; render paths must tolerate a detached card.
type Mount interface {
	SetHTML(html string)
}
