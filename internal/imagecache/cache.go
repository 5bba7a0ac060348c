package imagecache

import (
	"context"
	"log/slog"
	"sync"

	"github.com/homegrocer/dashboard-cards/internal/domain"
	"github.com/homegrocer/dashboard-cards/internal/port"
)

// Cache holds product image metadata for the lifetime of one card instance.
// Entries are never refreshed or evicted. Lookup failures are swallowed: a
// missing image degrades to a placeholder glyph in the rendered view.
type Cache struct {
	mu      sync.Mutex
	catalog port.Catalog
	logger  *slog.Logger
	entries map[string]domain.ImageMeta
}

func New(catalog port.Catalog, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		catalog: catalog,
		logger:  logger,
		entries: make(map[string]domain.ImageMeta),
	}
}

// Resolve fetches metadata for the ids not yet cached. At most one batch
// lookup is issued per call, and none when every id is already known.
func (c *Cache) Resolve(ctx context.Context, ids []string) {
	if c.catalog == nil {
		return
	}

	c.mu.Lock()
	var missing []string
	seen := make(map[string]bool)
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := c.entries[id]; !ok {
			missing = append(missing, id)
		}
	}
	c.mu.Unlock()

	if len(missing) == 0 {
		return
	}

	metas, err := c.catalog.ImageLookup(ctx, missing)
	if err != nil {
		c.logger.DebugContext(ctx, "image lookup failed",
			slog.Int("ids", len(missing)),
			slog.Any("error", err),
		)
		return
	}

	c.mu.Lock()
	for id, meta := range metas {
		c.entries[id] = meta
	}
	c.mu.Unlock()
}

// Get returns the cached metadata for a product id.
func (c *Cache) Get(id string) (domain.ImageMeta, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	meta, ok := c.entries[id]
	return meta, ok
}

// Snapshot copies the cache for a render pass.
func (c *Cache) Snapshot() map[string]domain.ImageMeta {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]domain.ImageMeta, len(c.entries))
	for id, meta := range c.entries {
		out[id] = meta
	}
	return out
}
