package card

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/homegrocer/dashboard-cards/internal/client"
	"github.com/homegrocer/dashboard-cards/internal/domain"
	"github.com/homegrocer/dashboard-cards/internal/imagecache"
	"github.com/homegrocer/dashboard-cards/internal/notify"
	"github.com/homegrocer/dashboard-cards/internal/port"
	"github.com/homegrocer/dashboard-cards/internal/render"
)

// CartCard shows the current cart contents with product search, add and
// remove actions, backed by a per-instance image-metadata cache.
type CartCard struct {
	mu     sync.Mutex
	cfg    domain.CardConfig
	logger *slog.Logger
	toast  *notify.Toast
	images *imagecache.Cache

	backend port.Backend
	mount   port.Mount

	attached bool
	stale    bool
	fetching bool
	gen      uint64

	loading    bool
	err        string
	lines      []domain.CartLine
	totalPrice domain.Money
	totalItems int
	removing   map[string]bool

	searching bool
	searchErr string
	results   []domain.Product
	adding    map[string]bool
}

// NewCart validates the configuration and builds an idle card. The catalog is
// the external image-lookup collaborator and may be nil, in which case every
// row renders with the placeholder glyph.
func NewCart(cfg domain.CardConfig, catalog port.Catalog, opts ...Option) (*CartCard, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := applyOptions(opts)
	c := &CartCard{
		cfg:      cfg,
		logger:   o.logger,
		images:   imagecache.New(catalog, o.logger),
		removing: make(map[string]bool),
		adding:   make(map[string]bool),
	}
	c.toast = notify.New(o.toastTTL, c.render)
	return c, nil
}

// SetMount points the card at its render target; nil detaches it.
func (c *CartCard) SetMount(m port.Mount) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mount = m
	c.renderLocked()
}

// Attach hands the host context to the card. Only the first attach (or the
// first after MarkStale) fetches; later attaches re-render.
func (c *CartCard) Attach(ctx context.Context, host HostContext) {
	c.mu.Lock()
	if host.Caller != nil {
		if b, err := client.New(host.Caller, c.cfg, c.logger); err == nil {
			c.backend = b
		}
	}
	fetch := (!c.attached || c.stale) && c.backend != nil
	c.attached = true
	c.stale = false
	c.mu.Unlock()

	if fetch {
		c.Refresh(ctx)
		return
	}
	c.render()
}

// MarkStale makes the next Attach fetch again.
func (c *CartCard) MarkStale() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stale = true
}

// Refresh fetches the cart contents. A refresh already in flight makes this a
// no-op. Image metadata for the returned lines is resolved before the final
// render so rows appear with their thumbnails.
func (c *CartCard) Refresh(ctx context.Context) {
	c.mu.Lock()
	backend := c.backend
	if backend == nil || c.fetching {
		c.mu.Unlock()
		return
	}
	c.fetching = true
	c.gen++
	gen := c.gen
	c.loading = true
	c.err = ""
	c.renderLocked()
	c.mu.Unlock()

	content, err := backend.GetCartContent(ctx)

	if err == nil && len(content.Lines) > 0 {
		ids := make([]string, 0, len(content.Lines))
		for _, line := range content.Lines {
			ids = append(ids, line.Product.ID)
		}
		c.images.Resolve(ctx, ids)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetching = false
	if gen != c.gen {
		return
	}
	c.loading = false
	if err != nil {
		// Keep the last-known lines visible under the error.
		c.err = err.Error()
	} else {
		c.lines = content.Lines
		c.totalPrice = content.TotalPrice
		c.totalItems = content.TotalItems
	}
	c.renderLocked()
}

// RemoveLine deletes one cart line. Success triggers a full refresh; failure
// keeps the lines and shows the error.
func (c *CartCard) RemoveLine(ctx context.Context, lineID string) {
	c.mu.Lock()
	backend := c.backend
	if backend == nil || c.removing[lineID] {
		c.mu.Unlock()
		return
	}
	c.removing[lineID] = true
	c.renderLocked()
	c.mu.Unlock()

	err := backend.DeleteFromCart(ctx, lineID)

	c.mu.Lock()
	delete(c.removing, lineID)
	if err != nil {
		c.err = err.Error()
		c.renderLocked()
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	c.Refresh(ctx)
}

// Search runs a product search for an explicitly submitted query. Trimmed
// queries shorter than two characters clear the results without a call.
func (c *CartCard) Search(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < searchMinRunes {
		c.ClearSearch()
		return
	}

	c.mu.Lock()
	backend := c.backend
	if backend == nil {
		c.mu.Unlock()
		return
	}
	c.searching = true
	c.searchErr = ""
	c.renderLocked()
	c.mu.Unlock()

	results, err := backend.SearchProduct(ctx, query, searchLimit)

	if err == nil && len(results) > 0 {
		ids := make([]string, 0, len(results))
		for _, p := range results {
			ids = append(ids, p.ID)
		}
		c.images.Resolve(ctx, ids)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.searching = false
	if err != nil {
		c.searchErr = err.Error()
	} else {
		c.results = results
	}
	c.renderLocked()
}

// ClearSearch drops the search results without a remote call, e.g. when the
// input field is emptied.
func (c *CartCard) ClearSearch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = nil
	c.searchErr = ""
	c.renderLocked()
}

// AddProduct adds a search result to the cart, reports through the toast
// surface and refreshes the cart view on success.
func (c *CartCard) AddProduct(ctx context.Context, product domain.Product) {
	c.mu.Lock()
	backend := c.backend
	if backend == nil || c.adding[product.ID] {
		c.mu.Unlock()
		return
	}
	c.adding[product.ID] = true
	c.renderLocked()
	c.mu.Unlock()

	err := backend.AddToCart(ctx, product.ID, addQuantity)

	c.mu.Lock()
	delete(c.adding, product.ID)
	c.mu.Unlock()

	if err != nil {
		c.toast.Show(fmt.Sprintf("Could not add %s: %s", product.Name, err), notify.KindError)
		return
	}
	c.toast.Show(fmt.Sprintf("%s added to cart", product.Name), notify.KindSuccess)
	c.Refresh(ctx)
}

// SizeHint estimates the card height for the host layout.
func (c *CartCard) SizeHint() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return render.SizeHint(len(c.lines))
}

func (c *CartCard) Config() domain.CardConfig {
	return c.cfg
}

func (c *CartCard) render() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderLocked()
}

func (c *CartCard) renderLocked() {
	if c.mount == nil {
		return
	}
	c.mount.SetHTML(render.Cart(c.snapshotLocked()))
}

func (c *CartCard) snapshotLocked() render.CartState {
	rows := make([]render.CartRow, 0, len(c.lines))
	for _, line := range c.lines {
		row := render.CartRow{
			Line:       line,
			Image:      line.Product.Image,
			AmountText: line.Product.TextualAmount,
			Removing:   c.removing[line.ID],
		}
		if meta, ok := c.images.Get(line.Product.ID); ok {
			if meta.Image != "" {
				row.Image = meta.Image
			}
			if meta.AmountText != "" {
				row.AmountText = meta.AmountText
			}
		}
		rows = append(rows, row)
	}

	results := make([]render.SearchRow, 0, len(c.results))
	for _, p := range c.results {
		row := render.SearchRow{
			Product:    p,
			Image:      p.Image,
			AmountText: p.TextualAmount,
			Adding:     c.adding[p.ID],
		}
		if meta, ok := c.images.Get(p.ID); ok {
			if meta.Image != "" {
				row.Image = meta.Image
			}
			if meta.AmountText != "" {
				row.AmountText = meta.AmountText
			}
		}
		results = append(results, row)
	}

	s := render.CartState{
		Title:      c.cfg.Title,
		Loading:    c.loading,
		Err:        c.err,
		Lines:      rows,
		TotalPrice: c.totalPrice,
		TotalItems: c.totalItems,
		Searching:  c.searching,
		SearchErr:  c.searchErr,
		Results:    results,
	}
	if n := c.toast.Current(); n != nil {
		s.Toast = &render.Toast{Text: n.Text, Kind: n.Kind.String()}
	}
	return s
}
