package card

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/homegrocer/dashboard-cards/internal/client"
	"github.com/homegrocer/dashboard-cards/internal/domain"
	"github.com/homegrocer/dashboard-cards/internal/notify"
	"github.com/homegrocer/dashboard-cards/internal/port"
	"github.com/homegrocer/dashboard-cards/internal/render"
)

// ShoppingListCard shows one named shopping list and pushes its items into
// the cart, one at a time or all at once.
type ShoppingListCard struct {
	mu     sync.Mutex
	cfg    domain.CardConfig
	logger *slog.Logger
	toast  *notify.Toast

	backend port.Backend
	mount   port.Mount

	attached bool
	stale    bool
	gen      uint64

	loading   bool
	err       string
	listName  string
	items     []domain.Product
	addingAll bool
	adding    map[string]bool
	outcomes  []render.Outcome
}

// NewShoppingList validates the configuration and builds an idle card. No
// fetch and no render happen before Attach.
func NewShoppingList(cfg domain.CardConfig, opts ...Option) (*ShoppingListCard, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.ListID == "" {
		return nil, domain.ErrMissingListID
	}

	o := applyOptions(opts)
	c := &ShoppingListCard{
		cfg:    cfg,
		logger: o.logger,
		adding: make(map[string]bool),
	}
	c.toast = notify.New(o.toastTTL, c.render)
	return c, nil
}

// SetMount points the card at its render target. A nil mount detaches the
// card; in-flight handlers keep running and their renders become no-ops.
func (c *ShoppingListCard) SetMount(m port.Mount) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mount = m
	c.renderLocked()
}

// Attach hands the host context to the card. The first attach (or the first
// one after MarkStale) triggers the initial fetch; later attaches only
// re-render.
func (c *ShoppingListCard) Attach(ctx context.Context, host HostContext) {
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
func (c *ShoppingListCard) MarkStale() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stale = true
}

// Refresh fetches the list contents. Deliberately not gated: a user-triggered
// refresh runs even while another is in flight, and the generation counter
// makes sure only the newest response lands.
func (c *ShoppingListCard) Refresh(ctx context.Context) {
	c.mu.Lock()
	backend := c.backend
	if backend == nil {
		c.mu.Unlock()
		return
	}
	c.gen++
	gen := c.gen
	c.loading = true
	c.err = ""
	c.outcomes = nil
	c.renderLocked()
	c.mu.Unlock()

	list, err := backend.GetShoppingList(ctx, c.cfg.ListID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// A newer refresh owns the state now.
		return
	}
	c.loading = false
	if err != nil {
		// Keep the last-known items visible under the error.
		c.err = err.Error()
	} else {
		c.listName = list.Name
		c.items = list.Items
	}
	c.renderLocked()
}

// AddAll pushes every listed item into the cart sequentially, collecting a
// per-item outcome in list order. A failing item never aborts the rest.
func (c *ShoppingListCard) AddAll(ctx context.Context) {
	c.mu.Lock()
	backend := c.backend
	if backend == nil || c.addingAll {
		c.mu.Unlock()
		return
	}
	c.addingAll = true
	c.outcomes = nil
	items := append([]domain.Product(nil), c.items...)
	c.renderLocked()
	c.mu.Unlock()

	outcomes := make([]render.Outcome, 0, len(items))
	for _, item := range items {
		outcome := render.Outcome{Name: item.Name}
		if err := backend.AddToCart(ctx, item.ID, addQuantity); err != nil {
			outcome.Err = err.Error()
		}
		outcomes = append(outcomes, outcome)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.addingAll = false
	c.outcomes = outcomes
	c.renderLocked()
}

// AddItem pushes one item into the cart and reports the result through the
// toast surface.
func (c *ShoppingListCard) AddItem(ctx context.Context, product domain.Product) {
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
}

// SizeHint estimates the card height for the host layout.
func (c *ShoppingListCard) SizeHint() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return render.SizeHint(len(c.items))
}

func (c *ShoppingListCard) Config() domain.CardConfig {
	return c.cfg
}

func (c *ShoppingListCard) render() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderLocked()
}

func (c *ShoppingListCard) renderLocked() {
	if c.mount == nil {
		return
	}
	c.mount.SetHTML(render.List(c.snapshotLocked()))
}

func (c *ShoppingListCard) snapshotLocked() render.ListState {
	items := make([]render.ListItem, 0, len(c.items))
	for _, p := range c.items {
		items = append(items, render.ListItem{
			Product: p,
			Adding:  c.adding[p.ID],
		})
	}

	s := render.ListState{
		Title:     c.cfg.Title,
		ListName:  c.listName,
		Loading:   c.loading,
		Err:       c.err,
		Items:     items,
		AddingAll: c.addingAll,
		Outcomes:  append([]render.Outcome(nil), c.outcomes...),
	}
	if n := c.toast.Current(); n != nil {
		s.Toast = &render.Toast{Text: n.Text, Kind: n.Kind.String()}
	}
	return s
}
