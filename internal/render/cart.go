package render

import (
	"html/template"

	"github.com/homegrocer/dashboard-cards/internal/domain"
)

// CartRow is one cart line plus its resolved image metadata.
type CartRow struct {
	Line       domain.CartLine
	Image      string
	AmountText string
	Removing   bool
}

// SearchRow is one search result plus its resolved image metadata.
type SearchRow struct {
	Product    domain.Product
	Image      string
	AmountText string
	Adding     bool
}

// CartState is the immutable snapshot the cart card renders from.
type CartState struct {
	Title      string
	Loading    bool
	Err        string
	Lines      []CartRow
	TotalPrice domain.Money
	TotalItems int
	Searching  bool
	SearchErr  string
	Results    []SearchRow
	Toast      *Toast
}

func (s CartState) Heading() string {
	if s.Title != "" {
		return s.Title
	}
	return "Cart"
}

var cartTmpl = template.Must(template.New("cart").Funcs(funcs).Parse(`<div class="grocery-card cart-card">
<div class="card-header">{{.Heading}}</div>
{{- if .Toast}}
<div class="toast toast-{{.Toast.Kind}}">{{.Toast.Text}}</div>
{{- end}}
<div class="search">
<input class="search-input" type="text" placeholder="Search products">
<button class="search-submit"{{if .Searching}} disabled{{end}}>Search</button>
{{- if .Searching}}
<div class="search-pending">Searching…</div>
{{- end}}
{{- if .SearchErr}}
<div class="search-error">{{.SearchErr}}</div>
{{- end}}
{{- if .Results}}
<ul class="search-results">
{{- range .Results}}
<li class="result" data-id="{{.Product.ID}}">
{{- if .Image}}<img class="thumb" src="{{.Image}}" alt="">{{else}}<span class="thumb placeholder">🛒</span>{{end}}
<span class="name">{{.Product.Name}}</span>
{{- if .AmountText}}<span class="amount">{{.AmountText}}</span>{{end}}
{{- if not .Product.Price.IsZero}}<span class="price">{{money .Product.Price}}</span>{{end}}
<button class="add-one"{{if .Adding}} disabled{{end}}>Add</button>
</li>
{{- end}}
</ul>
{{- end}}
</div>
{{- if .Loading}}
<div class="loading-panel">Loading…</div>
{{- else}}
{{- if .Err}}
<div class="error-panel">{{.Err}}</div>
{{- end}}
{{- if .Lines}}
<ul class="lines">
{{- range .Lines}}
<li class="line" data-line-id="{{.Line.ID}}">
{{- if .Image}}<img class="thumb" src="{{.Image}}" alt="">{{else}}<span class="thumb placeholder">🛒</span>{{end}}
<span class="name">{{.Line.Product.Name}} ×{{.Line.Quantity}}</span>
{{- if .AmountText}}<span class="amount">{{.AmountText}}</span>{{end}}
{{- if not .Line.Product.Price.IsZero}}<span class="price">{{money .Line.Product.Price}}</span>{{end}}
<button class="remove-line"{{if .Removing}} disabled{{end}}>Remove</button>
</li>
{{- end}}
</ul>
<div class="cart-total">
<span class="total-items">{{count .TotalItems}}</span>
<span class="total-price">{{money .TotalPrice}}</span>
</div>
{{- else if not .Err}}
<div class="empty-panel">Your cart is empty</div>
{{- end}}
{{- end}}
</div>
`))

// Cart renders the cart card from a state snapshot.
func Cart(s CartState) string {
	return execute(cartTmpl, s)
}
