package render

import (
	"html/template"

	"github.com/homegrocer/dashboard-cards/internal/domain"
)

// ListItem is one shopping-list row.
type ListItem struct {
	Product domain.Product
	Adding  bool
}

// ListState is the immutable snapshot the shopping-list card renders from.
type ListState struct {
	Title     string
	ListName  string
	Loading   bool
	Err       string
	Items     []ListItem
	AddingAll bool
	Outcomes  []Outcome
	Toast     *Toast
}

// Heading prefers the configured title over the backend list name.
func (s ListState) Heading() string {
	if s.Title != "" {
		return s.Title
	}
	if s.ListName != "" {
		return s.ListName
	}
	return "Shopping list"
}

var listTmpl = template.Must(template.New("list").Funcs(funcs).Parse(`<div class="grocery-card shopping-list-card">
<div class="card-header">{{.Heading}}</div>
{{- if .Toast}}
<div class="toast toast-{{.Toast.Kind}}">{{.Toast.Text}}</div>
{{- end}}
{{- if .Loading}}
<div class="loading-panel">Loading…</div>
{{- else}}
{{- if .Err}}
<div class="error-panel">{{.Err}}</div>
{{- end}}
{{- if .Items}}
<div class="item-count">{{count (len .Items)}}</div>
<button class="add-all"{{if .AddingAll}} disabled{{end}}>Add all to cart</button>
{{- if .Outcomes}}
<ul class="result-strip">
{{- range .Outcomes}}
<li class="{{if .OK}}result-ok{{else}}result-failed{{end}}">{{.Name}}{{if not .OK}}: {{.Err}}{{end}}</li>
{{- end}}
</ul>
{{- end}}
<ul class="items">
{{- range .Items}}
<li class="item" data-id="{{.Product.ID}}">
{{- if .Product.Image}}<img class="thumb" src="{{.Product.Image}}" alt="">{{else}}<span class="thumb placeholder">🛒</span>{{end}}
<span class="name">{{.Product.Name}}</span>
{{- if .Product.Brand}}<span class="brand">{{.Product.Brand}}</span>{{end}}
{{- if .Product.TextualAmount}}<span class="amount">{{.Product.TextualAmount}}</span>{{end}}
{{- if not .Product.Price.IsZero}}<span class="price">{{money .Product.Price}}</span>{{end}}
<button class="add-one"{{if .Adding}} disabled{{end}}>Add</button>
</li>
{{- end}}
</ul>
{{- else if not .Err}}
<div class="empty-panel">The shopping list is empty</div>
{{- end}}
{{- end}}
</div>
`))

// List renders the shopping-list card from a state snapshot.
func List(s ListState) string {
	return execute(listTmpl, s)
}
