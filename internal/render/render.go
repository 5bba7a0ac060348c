package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/homegrocer/dashboard-cards/internal/domain"
)

// Toast is the transient notification slice of a snapshot.
type Toast struct {
	Text string
	Kind string
}

// Outcome is one entry of the batch result strip, keyed by display name.
type Outcome struct {
	Name string
	Err  string
}

func (o Outcome) OK() bool { return o.Err == "" }

// SizeHint estimates the card height in host grid rows.
func SizeHint(itemCount int) int {
	hint := (itemCount+1)/2 + 2
	if hint < 1 {
		hint = 1
	}
	return hint
}

// FormatMoney renders an amount with its currency symbol.
func FormatMoney(m domain.Money) string {
	amount := m.Amount.String()
	switch m.Currency.String() {
	case "CZK":
		return amount + " Kč"
	case "EUR":
		return "€" + amount
	case "USD":
		return "$" + amount
	case "GBP":
		return "£" + amount
	default:
		return amount + " " + m.Currency.String()
	}
}

func countLabel(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

var funcs = template.FuncMap{
	"money": FormatMoney,
	"count": countLabel,
}

func execute(t *template.Template, data any) string {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return `<div class="grocery-card"><div class="error-panel">` +
			template.HTMLEscapeString(err.Error()) + `</div></div>`
	}
	return b.String()
}
