package client

import (
	"encoding/json"
	"fmt"

	"github.com/homegrocer/dashboard-cards/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// wireID tolerates backends that send ids as numbers or strings.
type wireID string

func (w *wireID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*w = wireID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %s", b)
	}
	*w = wireID(n.String())
	return nil
}

type wireProduct struct {
	ID            wireID          `json:"id"`
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	TextualAmount string          `json:"textualAmount"`
	Price         json.RawMessage `json:"price"`
	Image         string          `json:"image"`
}

type wireCartLine struct {
	ID            wireID          `json:"id"`
	ProductID     wireID          `json:"productId"`
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	TextualAmount string          `json:"textualAmount"`
	Price         json.RawMessage `json:"price"`
	Image         string          `json:"image"`
	Quantity      int             `json:"quantity"`
}

type wireShoppingList struct {
	Name  string        `json:"name"`
	Items []wireProduct `json:"items"`
}

type wireCartContent struct {
	Lines      []wireCartLine  `json:"lines"`
	TotalPrice json.RawMessage `json:"totalPrice"`
	TotalItems int             `json:"totalItems"`
}

type wireSearchResults struct {
	Results []wireProduct `json:"results"`
}

type wirePrice struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// parsePrice accepts either a bare number or {amount, currency}. A missing
// price maps to zero in the default currency.
func parsePrice(raw json.RawMessage) (domain.Money, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return domain.NewMoney(decimal.Zero, domain.DefaultCurrency), nil
	}

	var scalar decimal.Decimal
	if err := json.Unmarshal(raw, &scalar); err == nil {
		return domain.NewMoney(scalar, domain.DefaultCurrency), nil
	}

	var structured wirePrice
	if err := json.Unmarshal(raw, &structured); err != nil {
		return domain.Money{}, fmt.Errorf("price is neither number nor object: %s", raw)
	}

	unit := domain.DefaultCurrency
	if structured.Currency != "" {
		parsed, err := currency.ParseISO(structured.Currency)
		if err != nil {
			return domain.Money{}, fmt.Errorf("currency[%s] is not valid: %w", structured.Currency, err)
		}
		unit = parsed
	}

	return domain.NewMoney(structured.Amount, unit), nil
}

func mapProduct(wp wireProduct) (domain.Product, error) {
	price, err := parsePrice(wp.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("parsePrice: %w", err)
	}

	return domain.Product{
		ID:            string(wp.ID),
		Name:          wp.Name,
		Brand:         wp.Brand,
		TextualAmount: wp.TextualAmount,
		Price:         price,
		Image:         wp.Image,
	}, nil
}

func mapProducts(wps []wireProduct) ([]domain.Product, error) {
	var products []domain.Product

	for _, wp := range wps {
		product, err := mapProduct(wp)
		if err != nil {
			return nil, fmt.Errorf("mapProduct: %w", err)
		}

		products = append(products, product)
	}

	return products, nil
}

func mapCartLine(wl wireCartLine) (domain.CartLine, error) {
	price, err := parsePrice(wl.Price)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("parsePrice: %w", err)
	}

	return domain.CartLine{
		ID: string(wl.ID),
		Product: domain.Product{
			ID:            string(wl.ProductID),
			Name:          wl.Name,
			Brand:         wl.Brand,
			TextualAmount: wl.TextualAmount,
			Price:         price,
			Image:         wl.Image,
		},
		Quantity: wl.Quantity,
	}, nil
}

func mapCartLines(wls []wireCartLine) ([]domain.CartLine, error) {
	var lines []domain.CartLine

	for _, wl := range wls {
		line, err := mapCartLine(wl)
		if err != nil {
			return nil, fmt.Errorf("mapCartLine: %w", err)
		}

		lines = append(lines, line)
	}

	return lines, nil
}
