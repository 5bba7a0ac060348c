package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// DefaultCurrency is assumed when the backend sends a bare numeric price.
var DefaultCurrency = currency.MustParseISO("CZK")

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}
