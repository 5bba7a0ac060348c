package client_test

import (
	"errors"
	"io"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/homegrocer/dashboard-cards/internal/client"
	"github.com/homegrocer/dashboard-cards/internal/domain"
	"github.com/homegrocer/dashboard-cards/internal/mocks"
	"github.com/homegrocer/dashboard-cards/internal/port"
	"github.com/homegrocer/dashboard-cards/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

var cmpMoney = cmp.Options{
	cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	}),
	cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	}),
}

func newBackend(t *testing.T) (*mocks.MockServiceCaller, port.Backend) {
	t.Helper()

	caller := mocks.NewMockServiceCaller()
	backend, err := client.New(caller,
		domain.CardConfig{ConnectionID: "conn-1", ListID: "list-1"},
		logger.New(logger.Options{Writer: io.Discard}),
	)
	require.NoError(t, err)

	return caller, backend
}

func TestNew(t *testing.T) {
	caller := mocks.NewMockServiceCaller()

	_, err := client.New(nil, domain.CardConfig{ConnectionID: "conn-1"}, nil)
	require.EqualError(t, err, "caller is nil")

	_, err = client.New(caller, domain.CardConfig{}, nil)
	require.ErrorIs(t, err, domain.ErrMissingConnectionID)

	_, err = client.New(caller, domain.CardConfig{ConnectionID: "conn-1"}, nil)
	require.NoError(t, err)
}

func TestGetShoppingList(t *testing.T) {
	tests := []struct {
		name      string
		listID    string
		response  string
		callErr   error
		want      domain.ShoppingList
		wantError string
	}{
		{
			name:   "list with mixed prices: ok",
			listID: "list-1",
			response: `{"name":"Weekend","items":[
				{"id":10,"name":"Milk","brand":"Madeta","textualAmount":"1 l","price":30},
				{"id":"11","name":"Butter","price":{"amount":"89.90","currency":"CZK"},"image":"https://img/butter.png"}
			]}`,
			want: domain.ShoppingList{
				Name: "Weekend",
				Items: []domain.Product{
					{ID: "10", Name: "Milk", Brand: "Madeta", TextualAmount: "1 l",
						Price: domain.NewMoney(decimal.NewFromInt(30), domain.DefaultCurrency)},
					{ID: "11", Name: "Butter", Image: "https://img/butter.png",
						Price: domain.NewMoney(decimal.RequireFromString("89.90"), domain.DefaultCurrency)},
				},
			},
		},
		{
			name:     "empty list: ok",
			listID:   "list-1",
			response: `{"name":"Weekend","items":[]}`,
			want:     domain.ShoppingList{Name: "Weekend"},
		},
		{
			name:      "empty list id: error",
			listID:    "",
			wantError: "listID is empty",
		},
		{
			name:      "call fails: wrapped error",
			listID:    "list-1",
			callErr:   errors.New("backend down"),
			wantError: "caller.Call get_shopping_list: backend down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller, backend := newBackend(t)
			if tt.callErr != nil {
				caller.Fail("get_shopping_list", tt.callErr)
			} else if tt.response != "" {
				caller.Respond("get_shopping_list", tt.response)
			}

			got, err := backend.GetShoppingList(t.Context(), tt.listID)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.want, got, cmpMoney))

			calls := caller.CallsFor("get_shopping_list")
			require.Len(t, calls, 1)
			assert.Equal(t, domain.DefaultServiceDomain, calls[0].Domain)
			assert.Equal(t, "conn-1", calls[0].Payload["connectionId"])
			assert.Equal(t, tt.listID, calls[0].Payload["listId"])
		})
	}
}

func TestAddToCart(t *testing.T) {
	tests := []struct {
		name      string
		productID string
		quantity  int
		callErr   error
		wantError string
	}{
		{name: "add one: ok", productID: "10", quantity: 1},
		{name: "empty product id: error", productID: "", quantity: 1, wantError: "productID is empty"},
		{name: "zero quantity: error", productID: "10", quantity: 0, wantError: "quantity[0] must be positive"},
		{name: "call fails: wrapped error", productID: "10", quantity: 1,
			callErr: errors.New("out of stock"), wantError: "caller.Call add_to_cart: out of stock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller, backend := newBackend(t)
			if tt.callErr != nil {
				caller.Fail("add_to_cart", tt.callErr)
			}

			err := backend.AddToCart(t.Context(), tt.productID, tt.quantity)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				if tt.callErr == nil {
					assert.Empty(t, caller.Calls())
				}
				return
			}
			require.NoError(t, err)

			calls := caller.CallsFor("add_to_cart")
			require.Len(t, calls, 1)
			assert.Equal(t, "conn-1", calls[0].Payload["connectionId"])
			assert.Equal(t, tt.productID, calls[0].Payload["productId"])
			assert.Equal(t, tt.quantity, calls[0].Payload["quantity"])
		})
	}
}

func TestGetCartContent(t *testing.T) {
	caller, backend := newBackend(t)
	caller.Respond("get_cart_content",
		`{"lines":[{"id":1,"productId":10,"name":"Milk","quantity":2,"price":30}],"totalPrice":30,"totalItems":2}`)

	got, err := backend.GetCartContent(t.Context())
	require.NoError(t, err)

	want := domain.CartContent{
		Lines: []domain.CartLine{
			{
				ID: "1",
				Product: domain.Product{
					ID:    "10",
					Name:  "Milk",
					Price: domain.NewMoney(decimal.NewFromInt(30), domain.DefaultCurrency),
				},
				Quantity: 2,
			},
		},
		TotalPrice: domain.NewMoney(decimal.NewFromInt(30), domain.DefaultCurrency),
		TotalItems: 2,
	}
	assert.Empty(t, cmp.Diff(want, got, cmpMoney))

	calls := caller.CallsFor("get_cart_content")
	require.Len(t, calls, 1)
	assert.Equal(t, "conn-1", calls[0].Payload["connectionId"])
}

func TestGetCartContent_InvalidCurrency(t *testing.T) {
	caller, backend := newBackend(t)
	caller.Respond("get_cart_content",
		`{"lines":[],"totalPrice":{"amount":"10","currency":"NOPE"},"totalItems":0}`)

	_, err := backend.GetCartContent(t.Context())
	require.ErrorContains(t, err, "currency[NOPE] is not valid")
}

func TestDeleteFromCart(t *testing.T) {
	caller, backend := newBackend(t)

	require.EqualError(t, backend.DeleteFromCart(t.Context(), ""), "lineID is empty")
	assert.Empty(t, caller.Calls())

	lineID := gofakeit.UUID()
	require.NoError(t, backend.DeleteFromCart(t.Context(), lineID))

	calls := caller.CallsFor("delete_from_cart")
	require.Len(t, calls, 1)
	assert.Equal(t, lineID, calls[0].Payload["lineId"])
}

func TestSearchProduct(t *testing.T) {
	caller, backend := newBackend(t)
	caller.Respond("search_product",
		`{"results":[{"id":42,"name":"Rohlík","price":3.9}]}`)

	got, err := backend.SearchProduct(t.Context(), "rohlik", 10)
	require.NoError(t, err)

	want := []domain.Product{
		{ID: "42", Name: "Rohlík",
			Price: domain.NewMoney(decimal.RequireFromString("3.9"), domain.DefaultCurrency)},
	}
	assert.Empty(t, cmp.Diff(want, got, cmpMoney))

	calls := caller.CallsFor("search_product")
	require.Len(t, calls, 1)
	assert.Equal(t, "rohlik", calls[0].Payload["query"])
	assert.Equal(t, 10, calls[0].Payload["limit"])
}

func TestSearchProduct_Validation(t *testing.T) {
	caller, backend := newBackend(t)

	_, err := backend.SearchProduct(t.Context(), "", 10)
	require.EqualError(t, err, "query is empty")

	_, err = backend.SearchProduct(t.Context(), "milk", 0)
	require.EqualError(t, err, "limit[0] must be positive")

	assert.Empty(t, caller.Calls())
}
