package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/homegrocer/dashboard-cards/internal/domain"
	"github.com/homegrocer/dashboard-cards/internal/port"
)

const (
	actionGetShoppingList = "get_shopping_list"
	actionAddToCart       = "add_to_cart"
	actionGetCartContent  = "get_cart_content"
	actionDeleteFromCart  = "delete_from_cart"
	actionSearchProduct   = "search_product"
)

type backendClient struct {
	caller port.ServiceCaller
	cfg    domain.CardConfig
	logger *slog.Logger
}

func New(caller port.ServiceCaller, cfg domain.CardConfig, logger *slog.Logger) (port.Backend, error) {
	if caller == nil {
		return nil, fmt.Errorf("caller is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &backendClient{
		caller: caller,
		cfg:    cfg,
		logger: logger,
	}, nil
}

func (c *backendClient) GetShoppingList(ctx context.Context, listID string) (domain.ShoppingList, error) {
	if listID == "" {
		return domain.ShoppingList{}, fmt.Errorf("listID is empty")
	}

	resp, err := call[wireShoppingList](ctx, c, actionGetShoppingList, map[string]any{
		"connectionId": c.cfg.ConnectionID,
		"listId":       listID,
	})
	if err != nil {
		return domain.ShoppingList{}, err
	}

	items, err := mapProducts(resp.Items)
	if err != nil {
		return domain.ShoppingList{}, fmt.Errorf("mapProducts: %w", err)
	}

	return domain.ShoppingList{
		Name:  resp.Name,
		Items: items,
	}, nil
}

func (c *backendClient) AddToCart(ctx context.Context, productID string, quantity int) error {
	if productID == "" {
		return fmt.Errorf("productID is empty")
	}
	if quantity <= 0 {
		return fmt.Errorf("quantity[%d] must be positive", quantity)
	}

	_, err := call[struct{}](ctx, c, actionAddToCart, map[string]any{
		"connectionId": c.cfg.ConnectionID,
		"productId":    productID,
		"quantity":     quantity,
	})
	return err
}

func (c *backendClient) GetCartContent(ctx context.Context) (domain.CartContent, error) {
	resp, err := call[wireCartContent](ctx, c, actionGetCartContent, map[string]any{
		"connectionId": c.cfg.ConnectionID,
	})
	if err != nil {
		return domain.CartContent{}, err
	}

	lines, err := mapCartLines(resp.Lines)
	if err != nil {
		return domain.CartContent{}, fmt.Errorf("mapCartLines: %w", err)
	}

	total, err := parsePrice(resp.TotalPrice)
	if err != nil {
		return domain.CartContent{}, fmt.Errorf("parsePrice total: %w", err)
	}

	return domain.CartContent{
		Lines:      lines,
		TotalPrice: total,
		TotalItems: resp.TotalItems,
	}, nil
}

func (c *backendClient) DeleteFromCart(ctx context.Context, lineID string) error {
	if lineID == "" {
		return fmt.Errorf("lineID is empty")
	}

	_, err := call[struct{}](ctx, c, actionDeleteFromCart, map[string]any{
		"connectionId": c.cfg.ConnectionID,
		"lineId":       lineID,
	})
	return err
}

func (c *backendClient) SearchProduct(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	if query == "" {
		return nil, fmt.Errorf("query is empty")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit[%d] must be positive", limit)
	}

	resp, err := call[wireSearchResults](ctx, c, actionSearchProduct, map[string]any{
		"connectionId": c.cfg.ConnectionID,
		"query":        query,
		"limit":        limit,
	})
	if err != nil {
		return nil, err
	}

	results, err := mapProducts(resp.Results)
	if err != nil {
		return nil, fmt.Errorf("mapProducts: %w", err)
	}

	return results, nil
}
