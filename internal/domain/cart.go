package domain

// Product is a read-only projection of backend catalog data. Identity is the
// backend product id; cards never deduplicate.
type Product struct {
	ID            string
	Name          string
	Brand         string
	TextualAmount string
	Price         Money
	Image         string
}

// CartLine is one cart entry. ID is the line identifier used for removal and
// is distinct from the product id: the same product may occupy several lines.
type CartLine struct {
	ID       string
	Product  Product
	Quantity int
}

type ShoppingList struct {
	Name  string
	Items []Product
}

type CartContent struct {
	Lines      []CartLine
	TotalPrice Money
	TotalItems int
}

// ImageMeta is the catalog's per-product image metadata, cached per card
// instance for its lifetime.
type ImageMeta struct {
	Image      string
	AmountText string
}
