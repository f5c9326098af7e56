package cart

import "github.com/irsalhamdi/harmoni-music/core/product"

const (
	// FreeShippingThreshold is the subtotal a cart must exceed to ship free.
	FreeShippingThreshold = 500000
	ShippingFee           = 25000
)

// Item is a snapshot of a product taken when it was first added, plus the
// quantity wanted. Later catalog edits do not reach it.
type Item struct {
	product.Product
	Quantity int `json:"quantity"`
}

type Cart struct {
	Items  []Item `json:"items"`
	Count  int    `json:"count"`
	Totals Totals `json:"totals"`
}

func New(items []Item) Cart {
	if items == nil {
		items = []Item{}
	}
	return Cart{
		Items:  items,
		Count:  Count(items),
		Totals: ComputeTotals(items),
	}
}

// Count is the number of units in the cart.
func Count(items []Item) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

type ItemNew struct {
	ProductID int `json:"productId" validate:"required,gte=1"`
}

// ItemUp changes a quantity by Delta. Zero is accepted and changes nothing.
type ItemUp struct {
	Delta *int `json:"delta" validate:"required"`
}
