package cart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Totals struct {
	Subtotal int `json:"subtotal"`
	Shipping int `json:"shipping"`
	Total    int `json:"total"`

	// FreeShippingGap is how much more must be spent to reach the free
	// shipping threshold, 0 once it is reached.
	FreeShippingGap int `json:"freeShippingGap"`

	Display Display `json:"display"`
}

type Display struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Total    string `json:"total"`
}

// ComputeTotals prices items. Shipping is free only when the subtotal is
// strictly greater than FreeShippingThreshold, so an empty cart still owes
// the fee.
func ComputeTotals(items []Item) Totals {
	var t Totals
	for _, it := range items {
		t.Subtotal += it.Price * it.Quantity
	}

	t.Shipping = ShippingFee
	if t.Subtotal > FreeShippingThreshold {
		t.Shipping = 0
	}
	t.Total = t.Subtotal + t.Shipping

	if t.Subtotal < FreeShippingThreshold {
		t.FreeShippingGap = FreeShippingThreshold - t.Subtotal
	}

	t.Display = Display{
		Subtotal: FormatPrice(t.Subtotal),
		Shipping: FormatPrice(t.Shipping),
		Total:    FormatPrice(t.Total),
	}
	return t
}

var printer = message.NewPrinter(language.Indonesian)

// FormatPrice renders an amount of rupiah the way the storefront shows it,
// for example "Rp 1.500.000".
func FormatPrice(amount int) string {
	return printer.Sprintf("Rp %d", amount)
}
