package product

import "github.com/irsalhamdi/harmoni-music/validate"

const (
	BadgeBestSeller = "Best Seller"
	BadgePremium    = "Premium"
	BadgePromo      = "Promo"
)

type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name" validate:"required"`
	Category      string  `json:"category" validate:"required,oneof=Piano Guitar Violin Drum Saxophone"`
	Brand         string  `json:"brand" validate:"required,oneof=Yamaha Roland Fender Kawai Stentor"`
	Price         int     `json:"price" validate:"gte=0"`
	OriginalPrice *int    `json:"originalPrice,omitempty"`
	Rating        float64 `json:"rating" validate:"gte=0,lte=5"`
	Reviews       int     `json:"reviews" validate:"gte=0"`
	Stock         int     `json:"stock" validate:"gte=0"`
	Badge         string  `json:"badge,omitempty" validate:"omitempty,oneof='Best Seller' Premium Promo"`
	Image         string  `json:"image"`
	Description   string  `json:"description"`
}

func (p Product) EntityID() int { return p.ID }

func (p Product) WithID(id int) Product {
	p.ID = id
	return p
}

func (p Product) Validate() error {
	if err := validate.Check(p); err != nil {
		return err
	}
	if p.OriginalPrice != nil && *p.OriginalPrice < p.Price {
		return validate.Fail("originalPrice", "originalPrice must be greater than or equal to price")
	}
	return nil
}

// Snapshot returns a copy sharing no memory with p.
func (p Product) Snapshot() Product {
	if p.OriginalPrice != nil {
		op := *p.OriginalPrice
		p.OriginalPrice = &op
	}
	return p
}

type ProductNew struct {
	Name          string `json:"name" validate:"required"`
	Category      string `json:"category" validate:"required"`
	Brand         string `json:"brand" validate:"required"`
	Price         *int   `json:"price" validate:"required"`
	OriginalPrice *int   `json:"originalPrice"`
	Stock         int    `json:"stock"`
	Badge         string `json:"badge"`
	Image         string `json:"image"`
	Description   string `json:"description"`
}

// Product builds a product with no rating and no reviews yet.
func (pn ProductNew) Product() Product {
	return Product{
		Name:          pn.Name,
		Category:      pn.Category,
		Brand:         pn.Brand,
		Price:         *pn.Price,
		OriginalPrice: originalPrice(pn.OriginalPrice),
		Stock:         pn.Stock,
		Badge:         normalizeBadge(pn.Badge),
		Image:         pn.Image,
		Description:   pn.Description,
	}
}

type ProductUp struct {
	Name          *string `json:"name"`
	Category      *string `json:"category"`
	Brand         *string `json:"brand"`
	Price         *int    `json:"price"`
	OriginalPrice *int    `json:"originalPrice"`
	Stock         *int    `json:"stock"`
	Badge         *string `json:"badge"`
	Image         *string `json:"image"`
	Description   *string `json:"description"`
}

// Apply returns p with every field set in up replaced. Rating and reviews are
// not editable.
func (up ProductUp) Apply(p Product) Product {
	p = p.Snapshot()
	if up.Name != nil {
		p.Name = *up.Name
	}
	if up.Category != nil {
		p.Category = *up.Category
	}
	if up.Brand != nil {
		p.Brand = *up.Brand
	}
	if up.Price != nil {
		p.Price = *up.Price
	}
	if up.OriginalPrice != nil {
		p.OriginalPrice = originalPrice(up.OriginalPrice)
	}
	if up.Stock != nil {
		p.Stock = *up.Stock
	}
	if up.Badge != nil {
		p.Badge = normalizeBadge(*up.Badge)
	}
	if up.Image != nil {
		p.Image = *up.Image
	}
	if up.Description != nil {
		p.Description = *up.Description
	}
	return p
}

// originalPrice copies op. Zero or less means no original price.
func originalPrice(op *int) *int {
	if op == nil || *op <= 0 {
		return nil
	}
	v := *op
	return &v
}

// "none" is how clients clear a badge.
func normalizeBadge(b string) string {
	if b == "none" {
		return ""
	}
	return b
}
