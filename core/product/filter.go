package product

import (
	"net/url"
	"sort"
	"strings"
)

const (
	SortPopular   = "popular"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

type Filter struct {
	Search   string
	Category string
	Brand    string
	Sort     string
}

func FilterFromQuery(q url.Values) Filter {
	f := Filter{
		Search:   strings.TrimSpace(q.Get("search")),
		Category: q.Get("category"),
		Brand:    q.Get("brand"),
		Sort:     q.Get("sort"),
	}
	if f.Category == "all" {
		f.Category = ""
	}
	if f.Brand == "all" {
		f.Brand = ""
	}
	return f
}

// Apply filters by name, category and brand, then orders the result. The
// popular order is the stored order; ties keep it as well.
func (f Filter) Apply(products []Product) []Product {
	search := strings.ToLower(f.Search)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Brand != "" && p.Brand != f.Brand {
			continue
		}
		out = append(out, p)
	}

	var less func(a, b Product) bool
	switch f.Sort {
	case SortPriceLow:
		less = func(a, b Product) bool { return a.Price < b.Price }
	case SortPriceHigh:
		less = func(a, b Product) bool { return a.Price > b.Price }
	case SortRating:
		less = func(a, b Product) bool { return a.Rating > b.Rating }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
