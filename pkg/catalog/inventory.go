package catalog

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// ProductFilter narrows an inventory listing. Zero fields do not filter.
type ProductFilter struct {
	// Search matches name or SKU, case-insensitively.
	Search   string
	Category string
	// LowStock keeps products with Stock at or below the threshold when > 0.
	LowStock int
	// ExpiredOnly keeps products whose expiry date is at or before Now.
	ExpiredOnly bool
	Now         time.Time
}

func (f ProductFilter) match(p Product) bool {
	if f.Search != "" {
		q := strings.ToLower(strings.TrimSpace(f.Search))
		if !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.SKU), q) {
			return false
		}
	}
	if f.Category != "" && !strings.EqualFold(p.Category, strings.TrimSpace(f.Category)) {
		return false
	}
	if f.LowStock > 0 && p.Stock > f.LowStock {
		return false
	}
	if f.ExpiredOnly {
		now := f.Now
		if now.IsZero() {
			now = time.Now()
		}
		if !p.Expired(now) {
			return false
		}
	}
	return true
}

// FilterProducts returns the matching products in their original order.
// The input slice is not modified.
func FilterProducts(products []Product, filter ProductFilter) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if filter.match(p) {
			out = append(out, p)
		}
	}
	return out
}

type SortField string

const (
	SortByName   SortField = "name"
	SortByPrice  SortField = "price"
	SortByStock  SortField = "stock"
	SortByExpiry SortField = "expiry"
)

// SortProducts returns a sorted copy. Sorting is stable; unknown fields
// keep the input order. Products without an expiry date sort last when
// ordering by expiry, in both directions.
func SortProducts(products []Product, field SortField, desc bool) []Product {
	out := slices.Clone(products)

	var compare func(a, b Product) int
	switch field {
	case SortByName:
		compare = func(a, b Product) int {
			return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	case SortByPrice:
		compare = func(a, b Product) int { return cmp.Compare(a.Price, b.Price) }
	case SortByStock:
		compare = func(a, b Product) int { return cmp.Compare(a.Stock, b.Stock) }
	case SortByExpiry:
		slices.SortStableFunc(out, func(a, b Product) int {
			switch az, bz := a.ExpiryDate.IsZero(), b.ExpiryDate.IsZero(); {
			case az && bz:
				return 0
			case az:
				return 1
			case bz:
				return -1
			}
			c := a.ExpiryDate.Compare(b.ExpiryDate)
			if desc {
				return -c
			}
			return c
		})
		return out
	default:
		return out
	}

	slices.SortStableFunc(out, func(a, b Product) int {
		if desc {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return out
}
