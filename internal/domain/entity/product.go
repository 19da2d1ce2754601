// Package entity contains the core business objects of the project.
package entity

import "strings"

// CategoryAll is the filter value that matches every category.
const CategoryAll = "All"

// Product represents a single catalog entry. Stock is advisory only and is
// never decremented by an order.
type Product struct {
	ID            string   `json:"id"`                      // Unique, stable identifier assigned at creation.
	Name          string   `json:"name"`                    // Display name.
	Price         float64  `json:"price"`                   // Base price (MRP), >= 0.
	DiscountPrice *float64 `json:"discountPrice,omitempty"` // Effective selling price when set; must be <= Price.
	Category      string   `json:"category"`                // Free-text category label.
	Stock         int      `json:"stock"`                   // Advisory stock count, >= 0.
	Image         string   `json:"image"`                   // Image URI.
	Enabled       bool     `json:"enabled"`                 // Disabled products are hidden from the storefront.
}

// EffectivePrice returns the per-unit price actually charged: the discount
// price when set, else the base price.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}

	return p.Price
}

// FilterProducts returns the products whose name contains search
// (case-insensitive) and whose category matches exactly, in original order.
// CategoryAll (or an empty category) matches every category.
func FilterProducts(products []Product, search, category string) []Product {
	needle := strings.ToLower(search)

	matches := make([]Product, 0, len(products))
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		matches = append(matches, p)
	}

	return matches
}

// EnabledProducts returns only the storefront-visible products, in original order.
func EnabledProducts(products []Product) []Product {
	enabled := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}

	return enabled
}

// Categories returns the distinct product categories in first-seen order,
// with CategoryAll prepended.
func Categories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	categories := []string{CategoryAll}
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}

	return categories
}
