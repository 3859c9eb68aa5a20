// Package recommend derives bounded product suggestions from a
// customer's purchase history. Everything here is a pure function over
// snapshots handed in by the caller.
package recommend

import (
	"strings"

	"storefront/domain"
)

const maxSuggestions = 3

// categoryRules bucket product names by keyword. Rule order is fixed
// and the first match wins, so a name hitting several buckets always
// lands in the earliest one ("Headphones" is phones, not audio).
var categoryRules = []struct {
	category string
	keywords []string
}{
	{"computers", []string{"laptop", "computer"}},
	{"phones", []string{"phone", "smartphone"}},
	{"tablets", []string{"tablet"}},
	{"audio", []string{"headphone", "earphone", "audio"}},
	{"displays", []string{"monitor", "display"}},
	{"accessories", []string{"keyboard", "mouse", "accessory"}},
}

// Categorize maps a product name onto a coarse category by
// case-insensitive substring match, or "other" when nothing matches.
func Categorize(name string) string {
	n := strings.ToLower(name)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(n, kw) {
				return rule.category
			}
		}
	}
	return "other"
}

// Suggestions returns up to three products worth showing the customer.
// With no purchase history it falls back to the first in-stock products
// in catalog order. Otherwise candidates must share a category with a
// past purchase, must not have been purchased before (by name,
// case-insensitive) and must be in stock. The result keeps catalog
// order and may be empty; callers hide the section in that case.
func Suggestions(purchases []domain.Purchase, products []domain.Product) []domain.Product {
	out := make([]domain.Product, 0, maxSuggestions)

	if len(purchases) == 0 {
		for _, p := range products {
			if p.Quantity <= 0 {
				continue
			}
			out = append(out, p)
			if len(out) == maxSuggestions {
				break
			}
		}
		return out
	}

	purchasedNames := make(map[string]bool)
	purchasedCategories := make(map[string]bool)
	for _, purchase := range purchases {
		for _, item := range purchase.Items {
			name := strings.ToLower(item.ProductName)
			purchasedNames[name] = true
			purchasedCategories[Categorize(name)] = true
		}
	}

	for _, p := range products {
		if purchasedNames[strings.ToLower(p.Name)] {
			continue
		}
		if !purchasedCategories[Categorize(p.Name)] {
			continue
		}
		if p.Quantity <= 0 {
			continue
		}
		out = append(out, p)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
