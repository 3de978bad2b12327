// Package catalog holds the pure view-model logic behind the storefront
// listing: filtering, price display, and effective cash-on-delivery
// availability. Nothing here touches the store.
package catalog

import (
	"fmt"
	"strings"

	"darpanwears/internal/models"
)

// AllCategories is the sentinel category value that disables category
// filtering.
const AllCategories = "All"

// FilterCatalog returns the visible subset of products for a search term and
// category, preserving the input order. The category match is exact and
// case-sensitive; the name search is a case-insensitive substring match. The
// search term is matched literally, without trimming, so a whitespace-only
// term behaves as a real substring.
func FilterCatalog(products []models.Product, searchTerm, category string) []models.Product {
	out := make([]models.Product, 0, len(products))
	needle := strings.ToLower(searchTerm)

	for _, product := range products {
		if category != AllCategories && product.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(product.Name), needle) {
			continue
		}
		out = append(out, product)
	}
	return out
}

// FormatPrice renders an integer rupee amount for display.
func FormatPrice(amount int) string {
	return fmt.Sprintf("₹%d", amount)
}

// EffectiveCOD reports whether cash on delivery can be offered for a product:
// both the store-wide toggle and the product-level flag must allow it.
func EffectiveCOD(globalEnabled bool, product models.Product) bool {
	return globalEnabled && product.CODAvailable()
}
