package repo

import (
	"slices"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// ProductFilter holds the shopper's catalog constraints. Empty Categories or
// Brands place no restriction on that dimension.
type ProductFilter struct {
	MinPrice   int      `json:"min_price"`
	MaxPrice   int      `json:"max_price"`
	Ceiling    int      `json:"ceiling"`
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
}

// DefaultProductFilter returns the unrestricted filter over [0, ceiling].
func DefaultProductFilter(ceiling int) ProductFilter {
	if ceiling < 0 {
		ceiling = 0
	}
	return ProductFilter{MinPrice: 0, MaxPrice: ceiling, Ceiling: ceiling}
}

// Reset restores the full price range and clears the selections.
func (pf *ProductFilter) Reset() {
	*pf = DefaultProductFilter(pf.Ceiling)
}

// SetPriceRange clamps both bounds into [0, Ceiling] and swaps them when
// reversed, so MinPrice <= MaxPrice always holds.
func (pf *ProductFilter) SetPriceRange(minPrice, maxPrice int) {
	minPrice = clamp(minPrice, 0, pf.Ceiling)
	maxPrice = clamp(maxPrice, 0, pf.Ceiling)
	if minPrice > maxPrice {
		minPrice, maxPrice = maxPrice, minPrice
	}
	pf.MinPrice = minPrice
	pf.MaxPrice = maxPrice
}

// ToggleCategory selects category if it is not selected and deselects it otherwise.
func (pf *ProductFilter) ToggleCategory(category string) {
	pf.Categories = toggle(pf.Categories, category)
}

// ToggleBrand selects brand if it is not selected and deselects it otherwise.
func (pf *ProductFilter) ToggleBrand(brand string) {
	pf.Brands = toggle(pf.Brands, brand)
}

// Clone returns a copy that shares no slices with pf.
func (pf ProductFilter) Clone() ProductFilter {
	pf.Categories = slices.Clone(pf.Categories)
	pf.Brands = slices.Clone(pf.Brands)
	return pf
}

func toggle(selected []string, value string) []string {
	if i := slices.Index(selected, value); i >= 0 {
		out := slices.Delete(slices.Clone(selected), i, i+1)
		if len(out) == 0 {
			return nil
		}
		return out
	}
	return append(slices.Clone(selected), value)
}

func matchesFilter(p models.Product, pf ProductFilter) bool {
	if p.Price < pf.MinPrice || p.Price > pf.MaxPrice {
		return false
	}
	if len(pf.Categories) > 0 && !slices.Contains(pf.Categories, p.Category) {
		return false
	}
	if len(pf.Brands) > 0 && !slices.Contains(pf.Brands, p.Brand) {
		return false
	}
	return true
}

// FilterProducts returns the products matching pf in catalog order.
func FilterProducts(products []models.Product, pf ProductFilter) []models.Product {
	filtered := []models.Product{}
	for _, p := range products {
		if matchesFilter(p, pf) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
