package repo

import (
	"github.com/rogerio-castellano/storefront/internal/models"
)

// InMemoryCatalogRepository is an in-memory implementation of CatalogRepository.
// It is built once and never mutated, so it is safe for concurrent readers.
type InMemoryCatalogRepository struct {
	products   []models.Product
	byID       map[int]int
	categories []string
	brands     []string
	maxPrice   int
}

// NewInMemoryCatalogRepository creates a catalog over the given products.
// The slice is copied; later changes to it are not observed.
func NewInMemoryCatalogRepository(products []models.Product) *InMemoryCatalogRepository {
	r := &InMemoryCatalogRepository{
		products: append([]models.Product(nil), products...),
		byID:     make(map[int]int, len(products)),
	}

	seenCategory := map[string]bool{}
	seenBrand := map[string]bool{}
	for i, p := range r.products {
		r.byID[p.ID] = i
		if !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			r.categories = append(r.categories, p.Category)
		}
		if !seenBrand[p.Brand] {
			seenBrand[p.Brand] = true
			r.brands = append(r.brands, p.Brand)
		}
		r.maxPrice = max(r.maxPrice, p.Price)
	}
	return r
}

// NewDefaultCatalogRepository creates the catalog seeded with the NeoShop products.
func NewDefaultCatalogRepository() *InMemoryCatalogRepository {
	return NewInMemoryCatalogRepository(SeedProducts())
}

// GetAll returns every product in seed order.
func (r *InMemoryCatalogRepository) GetAll() []models.Product {
	return append([]models.Product(nil), r.products...)
}

// GetByID retrieves a product by its ID.
func (r *InMemoryCatalogRepository) GetByID(id int) (models.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return r.products[i], nil
}

// Categories returns the distinct categories in first-occurrence order.
func (r *InMemoryCatalogRepository) Categories() []string {
	return append([]string(nil), r.categories...)
}

// Brands returns the distinct brands in first-occurrence order.
func (r *InMemoryCatalogRepository) Brands() []string {
	return append([]string(nil), r.brands...)
}

// MaxPrice returns the highest product price, or 0 for an empty catalog.
func (r *InMemoryCatalogRepository) MaxPrice() int {
	return r.maxPrice
}

// PriceCeiling returns the upper bound of the price range: the maximum price
// rounded up to a multiple of step.
func (r *InMemoryCatalogRepository) PriceCeiling(step int) int {
	if step <= 0 {
		return r.maxPrice
	}
	return (r.maxPrice + step - 1) / step * step
}
