package repo

import (
	"errors"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// CatalogRepository defines the read-only operations over the product catalog.
type CatalogRepository interface {
	GetAll() []models.Product
	GetByID(id int) (models.Product, error)
	Categories() []string
	Brands() []string
	MaxPrice() int
	PriceCeiling(step int) int
}

// ErrProductNotFound is returned when a product is not found in the catalog.
var ErrProductNotFound = errors.New("product not found")
