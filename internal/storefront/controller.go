package storefront

import (
	"sync"

	"github.com/rogerio-castellano/storefront/internal/cart"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/repo"
)

// View is the catalog as one shopper currently sees it.
type View struct {
	Products   []models.Product
	Categories []string
	Brands     []string
	Filter     repo.ProductFilter
}

// CartSnapshot is a point-in-time copy of a shopper's cart with its totals.
type CartSnapshot struct {
	Items      []models.CartItem
	TotalPrice int
	TotalItems int
}

func (s CartSnapshot) IsEmpty() bool {
	return len(s.Items) == 0
}

// Controller owns the filter and cart state of one shopper. Every method runs
// under the controller's lock, so each action completes before the next one
// starts and no partial update is observable.
type Controller struct {
	mu      sync.Mutex
	catalog repo.CatalogRepository
	filter  repo.ProductFilter
	cart    *cart.Cart
}

// NewController creates a controller with the default filter over
// [0, ceiling] and an empty cart.
func NewController(catalog repo.CatalogRepository, ceiling int) *Controller {
	return &Controller{
		catalog: catalog,
		filter:  repo.DefaultProductFilter(ceiling),
		cart:    cart.New(),
	}
}

// View returns the filtered products together with the filter options.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) viewLocked() View {
	return View{
		Products:   repo.FilterProducts(c.catalog.GetAll(), c.filter),
		Categories: c.catalog.Categories(),
		Brands:     c.catalog.Brands(),
		Filter:     c.filter.Clone(),
	}
}

// Filter returns a copy of the current filter state.
func (c *Controller) Filter() repo.ProductFilter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter.Clone()
}

func (c *Controller) SetPriceRange(minPrice, maxPrice int) View {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.SetPriceRange(minPrice, maxPrice)
	return c.viewLocked()
}

func (c *Controller) ToggleCategory(category string) View {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.ToggleCategory(category)
	return c.viewLocked()
}

func (c *Controller) ToggleBrand(brand string) View {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.ToggleBrand(brand)
	return c.viewLocked()
}

func (c *Controller) ResetFilters() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.Reset()
	return c.viewLocked()
}

// Cart returns a snapshot of the cart.
func (c *Controller) Cart() CartSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cartLocked()
}

func (c *Controller) cartLocked() CartSnapshot {
	return CartSnapshot{
		Items:      c.cart.Items(),
		TotalPrice: c.cart.TotalPrice(),
		TotalItems: c.cart.TotalItems(),
	}
}

// AddToCart looks productID up in the catalog and adds one unit of it.
// It fails only with repo.ErrProductNotFound.
func (c *Controller) AddToCart(productID int) (CartSnapshot, error) {
	product, err := c.catalog.GetByID(productID)
	if err != nil {
		return CartSnapshot{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart.Add(product)
	return c.cartLocked(), nil
}

func (c *Controller) UpdateQuantity(productID, delta int) CartSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart.UpdateQuantity(productID, delta)
	return c.cartLocked()
}

func (c *Controller) RemoveFromCart(productID int) CartSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart.Remove(productID)
	return c.cartLocked()
}
