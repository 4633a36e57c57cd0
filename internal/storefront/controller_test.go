package storefront

import (
	"errors"
	"sync"
	"testing"

	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController() *Controller {
	catalog := repo.NewDefaultCatalogRepository()
	return NewController(catalog, catalog.PriceCeiling(100))
}

func productIDs(products []models.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestController_DefaultView(t *testing.T) {
	c := newTestController()
	v := c.View()

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, productIDs(v.Products))
	assert.Equal(t, repo.DefaultProductFilter(13000), v.Filter)
	assert.Len(t, v.Categories, 4)
	assert.Len(t, v.Brands, 5)
}

func TestController_FilterActions(t *testing.T) {
	c := newTestController()

	v := c.ToggleCategory("Электроника")
	assert.Equal(t, []int{1, 4, 6}, productIDs(v.Products))

	v = c.ToggleBrand("SoundMax")
	assert.Equal(t, []int{1, 6}, productIDs(v.Products))

	v = c.SetPriceRange(5000, 15000)
	assert.Equal(t, []int{6}, productIDs(v.Products))
	assert.Equal(t, 13000, v.Filter.MaxPrice)

	v = c.ToggleCategory("Обувь")
	assert.Equal(t, []int{6}, productIDs(v.Products))

	v = c.SetPriceRange(0, 100)
	assert.Empty(t, v.Products)

	v = c.ResetFilters()
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, productIDs(v.Products))
	assert.Equal(t, repo.DefaultProductFilter(13000), c.Filter())
}

func TestController_ViewFilterIsACopy(t *testing.T) {
	c := newTestController()
	v := c.ToggleBrand("TechLife")
	v.Filter.Brands[0] = "SoundMax"

	assert.Equal(t, []string{"TechLife"}, c.Filter().Brands)
}

func TestController_CartActions(t *testing.T) {
	c := newTestController()

	_, err := c.AddToCart(1)
	require.NoError(t, err)
	_, err = c.AddToCart(1)
	require.NoError(t, err)
	snap, err := c.AddToCart(5)
	require.NoError(t, err)

	require.Len(t, snap.Items, 2)
	assert.Equal(t, 2*4990+1990, snap.TotalPrice)
	assert.Equal(t, 3, snap.TotalItems)

	snap = c.UpdateQuantity(1, -2)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 5, snap.Items[0].ID)

	snap = c.RemoveFromCart(5)
	assert.True(t, snap.IsEmpty())
	assert.Equal(t, 0, snap.TotalPrice)
}

func TestController_AddUnknownProduct(t *testing.T) {
	c := newTestController()
	_, err := c.AddToCart(999)
	assert.True(t, errors.Is(err, repo.ErrProductNotFound))
	assert.True(t, c.Cart().IsEmpty())
}

func TestController_CartIndependentOfFilter(t *testing.T) {
	c := newTestController()
	_, err := c.AddToCart(4)
	require.NoError(t, err)

	c.SetPriceRange(0, 100)
	assert.Equal(t, 12990, c.Cart().TotalPrice)
}

func TestController_ConcurrentAdds(t *testing.T) {
	c := newTestController()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.AddToCart(2)
		}()
	}
	wg.Wait()

	snap := c.Cart()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 50, snap.Items[0].Quantity)
	assert.Equal(t, 50*7990, snap.TotalPrice)
}
