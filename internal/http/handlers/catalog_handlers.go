package handlers

import (
	"net/http"
)

// GetCatalogHandler godoc
// @Summary Full product catalog
// @Description Lists every product with the available categories and brands
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /catalog [get]
func (s *Server) GetCatalogHandler(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, CatalogResponse{
		Products:     s.toProductResponses(s.catalog.GetAll()),
		Categories:   s.catalog.Categories(),
		Brands:       s.catalog.Brands(),
		PriceCeiling: s.ceiling,
	})
}

// GetProductsHandler godoc
// @Summary Filtered products
// @Description Lists the products matching the session's filters in catalog order
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProductsSearchResult
// @Failure 401 {string} string "Unauthorized"
// @Router /products [get]
func (s *Server) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := controller(w, r)
	if !ok {
		return
	}
	s.respond(w, http.StatusOK, s.toSearchResult(c.View()))
}

// GetStorefrontHandler godoc
// @Summary Storefront page model
// @Description Display strings, filtered products, filter options and the cart badge count
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StorefrontPage
// @Failure 401 {string} string "Unauthorized"
// @Router /storefront [get]
func (s *Server) GetStorefrontHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := controller(w, r)
	if !ok {
		return
	}

	v := c.View()
	s.respond(w, http.StatusOK, StorefrontPage{
		Labels:     s.labels,
		CartCount:  c.Cart().TotalItems,
		Products:   s.toProductResponses(v.Products),
		Meta:       Meta{TotalCount: len(v.Products)},
		Categories: v.Categories,
		Brands:     v.Brands,
		Filter:     toFilterResponse(v.Filter),
	})
}
