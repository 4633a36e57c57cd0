package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/storefront/internal/repo"
)

// GetCartHandler godoc
// @Summary Cart contents and totals
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CartResponse
// @Failure 401 {string} string "Unauthorized"
// @Router /cart [get]
func (s *Server) GetCartHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := controller(w, r)
	if !ok {
		return
	}
	s.respond(w, http.StatusOK, s.toCartResponse(c.Cart()))
}

// AddToCartHandler godoc
// @Summary Add one unit of a product to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body AddToCartRequest true "Product to add"
// @Success 200 {object} CartResponse
// @Failure 400 {object} []ValidationError
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Product not found"
// @Router /cart/items [post]
func (s *Server) AddToCartHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := controller(w, r)
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if validationErrors := validateAddToCart(req); len(validationErrors) > 0 {
		s.respond(w, http.StatusBadRequest, validationErrors)
		return
	}

	snap, err := c.AddToCart(req.ProductID)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not add product", http.StatusInternalServerError)
		return
	}
	s.respond(w, http.StatusOK, s.toCartResponse(snap))
}

// UpdateCartItemHandler godoc
// @Summary Change the quantity of a cart item
// @Description Adds delta to the quantity; the item is removed when the result is zero or less. Unknown items are ignored.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param adjustment body QuantityAdjustmentRequest true "Quantity delta"
// @Success 200 {object} CartResponse
// @Failure 400 {object} []ValidationError
// @Failure 401 {string} string "Unauthorized"
// @Router /cart/items/{id} [patch]
func (s *Server) UpdateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := controller(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req QuantityAdjustmentRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if validationErrors := validateQuantityAdjustment(req); len(validationErrors) > 0 {
		s.respond(w, http.StatusBadRequest, validationErrors)
		return
	}

	s.respond(w, http.StatusOK, s.toCartResponse(c.UpdateQuantity(id, req.Delta)))
}

// RemoveCartItemHandler godoc
// @Summary Remove a product from the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 401 {string} string "Unauthorized"
// @Router /cart/items/{id} [delete]
func (s *Server) RemoveCartItemHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := controller(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	s.respond(w, http.StatusOK, s.toCartResponse(c.RemoveFromCart(id)))
}
