package handlers

import (
	"net/http"
)

// GetFiltersHandler godoc
// @Summary Current filter state
// @Tags filters
// @Produce json
// @Security BearerAuth
// @Success 200 {object} FilterResponse
// @Failure 401 {string} string "Unauthorized"
// @Router /filters [get]
func (s *Server) GetFiltersHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := controller(w, r)
	if !ok {
		return
	}
	s.respond(w, http.StatusOK, toFilterResponse(c.Filter()))
}

// SetPriceRangeHandler godoc
// @Summary Set the price range
// @Description Bounds are clamped to the price ceiling and swapped when reversed
// @Tags filters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param range body PriceRangeRequest true "Price range"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {object} []ValidationError
// @Failure 401 {string} string "Unauthorized"
// @Router /filters/price [put]
func (s *Server) SetPriceRangeHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := controller(w, r)
	if !ok {
		return
	}

	var req PriceRangeRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if validationErrors := validatePriceRange(req); len(validationErrors) > 0 {
		s.respond(w, http.StatusBadRequest, validationErrors)
		return
	}

	s.respond(w, http.StatusOK, s.toSearchResult(c.SetPriceRange(*req.Min, *req.Max)))
}

// ToggleCategoryHandler godoc
// @Summary Toggle a category
// @Tags filters
// @Produce json
// @Security BearerAuth
// @Param category path string true "Category"
// @Success 200 {object} ProductsSearchResult
// @Failure 401 {string} string "Unauthorized"
// @Router /filters/categories/{category}/toggle [post]
func (s *Server) ToggleCategoryHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := controller(w, r)
	if !ok {
		return
	}
	s.respond(w, http.StatusOK, s.toSearchResult(c.ToggleCategory(pathParam(r, "category"))))
}

// ToggleBrandHandler godoc
// @Summary Toggle a brand
// @Tags filters
// @Produce json
// @Security BearerAuth
// @Param brand path string true "Brand"
// @Success 200 {object} ProductsSearchResult
// @Failure 401 {string} string "Unauthorized"
// @Router /filters/brands/{brand}/toggle [post]
func (s *Server) ToggleBrandHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := controller(w, r)
	if !ok {
		return
	}
	s.respond(w, http.StatusOK, s.toSearchResult(c.ToggleBrand(pathParam(r, "brand"))))
}

// ResetFiltersHandler godoc
// @Summary Reset all filters
// @Tags filters
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProductsSearchResult
// @Failure 401 {string} string "Unauthorized"
// @Router /filters/reset [post]
func (s *Server) ResetFiltersHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := controller(w, r)
	if !ok {
		return
	}
	s.respond(w, http.StatusOK, s.toSearchResult(c.ResetFilters()))
}
