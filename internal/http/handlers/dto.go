package handlers

import (
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/rogerio-castellano/storefront/internal/storefront"
)

type ProductResponse struct {
	Id           int    `json:"id"`
	Name         string `json:"name"`
	Price        int    `json:"price"`
	PriceDisplay string `json:"price_display"`
	Category     string `json:"category"`
	Brand        string `json:"brand"`
	Image        string `json:"image"`
	Badge        string `json:"badge,omitempty"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data   []ProductResponse `json:"data"`
	Meta   Meta              `json:"meta"`
	Filter FilterResponse    `json:"filter"`
}

type CatalogResponse struct {
	Products     []ProductResponse `json:"products"`
	Categories   []string          `json:"categories"`
	Brands       []string          `json:"brands"`
	PriceCeiling int               `json:"price_ceiling"`
}

type FilterResponse struct {
	MinPrice   int      `json:"min_price"`
	MaxPrice   int      `json:"max_price"`
	Ceiling    int      `json:"ceiling"`
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
}

type PriceRangeRequest struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

type AddToCartRequest struct {
	ProductID int `json:"product_id"`
}

type QuantityAdjustmentRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type CartItemResponse struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
	Subtotal  int    `json:"subtotal"`
}

type CartResponse struct {
	Items        []CartItemResponse `json:"items"`
	TotalPrice   int                `json:"total_price"`
	TotalItems   int                `json:"total_items"`
	TotalDisplay string             `json:"total_display"`
	Empty        bool               `json:"empty"`
}

type SessionResult struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}

type StorefrontPage struct {
	Labels     storefront.Labels `json:"labels"`
	CartCount  int               `json:"cart_count"`
	Products   []ProductResponse `json:"products"`
	Meta       Meta              `json:"meta"`
	Categories []string          `json:"categories"`
	Brands     []string          `json:"brands"`
	Filter     FilterResponse    `json:"filter"`
}

func (s *Server) toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		PriceDisplay: s.labels.FormatPrice(p.Price),
		Category:     p.Category,
		Brand:        p.Brand,
		Image:        p.Image,
		Badge:        p.Badge,
	}
}

func (s *Server) toProductResponses(products []models.Product) []ProductResponse {
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = s.toProductResponse(p)
	}
	return response
}

func toFilterResponse(pf repo.ProductFilter) FilterResponse {
	resp := FilterResponse{
		MinPrice:   pf.MinPrice,
		MaxPrice:   pf.MaxPrice,
		Ceiling:    pf.Ceiling,
		Categories: pf.Categories,
		Brands:     pf.Brands,
	}
	if resp.Categories == nil {
		resp.Categories = []string{}
	}
	if resp.Brands == nil {
		resp.Brands = []string{}
	}
	return resp
}

func (s *Server) toCartResponse(snap storefront.CartSnapshot) CartResponse {
	resp := CartResponse{
		Items:        make([]CartItemResponse, len(snap.Items)),
		TotalPrice:   snap.TotalPrice,
		TotalItems:   snap.TotalItems,
		TotalDisplay: s.labels.FormatPrice(snap.TotalPrice),
		Empty:        snap.IsEmpty(),
	}
	for i, it := range snap.Items {
		resp.Items[i] = CartItemResponse{
			ProductID: it.ID,
			Name:      it.Name,
			Price:     it.Price,
			Image:     it.Image,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal(),
		}
	}
	return resp
}

func (s *Server) toSearchResult(v storefront.View) ProductsSearchResult {
	return ProductsSearchResult{
		Data:   s.toProductResponses(v.Products),
		Meta:   Meta{TotalCount: len(v.Products)},
		Filter: toFilterResponse(v.Filter),
	}
}
