package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rogerio-castellano/storefront/internal/auth"
	"github.com/rogerio-castellano/storefront/internal/http/ban"
	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	mw "github.com/rogerio-castellano/storefront/internal/http/middleware"
	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
	"github.com/rogerio-castellano/storefront/internal/storefront"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Dependencies struct {
	Server   *handlers.Server
	Tokens   *auth.SessionTokens
	Sessions *storefront.Sessions
	Limiter  *rl.Limiter
	Guard    *ban.Guard
	Logger   *zap.Logger

	// TrustProxy enables RealIP, which keys rate limits and bans on
	// client-supplied forwarding headers.
	TrustProxy bool
}

func NewRouter(d Dependencies) http.Handler {
	s := d.Server

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if d.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(mw.RequestLogger(d.Logger))
	r.Use(chimw.Recoverer)

	r.Get("/healthz", s.HealthHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Group(func(r chi.Router) {
		r.Use(mw.RateLimit(d.Limiter, d.Guard, d.Logger))

		r.Post("/sessions", s.CreateSessionHandler)
		r.Get("/catalog", s.GetCatalogHandler)
		r.Get("/metrics/dashboard", s.GetDashboardMetricsHandler)
		r.Get("/metrics/bans", s.GetBanSummaryHandler)

		r.Group(func(r chi.Router) {
			r.Use(mw.SessionMiddleware(d.Tokens, d.Sessions))

			r.Get("/storefront", s.GetStorefrontHandler)
			r.Get("/products", s.GetProductsHandler)

			r.Get("/filters", s.GetFiltersHandler)
			r.Put("/filters/price", s.SetPriceRangeHandler)
			r.Post("/filters/categories/{category}/toggle", s.ToggleCategoryHandler)
			r.Post("/filters/brands/{brand}/toggle", s.ToggleBrandHandler)
			r.Post("/filters/reset", s.ResetFiltersHandler)

			r.Get("/cart", s.GetCartHandler)
			r.Post("/cart/items", s.AddToCartHandler)
			r.Patch("/cart/items/{id}", s.UpdateCartItemHandler)
			r.Delete("/cart/items/{id}", s.RemoveCartItemHandler)
		})
	})

	return r
}
