package handlers

import (
	"github.com/rogerio-castellano/storefront/internal/auth"
	"github.com/rogerio-castellano/storefront/internal/http/ban"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/rogerio-castellano/storefront/internal/storefront"
	"go.uber.org/zap"
)

// Server holds the dependencies shared by the HTTP handlers.
type Server struct {
	catalog  repo.CatalogRepository
	sessions *storefront.Sessions
	tokens   *auth.SessionTokens
	guard    *ban.Guard
	ceiling  int
	labels   storefront.Labels
	logger   *zap.Logger
}

func NewServer(
	catalog repo.CatalogRepository,
	sessions *storefront.Sessions,
	tokens *auth.SessionTokens,
	guard *ban.Guard,
	ceiling int,
	logger *zap.Logger,
) *Server {
	return &Server{
		catalog:  catalog,
		sessions: sessions,
		tokens:   tokens,
		guard:    guard,
		ceiling:  ceiling,
		labels:   storefront.DefaultLabels(),
		logger:   logger,
	}
}
