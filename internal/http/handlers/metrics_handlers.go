package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// GetDashboardMetricsHandler godoc
// @Summary Live cart metrics
// @Tags metrics
// @Produce json
// @Success 200 {object} storefront.Metrics
// @Router /metrics/dashboard [get]
func (s *Server) GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, s.sessions.Metrics())
}

// GetBanSummaryHandler godoc
// @Summary Bans since the last daily summary
// @Tags metrics
// @Produce json
// @Success 200 {object} ban.Summary
// @Failure 500 {string} string "Internal error"
// @Router /metrics/bans [get]
func (s *Server) GetBanSummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := s.guard.Summary(r.Context())
	if err != nil {
		s.logger.Error("failed to read ban log", zap.Error(err))
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}
	s.respond(w, http.StatusOK, summary)
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
