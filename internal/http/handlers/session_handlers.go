package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// CreateSessionHandler godoc
// @Summary Start a shopper session
// @Description Creates an empty cart and default filters and returns a bearer token for them
// @Tags sessions
// @Produce json
// @Success 201 {object} SessionResult
// @Failure 500 {string} string "Internal error"
// @Router /sessions [post]
func (s *Server) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	id, _ := s.sessions.Create()

	token, err := s.tokens.Generate(id)
	if err != nil {
		s.sessions.Delete(id)
		s.logger.Error("failed to issue session token", zap.Error(err))
		http.Error(w, "could not create session", http.StatusInternalServerError)
		return
	}

	s.logger.Debug("session created", zap.String("session_id", id))
	s.respond(w, http.StatusCreated, SessionResult{SessionID: id, Token: token})
}
