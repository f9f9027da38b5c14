// internal/handlers/api_server.go
package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/busride/lobby-service/internal/lobby"
)

// Server wires the HTTP surface to the lobby service.
type Server struct {
	Logger *logrus.Logger
	Lobby  *lobby.Service
}

func NewServer(logger *logrus.Logger, svc *lobby.Service) *Server {
	return &Server{Logger: logger, Lobby: svc}
}

// Routes registers every endpoint on mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /lobby", s.CreateLobbyHandler)
	mux.HandleFunc("GET /lobby/{code}", s.GetLobbyHandler)
}
