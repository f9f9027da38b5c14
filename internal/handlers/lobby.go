// internal/handlers/lobby.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/busride/lobby-service/internal/httperr"
	"github.com/busride/lobby-service/internal/identity"
	"github.com/busride/lobby-service/internal/models"
)

// CreateLobbyHandler handles POST /lobby: decode settings, require a resolved
// player, delegate to the lobby service and answer 201 with the public shape.
func (s *Server) CreateLobbyHandler(w http.ResponseWriter, r *http.Request) {
	// A pointer target catches a literal JSON null body, which decodes to a
	// nil struct and must be rejected like a missing body.
	var settings *models.LobbySettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil || settings == nil {
		httperr.Write(w, s.Logger, httperr.BadRequest("invalid lobby settings payload"))
		return
	}

	player := identity.FromContext(r.Context())
	if player == nil {
		httperr.Write(w, s.Logger, httperr.Unauthorized("missing player identity"))
		return
	}

	created, err := s.Lobby.CreateLobby(r.Context(), player.ID, *settings)
	if err != nil {
		httperr.Write(w, s.Logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", "lobby/"+created.PublicCode)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		s.Logger.WithError(err).Error("failed to encode lobby response")
	}
}

// GetLobbyHandler handles GET /lobby/{code}.
func (s *Server) GetLobbyHandler(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	found, err := s.Lobby.GetLobbyByPublicCode(r.Context(), code)
	if err != nil {
		httperr.Write(w, s.Logger, err)
		return
	}
	if found == nil {
		httperr.Write(w, s.Logger, httperr.NotFound("lobby not found"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(found); err != nil {
		s.Logger.WithError(err).Error("failed to encode lobby response")
	}
}
