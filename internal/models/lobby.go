// internal/models/lobby.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultMaxPlayers is applied when a creation request omits maxPlayers.
const DefaultMaxPlayers = 4

// LobbySettings is the caller-supplied portion of a lobby creation request.
// It has no identity; it is validated and discarded. MaxPlayers is a pointer
// so an omitted field (defaulted) is distinguishable from an explicit 0
// (rejected by validation).
type LobbySettings struct {
	MaxPlayers *int `json:"maxPlayers"`
}

// LobbyPlayer is a player as the lobby sees them: identity plus display name.
// It has no lifecycle of its own; it only ever lives inside a request context
// or a lobby's player list.
type LobbyPlayer struct {
	PlayerID    uuid.UUID `json:"playerId"`
	DisplayName string    `json:"displayName"`
}

// Lobby is the persisted lobby aggregate. PublicCode is the external lookup
// key and the uniqueness partition; everything except CurrentSessionID and
// Players is immutable after creation.
type Lobby struct {
	ID               uuid.UUID     `json:"id"`
	PublicCode       string        `json:"publicCode"`
	AdminPlayerID    uuid.UUID     `json:"currentAdmin"`
	MaxPlayers       int           `json:"maxPlayer"`
	CreatedAt        time.Time     `json:"creationTime"`
	CurrentSessionID *uuid.UUID    `json:"sessionUId,omitempty"`
	Players          []LobbyPlayer `json:"currentUsers"`
}

// LobbyResponse is the public projection of a Lobby. The internal storage id
// stays private; the current session is present only once a game has started.
type LobbyResponse struct {
	PublicCode     string        `json:"publicCode"`
	AdminPlayerID  uuid.UUID     `json:"currentAdmin"`
	MaxPlayers     int           `json:"maxPlayer"`
	CreatedAt      time.Time     `json:"creationTime"`
	Players        []LobbyPlayer `json:"currentUsers"`
	CurrentSession *Session      `json:"currentSession,omitempty"`
}

// Response projects the aggregate into its public shape.
func (l *Lobby) Response(session *Session) *LobbyResponse {
	players := l.Players
	if players == nil {
		players = []LobbyPlayer{}
	}
	return &LobbyResponse{
		PublicCode:     l.PublicCode,
		AdminPlayerID:  l.AdminPlayerID,
		MaxPlayers:     l.MaxPlayers,
		CreatedAt:      l.CreatedAt,
		Players:        players,
		CurrentSession: session,
	}
}
