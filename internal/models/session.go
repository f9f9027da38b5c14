// internal/models/session.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Answer is one of the four options a player can pick during a round.
type Answer int

const (
	// Option1 means black in round 1, above in round 2, between in round 3,
	// diamonds in round 4.
	Option1 Answer = iota + 1
	// Option2 means red in round 1, below in round 2, not between in round 3,
	// hearts in round 4.
	Option2
	// Option3 is only valid in round 4: spades.
	Option3
	// Option4 is only valid in round 4: clubs.
	Option4
)

// Session is an active game session. The game service owns its behavior;
// the lobby service only carries the shape so a lobby can reference it.
type Session struct {
	ID            uuid.UUID       `json:"sessionUId"`
	StartedAt     time.Time       `json:"startedAt"`
	CurrentRound  int             `json:"currentRound"`
	ActivePlayers []SessionPlayer `json:"activePlayers"`
}

// SessionPlayer is a lobby player's in-session state.
type SessionPlayer struct {
	PlayerID       uuid.UUID  `json:"playerId"`
	Name           string     `json:"name"`
	DisconnectedAt *time.Time `json:"disconnectedAt,omitempty"`
	Disqualified   bool       `json:"disqualified"`
	Tries          []Try      `json:"tries"`
}

// Try records a single guess: the chosen answer, the card that came up, and
// whether the guess was right.
type Try struct {
	Answer       Answer    `json:"answer"`
	ReceivedCard byte      `json:"receivedCard"`
	Correct      bool      `json:"correct"`
	StartedAt    time.Time `json:"startTime"`
}
