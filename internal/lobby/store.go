// internal/lobby/store.go
package lobby

import (
	"context"

	"github.com/google/uuid"

	"github.com/busride/lobby-service/internal/models"
)

// Store is the persistence boundary for lobbies. Implementations own the
// storage-level uniqueness constraint on the public code; a violation there
// must surface as an error, never be silently overwritten. The store has no
// business-rule authority beyond that.
type Store interface {
	// Exists reports whether a live lobby already uses code.
	Exists(ctx context.Context, code string) (bool, error)

	// Create persists a new lobby for creatorID under code and returns the
	// stored aggregate.
	Create(ctx context.Context, creatorID uuid.UUID, maxPlayers int, code string) (*models.Lobby, error)

	// FindByCode returns the lobby registered under code, or nil when none
	// exists. A miss is not an error.
	FindByCode(ctx context.Context, code string) (*models.Lobby, error)
}
