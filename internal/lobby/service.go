// internal/lobby/service.go
package lobby

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/busride/lobby-service/internal/httperr"
	"github.com/busride/lobby-service/internal/models"
)

const (
	minPlayers = 2
	maxPlayers = 10

	// maxCodeAttempts bounds the uniqueness-retry loop. With 36^6 possible
	// codes this is a pigeonhole escape hatch, not an expected path.
	maxCodeAttempts = 10
)

// Generator mints candidate public codes for new lobbies.
type Generator interface {
	PublicCode() string
}

// Service orchestrates lobby creation: settings validation, the bounded
// unique-code search, and delegation to the store.
type Service struct {
	logger *logrus.Logger
	store  Store
	gen    Generator
}

func NewService(logger *logrus.Logger, store Store, gen Generator) *Service {
	return &Service{logger: logger, store: store, gen: gen}
}

// CreateLobby validates settings, finds a free public code and persists the
// lobby for creatorID. The maxPlayers default fills in only when the field
// was omitted, and validation happens before any store I/O.
func (s *Service) CreateLobby(ctx context.Context, creatorID uuid.UUID, settings models.LobbySettings) (*models.LobbyResponse, error) {
	players := models.DefaultMaxPlayers
	if settings.MaxPlayers != nil {
		players = *settings.MaxPlayers
	}
	if players < minPlayers || players > maxPlayers {
		return nil, httperr.BadRequest("Lobby must have between 2 and 10 players")
	}

	var code string
	for i := 0; i < maxCodeAttempts; i++ {
		candidate := s.gen.PublicCode()
		taken, err := s.store.Exists(ctx, candidate)
		if err != nil {
			return nil, fmt.Errorf("check public code %s: %w", candidate, err)
		}
		if !taken {
			code = candidate
			break
		}
	}
	if code == "" {
		s.logger.WithField("creator_id", creatorID).Errorf("could not find a free public code after %d tries", maxCodeAttempts)
		return nil, httperr.New(http.StatusInternalServerError, "Could not find a unique publicId")
	}

	// The existence check and the create are not atomic; a concurrent creator
	// can win the same candidate. The store's uniqueness constraint is the
	// backstop and its rejection surfaces as a dependency failure rather than
	// re-entering the loop.
	created, err := s.store.Create(ctx, creatorID, players, code)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"public_code": created.PublicCode,
		"admin":       created.AdminPlayerID,
		"created_at":  created.CreatedAt,
	}).Info("lobby created")

	return created.Response(nil), nil
}

// GetLobbyByPublicCode returns the public shape of the lobby registered under
// code, or nil when no lobby matches.
func (s *Service) GetLobbyByPublicCode(ctx context.Context, code string) (*models.LobbyResponse, error) {
	l, err := s.store.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("find lobby %s: %w", code, err)
	}
	if l == nil {
		return nil, nil
	}
	return l.Response(nil), nil
}
