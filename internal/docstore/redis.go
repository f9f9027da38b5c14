// internal/docstore/redis.go

// Package docstore persists lobbies as JSON documents in Redis, one document
// per lobby keyed by public code. It is the default store backend.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/busride/lobby-service/internal/httperr"
	"github.com/busride/lobby-service/internal/models"
)

// lobbyKeyPrefix is the logical "Lobbies" collection inside the keyspace.
const lobbyKeyPrefix = "lobby:"

// Store implements lobby.Store on Redis. SetNX enforces the uniqueness
// constraint on the public code, which makes Redis the serialization point
// across concurrent creators.
type Store struct {
	client *redis.Client
	logger *logrus.Logger
}

func New(logger *logrus.Logger, opts *redis.Options) *Store {
	return &Store{client: redis.NewClient(opts), logger: logger}
}

// NewFromClient wraps an existing client.
func NewFromClient(logger *logrus.Logger, client *redis.Client) *Store {
	return &Store{client: client, logger: logger}
}

// Ping verifies connectivity; called once at startup.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func lobbyKey(code string) string {
	return lobbyKeyPrefix + code
}

// Exists reports whether a lobby document is registered under code.
func (s *Store) Exists(ctx context.Context, code string) (bool, error) {
	n, err := s.client.Exists(ctx, lobbyKey(code)).Result()
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", code, err)
	}
	return n > 0, nil
}

// Create stores a new lobby document under code. A SetNX miss means another
// creator won the code between the existence check and here; that surfaces as
// a dependency failure with the cause attached, never a silent overwrite.
func (s *Store) Create(ctx context.Context, creatorID uuid.UUID, maxPlayers int, code string) (*models.Lobby, error) {
	l := &models.Lobby{
		ID:            uuid.New(),
		PublicCode:    code,
		AdminPlayerID: creatorID,
		MaxPlayers:    maxPlayers,
		CreatedAt:     time.Now().UTC(),
		Players:       []models.LobbyPlayer{},
	}

	data, err := json.Marshal(l)
	if err != nil {
		return nil, httperr.Internal("Could not create lobby", err)
	}

	ok, err := s.client.SetNX(ctx, lobbyKey(code), data, 0).Result()
	if err != nil {
		s.logger.WithError(err).Error("could not store lobby document")
		return nil, httperr.Internal("Could not create lobby", err)
	}
	if !ok {
		err := fmt.Errorf("public code %s already registered", code)
		s.logger.WithError(err).Error("lobby code uniqueness violated")
		return nil, httperr.Internal("Could not create lobby", err)
	}

	s.logger.WithField("public_code", code).Info("lobby document stored")
	return l, nil
}

// FindByCode loads the lobby document under code, or nil when none exists.
func (s *Store) FindByCode(ctx context.Context, code string) (*models.Lobby, error) {
	data, err := s.client.Get(ctx, lobbyKey(code)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get lobby %s: %w", code, err)
	}

	var l models.Lobby
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("unmarshal lobby %s: %w", code, err)
	}
	return &l, nil
}
