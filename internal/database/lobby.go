// internal/database/lobby.go
package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/busride/lobby-service/internal/httperr"
	"github.com/busride/lobby-service/internal/models"
)

// uniqueViolation is the Postgres error code for a unique-constraint breach.
const uniqueViolation = "23505"

// Exists reports whether a lobby row already uses code.
func (s *Store) Exists(ctx context.Context, code string) (bool, error) {
	q := `SELECT 1 FROM lobbies WHERE public_code = $1 LIMIT 1`
	var one int
	err := s.pool.QueryRow(ctx, q, code).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts a new lobby row. A unique violation on public_code means a
// concurrent creator won the same code; it surfaces as a dependency failure
// with the cause attached.
func (s *Store) Create(ctx context.Context, creatorID uuid.UUID, maxPlayers int, code string) (*models.Lobby, error) {
	l := &models.Lobby{
		ID:            uuid.New(),
		PublicCode:    code,
		AdminPlayerID: creatorID,
		MaxPlayers:    maxPlayers,
		CreatedAt:     time.Now().UTC(),
		Players:       []models.LobbyPlayer{},
	}

	q := `
	INSERT INTO lobbies (id, public_code, admin_player_id, max_players, created_at)
	VALUES ($1, $2, $3, $4, $5)
	`
	err := pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, q, l.ID, l.PublicCode, l.AdminPlayerID, l.MaxPlayers, l.CreatedAt)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			s.logger.WithError(err).Error("lobby code uniqueness violated")
		} else {
			s.logger.WithError(err).Error("could not insert lobby")
		}
		return nil, httperr.Internal("Could not create lobby", err)
	}

	return l, nil
}

// FindByCode fetches the lobby row under code, or nil when none exists. The
// player list lives with the future join logic, so it is always empty here.
func (s *Store) FindByCode(ctx context.Context, code string) (*models.Lobby, error) {
	q := `
	SELECT id, public_code, admin_player_id, max_players, created_at, session_id
	FROM lobbies
	WHERE public_code = $1
	`
	var l models.Lobby
	err := s.pool.QueryRow(ctx, q, code).Scan(
		&l.ID,
		&l.PublicCode,
		&l.AdminPlayerID,
		&l.MaxPlayers,
		&l.CreatedAt,
		&l.CurrentSessionID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	l.Players = []models.LobbyPlayer{}
	return &l, nil
}
