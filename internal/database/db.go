// internal/database/db.go

// Package database implements the lobby store on Postgres, selected with
// STORE_BACKEND=postgres. The unique index on public_code is the storage
// backstop for code uniqueness.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// Schema for reference; migrations are applied outside this service.
//
//	CREATE TABLE lobbies (
//	    id              uuid PRIMARY KEY,
//	    public_code     text NOT NULL UNIQUE,
//	    admin_player_id uuid NOT NULL,
//	    max_players     int  NOT NULL,
//	    created_at      timestamptz NOT NULL,
//	    session_id      uuid
//	);

// Store implements lobby.Store on a pgx connection pool.
type Store struct {
	pool   *pgxpool.Pool
	logger *logrus.Logger
}

// Connect builds the pool from a postgres URL and pings it.
func Connect(ctx context.Context, logger *logrus.Logger, url string) (*Store, error) {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("unable to parse pgx config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return &Store{pool: pool, logger: logger}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}
