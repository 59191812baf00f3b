package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// The schema mirrors the authoritative record layout: one game row per room
// with the state document in JSONB, and buzzer/player rows that cascade away
// with the game.
const schema = `
CREATE TABLE IF NOT EXISTS games (
	id TEXT PRIMARY KEY,
	green_team_name TEXT NOT NULL,
	red_team_name TEXT NOT NULL,
	current_state JSONB NOT NULL,
	current_team TEXT NOT NULL,
	winner TEXT
);

CREATE TABLE IF NOT EXISTS buzzer_state (
	game_id TEXT PRIMARY KEY REFERENCES games(id) ON DELETE CASCADE,
	active BOOLEAN NOT NULL,
	buzzed_team TEXT,
	buzzed_player TEXT,
	buzzed_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS players (
	id UUID PRIMARY KEY,
	game_id TEXT NOT NULL REFERENCES games(id) ON DELETE CASCADE,
	username TEXT NOT NULL,
	team TEXT NOT NULL,
	UNIQUE (game_id, username)
);
`

func setupDatabase(ctx context.Context, cfg DatabaseConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	log.Info().Str("host", cfg.Host).Int("port", cfg.Port).Str("database", cfg.Database).Msg("connected to database")
	return pool, nil
}
