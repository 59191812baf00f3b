package player

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/7rof/huroof/internal/models"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{
		pool: pool,
	}
}

// UpsertPlayer inserts a membership row or updates the team in place when the
// username is already registered for the game.
func (r *Repository) UpsertPlayer(ctx context.Context, req UpsertPlayerRequest) (*models.Player, error) {
	p := models.Player{
		ID:       uuid.New(),
		GameID:   req.GameID,
		Username: req.Username,
		Team:     req.Team,
	}

	err := r.pool.QueryRow(ctx,
		`INSERT INTO players (id, game_id, username, team)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (game_id, username) DO UPDATE SET team = EXCLUDED.team
		 RETURNING id`,
		p.ID, p.GameID, p.Username, string(p.Team),
	).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert player: %w", err)
	}
	return &p, nil
}

// ListPlayers returns every player registered for a game. Order is not
// significant.
func (r *Repository) ListPlayers(ctx context.Context, gameID string) ([]models.Player, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, game_id, username, team FROM players WHERE game_id = $1`, gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players := []models.Player{}
	for rows.Next() {
		var (
			p    models.Player
			team string
		)
		if err := rows.Scan(&p.ID, &p.GameID, &p.Username, &team); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		p.Team = models.Team(team)
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read players: %w", err)
	}
	return players, nil
}
