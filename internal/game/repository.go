package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) CreateGame(ctx context.Context, g *models.Game) error {
	stateBytes, err := json.Marshal(g.CurrentState)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO games (id, green_team_name, red_team_name, current_state, current_team, winner)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		g.ID, g.GreenTeamName, g.RedTeamName, stateBytes, string(g.CurrentTeam), teamValue(g.Winner),
	)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

func (r *Repository) GetGame(ctx context.Context, id string) (*models.Game, error) {
	var (
		g          models.Game
		stateBytes []byte
		team       string
		winner     *string
	)

	err := r.pool.QueryRow(ctx,
		`SELECT id, green_team_name, red_team_name, current_state, current_team, winner
		 FROM games WHERE id = $1`, id,
	).Scan(&g.ID, &g.GreenTeamName, &g.RedTeamName, &stateBytes, &team, &winner)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if err := json.Unmarshal(stateBytes, &g.CurrentState); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game state: %w", err)
	}
	g.CurrentTeam = models.Team(team)
	if winner != nil {
		w := models.Team(*winner)
		g.Winner = &w
	}
	return &g, nil
}

// ReplaceGame overwrites the mutable fields of a game unconditionally.
func (r *Repository) ReplaceGame(ctx context.Context, id string, req ReplaceGameRequest) error {
	stateBytes, err := json.Marshal(req.CurrentState)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE games SET current_state = $1, current_team = $2, winner = $3 WHERE id = $4`,
		stateBytes, string(req.CurrentTeam), teamValue(req.Winner), id,
	)
	if err != nil {
		return fmt.Errorf("failed to replace game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteGame removes the game row; the buzzer row and player rows go with it
// through the cascading foreign keys.
func (r *Repository) DeleteGame(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func teamValue(t *models.Team) *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}
