package buzzer

import (
	"context"
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

func (r *Repository) CreateBuzzerState(ctx context.Context, state *models.BuzzerState) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO buzzer_state (game_id, active, buzzed_team, buzzed_player, buzzed_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		state.GameID, state.Active, teamValue(state.BuzzedTeam), state.BuzzedPlayer, state.BuzzedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create buzzer state: %w", err)
	}
	return nil
}

func (r *Repository) GetBuzzerState(ctx context.Context, gameID string) (*models.BuzzerState, error) {
	var (
		state models.BuzzerState
		team  *string
	)

	err := r.pool.QueryRow(ctx,
		`SELECT game_id, active, buzzed_team, buzzed_player, buzzed_at
		 FROM buzzer_state WHERE game_id = $1`, gameID,
	).Scan(&state.GameID, &state.Active, &team, &state.BuzzedPlayer, &state.BuzzedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get buzzer state: %w", err)
	}

	if team != nil {
		t := models.Team(*team)
		state.BuzzedTeam = &t
	}
	return &state, nil
}

// ReplaceBuzzerState overwrites all buzzer fields unconditionally.
func (r *Repository) ReplaceBuzzerState(ctx context.Context, gameID string, req ReplaceBuzzerRequest) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE buzzer_state SET active = $1, buzzed_team = $2, buzzed_player = $3, buzzed_at = $4
		 WHERE game_id = $5`,
		req.Active, teamValue(req.BuzzedTeam), req.BuzzedPlayer, req.BuzzedAt, gameID,
	)
	if err != nil {
		return fmt.Errorf("failed to replace buzzer state: %w", err)
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
