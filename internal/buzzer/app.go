package buzzer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/7rof/huroof/internal/events"
	"github.com/7rof/huroof/internal/models"
)

// BuzzerRepository defines what the app layer needs from the repository
type BuzzerRepository interface {
	CreateBuzzerState(ctx context.Context, state *models.BuzzerState) error
	GetBuzzerState(ctx context.Context, gameID string) (*models.BuzzerState, error)
	ReplaceBuzzerState(ctx context.Context, gameID string, req ReplaceBuzzerRequest) error
}

// App handles buzzer state logic. The arbitration itself (who may claim, when
// a claim sticks) lives in the engine on the client side; the store only
// validates shape and overwrites.
type App struct {
	repo BuzzerRepository
	pub  *events.Publisher
}

// NewApp creates a new buzzer App
func NewApp(repo BuzzerRepository, pub *events.Publisher) *App {
	return &App{
		repo: repo,
		pub:  pub,
	}
}

// GetBuzzerState retrieves the buzzer state for a room
func (a *App) GetBuzzerState(ctx context.Context, gameID string) (*models.BuzzerState, error) {
	state, err := a.repo.GetBuzzerState(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get buzzer state: %w", err)
	}
	return state, nil
}

// ReplaceBuzzerState overwrites the buzzer record. An armed write must carry
// no claimant and a locked write must name one; beyond that the write is
// unconditional, so two claims racing from the same stale read still resolve
// last-write-wins.
func (a *App) ReplaceBuzzerState(ctx context.Context, gameID string, req ReplaceBuzzerRequest) error {
	if err := validateReplaceBuzzerRequest(req); err != nil {
		return err
	}

	if err := a.repo.ReplaceBuzzerState(ctx, gameID, req); err != nil {
		return fmt.Errorf("failed to replace buzzer state: %w", err)
	}

	a.pub.PublishBuzzer(gameID, events.BuzzerReplaced{
		GameID: gameID,
		State: models.BuzzerState{
			GameID:       gameID,
			Active:       req.Active,
			BuzzedTeam:   req.BuzzedTeam,
			BuzzedPlayer: req.BuzzedPlayer,
			BuzzedAt:     req.BuzzedAt,
		},
	})
	if !req.Active && req.BuzzedPlayer != nil {
		log.Info().Str("game_id", gameID).Str("player", *req.BuzzedPlayer).Msg("buzzer locked")
	}
	return nil
}

func validateReplaceBuzzerRequest(req ReplaceBuzzerRequest) error {
	if req.Active {
		if req.BuzzedTeam != nil || req.BuzzedPlayer != nil || req.BuzzedAt != nil {
			return fmt.Errorf("%w: an armed buzzer carries no claimant", ErrInvalidInput)
		}
		return nil
	}
	if req.BuzzedTeam == nil || !req.BuzzedTeam.Valid() {
		return fmt.Errorf("%w: a locked buzzer needs a valid team", ErrInvalidInput)
	}
	if req.BuzzedPlayer == nil || *req.BuzzedPlayer == "" {
		return fmt.Errorf("%w: a locked buzzer needs a player", ErrInvalidInput)
	}
	return nil
}
