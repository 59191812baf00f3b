package player

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/7rof/huroof/internal/events"
	"github.com/7rof/huroof/internal/models"
)

// PlayerRepository defines what the app layer needs from the repository
type PlayerRepository interface {
	UpsertPlayer(ctx context.Context, req UpsertPlayerRequest) (*models.Player, error)
	ListPlayers(ctx context.Context, gameID string) ([]models.Player, error)
}

// App handles player membership logic
type App struct {
	repo PlayerRepository
	pub  *events.Publisher
}

// NewApp creates a new player App
func NewApp(repo PlayerRepository, pub *events.Publisher) *App {
	return &App{
		repo: repo,
		pub:  pub,
	}
}

// UpsertPlayer registers a player on a team with validation; re-joining moves
// the player rather than duplicating the row.
func (a *App) UpsertPlayer(ctx context.Context, req UpsertPlayerRequest) (*models.Player, error) {
	if strings.TrimSpace(req.GameID) == "" {
		return nil, fmt.Errorf("%w: game_id must not be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Username) == "" {
		return nil, fmt.Errorf("%w: username must not be empty", ErrInvalidInput)
	}
	if !req.Team.Valid() {
		return nil, fmt.Errorf("%w: team must be green or red", ErrInvalidInput)
	}

	p, err := a.repo.UpsertPlayer(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert player: %w", err)
	}

	a.pub.PublishPlayers(p.GameID, events.PlayerUpserted{GameID: p.GameID, Player: *p})
	log.Info().Str("game_id", p.GameID).Str("username", p.Username).Str("team", string(p.Team)).Msg("player joined team")
	return p, nil
}

// ListPlayers returns the room's player set
func (a *App) ListPlayers(ctx context.Context, gameID string) ([]models.Player, error) {
	players, err := a.repo.ListPlayers(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}
