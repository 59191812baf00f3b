package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/7rof/huroof/internal/engine"
	"github.com/7rof/huroof/internal/events"
	"github.com/7rof/huroof/internal/models"
	"github.com/7rof/huroof/internal/roomcode"
)

// GameRepository defines what the app layer needs from the repository
type GameRepository interface {
	CreateGame(ctx context.Context, g *models.Game) error
	GetGame(ctx context.Context, id string) (*models.Game, error)
	ReplaceGame(ctx context.Context, id string, req ReplaceGameRequest) error
	DeleteGame(ctx context.Context, id string) error
}

// BuzzerRepository covers the buzzer row created and armed alongside a game
type BuzzerRepository interface {
	CreateBuzzerState(ctx context.Context, state *models.BuzzerState) error
}

// App handles game business logic
type App struct {
	repo    GameRepository
	buzzers BuzzerRepository
	pub     *events.Publisher
}

// NewApp creates a new game App
func NewApp(repo GameRepository, buzzers BuzzerRepository, pub *events.Publisher) *App {
	return &App{
		repo:    repo,
		buzzers: buzzers,
		pub:     pub,
	}
}

// CreateGame initializes a room: a generated numeric code, an empty board
// with fresh letters, zero scores, green to move, and an armed buzzer.
func (a *App) CreateGame(ctx context.Context, req CreateGameRequest) (*models.Game, error) {
	if strings.TrimSpace(req.GreenTeamName) == "" || strings.TrimSpace(req.RedTeamName) == "" {
		return nil, fmt.Errorf("%w: team names must not be empty", ErrInvalidInput)
	}

	id, err := roomcode.Generate(roomcode.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate room code: %w", err)
	}

	g := &models.Game{
		ID:            id,
		GreenTeamName: req.GreenTeamName,
		RedTeamName:   req.RedTeamName,
		CurrentState:  engine.NewGameState(),
		CurrentTeam:   models.TeamGreen,
	}

	if err := a.repo.CreateGame(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	if err := a.buzzers.CreateBuzzerState(ctx, &models.BuzzerState{GameID: id, Active: true}); err != nil {
		return nil, fmt.Errorf("failed to create buzzer state: %w", err)
	}

	a.pub.PublishGame(g.ID, g)
	log.Info().Str("game_id", g.ID).Str("green", g.GreenTeamName).Str("red", g.RedTeamName).Msg("created game")
	return g, nil
}

// GetGame retrieves a game by room id
func (a *App) GetGame(ctx context.Context, id string) (*models.Game, error) {
	g, err := a.repo.GetGame(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return g, nil
}

// ReplaceGame overwrites the mutable game fields with a full record computed
// by the host. The write is unconditional; it does not compare against what
// is currently stored.
func (a *App) ReplaceGame(ctx context.Context, id string, req ReplaceGameRequest) error {
	if err := validateReplaceGameRequest(req); err != nil {
		return err
	}

	if err := a.repo.ReplaceGame(ctx, id, req); err != nil {
		return fmt.Errorf("failed to replace game: %w", err)
	}

	a.pub.PublishGame(id, events.GameReplaced{
		GameID:       id,
		CurrentState: req.CurrentState,
		CurrentTeam:  req.CurrentTeam,
		Winner:       req.Winner,
	})
	return nil
}

// DeleteGame tears the room down: game, buzzer state, and players go as one
// cascading unit.
func (a *App) DeleteGame(ctx context.Context, id string) error {
	if err := a.repo.DeleteGame(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	log.Info().Str("game_id", id).Msg("deleted game")
	return nil
}

func validateReplaceGameRequest(req ReplaceGameRequest) error {
	if !req.CurrentTeam.Valid() {
		return fmt.Errorf("%w: current_team must be green or red", ErrInvalidInput)
	}
	if req.Winner != nil && !req.Winner.Valid() {
		return fmt.Errorf("%w: winner must be green, red, or null", ErrInvalidInput)
	}
	if len(req.CurrentState.Board) == 0 {
		return fmt.Errorf("%w: board must not be empty", ErrInvalidInput)
	}
	return nil
}
