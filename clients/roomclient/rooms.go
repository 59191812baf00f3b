package roomclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/7rof/huroof/internal/models"
)

// Endpoints of the room store API.
const (
	gamesEndpoint   = "/api/games"
	buzzerEndpoint  = "/api/buzzer"
	playersEndpoint = "/api/players"
)

type createGameRequest struct {
	GreenTeamName string `json:"green_team_name"`
	RedTeamName   string `json:"red_team_name"`
}

type replaceGameRequest struct {
	CurrentState models.GameState `json:"current_state"`
	CurrentTeam  models.Team      `json:"current_team"`
	Winner       *models.Team     `json:"winner"`
}

type replaceBuzzerRequest struct {
	Active       bool         `json:"active"`
	BuzzedTeam   *models.Team `json:"buzzed_team"`
	BuzzedPlayer *string      `json:"buzzed_player"`
	BuzzedAt     *time.Time   `json:"buzzed_at"`
}

type upsertPlayerRequest struct {
	GameID   string      `json:"game_id"`
	Username string      `json:"username"`
	Team     models.Team `json:"team"`
}

// CreateGame opens a new room and returns its initial record.
func (c *Client) CreateGame(ctx context.Context, greenTeamName, redTeamName string) (*models.Game, error) {
	var g models.Game
	err := c.sendJSON(ctx, http.MethodPost, gamesEndpoint, createGameRequest{
		GreenTeamName: greenTeamName,
		RedTeamName:   redTeamName,
	}, &g)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	return &g, nil
}

// GetGame fetches the current authoritative game record.
func (c *Client) GetGame(ctx context.Context, id string) (*models.Game, error) {
	var g models.Game
	if err := c.getJSON(ctx, gamesEndpoint+"/"+id, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// ReplaceGame overwrites the room's game record with a host-computed state.
func (c *Client) ReplaceGame(ctx context.Context, id string, state models.GameState, team models.Team, winner *models.Team) error {
	return c.sendJSON(ctx, http.MethodPut, gamesEndpoint+"/"+id, replaceGameRequest{
		CurrentState: state,
		CurrentTeam:  team,
		Winner:       winner,
	}, nil)
}

// DeleteGame removes the room and everything attached to it.
func (c *Client) DeleteGame(ctx context.Context, id string) error {
	_, err := c.makeRequest(ctx, http.MethodDelete, gamesEndpoint+"/"+id, nil)
	return err
}

// GetBuzzerState fetches the room's buzzer record.
func (c *Client) GetBuzzerState(ctx context.Context, gameID string) (*models.BuzzerState, error) {
	var state models.BuzzerState
	if err := c.getJSON(ctx, buzzerEndpoint+"/"+gameID, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// ReplaceBuzzerState overwrites the room's buzzer record.
func (c *Client) ReplaceBuzzerState(ctx context.Context, gameID string, state models.BuzzerState) error {
	return c.sendJSON(ctx, http.MethodPut, buzzerEndpoint+"/"+gameID, replaceBuzzerRequest{
		Active:       state.Active,
		BuzzedTeam:   state.BuzzedTeam,
		BuzzedPlayer: state.BuzzedPlayer,
		BuzzedAt:     state.BuzzedAt,
	}, nil)
}

// GetPlayers fetches the room's player set.
func (c *Client) GetPlayers(ctx context.Context, gameID string) ([]models.Player, error) {
	var players []models.Player
	if err := c.getJSON(ctx, playersEndpoint+"/"+gameID, &players); err != nil {
		return nil, err
	}
	return players, nil
}

// UpsertPlayer joins a team, or switches teams for an existing username.
func (c *Client) UpsertPlayer(ctx context.Context, gameID, username string, team models.Team) (*models.Player, error) {
	var p models.Player
	err := c.sendJSON(ctx, http.MethodPost, playersEndpoint, upsertPlayerRequest{
		GameID:   gameID,
		Username: username,
		Team:     team,
	}, &p)
	if err != nil {
		return nil, fmt.Errorf("upsert player: %w", err)
	}
	return &p, nil
}
