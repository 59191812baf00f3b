package events

import "github.com/7rof/huroof/internal/models"

// Event payload types shared between the service and subscribing clients.

// GameReplaced is published after a full-record game overwrite.
type GameReplaced struct {
	GameID       string           `json:"game_id"`
	CurrentState models.GameState `json:"current_state"`
	CurrentTeam  models.Team      `json:"current_team"`
	Winner       *models.Team     `json:"winner"`
}

// BuzzerReplaced is published after a buzzer overwrite, whether a claim or a
// host reset.
type BuzzerReplaced struct {
	GameID string             `json:"game_id"`
	State  models.BuzzerState `json:"state"`
}

// PlayerUpserted is published when a player joins a team or switches teams.
type PlayerUpserted struct {
	GameID string        `json:"game_id"`
	Player models.Player `json:"player"`
}
