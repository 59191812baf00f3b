package game

import "github.com/7rof/huroof/internal/models"

// CreateGameRequest carries the team names for a new room.
type CreateGameRequest struct {
	GreenTeamName string `json:"green_team_name"`
	RedTeamName   string `json:"red_team_name"`
}

// ReplaceGameRequest is a full-record overwrite of the mutable game fields.
// There is no version token: the write replaces whatever is stored, which is
// the room's accepted last-write-wins model.
type ReplaceGameRequest struct {
	CurrentState models.GameState `json:"current_state"`
	CurrentTeam  models.Team      `json:"current_team"`
	Winner       *models.Team     `json:"winner"`
}
