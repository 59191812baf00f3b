package player

import "github.com/7rof/huroof/internal/models"

// UpsertPlayerRequest registers a player on a team, or moves an existing
// player to the named team. Keyed by (game_id, username).
type UpsertPlayerRequest struct {
	GameID   string      `json:"game_id"`
	Username string      `json:"username"`
	Team     models.Team `json:"team"`
}
