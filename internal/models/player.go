package models

import "github.com/google/uuid"

// Player is a membership record: at most one row per (game, username).
// Re-joining with a different team updates the row in place.
type Player struct {
	ID       uuid.UUID `json:"id"`
	GameID   string    `json:"game_id"`
	Username string    `json:"username"`
	Team     Team      `json:"team"`
}
