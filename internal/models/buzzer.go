package models

import "time"

// BuzzerState is the shared answer lock for one room, 1:1 with a Game.
// Active means any player may buzz; a claim flips Active to false and records
// who locked it and when. The claimant fields are nil while armed.
type BuzzerState struct {
	GameID       string     `json:"game_id"`
	Active       bool       `json:"active"`
	BuzzedTeam   *Team      `json:"buzzed_team"`
	BuzzedPlayer *string    `json:"buzzed_player"`
	BuzzedAt     *time.Time `json:"buzzed_at"`
}
