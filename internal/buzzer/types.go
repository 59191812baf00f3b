package buzzer

import (
	"time"

	"github.com/7rof/huroof/internal/models"
)

// ReplaceBuzzerRequest is a full overwrite of the buzzer fields: a claim
// (active false with claimant set) or a host reset (active true with claimant
// cleared). Like every room write it is unconditional.
type ReplaceBuzzerRequest struct {
	Active       bool         `json:"active"`
	BuzzedTeam   *models.Team `json:"buzzed_team"`
	BuzzedPlayer *string      `json:"buzzed_player"`
	BuzzedAt     *time.Time   `json:"buzzed_at"`
}
