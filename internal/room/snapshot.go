package room

import "github.com/7rof/huroof/internal/models"

// Snapshot is one client's cached projection of a room's authoritative
// records. It is replaced wholesale on every successful poll and may be stale
// by up to roughly one polling interval.
type Snapshot struct {
	Game    *models.Game
	Buzzer  *models.BuzzerState
	Players []models.Player
}
