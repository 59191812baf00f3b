package engine

import (
	"time"

	"github.com/7rof/huroof/internal/models"
)

// Buzz claims the buzzer for a team's player. An armed buzzer transitions to
// locked with the claimant and timestamp recorded; a buzzer that is already
// locked is returned unchanged, so an existing claim is never overwritten
// here. Returns whether a claim happened.
func Buzz(state models.BuzzerState, team models.Team, player string, now time.Time) (models.BuzzerState, bool) {
	if !state.Active {
		return state, false
	}
	if !team.Valid() || player == "" {
		return state, false
	}
	state.Active = false
	state.BuzzedTeam = &team
	state.BuzzedPlayer = &player
	state.BuzzedAt = &now
	return state, true
}

// ResetBuzzer re-arms the buzzer and clears the claimant.
func ResetBuzzer(state models.BuzzerState) models.BuzzerState {
	state.Active = true
	state.BuzzedTeam = nil
	state.BuzzedPlayer = nil
	state.BuzzedAt = nil
	return state
}
