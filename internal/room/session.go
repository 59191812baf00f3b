// Package room is the client side of a game room: a session polls the
// authoritative store on a fixed interval, reconciles its local snapshot by
// full replacement, and turns user actions into read-compute-overwrite
// writes. All game logic runs here (through the engine), never in the store.
package room

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/7rof/huroof/clients/roomclient"
	"github.com/7rof/huroof/internal/engine"
	"github.com/7rof/huroof/internal/models"
)

// DefaultPollInterval bounds staleness in the common case.
const DefaultPollInterval = 2 * time.Second

// Config describes one client's view of a room.
type Config struct {
	RoomID       string
	Username     string
	Host         bool
	PollInterval time.Duration
	Clock        clockwork.Clock
}

// Session is a single client's cooperative loop for one room. Host-only
// actions on a non-host session are silent no-ops, mirroring how the store
// trusts the host role rather than enforcing it.
type Session struct {
	client *roomclient.Client
	cfg    Config
	clock  clockwork.Clock

	mu   sync.Mutex
	snap Snapshot
	team *models.Team

	onChange func(Snapshot)
	onError  func(error)
}

func NewSession(client *roomclient.Client, cfg Config) *Session {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	return &Session{
		client: client,
		cfg:    cfg,
		clock:  cfg.Clock,
	}
}

// OnChange registers the callback invoked with every reconciled snapshot.
func (s *Session) OnChange(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// OnError registers the callback invoked when a poll cycle fails.
func (s *Session) OnError(fn func(error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onError = fn
}

// Run polls the store until the context is cancelled. Leaving a room is
// exactly that: cancel, drop the session, tell nobody.
func (s *Session) Run(ctx context.Context) error {
	s.refresh(ctx)

	ticker := s.clock.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			s.refresh(ctx)
		}
	}
}

// refresh pulls all three records and replaces the snapshot wholesale. Any
// failure leaves the previous snapshot untouched; the next cycle naturally
// retries the read side.
func (s *Session) refresh(ctx context.Context) {
	g, err := s.client.GetGame(ctx, s.cfg.RoomID)
	if err != nil {
		s.fail(err)
		return
	}
	bz, err := s.client.GetBuzzerState(ctx, s.cfg.RoomID)
	if err != nil {
		s.fail(err)
		return
	}
	players, err := s.client.GetPlayers(ctx, s.cfg.RoomID)
	if err != nil {
		s.fail(err)
		return
	}

	s.mu.Lock()
	s.snap = Snapshot{Game: g, Buzzer: bz, Players: players}
	if s.team == nil {
		for _, p := range players {
			if p.Username == s.cfg.Username {
				t := p.Team
				s.team = &t
				break
			}
		}
	}
	snap := s.snap
	onChange := s.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange(snap)
	}
}

func (s *Session) fail(err error) {
	log.Warn().Err(err).Str("room_id", s.cfg.RoomID).Msg("poll cycle failed")
	s.mu.Lock()
	onError := s.onError
	s.mu.Unlock()
	if onError != nil {
		onError(err)
	}
}

// Snapshot returns the last reconciled snapshot.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Team returns the team this client joined, if any.
func (s *Session) Team() *models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.team
}

// ColorTile applies a host tile mutation: compute the next state from the
// last observed one, then overwrite the stored record. Rejected once a winner
// is recorded; only a reset leaves that state.
func (s *Session) ColorTile(ctx context.Context, row, col int, value string) error {
	if !s.cfg.Host {
		return nil
	}
	snap := s.Snapshot()
	if snap.Game == nil {
		return fmt.Errorf("no game state observed yet")
	}
	if snap.Game.Winner != nil {
		return nil
	}

	res := engine.ApplyTile(snap.Game.CurrentState, snap.Game.CurrentTeam, row, col, value)
	if !res.Applied {
		return nil
	}

	if err := s.client.ReplaceGame(ctx, s.cfg.RoomID, res.State, res.NextTeam, res.Winner); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}
	s.storeGame(snap.Game, res.State, res.NextTeam, res.Winner)
	return nil
}

// ResetRound deals a fresh board and letters while keeping the scores and
// whose turn it is, and clears the winner.
func (s *Session) ResetRound(ctx context.Context) error {
	if !s.cfg.Host {
		return nil
	}
	snap := s.Snapshot()
	if snap.Game == nil {
		return fmt.Errorf("no game state observed yet")
	}

	state := engine.RoundReset(snap.Game.CurrentState)
	if err := s.client.ReplaceGame(ctx, s.cfg.RoomID, state, snap.Game.CurrentTeam, nil); err != nil {
		return fmt.Errorf("failed to reset round: %w", err)
	}
	s.storeGame(snap.Game, state, snap.Game.CurrentTeam, nil)
	return nil
}

// ResetAll starts the room over: scores zeroed, green to move, buzzer
// re-armed.
func (s *Session) ResetAll(ctx context.Context) error {
	if !s.cfg.Host {
		return nil
	}
	snap := s.Snapshot()
	if snap.Game == nil {
		return fmt.Errorf("no game state observed yet")
	}

	state := engine.FullReset()
	if err := s.client.ReplaceGame(ctx, s.cfg.RoomID, state, models.TeamGreen, nil); err != nil {
		return fmt.Errorf("failed to reset game: %w", err)
	}
	s.storeGame(snap.Game, state, models.TeamGreen, nil)
	return s.ResetBuzzer(ctx)
}

// ResetBuzzer re-arms the buzzer and clears the claimant.
func (s *Session) ResetBuzzer(ctx context.Context) error {
	if !s.cfg.Host {
		return nil
	}

	state := engine.ResetBuzzer(models.BuzzerState{GameID: s.cfg.RoomID})
	if err := s.client.ReplaceBuzzerState(ctx, s.cfg.RoomID, state); err != nil {
		return fmt.Errorf("failed to reset buzzer: %w", err)
	}
	s.storeBuzzer(state)
	return nil
}

// StopGame deletes the room; the store removes the game, buzzer, and players
// as one unit.
func (s *Session) StopGame(ctx context.Context) error {
	if !s.cfg.Host {
		return nil
	}
	if err := s.client.DeleteGame(ctx, s.cfg.RoomID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}

// JoinTeam registers this client's username on a team.
func (s *Session) JoinTeam(ctx context.Context, team models.Team) error {
	p, err := s.client.UpsertPlayer(ctx, s.cfg.RoomID, s.cfg.Username, team)
	if err != nil {
		return fmt.Errorf("failed to join team: %w", err)
	}

	s.mu.Lock()
	t := p.Team
	s.team = &t
	s.snap.Players = upsertLocal(s.snap.Players, *p)
	s.mu.Unlock()
	return nil
}

// Buzz claims the buzzer if the last observed state was armed. Two players
// buzzing inside the same polling window can both pass that check; the later
// write then overwrites the earlier claim. That race is inherent to the
// unconditional-overwrite model and is kept as-is.
func (s *Session) Buzz(ctx context.Context) error {
	s.mu.Lock()
	team := s.team
	snap := s.snap
	s.mu.Unlock()

	if team == nil {
		return fmt.Errorf("cannot buzz before joining a team")
	}

	cur := models.BuzzerState{GameID: s.cfg.RoomID, Active: true}
	if snap.Buzzer != nil {
		cur = *snap.Buzzer
	}
	next, claimed := engine.Buzz(cur, *team, s.cfg.Username, s.clock.Now())
	if !claimed {
		return nil
	}

	if err := s.client.ReplaceBuzzerState(ctx, s.cfg.RoomID, next); err != nil {
		return fmt.Errorf("failed to buzz: %w", err)
	}
	s.storeBuzzer(next)
	return nil
}

func (s *Session) storeGame(prev *models.Game, state models.GameState, team models.Team, winner *models.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := *prev
	g.CurrentState = state
	g.CurrentTeam = team
	g.Winner = winner
	s.snap.Game = &g
}

func (s *Session) storeBuzzer(state models.BuzzerState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Buzzer = &state
}

func upsertLocal(players []models.Player, p models.Player) []models.Player {
	for i := range players {
		if players[i].Username == p.Username {
			players[i] = p
			return players
		}
	}
	return append(players, p)
}
