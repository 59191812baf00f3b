// Package gateway exposes the room store's boundary operations as a JSON
// HTTP API. Handlers are deliberately thin: decode, delegate to an app,
// map the error taxonomy onto status codes. No game logic runs here — hosts
// compute new states locally and the gateway just stores what they send.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/7rof/huroof/internal/buzzer"
	"github.com/7rof/huroof/internal/game"
	"github.com/7rof/huroof/internal/models"
	"github.com/7rof/huroof/internal/player"
)

// GameApp defines what the gateway needs from the game app
type GameApp interface {
	CreateGame(ctx context.Context, req game.CreateGameRequest) (*models.Game, error)
	GetGame(ctx context.Context, id string) (*models.Game, error)
	ReplaceGame(ctx context.Context, id string, req game.ReplaceGameRequest) error
	DeleteGame(ctx context.Context, id string) error
}

// BuzzerApp defines what the gateway needs from the buzzer app
type BuzzerApp interface {
	GetBuzzerState(ctx context.Context, gameID string) (*models.BuzzerState, error)
	ReplaceBuzzerState(ctx context.Context, gameID string, req buzzer.ReplaceBuzzerRequest) error
}

// PlayerApp defines what the gateway needs from the player app
type PlayerApp interface {
	UpsertPlayer(ctx context.Context, req player.UpsertPlayerRequest) (*models.Player, error)
	ListPlayers(ctx context.Context, gameID string) ([]models.Player, error)
}

// Service wires the boundary operations onto HTTP routes.
type Service struct {
	games   GameApp
	buzzers BuzzerApp
	players PlayerApp
}

func NewService(games GameApp, buzzers BuzzerApp, players PlayerApp) *Service {
	return &Service{
		games:   games,
		buzzers: buzzers,
		players: players,
	}
}

// Routes returns the gateway handler. The route surface mirrors the room
// store contract one-to-one.
func (s *Service) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/games", s.handleCreateGame)
	mux.HandleFunc("GET /api/games/{id}", s.handleGetGame)
	mux.HandleFunc("PUT /api/games/{id}", s.handleReplaceGame)
	mux.HandleFunc("DELETE /api/games/{id}", s.handleDeleteGame)
	mux.HandleFunc("GET /api/buzzer/{gameID}", s.handleGetBuzzer)
	mux.HandleFunc("PUT /api/buzzer/{gameID}", s.handleReplaceBuzzer)
	mux.HandleFunc("GET /api/players/{gameID}", s.handleListPlayers)
	mux.HandleFunc("POST /api/players", s.handleUpsertPlayer)
	mux.HandleFunc("GET /health", s.handleHealth)
	return logRequests(mux)
}

func (s *Service) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req game.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	g, err := s.games.CreateGame(r.Context(), req)
	if err != nil {
		respondAppError(w, err, "failed to create game")
		return
	}
	respondJSON(w, http.StatusCreated, g)
}

func (s *Service) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, err := s.games.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		respondAppError(w, err, "failed to fetch game")
		return
	}
	respondJSON(w, http.StatusOK, g)
}

func (s *Service) handleReplaceGame(w http.ResponseWriter, r *http.Request) {
	var req game.ReplaceGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.games.ReplaceGame(r.Context(), r.PathValue("id"), req); err != nil {
		respondAppError(w, err, "failed to update game")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Service) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := s.games.DeleteGame(r.Context(), r.PathValue("id")); err != nil {
		respondAppError(w, err, "failed to delete game")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Service) handleGetBuzzer(w http.ResponseWriter, r *http.Request) {
	state, err := s.buzzers.GetBuzzerState(r.Context(), r.PathValue("gameID"))
	if err != nil {
		respondAppError(w, err, "failed to fetch buzzer state")
		return
	}
	respondJSON(w, http.StatusOK, state)
}

func (s *Service) handleReplaceBuzzer(w http.ResponseWriter, r *http.Request) {
	var req buzzer.ReplaceBuzzerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.buzzers.ReplaceBuzzerState(r.Context(), r.PathValue("gameID"), req); err != nil {
		respondAppError(w, err, "failed to update buzzer state")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Service) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := s.players.ListPlayers(r.Context(), r.PathValue("gameID"))
	if err != nil {
		respondAppError(w, err, "failed to fetch players")
		return
	}
	respondJSON(w, http.StatusOK, players)
}

func (s *Service) handleUpsertPlayer(w http.ResponseWriter, r *http.Request) {
	var req player.UpsertPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := s.players.UpsertPlayer(r.Context(), req)
	if err != nil {
		respondAppError(w, err, "failed to add player")
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondAppError maps the error taxonomy onto status codes: not-found is an
// explicit negative result, invalid-input never mutated anything, everything
// else is a storage or transport failure.
func respondAppError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, game.ErrNotFound) || errors.Is(err, buzzer.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrInvalidInput) || errors.Is(err, buzzer.ErrInvalidInput) || errors.Is(err, player.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg(message)
		respondError(w, http.StatusInternalServerError, message)
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("request")
		next.ServeHTTP(w, r)
	})
}
