package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/7rof/huroof/internal/buzzer"
	"github.com/7rof/huroof/internal/game"
	"github.com/7rof/huroof/internal/models"
	"github.com/7rof/huroof/internal/player"
)

type fakeGameApp struct {
	games map[string]*models.Game
}

func (a *fakeGameApp) CreateGame(ctx context.Context, req game.CreateGameRequest) (*models.Game, error) {
	if strings.TrimSpace(req.GreenTeamName) == "" || strings.TrimSpace(req.RedTeamName) == "" {
		return nil, game.ErrInvalidInput
	}
	g := &models.Game{
		ID:            "123456",
		GreenTeamName: req.GreenTeamName,
		RedTeamName:   req.RedTeamName,
		CurrentState:  models.GameState{Board: [][]string{{""}}},
		CurrentTeam:   models.TeamGreen,
	}
	a.games[g.ID] = g
	return g, nil
}

func (a *fakeGameApp) GetGame(ctx context.Context, id string) (*models.Game, error) {
	g, ok := a.games[id]
	if !ok {
		return nil, game.ErrNotFound
	}
	return g, nil
}

func (a *fakeGameApp) ReplaceGame(ctx context.Context, id string, req game.ReplaceGameRequest) error {
	g, ok := a.games[id]
	if !ok {
		return game.ErrNotFound
	}
	if !req.CurrentTeam.Valid() {
		return game.ErrInvalidInput
	}
	g.CurrentState = req.CurrentState
	g.CurrentTeam = req.CurrentTeam
	g.Winner = req.Winner
	return nil
}

func (a *fakeGameApp) DeleteGame(ctx context.Context, id string) error {
	if _, ok := a.games[id]; !ok {
		return game.ErrNotFound
	}
	delete(a.games, id)
	return nil
}

type fakeBuzzerApp struct {
	states map[string]*models.BuzzerState
}

func (a *fakeBuzzerApp) GetBuzzerState(ctx context.Context, gameID string) (*models.BuzzerState, error) {
	state, ok := a.states[gameID]
	if !ok {
		return nil, buzzer.ErrNotFound
	}
	return state, nil
}

func (a *fakeBuzzerApp) ReplaceBuzzerState(ctx context.Context, gameID string, req buzzer.ReplaceBuzzerRequest) error {
	if _, ok := a.states[gameID]; !ok {
		return buzzer.ErrNotFound
	}
	a.states[gameID] = &models.BuzzerState{
		GameID:       gameID,
		Active:       req.Active,
		BuzzedTeam:   req.BuzzedTeam,
		BuzzedPlayer: req.BuzzedPlayer,
		BuzzedAt:     req.BuzzedAt,
	}
	return nil
}

type fakePlayerApp struct {
	players map[string][]models.Player
}

func (a *fakePlayerApp) UpsertPlayer(ctx context.Context, req player.UpsertPlayerRequest) (*models.Player, error) {
	if req.Username == "" || !req.Team.Valid() {
		return nil, player.ErrInvalidInput
	}
	p := models.Player{ID: uuid.New(), GameID: req.GameID, Username: req.Username, Team: req.Team}
	a.players[req.GameID] = append(a.players[req.GameID], p)
	return &p, nil
}

func (a *fakePlayerApp) ListPlayers(ctx context.Context, gameID string) ([]models.Player, error) {
	players := a.players[gameID]
	if players == nil {
		players = []models.Player{}
	}
	return players, nil
}

func newTestService() (*Service, *fakeGameApp, *fakeBuzzerApp, *fakePlayerApp) {
	games := &fakeGameApp{games: make(map[string]*models.Game)}
	buzzers := &fakeBuzzerApp{states: make(map[string]*models.BuzzerState)}
	players := &fakePlayerApp{players: make(map[string][]models.Player)}
	return NewService(games, buzzers, players), games, buzzers, players
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCreateGameEndpoint(t *testing.T) {
	svc, _, _, _ := newTestService()
	routes := svc.Routes()

	rec := doRequest(t, routes, http.MethodPost, "/api/games",
		`{"green_team_name":"green","red_team_name":"red"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var g models.Game
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	require.Equal(t, "123456", g.ID)
	require.Equal(t, models.TeamGreen, g.CurrentTeam)
}

func TestCreateGameRejectsBadInput(t *testing.T) {
	svc, _, _, _ := newTestService()
	routes := svc.Routes()

	rec := doRequest(t, routes, http.MethodPost, "/api/games", `{"green_team_name":"","red_team_name":"red"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, routes, http.MethodPost, "/api/games", `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetGameNotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	rec := doRequest(t, svc.Routes(), http.MethodGet, "/api/games/999999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "error")
}

func TestReplaceAndFetchGame(t *testing.T) {
	svc, games, _, _ := newTestService()
	routes := svc.Routes()
	games.games["123456"] = &models.Game{ID: "123456", CurrentTeam: models.TeamGreen}

	rec := doRequest(t, routes, http.MethodPut, "/api/games/123456",
		`{"current_state":{"board":[[""]],"greenScore":1,"redScore":0},"current_team":"red","winner":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"success":true`)

	rec = doRequest(t, routes, http.MethodGet, "/api/games/123456", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var g models.Game
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	require.Equal(t, models.TeamRed, g.CurrentTeam)
	require.Equal(t, 1, g.CurrentState.GreenScore)
}

func TestDeleteGameEndpoint(t *testing.T) {
	svc, games, _, _ := newTestService()
	routes := svc.Routes()
	games.games["123456"] = &models.Game{ID: "123456"}

	rec := doRequest(t, routes, http.MethodDelete, "/api/games/123456", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, routes, http.MethodGet, "/api/games/123456", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBuzzerEndpoints(t *testing.T) {
	svc, _, buzzers, _ := newTestService()
	routes := svc.Routes()
	buzzers.states["123456"] = &models.BuzzerState{GameID: "123456", Active: true}

	rec := doRequest(t, routes, http.MethodGet, "/api/buzzer/123456", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var state models.BuzzerState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	require.True(t, state.Active)

	rec = doRequest(t, routes, http.MethodPut, "/api/buzzer/123456",
		`{"active":false,"buzzed_team":"red","buzzed_player":"nasser","buzzed_at":"2025-06-01T12:00:00Z"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.False(t, buzzers.states["123456"].Active)
	require.Equal(t, "nasser", *buzzers.states["123456"].BuzzedPlayer)

	rec = doRequest(t, routes, http.MethodGet, "/api/buzzer/999999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlayerEndpoints(t *testing.T) {
	svc, _, _, _ := newTestService()
	routes := svc.Routes()

	rec := doRequest(t, routes, http.MethodPost, "/api/players",
		`{"game_id":"123456","username":"huda","team":"green"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, routes, http.MethodPost, "/api/players",
		`{"game_id":"123456","username":"","team":"green"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, routes, http.MethodGet, "/api/players/123456", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var players []models.Player
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &players))
	require.Len(t, players, 1)
	require.Equal(t, "huda", players[0].Username)
}

func TestHealthEndpoint(t *testing.T) {
	svc, _, _, _ := newTestService()

	rec := doRequest(t, svc.Routes(), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
}
