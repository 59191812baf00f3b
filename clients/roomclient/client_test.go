package roomclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/7rof/huroof/internal/models"
)

func TestCreateGameDecodesRecord(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody createGameRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Game{
			ID:            "482913",
			GreenTeamName: "الأخضر",
			RedTeamName:   "الأحمر",
			CurrentTeam:   models.TeamGreen,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	g, err := c.CreateGame(context.Background(), "الأخضر", "الأحمر")
	require.NoError(t, err)
	require.Equal(t, "/api/games", gotPath)
	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "الأخضر", gotBody.GreenTeamName)
	require.Equal(t, "482913", g.ID)
	require.Equal(t, models.TeamGreen, g.CurrentTeam)
}

func TestGetGameNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.GetGame(context.Background(), "000000")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestReplaceGameSendsFullRecord(t *testing.T) {
	var got replaceGameRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/games/482913", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}))
	defer srv.Close()

	state := models.GameState{Board: [][]string{{""}}, GreenScore: 2}
	winner := models.TeamGreen
	c := NewClient(srv.URL)
	err := c.ReplaceGame(context.Background(), "482913", state, models.TeamRed, &winner)
	require.NoError(t, err)
	require.Equal(t, 2, got.CurrentState.GreenScore)
	require.Equal(t, models.TeamRed, got.CurrentTeam)
	require.Equal(t, models.TeamGreen, *got.Winner)
}

func TestServerErrorSurfacesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.GetGame(context.Background(), "482913")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "500")
	require.Contains(t, err.Error(), "boom")
}

func TestBuzzerRoundTrip(t *testing.T) {
	var got replaceBuzzerRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(models.BuzzerState{GameID: "482913", Active: true})
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			json.NewEncoder(w).Encode(map[string]bool{"success": true})
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	state, err := c.GetBuzzerState(context.Background(), "482913")
	require.NoError(t, err)
	require.True(t, state.Active)

	team := models.TeamRed
	player := "nasser"
	state.Active = false
	state.BuzzedTeam = &team
	state.BuzzedPlayer = &player
	require.NoError(t, c.ReplaceBuzzerState(context.Background(), "482913", *state))
	require.False(t, got.Active)
	require.Equal(t, models.TeamRed, *got.BuzzedTeam)
	require.Equal(t, "nasser", *got.BuzzedPlayer)
}

func TestPlayerEndpoints(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			var req upsertPlayerRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.Player{GameID: req.GameID, Username: req.Username, Team: req.Team})
		default:
			require.Equal(t, "/api/players/482913", r.URL.Path)
			json.NewEncoder(w).Encode([]models.Player{{GameID: "482913", Username: "huda", Team: models.TeamGreen}})
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	p, err := c.UpsertPlayer(context.Background(), "482913", "huda", models.TeamGreen)
	require.NoError(t, err)
	require.Equal(t, "huda", p.Username)

	players, err := c.GetPlayers(context.Background(), "482913")
	require.NoError(t, err)
	require.Len(t, players, 1)
	require.Equal(t, models.TeamGreen, players[0].Team)
}
