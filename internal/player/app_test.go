package player

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/7rof/huroof/internal/models"
)

type fakePlayerRepo struct {
	players map[string][]models.Player
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: make(map[string][]models.Player)}
}

func (r *fakePlayerRepo) UpsertPlayer(ctx context.Context, req UpsertPlayerRequest) (*models.Player, error) {
	players := r.players[req.GameID]
	for i := range players {
		if players[i].Username == req.Username {
			players[i].Team = req.Team
			return &players[i], nil
		}
	}
	p := models.Player{ID: uuid.New(), GameID: req.GameID, Username: req.Username, Team: req.Team}
	r.players[req.GameID] = append(players, p)
	return &p, nil
}

func (r *fakePlayerRepo) ListPlayers(ctx context.Context, gameID string) ([]models.Player, error) {
	return r.players[gameID], nil
}

func TestUpsertPlayerJoinsAndMoves(t *testing.T) {
	app := NewApp(newFakePlayerRepo(), nil)

	p, err := app.UpsertPlayer(context.Background(), UpsertPlayerRequest{
		GameID:   "123456",
		Username: "huda",
		Team:     models.TeamGreen,
	})
	require.NoError(t, err)
	require.Equal(t, models.TeamGreen, p.Team)

	// Re-joining on the other team updates in place instead of duplicating.
	p, err = app.UpsertPlayer(context.Background(), UpsertPlayerRequest{
		GameID:   "123456",
		Username: "huda",
		Team:     models.TeamRed,
	})
	require.NoError(t, err)
	require.Equal(t, models.TeamRed, p.Team)

	players, err := app.ListPlayers(context.Background(), "123456")
	require.NoError(t, err)
	require.Len(t, players, 1)
	require.Equal(t, models.TeamRed, players[0].Team)
}

func TestUpsertPlayerValidation(t *testing.T) {
	app := NewApp(newFakePlayerRepo(), nil)

	_, err := app.UpsertPlayer(context.Background(), UpsertPlayerRequest{GameID: "123456", Username: " ", Team: models.TeamGreen})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = app.UpsertPlayer(context.Background(), UpsertPlayerRequest{GameID: "", Username: "huda", Team: models.TeamGreen})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = app.UpsertPlayer(context.Background(), UpsertPlayerRequest{GameID: "123456", Username: "huda", Team: models.Team("blue")})
	require.ErrorIs(t, err, ErrInvalidInput)
}
