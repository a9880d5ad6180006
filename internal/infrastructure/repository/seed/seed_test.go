package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/infrastructure/repository/memory"
)

func TestDemo_LoadsClubOnce(t *testing.T) {
	store := memory.NewStore()
	repos := store.Repositories()

	require.NoError(t, Demo(t.Context(), store))
	require.NoError(t, Demo(t.Context(), store), "second run is a no-op")

	players, err := repos.Players.List(t.Context(), player.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, players, len(Players()))

	matches, err := repos.Matches.List(t.Context(), match.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, matches, 3)

	tournaments, err := repos.Tournaments.List(t.Context())
	require.NoError(t, err)
	require.Len(t, tournaments, 1)
	assert.Equal(t, TournamentName, tournaments[0].Name)

	appearances, err := repos.Appearances.ListDetailed(t.Context())
	require.NoError(t, err)
	assert.Len(t, appearances, 12, "four active players in each of three matches")
}

func TestDemo_GoalsMatchScores(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, Demo(t.Context(), store))

	appearances, err := store.Repositories().Appearances.ListDetailed(t.Context())
	require.NoError(t, err)

	goals := map[int64]int{}
	scores := map[int64]int{}
	for _, a := range appearances {
		goals[a.MatchID] += a.Goals
		scores[a.MatchID] = a.OurScore
	}
	for matchID, want := range scores {
		assert.Equal(t, want, goals[matchID], "match %d", matchID)
	}
}
