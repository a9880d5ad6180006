package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/club-stats/internal/domain/appearance"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
)

type fixture struct {
	snap    Snapshot
	nextApp int64
}

func newFixture(matchCount int, players ...int64) *fixture {
	f := &fixture{}
	base := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < matchCount; i++ {
		f.snap.Matches = append(f.snap.Matches, match.Match{
			ID:       int64(i + 1),
			Date:     base.AddDate(0, 0, 7*i),
			Opponent: "Rival FC",
		})
	}
	for _, id := range players {
		f.snap.Players = append(f.snap.Players, player.Player{ID: id, FullName: "Player", Position: player.PositionMidfielder})
	}
	return f
}

func (f *fixture) play(matchID, playerID int64, mutate func(a *appearance.Appearance)) {
	f.nextApp++
	a := appearance.Appearance{ID: f.nextApp, MatchID: matchID, PlayerID: playerID, IsStarter: true}
	if mutate != nil {
		mutate(&a)
	}
	var date time.Time
	for _, m := range f.snap.Matches {
		if m.ID == matchID {
			date = m.Date
		}
	}
	f.snap.Appearances = append(f.snap.Appearances, appearance.Detailed{Appearance: a, MatchDate: date})
}

func yellow(a *appearance.Appearance) { a.Yellow = true }

func playerIDs(entries []Entry) []int64 {
	out := make([]int64, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Player.ID)
	}
	return out
}

func values(entries []Entry) []float64 {
	out := make([]float64, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Value)
	}
	return out
}

func TestCompute_FairplayAscendingGoalsDescending(t *testing.T) {
	f := newFixture(5, 1, 2, 3)

	// player 1: 1 card over 2 matches = 0.5
	f.play(1, 1, yellow)
	f.play(2, 1, func(a *appearance.Appearance) { a.Goals = 1 })
	// player 2: clean over 1 match = 0.0
	f.play(1, 2, nil)
	// player 3: 6 cards over 5 matches = 1.2
	f.play(1, 3, func(a *appearance.Appearance) { a.Yellow, a.Red, a.Goals = true, true, 1 })
	f.play(2, 3, yellow)
	f.play(3, 3, func(a *appearance.Appearance) { a.Yellow, a.Red = true, true })
	f.play(4, 3, yellow)
	f.play(5, 3, func(a *appearance.Appearance) { a.Goals = 2 })

	fairplay, err := Compute(TypeFairplay, f.snap, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1, 3}, playerIDs(fairplay))
	assert.Equal(t, []float64{0, 0.5, 1.2}, values(fairplay))

	goals, err := Compute(TypeGoals, f.snap, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1}, playerIDs(goals), "goals board sorts descending and drops zero scorers")
	assert.Equal(t, []float64{3, 1}, values(goals))
}

func TestCompute_AppearancesIncludesPlayersWithoutMatches(t *testing.T) {
	f := newFixture(2, 1, 2)
	f.play(1, 2, nil)

	got, err := Compute(TypeAppearances, f.snap, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].Player.ID)
	assert.Equal(t, float64(1), got[0].Value)
	assert.Equal(t, float64(0), got[1].Value)
}

func TestCompute_TiesShareRankAndOrderByPlayerID(t *testing.T) {
	f := newFixture(1, 9, 4, 7)
	for _, id := range []int64{9, 4, 7} {
		goals := 1
		if id == 7 {
			goals = 2
		}
		f.play(1, id, func(a *appearance.Appearance) { a.Goals = goals })
	}

	got, err := Compute(TypeGoals, f.snap, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 4, 9}, playerIDs(got))
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, 2, got[1].Rank)
	assert.Equal(t, 2, got[2].Rank)
}

func TestCompute_PerformanceUsesWeightedPointsPerAppearance(t *testing.T) {
	f := newFixture(3, 1, 2)
	f.play(1, 1, func(a *appearance.Appearance) { a.Goals, a.Assists = 1, 1 })
	f.play(2, 1, nil)
	f.play(3, 1, nil)
	f.play(1, 2, func(a *appearance.Appearance) { a.Assists = 1 })

	got, err := Compute(TypePerformance, f.snap, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].Player.ID)
	assert.Equal(t, 2.0, got[0].Value)
	assert.Equal(t, 1.67, got[1].Value)
}

func TestCompute_LimitAndUnknownType(t *testing.T) {
	f := newFixture(1, 1, 2, 3)
	for _, id := range []int64{1, 2, 3} {
		f.play(1, id, nil)
	}

	got, err := Compute(TypeAppearances, f.snap, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = Compute(Type("minutes"), f.snap, 10)
	assert.Error(t, err)
}

func trendsByPlayer(entries []Entry) map[int64]Trend {
	out := map[int64]Trend{}
	for _, e := range entries {
		out[e.Player.ID] = e.Trend
	}
	return out
}

func TestCompute_TrendsUsePlayersOwnFiveMostRecentAppearances(t *testing.T) {
	f := newFixture(10, 1, 2, 3)

	// Player 1 scored 3 in each of the five oldest club matches and sat out the rest.
	for m := int64(1); m <= 5; m++ {
		f.play(m, 1, func(a *appearance.Appearance) { a.Goals = 3 })
	}
	// Player 2 played the five newest matches and scored once.
	for m := int64(6); m <= 10; m++ {
		goals := 0
		if m == 8 {
			goals = 1
		}
		f.play(m, 2, func(a *appearance.Appearance) { a.Goals = goals })
	}
	// Player 3 scored 4 in their oldest match, then blanked in five newer ones.
	f.play(1, 3, func(a *appearance.Appearance) { a.Goals = 4 })
	for m := int64(2); m <= 6; m++ {
		f.play(m, 3, nil)
	}

	got, err := Compute(TypeGoals, f.snap, 10)
	require.NoError(t, err)

	trends := trendsByPlayer(got)
	assert.Equal(t, TrendUp, trends[1])
	assert.Equal(t, TrendStable, trends[2])
	assert.Equal(t, TrendDown, trends[3])
}

func TestCompute_TrendWindowBreaksDateTiesByNewestMatch(t *testing.T) {
	f := newFixture(6, 1)
	// Matches 1 and 2 share the oldest date; only one of them fits in the window.
	f.snap.Matches[1].Date = f.snap.Matches[0].Date
	for m := int64(1); m <= 6; m++ {
		goals := 0
		if m == 2 {
			goals = 3
		}
		f.play(m, 1, func(a *appearance.Appearance) { a.Goals = goals })
	}

	got, err := Compute(TypeGoals, f.snap, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, TrendUp, got[0].Trend, "match 2 outranks match 1 on the shared date")
}

func TestCompute_FairplayTrend(t *testing.T) {
	f := newFixture(10, 1, 2, 3)
	// Player 1 stayed clean in their only five appearances, long before the club's latest matches.
	for m := int64(1); m <= 5; m++ {
		f.play(m, 1, nil)
	}
	f.play(6, 2, yellow)
	f.play(7, 2, yellow)
	f.play(8, 3, yellow)

	got, err := Compute(TypeFairplay, f.snap, 10)
	require.NoError(t, err)

	trends := trendsByPlayer(got)
	assert.Equal(t, TrendUp, trends[1])
	assert.Equal(t, TrendDown, trends[2])
	assert.Equal(t, TrendStable, trends[3])
}

func TestParseType(t *testing.T) {
	got, ok := ParseType(" Fairplay ")
	assert.True(t, ok)
	assert.Equal(t, TypeFairplay, got)

	_, ok = ParseType("minutes")
	assert.False(t, ok)
}
