package ranking

import (
	"testing"

	"github.com/riskibarqy/club-stats/internal/domain/appearance"
	"github.com/riskibarqy/club-stats/internal/domain/match"
)

func TestSummarizePlayer(t *testing.T) {
	ninety := 90
	thirty := 30
	got := SummarizePlayer([]appearance.Appearance{
		{IsStarter: true, Minutes: &ninety, Goals: 2, Assists: 1, Yellow: true, MOTM: true},
		{IsStarter: false, Minutes: &thirty},
		{IsStarter: true, Goals: 0, Assists: 1, Red: true},
	})

	if got.Appearances != 3 || got.Goals != 2 || got.Assists != 2 {
		t.Fatalf("unexpected totals: %+v", got)
	}
	if got.Starts != 2 || got.Substitutes != 1 {
		t.Fatalf("unexpected start split: %+v", got)
	}
	if got.YellowCards != 1 || got.RedCards != 1 || got.MOTM != 1 || got.Minutes != 120 {
		t.Fatalf("unexpected counters: %+v", got)
	}
	if got.GoalsPerMatch != 0.67 || got.AssistsPerMatch != 0.67 {
		t.Fatalf("unexpected per match values: %+v", got)
	}
}

func TestSummarizePlayer_Empty(t *testing.T) {
	got := SummarizePlayer(nil)
	if got.Appearances != 0 || got.GoalsPerMatch != 0 {
		t.Fatalf("expected zero summary, got %+v", got)
	}
}

func TestSummarizeMatch(t *testing.T) {
	m := match.Match{ID: 1, OurScore: 3}
	got := SummarizeMatch(m, []appearance.Appearance{
		{PlayerID: 5, IsStarter: true, Goals: 1},
		{PlayerID: 2, IsStarter: true, Goals: 2, MOTM: true},
		{PlayerID: 8, Assists: 2, Yellow: true},
	})

	if got.TotalGoals != 3 || got.TotalAssists != 2 || !got.GoalsReconciled {
		t.Fatalf("unexpected totals: %+v", got)
	}
	if len(got.Scorers) != 2 || got.Scorers[0].PlayerID != 2 {
		t.Fatalf("unexpected scorers: %+v", got.Scorers)
	}
	if got.MOTMPlayerID == nil || *got.MOTMPlayerID != 2 {
		t.Fatalf("unexpected motm: %v", got.MOTMPlayerID)
	}
	if got.Starters != 2 || got.Substitutes != 1 || got.YellowCards != 1 {
		t.Fatalf("unexpected counters: %+v", got)
	}
}

func TestSummarizeClub(t *testing.T) {
	got := SummarizeClub([]match.Match{
		{OurScore: 2, TheirScore: 1, Result: match.ResultWin},
		{OurScore: 0, TheirScore: 0, Result: match.ResultDraw},
		{OurScore: 1, TheirScore: 3, Result: match.ResultLoss},
	})

	if got.Played != 3 || got.Wins != 1 || got.Draws != 1 || got.Losses != 1 {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.GoalsFor != 3 || got.GoalsAgainst != 4 || got.GoalDifference != -1 {
		t.Fatalf("unexpected goals: %+v", got)
	}
	if got.WinRate != 33.33 {
		t.Fatalf("unexpected win rate: %v", got.WinRate)
	}
}
