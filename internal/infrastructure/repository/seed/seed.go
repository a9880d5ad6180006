// Package seed loads the demo club into any store behind a unit of work.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/club-stats/internal/domain/appearance"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/tournament"
	"github.com/riskibarqy/club-stats/internal/domain/uow"
)

const TournamentName = "Liga Amateur"

func Players() []player.Player {
	joined := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	dorsal := func(n int) *int { return &n }
	return []player.Player{
		{FullName: "Carlos Mendoza", Nickname: "Charly", Dorsal: dorsal(1), Position: player.PositionGoalkeeper, JoinedAt: joined, IsActive: true},
		{FullName: "Luis Ortega", Nickname: "Lucho", Dorsal: dorsal(4), Position: player.PositionDefender, JoinedAt: joined, IsActive: true},
		{FullName: "Miguel Rojas", Nickname: "Mike", Dorsal: dorsal(8), Position: player.PositionMidfielder, JoinedAt: joined, IsActive: true},
		{FullName: "Juan Perez", Nickname: "JuanP", Dorsal: dorsal(9), Position: player.PositionForward, JoinedAt: joined, IsActive: true},
		{FullName: "Andres Vidal", Nickname: "Andy", Dorsal: dorsal(11), Position: player.PositionForward, JoinedAt: joined, IsActive: false},
	}
}

type seedMatch struct {
	date       time.Time
	opponent   string
	ourScore   int
	theirScore int
	// scorers maps seed player index to goals.
	scorers map[int]int
}

func seedMatches() []seedMatch {
	return []seedMatch{
		{date: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), opponent: "Rival FC", ourScore: 2, theirScore: 1, scorers: map[int]int{3: 2}},
		{date: time.Date(2024, 9, 8, 0, 0, 0, 0, time.UTC), opponent: "Deportivo Sur", ourScore: 1, theirScore: 1, scorers: map[int]int{2: 1}},
		{date: time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC), opponent: "Atletico Norte", ourScore: 0, theirScore: 2},
	}
}

// Demo loads a small roster with a few played matches in one unit of work.
// It does nothing when the store already holds players, so it is safe to run
// on every start.
func Demo(ctx context.Context, unit uow.UnitOfWork) error {
	return unit.Do(ctx, func(ctx context.Context, repos uow.Repositories) error {
		existing, err := repos.Players.List(ctx, player.ListFilter{})
		if err != nil {
			return fmt.Errorf("count players before seed: %w", err)
		}
		if len(existing) > 0 {
			return nil
		}

		players := make([]player.Player, 0, len(Players()))
		for _, p := range Players() {
			created, err := repos.Players.Create(ctx, p)
			if err != nil {
				return fmt.Errorf("seed player %s: %w", p.Nickname, err)
			}
			players = append(players, created)
		}

		t, err := repos.Tournaments.Create(ctx, tournament.Tournament{Name: TournamentName, Season: "2024"})
		if err != nil {
			return fmt.Errorf("seed tournament: %w", err)
		}

		for _, sm := range seedMatches() {
			m, err := repos.Matches.Create(ctx, match.Match{
				Date:         sm.date,
				Opponent:     sm.opponent,
				OurScore:     sm.ourScore,
				TheirScore:   sm.theirScore,
				Result:       match.DeriveResult(sm.ourScore, sm.theirScore),
				TournamentID: &t.ID,
			})
			if err != nil {
				return fmt.Errorf("seed match %s: %w", sm.opponent, err)
			}

			for i, p := range players {
				if !p.IsActive {
					continue
				}
				minutes := 90
				if _, err := repos.Appearances.Create(ctx, appearance.Appearance{
					MatchID:   m.ID,
					PlayerID:  p.ID,
					IsStarter: true,
					Minutes:   &minutes,
					Goals:     sm.scorers[i],
				}); err != nil {
					return fmt.Errorf("seed appearance match=%d player=%d: %w", m.ID, p.ID, err)
				}
			}
		}
		return nil
	})
}
