package ranking

import (
	"sort"

	"github.com/riskibarqy/club-stats/internal/domain/appearance"
	"github.com/riskibarqy/club-stats/internal/domain/match"
)

// PlayerSummary is the aggregate stat block shown on a player profile.
type PlayerSummary struct {
	Appearances     int
	Goals           int
	Assists         int
	YellowCards     int
	RedCards        int
	Starts          int
	Substitutes     int
	MOTM            int
	Minutes         int
	GoalsPerMatch   float64
	AssistsPerMatch float64
}

func SummarizePlayer(apps []appearance.Appearance) PlayerSummary {
	var s PlayerSummary
	for _, a := range apps {
		s.Appearances++
		s.Goals += a.Goals
		s.Assists += a.Assists
		if a.Yellow {
			s.YellowCards++
		}
		if a.Red {
			s.RedCards++
		}
		if a.IsStarter {
			s.Starts++
		} else {
			s.Substitutes++
		}
		if a.MOTM {
			s.MOTM++
		}
		if a.Minutes != nil {
			s.Minutes += *a.Minutes
		}
	}
	if s.Appearances > 0 {
		s.GoalsPerMatch = round2(float64(s.Goals) / float64(s.Appearances))
		s.AssistsPerMatch = round2(float64(s.Assists) / float64(s.Appearances))
	}
	return s
}

// Scorer is a player who scored in a match.
type Scorer struct {
	PlayerID int64
	Goals    int
}

// MatchSummary is the per-match stat block computed from its appearances.
type MatchSummary struct {
	TotalGoals   int
	TotalAssists int
	YellowCards  int
	RedCards     int
	Starters     int
	Substitutes  int
	Scorers      []Scorer
	MOTMPlayerID *int64
	// GoalsReconciled reports whether individual goals add up to the club score.
	GoalsReconciled bool
}

func SummarizeMatch(m match.Match, apps []appearance.Appearance) MatchSummary {
	s := MatchSummary{Scorers: []Scorer{}}
	for _, a := range apps {
		s.TotalGoals += a.Goals
		s.TotalAssists += a.Assists
		if a.Yellow {
			s.YellowCards++
		}
		if a.Red {
			s.RedCards++
		}
		if a.IsStarter {
			s.Starters++
		} else {
			s.Substitutes++
		}
		if a.Goals > 0 {
			s.Scorers = append(s.Scorers, Scorer{PlayerID: a.PlayerID, Goals: a.Goals})
		}
		if a.MOTM && s.MOTMPlayerID == nil {
			id := a.PlayerID
			s.MOTMPlayerID = &id
		}
	}
	sort.SliceStable(s.Scorers, func(i, j int) bool {
		if s.Scorers[i].Goals != s.Scorers[j].Goals {
			return s.Scorers[i].Goals > s.Scorers[j].Goals
		}
		return s.Scorers[i].PlayerID < s.Scorers[j].PlayerID
	})
	s.GoalsReconciled = s.TotalGoals == m.OurScore
	return s
}

// ClubSummary is the season overview of all recorded matches.
type ClubSummary struct {
	Played         int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	WinRate        float64
}

// SummarizeClub counts results from the stored result, not from the scores.
func SummarizeClub(matches []match.Match) ClubSummary {
	var s ClubSummary
	for _, m := range matches {
		s.Played++
		s.GoalsFor += m.OurScore
		s.GoalsAgainst += m.TheirScore
		switch m.Result {
		case match.ResultWin:
			s.Wins++
		case match.ResultDraw:
			s.Draws++
		case match.ResultLoss:
			s.Losses++
		}
	}
	s.GoalDifference = s.GoalsFor - s.GoalsAgainst
	if s.Played > 0 {
		s.WinRate = round2(float64(s.Wins) * 100 / float64(s.Played))
	}
	return s
}
