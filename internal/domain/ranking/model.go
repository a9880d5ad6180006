package ranking

import (
	"strings"

	"github.com/riskibarqy/club-stats/internal/domain/appearance"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
)

// Type selects one of the leaderboards.
type Type string

const (
	TypeGoals       Type = "goals"
	TypeAppearances Type = "appearances"
	TypeAssists     Type = "assists"
	TypeFairplay    Type = "fairplay"
	TypePerformance Type = "performance"
)

// AllTypes lists the leaderboards in display order.
var AllTypes = []Type{TypeGoals, TypeAppearances, TypeAssists, TypeFairplay, TypePerformance}

func ParseType(raw string) (Type, bool) {
	candidate := Type(strings.ToLower(strings.TrimSpace(raw)))
	for _, t := range AllTypes {
		if t == candidate {
			return t, true
		}
	}
	return "", false
}

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

const (
	DefaultLimit = 10
	// TrendWindow is the number of a player's most recent appearances inspected
	// for trends.
	TrendWindow = 5
)

// Entry is one leaderboard row.
type Entry struct {
	Rank        int
	Player      player.Player
	Value       float64
	Appearances int
	Trend       Trend
}

// Snapshot is the full read set a leaderboard is computed from.
type Snapshot struct {
	Players     []player.Player
	Matches     []match.Match
	Appearances []appearance.Detailed
}
