package ranking

import (
	"fmt"
	"math"
	"sort"

	"github.com/riskibarqy/club-stats/internal/domain/appearance"
)

// totals accumulates one player's counters over all appearances and over the
// player's own trend window.
type totals struct {
	appearances int
	goals       int
	assists     int
	cards       int

	recentAppearances int
	recentGoals       int
	recentAssists     int
	recentCards       int
}

func (t totals) points() int {
	return t.goals*3 + t.assists*2
}

func (t totals) recentPoints() int {
	return t.recentGoals*3 + t.recentAssists*2
}

type rule struct {
	include   func(t totals) bool
	value     func(t totals) float64
	ascending bool
	trend     func(t totals) Trend
}

// Thresholds are fixed heuristics tuned for the club dashboard.
var rules = map[Type]rule{
	TypeGoals: {
		include: func(t totals) bool { return t.goals > 0 },
		value:   func(t totals) float64 { return float64(t.goals) },
		trend: func(t totals) Trend {
			return classify(t.recentGoals > 2, t.recentGoals < 1)
		},
	},
	TypeAppearances: {
		include: func(totals) bool { return true },
		value:   func(t totals) float64 { return float64(t.appearances) },
		trend: func(t totals) Trend {
			return classify(t.recentAppearances > 3, t.recentAppearances < 2)
		},
	},
	TypeAssists: {
		include: func(t totals) bool { return t.assists > 0 },
		value:   func(t totals) float64 { return float64(t.assists) },
		trend: func(t totals) Trend {
			return classify(t.recentAssists > 1, t.recentAssists < 1)
		},
	},
	TypeFairplay: {
		include:   func(t totals) bool { return t.appearances > 0 },
		value:     func(t totals) float64 { return float64(t.cards) / float64(t.appearances) },
		ascending: true,
		trend: func(t totals) Trend {
			if t.recentAppearances == 0 {
				return TrendStable
			}
			return classify(t.recentCards == 0, t.recentCards > 1)
		},
	},
	TypePerformance: {
		include: func(t totals) bool { return t.appearances > 0 },
		value:   func(t totals) float64 { return float64(t.points()) / float64(t.appearances) },
		trend: func(t totals) Trend {
			return classify(t.recentPoints() > 8, t.recentPoints() < 3)
		},
	},
}

func classify(up, down bool) Trend {
	switch {
	case up:
		return TrendUp
	case down:
		return TrendDown
	default:
		return TrendStable
	}
}

// Compute builds one leaderboard. Rows with equal values are ordered by
// player id ascending and share the same competition rank.
func Compute(t Type, snap Snapshot, limit int) ([]Entry, error) {
	r, ok := rules[t]
	if !ok {
		return nil, fmt.Errorf("unknown ranking type %q", t)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	byPlayer := aggregate(snap)

	type scored struct {
		entry Entry
		raw   float64
	}
	rows := make([]scored, 0, len(snap.Players))
	for _, p := range snap.Players {
		tot := byPlayer[p.ID]
		if !r.include(tot) {
			continue
		}
		raw := r.value(tot)
		rows = append(rows, scored{
			entry: Entry{
				Player:      p,
				Value:       round2(raw),
				Appearances: tot.appearances,
				Trend:       r.trend(tot),
			},
			raw: raw,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].raw != rows[j].raw {
			if r.ascending {
				return rows[i].raw < rows[j].raw
			}
			return rows[i].raw > rows[j].raw
		}
		return rows[i].entry.Player.ID < rows[j].entry.Player.ID
	})

	if len(rows) > limit {
		rows = rows[:limit]
	}

	out := make([]Entry, 0, len(rows))
	for i, row := range rows {
		row.entry.Rank = i + 1
		if i > 0 && rows[i-1].raw == row.raw {
			row.entry.Rank = out[i-1].Rank
		}
		out = append(out, row.entry)
	}

	return out, nil
}

func aggregate(snap Snapshot) map[int64]totals {
	byPlayer := make(map[int64][]appearance.Detailed, len(snap.Players))
	for _, a := range snap.Appearances {
		byPlayer[a.PlayerID] = append(byPlayer[a.PlayerID], a)
	}

	out := make(map[int64]totals, len(byPlayer))
	for playerID, apps := range byPlayer {
		var tot totals
		for i, a := range newestFirst(apps) {
			tot.appearances++
			tot.goals += a.Goals
			tot.assists += a.Assists
			tot.cards += a.Cards()
			if i < TrendWindow {
				tot.recentAppearances++
				tot.recentGoals += a.Goals
				tot.recentAssists += a.Assists
				tot.recentCards += a.Cards()
			}
		}
		out[playerID] = tot
	}
	return out
}

// newestFirst orders one player's appearances by match date, newest match id
// first on the same date.
func newestFirst(apps []appearance.Detailed) []appearance.Detailed {
	sorted := append([]appearance.Detailed(nil), apps...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].MatchDate.Equal(sorted[j].MatchDate) {
			return sorted[i].MatchDate.After(sorted[j].MatchDate)
		}
		return sorted[i].MatchID > sorted[j].MatchID
	})
	return sorted
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
