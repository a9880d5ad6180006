package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/uow"
)

type MatchRepository struct {
	acc accessor
}

// List orders by date, newest first.
func (r *MatchRepository) List(_ context.Context, filter match.ListFilter) ([]match.Match, error) {
	var out []match.Match
	err := r.acc.read(func(st *state) error {
		out = make([]match.Match, 0, len(st.matches))
		for _, m := range st.matches {
			if filter.TournamentID != nil && (m.TournamentID == nil || *m.TournamentID != *filter.TournamentID) {
				continue
			}
			out = append(out, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortMatchesNewestFirst(out)
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	var (
		out   match.Match
		found bool
	)
	err := r.acc.read(func(st *state) error {
		out, found = st.matches[id]
		return nil
	})
	return out, found, err
}

func (r *MatchRepository) GetByDateAndOpponent(_ context.Context, date time.Time, opponent string) (match.Match, bool, error) {
	day := match.NormalizeDate(date)
	opponent = match.NormalizeOpponent(opponent)

	var (
		out   match.Match
		found bool
	)
	err := r.acc.read(func(st *state) error {
		for _, m := range st.matches {
			if !match.NormalizeDate(m.Date).Equal(day) || match.NormalizeOpponent(m.Opponent) != opponent {
				continue
			}
			if !found || m.ID < out.ID {
				out, found = m, true
			}
		}
		return nil
	})
	return out, found, err
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) (match.Match, error) {
	err := r.acc.write(func(st *state) error {
		if m.TournamentID != nil {
			if _, ok := st.tournaments[*m.TournamentID]; !ok {
				return fmt.Errorf("create match tournament id=%d: %w", *m.TournamentID, uow.ErrReferenceNotFound)
			}
		}
		st.seq.match++
		m.ID = st.seq.match
		m.CreatedAt = r.acc.now()
		st.matches[m.ID] = m
		return nil
	})
	return m, err
}

// DeleteAll removes every match and, like the database cascade, their appearances.
func (r *MatchRepository) DeleteAll(_ context.Context) (int64, error) {
	var n int64
	err := r.acc.write(func(st *state) error {
		n = int64(len(st.matches))
		clear(st.matches)
		clear(st.appearances)
		return nil
	})
	return n, err
}

func sortMatchesNewestFirst(matches []match.Match) {
	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].Date.Equal(matches[j].Date) {
			return matches[i].Date.After(matches[j].Date)
		}
		return matches[i].ID > matches[j].ID
	})
}
