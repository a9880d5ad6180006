package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/club-stats/internal/domain/tournament"
	"github.com/riskibarqy/club-stats/internal/domain/uow"
)

type TournamentRepository struct {
	acc accessor
}

func (r *TournamentRepository) List(_ context.Context) ([]tournament.Tournament, error) {
	var out []tournament.Tournament
	err := r.acc.read(func(st *state) error {
		out = make([]tournament.Tournament, 0, len(st.tournaments))
		for _, t := range st.tournaments {
			out = append(out, t)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

func (r *TournamentRepository) GetByID(_ context.Context, id int64) (tournament.Tournament, bool, error) {
	var (
		out   tournament.Tournament
		found bool
	)
	err := r.acc.read(func(st *state) error {
		out, found = st.tournaments[id]
		return nil
	})
	return out, found, err
}

func (r *TournamentRepository) GetByName(_ context.Context, name string) (tournament.Tournament, bool, error) {
	return r.first(func(t tournament.Tournament) bool { return t.Name == name })
}

func (r *TournamentRepository) GetByNameAndSeason(_ context.Context, name, season string) (tournament.Tournament, bool, error) {
	return r.first(func(t tournament.Tournament) bool { return t.Name == name && t.Season == season })
}

func (r *TournamentRepository) first(match func(t tournament.Tournament) bool) (tournament.Tournament, bool, error) {
	var (
		out   tournament.Tournament
		found bool
	)
	err := r.acc.read(func(st *state) error {
		for _, t := range st.tournaments {
			if !match(t) {
				continue
			}
			if !found || t.ID < out.ID {
				out, found = t, true
			}
		}
		return nil
	})
	return out, found, err
}

func (r *TournamentRepository) Create(_ context.Context, t tournament.Tournament) (tournament.Tournament, error) {
	err := r.acc.write(func(st *state) error {
		for _, existing := range st.tournaments {
			if existing.Name == t.Name && existing.Season == t.Season {
				return fmt.Errorf("create tournament name=%q season=%q: %w", t.Name, t.Season, uow.ErrConflict)
			}
		}
		st.seq.tournament++
		t.ID = st.seq.tournament
		st.tournaments[t.ID] = t
		return nil
	})
	return t, err
}

// DeleteAll detaches matches from the removed tournaments.
func (r *TournamentRepository) DeleteAll(_ context.Context) (int64, error) {
	var n int64
	err := r.acc.write(func(st *state) error {
		n = int64(len(st.tournaments))
		clear(st.tournaments)
		for id, m := range st.matches {
			if m.TournamentID != nil {
				m.TournamentID = nil
				st.matches[id] = m
			}
		}
		return nil
	})
	return n, err
}
