package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/club-stats/internal/domain/appearance"
	"github.com/riskibarqy/club-stats/internal/domain/uow"
)

type AppearanceRepository struct {
	acc accessor
}

func (r *AppearanceRepository) Create(_ context.Context, a appearance.Appearance) (appearance.Appearance, error) {
	err := r.acc.write(func(st *state) error {
		if _, ok := st.matches[a.MatchID]; !ok {
			return fmt.Errorf("create appearance match id=%d: %w", a.MatchID, uow.ErrReferenceNotFound)
		}
		if _, ok := st.players[a.PlayerID]; !ok {
			return fmt.Errorf("create appearance player id=%d: %w", a.PlayerID, uow.ErrReferenceNotFound)
		}
		st.seq.appearance++
		a.ID = st.seq.appearance
		st.appearances[a.ID] = a
		return nil
	})
	return a, err
}

func (r *AppearanceRepository) ListByMatch(_ context.Context, matchID int64) ([]appearance.Appearance, error) {
	var out []appearance.Appearance
	err := r.acc.read(func(st *state) error {
		for _, a := range st.appearances {
			if a.MatchID == matchID {
				out = append(out, a)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

func (r *AppearanceRepository) ListDetailed(_ context.Context) ([]appearance.Detailed, error) {
	return r.listDetailed(func(appearance.Appearance) bool { return true })
}

func (r *AppearanceRepository) ListDetailedByPlayer(_ context.Context, playerID int64) ([]appearance.Detailed, error) {
	return r.listDetailed(func(a appearance.Appearance) bool { return a.PlayerID == playerID })
}

func (r *AppearanceRepository) listDetailed(keep func(appearance.Appearance) bool) ([]appearance.Detailed, error) {
	var out []appearance.Detailed
	err := r.acc.read(func(st *state) error {
		out = make([]appearance.Detailed, 0, len(st.appearances))
		for _, a := range st.appearances {
			if !keep(a) {
				continue
			}
			m, ok := st.matches[a.MatchID]
			if !ok {
				continue
			}
			out = append(out, appearance.Detailed{
				Appearance: a,
				MatchDate:  m.Date,
				Opponent:   m.Opponent,
				OurScore:   m.OurScore,
				TheirScore: m.TheirScore,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].MatchDate.Equal(out[j].MatchDate) {
			return out[i].MatchDate.After(out[j].MatchDate)
		}
		if out[i].MatchID != out[j].MatchID {
			return out[i].MatchID > out[j].MatchID
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *AppearanceRepository) DeleteAll(_ context.Context) (int64, error) {
	var n int64
	err := r.acc.write(func(st *state) error {
		n = int64(len(st.appearances))
		clear(st.appearances)
		return nil
	})
	return n, err
}
