package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/club-stats/internal/domain/player"
)

type PlayerRepository struct {
	acc accessor
}

func (r *PlayerRepository) List(_ context.Context, filter player.ListFilter) ([]player.Player, error) {
	var out []player.Player
	err := r.acc.read(func(st *state) error {
		out = make([]player.Player, 0, len(st.players))
		for _, p := range st.players {
			if filter.ActiveOnly && !p.IsActive {
				continue
			}
			out = append(out, p)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	var (
		out   player.Player
		found bool
	)
	err := r.acc.read(func(st *state) error {
		out, found = st.players[id]
		return nil
	})
	return out, found, err
}

// GetByNickname matches exactly; the lowest id wins when nicknames repeat.
func (r *PlayerRepository) GetByNickname(_ context.Context, nickname string) (player.Player, bool, error) {
	var (
		out   player.Player
		found bool
	)
	err := r.acc.read(func(st *state) error {
		for _, p := range st.players {
			if p.Nickname != nickname || nickname == "" {
				continue
			}
			if !found || p.ID < out.ID {
				out, found = p, true
			}
		}
		return nil
	})
	return out, found, err
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (player.Player, error) {
	err := r.acc.write(func(st *state) error {
		st.seq.player++
		now := r.acc.now()
		p.ID = st.seq.player
		p.CreatedAt = now
		p.UpdatedAt = now
		st.players[p.ID] = p
		return nil
	})
	return p, err
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) (player.Player, error) {
	err := r.acc.write(func(st *state) error {
		existing, ok := st.players[p.ID]
		if !ok {
			return fmt.Errorf("update player id=%d: not found", p.ID)
		}
		p.CreatedAt = existing.CreatedAt
		p.UpdatedAt = r.acc.now()
		st.players[p.ID] = p
		return nil
	})
	return p, err
}

// DeleteAll removes every player and, like the database cascade, their appearances.
func (r *PlayerRepository) DeleteAll(_ context.Context) (int64, error) {
	var n int64
	err := r.acc.write(func(st *state) error {
		n = int64(len(st.players))
		clear(st.players)
		clear(st.appearances)
		return nil
	})
	return n, err
}
