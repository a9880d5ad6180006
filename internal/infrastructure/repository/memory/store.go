package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/riskibarqy/club-stats/internal/domain/appearance"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/tournament"
	"github.com/riskibarqy/club-stats/internal/domain/uow"
)

type sequences struct {
	player     int64
	tournament int64
	match      int64
	appearance int64
}

type state struct {
	players     map[int64]player.Player
	tournaments map[int64]tournament.Tournament
	matches     map[int64]match.Match
	appearances map[int64]appearance.Appearance
	seq         sequences
}

func newState() *state {
	return &state{
		players:     make(map[int64]player.Player),
		tournaments: make(map[int64]tournament.Tournament),
		matches:     make(map[int64]match.Match),
		appearances: make(map[int64]appearance.Appearance),
	}
}

// clone copies every table. Pointer fields inside records are never mutated
// in place, so a shallow copy of each record is enough.
func (s *state) clone() *state {
	return &state{
		players:     maps.Clone(s.players),
		tournaments: maps.Clone(s.tournaments),
		matches:     maps.Clone(s.matches),
		appearances: maps.Clone(s.appearances),
		seq:         s.seq,
	}
}

// accessor hands a repository the state it should operate on.
type accessor interface {
	read(fn func(st *state) error) error
	write(fn func(st *state) error) error
	now() time.Time
}

// Store is an in-process implementation of every repository with
// snapshot transactions. Writers are serialized; readers see the last
// committed state.
type Store struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	current *state
	clock   func() time.Time
}

func NewStore() *Store {
	return &Store{
		current: newState(),
		clock:   time.Now,
	}
}

// Repositories returns auto-commit repositories over the committed state.
func (s *Store) Repositories() uow.Repositories {
	return repositoriesFor(storeAccessor{store: s})
}

// Do runs fn against a private copy of the state and publishes the copy only
// when fn succeeds.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, repos uow.Repositories) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	working := s.current.clone()
	s.mu.RUnlock()

	if err := fn(ctx, repositoriesFor(&txAccessor{st: working, clock: s.clock})); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("commit memory tx: %w", err)
	}

	s.mu.Lock()
	s.current = working
	s.mu.Unlock()
	return nil
}

func repositoriesFor(acc accessor) uow.Repositories {
	return uow.Repositories{
		Players:     &PlayerRepository{acc: acc},
		Tournaments: &TournamentRepository{acc: acc},
		Matches:     &MatchRepository{acc: acc},
		Appearances: &AppearanceRepository{acc: acc},
	}
}

type storeAccessor struct {
	store *Store
}

func (a storeAccessor) read(fn func(st *state) error) error {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()
	return fn(a.store.current)
}

func (a storeAccessor) write(fn func(st *state) error) error {
	a.store.writeMu.Lock()
	defer a.store.writeMu.Unlock()
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	return fn(a.store.current)
}

func (a storeAccessor) now() time.Time {
	return a.store.clock().UTC()
}

// txAccessor is confined to the goroutine running the unit of work.
type txAccessor struct {
	st    *state
	clock func() time.Time
}

func (a *txAccessor) read(fn func(st *state) error) error {
	return fn(a.st)
}

func (a *txAccessor) write(fn func(st *state) error) error {
	return fn(a.st)
}

func (a *txAccessor) now() time.Time {
	return a.clock().UTC()
}
