package uow

import (
	"context"
	"errors"

	"github.com/riskibarqy/club-stats/internal/domain/appearance"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/tournament"
)

var (
	// ErrReferenceNotFound is returned by stores when a write points at a
	// match or player that does not exist.
	ErrReferenceNotFound = errors.New("referenced record not found")
	// ErrConflict is returned when a write collides with a unique key.
	ErrConflict = errors.New("conflicting record")
)

// Repositories is the set of repositories bound to one transaction.
type Repositories struct {
	Players     player.Repository
	Tournaments tournament.Repository
	Matches     match.Repository
	Appearances appearance.Repository
}

// UnitOfWork runs fn inside a single transaction. A non-nil error from fn
// (or a failed commit) discards every write made through the repositories.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
