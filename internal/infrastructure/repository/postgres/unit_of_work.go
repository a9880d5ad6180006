package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/club-stats/internal/domain/uow"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
	"github.com/riskibarqy/club-stats/internal/platform/resilience"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

// NewRepositories binds every repository to the same executor, either the
// pool or an open transaction.
func NewRepositories(db sqlx.ExtContext) uow.Repositories {
	return uow.Repositories{
		Players:     NewPlayerRepository(db),
		Tournaments: NewTournamentRepository(db),
		Matches:     NewMatchRepository(db),
		Appearances: NewAppearanceRepository(db),
	}
}

type UnitOfWork struct {
	db      *sqlx.DB
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

type UnitOfWorkOption func(*UnitOfWork)

// WithCircuitBreaker fails transactions fast while the database keeps refusing
// to begin or commit. Errors returned by the work function never trip it.
func WithCircuitBreaker(cfg resilience.CircuitBreakerConfig, logger *logging.Logger) UnitOfWorkOption {
	return func(u *UnitOfWork) {
		if !cfg.Enabled {
			return
		}
		if logger == nil {
			logger = logging.Default()
		}
		breaker := resilience.NewCircuitBreaker(cfg)
		breaker.OnStateChange(func(from, to resilience.CircuitState) {
			logger.Warn("database circuit state changed", "from", string(from), "to", string(to))
		})
		u.breaker = breaker
		u.logger = logger
	}
}

func NewUnitOfWork(db *sqlx.DB, opts ...UnitOfWorkOption) *UnitOfWork {
	u := &UnitOfWork{db: db}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Do runs fn inside one transaction. Any error from fn rolls everything back
// and is returned unchanged.
func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos uow.Repositories) error) error {
	if u.breaker != nil {
		if err := u.breaker.Allow(); err != nil {
			u.logger.WarnContext(ctx, "database circuit is open, skipping transaction",
				"state", string(u.breaker.State()),
			)
			return fmt.Errorf("%w: database is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	tx, err := u.db.BeginTxx(ctx, nil)
	if err != nil {
		u.recordFailure()
		return fmt.Errorf("%w: begin tx: %v", usecase.ErrDependencyUnavailable, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(ctx, NewRepositories(tx)); err != nil {
		u.recordSuccess()
		return err
	}

	if err := tx.Commit(); err != nil {
		u.recordFailure()
		return fmt.Errorf("commit tx: %w", err)
	}
	u.recordSuccess()
	return nil
}

func (u *UnitOfWork) recordFailure() {
	if u.breaker != nil {
		u.breaker.RecordFailure()
	}
}

func (u *UnitOfWork) recordSuccess() {
	if u.breaker != nil {
		u.breaker.RecordSuccess()
	}
}
