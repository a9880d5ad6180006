package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/club-stats/internal/config"
	"github.com/riskibarqy/club-stats/internal/domain/uow"
	"github.com/riskibarqy/club-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/club-stats/internal/infrastructure/repository/seed"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
	"github.com/riskibarqy/club-stats/internal/platform/resilience"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

const dbPingTimeout = 5 * time.Second

// store is the repository set and unit of work backing the services.
type store struct {
	unit  uow.UnitOfWork
	repos uow.Repositories
	close func() error
}

func openStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (store, error) {
	var (
		s   store
		err error
	)
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		mem := memory.NewStore()
		s = store{unit: mem, repos: mem.Repositories(), close: func() error { return nil }}
	case config.StoreDriverPostgres:
		s, err = openPostgres(ctx, cfg, logger)
		if err != nil {
			return store{}, err
		}
	default:
		return store{}, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}

	if cfg.StoreSeedDemo {
		if err := seed.Demo(ctx, s.unit); err != nil {
			_ = s.close()
			return store{}, fmt.Errorf("seed demo data: %w", err)
		}
		logger.Info("demo data seeded", "store", cfg.StoreDriver)
	}

	if cfg.StoreDriver == config.StoreDriverPostgres {
		logger.Info("store ready", "store", cfg.StoreDriver, "db", redactDBURL(cfg.DBURL))
	} else {
		logger.Info("store ready", "store", cfg.StoreDriver)
	}
	return s, nil
}

func openPostgres(ctx context.Context, cfg config.Config, logger *logging.Logger) (store, error) {
	db, err := otelsqlx.Open("postgres", postgresConnString(cfg),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(traceQuery),
	)
	if err != nil {
		return store{}, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return store{}, fmt.Errorf("%w: ping postgres: %v", usecase.ErrDependencyUnavailable, err)
	}

	breaker := resilience.CircuitBreakerConfig{
		Enabled:          cfg.DBCircuitEnabled,
		FailureThreshold: cfg.DBCircuitFailureCount,
		OpenTimeout:      cfg.DBCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
	}
	return postgresStore(db, postgres.WithCircuitBreaker(breaker, logger.Named("postgres"))), nil
}

func postgresStore(db *sqlx.DB, opts ...postgres.UnitOfWorkOption) store {
	return store{
		unit:  postgres.NewUnitOfWork(db, opts...),
		repos: postgres.NewRepositories(db),
		close: db.Close,
	}
}
