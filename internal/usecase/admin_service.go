package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/club-stats/internal/domain/uow"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

// ResetSummary counts the rows removed by a reset.
type ResetSummary struct {
	Appearances int64
	Matches     int64
	Tournaments int64
	Players     int64
}

type AdminService struct {
	uow    uow.UnitOfWork
	logger *logging.Logger
}

func NewAdminService(unitOfWork uow.UnitOfWork, logger *logging.Logger) *AdminService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminService{uow: unitOfWork, logger: logger}
}

// Reset hard-deletes every record in dependency order inside one unit of work.
func (s *AdminService) Reset(ctx context.Context) (summary ResetSummary, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.Reset")
	defer func() { finishSpan(span, err) }()

	err = s.uow.Do(ctx, func(ctx context.Context, repos uow.Repositories) error {
		var err error
		if summary.Appearances, err = repos.Appearances.DeleteAll(ctx); err != nil {
			return fmt.Errorf("delete appearances: %w", err)
		}
		if summary.Matches, err = repos.Matches.DeleteAll(ctx); err != nil {
			return fmt.Errorf("delete matches: %w", err)
		}
		if summary.Tournaments, err = repos.Tournaments.DeleteAll(ctx); err != nil {
			return fmt.Errorf("delete tournaments: %w", err)
		}
		if summary.Players, err = repos.Players.DeleteAll(ctx); err != nil {
			return fmt.Errorf("delete players: %w", err)
		}
		return nil
	})
	if err != nil {
		return ResetSummary{}, err
	}

	s.logger.WarnContext(ctx, "club data reset",
		"appearances", summary.Appearances,
		"matches", summary.Matches,
		"tournaments", summary.Tournaments,
		"players", summary.Players,
	)
	return summary, nil
}
