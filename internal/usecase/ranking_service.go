package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/sourcegraph/conc"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/riskibarqy/club-stats/internal/domain/appearance"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/ranking"
	"github.com/riskibarqy/club-stats/internal/domain/uow"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

const (
	maxRankingLimit      = 100
	recentAppearancesCap = 5
	snapshotFlightKey    = "ranking-snapshot"
)

// PlayerStats is the profile block of one player.
type PlayerStats struct {
	Player  player.Player
	Summary ranking.PlayerSummary
	Recent  []appearance.Detailed
}

// RankingService serves read-only leaderboards computed from a fresh
// snapshot per request.
type RankingService struct {
	repos        uow.Repositories
	defaultLimit int
	logger       *logging.Logger
	flight       singleflight.Group
}

func NewRankingService(repos uow.Repositories, defaultLimit int, logger *logging.Logger) *RankingService {
	if logger == nil {
		logger = logging.Default()
	}
	if defaultLimit <= 0 {
		defaultLimit = ranking.DefaultLimit
	}

	return &RankingService{
		repos:        repos,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

func (s *RankingService) Rankings(ctx context.Context, rankingType string, limit int) (entries []ranking.Entry, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Rankings",
		attribute.String("ranking.type", rankingType),
	)
	defer func() { finishSpan(span, err) }()

	t, ok := ranking.ParseType(rankingType)
	if !ok {
		return nil, fmt.Errorf("%w: unknown ranking type %q", ErrInvalidInput, rankingType)
	}
	limit, err = s.resolveLimit(limit)
	if err != nil {
		return nil, err
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	entries, err = ranking.Compute(t, snap, limit)
	if err != nil {
		return nil, fmt.Errorf("compute %s ranking: %w", t, err)
	}
	return entries, nil
}

// AllRankings computes every leaderboard from one shared snapshot.
func (s *RankingService) AllRankings(ctx context.Context, limit int) (boards map[ranking.Type][]ranking.Entry, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.AllRankings")
	defer func() { finishSpan(span, err) }()

	limit, err = s.resolveLimit(limit)
	if err != nil {
		return nil, err
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	results := make([][]ranking.Entry, len(ranking.AllTypes))
	errs := make([]error, len(ranking.AllTypes))

	var wg conc.WaitGroup
	for i, t := range ranking.AllTypes {
		wg.Go(func() {
			results[i], errs[i] = ranking.Compute(t, snap, limit)
		})
	}
	wg.Wait()

	boards = make(map[ranking.Type][]ranking.Entry, len(ranking.AllTypes))
	for i, t := range ranking.AllTypes {
		if errs[i] != nil {
			return nil, fmt.Errorf("compute %s ranking: %w", t, errs[i])
		}
		boards[t] = results[i]
	}
	return boards, nil
}

func (s *RankingService) PlayerStats(ctx context.Context, playerID int64) (PlayerStats, error) {
	if playerID <= 0 {
		return PlayerStats{}, fmt.Errorf("%w: player id must be > 0", ErrInvalidInput)
	}

	p, exists, err := s.repos.Players.GetByID(ctx, playerID)
	if err != nil {
		return PlayerStats{}, fmt.Errorf("get player id=%d: %w", playerID, err)
	}
	if !exists {
		return PlayerStats{}, fmt.Errorf("%w: player id=%d", ErrNotFound, playerID)
	}

	detailed, err := s.repos.Appearances.ListDetailedByPlayer(ctx, playerID)
	if err != nil {
		return PlayerStats{}, fmt.Errorf("list appearances player id=%d: %w", playerID, err)
	}

	apps := make([]appearance.Appearance, 0, len(detailed))
	for _, d := range detailed {
		apps = append(apps, d.Appearance)
	}

	recent := detailed
	if len(recent) > recentAppearancesCap {
		recent = recent[:recentAppearancesCap]
	}

	return PlayerStats{
		Player:  p,
		Summary: ranking.SummarizePlayer(apps),
		Recent:  recent,
	}, nil
}

func (s *RankingService) ClubSummary(ctx context.Context) (ranking.ClubSummary, error) {
	matches, err := s.repos.Matches.List(ctx, match.ListFilter{})
	if err != nil {
		return ranking.ClubSummary{}, fmt.Errorf("list matches: %w", err)
	}
	return ranking.SummarizeClub(matches), nil
}

func (s *RankingService) resolveLimit(limit int) (int, error) {
	switch {
	case limit < 0:
		return 0, fmt.Errorf("%w: limit must be >= 0", ErrInvalidInput)
	case limit == 0:
		return s.defaultLimit, nil
	case limit > maxRankingLimit:
		return 0, fmt.Errorf("%w: limit must be <= %d", ErrInvalidInput, maxRankingLimit)
	default:
		return limit, nil
	}
}

// loadSnapshot reads players, matches and appearances concurrently. Callers
// arriving while a load is in flight share its result; nothing is retained
// afterwards.
func (s *RankingService) loadSnapshot(ctx context.Context) (ranking.Snapshot, error) {
	v, err, shared := s.flight.Do(snapshotFlightKey, func() (any, error) {
		return s.readSnapshot(context.WithoutCancel(ctx))
	})
	if err != nil {
		return ranking.Snapshot{}, err
	}
	if shared {
		s.logger.DebugContext(ctx, "ranking snapshot shared with concurrent request")
	}
	return v.(ranking.Snapshot), nil
}

func (s *RankingService) readSnapshot(ctx context.Context) (ranking.Snapshot, error) {
	var snap ranking.Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		players, err := s.repos.Players.List(gctx, player.ListFilter{})
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
		snap.Players = players
		return nil
	})
	g.Go(func() error {
		matches, err := s.repos.Matches.List(gctx, match.ListFilter{})
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		snap.Matches = matches
		return nil
	})
	g.Go(func() error {
		apps, err := s.repos.Appearances.ListDetailed(gctx)
		if err != nil {
			return fmt.Errorf("list appearances: %w", err)
		}
		snap.Appearances = apps
		return nil
	})
	if err := g.Wait(); err != nil {
		return ranking.Snapshot{}, err
	}
	return snap, nil
}
