package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/club-stats/internal/domain/appearance"
	"github.com/riskibarqy/club-stats/internal/domain/importing"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/tournament"
	"github.com/riskibarqy/club-stats/internal/domain/uow"
	idgen "github.com/riskibarqy/club-stats/internal/platform/id"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

const defaultImportParseWorkers = 4

// ImportInput carries the three raw row batches of one import run.
type ImportInput struct {
	Players     []importing.Row
	Matches     []importing.Row
	Appearances []importing.Row
}

type ImportService struct {
	uow     uow.UnitOfWork
	idGen   idgen.Generator
	logger  *logging.Logger
	workers int
	now     func() time.Time
}

func NewImportService(unitOfWork uow.UnitOfWork, idGen idgen.Generator, workers int, logger *logging.Logger) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultImportParseWorkers
	}

	return &ImportService{
		uow:     unitOfWork,
		idGen:   idGen,
		logger:  logger,
		workers: workers,
		now:     time.Now,
	}
}

type parsedBatch struct {
	players     []importing.PlayerRecord
	matches     []importing.MatchRecord
	appearances []importing.AppearanceRecord
}

// Import reconciles players, then matches, then appearances inside a single
// unit of work. Any failure discards the whole run.
func (s *ImportService) Import(ctx context.Context, input ImportInput) (summary importing.Summary, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.Import",
		attribute.Int("import.players", len(input.Players)),
		attribute.Int("import.matches", len(input.Matches)),
		attribute.Int("import.appearances", len(input.Appearances)),
	)
	defer func() { finishSpan(span, err) }()

	runID, err := s.idGen.NewID()
	if err != nil {
		return importing.Summary{}, fmt.Errorf("generate import run id: %w", err)
	}

	batch, err := s.parse(ctx, input)
	if err != nil {
		s.logger.WarnContext(ctx, "import rejected while parsing rows", "run_id", runID, "error", err)
		return importing.Summary{}, err
	}

	err = s.uow.Do(ctx, func(ctx context.Context, repos uow.Repositories) error {
		summary = importing.Summary{RunID: runID}
		if err := s.reconcilePlayers(ctx, repos.Players, batch.players, &summary); err != nil {
			return err
		}
		if err := reconcileMatches(ctx, repos, batch.matches, &summary); err != nil {
			return err
		}
		return reconcileAppearances(ctx, repos, batch.appearances, &summary)
	})
	if err != nil {
		s.logger.WarnContext(ctx, "import rolled back", "run_id", runID, "error", err)
		return importing.Summary{}, err
	}

	s.logger.InfoContext(ctx, "import committed",
		"run_id", runID,
		"players_created", summary.PlayersCreated,
		"players_updated", summary.PlayersUpdated,
		"tournaments_created", summary.TournamentsCreated,
		"matches_created", summary.MatchesCreated,
		"matches_skipped", summary.MatchesSkipped,
		"appearances_created", summary.AppearancesCreated,
	)
	return summary, nil
}

func (s *ImportService) parse(ctx context.Context, input ImportInput) (parsedBatch, error) {
	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return parsedBatch{}, fmt.Errorf("create import parse pool: %w", err)
	}
	defer pool.Release()

	var batch parsedBatch
	if batch.players, err = parseRows(ctx, pool, input.Players, importing.ParsePlayerRow); err != nil {
		return parsedBatch{}, importError(err)
	}
	if batch.matches, err = parseRows(ctx, pool, input.Matches, importing.ParseMatchRow); err != nil {
		return parsedBatch{}, importError(err)
	}
	if batch.appearances, err = parseRows(ctx, pool, input.Appearances, importing.ParseAppearanceRow); err != nil {
		return parsedBatch{}, importError(err)
	}
	return batch, nil
}

// parseRows coerces rows on the pool. When several rows fail, the error of
// the earliest row is returned so the outcome does not depend on scheduling.
func parseRows[T any](ctx context.Context, pool *ants.Pool, rows []importing.Row, parse func(int, importing.Row) (T, error)) ([]T, error) {
	out := make([]T, len(rows))
	errs := make([]error, len(rows))

	var (
		workers   sync.WaitGroup
		submitErr error
	)
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			submitErr = err
			break
		}
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			out[i], errs[i] = parse(i+1, row)
		}); err != nil {
			workers.Done()
			submitErr = fmt.Errorf("submit row to parse pool: %w", err)
			break
		}
	}
	workers.Wait()

	if submitErr != nil {
		return nil, submitErr
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func importError(err error) error {
	switch {
	case crerr.Is(err, importing.ErrParse):
		return fmt.Errorf("%w: %v", ErrParse, err)
	case crerr.Is(err, importing.ErrInvalidRow):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return err
	}
}

func (s *ImportService) reconcilePlayers(ctx context.Context, repo player.Repository, records []importing.PlayerRecord, summary *importing.Summary) error {
	for _, rec := range records {
		if rec.Nickname != "" {
			existing, found, err := repo.GetByNickname(ctx, rec.Nickname)
			if err != nil {
				return fmt.Errorf("players row %d: get player nickname=%q: %w", rec.Index, rec.Nickname, err)
			}
			if found {
				merged := mergePlayer(existing, rec)
				if err := merged.Validate(); err != nil {
					return fmt.Errorf("%w: players row %d: %v", ErrInvalidInput, rec.Index, err)
				}
				if _, err := repo.Update(ctx, merged); err != nil {
					return storeError(fmt.Sprintf("players row %d: update player", rec.Index), err)
				}
				summary.PlayersUpdated++
				continue
			}
		}

		created := newPlayer(rec, s.now().UTC())
		if err := created.Validate(); err != nil {
			return fmt.Errorf("%w: players row %d: %v", ErrInvalidInput, rec.Index, err)
		}
		if _, err := repo.Create(ctx, created); err != nil {
			return storeError(fmt.Sprintf("players row %d: create player", rec.Index), err)
		}
		summary.PlayersCreated++
	}
	return nil
}

// mergePlayer overwrites a stored field only when the incoming cell was present.
func mergePlayer(existing player.Player, rec importing.PlayerRecord) player.Player {
	merged := existing
	if rec.FullName != "" {
		merged.FullName = rec.FullName
	}
	if rec.Dorsal != nil {
		merged.Dorsal = rec.Dorsal
	}
	if rec.Position != nil {
		merged.Position = *rec.Position
	}
	if rec.JoinedAt != nil {
		merged.JoinedAt = *rec.JoinedAt
	}
	if rec.IsActive != nil {
		merged.IsActive = *rec.IsActive
	}
	if rec.PhotoURL != "" {
		merged.PhotoURL = rec.PhotoURL
	}
	return merged
}

func newPlayer(rec importing.PlayerRecord, now time.Time) player.Player {
	p := player.Player{
		FullName: rec.FullName,
		Nickname: rec.Nickname,
		Dorsal:   rec.Dorsal,
		Position: player.PositionMidfielder,
		JoinedAt: match.NormalizeDate(now),
		IsActive: true,
		PhotoURL: rec.PhotoURL,
	}
	if rec.Position != nil {
		p.Position = *rec.Position
	}
	if rec.JoinedAt != nil {
		p.JoinedAt = *rec.JoinedAt
	}
	if rec.IsActive != nil {
		p.IsActive = *rec.IsActive
	}
	return p
}

func reconcileMatches(ctx context.Context, repos uow.Repositories, records []importing.MatchRecord, summary *importing.Summary) error {
	for _, rec := range records {
		var tournamentID *int64
		if rec.Tournament != "" {
			t, found, err := repos.Tournaments.GetByNameAndSeason(ctx, rec.Tournament, rec.Season)
			if err != nil {
				return fmt.Errorf("matches row %d: get tournament: %w", rec.Index, err)
			}
			if !found {
				t, err = repos.Tournaments.Create(ctx, tournament.Tournament{
					Name:      rec.Tournament,
					Season:    rec.Season,
					Organizer: rec.Organizer,
				})
				if err != nil {
					return storeError(fmt.Sprintf("matches row %d: create tournament", rec.Index), err)
				}
				summary.TournamentsCreated++
			}
			tournamentID = &t.ID
		}

		_, found, err := repos.Matches.GetByDateAndOpponent(ctx, rec.Date, rec.Opponent)
		if err != nil {
			return fmt.Errorf("matches row %d: get match: %w", rec.Index, err)
		}
		if found {
			summary.MatchesSkipped++
			continue
		}

		m := match.Match{
			Date:         rec.Date,
			Opponent:     match.NormalizeOpponent(rec.Opponent),
			OurScore:     rec.OurScore,
			TheirScore:   rec.TheirScore,
			Result:       match.DeriveResult(rec.OurScore, rec.TheirScore),
			Location:     rec.Location,
			Notes:        rec.Notes,
			TournamentID: tournamentID,
		}
		if _, err := repos.Matches.Create(ctx, m); err != nil {
			return storeError(fmt.Sprintf("matches row %d: create match", rec.Index), err)
		}
		summary.MatchesCreated++
	}
	return nil
}

func reconcileAppearances(ctx context.Context, repos uow.Repositories, records []importing.AppearanceRecord, summary *importing.Summary) error {
	for _, rec := range records {
		m, found, err := repos.Matches.GetByDateAndOpponent(ctx, rec.MatchDate, rec.Opponent)
		if err != nil {
			return fmt.Errorf("appearances row %d: get match: %w", rec.Index, err)
		}
		if !found {
			return fmt.Errorf("%w: appearances row %d: match on %s against %q",
				ErrNotFound, rec.Index, rec.MatchDate.Format(time.DateOnly), strings.TrimSpace(rec.Opponent))
		}

		p, found, err := repos.Players.GetByNickname(ctx, rec.PlayerNickname)
		if err != nil {
			return fmt.Errorf("appearances row %d: get player: %w", rec.Index, err)
		}
		if !found {
			return fmt.Errorf("%w: appearances row %d: player nickname %q", ErrNotFound, rec.Index, rec.PlayerNickname)
		}

		a := appearance.Appearance{
			MatchID:   m.ID,
			PlayerID:  p.ID,
			IsStarter: rec.IsStarter,
			Minutes:   rec.Minutes,
			Goals:     rec.Goals,
			Assists:   rec.Assists,
			Yellow:    rec.Yellow,
			Red:       rec.Red,
			MOTM:      rec.MOTM,
		}
		if _, err := repos.Appearances.Create(ctx, a); err != nil {
			return storeError(fmt.Sprintf("appearances row %d: create appearance", rec.Index), err)
		}
		summary.AppearancesCreated++
	}
	return nil
}
