package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/club-stats/internal/domain/appearance"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/ranking"
	"github.com/riskibarqy/club-stats/internal/domain/tournament"
	"github.com/riskibarqy/club-stats/internal/domain/uow"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

// CreateMatchInput is a match draft plus one stat entry per participating player.
// Scores are pointers so a missing score can be told apart from zero.
type CreateMatchInput struct {
	Date           time.Time
	Opponent       string
	OurScore       *int
	TheirScore     *int
	TournamentID   *int64
	TournamentName string
	Location       string
	Notes          string
	Entries        []PlayerStatEntry
}

type PlayerStatEntry struct {
	PlayerID int64
	Goals    int
	Assists  int
	Yellow   bool
	Red      bool
	MOTM     bool
	// IsStarter falls back to Played when nil.
	IsStarter *bool
	Played    bool
	Minutes   *int
}

// MatchDetail is a match with its appearances and derived stat block.
type MatchDetail struct {
	Match       match.Match
	Tournament  *tournament.Tournament
	Appearances []appearance.Appearance
	Summary     ranking.MatchSummary
}

type MatchService struct {
	uow    uow.UnitOfWork
	repos  uow.Repositories
	logger *logging.Logger
}

func NewMatchService(unitOfWork uow.UnitOfWork, repos uow.Repositories, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		uow:    unitOfWork,
		repos:  repos,
		logger: logger,
	}
}

// CreateMatch validates the draft, checks that player goals add up to the
// club score, then persists the match and its appearances atomically.
func (s *MatchService) CreateMatch(ctx context.Context, input CreateMatchInput) (matchID int64, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch",
		attribute.Int("match.entries", len(input.Entries)),
	)
	defer func() { finishSpan(span, err) }()

	draft, err := s.validateDraft(input)
	if err != nil {
		return 0, err
	}

	err = s.uow.Do(ctx, func(ctx context.Context, repos uow.Repositories) error {
		tournamentID, err := resolveTournament(ctx, repos.Tournaments, input.TournamentID, input.TournamentName)
		if err != nil {
			return err
		}
		draft.TournamentID = tournamentID

		created, err := repos.Matches.Create(ctx, draft)
		if err != nil {
			return storeError("create match", err)
		}

		for i, entry := range input.Entries {
			if _, exists, err := repos.Players.GetByID(ctx, entry.PlayerID); err != nil {
				return fmt.Errorf("get player id=%d: %w", entry.PlayerID, err)
			} else if !exists {
				return fmt.Errorf("%w: player id=%d (entry %d)", ErrNotFound, entry.PlayerID, i+1)
			}

			if _, err := repos.Appearances.Create(ctx, entryAppearance(created.ID, entry)); err != nil {
				return storeError(fmt.Sprintf("create appearance player id=%d", entry.PlayerID), err)
			}
		}

		matchID = created.ID
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "match creation rejected",
			"opponent", draft.Opponent,
			"error", err,
		)
		return 0, err
	}

	s.logger.InfoContext(ctx, "match created",
		"match_id", matchID,
		"opponent", draft.Opponent,
		"result", string(draft.Result),
		"appearances", len(input.Entries),
	)
	return matchID, nil
}

func (s *MatchService) validateDraft(input CreateMatchInput) (match.Match, error) {
	opponent := match.NormalizeOpponent(input.Opponent)
	switch {
	case input.Date.IsZero():
		return match.Match{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	case opponent == "":
		return match.Match{}, fmt.Errorf("%w: opponent is required", ErrInvalidInput)
	case input.OurScore == nil:
		return match.Match{}, fmt.Errorf("%w: ourScore is required", ErrInvalidInput)
	case input.TheirScore == nil:
		return match.Match{}, fmt.Errorf("%w: theirScore is required", ErrInvalidInput)
	}
	if input.TournamentID != nil && *input.TournamentID <= 0 {
		return match.Match{}, fmt.Errorf("%w: tournamentId must be > 0", ErrInvalidInput)
	}

	goals := 0
	for i, entry := range input.Entries {
		if err := entryAppearance(1, entry).Validate(); err != nil {
			return match.Match{}, fmt.Errorf("%w: entry %d: %v", ErrInvalidInput, i+1, err)
		}
		goals += entry.Goals
	}

	m := match.Match{
		Date:       match.NormalizeDate(input.Date),
		Opponent:   opponent,
		OurScore:   *input.OurScore,
		TheirScore: *input.TheirScore,
		Result:     match.DeriveResult(*input.OurScore, *input.TheirScore),
		Location:   strings.TrimSpace(input.Location),
		Notes:      strings.TrimSpace(input.Notes),
	}
	if err := m.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if goals != m.OurScore {
		return match.Match{}, &ConsistencyError{Expected: m.OurScore, Actual: goals}
	}
	return m, nil
}

func entryAppearance(matchID int64, entry PlayerStatEntry) appearance.Appearance {
	isStarter := entry.Played
	if entry.IsStarter != nil {
		isStarter = *entry.IsStarter
	}
	return appearance.Appearance{
		MatchID:   matchID,
		PlayerID:  entry.PlayerID,
		IsStarter: isStarter,
		Minutes:   entry.Minutes,
		Goals:     entry.Goals,
		Assists:   entry.Assists,
		Yellow:    entry.Yellow,
		Red:       entry.Red,
		MOTM:      entry.MOTM,
	}
}

// resolveTournament looks up an explicit id (never downgraded to a name
// lookup), else finds or creates by name, else returns nil.
func resolveTournament(ctx context.Context, repo tournament.Repository, id *int64, name string) (*int64, error) {
	if id != nil {
		t, exists, err := repo.GetByID(ctx, *id)
		if err != nil {
			return nil, fmt.Errorf("get tournament id=%d: %w", *id, err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: tournament id=%d", ErrNotFound, *id)
		}
		return &t.ID, nil
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	t, exists, err := repo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get tournament name=%q: %w", name, err)
	}
	if !exists {
		t, err = repo.Create(ctx, tournament.Tournament{Name: name})
		if err != nil {
			return nil, storeError(fmt.Sprintf("create tournament name=%q", name), err)
		}
	}
	return &t.ID, nil
}

func (s *MatchService) ListMatches(ctx context.Context, filter match.ListFilter) ([]match.Match, error) {
	if filter.TournamentID != nil && *filter.TournamentID <= 0 {
		return nil, fmt.Errorf("%w: tournament id must be > 0", ErrInvalidInput)
	}
	if filter.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must be >= 0", ErrInvalidInput)
	}

	matches, err := s.repos.Matches.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID int64) (MatchDetail, error) {
	if matchID <= 0 {
		return MatchDetail{}, fmt.Errorf("%w: match id must be > 0", ErrInvalidInput)
	}

	m, exists, err := s.repos.Matches.GetByID(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("get match id=%d: %w", matchID, err)
	}
	if !exists {
		return MatchDetail{}, fmt.Errorf("%w: match id=%d", ErrNotFound, matchID)
	}

	apps, err := s.repos.Appearances.ListByMatch(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("list appearances match id=%d: %w", matchID, err)
	}

	detail := MatchDetail{
		Match:       m,
		Appearances: apps,
		Summary:     ranking.SummarizeMatch(m, apps),
	}
	if m.TournamentID != nil {
		t, exists, err := s.repos.Tournaments.GetByID(ctx, *m.TournamentID)
		if err != nil {
			return MatchDetail{}, fmt.Errorf("get tournament id=%d: %w", *m.TournamentID, err)
		}
		if exists {
			detail.Tournament = &t
		}
	}
	return detail, nil
}
