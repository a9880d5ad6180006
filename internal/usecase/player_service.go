package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

// CreatePlayerInput is the admin roster form.
type CreatePlayerInput struct {
	FullName string
	Nickname string
	Dorsal   *int
	Position string
	JoinedAt *time.Time
	IsActive *bool
	PhotoURL string
}

type PlayerService struct {
	playerRepo player.Repository
	logger     *logging.Logger
	now        func() time.Time
}

func NewPlayerService(playerRepo player.Repository, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context, activeOnly bool) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	players, err := s.playerRepo.List(ctx, player.ListFilter{ActiveOnly: activeOnly})
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	if playerID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id must be > 0", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player id=%d: %w", playerID, err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player id=%d", ErrNotFound, playerID)
	}
	return p, nil
}

// CreatePlayer registers a player. Nicknames are import lookup keys and must
// stay unique.
func (s *PlayerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	p := player.Player{
		FullName: strings.TrimSpace(input.FullName),
		Nickname: strings.TrimSpace(input.Nickname),
		Dorsal:   input.Dorsal,
		Position: player.PositionMidfielder,
		JoinedAt: match.NormalizeDate(s.now()),
		IsActive: true,
		PhotoURL: strings.TrimSpace(input.PhotoURL),
	}
	if raw := strings.TrimSpace(input.Position); raw != "" {
		pos, ok := player.ParsePosition(raw)
		if !ok {
			return player.Player{}, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, raw)
		}
		p.Position = pos
	}
	if input.JoinedAt != nil {
		p.JoinedAt = match.NormalizeDate(*input.JoinedAt)
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if p.Nickname != "" {
		_, taken, err := s.playerRepo.GetByNickname(ctx, p.Nickname)
		if err != nil {
			return player.Player{}, fmt.Errorf("get player nickname=%q: %w", p.Nickname, err)
		}
		if taken {
			return player.Player{}, fmt.Errorf("%w: nickname %q is already used", ErrInvalidInput, p.Nickname)
		}
	}

	created, err := s.playerRepo.Create(ctx, p)
	if err != nil {
		return player.Player{}, storeError("create player", err)
	}

	s.logger.InfoContext(ctx, "player created", "player_id", created.ID, "nickname", created.Nickname)
	return created, nil
}
