package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/club-stats/internal/domain/tournament"
)

type TournamentService struct {
	tournamentRepo tournament.Repository
}

func NewTournamentService(tournamentRepo tournament.Repository) *TournamentService {
	return &TournamentService{tournamentRepo: tournamentRepo}
}

func (s *TournamentService) ListTournaments(ctx context.Context) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ListTournaments")
	defer span.End()

	items, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	return items, nil
}
