package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/club-stats/internal/domain/tournament"
	qb "github.com/riskibarqy/club-stats/internal/platform/querybuilder"
)

type TournamentRepository struct {
	db sqlx.ExtContext
}

func NewTournamentRepository(db sqlx.ExtContext) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	query, args, err := qb.Select(tournamentSelectColumns...).From("tournaments").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select tournaments query: %w", err)
	}

	var rows []tournamentTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tournaments: %w", err)
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, id int64) (tournament.Tournament, bool, error) {
	return r.first(ctx, qb.Eq("id", id))
}

// GetByName returns the oldest tournament with that name, whatever its season.
func (r *TournamentRepository) GetByName(ctx context.Context, name string) (tournament.Tournament, bool, error) {
	return r.first(ctx, qb.Eq("name", name))
}

func (r *TournamentRepository) GetByNameAndSeason(ctx context.Context, name, season string) (tournament.Tournament, bool, error) {
	return r.first(ctx, qb.Eq("name", name), qb.Eq("season", season))
}

func (r *TournamentRepository) first(ctx context.Context, conditions ...qb.Condition) (tournament.Tournament, bool, error) {
	query, args, err := qb.Select(tournamentSelectColumns...).From("tournaments").
		Where(conditions...).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build get tournament query: %w", err)
	}

	var row tournamentTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("get tournament: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *TournamentRepository) Create(ctx context.Context, t tournament.Tournament) (tournament.Tournament, error) {
	insertModel := tournamentInsertModel{
		Name:      t.Name,
		Season:    t.Season,
		Organizer: t.Organizer,
	}
	query, args, err := qb.InsertModel("tournaments", insertModel, tournamentSelectColumns...)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("build create tournament query: %w", err)
	}

	var row tournamentTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		return tournament.Tournament{}, fmt.Errorf("create tournament name=%q season=%q: %w", t.Name, t.Season, mapWriteError(err))
	}
	return row.toDomain(), nil
}

// DeleteAll removes every tournament; matches keep their rows with the
// reference cleared.
func (r *TournamentRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.db, "tournaments")
}
