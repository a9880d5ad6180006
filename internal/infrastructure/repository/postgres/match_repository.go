package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/club-stats/internal/domain/match"
	qb "github.com/riskibarqy/club-stats/internal/platform/querybuilder"
)

type MatchRepository struct {
	db sqlx.ExtContext
}

func NewMatchRepository(db sqlx.ExtContext) *MatchRepository {
	return &MatchRepository{db: db}
}

// List orders by date, newest first.
func (r *MatchRepository) List(ctx context.Context, filter match.ListFilter) ([]match.Match, error) {
	builder := qb.Select(matchSelectColumns...).From("matches").
		OrderBy("match_date DESC", "id DESC")
	if filter.TournamentID != nil {
		builder = builder.Where(qb.Eq("tournament_id", *filter.TournamentID))
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	return r.first(ctx, qb.Eq("id", id))
}

func (r *MatchRepository) GetByDateAndOpponent(ctx context.Context, date time.Time, opponent string) (match.Match, bool, error) {
	return r.first(ctx,
		qb.Eq("match_date", match.NormalizeDate(date)),
		qb.Eq("opponent", match.NormalizeOpponent(opponent)),
	)
}

func (r *MatchRepository) first(ctx context.Context, conditions ...qb.Condition) (match.Match, bool, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(conditions...).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (match.Match, error) {
	insertModel := matchInsertModel{
		MatchDate:    match.NormalizeDate(m.Date),
		Opponent:     match.NormalizeOpponent(m.Opponent),
		OurScore:     m.OurScore,
		TheirScore:   m.TheirScore,
		Result:       string(m.Result),
		Location:     m.Location,
		Notes:        m.Notes,
		TournamentID: nullInt64(m.TournamentID),
	}
	query, args, err := qb.InsertModel("matches", insertModel, matchSelectColumns...)
	if err != nil {
		return match.Match{}, fmt.Errorf("build create match query: %w", err)
	}

	var row matchTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("create match opponent=%q: %w", insertModel.Opponent, mapWriteError(err))
	}
	return row.toDomain(), nil
}

// DeleteAll removes every match; appearances go with them through the cascade.
func (r *MatchRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.db, "matches")
}
