package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/club-stats/internal/domain/appearance"
	qb "github.com/riskibarqy/club-stats/internal/platform/querybuilder"
)

const appearanceWithMatchTable = "appearances a JOIN matches m ON m.id = a.match_id"

type AppearanceRepository struct {
	db sqlx.ExtContext
}

func NewAppearanceRepository(db sqlx.ExtContext) *AppearanceRepository {
	return &AppearanceRepository{db: db}
}

func (r *AppearanceRepository) Create(ctx context.Context, a appearance.Appearance) (appearance.Appearance, error) {
	insertModel := appearanceInsertModel{
		MatchID:   a.MatchID,
		PlayerID:  a.PlayerID,
		IsStarter: a.IsStarter,
		Minutes:   nullInt(a.Minutes),
		Goals:     a.Goals,
		Assists:   a.Assists,
		Yellow:    a.Yellow,
		Red:       a.Red,
		MOTM:      a.MOTM,
	}
	query, args, err := qb.InsertModel("appearances", insertModel, "id")
	if err != nil {
		return appearance.Appearance{}, fmt.Errorf("build create appearance query: %w", err)
	}

	if err := sqlx.GetContext(ctx, r.db, &a.ID, query, args...); err != nil {
		return appearance.Appearance{}, fmt.Errorf("create appearance match id=%d player id=%d: %w", a.MatchID, a.PlayerID, mapWriteError(err))
	}
	return a, nil
}

func (r *AppearanceRepository) ListByMatch(ctx context.Context, matchID int64) ([]appearance.Appearance, error) {
	query, args, err := qb.Select(appearanceSelectColumns...).From("appearances").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select appearances by match query: %w", err)
	}

	var rows []appearanceTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select appearances by match id=%d: %w", matchID, err)
	}

	out := make([]appearance.Appearance, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *AppearanceRepository) ListDetailed(ctx context.Context) ([]appearance.Detailed, error) {
	return r.listDetailed(ctx)
}

func (r *AppearanceRepository) ListDetailedByPlayer(ctx context.Context, playerID int64) ([]appearance.Detailed, error) {
	return r.listDetailed(ctx, qb.Eq("a.player_id", playerID))
}

// listDetailed orders newest match first, then by insertion within a match.
func (r *AppearanceRepository) listDetailed(ctx context.Context, conditions ...qb.Condition) ([]appearance.Detailed, error) {
	query, args, err := qb.Select(appearanceDetailedColumns...).From(appearanceWithMatchTable).
		Where(conditions...).
		OrderBy("m.match_date DESC", "m.id DESC", "a.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select detailed appearances query: %w", err)
	}

	var rows []appearanceDetailedModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select detailed appearances: %w", err)
	}

	out := make([]appearance.Detailed, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *AppearanceRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.db, "appearances")
}
