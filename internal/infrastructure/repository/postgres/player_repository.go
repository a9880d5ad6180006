package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/club-stats/internal/domain/player"
	qb "github.com/riskibarqy/club-stats/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db sqlx.ExtContext
}

func NewPlayerRepository(db sqlx.ExtContext) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	builder := qb.Select(playerSelectColumns...).From("players").OrderBy("id")
	if filter.ActiveOnly {
		builder = builder.Where(qb.Eq("is_active", true))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}
	return r.getOne(ctx, query, args)
}

// GetByNickname matches exactly; the lowest id wins when nicknames repeat.
func (r *PlayerRepository) GetByNickname(ctx context.Context, nickname string) (player.Player, bool, error) {
	if nickname == "" {
		return player.Player{}, false, nil
	}

	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("nickname", nickname)).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player by nickname query: %w", err)
	}
	return r.getOne(ctx, query, args)
}

func (r *PlayerRepository) getOne(ctx context.Context, query string, args []any) (player.Player, bool, error) {
	var row playerTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	query, args, err := qb.InsertModel("players", playerInsertModelFrom(p), playerSelectColumns...)
	if err != nil {
		return player.Player{}, fmt.Errorf("build create player query: %w", err)
	}

	var row playerTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("create player nickname=%q: %w", p.Nickname, mapWriteError(err))
	}
	return row.toDomain(), nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) (player.Player, error) {
	model := playerInsertModelFrom(p)
	query, args, err := qb.Update("players").
		Set("full_name", model.FullName).
		Set("nickname", model.Nickname).
		Set("dorsal", model.Dorsal).
		Set("position", model.Position).
		Set("joined_at", model.JoinedAt).
		Set("is_active", model.IsActive).
		Set("photo_url", model.PhotoURL).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", p.ID)).
		Returning(playerSelectColumns...).
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build update player query: %w", err)
	}

	var row playerTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, fmt.Errorf("update player id=%d: not found", p.ID)
		}
		return player.Player{}, fmt.Errorf("update player id=%d: %w", p.ID, mapWriteError(err))
	}
	return row.toDomain(), nil
}

// DeleteAll removes every player; appearances go with them through the cascade.
func (r *PlayerRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.db, "players")
}
