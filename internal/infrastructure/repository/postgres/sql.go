package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/club-stats/internal/domain/uow"
	qb "github.com/riskibarqy/club-stats/internal/platform/querybuilder"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// mapWriteError translates constraint violations into the store sentinels so
// callers can tell a missing reference from a duplicate.
func mapWriteError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s", uow.ErrReferenceNotFound, constraintDetail(pqErr))
	case pgUniqueViolation:
		return fmt.Errorf("%w: %s", uow.ErrConflict, constraintDetail(pqErr))
	default:
		return err
	}
}

func constraintDetail(err *pq.Error) string {
	if detail := strings.TrimSpace(err.Detail); detail != "" {
		return detail
	}
	if err.Constraint != "" {
		return err.Constraint
	}
	return err.Message
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}

func int64FromNull(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	out := v.Int64
	return &out
}

func intFromNull(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int32)
	return &out
}

// dateOnly drops the clock part; DATE columns come back at UTC midnight.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func deleteAll(ctx context.Context, db sqlx.ExecerContext, table string) (int64, error) {
	query, args, err := qb.DeleteFrom(table).All().ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete %s query: %w", table, err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected delete %s: %w", table, err)
	}
	return affected, nil
}
