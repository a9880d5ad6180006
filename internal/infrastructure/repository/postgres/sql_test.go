package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/riskibarqy/club-stats/internal/domain/uow"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get player: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(errors.New("connection refused")) {
		t.Fatalf("expected unrelated error to be ignored")
	}
}

func TestMapWriteError(t *testing.T) {
	t.Run("foreign key violation", func(t *testing.T) {
		err := mapWriteError(&pq.Error{Code: "23503", Constraint: "appearances_match_id_fkey"})
		if !errors.Is(err, uow.ErrReferenceNotFound) {
			t.Fatalf("expected ErrReferenceNotFound, got %v", err)
		}
	})

	t.Run("unique violation", func(t *testing.T) {
		err := mapWriteError(&pq.Error{Code: "23505", Message: "duplicate key value"})
		if !errors.Is(err, uow.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		check := &pq.Error{Code: "23514", Message: "violates check constraint"}
		if got := mapWriteError(check); got != error(check) {
			t.Fatalf("expected error unchanged, got %v", got)
		}
		plain := errors.New("timeout")
		if got := mapWriteError(plain); got != plain {
			t.Fatalf("expected error unchanged, got %v", got)
		}
	})
}

func TestNullableConversions(t *testing.T) {
	if got := intFromNull(nullInt(nil)); got != nil {
		t.Fatalf("expected nil, got %v", *got)
	}
	minutes := 75
	if got := intFromNull(nullInt(&minutes)); got == nil || *got != 75 {
		t.Fatalf("expected 75, got %v", got)
	}
	id := int64(4)
	if got := int64FromNull(nullInt64(&id)); got == nil || *got != 4 {
		t.Fatalf("expected 4, got %v", got)
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2024, 9, 1, 22, 15, 0, 0, time.FixedZone("UTC-3", -3*3600))
	want := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)
	if got := dateOnly(in); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
