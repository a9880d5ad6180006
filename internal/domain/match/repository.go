package match

import (
	"context"
	"time"
)

// ListFilter narrows match listings.
type ListFilter struct {
	TournamentID *int64
	Limit        int
}

// Repository persists matches. Matches are immutable once created.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Match, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	GetByDateAndOpponent(ctx context.Context, date time.Time, opponent string) (Match, bool, error)
	Create(ctx context.Context, m Match) (Match, error)
	DeleteAll(ctx context.Context) (int64, error)
}
