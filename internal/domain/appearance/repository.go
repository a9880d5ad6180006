package appearance

import "context"

// Repository persists appearances. Rows are only ever created with their match.
type Repository interface {
	Create(ctx context.Context, a Appearance) (Appearance, error)
	ListByMatch(ctx context.Context, matchID int64) ([]Appearance, error)
	// ListDetailed returns every appearance joined with its match, newest match first.
	ListDetailed(ctx context.Context) ([]Detailed, error)
	ListDetailedByPlayer(ctx context.Context, playerID int64) ([]Detailed, error)
	DeleteAll(ctx context.Context) (int64, error)
}
