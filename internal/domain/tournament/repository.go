package tournament

import "context"

// Repository exposes tournament lookups by id and by natural key.
type Repository interface {
	List(ctx context.Context) ([]Tournament, error)
	GetByID(ctx context.Context, id int64) (Tournament, bool, error)
	// GetByName returns the oldest tournament with the name, regardless of season.
	GetByName(ctx context.Context, name string) (Tournament, bool, error)
	GetByNameAndSeason(ctx context.Context, name, season string) (Tournament, bool, error)
	Create(ctx context.Context, t Tournament) (Tournament, error)
	DeleteAll(ctx context.Context) (int64, error)
}
