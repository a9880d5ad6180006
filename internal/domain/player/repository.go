package player

import "context"

// ListFilter narrows roster listings.
type ListFilter struct {
	ActiveOnly bool
}

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	GetByNickname(ctx context.Context, nickname string) (Player, bool, error)
	Create(ctx context.Context, p Player) (Player, error)
	Update(ctx context.Context, p Player) (Player, error)
	DeleteAll(ctx context.Context) (int64, error)
}
