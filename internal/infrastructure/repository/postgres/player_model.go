package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/club-stats/internal/domain/player"
)

type playerTableModel struct {
	ID        int64         `db:"id"`
	FullName  string        `db:"full_name"`
	Nickname  string        `db:"nickname"`
	Dorsal    sql.NullInt32 `db:"dorsal"`
	Position  string        `db:"position"`
	JoinedAt  time.Time     `db:"joined_at"`
	IsActive  bool          `db:"is_active"`
	PhotoURL  string        `db:"photo_url"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

type playerInsertModel struct {
	FullName string        `db:"full_name"`
	Nickname string        `db:"nickname"`
	Dorsal   sql.NullInt32 `db:"dorsal"`
	Position string        `db:"position"`
	JoinedAt time.Time     `db:"joined_at"`
	IsActive bool          `db:"is_active"`
	PhotoURL string        `db:"photo_url"`
}

var playerSelectColumns = []string{
	"id",
	"full_name",
	"nickname",
	"dorsal",
	"position",
	"joined_at",
	"is_active",
	"photo_url",
	"created_at",
	"updated_at",
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:        m.ID,
		FullName:  m.FullName,
		Nickname:  m.Nickname,
		Dorsal:    intFromNull(m.Dorsal),
		Position:  player.Position(m.Position),
		JoinedAt:  dateOnly(m.JoinedAt),
		IsActive:  m.IsActive,
		PhotoURL:  m.PhotoURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func playerInsertModelFrom(p player.Player) playerInsertModel {
	return playerInsertModel{
		FullName: p.FullName,
		Nickname: p.Nickname,
		Dorsal:   nullInt(p.Dorsal),
		Position: string(p.Position),
		JoinedAt: dateOnly(p.JoinedAt),
		IsActive: p.IsActive,
		PhotoURL: p.PhotoURL,
	}
}
