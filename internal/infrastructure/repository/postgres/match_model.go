package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/club-stats/internal/domain/match"
)

type matchTableModel struct {
	ID           int64         `db:"id"`
	MatchDate    time.Time     `db:"match_date"`
	Opponent     string        `db:"opponent"`
	OurScore     int           `db:"our_score"`
	TheirScore   int           `db:"their_score"`
	Result       string        `db:"result"`
	Location     string        `db:"location"`
	Notes        string        `db:"notes"`
	TournamentID sql.NullInt64 `db:"tournament_id"`
	CreatedAt    time.Time     `db:"created_at"`
}

type matchInsertModel struct {
	MatchDate    time.Time     `db:"match_date"`
	Opponent     string        `db:"opponent"`
	OurScore     int           `db:"our_score"`
	TheirScore   int           `db:"their_score"`
	Result       string        `db:"result"`
	Location     string        `db:"location"`
	Notes        string        `db:"notes"`
	TournamentID sql.NullInt64 `db:"tournament_id"`
}

var matchSelectColumns = []string{
	"id",
	"match_date",
	"opponent",
	"our_score",
	"their_score",
	"result",
	"location",
	"notes",
	"tournament_id",
	"created_at",
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:           m.ID,
		Date:         dateOnly(m.MatchDate),
		Opponent:     m.Opponent,
		OurScore:     m.OurScore,
		TheirScore:   m.TheirScore,
		Result:       match.Result(m.Result),
		Location:     m.Location,
		Notes:        m.Notes,
		TournamentID: int64FromNull(m.TournamentID),
		CreatedAt:    m.CreatedAt,
	}
}
