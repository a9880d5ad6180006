package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/club-stats/internal/domain/appearance"
)

type appearanceTableModel struct {
	ID        int64         `db:"id"`
	MatchID   int64         `db:"match_id"`
	PlayerID  int64         `db:"player_id"`
	IsStarter bool          `db:"is_starter"`
	Minutes   sql.NullInt32 `db:"minutes"`
	Goals     int           `db:"goals"`
	Assists   int           `db:"assists"`
	Yellow    bool          `db:"yellow_card"`
	Red       bool          `db:"red_card"`
	MOTM      bool          `db:"motm"`
}

type appearanceInsertModel struct {
	MatchID   int64         `db:"match_id"`
	PlayerID  int64         `db:"player_id"`
	IsStarter bool          `db:"is_starter"`
	Minutes   sql.NullInt32 `db:"minutes"`
	Goals     int           `db:"goals"`
	Assists   int           `db:"assists"`
	Yellow    bool          `db:"yellow_card"`
	Red       bool          `db:"red_card"`
	MOTM      bool          `db:"motm"`
}

type appearanceDetailedModel struct {
	appearanceTableModel
	MatchDate  time.Time `db:"match_date"`
	Opponent   string    `db:"opponent"`
	OurScore   int       `db:"our_score"`
	TheirScore int       `db:"their_score"`
}

var appearanceSelectColumns = []string{
	"id",
	"match_id",
	"player_id",
	"is_starter",
	"minutes",
	"goals",
	"assists",
	"yellow_card",
	"red_card",
	"motm",
}

var appearanceDetailedColumns = []string{
	"a.id",
	"a.match_id",
	"a.player_id",
	"a.is_starter",
	"a.minutes",
	"a.goals",
	"a.assists",
	"a.yellow_card",
	"a.red_card",
	"a.motm",
	"m.match_date",
	"m.opponent",
	"m.our_score",
	"m.their_score",
}

func (m appearanceTableModel) toDomain() appearance.Appearance {
	return appearance.Appearance{
		ID:        m.ID,
		MatchID:   m.MatchID,
		PlayerID:  m.PlayerID,
		IsStarter: m.IsStarter,
		Minutes:   intFromNull(m.Minutes),
		Goals:     m.Goals,
		Assists:   m.Assists,
		Yellow:    m.Yellow,
		Red:       m.Red,
		MOTM:      m.MOTM,
	}
}

func (m appearanceDetailedModel) toDomain() appearance.Detailed {
	return appearance.Detailed{
		Appearance: m.appearanceTableModel.toDomain(),
		MatchDate:  dateOnly(m.MatchDate),
		Opponent:   m.Opponent,
		OurScore:   m.OurScore,
		TheirScore: m.TheirScore,
	}
}
