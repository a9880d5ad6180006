package importing

import (
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/club-stats/internal/domain/appearance"
	"github.com/riskibarqy/club-stats/internal/domain/player"
)

// PlayerRecord is a coerced players.csv row. Nil and empty fields mean the
// cell was blank and must not overwrite stored values.
type PlayerRecord struct {
	Index    int
	FullName string
	Nickname string
	Dorsal   *int
	Position *player.Position
	JoinedAt *time.Time
	IsActive *bool
	PhotoURL string
}

// ParsePlayerRow coerces one players.csv row. index is 1-based.
func ParsePlayerRow(index int, row Row) (PlayerRecord, error) {
	rec := PlayerRecord{
		Index:    index,
		FullName: row.Get(ColFullName),
		Nickname: row.Get(ColNickname),
		Dorsal:   IntInRange(row.Get(ColDorsal), 0, 99),
		PhotoURL: row.Get(ColPhotoURL),
	}
	if pos, ok := player.ParsePosition(row.Get(ColPosition)); ok {
		rec.Position = &pos
	}
	if active, ok := ParseBool(row.Get(ColIsActive)); ok {
		rec.IsActive = &active
	}
	if raw := row.Get(ColJoinedAt); raw != "" {
		joined, err := ParseDate(raw)
		if err != nil {
			return PlayerRecord{}, rowError(DatasetPlayers, index, crerr.Wrapf(err, "column %s", ColJoinedAt))
		}
		rec.JoinedAt = &joined
	}
	if rec.FullName == "" && rec.Nickname == "" {
		return PlayerRecord{}, rowError(DatasetPlayers, index, crerr.Mark(crerr.New("fullName or nickname is required"), ErrInvalidRow))
	}
	return rec, nil
}

// MatchRecord is a coerced matches.csv row. The result column is ignored;
// results are always derived from the scores.
type MatchRecord struct {
	Index      int
	Date       time.Time
	Opponent   string
	OurScore   int
	TheirScore int
	Tournament string
	Season     string
	Organizer  string
	Location   string
	Notes      string
}

func ParseMatchRow(index int, row Row) (MatchRecord, error) {
	date, err := ParseDate(row.Get(ColDate))
	if err != nil {
		return MatchRecord{}, rowError(DatasetMatches, index, crerr.Wrapf(err, "column %s", ColDate))
	}
	rec := MatchRecord{
		Index:      index,
		Date:       date,
		Opponent:   row.Get(ColOpponent),
		OurScore:   NonNegativeIntOr(row.Get(ColOurScore), 0),
		TheirScore: NonNegativeIntOr(row.Get(ColTheirScore), 0),
		Tournament: row.Get(ColTournament),
		Season:     row.Get(ColSeason),
		Organizer:  row.Get(ColOrganizer),
		Location:   row.Get(ColLocation),
		Notes:      row.Get(ColNotes),
	}
	if rec.Opponent == "" {
		return MatchRecord{}, rowError(DatasetMatches, index, crerr.Mark(crerr.New("opponent is required"), ErrInvalidRow))
	}
	return rec, nil
}

// AppearanceRecord is a coerced appearances.csv row referencing its match
// by (MatchDate, Opponent) and its player by nickname.
type AppearanceRecord struct {
	Index          int
	MatchDate      time.Time
	Opponent       string
	PlayerNickname string
	IsStarter      bool
	Minutes        *int
	Goals          int
	Assists        int
	Yellow         bool
	Red            bool
	MOTM           bool
}

func ParseAppearanceRow(index int, row Row) (AppearanceRecord, error) {
	date, err := ParseDate(row.Get(ColMatchDate))
	if err != nil {
		return AppearanceRecord{}, rowError(DatasetAppearances, index, crerr.Wrapf(err, "column %s", ColMatchDate))
	}
	rec := AppearanceRecord{
		Index:          index,
		MatchDate:      date,
		Opponent:       row.Get(ColOpponent),
		PlayerNickname: row.Get(ColPlayerNickname),
		IsStarter:      BoolOr(row.Get(ColIsStarter), false),
		Minutes:        IntInRange(row.Get(ColMinutes), 0, appearance.MaxMinutes),
		Goals:          NonNegativeIntOr(row.Get(ColGoals), 0),
		Assists:        NonNegativeIntOr(row.Get(ColAssists), 0),
		Yellow:         BoolOr(row.Get(ColYellow), false),
		Red:            BoolOr(row.Get(ColRed), false),
		MOTM:           BoolOr(row.Get(ColMOTM), false),
	}
	if rec.Opponent == "" || rec.PlayerNickname == "" {
		return AppearanceRecord{}, rowError(DatasetAppearances, index, crerr.Mark(crerr.New("opponent and playerNickname are required"), ErrInvalidRow))
	}
	return rec, nil
}
