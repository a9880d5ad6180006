package postgres

import "github.com/riskibarqy/club-stats/internal/domain/tournament"

type tournamentTableModel struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	Season    string `db:"season"`
	Organizer string `db:"organizer"`
}

type tournamentInsertModel struct {
	Name      string `db:"name"`
	Season    string `db:"season"`
	Organizer string `db:"organizer"`
}

var tournamentSelectColumns = []string{"id", "name", "season", "organizer"}

func (m tournamentTableModel) toDomain() tournament.Tournament {
	return tournament.Tournament{
		ID:        m.ID,
		Name:      m.Name,
		Season:    m.Season,
		Organizer: m.Organizer,
	}
}
