package importing

import "fmt"

// Summary counts what one import run changed.
type Summary struct {
	RunID              string
	PlayersCreated     int
	PlayersUpdated     int
	TournamentsCreated int
	MatchesCreated     int
	MatchesSkipped     int
	AppearancesCreated int
}

func (s Summary) String() string {
	return fmt.Sprintf(
		"players: %d created, %d updated; tournaments: %d created; matches: %d created, %d skipped; appearances: %d created",
		s.PlayersCreated,
		s.PlayersUpdated,
		s.TournamentsCreated,
		s.MatchesCreated,
		s.MatchesSkipped,
		s.AppearancesCreated,
	)
}
