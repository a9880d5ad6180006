package importing

import (
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// Row is one raw CSV record keyed by header name.
type Row map[string]string

// Get returns the trimmed cell value, or "" when the column is absent.
func (r Row) Get(column string) string {
	return strings.TrimSpace(r[column])
}

const (
	ColFullName = "fullName"
	ColNickname = "nickname"
	ColDorsal   = "dorsal"
	ColPosition = "position"
	ColJoinedAt = "joinedAt"
	ColIsActive = "isActive"
	ColPhotoURL = "photoUrl"

	ColDate       = "date"
	ColOpponent   = "opponent"
	ColOurScore   = "ourScore"
	ColTheirScore = "theirScore"
	ColResult     = "result"
	ColTournament = "tournament"
	ColSeason     = "season"
	ColOrganizer  = "organizer"
	ColLocation   = "location"
	ColNotes      = "notes"

	ColMatchDate      = "matchDate"
	ColPlayerNickname = "playerNickname"
	ColIsStarter      = "isStarter"
	ColMinutes        = "minutes"
	ColGoals          = "goals"
	ColAssists        = "assists"
	ColYellow         = "yellow"
	ColRed            = "red"
	ColMOTM           = "motm"
)

var (
	PlayerColumns     = []string{ColFullName, ColNickname, ColDorsal, ColPosition, ColJoinedAt, ColIsActive, ColPhotoURL}
	MatchColumns      = []string{ColDate, ColOpponent, ColOurScore, ColTheirScore, ColResult, ColTournament, ColSeason, ColOrganizer, ColLocation, ColNotes}
	AppearanceColumns = []string{ColMatchDate, ColOpponent, ColPlayerNickname, ColIsStarter, ColMinutes, ColGoals, ColAssists, ColYellow, ColRed, ColMOTM}
)

// Dataset names one of the three import files.
type Dataset string

const (
	DatasetPlayers     Dataset = "players"
	DatasetMatches     Dataset = "matches"
	DatasetAppearances Dataset = "appearances"
)

func ParseDataset(raw string) (Dataset, bool) {
	switch Dataset(strings.ToLower(strings.TrimSpace(raw))) {
	case DatasetPlayers:
		return DatasetPlayers, true
	case DatasetMatches:
		return DatasetMatches, true
	case DatasetAppearances:
		return DatasetAppearances, true
	default:
		return "", false
	}
}

// Columns returns the header of the dataset's CSV schema.
func (d Dataset) Columns() []string {
	switch d {
	case DatasetPlayers:
		return PlayerColumns
	case DatasetMatches:
		return MatchColumns
	case DatasetAppearances:
		return AppearanceColumns
	default:
		return nil
	}
}

var (
	// ErrParse marks cells that cannot be coerced and abort the batch.
	ErrParse = crerr.New("parse error")
	// ErrInvalidRow marks rows missing a required value.
	ErrInvalidRow = crerr.New("invalid row")
)

// RowError names the dataset and 1-based row index a failure came from.
type RowError struct {
	Dataset Dataset
	Index   int
	Err     error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s row %d: %v", e.Dataset, e.Index, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

func rowError(dataset Dataset, index int, err error) error {
	return &RowError{Dataset: dataset, Index: index, Err: err}
}
