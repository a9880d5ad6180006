package match

import (
	"fmt"
	"strings"
	"time"
)

// Result is the outcome from the club's point of view.
type Result string

const (
	ResultWin  Result = "WIN"
	ResultDraw Result = "DRAW"
	ResultLoss Result = "LOSS"
)

// DeriveResult compares the club score with the opponent score.
func DeriveResult(ourScore, theirScore int) Result {
	switch {
	case ourScore > theirScore:
		return ResultWin
	case ourScore < theirScore:
		return ResultLoss
	default:
		return ResultDraw
	}
}

// Match is one fixture played by the club. Result is fixed at creation.
type Match struct {
	ID           int64
	Date         time.Time
	Opponent     string
	OurScore     int
	TheirScore   int
	Result       Result
	Location     string
	Notes        string
	TournamentID *int64
	CreatedAt    time.Time
}

// NormalizeDate truncates a timestamp to its UTC calendar day, the
// granularity used by the (date, opponent) natural key.
func NormalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// NormalizeOpponent trims the opponent label used in natural key lookups.
func NormalizeOpponent(opponent string) string {
	return strings.TrimSpace(opponent)
}

func (m Match) Validate() error {
	if m.Date.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if NormalizeOpponent(m.Opponent) == "" {
		return fmt.Errorf("match opponent is required")
	}
	if m.OurScore < 0 || m.TheirScore < 0 {
		return fmt.Errorf("match scores must be >= 0, got %d-%d", m.OurScore, m.TheirScore)
	}
	switch m.Result {
	case ResultWin, ResultDraw, ResultLoss:
	default:
		return fmt.Errorf("invalid match result: %q", m.Result)
	}
	return nil
}
