package appearance

import (
	"fmt"
	"time"
)

const MaxMinutes = 120

// Appearance is one player's participation and individual stats in one match.
type Appearance struct {
	ID        int64
	MatchID   int64
	PlayerID  int64
	IsStarter bool
	Minutes   *int
	Goals     int
	Assists   int
	Yellow    bool
	Red       bool
	MOTM      bool
}

// Cards counts the yellow and red flags of the appearance.
func (a Appearance) Cards() int {
	n := 0
	if a.Yellow {
		n++
	}
	if a.Red {
		n++
	}
	return n
}

func (a Appearance) Validate() error {
	if a.MatchID <= 0 {
		return fmt.Errorf("appearance match id is required")
	}
	if a.PlayerID <= 0 {
		return fmt.Errorf("appearance player id is required")
	}
	if a.Goals < 0 {
		return fmt.Errorf("appearance goals must be >= 0, got %d", a.Goals)
	}
	if a.Assists < 0 {
		return fmt.Errorf("appearance assists must be >= 0, got %d", a.Assists)
	}
	if a.Minutes != nil && (*a.Minutes < 0 || *a.Minutes > MaxMinutes) {
		return fmt.Errorf("appearance minutes must be between 0 and %d, got %d", MaxMinutes, *a.Minutes)
	}
	return nil
}

// Detailed joins an appearance with the match attributes needed by the
// statistics engine.
type Detailed struct {
	Appearance
	MatchDate  time.Time
	Opponent   string
	OurScore   int
	TheirScore int
}
