package player

import (
	"fmt"
	"strings"
	"time"
)

// Position is the field role a player is registered with.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

var positionAliases = map[string]Position{
	"gk":         PositionGoalkeeper,
	"goalkeeper": PositionGoalkeeper,
	"keeper":     PositionGoalkeeper,
	"portero":    PositionGoalkeeper,
	"def":        PositionDefender,
	"defender":   PositionDefender,
	"defensa":    PositionDefender,
	"mid":        PositionMidfielder,
	"midfielder": PositionMidfielder,
	"medio":      PositionMidfielder,
	"fwd":        PositionForward,
	"forward":    PositionForward,
	"striker":    PositionForward,
	"delantero":  PositionForward,
}

// ParsePosition normalizes user or CSV supplied position labels.
func ParsePosition(raw string) (Position, bool) {
	p, ok := positionAliases[strings.ToLower(strings.TrimSpace(raw))]
	return p, ok
}

// Player is a member of the club roster.
type Player struct {
	ID        int64
	FullName  string
	Nickname  string
	Dorsal    *int
	Position  Position
	JoinedAt  time.Time
	IsActive  bool
	PhotoURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName prefers the nickname, the name the club actually uses.
func (p Player) DisplayName() string {
	if strings.TrimSpace(p.Nickname) != "" {
		return p.Nickname
	}
	return p.FullName
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.FullName) == "" {
		return fmt.Errorf("player full name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %q", p.Position)
	}
	if p.Dorsal != nil && (*p.Dorsal < 0 || *p.Dorsal > 99) {
		return fmt.Errorf("player dorsal must be between 0 and 99, got %d", *p.Dorsal)
	}

	return nil
}
