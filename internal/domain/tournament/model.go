package tournament

import (
	"fmt"
	"strings"
)

// Tournament groups matches under a competition and optional season.
type Tournament struct {
	ID        int64
	Name      string
	Season    string
	Organizer string
}

func (t Tournament) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("tournament name is required")
	}
	return nil
}
