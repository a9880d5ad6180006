package appearance

import "testing"

func TestAppearanceValidate(t *testing.T) {
	minutes := 90
	valid := Appearance{MatchID: 1, PlayerID: 2, Goals: 1, Minutes: &minutes}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid appearance, got %v", err)
	}

	tests := map[string]func(a *Appearance){
		"missing match":    func(a *Appearance) { a.MatchID = 0 },
		"missing player":   func(a *Appearance) { a.PlayerID = 0 },
		"negative goals":   func(a *Appearance) { a.Goals = -1 },
		"negative assists": func(a *Appearance) { a.Assists = -2 },
		"minutes too high": func(a *Appearance) { m := 121; a.Minutes = &m },
		"minutes negative": func(a *Appearance) { m := -1; a.Minutes = &m },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			a := valid
			mutate(&a)
			if err := a.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestCards(t *testing.T) {
	if got := (Appearance{Yellow: true, Red: true}).Cards(); got != 2 {
		t.Fatalf("expected 2 cards, got %d", got)
	}
	if got := (Appearance{}).Cards(); got != 0 {
		t.Fatalf("expected 0 cards, got %d", got)
	}
}
