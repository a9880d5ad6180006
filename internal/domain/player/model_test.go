package player

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		raw  string
		want Position
		ok   bool
	}{
		{raw: "GK", want: PositionGoalkeeper, ok: true},
		{raw: " defensa ", want: PositionDefender, ok: true},
		{raw: "Midfielder", want: PositionMidfielder, ok: true},
		{raw: "fwd", want: PositionForward, ok: true},
		{raw: "libero", ok: false},
		{raw: "", ok: false},
	}

	for _, tc := range tests {
		got, ok := ParsePosition(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParsePosition(%q) = %q,%v want %q,%v", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPlayerValidate(t *testing.T) {
	dorsal := 10
	valid := Player{FullName: "Juan Perez", Nickname: "JuanP", Dorsal: &dorsal, Position: PositionForward}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid player, got %v", err)
	}

	missingName := valid
	missingName.FullName = " "
	if err := missingName.Validate(); err == nil {
		t.Fatalf("expected error for missing full name")
	}

	badPosition := valid
	badPosition.Position = "XX"
	if err := badPosition.Validate(); err == nil {
		t.Fatalf("expected error for invalid position")
	}

	badDorsal := valid
	tooHigh := 120
	badDorsal.Dorsal = &tooHigh
	if err := badDorsal.Validate(); err == nil {
		t.Fatalf("expected error for dorsal out of range")
	}
}

func TestDisplayName(t *testing.T) {
	if got := (Player{FullName: "Juan Perez", Nickname: "JuanP"}).DisplayName(); got != "JuanP" {
		t.Fatalf("expected nickname, got %q", got)
	}
	if got := (Player{FullName: "Juan Perez"}).DisplayName(); got != "Juan Perez" {
		t.Fatalf("expected full name, got %q", got)
	}
}
