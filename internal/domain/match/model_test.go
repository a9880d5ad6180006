package match

import (
	"testing"
	"time"
)

func TestDeriveResult(t *testing.T) {
	for our := 0; our <= 6; our++ {
		for their := 0; their <= 6; their++ {
			got := DeriveResult(our, their)
			switch {
			case our > their && got != ResultWin:
				t.Fatalf("%d-%d: expected WIN, got %s", our, their, got)
			case our < their && got != ResultLoss:
				t.Fatalf("%d-%d: expected LOSS, got %s", our, their, got)
			case our == their && got != ResultDraw:
				t.Fatalf("%d-%d: expected DRAW, got %s", our, their, got)
			}
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	in := time.Date(2024, 9, 1, 23, 30, 0, 0, time.FixedZone("UTC-3", -3*3600))
	got := NormalizeDate(in)
	want := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMatchValidate(t *testing.T) {
	valid := Match{
		Date:     time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		Opponent: "Rival FC",
		OurScore: 2,
		Result:   ResultWin,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid match, got %v", err)
	}

	noOpponent := valid
	noOpponent.Opponent = "  "
	if err := noOpponent.Validate(); err == nil {
		t.Fatalf("expected error for blank opponent")
	}

	negative := valid
	negative.TheirScore = -1
	if err := negative.Validate(); err == nil {
		t.Fatalf("expected error for negative score")
	}

	noResult := valid
	noResult.Result = ""
	if err := noResult.Validate(); err == nil {
		t.Fatalf("expected error for missing result")
	}
}
