package model

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input    string
		expected Position
	}{
		{input: "GK", expected: POS_GK},
		{input: "st", expected: POS_ST},
		{input: " cam ", expected: POS_CAM},
		{input: "RWB", expected: POS_RWB},
		{input: "QB", expected: POS_UNKNOWN},
		{input: "", expected: POS_UNKNOWN},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if p := ParsePosition(tc.input); p != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, p)
			}
		})
	}
}

func TestPositionsComplete(t *testing.T) {
	positions := Positions()
	if len(positions) != 19 {
		t.Fatalf("expected 19 position codes, got %d", len(positions))
	}
	seen := make(map[Position]bool)
	for _, p := range positions {
		if p == POS_UNKNOWN {
			t.Error("POS_UNKNOWN must not be offered as a choice")
		}
		if seen[p] {
			t.Errorf("duplicate position %q", p)
		}
		seen[p] = true
		if p.Label() == string(p) {
			t.Errorf("position %q has no long label", p)
		}
	}
}

func TestPositionLabel(t *testing.T) {
	if l := POS_GK.Label(); l != "GK - Goalkeeper" {
		t.Errorf("unexpected label: %s", l)
	}
}

func TestCanPlay(t *testing.T) {
	p := Player{
		FirstName:          "Jamie",
		LastName:           "Fenwick",
		PrimaryPosition:    POS_ST,
		AlternatePositions: []Position{POS_CF, POS_CAM},
	}
	if !p.CanPlay(POS_ST) {
		t.Error("expected primary position to be playable")
	}
	if !p.CanPlay(POS_CF) {
		t.Error("expected alternate position to be playable")
	}
	if p.CanPlay(POS_GK) {
		t.Error("did not expect GK to be playable")
	}
}
