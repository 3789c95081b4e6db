package types

import (
	"testing"
	"time"
)

func TestGridInBounds(t *testing.T) {
	grid := Grid{Width: 30, Height: 30}

	tests := []struct {
		cell Cell
		want bool
	}{
		{Cell{0, 0}, true},
		{Cell{29, 29}, true},
		{Cell{15, 15}, true},
		{Cell{-1, 5}, false},
		{Cell{5, -1}, false},
		{Cell{30, 5}, false},
		{Cell{5, 30}, false},
		{Cell{5, 31}, false},
	}

	for _, tc := range tests {
		if got := grid.InBounds(tc.cell); got != tc.want {
			t.Errorf("InBounds(%v): expected %v, got %v", tc.cell, tc.want, got)
		}
	}
}

func TestGridCenter(t *testing.T) {
	grid := Grid{Width: 30, Height: 30}
	if c := grid.Center(); c != (Cell{15, 15}) {
		t.Errorf("Expected center (15,15), got %v", c)
	}
}

func TestDirectionOpposites(t *testing.T) {
	for _, d := range Directions {
		if !d.IsOpposite(d.Opposite()) {
			t.Errorf("Expected %s to be opposite of %s", d, d.Opposite())
		}
		if d.IsOpposite(d) {
			t.Errorf("Direction %s must not be opposite of itself", d)
		}
		sum := d.Delta().Add(d.Opposite().Delta())
		if sum != (Cell{}) {
			t.Errorf("Expected deltas of %s and %s to cancel, got %v", d, d.Opposite(), sum)
		}
	}

	if UP.IsOpposite(LEFT) || RIGHT.IsOpposite(DOWN) {
		t.Error("Perpendicular directions must not be opposite")
	}
	if NONE.IsOpposite(UP) || UP.IsOpposite(NONE) {
		t.Error("NONE must not be opposite of anything")
	}
}

func TestChoices(t *testing.T) {
	if m, ok := ModeFromChoice(1); !ok || m != ModeNormal {
		t.Errorf("Expected choice 1 to be Normal, got %v (%v)", m, ok)
	}
	if m, ok := ModeFromChoice(2); !ok || m != ModeStatue {
		t.Errorf("Expected choice 2 to be Statue, got %v (%v)", m, ok)
	}
	if _, ok := ModeFromChoice(3); ok {
		t.Error("Expected choice 3 to be rejected as a mode")
	}

	delays := map[int]time.Duration{1: 200 * time.Millisecond, 2: 150 * time.Millisecond, 3: 100 * time.Millisecond}
	for choice, want := range delays {
		s, ok := SpeedFromChoice(choice)
		if !ok {
			t.Fatalf("Expected speed choice %d to be accepted", choice)
		}
		if s.Delay() != want {
			t.Errorf("Speed %d: expected delay %v, got %v", choice, want, s.Delay())
		}
	}
	if _, ok := SpeedFromChoice(0); ok {
		t.Error("Expected speed choice 0 to be rejected")
	}
	if _, ok := SpeedFromChoice(4); ok {
		t.Error("Expected speed choice 4 to be rejected")
	}
}

func TestModeKeys(t *testing.T) {
	if ModeNormal.Key() != "NORMAL" || ModeStatue.Key() != "STATUE" {
		t.Errorf("Unexpected mode keys %q %q", ModeNormal.Key(), ModeStatue.Key())
	}
	if ModeNone.Key() != "" {
		t.Errorf("Expected empty key for unset mode, got %q", ModeNone.Key())
	}
}
