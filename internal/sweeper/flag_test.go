package sweeper

import (
	"errors"
	"testing"
)

func TestToggleFlag(t *testing.T) {
	s := newEasy(t, 1)

	s = mustFlag(t, s, 0, 0)
	if !s.board.At(0, 0).IsFlagged || s.FlaggedCount() != 1 {
		t.Fatalf("flag not set: flagged=%d", s.FlaggedCount())
	}
	if s.RemainingMines() != Easy.Mines-1 {
		t.Errorf("RemainingMines = %d, want %d", s.RemainingMines(), Easy.Mines-1)
	}
	if s.MinesPlaced() {
		t.Error("flagging placed mines")
	}

	s = mustFlag(t, s, 0, 0)
	if s.board.At(0, 0).IsFlagged || s.FlaggedCount() != 0 {
		t.Errorf("flag not cleared: flagged=%d", s.FlaggedCount())
	}
}

func TestFlagThenRevealIsNoop(t *testing.T) {
	s := mustFlag(t, newEasy(t, 1), 0, 0)
	s = mustReveal(t, s, 0, 0)

	if s.MinesPlaced() || s.RevealedCount() != 0 {
		t.Error("reveal of a flagged cell had an effect")
	}
}

func TestFlagRevealedCellIsNoop(t *testing.T) {
	s := fixture(t,
		"o*",
		"..",
	)
	s = mustFlag(t, s, 0, 0)
	if s.board.At(0, 0).IsFlagged {
		t.Error("revealed cell was flagged")
	}
}

func TestOverFlaggingGoesNegative(t *testing.T) {
	s := fixture(t,
		"*...",
		"....",
	)
	for col := range 4 {
		s = mustFlag(t, s, 1, col)
	}
	if got := s.RemainingMines(); got != -3 {
		t.Errorf("RemainingMines = %d, want -3", got)
	}
}

func TestFlagOutOfBounds(t *testing.T) {
	if _, err := newEasy(t, 1).ToggleFlag(0, 42); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestChord(t *testing.T) {
	s := fixture(t,
		"!...",
		".o..",
		"....",
	)

	s, err := s.Chord(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if s.Status() != StatusWon {
		t.Fatalf("status = %s, want won\n%s", s.Status(), s.board.String())
	}
}

func TestChordWrongFlagLoses(t *testing.T) {
	s := fixture(t,
		"*F..",
		".o..",
		"....",
	)

	s, err := s.Chord(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if s.Status() != StatusLost {
		t.Errorf("status = %s, want lost", s.Status())
	}
}

func TestChordUnsatisfiedIsNoop(t *testing.T) {
	s := fixture(t,
		"*...",
		".o..",
		"....",
	)
	before := s.Snapshot()

	next, err := s.Chord(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if next.Snapshot() != before {
		t.Error("chord without enough flags changed state")
	}
}

func TestFlagAfterGameOverIsNoop(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
		reveal Coord
		flag   Coord
		want   Status
	}{
		{"lost", []string{"*..", "...", "..*"}, C(0, 0), C(1, 1), StatusLost},
		{"won unflag", []string{"...*", "...*", "...*"}, C(2, 0), C(0, 3), StatusWon},
		{"won flag revealed", []string{"...*", "...*", "...*"}, C(2, 0), C(1, 1), StatusWon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustReveal(t, fixture(t, tt.layout...), tt.reveal.Row, tt.reveal.Col)
			if s.Status() != tt.want {
				t.Fatalf("status = %s, want %s", s.Status(), tt.want)
			}
			before := s.Snapshot()

			after := mustFlag(t, s, tt.flag.Row, tt.flag.Col)
			if after.Snapshot() != before {
				t.Errorf("ToggleFlag(%v) changed a finished game", tt.flag)
			}
		})
	}
}
