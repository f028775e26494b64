package sweeper

import "testing"

// fixture builds a session with mines already placed from a text layout:
//
//	'.' hidden safe   'o' revealed safe
//	'*' hidden mine   'F' flagged safe   '!' flagged mine
func fixture(t *testing.T, layout ...string) Session {
	t.Helper()

	rows, cols := len(layout), len(layout[0])
	b := newBoard(rows, cols)
	mines := 0
	for r, line := range layout {
		if len(line) != cols {
			t.Fatalf("fixture row %d has %d cols, want %d", r, len(line), cols)
		}
		for c, ch := range line {
			cell := b.cell(r, c)
			switch ch {
			case '.':
			case 'o':
				cell.IsRevealed = true
			case '*':
				cell.IsMine = true
			case 'F':
				cell.IsFlagged = true
			case '!':
				cell.IsMine = true
				cell.IsFlagged = true
			default:
				t.Fatalf("fixture: unknown cell %q", ch)
			}
			if cell.IsMine {
				mines++
			}
		}
	}
	b.computeNeighborCounts()

	d := Difficulty{Key: "fixture", Name: "Fixture", Rows: rows, Cols: cols, Mines: mines}
	s, err := NewSessionFor(d, DefaultRules(), 1)
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	s.board = b
	s.minesPlaced = true
	s.flagged = b.CountFlagged()
	return s
}

func mustReveal(t *testing.T, s Session, row, col int) Session {
	t.Helper()
	next, err := s.Reveal(row, col)
	if err != nil {
		t.Fatalf("Reveal(%d,%d): %v", row, col, err)
	}
	return next
}

func mustFlag(t *testing.T, s Session, row, col int) Session {
	t.Helper()
	next, err := s.ToggleFlag(row, col)
	if err != nil {
		t.Fatalf("ToggleFlag(%d,%d): %v", row, col, err)
	}
	return next
}

func mustUse(t *testing.T, s Session, id PowerUpID, nowMs int64) Session {
	t.Helper()
	next, err := s.UsePowerUp(id, nowMs)
	if err != nil {
		t.Fatalf("UsePowerUp(%s): %v", id, err)
	}
	return next
}

func newEasy(t *testing.T, seed int64) Session {
	t.Helper()
	s, err := NewSession(DefaultCatalog(), "easy", DefaultRules(), seed)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}
