package sweeper

// ToggleFlag flips the flag on a hidden cell. Flags may be placed before the
// first reveal and are not limited by the mine count.
func (s Session) ToggleFlag(row, col int) (Session, error) {
	if err := s.checkBounds("flag", row, col); err != nil {
		return s, err
	}
	if s.status != StatusPlaying || s.board.At(row, col).IsRevealed {
		return s, nil
	}

	next := s.fork()
	c := next.board.cell(row, col)
	c.IsFlagged = !c.IsFlagged
	next.flagged = next.board.CountFlagged()
	return next, nil
}

// Chord reveals every hidden neighbor of a revealed number whose flag count
// already matches it. Wrong flags make this lose the game, as in the
// classic rules.
func (s Session) Chord(row, col int) (Session, error) {
	if err := s.checkBounds("chord", row, col); err != nil {
		return s, err
	}
	if s.status != StatusPlaying {
		return s, nil
	}
	c := s.board.At(row, col)
	if !c.IsRevealed || c.IsMine || c.NeighborMines == 0 {
		return s, nil
	}
	flagged, hidden := s.board.neighborInfo(row, col)
	if flagged != c.NeighborMines || len(hidden) == 0 {
		return s, nil
	}

	next := s
	for _, h := range hidden {
		var err error
		if next, err = next.Reveal(h.Row, h.Col); err != nil {
			return s, err
		}
		if next.status != StatusPlaying {
			break
		}
	}
	return next, nil
}
