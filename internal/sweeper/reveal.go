package sweeper

// Reveal uncovers the cell at (row, col).
//
// The first reveal of a session places the mines around the target so the
// first click is always safe. Revealing a mine loses the game unless a
// safe-click protection is armed, in which case a random safe cell is
// revealed instead. Revealing a zero opens its connected region.
func (s Session) Reveal(row, col int) (Session, error) {
	if err := s.checkBounds("reveal", row, col); err != nil {
		return s, err
	}
	if s.status != StatusPlaying {
		return s, nil
	}
	if c := s.board.At(row, col); c.IsRevealed || c.IsFlagged {
		return s, nil
	}

	next := s.fork()
	next.reveals++
	target := C(row, col)

	switch {
	case !next.minesPlaced:
		next.board = PlaceMines(next.board, next.difficulty, target, &next.rng)
		next.minesPlaced = true
	case next.safeClickArmed && next.board.At(row, col).IsMine:
		if safe, ok := next.pickSafeCell(); ok {
			next.safeClickArmed = false
			next.consumeCharge(PowerUpSafeClick)
			next.redirectFrom, next.redirectTo, next.redirected = target, safe, true
			target = safe
		}
	}

	next.revealAt(target)
	return next, nil
}

// revealAt uncovers one cell on a board the session already owns and
// updates the game status.
func (s *Session) revealAt(c Coord) {
	cell := s.board.cell(c.Row, c.Col)
	cell.IsRevealed = true

	if cell.IsMine {
		s.board.revealMines()
		s.status = StatusLost
		s.detonated, s.hasDetonated = c, true
		s.safeClickArmed = false
		return
	}

	if cell.NeighborMines == 0 {
		s.board.floodFill(c.Row, c.Col)
	}
	s.checkWin()
}

// checkWin finishes the game once every safe cell is revealed.
// Remaining mines are flagged so the final board reads correctly.
func (s *Session) checkWin() {
	if s.board.CountRevealed() != s.board.Size()-s.difficulty.Mines {
		return
	}
	s.status = StatusWon
	s.board.flagMines()
	s.flagged = s.board.CountFlagged()
	s.safeClickArmed = false
	s.xrayActive = false
	s.timeFrozen = false
}
