package sweeper

// Snapshot is a flat, comparable view of a session for determinism checks
// and persistence.
type Snapshot struct {
	Rows, Cols, Mines int
	Status            Status
	Elapsed           int
	Flagged           int
	Revealed          int
	Reveals           int
	MinesPlaced       bool
	XRayActive        bool
	XRayEndsAtMs      int64
	TimeFrozen        bool
	FreezeEndsAtMs    int64
	SafeClickArmed    bool
	UsesRemaining     [4]int
	Cells             string // One byte per cell, see cellCode
	RNGState          uint64
}

// Snapshot captures the current state.
func (s Session) Snapshot() Snapshot {
	snap := Snapshot{
		Rows:           s.board.rows,
		Cols:           s.board.cols,
		Mines:          s.difficulty.Mines,
		Status:         s.status,
		Elapsed:        s.elapsed,
		Flagged:        s.flagged,
		Revealed:       s.board.CountRevealed(),
		Reveals:        s.reveals,
		MinesPlaced:    s.minesPlaced,
		XRayActive:     s.xrayActive,
		XRayEndsAtMs:   s.xrayEndsAtMs,
		TimeFrozen:     s.timeFrozen,
		FreezeEndsAtMs: s.freezeEndsAtMs,
		SafeClickArmed: s.safeClickArmed,
		RNGState:       s.rng.State(),
	}
	for i, id := range PowerUpIDs {
		if p, ok := s.PowerUp(id); ok {
			snap.UsesRemaining[i] = p.UsesRemaining
		}
	}

	cells := make([]byte, len(s.board.cells))
	for i, c := range s.board.cells {
		cells[i] = cellCode(c)
	}
	snap.Cells = string(cells)
	return snap
}

// cellCode packs a cell into one byte: bits 0-3 neighbor count,
// bit 4 mine, bit 5 revealed, bit 6 flagged.
func cellCode(c Cell) byte {
	b := byte(c.NeighborMines & 0x0f) //#nosec G115 -- count is 0..8
	if c.IsMine {
		b |= 1 << 4
	}
	if c.IsRevealed {
		b |= 1 << 5
	}
	if c.IsFlagged {
		b |= 1 << 6
	}
	return b
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	var h uint64 = 17
	mix := func(v uint64) { h = h*31 + v }
	flag := func(v bool) uint64 {
		if v {
			return 1
		}
		return 0
	}

	mix(uint64(s.Rows))  //#nosec G115 -- dimensions are positive
	mix(uint64(s.Cols))  //#nosec G115
	mix(uint64(s.Mines)) //#nosec G115
	for i := range len(s.Status) {
		mix(uint64(s.Status[i]))
	}
	mix(uint64(s.Elapsed))  //#nosec G115
	mix(uint64(s.Flagged))  //#nosec G115
	mix(uint64(s.Revealed)) //#nosec G115
	mix(uint64(s.Reveals))  //#nosec G115
	mix(flag(s.MinesPlaced))
	mix(flag(s.XRayActive))
	mix(uint64(s.XRayEndsAtMs)) //#nosec G115
	mix(flag(s.TimeFrozen))
	mix(uint64(s.FreezeEndsAtMs)) //#nosec G115
	mix(flag(s.SafeClickArmed))
	for _, u := range s.UsesRemaining {
		mix(uint64(u)) //#nosec G115
	}
	for i := range len(s.Cells) {
		mix(uint64(s.Cells[i]))
	}
	mix(s.RNGState)
	return h
}
