package sweeper

// PlaceMines returns a copy of board with exactly d.Mines mines.
//
// Mines are drawn by rejection sampling: a uniformly random cell is retried if
// it already holds a mine or lies within Chebyshev distance 1 of safe. When
// the mines would not fit outside that 3×3 zone (possible only on tiny custom
// boards), the zone shrinks to the safe cell itself. Difficulty.Validate
// guarantees at least one free cell, so the loop terminates.
//
// After placement every non-mine cell's NeighborMines is recomputed.
func PlaceMines(board Board, d Difficulty, safe Coord, rng *RNG) Board {
	out := board.Clone()

	mines := min(d.Mines, out.Size()-1)
	radius := 1
	if mines > out.Size()-safeZoneSize(out, safe) {
		radius = 0
	}

	placed := 0
	for placed < mines {
		row := rng.Intn(out.rows)
		col := rng.Intn(out.cols)

		if C(row, col).Chebyshev(safe) <= radius {
			continue
		}
		c := out.cell(row, col)
		if c.IsMine {
			continue
		}

		c.IsMine = true
		placed++
	}

	out.computeNeighborCounts()
	return out
}

// safeZoneSize returns the number of cells in the clipped 3×3 block around c.
func safeZoneSize(b Board, c Coord) int {
	rows := min(b.rows-1, c.Row+1) - max(0, c.Row-1) + 1
	cols := min(b.cols-1, c.Col+1) - max(0, c.Col-1) + 1
	return rows * cols
}
