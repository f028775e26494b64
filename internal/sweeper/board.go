package sweeper

import (
	"slices"
	"strconv"
	"strings"
)

// Cell is one grid position.
type Cell struct {
	Row           int
	Col           int
	IsMine        bool
	IsRevealed    bool
	IsFlagged     bool
	NeighborMines int // Mines in the clipped 8-neighborhood; meaningless for mines
}

// Hidden returns true if the cell is neither revealed nor flagged.
func (c Cell) Hidden() bool {
	return !c.IsRevealed && !c.IsFlagged
}

// Board is a rows×cols grid of cells stored in row-major order:
// index = row*cols + col.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// NewBoard creates an empty board for the given difficulty.
// No mines are placed.
func NewBoard(d Difficulty) Board {
	return newBoard(d.Rows, d.Cols)
}

func newBoard(rows, cols int) Board {
	b := Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for row := range rows {
		for col := range cols {
			b.cells[row*cols+col] = Cell{Row: row, Col: col}
		}
	}
	return b
}

// Rows returns the number of rows.
func (b Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b Board) Cols() int {
	return b.cols
}

// Size returns the total number of cells.
func (b Board) Size() int {
	return len(b.cells)
}

// InBounds returns true if (row, col) is on the board.
func (b Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the cell at (row, col).
// Returns a zero Cell if out of bounds.
func (b Board) At(row, col int) Cell {
	if !b.InBounds(row, col) {
		return Cell{}
	}
	return b.cells[row*b.cols+col]
}

// cell returns a pointer into the board for in-place mutation.
// Only call on a board the caller exclusively owns.
func (b *Board) cell(row, col int) *Cell {
	return &b.cells[row*b.cols+col]
}

// Cells returns a copy of all cells in row-major order.
func (b Board) Cells() []Cell {
	return slices.Clone(b.cells)
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	return Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: slices.Clone(b.cells),
	}
}

// eachNeighbor calls fn for every in-bounds cell at Chebyshev distance 1.
func (b Board) eachNeighbor(row, col int, fn func(r, c int)) {
	for r := max(0, row-1); r <= min(b.rows-1, row+1); r++ {
		for c := max(0, col-1); c <= min(b.cols-1, col+1); c++ {
			if r == row && c == col {
				continue
			}
			fn(r, c)
		}
	}
}

// Neighbors returns the clipped 8-neighborhood of (row, col).
func (b Board) Neighbors(row, col int) []Coord {
	out := make([]Coord, 0, 8)
	b.eachNeighbor(row, col, func(r, c int) {
		out = append(out, C(r, c))
	})
	return out
}

// neighborInfo returns the number of flagged neighbors and the coordinates
// of neighbors that are neither revealed nor flagged.
func (b Board) neighborInfo(row, col int) (flagged int, hidden []Coord) {
	b.eachNeighbor(row, col, func(r, c int) {
		n := b.At(r, c)
		switch {
		case n.IsFlagged:
			flagged++
		case !n.IsRevealed:
			hidden = append(hidden, C(r, c))
		}
	})
	return flagged, hidden
}

// countNeighborMines counts mines around (row, col).
func (b Board) countNeighborMines(row, col int) int {
	count := 0
	b.eachNeighbor(row, col, func(r, c int) {
		if b.At(r, c).IsMine {
			count++
		}
	})
	return count
}

// computeNeighborCounts recomputes NeighborMines for every non-mine cell.
func (b *Board) computeNeighborCounts() {
	for i := range b.cells {
		c := &b.cells[i]
		if c.IsMine {
			c.NeighborMines = 0
			continue
		}
		c.NeighborMines = b.countNeighborMines(c.Row, c.Col)
	}
}

// CountMines returns the number of mines on the board.
func (b Board) CountMines() int {
	return b.count(func(c Cell) bool { return c.IsMine })
}

// CountRevealed returns the number of revealed cells.
func (b Board) CountRevealed() int {
	return b.count(func(c Cell) bool { return c.IsRevealed })
}

// CountFlagged returns the number of flagged cells.
func (b Board) CountFlagged() int {
	return b.count(func(c Cell) bool { return c.IsFlagged })
}

func (b Board) count(pred func(Cell) bool) int {
	n := 0
	for _, c := range b.cells {
		if pred(c) {
			n++
		}
	}
	return n
}

// revealMines marks every mine revealed for end-of-game display.
func (b *Board) revealMines() {
	for i := range b.cells {
		if b.cells[i].IsMine {
			b.cells[i].IsRevealed = true
		}
	}
}

// flagMines flags every unrevealed mine.
func (b *Board) flagMines() {
	for i := range b.cells {
		if b.cells[i].IsMine && !b.cells[i].IsRevealed {
			b.cells[i].IsFlagged = true
		}
	}
}

// floodFill expands the connected zero-count region around (row, col) using an
// explicit worklist. Every unrevealed, unflagged, non-mine neighbor of a
// zero cell is revealed; only neighbors that are zeros themselves are expanded.
func (b *Board) floodFill(row, col int) {
	stack := []Coord{C(row, col)}
	seen := make(map[Coord]struct{})

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := seen[cur]; ok {
			continue
		}
		seen[cur] = struct{}{}

		b.eachNeighbor(cur.Row, cur.Col, func(r, c int) {
			n := b.cell(r, c)
			if n.IsRevealed || n.IsFlagged || n.IsMine {
				return
			}
			n.IsRevealed = true
			if n.NeighborMines == 0 {
				stack = append(stack, C(r, c))
			}
		})
	}
}

// String renders the board for debugging:
// '#' hidden, 'F' flagged, '*' revealed mine, '.' revealed zero, digits for counts.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.cols + 1))

	for row := range b.rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range b.cols {
			c := b.cells[row*b.cols+col]
			switch {
			case c.IsFlagged && !c.IsRevealed:
				sb.WriteByte('F')
			case !c.IsRevealed:
				sb.WriteByte('#')
			case c.IsMine:
				sb.WriteByte('*')
			case c.NeighborMines == 0:
				sb.WriteByte('.')
			default:
				sb.WriteString(strconv.Itoa(c.NeighborMines))
			}
		}
	}
	return sb.String()
}
