// Package sweeper implements the minesweeper rules engine: board generation,
// first-click-safe mine placement, flood-fill reveal, flag bookkeeping,
// win/loss detection and timed power-ups.
//
// Every operation is a pure transition on a Session value. A transition never
// mutates the Session it was called on; it returns a new Session that owns its
// own board. The package performs no I/O and never reads the wall clock:
// callers pass the current time in milliseconds where a transition needs it.
package sweeper

import "fmt"

// Difficulty describes the board dimensions and mine count of a game.
type Difficulty struct {
	Key   string // Lookup key, e.g. "easy"
	Name  string // Display name, e.g. "Easy"
	Rows  int
	Cols  int
	Mines int
}

// Built-in presets.
var (
	Easy   = Difficulty{Key: "easy", Name: "Easy", Rows: 9, Cols: 9, Mines: 10}
	Medium = Difficulty{Key: "medium", Name: "Medium", Rows: 16, Cols: 16, Mines: 40}
	Hard   = Difficulty{Key: "hard", Name: "Hard", Rows: 16, Cols: 30, Mines: 99}
)

// Cells returns the number of cells on a board of this difficulty.
func (d Difficulty) Cells() int {
	return d.Rows * d.Cols
}

// SafeCells returns the number of cells that must be revealed to win.
func (d Difficulty) SafeCells() int {
	return d.Cells() - d.Mines
}

// Validate checks that the board has positive dimensions and leaves at least
// one safe cell.
func (d Difficulty) Validate() error {
	if d.Rows < 1 || d.Cols < 1 {
		return fmt.Errorf("%w: %q has %dx%d board", ErrInvalidDifficulty, d.Key, d.Rows, d.Cols)
	}
	if d.Mines < 0 || d.Mines >= d.Cells() {
		return fmt.Errorf("%w: %q has %d mines on %d cells", ErrInvalidDifficulty, d.Key, d.Mines, d.Cells())
	}
	return nil
}

// String returns a short description like "Easy 9x9 (10 mines)".
func (d Difficulty) String() string {
	return fmt.Sprintf("%s %dx%d (%d mines)", d.Name, d.Rows, d.Cols, d.Mines)
}

// Catalog is an ordered set of difficulties addressed by key.
type Catalog []Difficulty

// DefaultCatalog returns the built-in presets in increasing difficulty.
func DefaultCatalog() Catalog {
	return Catalog{Easy, Medium, Hard}
}

// NewCatalog builds a catalog, rejecting invalid entries and duplicate keys.
func NewCatalog(ds ...Difficulty) (Catalog, error) {
	if len(ds) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrInvalidDifficulty)
	}
	seen := make(map[string]bool, len(ds))
	c := make(Catalog, 0, len(ds))
	for _, d := range ds {
		if d.Key == "" {
			return nil, fmt.Errorf("%w: empty key", ErrInvalidDifficulty)
		}
		if seen[d.Key] {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidDifficulty, d.Key)
		}
		if err := d.Validate(); err != nil {
			return nil, err
		}
		seen[d.Key] = true
		c = append(c, d)
	}
	return c, nil
}

// Lookup returns the difficulty registered under key.
func (c Catalog) Lookup(key string) (Difficulty, error) {
	for _, d := range c {
		if d.Key == key {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, key)
}

// Keys returns all keys in catalog order.
func (c Catalog) Keys() []string {
	keys := make([]string, len(c))
	for i, d := range c {
		keys[i] = d.Key
	}
	return keys
}

// Next returns the difficulty after key, wrapping around.
// An unknown key yields the first entry.
func (c Catalog) Next(key string) Difficulty {
	if len(c) == 0 {
		return Easy
	}
	for i, d := range c {
		if d.Key == key {
			return c[(i+1)%len(c)]
		}
	}
	return c[0]
}
