package sweeper

import (
	"fmt"
	"slices"
	"time"
)

// Status is the lifecycle state of a session.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Default effect windows.
const (
	DefaultXRayDuration   = 5 * time.Second
	DefaultFreezeDuration = 10 * time.Second
)

// Rules configures the power-up inventory and effect windows of a session.
type Rules struct {
	PowerUps       []PowerUp     // Inventory template; UsesRemaining is reset to MaxUses
	XRayDuration   time.Duration // <= 0 means DefaultXRayDuration
	FreezeDuration time.Duration // <= 0 means DefaultFreezeDuration
}

// DefaultRules returns the standard power-up inventory and effect windows.
func DefaultRules() Rules {
	return Rules{
		PowerUps:       DefaultPowerUps(),
		XRayDuration:   DefaultXRayDuration,
		FreezeDuration: DefaultFreezeDuration,
	}
}

func (r Rules) normalized() Rules {
	if r.XRayDuration <= 0 {
		r.XRayDuration = DefaultXRayDuration
	}
	if r.FreezeDuration <= 0 {
		r.FreezeDuration = DefaultFreezeDuration
	}
	r.PowerUps = slices.Clone(r.PowerUps)
	return r
}

// Session is the authoritative state of one game.
//
// A Session is a value. Transitions (Reveal, ToggleFlag, Chord, UsePowerUp,
// Tick, Reset) return a new Session and leave the receiver untouched, so a
// caller can keep any number of snapshots without aliasing.
type Session struct {
	board      Board
	difficulty Difficulty
	rules      Rules
	status     Status

	elapsed     int // Whole seconds
	flagged     int
	minesPlaced bool
	reveals     int // Accepted reveal actions

	powerUps       []PowerUp
	xrayActive     bool
	xrayEndsAtMs   int64
	timeFrozen     bool
	freezeEndsAtMs int64
	safeClickArmed bool

	detonated    Coord
	hasDetonated bool
	redirectFrom Coord
	redirectTo   Coord
	redirected   bool

	rng RNG
}

// NewSession creates a session for the catalog entry registered under key.
func NewSession(catalog Catalog, key string, rules Rules, seed int64) (Session, error) {
	d, err := catalog.Lookup(key)
	if err != nil {
		return Session{}, err
	}
	return NewSessionFor(d, rules, seed)
}

// NewSessionFor creates a session for an explicit difficulty.
// Mines are not placed until the first reveal.
func NewSessionFor(d Difficulty, rules Rules, seed int64) (Session, error) {
	if err := d.Validate(); err != nil {
		return Session{}, err
	}

	rules = rules.normalized()
	inventory := slices.Clone(rules.PowerUps)
	for i := range inventory {
		inventory[i].UsesRemaining = inventory[i].MaxUses
		inventory[i].LastUsedAtMs = 0
		inventory[i].Used = false
	}

	return Session{
		board:      NewBoard(d),
		difficulty: d,
		rules:      rules,
		status:     StatusPlaying,
		powerUps:   inventory,
		rng:        NewRNG(seed),
	}, nil
}

// Reset starts a fresh game with the same difficulty and rules.
// The new board is seeded from this session's generator.
func (s Session) Reset() Session {
	next, err := s.ResetWith(s.difficulty)
	if err != nil {
		// The current difficulty was validated when s was created.
		panic(fmt.Sprintf("sweeper: reset with validated difficulty failed: %v", err))
	}
	return next
}

// ResetWith starts a fresh game with a different difficulty.
func (s Session) ResetWith(d Difficulty) (Session, error) {
	r := s.rng
	seed := int64(r.Next()) //#nosec G115 -- reinterpreting bits as a seed
	return NewSessionFor(d, s.rules, seed)
}

// fork returns a copy of s that owns its own board and inventory.
// Every transition that mutates cells or power-ups must fork first.
func (s Session) fork() Session {
	s.board = s.board.Clone()
	s.powerUps = slices.Clone(s.powerUps)
	return s
}

func (s Session) checkBounds(op string, row, col int) error {
	if !s.board.InBounds(row, col) {
		return fmt.Errorf("%s (%d,%d) on %dx%d board: %w",
			op, row, col, s.board.rows, s.board.cols, ErrOutOfBounds)
	}
	return nil
}

// Status returns the current status.
func (s Session) Status() Status {
	return s.status
}

// Over returns true once the game is won or lost.
func (s Session) Over() bool {
	return s.status != StatusPlaying
}

// Difficulty returns the difficulty of this game.
func (s Session) Difficulty() Difficulty {
	return s.difficulty
}

// Rules returns the rules this session was created with.
func (s Session) Rules() Rules {
	r := s.rules
	r.PowerUps = slices.Clone(r.PowerUps)
	return r
}

// Rows returns the board height.
func (s Session) Rows() int {
	return s.board.rows
}

// Cols returns the board width.
func (s Session) Cols() int {
	return s.board.cols
}

// Board returns a copy of the board.
func (s Session) Board() Board {
	return s.board.Clone()
}

// Cell returns the cell at (row, col).
func (s Session) Cell(row, col int) (Cell, error) {
	if err := s.checkBounds("cell", row, col); err != nil {
		return Cell{}, err
	}
	return s.board.At(row, col), nil
}

// Elapsed returns the game time in whole seconds.
func (s Session) Elapsed() int {
	return s.elapsed
}

// MineCount returns the number of mines this game has (or will have).
func (s Session) MineCount() int {
	return s.difficulty.Mines
}

// FlaggedCount returns the number of flagged cells.
func (s Session) FlaggedCount() int {
	return s.flagged
}

// RemainingMines returns MineCount - FlaggedCount. It goes negative when
// the player over-flags.
func (s Session) RemainingMines() int {
	return s.difficulty.Mines - s.flagged
}

// RevealedCount returns the number of revealed cells.
func (s Session) RevealedCount() int {
	return s.board.CountRevealed()
}

// MinesPlaced returns true once the first reveal has placed the mines.
func (s Session) MinesPlaced() bool {
	return s.minesPlaced
}

// Reveals returns how many reveal actions changed the board.
func (s Session) Reveals() int {
	return s.reveals
}

// XRayActive returns true while the x-ray window is open.
func (s Session) XRayActive() bool {
	return s.xrayActive
}

// XRayEndsAtMs returns when the current x-ray window closes.
func (s Session) XRayEndsAtMs() int64 {
	return s.xrayEndsAtMs
}

// TimeFrozen returns true while the timer is frozen.
func (s Session) TimeFrozen() bool {
	return s.timeFrozen
}

// FreezeEndsAtMs returns when the current freeze window closes.
func (s Session) FreezeEndsAtMs() int64 {
	return s.freezeEndsAtMs
}

// SafeClickArmed returns true if the next mine reveal will be redirected.
func (s Session) SafeClickArmed() bool {
	return s.safeClickArmed
}

// Detonated returns the mine that ended the game, if any.
func (s Session) Detonated() (Coord, bool) {
	return s.detonated, s.hasDetonated
}

// LastRedirect returns the most recent safe-click redirect: the mine the
// player clicked and the cell revealed instead.
func (s Session) LastRedirect() (from, to Coord, ok bool) {
	return s.redirectFrom, s.redirectTo, s.redirected
}

// PowerUps returns a copy of the inventory in configured order.
func (s Session) PowerUps() []PowerUp {
	return slices.Clone(s.powerUps)
}

// PowerUp returns the inventory entry for id.
func (s Session) PowerUp(id PowerUpID) (PowerUp, bool) {
	i := s.powerUpIndex(id)
	if i < 0 {
		return PowerUp{}, false
	}
	return s.powerUps[i], true
}

// PowerUpsUsed returns the total number of charges spent.
func (s Session) PowerUpsUsed() int {
	n := 0
	for _, p := range s.powerUps {
		n += p.MaxUses - p.UsesRemaining
	}
	return n
}

func (s Session) powerUpIndex(id PowerUpID) int {
	return slices.IndexFunc(s.powerUps, func(p PowerUp) bool { return p.ID == id })
}
