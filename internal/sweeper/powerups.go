package sweeper

import "fmt"

// PowerUpID identifies a power-up kind.
type PowerUpID string

const (
	PowerUpXRay       PowerUpID = "xray"
	PowerUpSafeClick  PowerUpID = "safeclick"
	PowerUpAutoFlag   PowerUpID = "autoflag"
	PowerUpTimeFreeze PowerUpID = "timefreeze"
)

// PowerUpIDs lists every known power-up in display order.
var PowerUpIDs = []PowerUpID{PowerUpXRay, PowerUpSafeClick, PowerUpAutoFlag, PowerUpTimeFreeze}

// Valid returns true if id names a known power-up.
func (id PowerUpID) Valid() bool {
	switch id {
	case PowerUpXRay, PowerUpSafeClick, PowerUpAutoFlag, PowerUpTimeFreeze:
		return true
	}
	return false
}

// PowerUp is one inventory entry.
type PowerUp struct {
	ID              PowerUpID
	Name            string
	Description     string
	UsesRemaining   int
	MaxUses         int
	CooldownSeconds int
	LastUsedAtMs    int64
	Used            bool // LastUsedAtMs is meaningful only once set
}

// CooldownRemaining returns the whole seconds (rounded up) until the
// power-up is off cooldown at nowMs. Zero means ready.
func (p PowerUp) CooldownRemaining(nowMs int64) int {
	if !p.Used || p.CooldownSeconds <= 0 {
		return 0
	}
	left := int64(p.CooldownSeconds)*1000 - (nowMs - p.LastUsedAtMs)
	if left <= 0 {
		return 0
	}
	return int((left + 999) / 1000)
}

// Usable returns true if the power-up has charges and is off cooldown.
func (p PowerUp) Usable(nowMs int64) bool {
	return p.UsesRemaining > 0 && p.CooldownRemaining(nowMs) == 0
}

// DefaultPowerUps returns the standard inventory.
func DefaultPowerUps() []PowerUp {
	return []PowerUp{
		{
			ID:              PowerUpXRay,
			Name:            "X-Ray",
			Description:     "Show every mine for a few seconds",
			MaxUses:         2,
			UsesRemaining:   2,
			CooldownSeconds: 30,
		},
		{
			ID:              PowerUpSafeClick,
			Name:            "Safe Click",
			Description:     "Your next mine click reveals a safe cell instead",
			MaxUses:         3,
			UsesRemaining:   3,
			CooldownSeconds: 10,
		},
		{
			ID:              PowerUpAutoFlag,
			Name:            "Auto Flag",
			Description:     "Flag every mine the numbers already prove",
			MaxUses:         3,
			UsesRemaining:   3,
			CooldownSeconds: 15,
		},
		{
			ID:              PowerUpTimeFreeze,
			Name:            "Time Freeze",
			Description:     "Stop the clock for a few seconds",
			MaxUses:         2,
			UsesRemaining:   2,
			CooldownSeconds: 45,
		},
	}
}

// UsePowerUp activates the power-up id at nowMs.
//
// It is a no-op when the game is over, the power-up has no charges, is
// cooling down, or (for safe-click) is already armed. Safe-click spends its
// charge only when it actually redirects a reveal.
func (s Session) UsePowerUp(id PowerUpID, nowMs int64) (Session, error) {
	i := s.powerUpIndex(id)
	if i < 0 {
		return s, fmt.Errorf("use %q: %w", id, ErrUnknownPowerUp)
	}
	if s.status != StatusPlaying || !s.powerUps[i].Usable(nowMs) {
		return s, nil
	}
	if id == PowerUpSafeClick && s.safeClickArmed {
		return s, nil
	}

	next := s.fork()
	p := &next.powerUps[i]
	p.LastUsedAtMs = nowMs
	p.Used = true

	switch id {
	case PowerUpXRay:
		p.UsesRemaining--
		next.xrayActive = true
		next.xrayEndsAtMs = nowMs + s.rules.XRayDuration.Milliseconds()
	case PowerUpTimeFreeze:
		p.UsesRemaining--
		next.timeFrozen = true
		next.freezeEndsAtMs = nowMs + s.rules.FreezeDuration.Milliseconds()
	case PowerUpSafeClick:
		next.safeClickArmed = true
	case PowerUpAutoFlag:
		p.UsesRemaining--
		next.autoFlag(s.board)
	}

	return next, nil
}

// autoFlag flags every hidden neighbor of each revealed numbered cell whose
// count is fully explained by flagged plus hidden neighbors. Conditions are
// read from src so one activation is a single pass; flagging only moves
// cells from hidden to flagged, so the condition never changes mid-pass.
func (s *Session) autoFlag(src Board) {
	for _, c := range src.cells {
		if !c.IsRevealed || c.IsMine || c.NeighborMines == 0 {
			continue
		}
		flagged, hidden := src.neighborInfo(c.Row, c.Col)
		if len(hidden) == 0 || flagged+len(hidden) != c.NeighborMines {
			continue
		}
		for _, h := range hidden {
			s.board.cell(h.Row, h.Col).IsFlagged = true
		}
	}
	s.flagged = s.board.CountFlagged()
}

// pickSafeCell returns a uniformly random cell that is neither a mine,
// revealed, nor flagged.
func (s *Session) pickSafeCell() (Coord, bool) {
	var candidates []Coord
	for _, c := range s.board.cells {
		if !c.IsMine && !c.IsRevealed && !c.IsFlagged {
			candidates = append(candidates, C(c.Row, c.Col))
		}
	}
	if len(candidates) == 0 {
		return Coord{}, false
	}
	return candidates[s.rng.Intn(len(candidates))], true
}

// consumeCharge spends one use of id. The caller checked availability.
func (s *Session) consumeCharge(id PowerUpID) {
	if i := s.powerUpIndex(id); i >= 0 && s.powerUps[i].UsesRemaining > 0 {
		s.powerUps[i].UsesRemaining--
	}
}
