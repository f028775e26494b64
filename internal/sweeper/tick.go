package sweeper

// Tick advances the game clock by one second at nowMs and expires effects.
//
// A frozen clock does not advance until nowMs reaches the freeze end; the
// tick that reaches it clears the freeze and counts normally. Ticks after
// the game ends are ignored.
func (s Session) Tick(nowMs int64) Session {
	if s.status != StatusPlaying {
		return s
	}

	frozen := s.timeFrozen && nowMs < s.freezeEndsAtMs

	if s.xrayActive && nowMs >= s.xrayEndsAtMs {
		s.xrayActive = false
	}
	if s.timeFrozen && nowMs >= s.freezeEndsAtMs {
		s.timeFrozen = false
	}
	if !frozen {
		s.elapsed++
	}
	return s
}
