package sweeper

import (
	"errors"
	"testing"
)

func TestNewSession(t *testing.T) {
	s := newEasy(t, 1)

	if s.Status() != StatusPlaying || s.Over() {
		t.Errorf("status = %s, want playing", s.Status())
	}
	if s.Rows() != 9 || s.Cols() != 9 || s.MineCount() != 10 {
		t.Errorf("got %dx%d/%d, want 9x9/10", s.Rows(), s.Cols(), s.MineCount())
	}
	if s.MinesPlaced() || s.Board().CountMines() != 0 {
		t.Error("mines placed before first reveal")
	}
	if s.RemainingMines() != 10 || s.Elapsed() != 0 {
		t.Errorf("remaining=%d elapsed=%d", s.RemainingMines(), s.Elapsed())
	}

	ps := s.PowerUps()
	if len(ps) != len(PowerUpIDs) {
		t.Fatalf("got %d power-ups, want %d", len(ps), len(PowerUpIDs))
	}
	for i, p := range ps {
		if p.ID != PowerUpIDs[i] || p.UsesRemaining != p.MaxUses || p.Used {
			t.Errorf("power-up %d = %+v", i, p)
		}
	}
}

func TestNewSessionErrors(t *testing.T) {
	if _, err := NewSession(DefaultCatalog(), "insane", DefaultRules(), 1); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("unknown key: err = %v", err)
	}

	bad := []Difficulty{
		{Key: "a", Rows: 0, Cols: 5, Mines: 1},
		{Key: "b", Rows: 5, Cols: 5, Mines: 25},
		{Key: "c", Rows: 5, Cols: 5, Mines: -1},
	}
	for _, d := range bad {
		if _, err := NewSessionFor(d, DefaultRules(), 1); !errors.Is(err, ErrInvalidDifficulty) {
			t.Errorf("%s: err = %v, want ErrInvalidDifficulty", d.Key, err)
		}
	}
}

func TestRulesDurationsDefault(t *testing.T) {
	s, err := NewSessionFor(Easy, Rules{PowerUps: DefaultPowerUps()}, 1)
	if err != nil {
		t.Fatal(err)
	}
	s = mustUse(t, s, PowerUpXRay, 0)
	if s.XRayEndsAtMs() != DefaultXRayDuration.Milliseconds() {
		t.Errorf("x-ray ends at %d, want %d", s.XRayEndsAtMs(), DefaultXRayDuration.Milliseconds())
	}
}

func TestSessionIndependence(t *testing.T) {
	s := mustReveal(t, newEasy(t, 5), 4, 4)
	a := mustFlag(t, s, 0, 0)
	b := mustUse(t, s, PowerUpXRay, 0)

	if s.FlaggedCount() != 0 || b.FlaggedCount() != 0 {
		t.Error("flag leaked between sessions")
	}
	if p, _ := a.PowerUp(PowerUpXRay); p.UsesRemaining != p.MaxUses {
		t.Error("power-up use leaked between sessions")
	}

	ps := s.PowerUps()
	ps[0].UsesRemaining = 0
	if p, _ := s.PowerUp(ps[0].ID); p.UsesRemaining == 0 {
		t.Error("PowerUps returned shared storage")
	}
}

func TestResetKeepsDifficulty(t *testing.T) {
	s := mustReveal(t, newEasy(t, 8), 0, 0)
	s = mustUse(t, s, PowerUpXRay, 0)

	r := s.Reset()
	if r.Difficulty() != Easy || r.MinesPlaced() || r.XRayActive() || r.Elapsed() != 0 {
		t.Errorf("reset did not start fresh: %+v", r.Snapshot())
	}
	if p, _ := r.PowerUp(PowerUpXRay); p.UsesRemaining != p.MaxUses {
		t.Error("reset did not restore power-ups")
	}

	m, err := s.ResetWith(Medium)
	if err != nil {
		t.Fatal(err)
	}
	if m.Rows() != 16 || m.MineCount() != 40 {
		t.Errorf("ResetWith(Medium) = %dx%d/%d", m.Rows(), m.Cols(), m.MineCount())
	}
}

func TestDeterminism(t *testing.T) {
	play := func() Snapshot {
		s := newEasy(t, 12345)
		s = mustReveal(t, s, 4, 4)
		s = mustUse(t, s, PowerUpAutoFlag, 100)
		s = mustUse(t, s, PowerUpSafeClick, 200)
		for i := range 3 {
			s = s.Tick(int64(i+1) * 1000)
		}
		for _, c := range s.board.Cells() {
			if c.Hidden() {
				s = mustReveal(t, s, c.Row, c.Col)
				if s.Over() {
					break
				}
			}
		}
		return s.Snapshot()
	}

	s1, s2 := play(), play()
	if s1.Hash() != s2.Hash() {
		t.Errorf("determinism failed: hashes differ. Run1=%d, Run2=%d", s1.Hash(), s2.Hash())
	}
	if s1 != s2 {
		t.Error("determinism failed: snapshots differ")
	}
}

func TestCatalog(t *testing.T) {
	cat := DefaultCatalog()
	if got := cat.Keys(); len(got) != 3 || got[0] != "easy" || got[2] != "hard" {
		t.Errorf("Keys() = %v", got)
	}
	if cat.Next("hard").Key != "easy" || cat.Next("easy").Key != "medium" {
		t.Error("Next does not cycle")
	}

	if _, err := NewCatalog(Easy, Easy); err == nil {
		t.Error("duplicate keys accepted")
	}
	if _, err := NewCatalog(); err == nil {
		t.Error("empty catalog accepted")
	}
}

func TestResetBoardsAreIndependent(t *testing.T) {
	shared, total := 0, 0
	for seed := int64(1); seed <= 20; seed++ {
		s, err := NewSessionFor(Hard, DefaultRules(), seed)
		if err != nil {
			t.Fatal(err)
		}
		a := mustReveal(t, s, 8, 15)
		b := mustReveal(t, s.Reset().Reset(), 8, 15)

		for _, c := range a.board.Cells() {
			if !c.IsMine {
				continue
			}
			total++
			if b.board.At(c.Row, c.Col).IsMine {
				shared++
			}
		}
	}

	// Independent Hard boards share about a fifth of their mines
	if frac := float64(shared) / float64(total); frac > 0.4 {
		t.Errorf("reset boards share %d/%d mines (%.0f%%)", shared, total, frac*100)
	}
}

func TestChildSeedStartsNewStream(t *testing.T) {
	parent := NewRNG(7)
	child := NewRNG(int64(parent.Next())) //#nosec G115 -- test reinterprets bits
	for range 8 {
		if child.Next() == parent.Next() {
			t.Fatal("generator seeded from a parent state replays the parent stream")
		}
	}
}
