package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

var tiny = sweeper.Difficulty{Key: "tiny", Name: "Tiny", Rows: 2, Cols: 2, Mines: 1}

func fixedClock() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

func newTestGame(t *testing.T, opts GameOptions) GameModel {
	t.Helper()
	if opts.Config.Seed == 0 {
		opts.Config.Seed = 42
	}
	if opts.Clock == nil {
		opts.Clock = fixedClock
	}
	m, err := NewGameModel(opts)
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}
	return m
}

func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	g, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return g, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(row, col int, button tea.MouseButton) tea.MouseMsg {
	area := cellRect(row, col)
	return tea.MouseMsg{X: area.X, Y: area.Y + boardTop, Button: button, Action: tea.MouseActionPress}
}

// findMine returns a mine position once mines are placed.
func findMine(t *testing.T, s sweeper.Session) sweeper.Coord {
	t.Helper()
	b := s.Board()
	for row := range b.Rows() {
		for col := range b.Cols() {
			if b.At(row, col).IsMine {
				return sweeper.C(row, col)
			}
		}
	}
	t.Fatal("no mine on board")
	return sweeper.Coord{}
}

func TestNewGameModelUsesConfiguredDifficulty(t *testing.T) {
	m := newTestGame(t, GameOptions{Config: core.RuntimeConfig{Difficulty: "medium"}})

	if got := m.Session().Difficulty().Key; got != "medium" {
		t.Errorf("difficulty = %q, want medium", got)
	}
	if got := m.Cursor(); got != sweeper.C(8, 8) {
		t.Errorf("cursor = %v, want board center", got)
	}

	_, err := NewGameModel(GameOptions{Config: core.RuntimeConfig{Difficulty: "nope"}})
	if err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestCursorMovementIsClamped(t *testing.T) {
	m := newTestGame(t, GameOptions{})

	for range 20 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if got := m.Cursor(); got != sweeper.C(0, 0) {
		t.Errorf("cursor = %v, want (0,0)", got)
	}

	m, _ = send(t, m, runes("l"))
	m, _ = send(t, m, runes("j"))
	if got := m.Cursor(); got != sweeper.C(1, 1) {
		t.Errorf("cursor = %v, want (1,1)", got)
	}
}

func TestKeyboardRevealAndFlag(t *testing.T) {
	m := newTestGame(t, GameOptions{})

	m, _ = send(t, m, runes("f"))
	c := m.Cursor()
	cell, _ := m.Session().Cell(c.Row, c.Col)
	if !cell.IsFlagged {
		t.Fatal("f should flag the cursor cell")
	}

	// Flagged cells cannot be revealed
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.Session().Reveals() != 0 {
		t.Error("reveal on a flag should be ignored")
	}

	m, _ = send(t, m, runes("f"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	cell, _ = m.Session().Cell(c.Row, c.Col)
	if !cell.IsRevealed || cell.IsMine {
		t.Errorf("first reveal should open a safe cell, got %+v", cell)
	}
}

func TestMouseActions(t *testing.T) {
	m := newTestGame(t, GameOptions{Config: core.RuntimeConfig{Difficulty: "medium"}})

	m, _ = send(t, m, click(0, 0, tea.MouseButtonLeft))
	if m.Cursor() != sweeper.C(0, 0) {
		t.Errorf("click should move cursor, got %v", m.Cursor())
	}
	cell, _ := m.Session().Cell(0, 0)
	if !cell.IsRevealed {
		t.Fatal("left click should reveal (0,0)")
	}

	hidden := sweeper.C(-1, -1)
	b := m.Session().Board()
	for row := b.Rows() - 1; row >= 0 && hidden.Row < 0; row-- {
		for col := b.Cols() - 1; col >= 0; col-- {
			if !b.At(row, col).IsRevealed {
				hidden = sweeper.C(row, col)
				break
			}
		}
	}
	m, _ = send(t, m, click(hidden.Row, hidden.Col, tea.MouseButtonRight))
	cell, _ = m.Session().Cell(hidden.Row, hidden.Col)
	if !cell.IsFlagged {
		t.Errorf("right click should flag %v", hidden)
	}

	// Clicks outside the board and releases are ignored
	before := m.Session().Snapshot()
	m, _ = send(t, m, tea.MouseMsg{X: 0, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m, _ = send(t, m, tea.MouseMsg{X: 3, Y: boardTop + 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if m.Session().Snapshot() != before {
		t.Error("clicks off the board should not change the session")
	}
}

func TestTickGeneration(t *testing.T) {
	m := newTestGame(t, GameOptions{})
	gen := m.gen

	m, cmd := send(t, m, TickMsg{Gen: gen})
	if m.Session().Elapsed() != 1 {
		t.Errorf("elapsed = %d, want 1", m.Session().Elapsed())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick while playing")
	}

	m, cmd = send(t, m, TickMsg{Gen: gen - 1})
	if m.Session().Elapsed() != 1 || cmd != nil {
		t.Error("stale tick should be dropped")
	}

	m, cmd = send(t, m, runes("r"))
	if m.gen == gen {
		t.Error("restart should start a new tick generation")
	}
	if cmd == nil {
		t.Error("restart should start a new tick chain")
	}
	m, _ = send(t, m, TickMsg{Gen: gen})
	if m.Session().Elapsed() != 0 {
		t.Error("tick from the previous game should be dropped")
	}
}

func TestTickStopsWhenGameOver(t *testing.T) {
	m := newTestGame(t, GameOptions{
		Catalog: sweeper.Catalog{tiny},
		Config:  core.RuntimeConfig{Difficulty: "tiny"},
	})
	m, _ = send(t, m, click(0, 0, tea.MouseButtonLeft))
	mine := findMine(t, m.Session())
	m, _ = send(t, m, click(mine.Row, mine.Col, tea.MouseButtonLeft))
	if m.Session().Status() != sweeper.StatusLost {
		t.Fatalf("status = %s, want lost", m.Session().Status())
	}

	elapsed := m.Session().Elapsed()
	m, cmd := send(t, m, TickMsg{Gen: m.gen})
	if cmd != nil {
		t.Error("no tick should be scheduled after the game ends")
	}
	if m.Session().Elapsed() != elapsed {
		t.Error("clock should not advance after the game ends")
	}
}

func TestResultRecordedOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestGame(t, GameOptions{
		Catalog: sweeper.Catalog{tiny},
		Store:   store,
		Config:  core.RuntimeConfig{Difficulty: "tiny", Player: "alice"},
	})

	m, _ = send(t, m, click(0, 0, tea.MouseButtonLeft))
	mine := findMine(t, m.Session())
	m, _ = send(t, m, click(mine.Row, mine.Col, tea.MouseButtonLeft))
	m, _ = send(t, m, click(mine.Row, mine.Col, tea.MouseButtonLeft))
	_, _ = send(t, m, runes("f"))

	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if r.Status != storage.OutcomeLost || r.Difficulty != "tiny" || r.Player != "alice" {
		t.Errorf("unexpected result %+v", r)
	}
	if r.GameID != m.gameID {
		t.Errorf("game id = %q, want %q", r.GameID, m.gameID)
	}
}

func TestNextDifficultyCyclesCatalog(t *testing.T) {
	m := newTestGame(t, GameOptions{})

	want := []string{"medium", "hard", "easy"}
	for _, key := range want {
		m, _ = send(t, m, runes("d"))
		if got := m.Session().Difficulty().Key; got != key {
			t.Fatalf("difficulty = %q, want %q", got, key)
		}
	}
}

func TestPowerUpMessages(t *testing.T) {
	m := newTestGame(t, GameOptions{Config: core.RuntimeConfig{Difficulty: "medium"}})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = send(t, m, runes("1"))
	if !m.Session().XRayActive() {
		t.Fatal("1 should activate x-ray")
	}
	m, _ = send(t, m, runes("1"))
	if !strings.Contains(m.message, "ready in") {
		t.Errorf("message = %q, want cooldown notice", m.message)
	}

	m, _ = send(t, m, runes("2"))
	m, _ = send(t, m, runes("2"))
	if !strings.Contains(m.message, "already armed") {
		t.Errorf("message = %q, want armed notice", m.message)
	}
}

func TestQuitAndBack(t *testing.T) {
	m := newTestGame(t, GameOptions{})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsQuitting() || cmd == nil {
		t.Error("esc should quit a standalone game")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}

	m = newTestGame(t, GameOptions{Embedded: true})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || m.IsQuitting() {
		t.Error("esc should return to the menu when embedded")
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestGame(t, GameOptions{ScreenshotDir: dir})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	path := filepath.Join(dir, "sweeper_easy_20260102_030405.txt")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("screenshot not written: %v", err)
	}
	if !strings.Contains(string(data), "Easy 9x9 (10 mines)") {
		t.Errorf("screenshot missing header:\n%s", data)
	}
	if !strings.Contains(string(data), "game "+m.gameID) {
		t.Errorf("screenshot missing game id:\n%s", data)
	}
	if !strings.Contains(m.message, path) {
		t.Errorf("message = %q, want saved path", m.message)
	}
}

func TestViewLayout(t *testing.T) {
	m := newTestGame(t, GameOptions{})
	lines := strings.Split(m.View(), "\n")

	// Status bar, blank line, board frame of rows+2 lines
	if len(lines) < boardTop+11 {
		t.Fatalf("view has %d lines", len(lines))
	}
	if lines[1] != "" {
		t.Errorf("line 1 = %q, want blank", lines[1])
	}
	if !strings.Contains(lines[boardTop], "┌") {
		t.Errorf("board should start at line %d, got %q", boardTop, lines[boardTop])
	}
}

func TestSafeClickRedirectMessage(t *testing.T) {
	m := newTestGame(t, GameOptions{Config: core.RuntimeConfig{Difficulty: "medium"}})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, runes("2"))

	mine := findMine(t, m.Session())
	m, _ = send(t, m, click(mine.Row, mine.Col, tea.MouseButtonLeft))

	if m.Session().Status() == sweeper.StatusLost {
		t.Fatal("armed safe click should prevent the loss")
	}
	if !strings.HasPrefix(m.message, "Safe click!") {
		t.Errorf("message = %q, want redirect notice", m.message)
	}
}
