package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

func TestMenuSelectsDifficulty(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Difficulty = "medium"
	m := NewMenuModel(sweeper.DefaultCatalog(), nil, cfg)

	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want configured difficulty", m.cursor)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Selected() == nil || m.Selected().Difficulty.Key != "hard" {
		t.Fatalf("selected = %+v, want hard", m.Selected())
	}
	if m.Config().Difficulty != "hard" {
		t.Errorf("config difficulty = %q", m.Config().Difficulty)
	}
	if cmd == nil {
		t.Error("selecting should exit the menu")
	}
}

func TestMenuCursorWraps(t *testing.T) {
	m := NewMenuModel(sweeper.DefaultCatalog(), nil, core.DefaultConfig())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := next.(MenuModel).cursor; got != 2 {
		t.Errorf("cursor = %d, want wrap to last", got)
	}
}

func TestMenuShowsStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Result{
		{Difficulty: "easy", Status: storage.OutcomeWon, ElapsedSecs: 75, Rows: 9, Cols: 9, Mines: 10},
		{Difficulty: "easy", Status: storage.OutcomeLost, ElapsedSecs: 12, Rows: 9, Cols: 9, Mines: 10},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	m := NewMenuModel(sweeper.DefaultCatalog(), store, core.DefaultConfig())
	view := m.View()
	if !strings.Contains(view, "best 1:15  won 1/2") {
		t.Errorf("menu should show easy stats:\n%s", view)
	}
	if !strings.Contains(view, "no games yet") {
		t.Errorf("menu should mark unplayed difficulties:\n%s", view)
	}
}

func TestScoreboardTabs(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveResult(storage.Result{
		Difficulty: "medium", Status: storage.OutcomeWon, ElapsedSecs: 90,
		Rows: 16, Cols: 16, Mines: 40, Player: "bob",
	}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	m := NewScoreboardModel(sweeper.DefaultCatalog(), store, 100, 30)
	if len(m.results) != 0 {
		t.Errorf("easy should have no results, got %d", len(m.results))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.tab != 1 || len(m.results) != 1 {
		t.Fatalf("tab = %d results = %d, want medium with one result", m.tab, len(m.results))
	}
	if !strings.Contains(m.View(), "win rate 100%") {
		t.Errorf("view should show stats:\n%s", m.View())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := next.(ScoreboardModel).tab; got != 2 {
		t.Errorf("tab = %d, want wrap to hard", got)
	}

	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestSessionModelFlow(t *testing.T) {
	m := NewSessionModel(GameOptions{Config: core.RuntimeConfig{Difficulty: "easy", Player: "carol"}})

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %d, want game", m.screen)
	}
	if !m.game.opts.Embedded || m.game.opts.Config.Player != "carol" {
		t.Error("game should be embedded and keep the player name")
	}

	step(runes("d"))
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %d, want menu", m.screen)
	}
	if m.menu.cursor != 1 {
		t.Errorf("menu should preselect the last played difficulty, cursor = %d", m.menu.cursor)
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %d, want scores", m.screen)
	}
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %d, want menu", m.screen)
	}

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Error("q should quit the session")
	}
}
