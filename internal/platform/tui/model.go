package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

// boardTop is the view line where the board frame starts: the status bar
// and one blank line sit above it.
const boardTop = 2

// GameOptions configures a GameModel.
type GameOptions struct {
	Catalog       sweeper.Catalog
	Rules         sweeper.Rules
	Store         *storage.Store // Optional; nil disables result recording
	Logger        *log.Logger    // Optional; nil discards
	Config        core.RuntimeConfig
	Clock         func() time.Time // Optional; defaults to time.Now
	ScreenshotDir string           // Optional; defaults to ~/.sweeper/screenshots
	Embedded      bool             // Esc returns to the parent menu instead of quitting
}

// GameModel is the Bubble Tea model for one player's game.
// It is the single owner of the session; every key, mouse and tick message
// is applied to it on the Update path.
type GameModel struct {
	opts     GameOptions
	session  sweeper.Session
	gameID   string
	gen      int
	cursor   sweeper.Coord
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	message  string
	recorded bool

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game for opts.Config.Difficulty.
func NewGameModel(opts GameOptions) (GameModel, error) {
	if len(opts.Catalog) == 0 {
		opts.Catalog = sweeper.DefaultCatalog()
	}
	if opts.Rules.PowerUps == nil {
		opts.Rules = sweeper.DefaultRules()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	// Use time-based seed if not specified
	if opts.Config.Seed == 0 {
		opts.Config.Seed = opts.Clock().UnixNano()
	}
	key := opts.Config.Difficulty
	if key == "" {
		key = opts.Catalog[0].Key
	}

	session, err := sweeper.NewSession(opts.Catalog, key, opts.Rules, opts.Config.Seed)
	if err != nil {
		return GameModel{}, err
	}

	m := GameModel{
		opts:   opts,
		screen: core.NewScreen(1, 1),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  opts.Config.ScreenW,
		height: opts.Config.ScreenH,
	}
	m.help.Width = m.width
	m.start(session)
	return m, nil
}

// start installs a fresh session and invalidates pending ticks.
func (m *GameModel) start(s sweeper.Session) tea.Cmd {
	m.session = s
	m.gen = nextGen()
	m.gameID = uuid.NewString()
	m.recorded = false
	m.message = ""
	m.cursor = sweeper.C(s.Rows()/2, s.Cols()/2)
	m.opts.Logger.Debug("game started",
		"game", m.gameID,
		"difficulty", s.Difficulty().Key,
		"player", m.opts.Config.Player,
	)
	return tickCmd(m.gen)
}

func (m GameModel) nowMs() int64 {
	return m.opts.Clock().UnixMilli()
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.apply(m.keys.Action(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.opts.Config.ScreenW = msg.Width
		m.opts.Config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleTick advances the clock. Stale ticks are dropped and the chain
// stops once the game is over.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}
	m.session = m.session.Tick(m.nowMs())
	if m.session.Over() {
		return m, nil
	}
	return m, tickCmd(m.gen)
}

// handleMouse maps clicks on the board to reveal, flag and chord.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	at, ok := cellAt(m.session.Rows(), m.session.Cols(), msg.X, msg.Y-boardTop)
	if !ok {
		return m, nil
	}
	m.cursor = at

	switch msg.Button {
	case tea.MouseButtonLeft:
		return m.apply(core.ActionReveal)
	case tea.MouseButtonRight:
		return m.apply(core.ActionFlag)
	case tea.MouseButtonMiddle:
		return m.apply(core.ActionChord)
	}
	return m, nil
}

var powerUpActions = map[core.Action]sweeper.PowerUpID{
	core.ActionXRay:       sweeper.PowerUpXRay,
	core.ActionSafeClick:  sweeper.PowerUpSafeClick,
	core.ActionAutoFlag:   sweeper.PowerUpAutoFlag,
	core.ActionTimeFreeze: sweeper.PowerUpTimeFreeze,
}

// apply performs one action against the session.
func (m GameModel) apply(action core.Action) (tea.Model, tea.Cmd) {
	switch {
	case action == core.ActionNone:
		return m, nil
	case action.IsMove():
		dr, dc := action.Delta()
		m.cursor.Row = core.Clamp(m.cursor.Row+dr, 0, m.session.Rows()-1)
		m.cursor.Col = core.Clamp(m.cursor.Col+dc, 0, m.session.Cols()-1)
		return m, nil
	}

	if id, ok := powerUpActions[action]; ok {
		m.usePowerUp(id)
		return m, nil
	}

	var err error
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.opts.Embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case core.ActionReveal:
		charges := m.safeClickCharges()
		m.session, err = m.session.Reveal(m.cursor.Row, m.cursor.Col)
		if from, to, ok := m.session.LastRedirect(); ok && m.safeClickCharges() < charges {
			m.message = fmt.Sprintf("Safe click! Mine at %s, revealed %s instead", from, to)
		}

	case core.ActionFlag:
		m.session, err = m.session.ToggleFlag(m.cursor.Row, m.cursor.Col)

	case core.ActionChord:
		m.session, err = m.session.Chord(m.cursor.Row, m.cursor.Col)

	case core.ActionRestart:
		return m, m.start(m.session.Reset())

	case core.ActionNextDifficulty:
		next := m.opts.Catalog.Next(m.session.Difficulty().Key)
		s, resetErr := m.session.ResetWith(next)
		if resetErr != nil {
			m.opts.Logger.Error("cannot switch difficulty", "difficulty", next.Key, "error", resetErr)
			return m, nil
		}
		return m, m.start(s)

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	if err != nil {
		m.opts.Logger.Error("action failed", "action", action, "error", err)
	}
	m.recordResult()
	return m, nil
}

// safeClickCharges returns the safe-click uses left. A redirect spends one.
func (m GameModel) safeClickCharges() int {
	p, _ := m.session.PowerUp(sweeper.PowerUpSafeClick)
	return p.UsesRemaining
}

// usePowerUp activates a power-up and explains why it did nothing.
func (m *GameModel) usePowerUp(id sweeper.PowerUpID) {
	p, ok := m.session.PowerUp(id)
	if !ok {
		m.message = fmt.Sprintf("%s is not available", id)
		return
	}
	if m.session.Over() {
		return
	}

	now := m.nowMs()
	switch {
	case p.UsesRemaining == 0:
		m.message = fmt.Sprintf("%s: no uses left", p.Name)
		return
	case id == sweeper.PowerUpSafeClick && m.session.SafeClickArmed():
		m.message = "Safe click is already armed"
		return
	case p.CooldownRemaining(now) > 0:
		m.message = fmt.Sprintf("%s: ready in %ds", p.Name, p.CooldownRemaining(now))
		return
	}

	next, err := m.session.UsePowerUp(id, now)
	if err != nil {
		m.opts.Logger.Error("power-up failed", "power_up", id, "error", err)
		return
	}
	m.session = next
	m.message = fmt.Sprintf("%s activated", p.Name)
	m.opts.Logger.Debug("power-up used", "game", m.gameID, "power_up", id)
}

// recordResult stores the finished game once. Games that ended without a
// single reveal are not recorded.
func (m *GameModel) recordResult() {
	s := m.session
	if !s.Over() || m.recorded || s.Reveals() == 0 {
		return
	}
	m.recorded = true

	outcome := storage.OutcomeLost
	if s.Status() == sweeper.StatusWon {
		outcome = storage.OutcomeWon
	}
	m.opts.Logger.Info("game finished",
		"game", m.gameID,
		"difficulty", s.Difficulty().Key,
		"status", outcome,
		"elapsed", s.Elapsed(),
		"power_ups", s.PowerUpsUsed(),
		"player", m.opts.Config.Player,
	)

	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveResult(storage.Result{
		GameID:       m.gameID,
		Difficulty:   s.Difficulty().Key,
		Status:       outcome,
		ElapsedSecs:  s.Elapsed(),
		Rows:         s.Rows(),
		Cols:         s.Cols(),
		Mines:        s.MineCount(),
		PowerUpsUsed: s.PowerUpsUsed(),
		Player:       m.opts.Config.Player,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save result", "game", m.gameID, "error", err)
		m.message = "Result not saved"
	}
}

// saveScreenshot saves the current board as plain text.
func (m *GameModel) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.message = "Screenshot failed"
			return
		}
		dir = filepath.Join(home, ".sweeper", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "dir", dir, "error", err)
		m.message = "Screenshot failed"
		return
	}

	drawBoard(m.screen, m.session, m.cursor, false)
	timestamp := m.opts.Clock().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("sweeper_%s_%s.txt", m.session.Difficulty().Key, timestamp))
	content := fmt.Sprintf("%s  mines left: %d  time: %s  %s\ngame %s\n%s\n",
		m.session.Difficulty(), m.session.RemainingMines(), formatClock(m.session.Elapsed()),
		m.session.Status(), m.gameID, m.screen.String())

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "path", path, "error", err)
		m.message = "Screenshot failed"
		return
	}
	m.message = "Saved " + path
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	drawBoard(m.screen, m.session, m.cursor, true)

	lines := []string{
		renderStatusBar(m.session),
		"",
		RenderScreen(m.screen),
		renderPowerUps(m.session, m.nowMs()),
	}
	switch {
	case m.session.Over():
		lines = append(lines, renderOutcome(m.session))
	case m.message != "":
		lines = append(lines, messageStyle.Render(m.message))
	default:
		lines = append(lines, "")
	}
	lines = append(lines, helpStyle.Render(m.help.View(m.keys)))
	return strings.Join(lines, "\n")
}

// Session returns the current session.
func (m GameModel) Session() sweeper.Session {
	return m.session
}

// Cursor returns the cursor position.
func (m GameModel) Cursor() sweeper.Coord {
	return m.cursor
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Config returns the current runtime config (may have been updated by resize).
func (m GameModel) Config() core.RuntimeConfig {
	return m.opts.Config
}

// Run starts a standalone game.
func Run(opts GameOptions) error {
	model, err := NewGameModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}

// RunEmbedded runs a game started from the menu. It returns true if the
// player asked to go back to the menu and the possibly resized config.
func RunEmbedded(opts GameOptions) (backToMenu bool, cfg core.RuntimeConfig, err error) {
	opts.Embedded = true
	model, err := NewGameModel(opts)
	if err != nil {
		return false, opts.Config, err
	}

	p := tea.NewProgram(
		embeddedGame{model},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, opts.Config, err
	}
	g, ok := final.(embeddedGame)
	if !ok {
		return false, opts.Config, nil
	}
	return g.BackToMenu(), g.Config(), nil
}

// embeddedGame quits the program when the game asks to go back to the menu.
type embeddedGame struct {
	GameModel
}

func (e embeddedGame) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := e.GameModel.Update(msg)
	if g, ok := next.(GameModel); ok {
		e.GameModel = g
	}
	if e.BackToMenu() {
		return e, tea.Quit
	}
	return e, cmd
}
