package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

// palette maps core.Color to terminal colors.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
}

// cellStyle returns the lipgloss style for a foreground/background pair.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := palette[fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := palette[bg]; ok {
		style = style.Background(c)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != first.Color || cell.Bg != first.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if first.Color == core.ColorDefault && first.Bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(cellStyle(first.Color, first.Bg).Render(run.String()))
		}
	}
	return sb.String()
}

// Board layout: a one-character frame around cells that are cellWidth
// columns wide, glyph first.
const (
	cellWidth  = 2
	boardFrame = 1
)

// Board glyphs.
const (
	glyphHidden    = '■'
	glyphFlag      = '⚑'
	glyphEmpty     = '·'
	glyphMine      = '*'
	glyphWrongFlag = 'x'
)

// boardSize returns the screen size of a rows×cols board including its frame.
func boardSize(rows, cols int) (w, h int) {
	return cols*cellWidth + 2*boardFrame, rows + 2*boardFrame
}

// cellRect returns the screen area of cell (row, col) inside the board frame.
func cellRect(row, col int) core.Rect {
	return core.NewRect(boardFrame+col*cellWidth, boardFrame+row, cellWidth, 1)
}

// cellAt maps a board-relative screen position to a cell.
func cellAt(rows, cols, x, y int) (sweeper.Coord, bool) {
	area := core.NewRect(boardFrame, boardFrame, cols*cellWidth, rows)
	if !area.Contains(x, y) {
		return sweeper.Coord{}, false
	}
	return sweeper.C(y-boardFrame, (x-boardFrame)/cellWidth), true
}

// cellGlyph returns how a cell is drawn. During x-ray hidden mines are shown.
func cellGlyph(c sweeper.Cell, over, xray bool) (rune, core.Color) {
	switch {
	case c.IsFlagged && over && !c.IsMine:
		return glyphWrongFlag, core.ColorBrightRed
	case c.IsFlagged:
		return glyphFlag, core.ColorBrightRed
	case c.IsRevealed && c.IsMine:
		return glyphMine, core.ColorOrange
	case c.IsRevealed && c.NeighborMines == 0:
		return glyphEmpty, core.ColorGray
	case c.IsRevealed:
		return rune('0' + c.NeighborMines), core.NumberColor(c.NeighborMines)
	case xray && c.IsMine:
		return glyphMine, core.ColorBrightMagenta
	default:
		return glyphHidden, core.ColorGray
	}
}

// drawBoard renders the session board with a frame and the cursor into s,
// resizing s to fit.
func drawBoard(s *core.Screen, session sweeper.Session, cursor sweeper.Coord, showCursor bool) {
	rows, cols := session.Rows(), session.Cols()
	w, h := boardSize(rows, cols)
	s.Resize(w, h)
	s.Clear()

	frame := core.ColorGray
	switch session.Status() {
	case sweeper.StatusWon:
		frame = core.ColorBrightGreen
	case sweeper.StatusLost:
		frame = core.ColorBrightRed
	}
	s.DrawBox(s.Bounds(), frame)

	board := session.Board()
	over := session.Over()
	xray := session.XRayActive()
	for row := range rows {
		for col := range cols {
			r, color := cellGlyph(board.At(row, col), over, xray)
			area := cellRect(row, col)
			s.SetColored(area.X, area.Y, r, color)
		}
	}

	if at, ok := session.Detonated(); ok {
		s.Highlight(cellRect(at.Row, at.Col), core.ColorRed)
	}
	if showCursor && !over {
		s.Highlight(cellRect(cursor.Row, cursor.Col), core.ColorBlue)
	}
}

// HUD styles.
var (
	labelStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Foreground(lipgloss.Color("235"))
	valueStyle = lipgloss.NewStyle().Padding(0, 1).
			Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255"))
	readyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	coolingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
	wonStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	lostStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Italic(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func label(name, value string, bg string) string {
	return lipgloss.JoinHorizontal(lipgloss.Left,
		labelStyle.Background(lipgloss.Color(bg)).Render(name),
		valueStyle.Render(value),
	)
}

// formatClock renders seconds as m:ss.
func formatClock(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// renderStatusBar renders the single-line header above the board.
func renderStatusBar(s sweeper.Session) string {
	state := "PLAYING"
	switch s.Status() {
	case sweeper.StatusWon:
		state = "WON"
	case sweeper.StatusLost:
		state = "LOST"
	}
	clock := formatClock(s.Elapsed())
	if s.TimeFrozen() {
		clock += " ❄"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		label(s.Difficulty().Name, fmt.Sprintf("%dx%d", s.Rows(), s.Cols()), "212"),
		" ",
		label("MINES", fmt.Sprintf("%d", s.RemainingMines()), "81"),
		" ",
		label("TIME", clock, "62"),
		" ",
		label("STATE", state, "229"),
	)
}

// renderPowerUps renders the inventory bar with readiness at nowMs.
func renderPowerUps(s sweeper.Session, nowMs int64) string {
	parts := make([]string, 0, len(s.PowerUps()))
	for _, p := range s.PowerUps() {
		text := fmt.Sprintf("[%d] %s %d/%d", hotkeySlot(p.ID), p.Name, p.UsesRemaining, p.MaxUses)

		var style lipgloss.Style
		switch {
		case powerUpActive(s, p.ID):
			style = activeStyle
			text += " ●"
		case p.UsesRemaining == 0:
			style = emptyStyle
		case p.CooldownRemaining(nowMs) > 0:
			style = coolingStyle
			text += fmt.Sprintf(" (%ds)", p.CooldownRemaining(nowMs))
		default:
			style = readyStyle
		}
		parts = append(parts, style.Render(text))
	}
	return strings.Join(parts, "  ")
}

// hotkeySlot returns the number key that triggers a power-up.
func hotkeySlot(id sweeper.PowerUpID) int {
	return slices.Index(sweeper.PowerUpIDs, id) + 1
}

func powerUpActive(s sweeper.Session, id sweeper.PowerUpID) bool {
	switch id {
	case sweeper.PowerUpXRay:
		return s.XRayActive()
	case sweeper.PowerUpTimeFreeze:
		return s.TimeFrozen()
	case sweeper.PowerUpSafeClick:
		return s.SafeClickArmed()
	}
	return false
}

// renderOutcome renders the end-of-game banner, or "" while playing.
func renderOutcome(s sweeper.Session) string {
	switch s.Status() {
	case sweeper.StatusWon:
		return wonStyle.Render(fmt.Sprintf("YOU WIN in %s • r: restart • d: next difficulty", formatClock(s.Elapsed())))
	case sweeper.StatusLost:
		return lostStyle.Render("BOOM • r: restart • d: next difficulty")
	}
	return ""
}
