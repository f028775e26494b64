package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// numberColors follows the classic minesweeper palette for counts 1..8.
var numberColors = [...]Color{
	ColorDefault,
	ColorBrightBlue,
	ColorGreen,
	ColorBrightRed,
	ColorBlue,
	ColorRed,
	ColorCyan,
	ColorMagenta,
	ColorGray,
}

// NumberColor returns the display color for a neighbor count.
func NumberColor(n int) Color {
	if n < 0 || n >= len(numberColors) {
		return ColorDefault
	}
	return numberColors[n]
}
