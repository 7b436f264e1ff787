package core

// Color represents a foreground color for a screen cell.
// The terminal layer maps each value to an ANSI color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorBrightRed
	ColorBrightYellow
	ColorBrightBlue
	ColorOrange
	ColorGray
)

// Palette colors for breakout elements: yellow blocks, a red paddle and
// blue balls.
const (
	ColorBlock  = ColorYellow
	ColorPaddle = ColorRed
	ColorBall   = ColorBrightBlue
	ColorHUD    = ColorGreen
	ColorBorder = ColorGray
	ColorTitle  = ColorBrightRed
	ColorHint   = ColorBlue
)
