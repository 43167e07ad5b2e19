package core

// Color identifies a foreground or background color for a screen cell.
// The platform layer maps these to concrete ANSI colors; the core stays
// terminal-agnostic.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
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
	ColorBrightWhite
	ColorGray
)
