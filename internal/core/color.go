package core

// Color is a cell foreground. The terminal front-end maps each value to an
// ANSI 256 code; ColorDefault leaves the terminal's own color.
type Color uint8

const (
	ColorDefault Color = iota

	// Basic ANSI colors
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite

	// Bright variants, used for highlights and pickups
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite

	// Extended palette
	ColorOrange
	ColorGray
)
