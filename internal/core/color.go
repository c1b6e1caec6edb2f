package core

// Color is a foreground color for a screen cell, resolved to ANSI colors by
// the platform renderer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorBlue
	ColorWhite
	ColorYellow
	ColorGray
	ColorBrightRed
	ColorBrightBlue
	ColorBrightWhite
)
