package core

// Color is a palette entry for a screen cell, used both as foreground and
// background. The platform layer maps it to a terminal color.
type Color uint8

// Palette entries. ColorDefault leaves the terminal color untouched.
const (
	ColorDefault Color = iota
	ColorTitle
	ColorText
	ColorMuted
	ColorBorder
	ColorBorderActive
	ColorLetter
	ColorTileEmpty
	ColorTileExact
	ColorTilePresent
	ColorTileAbsent
	ColorPrompt
)
