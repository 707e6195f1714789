package core

import "strconv"

// Color is the foreground color of a screen cell. Values map onto the
// terminal's 256-color palette through Code.
type Color uint8

// Colors used by the building, actors and HUD.
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
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	colorCount
)

var paletteCodes = [colorCount]int{
	ColorDefault:       -1,
	ColorRed:           1,
	ColorGreen:         2,
	ColorYellow:        3,
	ColorBlue:          4,
	ColorMagenta:       5,
	ColorCyan:          6,
	ColorWhite:         7,
	ColorBrightRed:     9,
	ColorBrightYellow:  11,
	ColorBrightBlue:    12,
	ColorBrightMagenta: 13,
	ColorBrightCyan:    14,
	ColorBrightWhite:   15,
	ColorOrange:        208,
	ColorGray:          245,
}

// Palette returns every defined color, ColorDefault first.
func Palette() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// Code returns the 256-color palette index as a string, or "" for the
// terminal's default foreground and unknown colors.
func (c Color) Code() string {
	if c >= colorCount || paletteCodes[c] < 0 {
		return ""
	}
	return strconv.Itoa(paletteCodes[c])
}
