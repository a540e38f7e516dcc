package core

// Color is a foreground colour for a screen cell.
// The platform maps each value to an ANSI 256-colour code.
type Color uint8

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
	ColorDarkGray
)

var colorNames = map[string]Color{
	"default":        ColorDefault,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright_red":     ColorBrightRed,
	"bright_green":   ColorBrightGreen,
	"bright_yellow":  ColorBrightYellow,
	"bright_blue":    ColorBrightBlue,
	"bright_magenta": ColorBrightMagenta,
	"bright_cyan":    ColorBrightCyan,
	"bright_white":   ColorBrightWhite,
	"orange":         ColorOrange,
	"gray":           ColorGray,
	"dark_gray":      ColorDarkGray,
}

// ParseColor looks up a colour by its configuration name.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}

// Faded returns the colour a cell takes when the screen is partly faded.
func (c Color) Faded(level float64) Color {
	switch {
	case level >= 0.66:
		return ColorDarkGray
	case level >= 0.33:
		return ColorGray
	default:
		return c
	}
}
