package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/steelwall/internal/core"
)

// ansiCodes maps each scene colour to an ANSI 256-colour code.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorDarkGray:      "238",
}

// palette holds one lipgloss style per scene colour.
var palette = buildPalette()

func buildPalette() map[core.Color]lipgloss.Style {
	p := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c, code := range ansiCodes {
		p[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := palette[c]; ok {
		return s
	}
	return palette[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same colour share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	var run strings.Builder
	x := 0
	for x < s.Width() {
		color := s.GetCell(x, y).Color
		run.Reset()
		for x < s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				break
			}
			run.WriteRune(cell.Rune)
			x++
		}
		sb.WriteString(styleFor(color).Render(run.String()))
	}
}
