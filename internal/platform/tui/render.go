package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nlitvinov/tui-chomp/internal/core"
)

// colorStyles maps core.Color values to lipgloss styles, indexed by the
// color constant.
var colorStyles = func() []lipgloss.Style {
	ansi := map[core.Color]string{
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
	}

	styles := make([]lipgloss.Style, core.ColorGray+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range ansi {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing a color are grouped into a single styled run to
// keep the ANSI escape overhead down.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if int(startColor) >= len(colorStyles) {
				startColor = core.ColorDefault
			}
			sb.WriteString(colorStyles[startColor].Render(run.String()))
		}
	}
	return sb.String()
}
