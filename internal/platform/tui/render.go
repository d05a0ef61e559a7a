package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/eggdrop/internal/core"
)

// colorCodes maps core.Color to ANSI 256 color codes.
var colorCodes = map[core.Color]string{
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

// Palette turns screen colors into styles for one output. SSH sessions
// each get their own so the color profile matches the client terminal.
type Palette struct {
	styles map[core.Color]lipgloss.Style
}

// NewPalette creates a palette bound to r. A nil renderer uses the
// process default.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[core.Color]lipgloss.Style, len(colorCodes)+1)
	styles[core.ColorDefault] = r.NewStyle()
	for c, code := range colorCodes {
		styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return Palette{styles: styles}
}

var defaultPalette = NewPalette(nil)

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p Palette) Render(s *core.Screen) string {
	if p.styles == nil {
		p = defaultPalette
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
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

			style, ok := p.styles[startColor]
			if !ok {
				style = p.styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
