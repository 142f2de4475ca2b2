package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-runner/internal/core"
)

type cellColors struct {
	fg, bg core.RGB
}

// style returns the lipgloss style for a color pair.
func (c cellColors) style() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.fg.Hex())).
		Background(lipgloss.Color(c.bg.Hex()))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	styles := make(map[cellColors]lipgloss.Style)

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			colors := cellColors{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != colors.fg || cell.Bg != colors.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[colors]
			if !ok {
				style = colors.style()
				styles[colors] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
