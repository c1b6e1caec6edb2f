package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ddrozdov/twocars/internal/core"
)

var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightBlue:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

// renderScreen flattens the buffer into styled terminal output. Consecutive
// cells of the same color render as one styled run to keep the frame small.
func renderScreen(s *core.Screen) string {
	var b strings.Builder

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}

		var run []rune
		runColor := s.GetCell(0, y).Color
		flush := func() {
			if len(run) == 0 {
				return
			}
			text := string(run)
			if style, ok := colorStyles[runColor]; ok {
				text = style.Render(text)
			}
			b.WriteString(text)
			run = run[:0]
		}

		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				flush()
				runColor = cell.Color
			}
			run = append(run, cell.Rune)
		}
		flush()
	}

	return b.String()
}
