package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ddrozdov/twocars/internal/core"
)

// MapKey translates a key press into a game action. Unmapped keys return
// ActionNone but still count as "any key" for the menu.
func MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "a", "left":
		return core.ActionLeftCar
	case "d", "right":
		return core.ActionRightCar
	case "esc":
		return core.ActionBack
	case "r":
		return core.ActionRestart
	case "h":
		return core.ActionHome
	case "q", "ctrl+c":
		return core.ActionQuit
	}
	return core.ActionNone
}
