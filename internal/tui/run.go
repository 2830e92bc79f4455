package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/waylonwalker/senzu/internal/nav"
)

// Run starts the full-screen browser over the given navigation core and
// blocks until the user quits.
func Run(core *nav.Core) error {
	program := tea.NewProgram(New(core), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
