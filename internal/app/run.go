package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the demo until the user quits.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	defer m.Close()

	opts.Logger.Info("starting UI")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
