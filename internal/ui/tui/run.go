package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/roleready/roleready/internal/wizard"
)

// ErrAborted is returned when the user quits before generating.
var ErrAborted = errors.New("wizard aborted")

// RunWizard runs the interactive wizard on ctrl until the user generates
// the résumé or quits. Extra options are passed to the Bubble Tea program.
//
// The controller is finalized only after the program has exited, so
// observers write to the restored terminal rather than the alt screen.
func RunWizard(ctrl *wizard.Controller, opts ...tea.ProgramOption) (wizard.Snapshot, error) {
	p := tea.NewProgram(NewModel(ctrl), append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)

	finalModel, err := p.Run()
	if err != nil {
		return wizard.Snapshot{}, fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Aborted || !fm.Done {
		return wizard.Snapshot{}, ErrAborted
	}
	return ctrl.Finalize(), nil
}
