// Package tui provides the Bubble Tea terminal UI for the résumé wizard.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/roleready/roleready/internal/wizard"
)

// Model is the Bubble Tea model for the wizard. All state lives in the
// controller; the model only tracks which element has focus.
type Model struct {
	ctrl  *wizard.Controller
	keys  keyMap
	input textinput.Model

	focus   int
	focused focusItem

	// Notice is a one-line confirmation shown below the current screen.
	Notice string

	// UI state
	Width  int
	Height int

	// Done is set when the user asks to generate the résumé. The snapshot is
	// taken by RunWizard once the program has released the terminal.
	Done    bool
	Aborted bool
}

// NewModel creates a model driving ctrl.
func NewModel(ctrl *wizard.Controller) Model {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 0 // unlimited; values are stored verbatim

	m := Model{ctrl: ctrl, keys: defaultKeyMap(), input: in}
	m.setFocus(0)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.Notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Aborted = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.next()

	case key.Matches(msg, m.keys.Prev):
		m.prev()

	case key.Matches(msg, m.keys.NextField):
		m.setFocus(m.focus + 1)

	case key.Matches(msg, m.keys.PrevField):
		m.setFocus(m.focus - 1)

	case key.Matches(msg, m.keys.Remove):
		m.removeFocusedEntry()

	case key.Matches(msg, m.keys.Generate):
		if m.ctrl.Step() == wizard.StepTemplate {
			return m.generate()
		}

	case key.Matches(msg, m.keys.Select):
		return m.selectFocused()

	default:
		if m.focused.isText() {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			setTextValue(m.ctrl, m.focused, m.input.Value())
			return m, cmd
		}
	}

	return m, nil
}

// next moves forward: to the next question during the profile step and to
// the next step otherwise. A closed gate leaves everything as is.
func (m *Model) next() {
	var moved bool
	if m.ctrl.Step() == wizard.StepProfile {
		moved = m.ctrl.AdvanceQuestion()
	} else {
		moved = m.ctrl.AdvanceStep()
	}
	if moved {
		m.setFocus(0)
	}
}

func (m *Model) prev() {
	var moved bool
	if m.ctrl.Step() == wizard.StepProfile && m.ctrl.Position().Question > 0 {
		moved = m.ctrl.RetreatQuestion()
	} else {
		moved = m.ctrl.RetreatStep()
	}
	if moved {
		m.setFocus(0)
	}
}

func (m Model) selectFocused() (tea.Model, tea.Cmd) {
	it := m.focused
	switch it.kind {
	case itemBasicField:
		m.next()

	case itemEducationField, itemWorkField, itemRoleTitle, itemRoleDescription:
		m.setFocus(m.focus + 1)

	case itemAddEducation:
		m.focusEntry(m.ctrl.AddEducationEntry())

	case itemAddWork:
		m.focusEntry(m.ctrl.AddWorkEntry())

	case itemSuggestedSkill:
		if m.ctrl.AddSkill(it.value) {
			m.Notice = fmt.Sprintf("Added %s", it.value)
		}

	case itemCustomSkill:
		skill := strings.TrimSpace(m.ctrl.PendingSkill())
		if m.ctrl.CommitPendingSkill() {
			m.input.SetValue("")
			m.Notice = fmt.Sprintf("Added %s", skill)
		}

	case itemSelectedSkill:
		m.ctrl.RemoveSkill(it.value)
		m.clampFocus()

	case itemPopularRole:
		m.ctrl.SelectSuggestedRole(it.value)

	case itemTemplate:
		m.ctrl.SelectTemplate(wizard.TemplateID(it.value))

	case itemGenerate:
		return m.generate()
	}
	return m, nil
}

func (m Model) generate() (tea.Model, tea.Cmd) {
	m.Done = true
	return m, tea.Quit
}

func (m *Model) removeFocusedEntry() {
	switch m.focused.kind {
	case itemEducationField:
		m.ctrl.RemoveEducationEntry(m.focused.entryID)
	case itemWorkField:
		m.ctrl.RemoveWorkEntry(m.focused.entryID)
	default:
		return
	}
	m.clampFocus()
}

// setFocus moves focus to index i, wrapping around, and binds the text
// input to the newly focused item.
func (m *Model) setFocus(i int) {
	list := items(m.ctrl)
	if len(list) == 0 {
		return
	}
	m.focus = ((i % len(list)) + len(list)) % len(list)
	m.focused = list[m.focus]

	if m.focused.isText() {
		m.input.SetValue(textValue(m.ctrl, m.focused))
		m.input.Placeholder = placeholder(m.ctrl, m.focused)
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// clampFocus rebinds focus after the item list shrank.
func (m *Model) clampFocus() {
	if n := len(items(m.ctrl)); m.focus >= n {
		m.setFocus(n - 1)
		return
	}
	m.setFocus(m.focus)
}

// focusEntry focuses the first field of the entry with the given id.
func (m *Model) focusEntry(id string) {
	for i, it := range items(m.ctrl) {
		if it.entryID == id {
			m.setFocus(i)
			return
		}
	}
}
