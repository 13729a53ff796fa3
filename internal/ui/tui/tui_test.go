package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roleready/roleready/internal/wizard"
)

func newTestModel() (Model, *wizard.Controller) {
	ctrl := wizard.New(wizard.WithIDGenerator(&wizard.CounterGenerator{Prefix: "e"}))
	return NewModel(ctrl), ctrl
}

// send feeds msgs through Update and returns the resulting model and the
// command returned by the last message.
func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyNext     = tea.KeyMsg{Type: tea.KeyCtrlN}
	keyPrev     = tea.KeyMsg{Type: tea.KeyCtrlP}
	keyRemove   = tea.KeyMsg{Type: tea.KeyCtrlX}
	keyGenerate = tea.KeyMsg{Type: tea.KeyCtrlG}
	keyQuit     = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func repeat(msg tea.Msg, n int) []tea.Msg {
	out := make([]tea.Msg, n)
	for i := range out {
		out[i] = msg
	}
	return out
}

func TestNewModel_FocusesNameInput(t *testing.T) {
	m, _ := newTestModel()

	assert.Equal(t, focusItem{kind: itemBasicField, field: "name"}, m.focused)
	assert.True(t, m.input.Focused())
	assert.Equal(t, "John Doe", m.input.Placeholder)
}

func TestTypingWritesThroughToController(t *testing.T) {
	m, ctrl := newTestModel()

	m, _ = send(m, typeText("Ada"))

	assert.Equal(t, "Ada", ctrl.BasicInfo().Name)
	assert.Equal(t, "Ada", m.input.Value())
}

func TestLongInputIsStoredVerbatim(t *testing.T) {
	m, ctrl := newTestModel()
	long := strings.Repeat("a", 600)

	m, _ = send(m, typeText(long))
	assert.Equal(t, long, ctrl.BasicInfo().Name)

	ctrl.SetBasicInfoField(wizard.FieldEmail, "ada@example.com")
	m, _ = send(m, keyEnter, keyEnter, keyEnter, keyNext)
	require.Equal(t, 4, ctrl.Position().Question)

	m, _ = send(m, keyEnter) // add a position
	description := strings.Repeat("Led the migration. ", 60)
	m, _ = send(m, repeat(keyTab, len(wizard.WorkFields)-1)...)
	require.Equal(t, itemWorkField, m.focused.kind)
	require.Equal(t, string(wizard.FieldDescription), m.focused.field)
	_, _ = send(m, typeText(description))

	work := ctrl.WorkExperience()
	require.Len(t, work, 1)
	assert.Equal(t, description, work[0].Description)
}

func TestEnterIsGatedOnRequiredQuestions(t *testing.T) {
	m, ctrl := newTestModel()

	m, _ = send(m, keyEnter, keyNext, typeText("   "), keyEnter)
	assert.Equal(t, wizard.Position{Step: wizard.StepProfile}, ctrl.Position())

	_, _ = send(m, typeText("Ada"), keyEnter)
	assert.Equal(t, wizard.Position{Step: wizard.StepProfile, Question: 1}, ctrl.Position())
}

// finalizeCounter counts finalize events.
type finalizeCounter struct {
	wizard.NoopObserver
	calls int
}

func (f *finalizeCounter) OnFinalize(wizard.Snapshot) { f.calls++ }

func TestFullWalkthrough(t *testing.T) {
	finalized := &finalizeCounter{}
	ctrl := wizard.New(
		wizard.WithIDGenerator(&wizard.CounterGenerator{Prefix: "e"}),
		wizard.WithObservers(finalized),
	)
	m := NewModel(ctrl)

	msgs := []tea.Msg{
		typeText("Ada Lovelace"), keyEnter,
		typeText("ada@example.com"), keyEnter,
		keyEnter, // LinkedIn is optional
		// Education: add an entry, fill degree and school.
		keyEnter, typeText("BSc"), keyTab, typeText("MIT"), keyNext,
		keyNext, // no work experience
	}
	m, _ = send(m, msgs...)
	require.Equal(t, wizard.Position{Step: wizard.StepProfile, Question: 5}, ctrl.Position())

	// Skills: pick the first suggestion, then add a custom one.
	m, _ = send(m, keyEnter)
	assert.Equal(t, "Added JavaScript", m.Notice)
	m, _ = send(m, repeat(keyTab, len(wizard.SuggestedSkills))...)
	require.Equal(t, itemCustomSkill, m.focused.kind)
	m, _ = send(m, typeText("  Rust "), keyEnter)
	assert.Equal(t, "Added Rust", m.Notice)
	assert.Empty(t, m.input.Value())

	m, _ = send(m, keyNext, typeText("Engineer"), keyNext)
	require.Equal(t, wizard.StepTemplate, ctrl.Step())

	m, _ = send(m, keyEnter)
	assert.Equal(t, wizard.TemplateClean, ctrl.Template())

	m, cmd := send(m, keyGenerate)
	require.True(t, m.Done)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Zero(t, finalized.calls, "the model never finalizes itself")

	snap := ctrl.Finalize()
	assert.Equal(t, "Ada Lovelace", snap.Profile.BasicInfo.Name)
	assert.Equal(t, []wizard.EducationEntry{{ID: "e1", Degree: "BSc", School: "MIT"}}, snap.Profile.Education)
	assert.Empty(t, snap.Profile.WorkExperience)
	assert.Equal(t, []string{"JavaScript", "Rust"}, snap.Profile.Skills)
	assert.Equal(t, "Engineer", snap.TargetRole.Title)
	assert.Equal(t, wizard.TemplateClean, snap.Template)
}

func TestGenerateOnlyOnTemplateStep(t *testing.T) {
	m, _ := newTestModel()

	m, cmd := send(m, keyGenerate)
	assert.False(t, m.Done)
	assert.Nil(t, cmd)
}

func TestRemoveFocusedEntry(t *testing.T) {
	m, ctrl := newTestModel()
	ctrl.SetBasicInfoField(wizard.FieldName, "Ada")
	ctrl.SetBasicInfoField(wizard.FieldEmail, "ada@example.com")
	for ctrl.Position().Question < wizard.QuestionIndex(wizard.QuestionWork) {
		ctrl.AdvanceQuestion()
	}
	m.setFocus(0)

	// Add two entries; the add button follows the last entry's fields.
	m, _ = send(m, keyEnter, typeText("First"))
	m.setFocus(len(wizard.WorkFields))
	m, _ = send(m, keyEnter, typeText("Second"))
	require.Len(t, ctrl.WorkExperience(), 2)

	m.setFocus(0)
	m, _ = send(m, keyRemove)

	work := ctrl.WorkExperience()
	require.Len(t, work, 1)
	assert.Equal(t, "Second", work[0].JobTitle)
	assert.Equal(t, itemWorkField, m.focused.kind)
	assert.Equal(t, work[0].ID, m.focused.entryID)
}

func TestRemoveSelectedSkill(t *testing.T) {
	m, ctrl := newTestModel()
	ctrl.SetBasicInfoField(wizard.FieldName, "Ada")
	ctrl.SetBasicInfoField(wizard.FieldEmail, "ada@example.com")
	for ctrl.Position().Question < wizard.QuestionIndex(wizard.QuestionSkills) {
		ctrl.AdvanceQuestion()
	}
	ctrl.AddSkill("Go")
	m.setFocus(0)

	// Focus wraps backwards onto the last selected skill.
	m, _ = send(m, keyShiftTab)
	require.Equal(t, focusItem{kind: itemSelectedSkill, value: "Go"}, m.focused)

	m, _ = send(m, keyEnter)
	assert.Empty(t, ctrl.Skills())
	assert.Equal(t, itemCustomSkill, m.focused.kind)
}

func TestPrevious(t *testing.T) {
	m, ctrl := newTestModel()

	m, _ = send(m, typeText("Ada"), keyEnter, keyPrev)
	assert.Equal(t, wizard.Position{Step: wizard.StepProfile}, ctrl.Position())
	assert.Equal(t, "Ada", m.input.Value())

	ctrl.SetBasicInfoField(wizard.FieldEmail, "ada@example.com")
	for ctrl.Step() == wizard.StepProfile {
		ctrl.AdvanceQuestion()
	}
	m, _ = send(m, keyPrev)
	assert.Equal(t, wizard.Position{Step: wizard.StepProfile}, ctrl.Position())
}

func TestPopularRoleSelection(t *testing.T) {
	m, ctrl := newTestModel()
	ctrl.SetBasicInfoField(wizard.FieldName, "Ada")
	ctrl.SetTargetRoleDescription("remote")
	ctrl.AdvanceStep()
	m.setFocus(0)

	m, _ = send(m, keyTab, keyTab, keyEnter)

	assert.Equal(t, wizard.TargetRole{Title: wizard.PopularRoles[0]}, ctrl.TargetRole())
	assert.Contains(t, m.View(), "Frontend Developer")
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel()

	m, cmd := send(m, keyQuit)
	assert.True(t, m.Aborted)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWindowSize(t *testing.T) {
	m, _ := newTestModel()

	m, _ = send(m, tea.WindowSizeMsg{Width: 50, Height: 20})
	assert.Equal(t, 50, m.Width)
	assert.Equal(t, 20, m.Height)
	assert.Contains(t, m.View(), "Question 1 of 6")
}

func TestView_ProfileStep(t *testing.T) {
	m, _ := newTestModel()

	view := m.View()
	assert.Contains(t, view, "RoleReady")
	assert.Contains(t, view, "1 User Info")
	assert.Contains(t, view, "Question 1 of 6")
	assert.Contains(t, view, "What's your full name?")
	assert.NotContains(t, view, "previous")
}

func TestView_TemplateStepPreview(t *testing.T) {
	m, ctrl := newTestModel()
	ctrl.SetBasicInfoField(wizard.FieldName, "Ada")
	ctrl.AdvanceStep()
	ctrl.AdvanceStep()
	m.setFocus(0)

	view := m.View()
	assert.Contains(t, view, "Choose your template")
	assert.Contains(t, view, "Ada")
	assert.Contains(t, view, wizard.PreviewNoRole)
	assert.Contains(t, view, wizard.PreviewNoSkills)
	assert.Contains(t, view, wizard.PreviewNoTemplate)
	assert.Contains(t, view, "Generate Resume")

	m, _ = send(m, keyTab, keyEnter)
	assert.Contains(t, m.View(), "Template:   Modern")
}

func TestView_EducationEntries(t *testing.T) {
	m, ctrl := newTestModel()
	ctrl.SetBasicInfoField(wizard.FieldName, "Ada")
	ctrl.SetBasicInfoField(wizard.FieldEmail, "ada@example.com")
	for ctrl.Position().Question < wizard.QuestionIndex(wizard.QuestionEducation) {
		ctrl.AdvanceQuestion()
	}
	m.setFocus(0)
	m, _ = send(m, keyEnter)

	view := m.View()
	assert.Contains(t, view, "Education #1")
	assert.Contains(t, view, "School/University")
	assert.Equal(t, 1, strings.Count(view, "+ Add Education"))
}

func TestItems_PerPosition(t *testing.T) {
	ctrl := wizard.New()
	assert.Len(t, items(ctrl), 1)

	ctrl.SetBasicInfoField(wizard.FieldName, "Ada")
	ctrl.AdvanceStep()
	assert.Len(t, items(ctrl), 2+len(wizard.PopularRoles))

	ctrl.AdvanceStep()
	assert.Len(t, items(ctrl), len(wizard.Templates)+1)
}
