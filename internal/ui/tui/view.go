package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/roleready/roleready/internal/wizard"
)

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)

	switch m.ctrl.Step() {
	case wizard.StepProfile:
		renderProgressBar(&b, m)
		renderQuestion(&b, m)
	case wizard.StepTargetRole:
		renderTargetRole(&b, m)
	case wizard.StepTemplate:
		renderTemplates(&b, m)
	}

	if m.Notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render("  " + m.Notice))
		b.WriteString("\n")
	}

	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	b.WriteString(titleStyle.Render("RoleReady"))
	b.WriteString("\n")

	parts := make([]string, 0, len(wizard.Steps))
	for _, s := range wizard.Steps {
		label := fmt.Sprintf("%d %s", int(s), s.Title())
		if s <= m.ctrl.Step() {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, dimStyle.Render(label))
		}
	}
	b.WriteString(strings.Join(parts, dimStyle.Render(stepArrow)))
	b.WriteString("\n")
}

func renderProgressBar(b *strings.Builder, m Model) {
	progress := m.ctrl.Progress()
	barWidth := 30
	if m.Width > 0 && m.Width < 60 {
		barWidth = max(m.Width-30, 10)
	}
	filled := min(int(float64(barWidth)*progress), barWidth)

	bar := progressBarFull.Render(strings.Repeat("█", filled)) +
		progressBarEmpty.Render(strings.Repeat("░", barWidth-filled))

	fmt.Fprintf(b, "\n  %s Question %d of %d\n", bar, m.ctrl.Position().Question+1, wizard.QuestionCount)
}

func renderQuestion(b *strings.Builder, m Model) {
	q, _ := m.ctrl.CurrentQuestion()
	b.WriteString(questionStyle.Render("  " + q.Prompt))
	b.WriteString("\n")

	switch q.Kind {
	case wizard.KindEducation:
		if q.Placeholder != "" {
			b.WriteString(dimStyle.Render("  " + q.Placeholder))
			b.WriteString("\n")
		}
		renderEntries(b, m, itemEducationField, "Education")
		renderButton(b, m, focusItem{kind: itemAddEducation}, "+ Add Education")
	case wizard.KindWork:
		if q.Placeholder != "" {
			b.WriteString(dimStyle.Render("  " + q.Placeholder))
			b.WriteString("\n")
		}
		renderEntries(b, m, itemWorkField, "Position")
		renderButton(b, m, focusItem{kind: itemAddWork}, "+ Add Work Experience")
	case wizard.KindSkills:
		renderSkills(b, m)
	default:
		renderTextItem(b, m, m.focused, "")
	}
}

// renderEntries draws every entry of one list, grouping consecutive field
// items that share an entry id.
func renderEntries(b *strings.Builder, m Model, kind itemKind, title string) {
	n := 0
	last := ""
	for _, it := range items(m.ctrl) {
		if it.kind != kind {
			continue
		}
		if it.entryID != last {
			n++
			last = it.entryID
			b.WriteString(sectionStyle.Render(fmt.Sprintf("  %s #%d", title, n)))
			b.WriteString("\n")
		}
		renderTextItem(b, m, it, it.field)
	}
	if n > 0 {
		b.WriteString(dimStyle.Render("  ctrl+x removes the focused entry"))
		b.WriteString("\n")
	}
}

func renderSkills(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  Popular skills:"))
	b.WriteString("\n")

	for i := 0; i < len(wizard.SuggestedSkills); i += skillsInRow {
		row := wizard.SuggestedSkills[i:min(i+skillsInRow, len(wizard.SuggestedSkills))]
		cells := make([]string, 0, len(row))
		for _, s := range row {
			mark := emptyMark
			style := dimStyle
			if m.ctrl.HasSkill(s) {
				mark = checkMark
				style = selectedStyle
			}
			cell := fmt.Sprintf("%s %-12s", mark, s)
			if m.isFocused(focusItem{kind: itemSuggestedSkill, value: s}) {
				style = focusStyle
			}
			cells = append(cells, style.Render(cell))
		}
		b.WriteString("  " + strings.Join(cells, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	renderTextItem(b, m, focusItem{kind: itemCustomSkill}, "custom")

	if skills := m.ctrl.Skills(); len(skills) > 0 {
		b.WriteString(sectionStyle.Render("  Your skills:"))
		b.WriteString("\n")
		chips := make([]string, 0, len(skills))
		for _, s := range skills {
			style := selectedStyle
			if m.isFocused(focusItem{kind: itemSelectedSkill, value: s}) {
				style = focusStyle
			}
			chips = append(chips, style.Render(s+" ×"))
		}
		b.WriteString("  " + strings.Join(chips, "  "))
		b.WriteString("\n")
	}
}

func renderTargetRole(b *strings.Builder, m Model) {
	b.WriteString(questionStyle.Render("  🎯 What role are you targeting?"))
	b.WriteString("\n")

	renderTextItem(b, m, focusItem{kind: itemRoleTitle}, "Job Title *")
	renderTextItem(b, m, focusItem{kind: itemRoleDescription}, "Additional Details (Optional)")

	b.WriteString(sectionStyle.Render("  💡 Popular Roles"))
	b.WriteString("\n")
	title := m.ctrl.TargetRole().Title
	for _, role := range wizard.PopularRoles {
		renderChoice(b, m, focusItem{kind: itemPopularRole, value: role}, role, role == title)
	}
}

func renderTemplates(b *strings.Builder, m Model) {
	b.WriteString(questionStyle.Render("  📄 Choose your template"))
	b.WriteString("\n")

	selected := m.ctrl.Template()
	for _, t := range wizard.Templates {
		label := fmt.Sprintf("%s %-9s %s", t.Icon, t.Name, dimStyle.Render(t.Description))
		renderChoice(b, m, focusItem{kind: itemTemplate, value: string(t.ID)}, label, t.ID == selected)
	}

	p := m.ctrl.Preview()
	var pb strings.Builder
	pb.WriteString(activeStyle.Render(p.Name) + "\n")
	if p.Email != "" {
		pb.WriteString(p.Email + "\n")
	}
	pb.WriteString(p.Role + "\n\n")
	fmt.Fprintf(&pb, "Skills:     %s\n", p.Skills)
	fmt.Fprintf(&pb, "Experience: %d position(s)\n", p.Positions)
	fmt.Fprintf(&pb, "Education:  %d degree(s)\n", p.Degrees)
	fmt.Fprintf(&pb, "Template:   %s", p.Template)

	b.WriteString(previewStyle.Render(pb.String()))
	b.WriteString("\n")

	renderButton(b, m, focusItem{kind: itemGenerate}, "Generate Resume 🚀")
}

// renderTextItem draws a labelled text field. The focused field shows the
// live input, the others their bound value or placeholder.
func renderTextItem(b *strings.Builder, m Model, it focusItem, label string) {
	if label != "" {
		b.WriteString(dimStyle.Render("  " + label))
		b.WriteString("\n")
	}

	if m.isFocused(it) {
		b.WriteString("  " + m.input.View())
		b.WriteString("\n")
		return
	}

	value := textValue(m.ctrl, it)
	if value == "" {
		value = dimStyle.Render(placeholder(m.ctrl, it))
	}
	b.WriteString("    " + value)
	b.WriteString("\n")
}

func renderChoice(b *strings.Builder, m Model, it focusItem, label string, selected bool) {
	mark, style := emptyMark, lipgloss.NewStyle()
	if selected {
		mark, style = checkMark, selectedStyle
	}
	cursor := " "
	if m.isFocused(it) {
		cursor = focusStyle.Render(cursorMark)
	}
	fmt.Fprintf(b, "  %s %s %s\n", cursor, style.Render(mark), label)
}

func renderButton(b *strings.Builder, m Model, it focusItem, label string) {
	b.WriteString("\n")
	if m.isFocused(it) {
		b.WriteString("  " + focusStyle.Render(cursorMark+" "+label))
	} else {
		b.WriteString("    " + dimStyle.Render(label))
	}
	b.WriteString("\n")
}

func renderFooter(b *strings.Builder, m Model) {
	var hints []string

	if m.ctrl.Step() > wizard.StepProfile || m.ctrl.Position().Question > 0 {
		hints = append(hints, helpHint(m.keys.Prev.Help().Key, "previous"))
	}

	switch m.ctrl.Step() {
	case wizard.StepTemplate:
		hints = append(hints, helpHint(m.keys.Generate.Help().Key, "generate"))
	default:
		label := nextLabel(m.ctrl)
		hint := helpHint(m.keys.Next.Help().Key, label)
		if !m.ctrl.CanAdvanceQuestion() {
			hint = disabledStyle.Render(m.keys.Next.Help().Key + " " + label)
		}
		hints = append(hints, hint)
	}

	hints = append(hints,
		helpHint(m.keys.NextField.Help().Key, m.keys.NextField.Help().Desc),
		helpHint(m.keys.Select.Help().Key, m.keys.Select.Help().Desc),
		helpHint(m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc),
	)

	b.WriteString(footerStyle.Render(strings.Join(hints, "  ")))
	b.WriteString("\n")
}

func nextLabel(c *wizard.Controller) string {
	pos := c.Position()
	switch {
	case pos.Step == wizard.StepProfile && pos.Question == wizard.QuestionCount-1:
		return "complete profile"
	case pos.Step == wizard.StepProfile:
		return "next"
	default:
		return "next step"
	}
}

func helpHint(k, desc string) string {
	return activeStyle.Render(k) + " " + dimStyle.Render(desc)
}

func (m Model) isFocused(it focusItem) bool {
	return m.focused == it
}
