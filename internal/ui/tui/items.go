package tui

import (
	"github.com/roleready/roleready/internal/wizard"
)

// itemKind is the kind of a focusable element on the current screen.
type itemKind int

const (
	itemBasicField itemKind = iota
	itemEducationField
	itemAddEducation
	itemWorkField
	itemAddWork
	itemSuggestedSkill
	itemCustomSkill
	itemSelectedSkill
	itemRoleTitle
	itemRoleDescription
	itemPopularRole
	itemTemplate
	itemGenerate
)

// focusItem is one focusable element. Text items are edited through the
// shared text input; the others react to the select key.
type focusItem struct {
	kind    itemKind
	entryID string
	field   string
	value   string
}

func (it focusItem) isText() bool {
	switch it.kind {
	case itemBasicField, itemEducationField, itemWorkField,
		itemCustomSkill, itemRoleTitle, itemRoleDescription:
		return true
	}
	return false
}

// items lists the focusable elements for the controller's position, in
// display order. Entry lists are rebuilt on every call so added and removed
// entries are reflected immediately.
func items(c *wizard.Controller) []focusItem {
	pos := c.Position()
	switch pos.Step {
	case wizard.StepProfile:
		return questionItems(c, wizard.Questions[pos.Question])
	case wizard.StepTargetRole:
		out := []focusItem{{kind: itemRoleTitle}, {kind: itemRoleDescription}}
		for _, role := range wizard.PopularRoles {
			out = append(out, focusItem{kind: itemPopularRole, value: role})
		}
		return out
	default:
		out := make([]focusItem, 0, len(wizard.Templates)+1)
		for _, t := range wizard.Templates {
			out = append(out, focusItem{kind: itemTemplate, value: string(t.ID)})
		}
		return append(out, focusItem{kind: itemGenerate})
	}
}

func questionItems(c *wizard.Controller, q wizard.Question) []focusItem {
	var out []focusItem
	switch q.ID {
	case wizard.QuestionName:
		out = append(out, focusItem{kind: itemBasicField, field: string(wizard.FieldName)})
	case wizard.QuestionEmail:
		out = append(out, focusItem{kind: itemBasicField, field: string(wizard.FieldEmail)})
	case wizard.QuestionLinkedIn:
		out = append(out, focusItem{kind: itemBasicField, field: string(wizard.FieldLinkedIn)})
	case wizard.QuestionEducation:
		for _, e := range c.Education() {
			for _, f := range wizard.EducationFields {
				out = append(out, focusItem{kind: itemEducationField, entryID: e.ID, field: string(f)})
			}
		}
		out = append(out, focusItem{kind: itemAddEducation})
	case wizard.QuestionWork:
		for _, w := range c.WorkExperience() {
			for _, f := range wizard.WorkFields {
				out = append(out, focusItem{kind: itemWorkField, entryID: w.ID, field: string(f)})
			}
		}
		out = append(out, focusItem{kind: itemAddWork})
	case wizard.QuestionSkills:
		for _, s := range wizard.SuggestedSkills {
			out = append(out, focusItem{kind: itemSuggestedSkill, value: s})
		}
		out = append(out, focusItem{kind: itemCustomSkill})
		for _, s := range c.Skills() {
			out = append(out, focusItem{kind: itemSelectedSkill, value: s})
		}
	}
	return out
}

// textValue reads the controller value a text item is bound to.
func textValue(c *wizard.Controller, it focusItem) string {
	switch it.kind {
	case itemBasicField:
		return c.BasicInfo().Get(wizard.BasicInfoField(it.field))
	case itemEducationField:
		for _, e := range c.Education() {
			if e.ID == it.entryID {
				return e.Get(wizard.EducationField(it.field))
			}
		}
	case itemWorkField:
		for _, w := range c.WorkExperience() {
			if w.ID == it.entryID {
				return w.Get(wizard.WorkField(it.field))
			}
		}
	case itemCustomSkill:
		return c.PendingSkill()
	case itemRoleTitle:
		return c.TargetRole().Title
	case itemRoleDescription:
		return c.TargetRole().Description
	}
	return ""
}

// setTextValue writes a text item's value back to the controller.
func setTextValue(c *wizard.Controller, it focusItem, value string) {
	switch it.kind {
	case itemBasicField:
		c.SetBasicInfoField(wizard.BasicInfoField(it.field), value)
	case itemEducationField:
		c.UpdateEducationEntry(it.entryID, wizard.EducationField(it.field), value)
	case itemWorkField:
		c.UpdateWorkEntry(it.entryID, wizard.WorkField(it.field), value)
	case itemCustomSkill:
		c.SetPendingSkill(value)
	case itemRoleTitle:
		c.SetTargetRoleTitle(value)
	case itemRoleDescription:
		c.SetTargetRoleDescription(value)
	}
}

// fieldPlaceholders are shown in empty entry and role inputs.
var fieldPlaceholders = map[itemKind]map[string]string{
	itemEducationField: {
		string(wizard.FieldDegree):         "Degree (e.g., Bachelor of Science)",
		string(wizard.FieldSchool):         "School/University",
		string(wizard.FieldGraduationYear): "Year",
	},
	itemWorkField: {
		string(wizard.FieldJobTitle):    "Job Title",
		string(wizard.FieldCompany):     "Company",
		string(wizard.FieldDuration):    "Duration (e.g., Jan 2022 - Present)",
		string(wizard.FieldDescription): "Describe your responsibilities and achievements...",
	},
}

func placeholder(c *wizard.Controller, it focusItem) string {
	switch it.kind {
	case itemBasicField:
		if q, ok := c.CurrentQuestion(); ok {
			return q.Placeholder
		}
	case itemEducationField, itemWorkField:
		return fieldPlaceholders[it.kind][it.field]
	case itemCustomSkill:
		return "Add custom skill..."
	case itemRoleTitle:
		return "e.g., Frontend Developer, Data Scientist, Product Manager"
	case itemRoleDescription:
		return "Any specific requirements or preferences for this role..."
	}
	return ""
}
