package answers

import (
	"fmt"

	"github.com/roleready/roleready/internal/wizard"
)

// Replay drives c through the whole wizard the way a user would: it fills
// the profile, walks every profile question through the gate, sets the
// target role, moves to the template step and selects the template.
// The controller must be at its initial position.
func Replay(c *wizard.Controller, a *Answers) error {
	c.SetBasicInfoField(wizard.FieldName, a.BasicInfo.Name)
	c.SetBasicInfoField(wizard.FieldEmail, a.BasicInfo.Email)
	c.SetBasicInfoField(wizard.FieldLinkedIn, a.BasicInfo.LinkedIn)

	for _, e := range a.Education {
		id := c.AddEducationEntry()
		c.UpdateEducationEntry(id, wizard.FieldDegree, e.Degree)
		c.UpdateEducationEntry(id, wizard.FieldSchool, e.School)
		c.UpdateEducationEntry(id, wizard.FieldGraduationYear, e.GraduationYear)
	}

	for _, w := range a.WorkExperience {
		id := c.AddWorkEntry()
		c.UpdateWorkEntry(id, wizard.FieldJobTitle, w.JobTitle)
		c.UpdateWorkEntry(id, wizard.FieldCompany, w.Company)
		c.UpdateWorkEntry(id, wizard.FieldDuration, w.Duration)
		c.UpdateWorkEntry(id, wizard.FieldDescription, w.Description)
	}

	for _, s := range a.Skills {
		c.AddSkill(s)
	}

	for c.Step() == wizard.StepProfile {
		q, _ := c.CurrentQuestion()
		if !c.AdvanceQuestion() {
			return fmt.Errorf("%w: %s", ErrGateBlocked, q.ID)
		}
	}

	c.SetTargetRole(wizard.TargetRole{Title: a.TargetRole.Title, Description: a.TargetRole.Description})
	c.AdvanceStep()

	if a.Template != "" {
		c.SelectTemplate(wizard.TemplateID(a.Template))
	}
	return nil
}
