package wizard

import "strings"

// Preview placeholders shown for data that has not been entered yet.
const (
	PreviewNoName     = "Your Name"
	PreviewNoRole     = "Target Role"
	PreviewNoSkills   = "No skills added"
	PreviewNoTemplate = "No template selected"
)

// Preview is the summary shown next to the template list in StepTemplate.
type Preview struct {
	Name      string
	Email     string
	Role      string
	Skills    string
	Positions int
	Degrees   int
	Template  string
}

// Preview summarises the current state for display.
func (c *Controller) Preview() Preview {
	p := Preview{
		Name:      c.profile.BasicInfo.Name,
		Email:     c.profile.BasicInfo.Email,
		Role:      c.role.Title,
		Skills:    strings.Join(c.profile.Skills, ", "),
		Positions: len(c.profile.WorkExperience),
		Degrees:   len(c.profile.Education),
		Template:  PreviewNoTemplate,
	}
	if p.Name == "" {
		p.Name = PreviewNoName
	}
	if p.Role == "" {
		p.Role = PreviewNoRole
	}
	if p.Skills == "" {
		p.Skills = PreviewNoSkills
	}
	if t, ok := LookupTemplate(c.template); ok {
		p.Template = t.Name
	}
	return p
}
