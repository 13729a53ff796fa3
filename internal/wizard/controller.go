package wizard

import (
	"slices"
	"strings"
)

// Controller is the single source of truth for the wizard position and all
// collected data. It is not safe for concurrent use.
type Controller struct {
	pos          Position
	profile      ProfileData
	role         TargetRole
	template     TemplateID
	pendingSkill string

	ids      IDGenerator
	observer Observer
}

// Option configures a Controller.
type Option func(*Controller)

// WithIDGenerator overrides the entry id source.
func WithIDGenerator(g IDGenerator) Option {
	return func(c *Controller) {
		if g != nil {
			c.ids = g
		}
	}
}

// WithObservers registers observers. Repeated options accumulate.
func WithObservers(obs ...Observer) Option {
	return func(c *Controller) {
		c.observer = NewCompositeObserver(append([]Observer{c.observer}, obs...)...)
	}
}

// New returns a Controller positioned at the first profile question with
// empty data.
func New(opts ...Option) *Controller {
	c := &Controller{
		pos:      Position{Step: StepProfile},
		profile:  newProfileData(),
		ids:      UUIDGenerator{},
		observer: NoopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Position returns the current wizard position.
func (c *Controller) Position() Position {
	return c.pos
}

// Step returns the current step.
func (c *Controller) Step() Step {
	return c.pos.Step
}

// CurrentQuestion returns the active profile question. ok is false outside
// StepProfile.
func (c *Controller) CurrentQuestion() (q Question, ok bool) {
	if c.pos.Step != StepProfile {
		return Question{}, false
	}
	return Questions[c.pos.Question], true
}

// Profile returns a copy of the collected profile data.
func (c *Controller) Profile() ProfileData {
	return c.profile.clone()
}

// BasicInfo returns the contact details.
func (c *Controller) BasicInfo() BasicInfo {
	return c.profile.BasicInfo
}

// Education returns a copy of the education entries in entry order.
func (c *Controller) Education() []EducationEntry {
	return slices.Clone(c.profile.Education)
}

// WorkExperience returns a copy of the work entries in entry order.
func (c *Controller) WorkExperience() []WorkEntry {
	return slices.Clone(c.profile.WorkExperience)
}

// Skills returns a copy of the skill set in insertion order.
func (c *Controller) Skills() []string {
	return slices.Clone(c.profile.Skills)
}

// HasSkill reports whether skill is in the set (exact match).
func (c *Controller) HasSkill(skill string) bool {
	return slices.Contains(c.profile.Skills, skill)
}

// TargetRole returns the target role.
func (c *Controller) TargetRole() TargetRole {
	return c.role
}

// Template returns the selected template id, or "" if none was selected.
func (c *Controller) Template() TemplateID {
	return c.template
}

// SetBasicInfoField overwrites one BasicInfo field. The value is stored
// verbatim; unknown fields are ignored.
func (c *Controller) SetBasicInfoField(field BasicInfoField, value string) {
	switch field {
	case FieldName:
		c.profile.BasicInfo.Name = value
	case FieldEmail:
		c.profile.BasicInfo.Email = value
	case FieldLinkedIn:
		c.profile.BasicInfo.LinkedIn = value
	}
}

// AddEducationEntry appends an empty entry and returns its id.
func (c *Controller) AddEducationEntry() string {
	id := c.uniqueID(func(id string) bool {
		return slices.ContainsFunc(c.profile.Education, func(e EducationEntry) bool { return e.ID == id })
	})
	c.profile.Education = append(c.profile.Education, EducationEntry{ID: id})
	return id
}

// UpdateEducationEntry replaces one field of the entry with the given id.
// Missing ids are ignored.
func (c *Controller) UpdateEducationEntry(id string, field EducationField, value string) {
	for i := range c.profile.Education {
		if c.profile.Education[i].ID == id {
			c.profile.Education[i].set(field, value)
			return
		}
	}
}

// RemoveEducationEntry deletes the entry with the given id, preserving the
// order of the remaining entries.
func (c *Controller) RemoveEducationEntry(id string) {
	c.profile.Education = slices.DeleteFunc(c.profile.Education, func(e EducationEntry) bool {
		return e.ID == id
	})
}

// AddWorkEntry appends an empty entry and returns its id.
func (c *Controller) AddWorkEntry() string {
	id := c.uniqueID(func(id string) bool {
		return slices.ContainsFunc(c.profile.WorkExperience, func(w WorkEntry) bool { return w.ID == id })
	})
	c.profile.WorkExperience = append(c.profile.WorkExperience, WorkEntry{ID: id})
	return id
}

// UpdateWorkEntry replaces one field of the entry with the given id.
// Missing ids are ignored.
func (c *Controller) UpdateWorkEntry(id string, field WorkField, value string) {
	for i := range c.profile.WorkExperience {
		if c.profile.WorkExperience[i].ID == id {
			c.profile.WorkExperience[i].set(field, value)
			return
		}
	}
}

// RemoveWorkEntry deletes the entry with the given id, preserving the order
// of the remaining entries.
func (c *Controller) RemoveWorkEntry(id string) {
	c.profile.WorkExperience = slices.DeleteFunc(c.profile.WorkExperience, func(w WorkEntry) bool {
		return w.ID == id
	})
}

// uniqueID draws ids until taken reports false.
func (c *Controller) uniqueID(taken func(string) bool) string {
	for {
		id := c.ids.NewID()
		if !taken(id) {
			return id
		}
	}
}

// AddSkill inserts skill unless an identical string is already present.
// It reports whether the set changed.
func (c *Controller) AddSkill(skill string) bool {
	if c.HasSkill(skill) {
		return false
	}
	c.profile.Skills = append(c.profile.Skills, skill)
	return true
}

// RemoveSkill deletes skill if present and reports whether the set changed.
func (c *Controller) RemoveSkill(skill string) bool {
	n := len(c.profile.Skills)
	c.profile.Skills = slices.DeleteFunc(c.profile.Skills, func(s string) bool { return s == skill })
	return len(c.profile.Skills) != n
}

// SetPendingSkill replaces the custom skill input buffer.
func (c *Controller) SetPendingSkill(text string) {
	c.pendingSkill = text
}

// PendingSkill returns the custom skill input buffer.
func (c *Controller) PendingSkill() string {
	return c.pendingSkill
}

// CommitPendingSkill adds the trimmed buffer as a skill and clears the
// buffer. A blank buffer is left untouched. It reports whether a skill was
// submitted, even if it was already in the set.
func (c *Controller) CommitPendingSkill() bool {
	skill := strings.TrimSpace(c.pendingSkill)
	if skill == "" {
		return false
	}
	c.AddSkill(skill)
	c.pendingSkill = ""
	return true
}

// SetTargetRole replaces the target role wholesale.
func (c *Controller) SetTargetRole(role TargetRole) {
	c.role = role
}

// SetTargetRoleTitle edits the title and keeps the description.
func (c *Controller) SetTargetRoleTitle(title string) {
	c.role.Title = title
}

// SetTargetRoleDescription edits the description and keeps the title.
func (c *Controller) SetTargetRoleDescription(description string) {
	c.role.Description = description
}

// SelectSuggestedRole sets the title to one of the quick-pick roles and
// clears the description.
func (c *Controller) SelectSuggestedRole(title string) {
	c.role = TargetRole{Title: title}
}

// SelectTemplate records the template choice. Callers only offer catalog
// ids, so the value is not checked here.
func (c *Controller) SelectTemplate(id TemplateID) {
	c.template = id
}

// Finalize assembles a snapshot of everything collected so far and passes it
// to the observers. It does not change the wizard state and may be called
// more than once.
func (c *Controller) Finalize() Snapshot {
	snap := Snapshot{
		Profile:    c.profile.clone(),
		TargetRole: c.role,
		Template:   c.template,
	}
	c.observer.OnFinalize(snap.clone())
	return snap
}
