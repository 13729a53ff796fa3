package wizard

import "strings"

// CanAdvanceQuestion reports whether the forward gate is open. It is closed
// only while the current question is required and its bound field is blank
// after trimming. Only the name and email questions bind a field.
func (c *Controller) CanAdvanceQuestion() bool {
	q, ok := c.CurrentQuestion()
	if !ok || !q.Required {
		return true
	}
	switch q.ID {
	case QuestionName:
		return strings.TrimSpace(c.profile.BasicInfo.Name) != ""
	case QuestionEmail:
		return strings.TrimSpace(c.profile.BasicInfo.Email) != ""
	default:
		return true
	}
}

// AdvanceQuestion moves to the next profile question. From the last question
// it moves on to StepTargetRole instead. It is a no-op outside StepProfile or
// while the gate is closed, and reports whether the position changed.
func (c *Controller) AdvanceQuestion() bool {
	if c.pos.Step != StepProfile || !c.CanAdvanceQuestion() {
		return false
	}
	if c.pos.Question >= QuestionCount-1 {
		return c.moveStep(+1)
	}
	c.moveTo(Position{Step: StepProfile, Question: c.pos.Question + 1})
	return true
}

// RetreatQuestion moves to the previous profile question. It never leaves
// StepProfile; use RetreatStep for that.
func (c *Controller) RetreatQuestion() bool {
	if c.pos.Step != StepProfile || c.pos.Question == 0 {
		return false
	}
	c.moveTo(Position{Step: StepProfile, Question: c.pos.Question - 1})
	return true
}

// AdvanceStep moves to the next step, resetting the question index. It is a
// no-op on the last step, and during StepProfile it honours the question gate.
func (c *Controller) AdvanceStep() bool {
	if !c.CanAdvanceQuestion() {
		return false
	}
	return c.moveStep(+1)
}

// RetreatStep moves to the previous step. Re-entering StepProfile always
// starts at the first question.
func (c *Controller) RetreatStep() bool {
	return c.moveStep(-1)
}

// Progress returns the fraction of profile questions reached, counting the
// current one. It is 1 once the profile step is left.
func (c *Controller) Progress() float64 {
	if c.pos.Step != StepProfile {
		return 1
	}
	return float64(c.pos.Question+1) / float64(QuestionCount)
}

func (c *Controller) moveStep(delta int) bool {
	next := c.pos.Step + Step(delta)
	if next < firstStep || next > lastStep {
		return false
	}
	c.moveTo(Position{Step: next})
	return true
}

func (c *Controller) moveTo(to Position) {
	from := c.pos
	c.pos = to
	c.observer.OnTransition(from, to)
}
