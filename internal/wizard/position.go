package wizard

import "fmt"

// Step is one of the three wizard stages.
type Step int

// Wizard steps.
const (
	StepProfile    Step = 1
	StepTargetRole Step = 2
	StepTemplate   Step = 3
)

const (
	firstStep = StepProfile
	lastStep  = StepTemplate
)

// String returns a short label for the step.
func (s Step) String() string {
	switch s {
	case StepProfile:
		return "profile"
	case StepTargetRole:
		return "target-role"
	case StepTemplate:
		return "template"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Title returns the heading shown in the step indicator.
func (s Step) Title() string {
	switch s {
	case StepProfile:
		return "User Info"
	case StepTargetRole:
		return "Target Role"
	case StepTemplate:
		return "Resume"
	default:
		return s.String()
	}
}

// Steps lists all steps in order.
var Steps = []Step{StepProfile, StepTargetRole, StepTemplate}

// Position is the wizard's location. Question is meaningful only during
// StepProfile and is 0 everywhere else.
type Position struct {
	Step     Step
	Question int
}

func (p Position) String() string {
	if p.Step == StepProfile {
		return fmt.Sprintf("%s/%s", p.Step, Questions[p.Question].ID)
	}
	return p.Step.String()
}
