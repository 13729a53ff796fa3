package observability

import (
	"github.com/go-logr/logr"

	"github.com/roleready/roleready/internal/wizard"
)

// LoggingObserver writes wizard events to a logr.Logger. Transitions are
// logged at V(1); the finalize event is always logged.
type LoggingObserver struct {
	log logr.Logger
}

// NewLoggingObserver creates a LoggingObserver.
func NewLoggingObserver(log logr.Logger) *LoggingObserver {
	return &LoggingObserver{log: log.WithName("wizard")}
}

// OnTransition implements wizard.Observer.
func (o *LoggingObserver) OnTransition(from, to wizard.Position) {
	o.log.V(1).Info("position changed", "from", from.String(), "to", to.String())
}

// OnFinalize implements wizard.Observer.
func (o *LoggingObserver) OnFinalize(s wizard.Snapshot) {
	o.log.Info("resume data captured", SnapshotKeysAndValues(s)...)
}

// SnapshotKeysAndValues flattens a snapshot into structured log fields.
func SnapshotKeysAndValues(s wizard.Snapshot) []any {
	return []any{
		"name", s.Profile.BasicInfo.Name,
		"email", s.Profile.BasicInfo.Email,
		"linkedin", s.Profile.BasicInfo.LinkedIn,
		"education", s.Profile.Education,
		"workExperience", s.Profile.WorkExperience,
		"skills", s.Profile.Skills,
		"targetRole", s.TargetRole.Title,
		"targetRoleDescription", s.TargetRole.Description,
		"template", string(s.Template),
	}
}

// MetricsObserver counts wizard events in the package registry.
type MetricsObserver struct{}

// OnTransition implements wizard.Observer.
func (MetricsObserver) OnTransition(from, to wizard.Position) {
	recordTransitionMetric(from, to)
}

// OnFinalize implements wizard.Observer.
func (MetricsObserver) OnFinalize(s wizard.Snapshot) {
	recordFinalizeMetric(s)
}
