package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/roleready/roleready/internal/wizard"
)

// Registry holds the wizard metrics. It is separate from the default
// registry so a textfile dump contains only wizard series.
var Registry = prometheus.NewRegistry()

var (
	// Navigation metrics
	transitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roleready",
			Subsystem: "wizard",
			Name:      "transitions_total",
			Help:      "Total number of wizard position changes by kind and direction",
		},
		[]string{"kind", "direction"},
	)

	stepEntriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roleready",
			Subsystem: "wizard",
			Name:      "step_entries_total",
			Help:      "Total number of times each step was entered",
		},
		[]string{"step"},
	)

	// Finalize metrics
	finalizeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roleready",
			Subsystem: "wizard",
			Name:      "finalize_total",
			Help:      "Total number of captured snapshots by template",
		},
		[]string{"template"},
	)

	snapshotSkills = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "roleready",
			Subsystem: "wizard",
			Name:      "snapshot_skills",
			Help:      "Number of skills in captured snapshots",
			Buckets:   prometheus.LinearBuckets(0, 5, 6), // 0 to 25
		},
	)
)

func init() {
	Registry.MustRegister(
		transitionsTotal,
		stepEntriesTotal,
		finalizeTotal,
		snapshotSkills,
	)
}

// recordTransitionMetric records a position change.
func recordTransitionMetric(from, to wizard.Position) {
	kind := "question"
	if from.Step != to.Step {
		kind = "step"
		stepEntriesTotal.WithLabelValues(to.Step.String()).Inc()
	}
	direction := "forward"
	if to.Step < from.Step || (to.Step == from.Step && to.Question < from.Question) {
		direction = "backward"
	}
	transitionsTotal.WithLabelValues(kind, direction).Inc()
}

// recordFinalizeMetric records a captured snapshot.
func recordFinalizeMetric(s wizard.Snapshot) {
	template := string(s.Template)
	if template == "" {
		template = "none"
	}
	finalizeTotal.WithLabelValues(template).Inc()
	snapshotSkills.Observe(float64(len(s.Profile.Skills)))
}

// WriteMetrics writes the registry in the text exposition format to path,
// for pickup by a node exporter textfile collector.
func WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
