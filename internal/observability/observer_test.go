package observability

import (
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roleready/roleready/internal/wizard"
)

// captureLogger returns a logr.Logger that appends every line to lines.
func captureLogger(verbosity int, lines *[]string) *LoggingObserver {
	log := funcr.New(func(prefix, args string) {
		*lines = append(*lines, prefix+" "+args)
	}, funcr.Options{Verbosity: verbosity})
	return NewLoggingObserver(log)
}

func TestLoggingObserver_Finalize(t *testing.T) {
	var lines []string
	obs := captureLogger(0, &lines)

	c := wizard.New(wizard.WithObservers(obs))
	c.SetBasicInfoField(wizard.FieldName, "Ada Lovelace")
	c.AddSkill("Mathematics")
	c.SetTargetRoleTitle("Computer Scientist")
	c.SelectTemplate(wizard.TemplateTech)
	c.Finalize()

	require.Len(t, lines, 1)
	line := lines[0]
	assert.True(t, strings.HasPrefix(line, "wizard "))
	assert.Contains(t, line, `"msg"="resume data captured"`)
	assert.Contains(t, line, `"name"="Ada Lovelace"`)
	assert.Contains(t, line, `"skills"=["Mathematics"]`)
	assert.Contains(t, line, `"targetRole"="Computer Scientist"`)
	assert.Contains(t, line, `"template"="tech"`)
}

func TestLoggingObserver_TransitionsAreVerbose(t *testing.T) {
	var quiet, verbose []string

	for _, obs := range []*LoggingObserver{captureLogger(0, &quiet), captureLogger(1, &verbose)} {
		c := wizard.New(wizard.WithObservers(obs))
		c.SetBasicInfoField(wizard.FieldName, "Ada")
		c.AdvanceQuestion()
	}

	assert.Empty(t, quiet)
	require.Len(t, verbose, 1)
	assert.Contains(t, verbose[0], `"from"="profile/name"`)
	assert.Contains(t, verbose[0], `"to"="profile/email"`)
}

func TestLoggingObserver_BlockedTransitionIsSilent(t *testing.T) {
	var lines []string
	c := wizard.New(wizard.WithObservers(captureLogger(1, &lines)))

	c.AdvanceQuestion()
	c.AdvanceStep()

	assert.Empty(t, lines)
}

func TestSnapshotKeysAndValues(t *testing.T) {
	kv := SnapshotKeysAndValues(wizard.Snapshot{Template: wizard.TemplateClean})

	require.Zero(t, len(kv)%2)
	keys := map[any]any{}
	for i := 0; i < len(kv); i += 2 {
		keys[kv[i]] = kv[i+1]
	}
	assert.Equal(t, "clean", keys["template"])
	assert.Contains(t, keys, "workExperience")
}
