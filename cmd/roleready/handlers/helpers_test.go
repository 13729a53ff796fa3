package handlers

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/roleready/roleready/internal/observability"
)

// saveAndRestoreFactories saves and restores the handler function variables.
func saveAndRestoreFactories(t *testing.T) {
	origLoadConfig := loadConfig
	origNewLogger := newLogger
	origIsInteractive := isInteractive
	origRunTUI := runTUI
	origLoadAnswers := loadAnswers
	origFileExists := fileExists
	origConfirmOverwrite := confirmOverwrite
	origWriteSnapshot := writeSnapshot
	origWriteMetrics := writeMetrics
	origValidateFile := validateFile
	origLogOutput := logOutput

	t.Cleanup(func() {
		loadConfig = origLoadConfig
		newLogger = origNewLogger
		isInteractive = origIsInteractive
		runTUI = origRunTUI
		loadAnswers = origLoadAnswers
		fileExists = origFileExists
		confirmOverwrite = origConfirmOverwrite
		writeSnapshot = origWriteSnapshot
		writeMetrics = origWriteMetrics
		validateFile = origValidateFile
		logOutput = origLogOutput
	})
}

// captureLogs replaces the logger factory with one that records every line.
func captureLogs(lines *[]string) {
	newLogger = func(observability.LogOptions) (logr.Logger, func(), error) {
		log := funcr.New(func(prefix, args string) {
			*lines = append(*lines, prefix+" "+args)
		}, funcr.Options{})
		return log, func() {}, nil
	}
}

func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}
