package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/roleready/roleready/internal/wizard"
)

// Function variables for dependency injection in tests.
var (
	confirmOverwrite = defaultConfirmOverwrite
	now              = time.Now
)

// Encode renders snap in the given format. JSON output is validated against
// the snapshot schema before it is returned.
func Encode(snap wizard.Snapshot, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		body, err := yaml.Marshal(snap)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		var sb strings.Builder
		sb.WriteString(generateHeader(snap))
		sb.WriteString("\n")
		sb.Write(body)
		return []byte(sb.String()), nil

	case FormatJSON:
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		if err := ValidateJSON(data); err != nil {
			return nil, fmt.Errorf("snapshot does not match schema: %w", err)
		}
		return append(data, '\n'), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Write encodes snap and writes it to w.
func Write(w io.Writer, snap wizard.Snapshot, format Format) error {
	data, err := Encode(snap, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// WriteFile encodes snap and writes it to path with owner-only permissions.
func WriteFile(snap wizard.Snapshot, path string, format Format) error {
	data, err := Encode(snap, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// generateHeader creates the YAML file header comment.
func generateHeader(snap wizard.Snapshot) string {
	template := "none"
	if t, ok := snap.TemplateInfo(); ok {
		template = t.Name
	}
	return fmt.Sprintf(`# roleready resume data
# Generated by: roleready build
# Generated at: %s
# Template: %s
#
# Validate the JSON form with:
#   roleready build --answers <file> --format json --output resume.json
#   roleready validate resume.json
`, now().Format(time.RFC3339), template)
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ConfirmOverwrite prompts the user to confirm overwriting an existing file.
func ConfirmOverwrite(path string) (bool, error) {
	return confirmOverwrite(path)
}

// defaultConfirmOverwrite asks with a huh confirm prompt.
func defaultConfirmOverwrite(path string) (bool, error) {
	overwrite := false
	err := huh.NewConfirm().
		Title(fmt.Sprintf("File already exists: %s", path)).
		Description("Overwrite it?").
		Affirmative("Overwrite").
		Negative("Cancel").
		Value(&overwrite).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return overwrite, nil
}
