package handlers

import (
	"errors"
	"fmt"

	"github.com/roleready/roleready/internal/export"
)

// validateFile can be replaced in tests.
var validateFile = export.ValidateFile

// Validate checks a JSON snapshot file and prints every schema violation.
func Validate(path string) error {
	err := validateFile(path)
	if err == nil {
		fmt.Printf("%s is a valid snapshot\n", path)
		return nil
	}

	var ve *export.ValidationError
	if !errors.As(err, &ve) {
		return err
	}

	fmt.Printf("%s has %d problem(s):\n", path, len(ve.Errors))
	for _, fe := range ve.Errors {
		fmt.Printf("  - %s: %s\n", fe.Field, fe.Message)
	}
	return fmt.Errorf("%s is not a valid snapshot", path)
}
