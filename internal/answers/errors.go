package answers

import (
	"errors"
	"fmt"
	"strings"
)

// ErrGateBlocked is returned by Replay when a required question has no
// answer. The wrapping error names the question.
var ErrGateBlocked = errors.New("required question not answered")

// ValidationError lists every invalid field of an answers document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is one invalid field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid answers:")
	for _, fe := range ve.Errors {
		fmt.Fprintf(&sb, "\n  - %s: %s", fe.Field, fe.Message)
	}
	return sb.String()
}
