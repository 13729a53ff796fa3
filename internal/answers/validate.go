package answers

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/roleready/roleready/internal/wizard"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("template", func(fl validator.FieldLevel) bool {
		return slices.Contains(wizard.TemplateIDs(), fl.Field().String())
	})
	return v
}

// Validate checks the document against the template catalog.
func (a *Answers) Validate() error {
	err := validate.Struct(a)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	ve := &ValidationError{}
	for _, fe := range verrs {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: fieldMessage(fe),
		})
	}
	return ve
}

// fieldPath strips the root struct name: "Answers.template" -> "template".
func fieldPath(namespace string) string {
	_, rest, _ := strings.Cut(namespace, ".")
	return rest
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "template":
		return fmt.Sprintf("unknown template %q (available: %s)",
			fe.Value(), strings.Join(wizard.TemplateIDs(), ", "))
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
