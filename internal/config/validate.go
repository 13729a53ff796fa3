package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks enumerated values and reports every offending key.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: invalid value %q (allowed: %s)",
			configKey(fe.Namespace()), fe.Value(), fe.Param()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// configKey turns "Config.Log.Level" into "log.level".
func configKey(namespace string) string {
	_, rest, _ := strings.Cut(namespace, ".")
	return strings.ToLower(rest)
}
