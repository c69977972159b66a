package config

import (
	"github.com/go-playground/validator/v10"

	"github.com/arthur-debert/dot/pkg/errors"
)

// validate is the singleton validator instance
var validate = validator.New()

// Validate checks the configuration's struct tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError reports the first failing field.
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok && len(validationErrs) > 0 {
		e := validationErrs[0]
		return errors.Newf(errors.ErrConfigValid, "%s: validation failed on '%s' tag (value: %v)",
			e.Namespace(), e.Tag(), e.Value()).
			WithDetail("field", e.Namespace())
	}
	return errors.Wrap(err, errors.ErrConfigValid, "invalid configuration")
}
