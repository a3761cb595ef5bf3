package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"voice2txt/internal/app/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type effectiveRules struct {
	APIKey  string `validate:"required"`
	BaseURL string `validate:"omitempty,http_url"`
}

// Validate checks the effective config before any request is made.
func (e Effective) Validate() error {
	err := validate.Struct(effectiveRules{APIKey: e.APIKey, BaseURL: e.BaseURL})
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errors.ErrInvalidConfig.WithCause(err)
	}
	switch verrs[0].Field() {
	case "APIKey":
		return errors.ErrMissingAPIKey.WithDetail(
			fmt.Sprintf("set %s, pass --api-key, or save one with --save", EnvAPIKey))
	case "BaseURL":
		return errors.InvalidField("base_url", fmt.Sprintf("must be an absolute http(s) URL, got %q", e.BaseURL))
	default:
		return errors.ErrInvalidConfig.WithCause(err)
	}
}

// ValidateTimeout validates a request timeout; zero means no timeout.
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout < 0 {
		return errors.InvalidField(name, "cannot be negative")
	}
	if timeout > MaxTimeout {
		return errors.InvalidField(name, "too large (max 30 minutes)")
	}
	return nil
}
