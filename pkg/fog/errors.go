package fog

import (
	"errors"
	"fmt"
)

// ErrConfiguration is returned (wrapped in a *ConfigurationError) when an
// engine cannot be built from the supplied surface or settings.
var ErrConfiguration = errors.New("fog: invalid configuration")

// ConfigurationError names the offending setting.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrConfiguration.Error(), e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func configErr(field, reason string) error {
	return &ConfigurationError{Field: field, Reason: reason}
}
