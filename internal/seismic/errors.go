package seismic

import (
	"errors"
	"fmt"
)

// ErrConfig is wrapped by every configuration failure.
var ErrConfig = errors.New("invalid configuration")

// ConfigError reports a field that could not be parsed or is out of range.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s: %s", ErrConfig, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s=%q: %s", ErrConfig, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

func configErrorf(field, value, format string, args ...any) error {
	return &ConfigError{Field: field, Value: value, Reason: fmt.Sprintf(format, args...)}
}
