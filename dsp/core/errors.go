package core

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the sentinel wrapped by every ConfigurationError.
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError reports a construction-time failure: an invalid scale
// domain, an invalid sample rate or a missing hardware capability. It is
// never produced while processing audio.
type ConfigurationError struct {
	Component string
	Reason    string
}

// NewConfigurationError formats a ConfigurationError for component.
func NewConfigurationError(component, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Component: component, Reason: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	if e.Component == "" {
		return "configuration error: " + e.Reason
	}

	return e.Component + ": configuration error: " + e.Reason
}

// Unwrap makes errors.Is(err, ErrConfiguration) succeed.
func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// ValidateSampleRate returns a ConfigurationError when sampleRate is not a
// finite positive number.
func ValidateSampleRate(component string, sampleRate float64) error {
	if !(sampleRate > 0) || sampleRate > 1e7 {
		return NewConfigurationError(component, "sample rate must be > 0: %f", sampleRate)
	}

	return nil
}
