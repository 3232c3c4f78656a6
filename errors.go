package netgen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConstraints is wrapped by every construction-time ConfigError.
	ErrInvalidConstraints = errors.New("netgen: invalid constraints")

	// ErrExhausted reports that a generator could not produce a value that
	// passes its filters within rapid's retry budget.
	ErrExhausted = errors.New("netgen: generation exhausted")
)

// ConfigError describes a constraint record that cannot build a generator.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("netgen: %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidConstraints.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConstraints
}

func configError(field, format string, args ...any) error {
	return &ConfigError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Must panics if err is not nil, otherwise returns value.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}
