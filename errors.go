package gauge

import (
	"errors"
	"fmt"
)

// ErrReentrantUpdate is returned when Update is called from inside a hook.
var ErrReentrantUpdate = errors.New("gauge: update called from inside a hook")

// ErrDisposed is returned when Update is called on a disposed gauge.
var ErrDisposed = errors.New("gauge: update on disposed gauge")

// ConfigurationError reports an option value a gauge cannot render.
type ConfigurationError struct {
	Gauge  Kind
	Field  Field
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("gauge: invalid %s option %s=%v: %s", e.Gauge, e.Field, e.Value, e.Reason)
}

// newConfigError creates a new ConfigurationError.
func newConfigError(kind Kind, f Field, v any, reason string) *ConfigurationError {
	return &ConfigurationError{
		Gauge:  kind,
		Field:  f,
		Value:  v,
		Reason: reason,
	}
}
