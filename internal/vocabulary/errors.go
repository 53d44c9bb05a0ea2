package vocabulary

import "fmt"

// ConfigurationError reports a vocabulary that is missing or malformed at
// startup. It is fatal: callers must not fall back to a silent default.
type ConfigurationError struct {
	Source  string
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vocabulary configuration error (%s): %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("vocabulary configuration error (%s): %s", e.Source, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}
