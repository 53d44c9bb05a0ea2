package quiz

import "fmt"

// ConfigurationError reports a question bank that is missing or malformed at
// startup.
type ConfigurationError struct {
	Source  string
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("question bank configuration error (%s): %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("question bank configuration error (%s): %s", e.Source, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}
