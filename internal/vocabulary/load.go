package vocabulary

import (
	"encoding/json"
	"os"

	"github.com/jonathan/skill-match/internal/schemas"
)

type vocabularyFile struct {
	Categories []Category `json:"categories"`
}

// Load parses a JSON vocabulary document, validating it against the
// vocabulary schema first.
func Load(data []byte) (*Vocabulary, error) {
	if err := schemas.Validate(schemas.Vocabulary, data); err != nil {
		return nil, &ConfigurationError{Source: "document", Message: "schema validation failed", Cause: err}
	}

	var file vocabularyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &ConfigurationError{Source: "document", Message: "invalid JSON", Cause: err}
	}

	return New(file.Categories)
}

// LoadFile reads and parses a vocabulary file. An empty path is an error; use
// Default for the built-in table.
func LoadFile(path string) (*Vocabulary, error) {
	if path == "" {
		return nil, &ConfigurationError{Source: "path", Message: "vocabulary path is empty"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Source: path, Message: "failed to read vocabulary file", Cause: err}
	}

	v, err := Load(data)
	if err != nil {
		if cfgErr, ok := err.(*ConfigurationError); ok {
			cfgErr.Source = path
		}
		return nil, err
	}
	return v, nil
}

// FromConfig returns the vocabulary at path, or the built-in one when path is
// empty.
func FromConfig(path string) (*Vocabulary, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
