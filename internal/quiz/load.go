package quiz

import (
	_ "embed"
	"encoding/json"
	"os"

	"github.com/jonathan/skill-match/internal/schemas"
)

//go:embed data/questions.json
var defaultBankJSON []byte

var defaultBank = mustLoadDefault()

type bankFile struct {
	Skills []SkillQuestions `json:"skills"`
}

func mustLoadDefault() *Bank {
	b, err := Load(defaultBankJSON)
	if err != nil {
		panic(err)
	}
	return b
}

// Default returns the built-in question bank. The returned value is shared
// and read-only.
func Default() *Bank {
	return defaultBank
}

// Load parses a JSON question bank, validating it against the question bank
// schema first.
func Load(data []byte) (*Bank, error) {
	if err := schemas.Validate(schemas.QuestionBank, data); err != nil {
		return nil, &ConfigurationError{Source: "document", Message: "schema validation failed", Cause: err}
	}

	var file bankFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &ConfigurationError{Source: "document", Message: "invalid JSON", Cause: err}
	}

	return New(file.Skills)
}

// LoadFile reads and parses a question bank file.
func LoadFile(path string) (*Bank, error) {
	if path == "" {
		return nil, &ConfigurationError{Source: "path", Message: "question bank path is empty"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Source: path, Message: "failed to read question bank file", Cause: err}
	}

	b, err := Load(data)
	if err != nil {
		if cfgErr, ok := err.(*ConfigurationError); ok {
			cfgErr.Source = path
		}
		return nil, err
	}
	return b, nil
}

// FromConfig returns the bank at path, or the built-in one when path is empty.
func FromConfig(path string) (*Bank, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
