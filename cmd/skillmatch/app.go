package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/skill-match/internal/config"
	"github.com/jonathan/skill-match/internal/logger"
	"github.com/jonathan/skill-match/internal/quiz"
	"github.com/jonathan/skill-match/internal/vocabulary"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadConfig merges the config file, SKILLMATCH_* variables and the flags
// set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

// loadData resolves the vocabulary and question bank. A configured file that
// is missing or malformed is an error, never a silent fallback.
func loadData(cfg *config.Config, log *zap.Logger) (*vocabulary.Vocabulary, *quiz.Bank, error) {
	vocab, err := vocabulary.FromConfig(cfg.VocabularyPath)
	if err != nil {
		return nil, nil, err
	}
	bank, err := quiz.FromConfig(cfg.QuestionBankPath)
	if err != nil {
		return nil, nil, err
	}

	log.Debug("Loaded data",
		zap.String("vocabulary", sourceName(cfg.VocabularyPath)),
		zap.Int("categories", vocab.Len()),
		zap.String("question_bank", sourceName(cfg.QuestionBankPath)),
		zap.Int("bank_skills", len(bank.Skills())),
	)
	return vocab, bank, nil
}

func sourceName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

// writeJSON prints v as indented JSON.
func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
