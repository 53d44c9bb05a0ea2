package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/skill-match/internal/observability"
	"github.com/jonathan/skill-match/internal/skills"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract known skills from text",
	Long:  "Finds every vocabulary keyword that occurs as a whole word or phrase in the given text or file.",
	RunE:  runExtract,
}

var (
	extractText string
	extractFile string
	extractJSON bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractText, "text", "t", "", "Text to extract skills from")
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Path to a text file (e.g. a resume) to extract skills from")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Print the result as JSON")
	extractCmd.MarkFlagsMutuallyExclusive("text", "file")
	extractCmd.MarkFlagsOneRequired("text", "file")

	rootCmd.AddCommand(extractCmd)
}

// readInputText returns the inline text or the contents of path.
func readInputText(text, path string) (string, error) {
	if path == "" {
		if text == "" {
			return "", errors.New("one of --text or --file is required")
		}
		return text, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	return string(data), nil
}

func runExtract(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	vocab, _, err := loadData(cfg, log)
	if err != nil {
		return err
	}

	text, err := readInputText(extractText, extractFile)
	if err != nil {
		return err
	}

	found := skills.ExtractSkills(text, vocab)
	log.Debug("Extracted skills", zap.Int("chars", len(text)), zap.Int("skills", len(found)))

	if extractJSON {
		return writeJSON(cmd.OutOrStdout(), map[string][]string{"skills": found})
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintSkills(found)
	return nil
}
