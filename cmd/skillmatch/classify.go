package main

import (
	"github.com/jonathan/skill-match/internal/observability"
	"github.com/jonathan/skill-match/internal/ranking"
	"github.com/jonathan/skill-match/internal/skills"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a skill set into job categories",
	Long: "Scores a skill list, or the skills found in a file, against every job category and " +
		"prints the best matches with their confidence.",
	RunE: runClassify,
}

var (
	classifySkills []string
	classifyFile   string
	classifyTop    int
	classifyJSON   bool
)

func init() {
	classifyCmd.Flags().StringSliceVarP(&classifySkills, "skills", "s", nil, "Comma-separated skills, e.g. python,docker")
	classifyCmd.Flags().StringVarP(&classifyFile, "file", "f", "", "Path to a text file to extract skills from")
	classifyCmd.Flags().IntVar(&classifyTop, "top", 3, "Number of categories to show (0 for all)")
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Print the full classification as JSON")
	classifyCmd.MarkFlagsMutuallyExclusive("skills", "file")
	classifyCmd.MarkFlagsOneRequired("skills", "file")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, _ []string) error {
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

	skillList := classifySkills
	if classifyFile != "" {
		text, err := readInputText("", classifyFile)
		if err != nil {
			return err
		}
		skillList = skills.ExtractSkills(text, vocab)
		log.Debug("Extracted skills from file", zap.String("file", classifyFile), zap.Strings("skills", skillList))
	}

	classification := ranking.Classify(skillList, vocab)

	if classifyJSON {
		return writeJSON(cmd.OutOrStdout(), classification)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintClassification(classification, classifyTop)
	return nil
}
