package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/skill-match/internal/observability"
	"github.com/jonathan/skill-match/internal/ranking"
	"github.com/jonathan/skill-match/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a candidate against job postings",
	Long: "Scores a candidate profile against one job posting (--posting) or ranks it against a " +
		"JSON array of postings (--postings). Postings whose score minimums are not met score 0.",
	RunE: runMatch,
}

var (
	matchCandidate string
	matchPosting   string
	matchPostings  string
	matchJSON      bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchCandidate, "candidate", "c", "", "Path to a CandidateProfile JSON file (required)")
	matchCmd.Flags().StringVarP(&matchPosting, "posting", "p", "", "Path to a JobPosting JSON file")
	matchCmd.Flags().StringVar(&matchPostings, "postings", "", "Path to a JSON array of JobPostings to rank")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print the result as JSON")

	if err := matchCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	matchCmd.MarkFlagsMutuallyExclusive("posting", "postings")
	matchCmd.MarkFlagsOneRequired("posting", "postings")

	rootCmd.AddCommand(matchCmd)
}

// readJSONFile decodes the JSON file at path into v.
func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var candidate types.CandidateProfile
	if err := readJSONFile(matchCandidate, &candidate); err != nil {
		return err
	}
	if err := candidate.Validate(); err != nil {
		return fmt.Errorf("invalid candidate %s: %w", matchCandidate, err)
	}

	out := cmd.OutOrStdout()
	printer := observability.NewPrinter(out)

	switch {
	case matchPosting != "":
		var posting types.JobPosting
		if err := readJSONFile(matchPosting, &posting); err != nil {
			return err
		}
		if err := posting.Validate(); err != nil {
			return fmt.Errorf("invalid posting %s: %w", matchPosting, err)
		}

		result := ranking.ScoreMatch(&candidate, &posting)
		log.Debug("Scored match", zap.Float64("score", result.Score), zap.Bool("gate_passed", result.GatePassed))

		if matchJSON {
			return writeJSON(out, result)
		}
		printer.PrintMatch(&posting, result)

	case matchPostings != "":
		var postings []types.JobPosting
		if err := readJSONFile(matchPostings, &postings); err != nil {
			return err
		}
		for i := range postings {
			if err := postings[i].Validate(); err != nil {
				return fmt.Errorf("invalid posting %d in %s: %w", i, matchPostings, err)
			}
		}

		ranked := ranking.RankPostings(&candidate, postings)
		log.Debug("Ranked postings", zap.Int("postings", len(postings)), zap.Int("matches", len(ranked)))

		if matchJSON {
			return writeJSON(out, ranked)
		}
		printer.PrintRankedPostings(ranked)

	default:
		return errors.New("one of --posting or --postings is required")
	}

	return nil
}
