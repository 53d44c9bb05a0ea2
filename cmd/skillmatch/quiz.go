package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/skill-match/internal/assessment"
	"github.com/jonathan/skill-match/internal/observability"
	"github.com/jonathan/skill-match/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take an interactive multiple-choice skill test",
	Long: "Asks the questions for a skill and difficulty one at a time, shows immediate feedback " +
		"after every answer and scores the test once every question is answered. " +
		"Enter an option number to answer, s to submit or q to quit.",
	RunE: runQuiz,
}

var (
	quizSkill      string
	quizDifficulty string
	quizExport     string
	quizJSON       bool
)

// errQuizAborted is returned when the user quits or input ends early.
var errQuizAborted = errors.New("quiz aborted before submission")

func init() {
	quizCmd.Flags().StringVarP(&quizSkill, "skill", "s", "", "Skill to test, e.g. python (required)")
	quizCmd.Flags().StringVarP(&quizDifficulty, "difficulty", "d", "medium", "Difficulty: easy, medium or hard")
	quizCmd.Flags().StringVar(&quizExport, "export", "", "Write the results document to this JSON file")
	quizCmd.Flags().BoolVar(&quizJSON, "json", false, "Print the result as JSON")

	if err := quizCmd.MarkFlagRequired("skill"); err != nil {
		panic(fmt.Sprintf("failed to mark skill flag as required: %v", err))
	}

	rootCmd.AddCommand(quizCmd)
}

func runQuiz(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	_, bank, err := loadData(cfg, log)
	if err != nil {
		return err
	}

	difficulty, err := types.ParseDifficulty(quizDifficulty)
	if err != nil {
		return err
	}

	engine := assessment.NewEngine(bank)
	session, err := engine.Start(quizSkill, difficulty)
	if err != nil {
		return err
	}
	log.Debug("Quiz started",
		zap.String("skill", session.Skill),
		zap.String("difficulty", string(difficulty)),
		zap.Bool("built_in_questions", bank.Has(session.Skill, difficulty)),
	)

	out := cmd.OutOrStdout()
	if err := askQuestions(engine, session, bufio.NewScanner(cmd.InOrStdin()), out); err != nil {
		return err
	}

	result, err := engine.Finalize()
	if err != nil {
		return err
	}

	if quizExport != "" {
		data, err := engine.Results().Export(time.Now())
		if err != nil {
			return fmt.Errorf("failed to export results: %w", err)
		}
		if err := os.WriteFile(quizExport, data, 0644); err != nil {
			return fmt.Errorf("failed to write results to %s: %w", quizExport, err)
		}
	}

	if quizJSON {
		return writeJSON(out, result)
	}
	printer := observability.NewPrinter(out)
	printer.PrintTestResult(result)
	printer.PrintSummary(engine.Results().Summary(), engine.Results().Recommendations())
	return nil
}

// askQuestions walks the session until every question has an answer. An
// early submit is refused by the engine and the walk continues.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func askQuestions(engine *assessment.Engine, session *assessment.Session, in *bufio.Scanner, out io.Writer) error {
	total := len(session.Questions)
	fmt.Fprintf(out, "%s test (%s): %d questions\n", session.Skill, session.Difficulty, total)

	for i := 0; i < total; {
		q := session.Questions[i]
		fmt.Fprintf(out, "\nQuestion %d/%d: %s\n", i+1, total, q.Prompt)
		for j, opt := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, opt)
		}
		fmt.Fprintf(out, "Answer [1-%d], s to submit, q to quit: ", len(q.Options))

		if !in.Scan() {
			if err := in.Err(); err != nil {
				return fmt.Errorf("failed to read answer: %w", err)
			}
			return errQuizAborted
		}
		input := strings.ToLower(strings.TrimSpace(in.Text()))

		switch input {
		case "q", "quit":
			return errQuizAborted
		case "s", "submit":
			// Only reached with unanswered questions; Finalize refuses.
			if _, err := engine.Finalize(); err != nil {
				fmt.Fprintf(out, "⚠ %v\n", err)
			}
			continue
		}

		choice, err := strconv.Atoi(input)
		if err != nil || choice < 1 || choice > len(q.Options) {
			fmt.Fprintf(out, "Please enter a number between 1 and %d\n", len(q.Options))
			continue
		}

		feedback, err := engine.Answer(i, choice-1)
		if err != nil {
			return err
		}
		if feedback.Correct {
			fmt.Fprintln(out, "✓ Correct!")
		} else {
			fmt.Fprintf(out, "✗ Incorrect. The correct answer is: %s\n", feedback.CorrectOption)
		}
		if feedback.Explanation != "" {
			fmt.Fprintf(out, "  %s\n", feedback.Explanation)
		}
		i++
	}

	return nil
}
