// Package main provides the skillmatch CLI: skill extraction, job
// classification, match scoring, interactive skill quizzes and the HTTP API
// server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "skillmatch",
	Short: "Skill extraction, job matching and skill assessments",
	Long: "skillmatch extracts known skills from free text, classifies skill sets into job categories, " +
		"scores candidates against job postings and runs multiple-choice skill assessments, " +
		"either from the command line or through a REST API.",
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to a config file (yaml, json or toml)")
	// Read through config.Load, which binds them by name
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.String("log-format", "console", "Log format: console or json")
	flags.String("vocabulary", "", "Path to a job category vocabulary JSON file (default: built-in)")
	flags.String("question-bank", "", "Path to a question bank JSON file (default: built-in)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
