package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// getBinaryPath returns the path to the skillmatch binary for testing
func getBinaryPath(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "skillmatch")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// runInProcess calls a command's run function with stdin and captures stdout.
func runInProcess(t *testing.T, run func(*cobra.Command, []string) error, stdin string) (string, error) {
	t.Helper()
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(stdin))

	err := run(cmd, nil)
	return out.String(), err
}

// writeFile writes content into a file under a temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// resetFlags restores every command flag variable after the test.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		configPath, verbose = "", false
		extractText, extractFile, extractJSON = "", "", false
		classifySkills, classifyFile, classifyTop, classifyJSON = nil, "", 3, false
		matchCandidate, matchPosting, matchPostings, matchJSON = "", "", "", false
		quizSkill, quizDifficulty, quizExport, quizJSON = "", "medium", "", false
	})
}
