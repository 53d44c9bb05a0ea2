// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skill-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to limit runes, marking the cut with "...".
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSkills outputs the skills found by extraction.
func (p *Printer) PrintSkills(skills []string) {
	var sb strings.Builder
	if len(skills) == 0 {
		sb.WriteString("No known skills found")
	} else {
		sb.WriteString(fmt.Sprintf("Found %d skills:\n", len(skills)))
		for _, s := range skills {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	p.printBox("EXTRACTED SKILLS", strings.TrimRight(sb.String(), "\n"))
}

// PrintClassification outputs the top categories of a classification.
func (p *Printer) PrintClassification(c *types.Classification, top int) {
	if c == nil || len(c.Categories) == 0 {
		return
	}
	if top <= 0 || top > len(c.Categories) {
		top = len(c.Categories)
	}

	var sb strings.Builder
	for i := 0; i < top; i++ {
		m := c.Categories[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, m.Category))
		sb.WriteString(fmt.Sprintf("    Match: %.1f%%  Confidence: %.1f%%\n", m.MatchPercentage, m.Confidence))
		if len(m.MatchedSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", strings.Join(m.MatchedSkills, ", ")))
		}
		if i < top-1 {
			sb.WriteString("\n")
		}
	}

	if len(c.Categories) > top {
		sb.WriteString(fmt.Sprintf("\n... and %d more categories", len(c.Categories)-top))
	}

	p.printBox("JOB CATEGORIES", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatch outputs the score of one candidate against one posting.
func (p *Printer) PrintMatch(posting *types.JobPosting, result types.MatchResult) {
	var sb strings.Builder
	if posting != nil && (posting.Company != "" || posting.Role != "") {
		sb.WriteString(fmt.Sprintf("Posting:  %s %s\n", posting.Company, posting.Role))
	}
	if result.GatePassed {
		sb.WriteString("Gate:     ✅ passed\n")
	} else {
		sb.WriteString("Gate:     ❌ score minimums not met\n")
	}
	sb.WriteString(fmt.Sprintf("Score:    %.2f / 100", result.Score))

	p.printBox("MATCH RESULT", sb.String())
}

// PrintRankedPostings outputs the best postings for a candidate.
func (p *Printer) PrintRankedPostings(ranked []types.RankedPosting) {
	if len(ranked) == 0 {
		p.printBox("TOP MATCHES", "No postings cleared the score minimums")
		return
	}

	var sb strings.Builder
	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s %s\n", i+1, r.Posting.Company, r.Posting.Role))
		sb.WriteString(fmt.Sprintf("    Score: %.2f\n", r.Score))
		if r.Notes != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", r.Notes))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more postings", len(ranked)-maxItemsToShow))
	}

	p.printBox("TOP MATCHES", strings.TrimRight(sb.String(), "\n"))
}

// PrintTestResult outputs a scored test with per-question review.
func (p *Printer) PrintTestResult(result types.TestResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skill:      %s (%s)\n", result.Skill, result.Difficulty))
	sb.WriteString(fmt.Sprintf("Score:      %d/%d (%.2f%%)\n", result.CorrectCount, result.TotalCount, result.Percentage))
	sb.WriteString(fmt.Sprintf("Level:      %s\n", result.Tier))
	if result.Passed {
		sb.WriteString("Status:     ✅ passed\n")
	} else {
		sb.WriteString("Status:     ❌ not passed\n")
	}

	for _, d := range result.Details {
		mark := "✓"
		if !d.Correct {
			mark = "✗"
		}
		sb.WriteString(fmt.Sprintf("\n%s Q%d: %s\n", mark, d.QuestionIndex+1, d.Prompt))
		if !d.Correct {
			sb.WriteString(fmt.Sprintf("    Your answer: %s\n", d.SelectedOption))
			sb.WriteString(fmt.Sprintf("    Correct:     %s\n", d.CorrectOption))
		}
	}

	p.printBox("TEST RESULT", strings.TrimRight(sb.String(), "\n"))
}

// PrintSummary outputs aggregate statistics and recommendations.
func (p *Printer) PrintSummary(summary types.ResultsSummary, recs types.Recommendations) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tests taken:     %d\n", summary.TotalTests))
	sb.WriteString(fmt.Sprintf("Average score:   %.2f%%\n", summary.AverageScore))
	sb.WriteString(fmt.Sprintf("Expert level:    %d\n", summary.ExpertCount))
	sb.WriteString(fmt.Sprintf("Questions:       %d\n", summary.TotalQuestions))

	if len(recs.Strong) > 0 {
		sb.WriteString(fmt.Sprintf("\nStrong:          %s\n", strings.Join(recs.Strong, ", ")))
	}
	if len(recs.NeedsImprovement) > 0 {
		sb.WriteString(fmt.Sprintf("\nNeeds practice:  %s\n", strings.Join(recs.NeedsImprovement, ", ")))
	}

	p.printBox("RESULTS SUMMARY", strings.TrimRight(sb.String(), "\n"))
}
