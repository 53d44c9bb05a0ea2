package assessment

import (
	"encoding/json"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/skill-match/internal/types"
)

// Recommendation thresholds on the test percentage.
const (
	weakThreshold   = 60.0
	strongThreshold = 80.0
)

type resultKey struct {
	skill      string
	difficulty types.Difficulty
}

// Results is a candidate's scored tests, one per (skill, difficulty). Skill
// names compare case-insensitively.
type Results struct {
	byKey map[resultKey]types.TestResult
}

// ExportDocument is the JSON layout written by Export.
type ExportDocument struct {
	Summary    types.ResultsSummary `json:"summary"`
	Results    []types.TestResult   `json:"results"`
	ExportedAt time.Time            `json:"exported_at"`
}

// NewResults returns an empty collection.
func NewResults() *Results {
	return &Results{byKey: make(map[resultKey]types.TestResult)}
}

func keyOf(skill string, difficulty types.Difficulty) resultKey {
	return resultKey{skill: strings.ToLower(strings.TrimSpace(skill)), difficulty: difficulty}
}

// Put stores r, replacing any result for the same skill and difficulty.
func (r *Results) Put(result types.TestResult) {
	r.byKey[keyOf(result.Skill, result.Difficulty)] = result
}

// Get returns the result for a skill and difficulty.
func (r *Results) Get(skill string, difficulty types.Difficulty) (types.TestResult, bool) {
	result, ok := r.byKey[keyOf(skill, difficulty)]
	return result, ok
}

// Len returns the number of stored results.
func (r *Results) Len() int {
	return len(r.byKey)
}

// All returns the results ordered by skill, then difficulty from easy to hard.
func (r *Results) All() []types.TestResult {
	all := make([]types.TestResult, 0, len(r.byKey))
	for _, result := range r.byKey {
		all = append(all, result)
	}

	sort.Slice(all, func(i, j int) bool {
		ki, kj := keyOf(all[i].Skill, all[i].Difficulty), keyOf(all[j].Skill, all[j].Difficulty)
		if ki.skill != kj.skill {
			return ki.skill < kj.skill
		}
		return difficultyRank(ki.difficulty) < difficultyRank(kj.difficulty)
	})
	return all
}

// Latest returns the most recently completed result.
func (r *Results) Latest() (types.TestResult, bool) {
	var latest types.TestResult
	found := false
	for _, result := range r.All() {
		if !found || result.Timestamp.After(latest.Timestamp) {
			latest = result
			found = true
		}
	}
	return latest, found
}

// Summary aggregates the stored results.
func (r *Results) Summary() types.ResultsSummary {
	summary := types.ResultsSummary{TotalTests: len(r.byKey)}
	if summary.TotalTests == 0 {
		return summary
	}

	total := 0.0
	for _, result := range r.byKey {
		total += result.Percentage
		summary.TotalQuestions += result.TotalCount
		if result.Tier == types.TierExpert {
			summary.ExpertCount++
		}
	}
	summary.AverageScore = math.Round(total/float64(summary.TotalTests)*100) / 100

	return summary
}

// Recommendations lists skills scoring below 60% as needing improvement and
// skills scoring 80% or more as strong. Each list is deduplicated and sorted.
func (r *Results) Recommendations() types.Recommendations {
	weak := make(map[string]bool)
	strong := make(map[string]bool)

	for key, result := range r.byKey {
		switch {
		case result.Percentage < weakThreshold:
			weak[key.skill] = true
		case result.Percentage >= strongThreshold:
			strong[key.skill] = true
		}
	}

	return types.Recommendations{
		NeedsImprovement: sortedKeys(weak),
		Strong:           sortedKeys(strong),
	}
}

// Export renders the summary and all results as indented JSON.
func (r *Results) Export(at time.Time) ([]byte, error) {
	doc := ExportDocument{
		Summary:    r.Summary(),
		Results:    r.All(),
		ExportedAt: at.UTC(),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Clear removes every result.
func (r *Results) Clear() {
	r.byKey = make(map[resultKey]types.TestResult)
}

func difficultyRank(d types.Difficulty) int {
	for i, known := range types.Difficulties {
		if d == known {
			return i
		}
	}
	return len(types.Difficulties)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
