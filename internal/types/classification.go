// Package types provides type definitions for structured data used throughout the skill-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CategoryMatch is one job category scored against a skill set.
type CategoryMatch struct {
	Category        string   `json:"category"`
	MatchPercentage float64  `json:"match_percentage"`
	MatchedSkills   []string `json:"matched_skills"`
	TotalMatches    int      `json:"total_matches"`
	Confidence      float64  `json:"confidence"`
}

// Classification is the ordered list of category matches, best first.
type Classification struct {
	Categories []CategoryMatch `json:"categories"`
}

// Top returns the best category match, or false when there are no categories.
func (c *Classification) Top() (CategoryMatch, bool) {
	if c == nil || len(c.Categories) == 0 {
		return CategoryMatch{}, false
	}
	return c.Categories[0], true
}
