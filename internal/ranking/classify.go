// Package ranking provides functionality to classify skill sets into job
// categories and to score candidates against job postings.
package ranking

import (
	"sort"

	"github.com/jonathan/skill-match/internal/parsing"
	"github.com/jonathan/skill-match/internal/types"
	"github.com/jonathan/skill-match/internal/vocabulary"
)

// confidenceFactor scales a match percentage into a confidence value.
const confidenceFactor = 2.0

// Classify scores skills against every category of vocab. Skills are
// normalized before matching, so "Python" and "python" are the same skill.
// The result is ordered by match percentage, then total matches, both
// descending; ties keep vocabulary declaration order.
func Classify(skills []string, vocab *vocabulary.Vocabulary) *types.Classification {
	normalized := parsing.NormalizeSkills(skills)
	categories := vocab.Categories()
	matches := make([]types.CategoryMatch, 0, len(categories))

	for _, c := range categories {
		matches = append(matches, classifyCategory(normalized, c))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchPercentage != matches[j].MatchPercentage {
			return matches[i].MatchPercentage > matches[j].MatchPercentage
		}
		return matches[i].TotalMatches > matches[j].TotalMatches
	})

	return &types.Classification{Categories: matches}
}

func classifyCategory(skills []string, c vocabulary.Category) types.CategoryMatch {
	keywords := make(map[string]bool, len(c.Keywords))
	for _, kw := range c.Keywords {
		keywords[kw] = true
	}

	matched := make([]string, 0)
	for _, skill := range skills {
		if keywords[skill] {
			matched = append(matched, skill)
		}
	}

	percentage := 0.0
	if len(c.Keywords) > 0 {
		percentage = 100 * float64(len(matched)) * c.Weight / float64(len(c.Keywords))
	}

	return types.CategoryMatch{
		Category:        c.Name,
		MatchPercentage: percentage,
		MatchedSkills:   matched,
		TotalMatches:    len(matched),
		Confidence:      min(percentage*confidenceFactor, 100),
	}
}
