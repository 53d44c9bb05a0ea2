// Package parsing canonicalizes free text and skill names before matching.
package parsing

import (
	"regexp"
	"strings"
)

// disallowedChars matches runs of characters that are not letters, digits,
// whitespace or one of the symbols that carry meaning in skill names
// (".net", "ci/cd", "c++", "c#", "scikit-learn").
var disallowedChars = regexp.MustCompile(`[^\p{L}\p{N}\s.\-+#/]+`)

// NormalizeText lowercases text, replaces every disallowed character with a
// space, collapses whitespace and trims the ends. It never fails; empty input
// yields empty output.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)
	replaced := disallowedChars.ReplaceAllString(lower, " ")

	return strings.Join(strings.Fields(replaced), " ")
}

// NormalizeSkill normalizes a single declared skill so it can be compared
// with vocabulary keywords.
func NormalizeSkill(skill string) string {
	return NormalizeText(skill)
}

// NormalizeSkills normalizes a skill list, dropping empty entries and
// duplicates while keeping first-seen order.
func NormalizeSkills(skills []string) []string {
	if len(skills) == 0 {
		return []string{}
	}

	normalized := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))

	for _, skill := range skills {
		n := NormalizeSkill(skill)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		normalized = append(normalized, n)
	}

	return normalized
}

// SkillSet builds a lookup set from a skill list after normalization.
func SkillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, skill := range NormalizeSkills(skills) {
		set[skill] = true
	}
	return set
}
