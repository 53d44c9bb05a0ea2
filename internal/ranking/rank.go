package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/skill-match/internal/types"
)

// RankPostings scores every posting for a candidate and returns those with a
// positive score, best first. Equal scores keep input order.
func RankPostings(candidate *types.CandidateProfile, postings []types.JobPosting) []types.RankedPosting {
	ranked := make([]types.RankedPosting, 0, len(postings))

	for i := range postings {
		posting := &postings[i]
		result := ScoreMatch(candidate, posting)
		if result.Score <= 0 {
			continue
		}

		skillRatio, matched, missing := computeSkillOverlap(candidate.Skills, posting.RequiredSkills)
		ranked = append(ranked, types.RankedPosting{
			Posting:       *posting,
			Score:         result.Score,
			MatchedSkills: matched,
			MissingSkills: missing,
			Notes:         generateNotes(skillRatio, matched, missing, candidate, posting),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// RankCandidates scores every candidate for a posting and returns those with a
// positive score, best first. Equal scores keep input order.
func RankCandidates(posting *types.JobPosting, candidates []types.CandidateProfile) []types.RankedCandidate {
	ranked := make([]types.RankedCandidate, 0, len(candidates))

	for i := range candidates {
		candidate := &candidates[i]
		result := ScoreMatch(candidate, posting)
		if result.Score <= 0 {
			continue
		}

		skillRatio, matched, missing := computeSkillOverlap(candidate.Skills, posting.RequiredSkills)
		ranked = append(ranked, types.RankedCandidate{
			Candidate:     *candidate,
			Score:         result.Score,
			MatchedSkills: matched,
			MissingSkills: missing,
			Notes:         generateNotes(skillRatio, matched, missing, candidate, posting),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// generateNotes creates a brief explanation of a match.
func generateNotes(skillRatio float64, matched, missing []string, candidate *types.CandidateProfile, posting *types.JobPosting) string {
	var parts []string

	// Skill match description
	switch {
	case len(matched) == 0:
		parts = append(parts, "No skill matches")
	case skillRatio >= 0.7:
		parts = append(parts, fmt.Sprintf("Strong skill match (%s)", strings.Join(matched, ", ")))
	case skillRatio >= 0.4:
		parts = append(parts, fmt.Sprintf("Moderate skill match (%s)", strings.Join(matched, ", ")))
	default:
		parts = append(parts, fmt.Sprintf("Weak skill match (%s)", strings.Join(matched, ", ")))
	}

	if len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("Missing %s", strings.Join(missing, ", ")))
	}

	// Score floor description
	headroom := (computeHeadroom(candidate.ResumeScore, posting.MinResumeScore) +
		computeHeadroom(candidate.TestScore, posting.MinTestScore)) / 2
	if headroom >= 0.5 {
		parts = append(parts, "Clears score minimums comfortably")
	} else {
		parts = append(parts, "Close to score minimums")
	}

	return strings.Join(parts, ". ")
}
