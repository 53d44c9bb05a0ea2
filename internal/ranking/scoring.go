package ranking

import (
	"math"

	"github.com/jonathan/skill-match/internal/parsing"
	"github.com/jonathan/skill-match/internal/types"
)

// Weights of the match score components
const (
	skillOverlapWeight   = 0.6
	resumeHeadroomWeight = 0.2
	testHeadroomWeight   = 0.2
)

// maxScore is the top of the resume and test score scales.
const maxScore = 100

// ScoreMatch scores a candidate against a posting. A candidate below either
// score floor gets 0 with GatePassed false, whatever the skill overlap.
// Otherwise the score is a weighted sum of skill overlap and the headroom
// above each floor, scaled to 0-100 and rounded to two decimals.
func ScoreMatch(candidate *types.CandidateProfile, posting *types.JobPosting) types.MatchResult {
	if !passesGate(candidate, posting) {
		return types.MatchResult{Score: 0, GatePassed: false}
	}

	skillRatio, _, _ := computeSkillOverlap(candidate.Skills, posting.RequiredSkills)
	resumeRatio := computeHeadroom(candidate.ResumeScore, posting.MinResumeScore)
	testRatio := computeHeadroom(candidate.TestScore, posting.MinTestScore)

	score := 100 * (skillOverlapWeight*skillRatio +
		resumeHeadroomWeight*resumeRatio +
		testHeadroomWeight*testRatio)

	return types.MatchResult{Score: roundTo2(score), GatePassed: true}
}

func passesGate(candidate *types.CandidateProfile, posting *types.JobPosting) bool {
	return candidate.ResumeScore >= posting.MinResumeScore &&
		candidate.TestScore >= posting.MinTestScore
}

// computeSkillOverlap returns the share of required skills the candidate has,
// with the matched and missing required skills in posting order. Both lists
// are normalized and deduplicated first; no required skills means 0.
func computeSkillOverlap(candidateSkills, requiredSkills []string) (float64, []string, []string) {
	required := parsing.NormalizeSkills(requiredSkills)
	if len(required) == 0 {
		return 0, []string{}, []string{}
	}

	have := parsing.SkillSet(candidateSkills)
	matched := make([]string, 0, len(required))
	missing := make([]string, 0)
	for _, skill := range required {
		if have[skill] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	return float64(len(matched)) / float64(len(required)), matched, missing
}

// computeHeadroom returns how far score clears floor, as a share of the room
// left above the floor. A floor of 100 leaves no room and yields 0.
func computeHeadroom(score, floor int) float64 {
	room := maxScore - floor
	if room <= 0 {
		return 0
	}
	return float64(score-floor) / float64(room)
}

func roundTo2(x float64) float64 {
	return math.Round(x*100) / 100
}
