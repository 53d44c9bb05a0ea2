// Package skills provides functionality to extract vocabulary skills from free text.
package skills

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/skill-match/internal/parsing"
	"github.com/jonathan/skill-match/internal/vocabulary"
)

// wordChars is the class of characters that may not touch a keyword on
// either side for the keyword to count as a whole-word match.
const wordChars = `\p{L}\p{N}_`

// skillSeparator joins extracted skills back into text. The period keeps
// adjacent keywords from forming a phrase that was never in the input.
const skillSeparator = ". "

type keywordMatcher struct {
	keyword string
	pattern *regexp.Regexp
}

// Extractor finds vocabulary keywords in free text. It compiles one pattern
// per distinct keyword up front and is safe for concurrent use.
type Extractor struct {
	matchers []keywordMatcher
}

// NewExtractor compiles matchers for every distinct keyword of the vocabulary.
func NewExtractor(vocab *vocabulary.Vocabulary) *Extractor {
	keywords := vocab.Keywords()
	matchers := make([]keywordMatcher, 0, len(keywords))

	for _, kw := range keywords {
		matchers = append(matchers, keywordMatcher{
			keyword: kw,
			pattern: keywordPattern(kw),
		})
	}

	return &Extractor{matchers: matchers}
}

// keywordPattern anchors kw on word boundaries. Go's \b only understands ASCII
// word characters and fails next to keywords ending in a symbol ("c++"), so
// the boundary is spelled out as "start of text or a non-word character".
func keywordPattern(kw string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^` + wordChars + `])` + regexp.QuoteMeta(kw) + `(?:$|[^` + wordChars + `])`)
}

// Extract returns the distinct keywords that occur in text as whole words,
// sorted alphabetically. Text is normalized first, so matching is
// case-insensitive and ignores punctuation the normalizer strips. A phrase
// keyword and its component keywords are all reported.
func (e *Extractor) Extract(text string) []string {
	normalized := parsing.NormalizeText(text)
	found := []string{}
	if normalized == "" {
		return found
	}

	for _, m := range e.matchers {
		if m.pattern.MatchString(normalized) {
			found = append(found, m.keyword)
		}
	}

	sort.Strings(found)
	return found
}

// Len returns the number of keywords the extractor looks for.
func (e *Extractor) Len() int {
	return len(e.matchers)
}

// ExtractSkills is a convenience wrapper that builds an Extractor for vocab
// and runs it once. Callers extracting repeatedly should keep an Extractor.
func ExtractSkills(text string, vocab *vocabulary.Vocabulary) []string {
	return NewExtractor(vocab).Extract(text)
}

// JoinSkills renders a skill set as text that extracts back to the same set.
func JoinSkills(skills []string) string {
	return strings.Join(skills, skillSeparator)
}
