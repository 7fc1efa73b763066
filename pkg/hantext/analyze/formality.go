// Package analyze provides formality and reading-difficulty analysis.
// Both are pure functions over sentences and tokens and never depend
// on a backend.
package analyze

import (
	"sort"
	"strings"
)

// FormalityLevel classifies the speech level of a text.
type FormalityLevel string

const (
	FormalityFormal   FormalityLevel = "formal"
	FormalityInformal FormalityLevel = "informal"
	FormalityMixed    FormalityLevel = "mixed"
	FormalityUnknown  FormalityLevel = "unknown"
)

// Formality is the result of formality analysis.
type Formality struct {
	Level         FormalityLevel
	FormalCount   int
	InformalCount int
	Samples       []string // matched endings, first occurrences
}

// maxFormalitySamples caps the matched-ending samples kept per result.
const maxFormalitySamples = 5

// FormalityLexicon holds the sentence-final ending lists. Endings are
// matched as suffixes of each sentence after trailing punctuation is
// stripped, longest ending first.
type FormalityLexicon struct {
	formal   []string
	informal []string
}

// NewFormalityLexicon builds a lexicon from explicit ending lists.
// Empty lists fall back to the built-in defaults.
func NewFormalityLexicon(formal, informal []string) FormalityLexicon {
	if len(formal) == 0 {
		formal = defaultFormalEndings
	}
	if len(informal) == 0 {
		informal = defaultInformalEndings
	}
	formal = sortedByLength(formal)
	informal = sortedByLength(informal)
	return FormalityLexicon{formal: formal, informal: informal}
}

// DefaultFormalityLexicon returns the built-in ending lists.
func DefaultFormalityLexicon() FormalityLexicon {
	return NewFormalityLexicon(nil, nil)
}

// defaultFormalEndings covers 합쇼체 and 해요체 (polite speech).
var defaultFormalEndings = []string{
	"습니다", "습니까", "십니다", "십니까", "십시오", "니다", "니까",
	"습니다만", "ㅂ시다",
	"어요", "아요", "세요", "셔요", "네요", "지요", "죠", "군요", "요",
}

// defaultInformalEndings covers 반말 (plain and intimate speech).
var defaultInformalEndings = []string{
	"야", "자", "해", "지", "어", "아", "냐", "니", "래", "게",
	"거든", "잖아", "다며", "다니까", "는데", "란다",
}

// AnalyzeFormality classifies the sentence-final endings of the given
// sentences. Texts with no detectable ending (fragments, single nouns)
// come back unknown.
func AnalyzeFormality(sentences []string, lex FormalityLexicon) Formality {
	result := Formality{Level: FormalityUnknown}

	for _, sentence := range sentences {
		tail := strings.TrimRight(strings.TrimSpace(sentence), ".!?…\"')]」』”’。！？ ")
		if tail == "" {
			continue
		}
		if ending, ok := matchEnding(tail, lex.formal); ok {
			result.FormalCount++
			result.Samples = appendSample(result.Samples, ending)
			continue
		}
		if ending, ok := matchEnding(tail, lex.informal); ok {
			result.InformalCount++
			result.Samples = appendSample(result.Samples, ending)
		}
	}

	switch {
	case result.FormalCount > 0 && result.InformalCount == 0:
		result.Level = FormalityFormal
	case result.InformalCount > 0 && result.FormalCount == 0:
		result.Level = FormalityInformal
	case result.FormalCount > 0 && result.InformalCount > 0:
		result.Level = FormalityMixed
	}

	return result
}

func matchEnding(tail string, endings []string) (string, bool) {
	for _, e := range endings {
		if strings.HasSuffix(tail, e) {
			return e, true
		}
	}
	return "", false
}

func appendSample(samples []string, ending string) []string {
	if len(samples) >= maxFormalitySamples {
		return samples
	}
	return append(samples, ending)
}

// sortedByLength orders endings longest first so the most specific
// suffix wins (e.g. "습니다" before "니다" before "다").
func sortedByLength(endings []string) []string {
	out := make([]string, len(endings))
	copy(out, endings)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}
