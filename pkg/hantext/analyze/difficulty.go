package analyze

import (
	"github.com/cognicore/hantext/pkg/hantext/token"
)

// DifficultyLevel classifies reading difficulty.
type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "beginner"
	DifficultyIntermediate DifficultyLevel = "intermediate"
	DifficultyAdvanced     DifficultyLevel = "advanced"
)

// Difficulty is the result of reading-difficulty analysis.
type Difficulty struct {
	Level           DifficultyLevel
	AvgSentenceLen  float64 // tokens per sentence
	HanjaRatio      float64 // CJK ideographs / non-whitespace characters
	VocabComplexity float64 // distinct roots / total tokens
}

// DifficultyThresholds are the classification cut-offs. These are
// reconstructed defaults meant to be tuned per corpus.
type DifficultyThresholds struct {
	HanjaAdvanced      float64
	HanjaIntermediate  float64
	AvgLenAdvanced     float64
	AvgLenIntermediate float64
}

// DefaultDifficultyThresholds returns the built-in cut-offs.
func DefaultDifficultyThresholds() DifficultyThresholds {
	return DifficultyThresholds{
		HanjaAdvanced:      0.2,
		HanjaIntermediate:  0.05,
		AvgLenAdvanced:     20,
		AvgLenIntermediate: 10,
	}
}

// ReadingDifficulty scores text by average sentence length, Hanja
// density, and vocabulary variety.
func ReadingDifficulty(text string, tokens []token.Token, sentences []string, th DifficultyThresholds) Difficulty {
	d := Difficulty{Level: DifficultyBeginner}

	if len(sentences) > 0 {
		d.AvgSentenceLen = float64(len(tokens)) / float64(len(sentences))
	}
	d.HanjaRatio = token.HanjaRatio(text)

	if len(tokens) > 0 {
		roots := make(map[string]struct{}, len(tokens))
		for _, t := range tokens {
			roots[t.Root()] = struct{}{}
		}
		d.VocabComplexity = float64(len(roots)) / float64(len(tokens))
	}

	switch {
	case d.HanjaRatio > th.HanjaAdvanced || d.AvgSentenceLen > th.AvgLenAdvanced:
		d.Level = DifficultyAdvanced
	case d.HanjaRatio > th.HanjaIntermediate || d.AvgSentenceLen > th.AvgLenIntermediate:
		d.Level = DifficultyIntermediate
	}

	return d
}
