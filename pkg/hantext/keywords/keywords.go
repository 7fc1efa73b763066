// Package keywords extracts salient terms from Korean/mixed text.
package keywords

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/cognicore/hantext/pkg/hantext/backend"
	"github.com/cognicore/hantext/pkg/hantext/internalerr"
	"github.com/cognicore/hantext/pkg/hantext/token"
	"github.com/cognicore/hantext/pkg/hantext/tokenize"
)

// Keyword is one extracted term with its salience score. Higher is
// more salient; the scale is term frequency over token count.
type Keyword struct {
	Term  string
	Score float64
}

// Extractor scores terms by frequency, preferring a noun-extraction
// backend and degrading to content-word filtering over tokenizer
// output.
type Extractor struct {
	reg       *backend.Registry
	tok       *tokenize.Facade
	stopwords map[string]struct{}
	transient atomic.Int64
}

// New creates an extractor. The stopword list is optional.
func New(reg *backend.Registry, stopwords []string) *Extractor {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Extractor{
		reg:       reg,
		tok:       tokenize.New(reg),
		stopwords: stops,
	}
}

// Extract returns up to k keywords ordered by score descending, ties
// broken by first appearance. k < 1 is a caller contract violation
// and returns ErrInvalidInput.
func (e *Extractor) Extract(text string, k int) ([]Keyword, error) {
	if k < 1 {
		return nil, fmt.Errorf("extract keywords: k=%d: %w", k, internalerr.ErrInvalidInput)
	}

	text = token.NFC(text)
	candidates := e.candidates(text)
	if len(candidates) == 0 {
		return nil, nil
	}

	type termStat struct {
		count int
		first int // byte offset of first appearance
	}
	stats := make(map[string]*termStat)
	for _, t := range candidates {
		term := normalizeTerm(t)
		if term == "" {
			continue
		}
		if _, stop := e.stopwords[term]; stop {
			continue
		}
		st, ok := stats[term]
		if !ok {
			stats[term] = &termStat{count: 1, first: t.Start}
			continue
		}
		st.count++
	}
	if len(stats) == 0 {
		return nil, nil
	}

	type scored struct {
		Keyword
		first int
	}
	total := float64(len(candidates))
	all := make([]scored, 0, len(stats))
	for term, st := range stats {
		all = append(all, scored{
			Keyword: Keyword{Term: term, Score: float64(st.count) / total},
			first:   st.first,
		})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score > all[j].Score
		}
		return all[i].first < all[j].first
	})

	if len(all) > k {
		all = all[:k]
	}
	out := make([]Keyword, len(all))
	for i, s := range all {
		out[i] = s.Keyword
	}
	return out, nil
}

// TransientFailures reports how many calls fell back to the tokenizer
// path because the noun-extraction backend failed.
func (e *Extractor) TransientFailures() int64 {
	return e.transient.Load()
}

// candidates collects noun tokens from the best available source.
func (e *Extractor) candidates(text string) []token.Token {
	if extractor, ok := e.reg.NounExtractor(); ok {
		nouns, err := extractor.Nouns(text)
		if err == nil {
			return nouns
		}
		// transient backend failure: fall through to tokenizer path
		e.transient.Add(1)
	}

	var out []token.Token
	for _, t := range e.tok.Tokenize(text) {
		if isContentWord(t) {
			out = append(out, t)
		}
	}
	return out
}

// isContentWord approximates nouns: noun-tagged morphemes, or
// untagged Hangul/Latin tokens of at least two characters from the
// heuristic path.
func isContentWord(t token.Token) bool {
	if strings.HasPrefix(t.Tag, "NN") {
		return true
	}
	if t.Tag != token.TagUnknown {
		return false
	}
	if utf8.RuneCountInString(t.Surface) < 2 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(t.Surface)
	return token.IsHangul(r) || isLatinLetter(r)
}

func isLatinLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func normalizeTerm(t token.Token) string {
	return strings.ToLower(strings.TrimSpace(t.Root()))
}
