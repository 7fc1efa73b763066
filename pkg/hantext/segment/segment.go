// Package segment splits text into sentences, backend-assisted when
// possible and by punctuation heuristics otherwise.
package segment

import (
	"strings"
	"unicode/utf8"

	"github.com/cognicore/hantext/pkg/hantext/backend"
)

// DefaultMinSentenceChars is the minimum sentence length, in runes.
// Shorter fragments merge into the following sentence to avoid
// spurious micro-sentences from abbreviations and ellipses.
const DefaultMinSentenceChars = 2

// Segmenter splits normalized text into sentences. A nil registry
// gives the pure heuristic segmenter.
type Segmenter struct {
	reg    *backend.Registry
	minLen int
}

// New creates a segmenter. minLen <= 0 selects the default threshold.
func New(reg *backend.Registry, minLen int) *Segmenter {
	if minLen <= 0 {
		minLen = DefaultMinSentenceChars
	}
	return &Segmenter{reg: reg, minLen: minLen}
}

// Segment returns the sentences of text, in order, each a non-empty
// trimmed substring of the input. Joining the sentences with the
// original inter-sentence text reconstructs the input.
func (s *Segmenter) Segment(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if s.reg != nil {
		if splitter, ok := s.reg.SentenceSplitter(); ok {
			sentences, err := splitter.SplitSentences(text)
			if err == nil && len(sentences) > 0 {
				return s.mergeShort(text, sentences)
			}
		}
	}

	return s.mergeShort(text, heuristicSplit(text))
}

// heuristicSplit cuts after sentence-final punctuation. The Korean
// declarative pattern (-다. / -요. / -습니다.) ends in a period, so the
// punctuation rule covers it.
func heuristicSplit(text string) []string {
	var sentences []string
	start := 0
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if isTerminal(r) {
			end := i + size
			// absorb consecutive terminals ("...", "?!") and closers
			for end < len(text) {
				nr, nsize := utf8.DecodeRuneInString(text[end:])
				if !isTerminal(nr) && !isCloser(nr) {
					break
				}
				end += nsize
			}
			if s := strings.TrimSpace(text[start:end]); s != "" {
				sentences = append(sentences, s)
			}
			start = end
			i = end
			continue
		}
		i += size
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

type span struct {
	start, end int
}

// mergeShort folds fragments shorter than minLen runes into the
// following sentence (or the preceding one for a trailing fragment).
// Merging happens on spans of the original text, so every returned
// sentence remains a contiguous trimmed slice of the input.
func (s *Segmenter) mergeShort(text string, sentences []string) []string {
	spans := locate(text, sentences)
	if spans == nil {
		// Backend output was not substrings of the input; pass it
		// through rather than invent spans.
		return sentences
	}

	var merged []span
	pending := -1 // index into spans of an unmerged short fragment
	for i, sp := range spans {
		if pending >= 0 {
			sp = span{start: spans[pending].start, end: sp.end}
			pending = -1
		}
		if runeLen(text[sp.start:sp.end]) < s.minLen {
			if i < len(spans)-1 {
				spans[i] = sp
				pending = i
				continue
			}
			// trailing short fragment folds backwards
			if len(merged) > 0 {
				merged[len(merged)-1].end = sp.end
				continue
			}
		}
		merged = append(merged, sp)
	}

	out := make([]string, 0, len(merged))
	for _, sp := range merged {
		if sent := strings.TrimSpace(text[sp.start:sp.end]); sent != "" {
			out = append(out, sent)
		}
	}
	return out
}

// locate maps each sentence back to its span in text. Returns nil if
// any sentence is not found in order.
func locate(text string, sentences []string) []span {
	spans := make([]span, 0, len(sentences))
	cur := 0
	for _, sent := range sentences {
		idx := strings.Index(text[cur:], sent)
		if idx < 0 {
			return nil
		}
		start := cur + idx
		spans = append(spans, span{start: start, end: start + len(sent)})
		cur = start + len(sent)
	}
	return spans
}

// runeLen measures sentence content: terminal punctuation does not
// count toward the minimum-length threshold.
func runeLen(s string) int {
	s = strings.TrimSpace(s)
	s = strings.TrimRightFunc(s, func(r rune) bool { return isTerminal(r) || isCloser(r) })
	return utf8.RuneCountInString(s)
}

func isTerminal(r rune) bool {
	switch r {
	case '.', '!', '?', '…', '。', '！', '？':
		return true
	}
	return false
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '」', '』', '”', '’':
		return true
	}
	return false
}
