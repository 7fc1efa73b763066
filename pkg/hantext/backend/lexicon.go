package backend

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cognicore/hantext/pkg/hantext/config"
	"github.com/cognicore/hantext/pkg/hantext/internalerr"
	"github.com/cognicore/hantext/pkg/hantext/token"
)

// Lexicon is the fast dictionary-driven tokenizer backend. It splits
// each Hangul eojeol into a stem and a known grammatical suffix
// (particle or ending) by longest-suffix match, and tags non-Hangul
// runs by character class.
type Lexicon struct {
	stems        map[string]config.LexiconEntry
	suffixes     map[string]config.LexiconEntry
	maxSuffixLen int // runes
	sentEndings  []string
}

func openLexicon(path string) (Backend, error) {
	if path == "" {
		return nil, fmt.Errorf("lexicon path not configured: %w", internalerr.ErrBackendUnavailable)
	}
	lex, err := config.LoadLexicon(path)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	return NewLexicon(lex), nil
}

// NewLexicon builds the backend from an in-memory lexicon.
func NewLexicon(lex *config.Lexicon) *Lexicon {
	l := &Lexicon{
		stems:       make(map[string]config.LexiconEntry, len(lex.Stems)),
		suffixes:    make(map[string]config.LexiconEntry, len(lex.Particles)+len(lex.Endings)),
		sentEndings: lex.SentenceEndings,
	}
	for _, e := range lex.Stems {
		l.stems[e.Surface] = e
	}
	for _, e := range lex.Particles {
		l.addSuffix(e)
	}
	for _, e := range lex.Endings {
		l.addSuffix(e)
	}
	return l
}

func (l *Lexicon) addSuffix(e config.LexiconEntry) {
	l.suffixes[e.Surface] = e
	if n := utf8.RuneCountInString(e.Surface); n > l.maxSuffixLen {
		l.maxSuffixLen = n
	}
}

func (l *Lexicon) Name() string { return "lexicon" }

func (l *Lexicon) Capabilities() []Capability {
	return []Capability{CapTokenize, CapPOSTag, CapSentenceSplit}
}

// Tokenize splits text into morpheme-level tokens. Token surfaces are
// exact substrings of the input, so offsets round-trip.
func (l *Lexicon) Tokenize(text string) ([]token.Token, error) {
	var out []token.Token
	for _, run := range token.Runs(text) {
		switch run.Class {
		case token.RunHangul:
			out = append(out, l.analyzeEojeol(run)...)
		case token.RunHanja:
			out = append(out, token.Token{Surface: run.Text, Tag: "SH", Start: run.Start, End: run.End})
		case token.RunLatin:
			out = append(out, token.Token{Surface: run.Text, Tag: "SL", Start: run.Start, End: run.End})
		case token.RunDigit:
			out = append(out, token.Token{Surface: run.Text, Tag: "SN", Start: run.Start, End: run.End})
		default:
			out = append(out, token.Token{Surface: run.Text, Tag: "SP", Start: run.Start, End: run.End})
		}
	}
	return out, nil
}

// analyzeEojeol splits one Hangul chunk into stem + suffix. Unknown
// chunks default to a noun reading, the usual guess for open-class
// vocabulary.
func (l *Lexicon) analyzeEojeol(run token.Run) []token.Token {
	if e, ok := l.stems[run.Text]; ok {
		return []token.Token{{Surface: run.Text, Lemma: e.Lemma, Tag: e.Tag, Start: run.Start, End: run.End}}
	}
	if e, ok := l.suffixes[run.Text]; ok {
		return []token.Token{{Surface: run.Text, Lemma: e.Lemma, Tag: e.Tag, Start: run.Start, End: run.End}}
	}

	runes := []rune(run.Text)
	maxSuf := l.maxSuffixLen
	if maxSuf > len(runes)-1 {
		maxSuf = len(runes) - 1
	}
	for n := maxSuf; n >= 1; n-- {
		stem := string(runes[:len(runes)-n])
		suffix := string(runes[len(runes)-n:])
		se, ok := l.suffixes[suffix]
		if !ok {
			continue
		}
		cut := run.Start + len(stem)
		stemTag := "NNG"
		stemLemma := ""
		if e, known := l.stems[stem]; known {
			stemTag = e.Tag
			stemLemma = e.Lemma
		}
		return []token.Token{
			{Surface: stem, Lemma: stemLemma, Tag: stemTag, Start: run.Start, End: cut},
			{Surface: suffix, Lemma: se.Lemma, Tag: se.Tag, Start: cut, End: run.End},
		}
	}

	return []token.Token{{Surface: run.Text, Tag: "NNG", Start: run.Start, End: run.End}}
}

// SplitSentences cuts at sentence-final punctuation and at known
// sentence-final endings followed by whitespace.
func (l *Lexicon) SplitSentences(text string) ([]string, error) {
	var sentences []string
	start := 0

	flush := func(end int) {
		s := strings.TrimSpace(text[start:end])
		if s != "" {
			sentences = append(sentences, s)
		}
		start = end
	}

	runes := []rune(text)
	pos := 0 // byte position of runes[i]
	for i := 0; i < len(runes); i++ {
		size := utf8.RuneLen(runes[i])
		switch runes[i] {
		case '.', '!', '?', '…':
			// include trailing closers in the sentence
			end := pos + size
			j := i + 1
			for j < len(runes) && isCloser(runes[j]) {
				end += utf8.RuneLen(runes[j])
				j++
			}
			flush(end)
			i = j - 1
			pos = end
			continue
		}
		if runes[i] == ' ' || runes[i] == '\n' {
			if l.endsWithSentenceEnding(text[start:pos]) {
				flush(pos)
			}
		}
		pos += size
	}
	flush(len(text))

	return sentences, nil
}

func (l *Lexicon) endsWithSentenceEnding(chunk string) bool {
	chunk = strings.TrimRight(chunk, " \t\n")
	for _, e := range l.sentEndings {
		if e != "" && strings.HasSuffix(chunk, e) {
			return true
		}
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
