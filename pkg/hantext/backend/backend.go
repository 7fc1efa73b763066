// Package backend models optional Korean NLP backends as capability
// sets. Components ask the registry for a capability, never for a
// specific backend, so backends can be added or removed without
// touching the consumers.
package backend

import (
	"context"

	"github.com/cognicore/hantext/pkg/hantext/token"
)

// Capability is one text-processing ability a backend can advertise.
type Capability string

const (
	CapTokenize      Capability = "tokenize"
	CapPOSTag        Capability = "pos-tag"
	CapSpacing       Capability = "spacing"
	CapSentenceSplit Capability = "sentence-split"
	CapNounExtract   Capability = "noun-extract"
	CapSpellCheck    Capability = "spell-check"
	CapHanjaConvert  Capability = "hanja-convert"
)

// Backend is the common surface of every probed backend.
type Backend interface {
	Name() string
	Capabilities() []Capability
}

// Tokenizer produces tokens with byte offsets into the input.
type Tokenizer interface {
	Backend
	Tokenize(text string) ([]token.Token, error)
}

// Spacer re-inserts spaces into text whose whitespace has been
// stripped. The returned string must contain exactly the input's
// characters with only spaces added.
type Spacer interface {
	Backend
	Space(despaced string) (string, error)
}

// SentenceSplitter splits text into trimmed sentence substrings in
// input order.
type SentenceSplitter interface {
	Backend
	SplitSentences(text string) ([]string, error)
}

// NounExtractor returns noun tokens found in the text.
type NounExtractor interface {
	Backend
	Nouns(text string) ([]token.Token, error)
}

// SpellChecker corrects spelling. The only backend operation that may
// touch the network, so it carries a context.
type SpellChecker interface {
	Backend
	Check(ctx context.Context, text string) (string, error)
}

// HanjaConverter replaces CJK ideographs with their Hangul readings.
type HanjaConverter interface {
	Backend
	ToHangul(text string) (string, error)
}

// Descriptor records one probe outcome. Immutable after probing.
type Descriptor struct {
	Name         string
	Capabilities []Capability
	Available    bool
	InitError    string
}

// Has reports whether the descriptor advertises the capability.
func (d Descriptor) Has(c Capability) bool {
	for _, got := range d.Capabilities {
		if got == c {
			return true
		}
	}
	return false
}
