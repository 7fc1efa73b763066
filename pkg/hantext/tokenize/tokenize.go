// Package tokenize selects the best available tokenizing backend and
// guarantees a well-formed token stream even with no backends at all.
package tokenize

import (
	"sync/atomic"

	"github.com/cognicore/hantext/pkg/hantext/backend"
	"github.com/cognicore/hantext/pkg/hantext/token"
)

// Facade tokenizes through the highest-priority capable backend,
// falling back to the character-class heuristic. A backend failure on
// a specific input degrades that call only; the backend is not
// demoted. Safe for concurrent use.
type Facade struct {
	reg       *backend.Registry
	transient atomic.Int64
}

// New creates a tokenizer facade over the registry.
func New(reg *backend.Registry) *Facade {
	return &Facade{reg: reg}
}

// Tokenize returns tokens for NFC-normalized text. Input is
// re-normalized defensively; offsets always refer to the NFC form.
// Empty input yields an empty sequence. Never fails: any backend
// error routes the call to the heuristic path.
func (f *Facade) Tokenize(text string) []token.Token {
	text = token.NFC(text)
	if text == "" {
		return nil
	}

	tok, ok := f.reg.Tokenizer()
	if !ok {
		return Heuristic(text)
	}

	toks, err := tok.Tokenize(text)
	if err != nil || !wellFormed(toks, text) {
		f.transient.Add(1)
		return Heuristic(text)
	}
	return toks
}

// TransientFailures reports how many calls fell back to the heuristic
// because an available backend failed.
func (f *Facade) TransientFailures() int64 {
	return f.transient.Load()
}

// wellFormed checks the token-stream guarantees: offsets monotonically
// non-decreasing, within bounds, and each surface an exact substring
// at its offset.
func wellFormed(toks []token.Token, text string) bool {
	prevEnd := 0
	for _, t := range toks {
		if t.Start < prevEnd || t.End < t.Start || t.End > len(text) {
			return false
		}
		if text[t.Start:t.End] != t.Surface {
			return false
		}
		prevEnd = t.End
	}
	return true
}
