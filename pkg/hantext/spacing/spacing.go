// Package spacing corrects word spacing in run-on Korean text.
package spacing

import (
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/cognicore/hantext/pkg/hantext/backend"
)

// Corrector fixes whitespace through a spacing-capable backend. With
// no such backend the input passes through unchanged; callers consult
// the status report to learn that no correction happened.
type Corrector struct {
	reg       *backend.Registry
	transient atomic.Int64
}

// New creates a spacing corrector over the registry.
func New(reg *backend.Registry) *Corrector {
	return &Corrector{reg: reg}
}

// Available reports whether a spacing backend is present.
func (c *Corrector) Available() bool {
	return c.reg.Has(backend.CapSpacing)
}

// Correct returns the text with corrected spacing. Only whitespace is
// edited: the non-whitespace character sequence is preserved exactly.
// The correction is a function of that sequence alone (existing spaces
// are stripped before re-spacing), which makes Correct idempotent.
func (c *Corrector) Correct(text string) string {
	out, _ := c.Apply(text)
	return out
}

// Apply corrects spacing like Correct and additionally reports whether
// a backend correction was actually applied. applied is false when no
// spacing backend exists and when the backend failed on this call.
func (c *Corrector) Apply(text string) (corrected string, applied bool) {
	spacer, ok := c.reg.Spacer()
	if !ok {
		return text, false
	}

	despaced := despace(text)
	if despaced == "" {
		return text, false
	}

	spaced, err := spacer.Space(despaced)
	if err != nil || despace(spaced) != despaced {
		// Transient backend failure, or a backend that edited
		// characters instead of spaces. Either way the contract
		// says hand back the input.
		c.transient.Add(1)
		return text, false
	}
	return spaced, true
}

// TransientFailures reports how many calls returned the input
// unchanged because the spacing backend failed.
func (c *Corrector) TransientFailures() int64 {
	return c.transient.Load()
}

func despace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
