package backend

import (
	"fmt"
	"sync"

	"github.com/cognicore/hantext/pkg/hantext/config"
)

// Probe is one named backend initializer. Init returns the live
// backend or an error explaining why it is unavailable.
type Probe struct {
	Name string
	Init func() (Backend, error)
}

// Registry probes the known backends once, in priority order, and
// serves the cached result afterwards. Safe for concurrent first use:
// exactly one probe pass runs, concurrent callers block until it
// finishes, then read the immutable result without locking.
type Registry struct {
	probes []Probe

	once        sync.Once
	backends    []Backend // available only, priority order
	descriptors []Descriptor
}

// NewRegistry builds a registry with the standard probe set, fastest
// backend first:
//
//  1. lexicon  — dictionary tokenizer (tokenize, pos-tag, sentence-split)
//  2. morphdb  — SQLite morphological dictionary (tokenize, pos-tag,
//     noun-extract, spacing)
//  3. cohesion — unsupervised noun extractor (noun-extract)
//  4. webspell — networked spell checker (spell-check)
//  5. hanjatab — Hanja reading table (hanja-convert)
func NewRegistry(cfg config.Backends) *Registry {
	return NewRegistryWithProbes([]Probe{
		{Name: "lexicon", Init: func() (Backend, error) { return openLexicon(cfg.LexiconPath) }},
		{Name: "morphdb", Init: func() (Backend, error) { return openMorphDB(cfg.MorphDBPath) }},
		{Name: "cohesion", Init: func() (Backend, error) { return openCohesion(cfg.CohesionStatsPath) }},
		{Name: "webspell", Init: func() (Backend, error) { return newWebSpell(cfg) }},
		{Name: "hanjatab", Init: func() (Backend, error) { return openHanjaTab(cfg.HanjaTablePath) }},
	})
}

// NewRegistryWithProbes builds a registry with a custom probe list.
// Probe order is priority order.
func NewRegistryWithProbes(probes []Probe) *Registry {
	return &Registry{probes: probes}
}

// Probe runs the one-time probe pass and returns the descriptors.
// Each probe is isolated: a failing backend is recorded with its error
// and never aborts probing of the rest. Probing performs no network
// calls. Subsequent calls return the cached result.
func (r *Registry) Probe() []Descriptor {
	r.once.Do(func() {
		r.descriptors = make([]Descriptor, 0, len(r.probes))
		for _, p := range r.probes {
			b, err := r.runProbe(p)
			if err != nil {
				r.descriptors = append(r.descriptors, Descriptor{
					Name:      p.Name,
					Available: false,
					InitError: err.Error(),
				})
				continue
			}
			r.backends = append(r.backends, b)
			r.descriptors = append(r.descriptors, Descriptor{
				Name:         b.Name(),
				Capabilities: b.Capabilities(),
				Available:    true,
			})
		}
	})
	return r.descriptors
}

// runProbe isolates a single probe, converting panics in backend
// initialization into an unavailable result.
func (r *Registry) runProbe(p Probe) (b Backend, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			b = nil
			err = fmt.Errorf("probe panicked: %v", rec)
		}
	}()
	return p.Init()
}

// Descriptors returns the cached probe outcomes, probing on first use.
func (r *Registry) Descriptors() []Descriptor {
	return r.Probe()
}

// Has reports whether any available backend advertises the capability.
func (r *Registry) Has(c Capability) bool {
	for _, d := range r.Probe() {
		if d.Available && d.Has(c) {
			return true
		}
	}
	return false
}

// lookup returns the highest-priority available backend advertising c.
func (r *Registry) lookup(c Capability) (Backend, bool) {
	r.Probe()
	for _, b := range r.backends {
		for _, got := range b.Capabilities() {
			if got == c {
				return b, true
			}
		}
	}
	return nil, false
}

// Tokenizer returns the preferred tokenizing backend, if any.
func (r *Registry) Tokenizer() (Tokenizer, bool) {
	b, ok := r.lookup(CapTokenize)
	if !ok {
		return nil, false
	}
	t, ok := b.(Tokenizer)
	return t, ok
}

// Spacer returns the preferred spacing backend, if any.
func (r *Registry) Spacer() (Spacer, bool) {
	b, ok := r.lookup(CapSpacing)
	if !ok {
		return nil, false
	}
	s, ok := b.(Spacer)
	return s, ok
}

// SentenceSplitter returns the preferred sentence-splitting backend.
func (r *Registry) SentenceSplitter() (SentenceSplitter, bool) {
	b, ok := r.lookup(CapSentenceSplit)
	if !ok {
		return nil, false
	}
	s, ok := b.(SentenceSplitter)
	return s, ok
}

// NounExtractor returns the preferred noun-extraction backend.
func (r *Registry) NounExtractor() (NounExtractor, bool) {
	b, ok := r.lookup(CapNounExtract)
	if !ok {
		return nil, false
	}
	n, ok := b.(NounExtractor)
	return n, ok
}

// SpellChecker returns the spell-check backend, if configured.
func (r *Registry) SpellChecker() (SpellChecker, bool) {
	b, ok := r.lookup(CapSpellCheck)
	if !ok {
		return nil, false
	}
	s, ok := b.(SpellChecker)
	return s, ok
}

// HanjaConverter returns the Hanja conversion backend, if any.
func (r *Registry) HanjaConverter() (HanjaConverter, bool) {
	b, ok := r.lookup(CapHanjaConvert)
	if !ok {
		return nil, false
	}
	h, ok := b.(HanjaConverter)
	return h, ok
}
