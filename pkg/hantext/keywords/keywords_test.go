package keywords

import (
	"errors"
	"testing"

	"github.com/cognicore/hantext/pkg/hantext/backend"
	"github.com/cognicore/hantext/pkg/hantext/internalerr"
	"github.com/cognicore/hantext/pkg/hantext/token"
)

func emptyRegistry() *backend.Registry {
	return backend.NewRegistryWithProbes(nil)
}

func registryWith(b backend.Backend) *backend.Registry {
	return backend.NewRegistryWithProbes([]backend.Probe{
		{Name: b.Name(), Init: func() (backend.Backend, error) { return b, nil }},
	})
}

// nounLister returns a canned noun list.
type nounLister struct {
	nouns []token.Token
	err   error
}

func (n *nounLister) Name() string { return "nounlister" }
func (n *nounLister) Capabilities() []backend.Capability {
	return []backend.Capability{backend.CapNounExtract}
}
func (n *nounLister) Nouns(string) ([]token.Token, error) {
	return n.nouns, n.err
}

func TestExtractInvalidK(t *testing.T) {
	e := New(emptyRegistry(), nil)

	for _, k := range []int{0, -1, -10} {
		if _, err := e.Extract("학교에 간다", k); !errors.Is(err, internalerr.ErrInvalidInput) {
			t.Errorf("Extract(k=%d) error = %v, want ErrInvalidInput", k, err)
		}
	}
}

func TestExtractEmptyText(t *testing.T) {
	e := New(emptyRegistry(), nil)

	kws, err := e.Extract("", 5)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(kws) != 0 {
		t.Errorf("Extract(empty) = %v, want none", kws)
	}
}

func TestExtractFrequencyOrder(t *testing.T) {
	e := New(emptyRegistry(), nil)

	kws, err := e.Extract("학교 학교 학교 공부 공부 놀이", 3)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := []string{"학교", "공부", "놀이"}
	if len(kws) != len(want) {
		t.Fatalf("got %d keywords %v, want %d", len(kws), kws, len(want))
	}
	for i, w := range want {
		if kws[i].Term != w {
			t.Errorf("keyword[%d] = %q, want %q", i, kws[i].Term, w)
		}
	}
	for i := 1; i < len(kws); i++ {
		if kws[i].Score > kws[i-1].Score {
			t.Errorf("scores increase at %d: %v", i, kws)
		}
	}
}

func TestExtractCapsAtK(t *testing.T) {
	e := New(emptyRegistry(), nil)

	kws, err := e.Extract("하나 둘 셋 넷 다섯", 2)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(kws) != 2 {
		t.Errorf("got %d keywords, want 2", len(kws))
	}
}

func TestExtractTieBreaksByFirstAppearance(t *testing.T) {
	e := New(emptyRegistry(), nil)

	kws, err := e.Extract("나중 먼저 나중 먼저", 2)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(kws) != 2 {
		t.Fatalf("got %v, want 2 keywords", kws)
	}
	if kws[0].Term != "나중" {
		t.Errorf("first keyword = %q, want 나중 (earlier first offset)", kws[0].Term)
	}
	if kws[0].Score != kws[1].Score {
		t.Errorf("scores differ on a tie: %v", kws)
	}
}

func TestExtractStopwords(t *testing.T) {
	e := New(emptyRegistry(), []string{"학교"})

	kws, err := e.Extract("학교 학교 공부", 5)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	for _, kw := range kws {
		if kw.Term == "학교" {
			t.Errorf("stopword leaked into keywords: %v", kws)
		}
	}
}

func TestExtractSkipsShortAndNonWordTokens(t *testing.T) {
	e := New(emptyRegistry(), nil)

	kws, err := e.Extract("꽃 12 !! 단어 단어", 5)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	for _, kw := range kws {
		if kw.Term != "단어" {
			t.Errorf("unexpected keyword %q (single-rune, digit, and punctuation tokens are not candidates)", kw.Term)
		}
	}
}

func TestExtractUsesNounBackend(t *testing.T) {
	lister := &nounLister{nouns: []token.Token{
		{Surface: "학교를", Lemma: "학교", Tag: "NNG", Start: 0, End: 9},
		{Surface: "학교", Lemma: "학교", Tag: "NNG", Start: 10, End: 16},
		{Surface: "공부", Tag: "NNG", Start: 17, End: 23},
	}}
	e := New(registryWith(lister), nil)

	kws, err := e.Extract("학교를 학교 공부", 5)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(kws) != 2 {
		t.Fatalf("got %v, want lemma-merged 학교 and 공부", kws)
	}
	if kws[0].Term != "학교" || kws[1].Term != "공부" {
		t.Errorf("keywords = %v, want [학교 공부]", kws)
	}
}

func TestExtractNounBackendErrorFallsBack(t *testing.T) {
	lister := &nounLister{err: errors.New("dictionary gone")}
	e := New(registryWith(lister), nil)

	kws, err := e.Extract("공부 공부 놀이", 5)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(kws) == 0 {
		t.Error("backend failure should fall back to the tokenizer path")
	}
	if e.TransientFailures() != 1 {
		t.Errorf("TransientFailures = %d, want 1", e.TransientFailures())
	}

	// degradation is per call and counted per call
	e.Extract("다시 실패", 5)
	if e.TransientFailures() != 2 {
		t.Errorf("TransientFailures = %d, want 2", e.TransientFailures())
	}
}

func TestExtractHealthyBackendCountsNoFailures(t *testing.T) {
	lister := &nounLister{nouns: []token.Token{{Surface: "학교", Tag: "NNG"}}}
	e := New(registryWith(lister), nil)

	if _, err := e.Extract("학교", 5); err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if e.TransientFailures() != 0 {
		t.Errorf("TransientFailures = %d, want 0", e.TransientFailures())
	}
}
