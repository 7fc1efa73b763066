package backend

import (
	"testing"

	"github.com/cognicore/hantext/pkg/hantext/config"
)

func testLexicon() *Lexicon {
	return NewLexicon(&config.Lexicon{
		Stems: []config.LexiconEntry{
			{Surface: "나", Tag: "NP"},
			{Surface: "학생", Tag: "NNG"},
			{Surface: "학교", Tag: "NNG"},
			{Surface: "가", Lemma: "가다", Tag: "VV"},
		},
		Particles: []config.LexiconEntry{
			{Surface: "는", Tag: "JX"},
			{Surface: "에", Tag: "JKB"},
			{Surface: "이", Tag: "JKS"},
		},
		Endings: []config.LexiconEntry{
			{Surface: "ㄴ다", Tag: "EF"},
			{Surface: "이다", Tag: "EF"},
			{Surface: "습니다", Tag: "EF"},
		},
		SentenceEndings: []string{"습니다", "이다", "다"},
	})
}

func TestLexiconTokenizeStemSuffix(t *testing.T) {
	lex := testLexicon()

	toks, err := lex.Tokenize("나는 학교에")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	want := []struct {
		surface, tag string
	}{
		{"나", "NP"},
		{"는", "JX"},
		{"학교", "NNG"},
		{"에", "JKB"},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Surface != w.surface || toks[i].Tag != w.tag {
			t.Errorf("token %d = {%q %q}, want {%q %q}", i, toks[i].Surface, toks[i].Tag, w.surface, w.tag)
		}
	}
}

func TestLexiconTokenizeRoundTrip(t *testing.T) {
	lex := testLexicon()
	text := "나는 학교에 갑니다. 2024년 test!"

	toks, err := lex.Tokenize(text)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	for _, tok := range toks {
		if text[tok.Start:tok.End] != tok.Surface {
			t.Errorf("token %q: offsets [%d,%d) map to %q", tok.Surface, tok.Start, tok.End, text[tok.Start:tok.End])
		}
	}
}

func TestLexiconUnknownEojeolDefaultsToNoun(t *testing.T) {
	lex := testLexicon()

	toks, err := lex.Tokenize("바나나")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 1 || toks[0].Tag != "NNG" {
		t.Errorf("unknown eojeol = %v, want one NNG token", toks)
	}
}

func TestLexiconNonHangulTags(t *testing.T) {
	lex := testLexicon()

	toks, err := lex.Tokenize("GPT 모델 3개 出市!")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	tags := make(map[string]string)
	for _, tok := range toks {
		tags[tok.Surface] = tok.Tag
	}
	if tags["GPT"] != "SL" {
		t.Errorf("latin run tagged %q, want SL", tags["GPT"])
	}
	if tags["3"] != "SN" {
		t.Errorf("digit run tagged %q, want SN", tags["3"])
	}
	if tags["出市"] != "SH" {
		t.Errorf("hanja run tagged %q, want SH", tags["出市"])
	}
	if tags["!"] != "SP" {
		t.Errorf("punctuation tagged %q, want SP", tags["!"])
	}
}

func TestLexiconSplitSentences(t *testing.T) {
	lex := testLexicon()

	sentences, err := lex.SplitSentences("안녕하십니까. 만나서 반갑습니다. 학교에 간다")
	if err != nil {
		t.Fatalf("SplitSentences: %v", err)
	}
	want := []string{"안녕하십니까.", "만나서 반갑습니다.", "학교에 간다"}
	if len(sentences) != len(want) {
		t.Fatalf("got %d sentences, want %d: %v", len(sentences), len(want), sentences)
	}
	for i := range want {
		if sentences[i] != want[i] {
			t.Errorf("sentence %d = %q, want %q", i, sentences[i], want[i])
		}
	}
}

func TestLexiconSplitOnSentenceEndingWithoutPeriod(t *testing.T) {
	lex := testLexicon()

	// "이다" is a configured sentence ending; a following space starts
	// a new sentence even without punctuation.
	sentences, err := lex.SplitSentences("나는 학생이다 학교에 간다")
	if err != nil {
		t.Fatalf("SplitSentences: %v", err)
	}
	if len(sentences) != 2 {
		t.Fatalf("got %d sentences, want 2: %v", len(sentences), sentences)
	}
	if sentences[0] != "나는 학생이다" {
		t.Errorf("sentence 0 = %q", sentences[0])
	}
}

func TestLexiconCapabilities(t *testing.T) {
	lex := testLexicon()
	want := map[Capability]bool{CapTokenize: true, CapPOSTag: true, CapSentenceSplit: true}
	for _, c := range lex.Capabilities() {
		if !want[c] {
			t.Errorf("unexpected capability %s", c)
		}
		delete(want, c)
	}
	for c := range want {
		t.Errorf("missing capability %s", c)
	}
}
