// Package hantext is a Korean text-processing pipeline with graceful
// multi-backend fallback: tokenization, spacing correction, sentence
// segmentation, formality and difficulty analysis, and keyword
// extraction all keep working, at reduced quality, when no optional
// backend is installed.
package hantext

import (
	"context"
	"crypto/rand"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/hantext/pkg/hantext/analyze"
	"github.com/cognicore/hantext/pkg/hantext/backend"
	"github.com/cognicore/hantext/pkg/hantext/config"
	"github.com/cognicore/hantext/pkg/hantext/keywords"
	"github.com/cognicore/hantext/pkg/hantext/segment"
	"github.com/cognicore/hantext/pkg/hantext/spacing"
	"github.com/cognicore/hantext/pkg/hantext/status"
	"github.com/cognicore/hantext/pkg/hantext/token"
	"github.com/cognicore/hantext/pkg/hantext/tokenize"
)

// Pipeline is the main text-processing facade. All methods are safe
// for concurrent use; the backend registry probes once on first use.
type Pipeline struct {
	reg        *backend.Registry
	tok        *tokenize.Facade
	seg        *segment.Segmenter
	spc        *spacing.Corrector
	kw         *keywords.Extractor
	formality  analyze.FormalityLexicon
	difficulty analyze.DifficultyThresholds
	keywordK   int

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// Options configures a Pipeline.
type Options struct {
	Registry *backend.Registry

	// Analyzer tuning; zero values select the built-in defaults.
	FormalEndings    []string
	InformalEndings  []string
	Difficulty       analyze.DifficultyThresholds
	MinSentenceChars int
	Stopwords        []string
	KeywordK         int
}

// New creates a Pipeline with the given dependencies.
func New(opts Options) *Pipeline {
	reg := opts.Registry
	if reg == nil {
		reg = backend.NewRegistry(config.Backends{})
	}
	th := opts.Difficulty
	if th == (analyze.DifficultyThresholds{}) {
		th = analyze.DefaultDifficultyThresholds()
	}
	k := opts.KeywordK
	if k < 1 {
		k = 10
	}
	return &Pipeline{
		reg:        reg,
		tok:        tokenize.New(reg),
		seg:        segment.New(reg, opts.MinSentenceChars),
		spc:        spacing.New(reg),
		kw:         keywords.New(reg, opts.Stopwords),
		formality:  analyze.NewFormalityLexicon(opts.FormalEndings, opts.InformalEndings),
		difficulty: th,
		keywordK:   k,
		entropy:    ulid.Monotonic(rand.Reader, 0),
	}
}

// NewFromConfig builds the registry and pipeline from a configuration.
func NewFromConfig(cfg config.Config) *Pipeline {
	return New(Options{
		Registry:        backend.NewRegistry(cfg.Backends),
		FormalEndings:   cfg.Formality.FormalEndings,
		InformalEndings: cfg.Formality.InformalEndings,
		Difficulty: analyze.DifficultyThresholds{
			HanjaAdvanced:      cfg.Difficulty.HanjaAdvanced,
			HanjaIntermediate:  cfg.Difficulty.HanjaIntermediate,
			AvgLenAdvanced:     cfg.Difficulty.AvgLenAdvanced,
			AvgLenIntermediate: cfg.Difficulty.AvgLenIntermediate,
		},
		MinSentenceChars: cfg.Segmenter.MinSentenceChars,
		Stopwords:        cfg.Keywords.Stopwords,
		KeywordK:         cfg.Keywords.DefaultK,
	})
}

// Metadata is the summary the document-conversion layer attaches to
// conversion results.
type Metadata struct {
	KoreanRatio     float64 `json:"korean_ratio"`
	FormalityLevel  string  `json:"formality_level"`
	DifficultyLevel string  `json:"difficulty_level"`
}

// Result is one processed document.
type Result struct {
	ID               string
	Text             string // NFC-normalized (and corrected in Korean mode)
	Tokens           []token.Token
	Sentences        []string
	Formality        analyze.Formality
	Difficulty       analyze.Difficulty
	Keywords         []keywords.Keyword
	Meta             Metadata
	SpacingCorrected bool
	SpellChecked     bool
}

// Process analyzes text without Korean-specific correction: the path
// behind plain markdown conversion. Offsets in the result refer to
// Result.Text.
func (p *Pipeline) Process(text string) Result {
	return p.analyze(token.NFC(text), false, false)
}

// ProcessKorean runs the full Korean path: NFC normalization, spacing
// correction, optional networked spell check, then analysis. Backend
// failures degrade to the uncorrected text; they never surface as
// errors.
func (p *Pipeline) ProcessKorean(ctx context.Context, text string) Result {
	normalized := token.NFC(text)

	corrected, spacingApplied := p.spc.Apply(normalized)

	spellApplied := false
	if checker, ok := p.reg.SpellChecker(); ok {
		if fixed, err := checker.Check(ctx, corrected); err == nil && fixed != "" {
			corrected = fixed
			spellApplied = true
		}
	}

	return p.analyze(corrected, spacingApplied, spellApplied)
}

func (p *Pipeline) analyze(text string, spacingApplied, spellApplied bool) Result {
	tokens := p.tok.Tokenize(text)
	sentences := p.seg.Segment(text)
	formality := analyze.AnalyzeFormality(sentences, p.formality)
	difficulty := analyze.ReadingDifficulty(text, tokens, sentences, p.difficulty)

	// keywordK is validated at construction, so Extract cannot fail.
	kws, _ := p.kw.Extract(text, p.keywordK)

	return Result{
		ID:         p.newID(),
		Text:       text,
		Tokens:     tokens,
		Sentences:  sentences,
		Formality:  formality,
		Difficulty: difficulty,
		Keywords:   kws,
		Meta: Metadata{
			KoreanRatio:     token.KoreanRatio(text),
			FormalityLevel:  string(formality.Level),
			DifficultyLevel: string(difficulty.Level),
		},
		SpacingCorrected: spacingApplied,
		SpellChecked:     spellApplied,
	}
}

// CorrectSpacing corrects word spacing only. Without a spacing
// backend the input comes back unchanged; consult Status to tell the
// difference.
func (p *Pipeline) CorrectSpacing(text string) string {
	return p.spc.Correct(token.NFC(text))
}

// ConvertHanja replaces CJK ideographs with Hangul readings when a
// converter backend is available, else returns the input unchanged.
func (p *Pipeline) ConvertHanja(text string) string {
	converter, ok := p.reg.HanjaConverter()
	if !ok {
		return text
	}
	out, err := converter.ToHangul(text)
	if err != nil {
		return text
	}
	return out
}

// Keywords extracts up to k keywords. k < 1 returns ErrInvalidInput.
func (p *Pipeline) Keywords(text string, k int) ([]keywords.Keyword, error) {
	return p.kw.Extract(text, k)
}

// Status reports backend availability and pipeline capabilities.
func (p *Pipeline) Status() status.Report {
	return status.Get(p.reg)
}

func (p *Pipeline) newID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return ulid.MustNew(ulid.Now(), p.entropy).String()
}
