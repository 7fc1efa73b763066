package backend

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/hantext/pkg/hantext/internalerr"
	"github.com/cognicore/hantext/pkg/hantext/token"
)

// minCohesionScore is the acceptance threshold for unsupervised noun
// candidates. Fragments scoring below it are treated as noise.
const minCohesionScore = 0.1

// Cohesion is the unsupervised noun extractor. It scores the left
// fragments of Hangul eojeols against precomputed substring frequency
// statistics: a fragment that keeps its frequency as it grows is
// cohesive and therefore a likely word.
type Cohesion struct {
	counts map[string]int64
	maxLen int // longest counted substring, in runes
}

// CohesionStats is the YAML statistics file: substring → occurrence
// count, produced offline from a raw corpus.
type CohesionStats struct {
	Counts map[string]int64 `yaml:"counts"`
}

func openCohesion(path string) (Backend, error) {
	if path == "" {
		return nil, fmt.Errorf("cohesion stats path not configured: %w", internalerr.ErrBackendUnavailable)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var stats CohesionStats
	if err := yaml.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("parse cohesion stats: %w", err)
	}
	return NewCohesion(stats)
}

// NewCohesion builds the extractor from in-memory statistics.
func NewCohesion(stats CohesionStats) (*Cohesion, error) {
	if len(stats.Counts) == 0 {
		return nil, fmt.Errorf("cohesion stats are empty")
	}
	c := &Cohesion{counts: stats.Counts}
	for s := range stats.Counts {
		if n := len([]rune(s)); n > c.maxLen {
			c.maxLen = n
		}
	}
	return c, nil
}

func (c *Cohesion) Name() string { return "cohesion" }

func (c *Cohesion) Capabilities() []Capability {
	return []Capability{CapNounExtract}
}

// Nouns returns the best-scoring left fragment of each Hangul eojeol
// as a noun candidate. Fragments must be at least two syllables.
func (c *Cohesion) Nouns(text string) ([]token.Token, error) {
	var out []token.Token
	for _, run := range token.Runs(text) {
		if run.Class != token.RunHangul {
			continue
		}
		surface, ok := c.bestFragment(run.Text)
		if !ok {
			continue
		}
		out = append(out, token.Token{
			Surface: surface,
			Tag:     "NNG",
			Start:   run.Start,
			End:     run.Start + len(surface),
		})
	}
	return out, nil
}

// bestFragment finds the prefix with the highest cohesion score.
//
// cohesion(w[:n]) = (count(w[:n]) / count(w[:1]))^(1/(n-1))
func (c *Cohesion) bestFragment(eojeol string) (string, bool) {
	runes := []rune(eojeol)
	limit := len(runes)
	if limit > c.maxLen {
		limit = c.maxLen
	}

	base := c.counts[string(runes[:1])]
	if base == 0 {
		return "", false
	}

	best := ""
	bestScore := 0.0
	for n := 2; n <= limit; n++ {
		prefix := string(runes[:n])
		count := c.counts[prefix]
		if count == 0 {
			break
		}
		score := math.Pow(float64(count)/float64(base), 1/float64(n-1))
		if score >= bestScore {
			best = prefix
			bestScore = score
		}
	}

	if best == "" || bestScore < minCohesionScore {
		return "", false
	}
	return best, true
}
