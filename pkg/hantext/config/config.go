package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/hantext/pkg/hantext/internalerr"
)

// Config is the top-level pipeline configuration.
type Config struct {
	Backends   Backends   `yaml:"backends"`
	Formality  Formality  `yaml:"formality"`
	Difficulty Difficulty `yaml:"difficulty"`
	Segmenter  Segmenter  `yaml:"segmenter"`
	Keywords   Keywords   `yaml:"keywords"`
}

// Backends holds the locations of optional backend resources. An empty
// path means the corresponding backend is not installed; its probe will
// record it as unavailable.
type Backends struct {
	LexiconPath       string `yaml:"lexicon_path"`
	MorphDBPath       string `yaml:"morphdb_path"`
	CohesionStatsPath string `yaml:"cohesion_stats_path"`
	SpellEndpoint     string `yaml:"spell_endpoint"`
	SpellTimeoutMS    int    `yaml:"spell_timeout_ms"`
	HanjaTablePath    string `yaml:"hanja_table_path"`
}

// Formality configures the sentence-ending lexicons used by the
// formality analyzer. Empty lists fall back to the built-in defaults.
type Formality struct {
	FormalEndings   []string `yaml:"formal_endings"`
	InformalEndings []string `yaml:"informal_endings"`
}

// Difficulty holds the classification thresholds for reading
// difficulty. These are reconstructed defaults, not calibrated values;
// deployments tune them per corpus.
type Difficulty struct {
	HanjaAdvanced      float64 `yaml:"hanja_advanced"`
	HanjaIntermediate  float64 `yaml:"hanja_intermediate"`
	AvgLenAdvanced     float64 `yaml:"avg_len_advanced"`
	AvgLenIntermediate float64 `yaml:"avg_len_intermediate"`
}

// Segmenter configures sentence segmentation.
type Segmenter struct {
	MinSentenceChars int `yaml:"min_sentence_chars"`
}

// Keywords configures keyword extraction.
type Keywords struct {
	Stopwords []string `yaml:"stopwords"`
	DefaultK  int      `yaml:"default_k"`
}

// Default returns the built-in configuration: no backend resources
// configured, reconstructed analyzer thresholds.
func Default() Config {
	return Config{
		Backends: Backends{
			SpellTimeoutMS: 3000,
		},
		Difficulty: Difficulty{
			HanjaAdvanced:      0.2,
			HanjaIntermediate:  0.05,
			AvgLenAdvanced:     20,
			AvgLenIntermediate: 10,
		},
		Segmenter: Segmenter{
			MinSentenceChars: 2,
		},
		Keywords: Keywords{
			DefaultK: 10,
		},
	}
}

// Load reads a YAML configuration file, overlaying it on the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w: %v", internalerr.ErrInvalidConfig, err)
	}

	if cfg.Backends.SpellTimeoutMS <= 0 {
		cfg.Backends.SpellTimeoutMS = 3000
	}
	if cfg.Segmenter.MinSentenceChars <= 0 {
		cfg.Segmenter.MinSentenceChars = 2
	}
	if cfg.Keywords.DefaultK <= 0 {
		cfg.Keywords.DefaultK = 10
	}

	return cfg, nil
}
