package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LexiconEntry is one morpheme in the dictionary lexicon.
type LexiconEntry struct {
	Surface string `yaml:"surface"`
	Lemma   string `yaml:"lemma,omitempty"`
	Tag     string `yaml:"tag"`
}

// Lexicon is the data file backing the dictionary tokenizer backend:
// content stems, grammatical particles (josa), and verbal endings
// (eomi). Sentence-final endings additionally drive sentence splitting.
type Lexicon struct {
	Stems           []LexiconEntry `yaml:"stems"`
	Particles       []LexiconEntry `yaml:"particles"`
	Endings         []LexiconEntry `yaml:"endings"`
	SentenceEndings []string       `yaml:"sentence_endings"`
}

// LoadLexicon loads a morpheme lexicon from a YAML file.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}
	if len(lex.Stems) == 0 && len(lex.Particles) == 0 && len(lex.Endings) == 0 {
		return nil, fmt.Errorf("lexicon %s has no entries", path)
	}

	return &lex, nil
}
