package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/hantext/pkg/hantext/internalerr"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hantext.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Backends.SpellTimeoutMS != 3000 {
		t.Errorf("SpellTimeoutMS = %d, want 3000", cfg.Backends.SpellTimeoutMS)
	}
	if cfg.Difficulty.HanjaAdvanced != 0.2 || cfg.Difficulty.AvgLenIntermediate != 10 {
		t.Errorf("unexpected difficulty defaults: %+v", cfg.Difficulty)
	}
	if cfg.Keywords.DefaultK != 10 {
		t.Errorf("DefaultK = %d, want 10", cfg.Keywords.DefaultK)
	}
	if cfg.Backends.LexiconPath != "" || cfg.Backends.MorphDBPath != "" {
		t.Error("no backend resources should be configured by default")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
backends:
  lexicon_path: /opt/hantext/lexicon.yaml
  spell_endpoint: http://localhost:8080/check
difficulty:
  hanja_advanced: 0.3
keywords:
  stopwords: [그리고, 하지만]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backends.LexiconPath != "/opt/hantext/lexicon.yaml" {
		t.Errorf("LexiconPath = %q", cfg.Backends.LexiconPath)
	}
	if cfg.Backends.SpellEndpoint != "http://localhost:8080/check" {
		t.Errorf("SpellEndpoint = %q", cfg.Backends.SpellEndpoint)
	}
	if cfg.Difficulty.HanjaAdvanced != 0.3 {
		t.Errorf("HanjaAdvanced = %v, want the file's 0.3", cfg.Difficulty.HanjaAdvanced)
	}
	// fields the file does not set keep their defaults
	if cfg.Backends.SpellTimeoutMS != 3000 {
		t.Errorf("SpellTimeoutMS = %d, want the default 3000", cfg.Backends.SpellTimeoutMS)
	}
	if cfg.Difficulty.AvgLenAdvanced != 20 {
		t.Errorf("AvgLenAdvanced = %v, want the default 20", cfg.Difficulty.AvgLenAdvanced)
	}
	if len(cfg.Keywords.Stopwords) != 2 {
		t.Errorf("Stopwords = %v, want 2 entries", cfg.Keywords.Stopwords)
	}
}

func TestLoadClampsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
backends:
  spell_timeout_ms: -1
segmenter:
  min_sentence_chars: 0
keywords:
  default_k: -5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backends.SpellTimeoutMS != 3000 {
		t.Errorf("SpellTimeoutMS = %d, want clamped to 3000", cfg.Backends.SpellTimeoutMS)
	}
	if cfg.Segmenter.MinSentenceChars != 2 {
		t.Errorf("MinSentenceChars = %d, want clamped to 2", cfg.Segmenter.MinSentenceChars)
	}
	if cfg.Keywords.DefaultK != 10 {
		t.Errorf("DefaultK = %d, want clamped to 10", cfg.Keywords.DefaultK)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "backends: [not a map")

	_, err := Load(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Load error = %v, want ErrInvalidConfig", err)
	}
}
