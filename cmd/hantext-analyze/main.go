// hantext-analyze runs the Korean text pipeline over one document and
// prints the analysis as JSON. Input is plain text or, with -html,
// an HTML document to strip first.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cognicore/hantext/internal/htmltext"
	"github.com/cognicore/hantext/pkg/hantext"
	"github.com/cognicore/hantext/pkg/hantext/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to pipeline config YAML")
		inPath     = flag.String("in", "", "input file (default: stdin)")
		htmlInput  = flag.Bool("html", false, "treat input as HTML and extract text first")
		koreanMode = flag.Bool("korean", true, "apply Korean normalization (spacing, spell check)")
		topK       = flag.Int("k", 0, "number of keywords (default: config value)")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	if *topK > 0 {
		cfg.Keywords.DefaultK = *topK
	}

	text, err := readInput(*inPath, *htmlInput)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	if strings.TrimSpace(text) == "" {
		log.Fatal("empty input")
	}

	pipeline := hantext.NewFromConfig(cfg)

	var result hantext.Result
	if *koreanMode {
		result = pipeline.ProcessKorean(context.Background(), text)
	} else {
		result = pipeline.Process(text)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("encode result: %v", err)
	}
}

func readInput(path string, isHTML bool) (string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	if isHTML {
		return htmltext.Extract(r)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}
	return string(data), nil
}
