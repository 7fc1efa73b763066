// hantext-status prints the backend availability report used by
// operators and deployment health checks.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/cognicore/hantext/pkg/hantext/backend"
	"github.com/cognicore/hantext/pkg/hantext/config"
	"github.com/cognicore/hantext/pkg/hantext/status"
)

func main() {
	configPath := flag.String("config", "", "path to pipeline config YAML")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	reg := backend.NewRegistry(cfg.Backends)
	if err := status.Print(os.Stdout, reg); err != nil {
		log.Fatalf("write report: %v", err)
	}
}
