package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/cognicore/hantext/internal/speller"
	"github.com/cognicore/hantext/pkg/hantext/config"
	"github.com/cognicore/hantext/pkg/hantext/internalerr"
)

// WebSpell is the networked spell-check backend. Its probe only checks
// that an endpoint is configured; reachability is a per-call concern
// and per-call failures degrade to unchanged text upstream.
type WebSpell struct {
	client *speller.Client
}

func newWebSpell(cfg config.Backends) (Backend, error) {
	if cfg.SpellEndpoint == "" {
		return nil, fmt.Errorf("spell endpoint not configured: %w", internalerr.ErrBackendUnavailable)
	}
	return &WebSpell{
		client: &speller.Client{
			Endpoint: cfg.SpellEndpoint,
			Timeout:  time.Duration(cfg.SpellTimeoutMS) * time.Millisecond,
		},
	}, nil
}

// NewWebSpell wraps an existing speller client.
func NewWebSpell(client *speller.Client) *WebSpell {
	return &WebSpell{client: client}
}

func (w *WebSpell) Name() string { return "webspell" }

func (w *WebSpell) Capabilities() []Capability {
	return []Capability{CapSpellCheck}
}

// Check corrects the text via the remote service. The call is bounded
// by the client timeout on top of ctx.
func (w *WebSpell) Check(ctx context.Context, text string) (string, error) {
	return w.client.Check(ctx, text)
}
