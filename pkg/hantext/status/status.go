// Package status aggregates backend availability into an
// operator-facing capability report.
package status

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cognicore/hantext/pkg/hantext/backend"
)

// Report is a point-in-time view of the probed backends and the
// pipeline capabilities they add up to. A capability flag is true iff
// at least one available backend advertises it.
type Report struct {
	Backends     []backend.Descriptor
	Capabilities map[backend.Capability]bool
}

// allCapabilities fixes the render order of the capability flags.
var allCapabilities = []backend.Capability{
	backend.CapTokenize,
	backend.CapPOSTag,
	backend.CapSpacing,
	backend.CapSentenceSplit,
	backend.CapNounExtract,
	backend.CapSpellCheck,
	backend.CapHanjaConvert,
}

// Get aggregates the registry's cached probe result. It never
// re-probes; the registry's first caller paid that cost.
func Get(reg *backend.Registry) Report {
	descriptors := reg.Descriptors()

	caps := make(map[backend.Capability]bool, len(allCapabilities))
	for _, c := range allCapabilities {
		caps[c] = false
	}
	for _, d := range descriptors {
		if !d.Available {
			continue
		}
		for _, c := range d.Capabilities {
			caps[c] = true
		}
	}

	return Report{Backends: descriptors, Capabilities: caps}
}

// Has reports one capability flag.
func (r Report) Has(c backend.Capability) bool {
	return r.Capabilities[c]
}

// Format renders the human-readable report consumed by operators and
// health checks.
func (r Report) Format() string {
	var b strings.Builder

	b.WriteString("korean text pipeline status\n")
	b.WriteString("backends:\n")
	for _, d := range r.Backends {
		if d.Available {
			caps := make([]string, len(d.Capabilities))
			for i, c := range d.Capabilities {
				caps[i] = string(c)
			}
			fmt.Fprintf(&b, "  %-10s available  (%s)\n", d.Name, strings.Join(caps, ", "))
			continue
		}
		fmt.Fprintf(&b, "  %-10s unavailable: %s\n", d.Name, d.InitError)
	}

	b.WriteString("capabilities:\n")
	for _, c := range sortedCapabilities(r.Capabilities) {
		state := "disabled"
		if r.Capabilities[c] {
			state = "enabled"
		}
		fmt.Fprintf(&b, "  %-14s %s\n", string(c), state)
	}

	return b.String()
}

// Print writes the report to w.
func Print(w io.Writer, reg *backend.Registry) error {
	_, err := io.WriteString(w, Get(reg).Format())
	return err
}

// sortedCapabilities keeps the canonical order for known capabilities
// and appends unknown ones alphabetically.
func sortedCapabilities(caps map[backend.Capability]bool) []backend.Capability {
	known := make(map[backend.Capability]struct{}, len(allCapabilities))
	out := make([]backend.Capability, 0, len(caps))
	for _, c := range allCapabilities {
		known[c] = struct{}{}
		if _, ok := caps[c]; ok {
			out = append(out, c)
		}
	}
	var extra []backend.Capability
	for c := range caps {
		if _, ok := known[c]; !ok {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}
