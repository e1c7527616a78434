// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/glext/internal/registry"
	"github.com/pdiddy/glext/pkg/types"
)

// Report is the serialized form of a run summary.
type Report struct {
	Registry    string   `json:"registry" yaml:"registry"`
	SHA256      string   `json:"sha256" yaml:"sha256"`
	Profile     string   `json:"profile" yaml:"profile"`
	StopVersion string   `json:"stop_version" yaml:"stop_version"`
	GeneratedAt string   `json:"generated_at" yaml:"generated_at"`
	Versions    []string `json:"versions" yaml:"versions"`
	Counts      Counts   `json:"counts" yaml:"counts"`
	Extensions  []string `json:"extensions" yaml:"extensions"`
}

// Counts holds the sizes of each stage's output.
type Counts struct {
	Candidates int `json:"candidates" yaml:"candidates"`
	Promoted   int `json:"promoted" yaml:"promoted"`
	Overrides  int `json:"overrides" yaml:"overrides"`
	Manifest   int `json:"manifest" yaml:"manifest"`
}

// NewReport builds the report for s.
func NewReport(s *Summary) Report {
	r := Report{
		Registry:    s.RegistryPath,
		SHA256:      s.RegistrySHA256,
		Profile:     s.Profile,
		StopVersion: s.StopVersion,
		GeneratedAt: s.GeneratedAt.Format(time.RFC3339),
	}
	if c := s.Classification; c != nil {
		r.Versions = c.Versions
		r.Extensions = c.Extensions
		r.Counts = Counts{
			Candidates: len(c.Candidates),
			Promoted:   len(c.Promoted),
			Overrides:  overridesApplied(c),
			Manifest:   len(c.Extensions),
		}
	}
	return r
}

// WriteReport writes the report for s to path in the given format.
func WriteReport(path string, s *Summary, format types.ReportFormat) error {
	r := NewReport(s)

	var (
		data []byte
		err  error
	)
	switch format {
	case types.ReportYAML:
		data, err = yaml.Marshal(r)
	case types.ReportJSON:
		data, err = json.MarshalIndent(r, "", "  ")
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return writeAtomic(path, data)
}

// overridesApplied counts override names that were still candidates after
// promotions were removed.
func overridesApplied(c *types.Classification) int {
	promoted := make(map[string]bool, len(c.Promoted))
	for _, p := range c.Promoted {
		promoted[p] = true
	}
	n := 0
	for _, cand := range c.Candidates {
		if promoted[cand] {
			continue
		}
		if slices.Contains(registry.Overrides, cand) {
			n++
		}
	}
	return n
}
