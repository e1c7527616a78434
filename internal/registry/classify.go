// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry classifies the extensions declared in an OpenGL API
// registry document. Two independent line passes feed a reducer:
//
//	ScanExtensions    <extension> lines for the profile -> candidates
//	CollectFeatures   <feature> blocks before the stop version
//	ExtractPromotions "Reuse ..." / "Promoted from ..." lines -> promoted
//	Reduce            candidates - promoted - Overrides, sorted
//
// Lines are matched by literal substrings; no document tree is built.
package registry

import (
	"github.com/rs/zerolog"

	"github.com/pdiddy/glext/pkg/types"
)

// Options configures a classification run. Zero fields take defaults.
type Options struct {
	Profile     string
	StopVersion string
}

// OptionsFrom converts the configuration form of the options.
func OptionsFrom(cfg types.ClassifyConfig) Options {
	return Options{Profile: cfg.Profile, StopVersion: cfg.StopVersion}
}

func (o Options) withDefaults() Options {
	if o.Profile == "" {
		o.Profile = DefaultProfile
	}
	if o.StopVersion == "" {
		o.StopVersion = DefaultStopVersion
	}
	return o
}

// Classify runs both passes over src and reduces them to the non-core
// extension manifest. The scanner pass completes before the feature pass
// starts. An I/O failure in either pass, or an empty manifest, is returned
// as an error.
func Classify(src Source, opts Options, log zerolog.Logger) (*types.Classification, error) {
	opts = opts.withDefaults()

	candidates, err := ScanExtensions(src, opts)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("candidates", len(candidates)).Str("profile", opts.Profile).Msg("scanned extensions")

	blocks, err := CollectFeatures(src, opts)
	if err != nil {
		return nil, err
	}
	versions := make([]string, len(blocks))
	for i, b := range blocks {
		versions[i] = b.Version
	}
	log.Debug().Int("blocks", len(blocks)).Str("stop_version", opts.StopVersion).Msg("collected feature blocks")

	promoted := ExtractPromotions(blocks)
	log.Debug().Int("promoted", len(promoted)).Msg("extracted promotions")

	result := &types.Classification{
		Candidates: candidates,
		Promoted:   promoted,
		Versions:   versions,
	}
	extensions, err := Reduce(candidates, promoted)
	if err != nil {
		return result, err
	}
	result.Extensions = extensions
	log.Debug().Int("extensions", len(extensions)).Msg("reduced to non-core set")
	return result, nil
}
