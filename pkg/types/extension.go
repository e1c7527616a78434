// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FeatureBlock holds the raw lines of one <feature> section of the
// registry, from the opening line through the closing </feature> line.
type FeatureBlock struct {
	// Version is the feature name (e.g. "GL_VERSION_1_1"), empty when the
	// opening line carries no name attribute.
	Version string `json:"version" yaml:"version"`

	// Lines are the block's raw lines in document order.
	Lines []string `json:"-" yaml:"-"`
}

// Classification is the outcome of one classification run over a registry.
type Classification struct {
	// Candidates lists extension names applicable to the profile, in
	// document order. Duplicates are kept.
	Candidates []string `json:"candidates" yaml:"candidates"`

	// Promoted lists names recorded as reused or promoted inside the
	// collected feature blocks.
	Promoted []string `json:"promoted" yaml:"promoted"`

	// Versions lists the feature blocks that were collected, in order.
	Versions []string `json:"versions" yaml:"versions"`

	// Extensions is the sorted non-core manifest.
	Extensions []string `json:"extensions" yaml:"extensions"`
}
