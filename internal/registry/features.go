// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"github.com/pdiddy/glext/internal/textnorm"
	"github.com/pdiddy/glext/pkg/types"
)

const (
	featureOpen  = "<feature"
	featureClose = "</feature"
	// DefaultStopVersion is the first core version whose promotions are
	// ignored.
	DefaultStopVersion = "GL_VERSION_4_0"
)

// CollectFeatures makes one pass over src and groups the lines of every
// <feature> block, opening line through closing line. The pass ends at the
// first line naming opts.StopVersion; a block still open at that point is
// dropped.
func CollectFeatures(src Source, opts Options) ([]types.FeatureBlock, error) {
	opts = opts.withDefaults()
	stop := `name="` + opts.StopVersion

	var (
		blocks  []types.FeatureBlock
		current types.FeatureBlock
		inside  bool
	)
	err := eachLine(src, func(line string) bool {
		if textnorm.ContainsAny(line, stop) {
			return false
		}
		if !inside {
			if textnorm.ContainsAny(line, featureOpen) {
				inside = true
				version, _ := textnorm.AttrValue(line, "name")
				current = types.FeatureBlock{Version: version, Lines: []string{line}}
			}
			return true
		}
		current.Lines = append(current.Lines, line)
		if textnorm.ContainsAny(line, featureClose) {
			inside = false
			blocks = append(blocks, current)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return blocks, nil
}
