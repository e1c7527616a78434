// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"strings"

	"github.com/pdiddy/glext/internal/textnorm"
	"github.com/pdiddy/glext/pkg/types"
)

const namePrefix = "GL_"

// promotionMarkers select the lines of a feature block that name an
// extension folded into the version.
var promotionMarkers = []string{"Reuse ", "Promoted from "}

// promotionPhrases are stripped first-match-wins, specific before generic.
var promotionPhrases = []string{
	"Reuse tokens from ",
	"Reuse commands from ",
	"Reuse ",
	"Promoted from ",
}

// decorations are removed from a promotion line after its phrase.
var decorations = []string{
	"comment=",
	" (none)",
	" subset to core",
	" compatibility profile",
	`profile="compatibility"`,
}

// ExtractPromotions returns the extension names recorded as reused or
// promoted inside blocks, in block and line order, each carrying the GL_
// prefix used by extension declarations.
func ExtractPromotions(blocks []types.FeatureBlock) []string {
	var names []string
	for _, block := range blocks {
		for _, line := range block.Lines {
			if name, ok := promotedName(line); ok {
				names = append(names, name)
			}
		}
	}
	return names
}

// promotedName reduces one feature line to the extension it promotes.
func promotedName(line string) (string, bool) {
	if !textnorm.ContainsAny(line, promotionMarkers...) {
		return "", false
	}

	s := textnorm.Trim(line)
	s = textnorm.RemoveDelimited(s, "<!--", "-->")
	s = textnorm.RemoveChars(s, '<', '>')
	s = textnorm.RemoveStr(s, "require")
	if found := textnorm.Contains(s, promotionPhrases...); len(found) > 0 {
		s = textnorm.RemoveStr(s, found[0])
	}
	for _, d := range decorations {
		s = textnorm.RemoveStr(s, d)
	}
	s = textnorm.RemoveChars(s, '"', ' ', '/')
	if s == "" {
		return "", false
	}
	if !strings.HasPrefix(s, namePrefix) {
		s = namePrefix + s
	}
	return s, true
}
