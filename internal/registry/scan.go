// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"github.com/pdiddy/glext/internal/textnorm"
)

const (
	extensionMarker = "<extension"
	// DefaultProfile marks extensions supported by the core profile.
	DefaultProfile = "glcore"
)

// vendorMarkers is the allow-list of extension name prefixes.
var vendorMarkers = []string{
	`name="GL_KHR_`,
	`name="GL_EXT_`,
	`name="GL_ARB_`,
}

// uselessMarkers rejects extensions that match the vendor rule but do not
// apply to desktop GL (EGL interop, ES compatibility).
var uselessMarkers = []string{
	"GL_EXT_EGL",
	"GL_ARB_ES",
}

// ScanExtensions makes one pass over src and returns, in document order,
// the name of every extension declared for opts.Profile under a recognized
// vendor prefix. Duplicated declarations yield duplicated names.
func ScanExtensions(src Source, opts Options) ([]string, error) {
	opts = opts.withDefaults()

	var names []string
	err := eachLine(src, func(line string) bool {
		if name, ok := extensionName(line, opts.Profile); ok {
			names = append(names, name)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// extensionName filters one line and reduces it to a bare extension name.
func extensionName(line, profile string) (string, bool) {
	if !textnorm.ContainsAll(line, extensionMarker, profile) {
		return "", false
	}
	if !textnorm.ContainsAny(line, vendorMarkers...) {
		return "", false
	}
	if textnorm.ContainsAny(line, uselessMarkers...) {
		return "", false
	}

	s := textnorm.Trim(line)
	s = textnorm.RemoveChars(s, '<', '>')
	s = textnorm.RemoveAttr(s, "supported")
	s = textnorm.RemoveAttr(s, "comment")
	s = textnorm.RemoveStr(s, "extension ")
	s = textnorm.RemoveStr(s, "name")
	s = textnorm.RemoveChars(s, '=', '/', '"', ' ')
	return s, true
}
