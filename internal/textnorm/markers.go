// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textnorm

import "strings"

// Contains returns the markers found in line, in the order given.
func Contains(line string, markers ...string) []string {
	var found []string
	for _, m := range markers {
		if strings.Contains(line, m) {
			found = append(found, m)
		}
	}
	return found
}

// ContainsAny reports whether line contains at least one of markers.
func ContainsAny(line string, markers ...string) bool {
	for _, m := range markers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether line contains every one of markers.
func ContainsAll(line string, markers ...string) bool {
	for _, m := range markers {
		if !strings.Contains(line, m) {
			return false
		}
	}
	return true
}

// AttrValue returns the value of the first key="..." pair in line. When
// the closing quote is missing the value runs to the end of the line.
func AttrValue(line, key string) (string, bool) {
	open := key + `="`
	i := strings.Index(line, open)
	if i < 0 {
		return "", false
	}
	rest := line[i+len(open):]
	if j := strings.IndexByte(rest, '"'); j >= 0 {
		return rest[:j], true
	}
	return rest, true
}
