// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textnorm provides the string primitives used to pull names out of
// registry lines. It does not parse markup: every operation is a literal
// substring or character edit on a single line, and every operation is total.
//
//   - RemoveChar, RemoveStr, ReplaceChar, Trim: plain cleanup.
//   - RemoveDelimited, RemoveAttr: drop open...close spans and key="..." pairs.
//   - Contains, ContainsAny, ContainsAll, AttrValue: marker tests and attribute lookup.
package textnorm

import "strings"

// whitespace is the set Trim strips from both ends of a line.
const whitespace = " \t\n\r\f\v"

// RemoveChar returns s with every occurrence of c removed.
func RemoveChar(s string, c byte) string {
	if strings.IndexByte(s, c) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// RemoveChars applies RemoveChar for each of chars in order.
func RemoveChars(s string, chars ...byte) string {
	for _, c := range chars {
		s = RemoveChar(s, c)
	}
	return s
}

// RemoveStr returns s with every occurrence of sub removed. The search
// resumes at the removal point, so a match formed by text before and after
// a removed occurrence survives. An empty sub leaves s unchanged.
func RemoveStr(s, sub string) string {
	if sub == "" {
		return s
	}
	pos := 0
	for {
		i := strings.Index(s[pos:], sub)
		if i < 0 {
			return s
		}
		pos += i
		s = s[:pos] + s[pos+len(sub):]
	}
}

// ReplaceChar returns s with every from byte replaced by to.
func ReplaceChar(s string, from, to byte) string {
	return strings.ReplaceAll(s, string(from), string(to))
}

// Trim strips leading and trailing spaces, tabs, newlines, carriage
// returns, form feeds and vertical tabs.
func Trim(s string) string {
	return strings.Trim(s, whitespace)
}

// RemoveDelimited removes every span that starts with open and ends with
// the next close after it, delimiters included. A span with no close runs
// to the end of s.
func RemoveDelimited(s, open, close string) string {
	if open == "" {
		return s
	}
	pos := 0
	for {
		i := strings.Index(s[pos:], open)
		if i < 0 {
			return s
		}
		start := pos + i
		j := strings.Index(s[start+len(open):], close)
		if close == "" || j < 0 {
			return s[:start]
		}
		end := start + len(open) + j + len(close)
		s = s[:start] + s[end:]
		pos = start
	}
}

// RemoveAttr removes every key="value" pair from s. A pair whose closing
// quote is missing is removed through the end of s.
func RemoveAttr(s, key string) string {
	return RemoveDelimited(s, key+`="`, `"`)
}
