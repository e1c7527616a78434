// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textnorm

import "testing"

func TestRemoveChar(t *testing.T) {
	tests := []struct {
		name string
		in   string
		c    byte
		want string
	}{
		{"absent", "abc", 'x', "abc"},
		{"single", "a<b", '<', "ab"},
		{"repeated", `"a"b"`, '"', "ab"},
		{"all", "////", '/', ""},
		{"empty", "", 'a', ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveChar(tt.in, tt.c); got != tt.want {
				t.Errorf("RemoveChar(%q, %q) = %q, want %q", tt.in, tt.c, got, tt.want)
			}
		})
	}
}

func TestRemoveChars(t *testing.T) {
	got := RemoveChars(`<a = "b" />`, '<', '>', '=', '/', '"', ' ')
	if got != "ab" {
		t.Errorf("RemoveChars = %q, want %q", got, "ab")
	}
}

func TestRemoveStr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		sub  string
		want string
	}{
		{"absent", "extension", "xyz", "extension"},
		{"prefix", "extension name", "extension ", "name"},
		{"repeated", "a-b-c", "-", "abc"},
		{"resumes at removal point", "nanameme", "name", "name"},
		{"empty sub", "abc", "", "abc"},
		{"whole string", "require", "require", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveStr(tt.in, tt.sub); got != tt.want {
				t.Errorf("RemoveStr(%q, %q) = %q, want %q", tt.in, tt.sub, got, tt.want)
			}
		})
	}
}

func TestReplaceChar(t *testing.T) {
	if got := ReplaceChar("GL-ARB-foo", '-', '_'); got != "GL_ARB_foo" {
		t.Errorf("ReplaceChar = %q, want %q", got, "GL_ARB_foo")
	}
	if got := ReplaceChar("abc", 'x', 'y'); got != "abc" {
		t.Errorf("ReplaceChar without match = %q, want %q", got, "abc")
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  <extension>  ", "<extension>"},
		{"\t\t<feature>\r\n", "<feature>"},
		{"\f\vx\v\f", "x"},
		{" \t\n\r\f\v", ""},
		{"", ""},
		{"a b", "a b"},
	}
	for _, tt := range tests {
		if got := Trim(tt.in); got != tt.want {
			t.Errorf("Trim(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRemoveAttr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		key  string
		want string
	}{
		{
			name: "single pair",
			in:   `extension name="GL_EXT_foo" supported="gl|glcore"/`,
			key:  "supported",
			want: `extension name="GL_EXT_foo" /`,
		},
		{
			name: "two pairs",
			in:   `a comment="x" b comment="y" c`,
			key:  "comment",
			want: `a  b  c`,
		},
		{
			name: "missing closing quote erases to end",
			in:   `extension name="GL_EXT_foo" comment="unterminated`,
			key:  "comment",
			want: `extension name="GL_EXT_foo" `,
		},
		{
			name: "key absent",
			in:   `extension name="GL_EXT_foo"`,
			key:  "supported",
			want: `extension name="GL_EXT_foo"`,
		},
		{
			name: "empty value",
			in:   `x comment="" y`,
			key:  "comment",
			want: `x  y`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveAttr(tt.in, tt.key); got != tt.want {
				t.Errorf("RemoveAttr(%q, %q) = %q, want %q", tt.in, tt.key, got, tt.want)
			}
		})
	}
}

func TestRemoveDelimited(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		open, close string
		want        string
	}{
		{"comment span", "<require><!-- note -->Promoted from X</require>", "<!--", "-->", "<require>Promoted from X</require>"},
		{"two spans", "a<!--1-->b<!--2-->c", "<!--", "-->", "abc"},
		{"unterminated", "a<!-- open", "<!--", "-->", "a"},
		{"empty open", "abc", "", "x", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveDelimited(tt.in, tt.open, tt.close); got != tt.want {
				t.Errorf("RemoveDelimited(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
