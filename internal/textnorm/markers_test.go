// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	line := `<extension name="GL_ARB_sync" supported="gl|glcore|gles2">`

	assert.Equal(t, []string{"<extension", "glcore"}, Contains(line, "<extension", "<feature", "glcore"))
	assert.Nil(t, Contains(line, "<feature", "</feature"))
	assert.True(t, ContainsAny(line, `name="GL_KHR_`, `name="GL_ARB_`))
	assert.False(t, ContainsAny(line, `name="GL_KHR_`, `name="GL_EXT_`))
	assert.False(t, ContainsAny(line))
}

func TestContainsAll(t *testing.T) {
	line := `<extension name="GL_ARB_sync" supported="gl|glcore|gles2">`

	tests := []struct {
		name    string
		markers []string
		want    bool
	}{
		{"all present", []string{"<extension", "glcore"}, true},
		{"one missing", []string{"<extension", "<feature"}, false},
		{"single", []string{`name="GL_ARB_`}, true},
		{"none given", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsAll(line, tt.markers...))
		})
	}
}

func TestAttrValue(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		key    string
		want   string
		wantOK bool
	}{
		{"quoted", `<feature api="gl" name="GL_VERSION_1_1" number="1.1">`, "name", "GL_VERSION_1_1", true},
		{"first of several", `<a name="x" name="y">`, "name", "x", true},
		{"missing closing quote", `<feature name="GL_VERSION_1_2`, "name", "GL_VERSION_1_2", true},
		{"absent", `<feature api="gl">`, "name", "", false},
		{"empty value", `<feature name="">`, "name", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AttrValue(tt.line, tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
