// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"slices"
)

// Overrides lists extensions that became core before the registry began
// recording promotions in its feature blocks.
var Overrides = []string{
	"GL_ARB_texture_border_clamp",     // core since OpenGL 1.3
	"GL_ARB_texture_non_power_of_two", // core since OpenGL 2.0
	"GL_ARB_pixel_buffer_object",      // core since OpenGL 2.1
	"GL_ARB_draw_instanced",           // core since OpenGL 3.1
	"GL_ARB_texture_buffer_object",    // core since OpenGL 3.1
	"GL_ARB_geometry_shader4",         // core since OpenGL 3.2
	"GL_ARB_vertex_array_bgra",        // core since OpenGL 3.2
	"GL_ARB_instanced_arrays",         // core since OpenGL 3.3
}

// Reduce removes every occurrence of each promoted name, then of each
// override, from candidates and returns the remainder sorted ascending by
// byte order. candidates is not modified. Duplicates that survive removal
// stay in the result. An empty remainder returns ErrEmptyResult.
func Reduce(candidates, promoted []string) ([]string, error) {
	out := slices.Clone(candidates)
	for _, name := range promoted {
		out = removeAll(out, name)
	}
	for _, name := range Overrides {
		out = removeAll(out, name)
	}
	if len(out) == 0 {
		return nil, ErrEmptyResult
	}
	slices.Sort(out)
	return out, nil
}

func removeAll(names []string, target string) []string {
	return slices.DeleteFunc(names, func(n string) bool { return n == target })
}
