// Package shaders embeds the GLSL sources for the still-life renderer.
package shaders

import _ "embed"

// ObjectVertex is the vertex shader for all scene geometry.
//
//go:embed object.vert
var ObjectVertex string

// ObjectFragment is the Phong fragment shader shared by every object.
//
//go:embed object.frag
var ObjectFragment string
