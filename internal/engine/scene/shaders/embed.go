// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// LandscapeVertexShader is the vertex shader shared by terrain and water.
//
//go:embed landscape.vert
var LandscapeVertexShader string

// LandscapeFragmentShader is the fragment shader shared by terrain and water.
//
//go:embed landscape.frag
var LandscapeFragmentShader string
