// Package render defines the drawing backend the scene is composed against.
//
// Every component that touches shader state or issues draw calls goes through
// the Backend interface, so the scene logic itself never needs a live OpenGL
// context. The GL implementation is the real renderer; tests substitute a
// recording backend.
package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/candlelight/internal/engine/mesh"
	"github.com/Faultbox/candlelight/internal/engine/shader"
	"github.com/Faultbox/candlelight/pkg/math"
)

// Backend is the contract between scene composition and the GPU.
type Backend interface {
	SetMat4(name string, m math.Mat4)
	SetVec2(name string, x, y float32)
	SetVec3(name string, v math.Vec3)
	SetVec4(name string, x, y, z, w float32)
	SetFloat(name string, value float32)
	SetInt(name string, value int32)
	SetBool(name string, value bool)

	Draw(shape mesh.Shape)

	SetBlend(enabled bool)
	SetDepthWrite(enabled bool)
	Clear(r, g, b, a float32)
}

// GLBackend renders through an OpenGL shader program and mesh library.
type GLBackend struct {
	program *shader.Program
	meshes  *mesh.Library
}

// NewGLBackend creates a backend bound to a compiled program and mesh library.
func NewGLBackend(program *shader.Program, meshes *mesh.Library) *GLBackend {
	return &GLBackend{program: program, meshes: meshes}
}

// SetMat4 sets a mat4 uniform.
func (b *GLBackend) SetMat4(name string, m math.Mat4) {
	b.program.SetMat4(name, m)
}

// SetVec2 sets a vec2 uniform.
func (b *GLBackend) SetVec2(name string, x, y float32) {
	b.program.SetVec2(name, x, y)
}

// SetVec3 sets a vec3 uniform.
func (b *GLBackend) SetVec3(name string, v math.Vec3) {
	b.program.SetVec3(name, v)
}

// SetVec4 sets a vec4 uniform.
func (b *GLBackend) SetVec4(name string, x, y, z, w float32) {
	b.program.SetVec4(name, x, y, z, w)
}

// SetFloat sets a float uniform.
func (b *GLBackend) SetFloat(name string, value float32) {
	b.program.SetFloat(name, value)
}

// SetInt sets an int or sampler uniform.
func (b *GLBackend) SetInt(name string, value int32) {
	b.program.SetInt(name, value)
}

// SetBool sets a bool uniform.
func (b *GLBackend) SetBool(name string, value bool) {
	b.program.SetBool(name, value)
}

// Draw issues the draw call for the given primitive.
func (b *GLBackend) Draw(shape mesh.Shape) {
	b.meshes.Draw(shape)
}

// SetBlend toggles alpha blending.
func (b *GLBackend) SetBlend(enabled bool) {
	if enabled {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}
}

// SetDepthWrite toggles depth buffer writes.
func (b *GLBackend) SetDepthWrite(enabled bool) {
	gl.DepthMask(enabled)
}

// Clear clears the color and depth buffers with the given color.
func (b *GLBackend) Clear(r, g, bl, a float32) {
	gl.ClearColor(r, g, bl, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
