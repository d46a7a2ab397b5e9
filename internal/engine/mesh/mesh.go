// Package mesh provides the procedural primitives the scene is composed of.
// Each primitive is generated once, uploaded to a VAO/VBO pair and drawn by
// shape selector.
package mesh

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Shape selects one of the procedural primitives.
type Shape int

const (
	Box Shape = iota
	Plane
	Cylinder
	Cone
	Sphere
	Prism
	Pyramid4
	TaperedCylinder
	Torus
)

// String returns the shape name for logging.
func (s Shape) String() string {
	switch s {
	case Box:
		return "box"
	case Plane:
		return "plane"
	case Cylinder:
		return "cylinder"
	case Cone:
		return "cone"
	case Sphere:
		return "sphere"
	case Prism:
		return "prism"
	case Pyramid4:
		return "pyramid4"
	case TaperedCylinder:
		return "tapered-cylinder"
	case Torus:
		return "torus"
	default:
		return "unknown"
	}
}

// geometry is a generated mesh before GPU upload.
// Vertex layout: position (3), normal (3), UV (2), interleaved.
type geometry struct {
	vertices []float32
	indices  []uint32
}

const vertexStride = 8 * 4 // 8 floats per vertex

// buffers holds the GPU objects for one uploaded primitive.
type buffers struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Library owns the GPU buffers for every primitive.
type Library struct {
	meshes map[Shape]buffers
}

// NewLibrary generates all primitives and uploads them to the GPU.
// Must be called with a current OpenGL context.
func NewLibrary() (*Library, error) {
	shapes := map[Shape]geometry{
		Box:             buildBox(),
		Plane:           buildPlane(),
		Cylinder:        buildCylinder(1.0, 1.0, 72),
		Cone:            buildCone(1.0, 1.0, 36),
		Sphere:          buildSphere(32, 32),
		Prism:           buildPrism(),
		Pyramid4:        buildPyramid4(),
		TaperedCylinder: buildTaperedCylinder(1.0, 0.5, 1.0, 36),
		Torus:           buildTorus(1.0, 0.25, 48, 24),
	}

	lib := &Library{meshes: make(map[Shape]buffers, len(shapes))}
	for shape, geo := range shapes {
		buf, err := upload(geo)
		if err != nil {
			lib.Destroy()
			return nil, fmt.Errorf("uploading %s mesh: %w", shape, err)
		}
		lib.meshes[shape] = buf
	}
	return lib, nil
}

// upload creates the VAO/VBO/EBO for one geometry.
func upload(geo geometry) (buffers, error) {
	if len(geo.vertices) == 0 || len(geo.indices) == 0 {
		return buffers{}, fmt.Errorf("empty geometry")
	}

	var buf buffers
	gl.GenVertexArrays(1, &buf.vao)
	gl.BindVertexArray(buf.vao)

	gl.GenBuffers(1, &buf.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(geo.vertices)*4, unsafe.Pointer(&geo.vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &buf.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(geo.indices)*4, unsafe.Pointer(&geo.indices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(1)

	// UV (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	buf.indexCount = int32(len(geo.indices))
	return buf, nil
}

// Draw issues the draw call for the given shape.
// Unknown shapes are a no-op.
func (l *Library) Draw(shape Shape) {
	buf, ok := l.meshes[shape]
	if !ok {
		return
	}
	gl.BindVertexArray(buf.vao)
	gl.DrawElements(gl.TRIANGLES, buf.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases all GPU buffers. Safe to call more than once.
func (l *Library) Destroy() {
	for shape, buf := range l.meshes {
		if buf.vao != 0 {
			gl.DeleteVertexArrays(1, &buf.vao)
		}
		if buf.vbo != 0 {
			gl.DeleteBuffers(1, &buf.vbo)
		}
		if buf.ebo != 0 {
			gl.DeleteBuffers(1, &buf.ebo)
		}
		delete(l.meshes, shape)
	}
}
