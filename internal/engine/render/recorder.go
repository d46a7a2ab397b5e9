package render

import (
	"github.com/Faultbox/candlelight/internal/engine/mesh"
	"github.com/Faultbox/candlelight/pkg/math"
)

// OpKind identifies one recorded backend operation.
type OpKind int

const (
	OpUniform OpKind = iota
	OpDraw
	OpBlend
	OpDepthWrite
	OpClear
)

// Op is one recorded backend call.
type Op struct {
	Kind    OpKind
	Name    string     // uniform name for OpUniform
	Floats  [4]float32 // scalar/vector payload
	Shape   mesh.Shape // for OpDraw
	Mat     math.Mat4  // for mat4 uniforms
	Enabled bool       // for OpBlend/OpDepthWrite and bool uniforms
}

// Recorder is a Backend that records every call instead of talking to a GPU.
// It doubles as the "backend absent" mode: running the scene against a
// Recorder is always safe without a GL context, and tests inspect the
// recorded sequence.
type Recorder struct {
	Ops []Op
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// SetMat4 records a mat4 uniform.
func (r *Recorder) SetMat4(name string, m math.Mat4) {
	r.Ops = append(r.Ops, Op{Kind: OpUniform, Name: name, Mat: m})
}

// SetVec2 records a vec2 uniform.
func (r *Recorder) SetVec2(name string, x, y float32) {
	r.Ops = append(r.Ops, Op{Kind: OpUniform, Name: name, Floats: [4]float32{x, y}})
}

// SetVec3 records a vec3 uniform.
func (r *Recorder) SetVec3(name string, v math.Vec3) {
	r.Ops = append(r.Ops, Op{Kind: OpUniform, Name: name, Floats: [4]float32{v.X, v.Y, v.Z}})
}

// SetVec4 records a vec4 uniform.
func (r *Recorder) SetVec4(name string, x, y, z, w float32) {
	r.Ops = append(r.Ops, Op{Kind: OpUniform, Name: name, Floats: [4]float32{x, y, z, w}})
}

// SetFloat records a float uniform.
func (r *Recorder) SetFloat(name string, value float32) {
	r.Ops = append(r.Ops, Op{Kind: OpUniform, Name: name, Floats: [4]float32{value}})
}

// SetInt records an int uniform.
func (r *Recorder) SetInt(name string, value int32) {
	r.Ops = append(r.Ops, Op{Kind: OpUniform, Name: name, Floats: [4]float32{float32(value)}})
}

// SetBool records a bool uniform.
func (r *Recorder) SetBool(name string, value bool) {
	r.Ops = append(r.Ops, Op{Kind: OpUniform, Name: name, Enabled: value})
}

// Draw records a draw call.
func (r *Recorder) Draw(shape mesh.Shape) {
	r.Ops = append(r.Ops, Op{Kind: OpDraw, Shape: shape})
}

// SetBlend records a blend toggle.
func (r *Recorder) SetBlend(enabled bool) {
	r.Ops = append(r.Ops, Op{Kind: OpBlend, Enabled: enabled})
}

// SetDepthWrite records a depth write toggle.
func (r *Recorder) SetDepthWrite(enabled bool) {
	r.Ops = append(r.Ops, Op{Kind: OpDepthWrite, Enabled: enabled})
}

// Clear records a clear call.
func (r *Recorder) Clear(cr, cg, cb, ca float32) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Floats: [4]float32{cr, cg, cb, ca}})
}

// LastUniform returns the most recent value recorded for a uniform name.
func (r *Recorder) LastUniform(name string) (Op, bool) {
	for i := len(r.Ops) - 1; i >= 0; i-- {
		if r.Ops[i].Kind == OpUniform && r.Ops[i].Name == name {
			return r.Ops[i], true
		}
	}
	return Op{}, false
}

// DrawCount returns the number of recorded draw calls.
func (r *Recorder) DrawCount() int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == OpDraw {
			n++
		}
	}
	return n
}
