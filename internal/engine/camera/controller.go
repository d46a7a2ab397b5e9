package camera

import (
	gomath "math"

	"github.com/Faultbox/candlelight/internal/engine/render"
	"github.com/Faultbox/candlelight/pkg/math"
)

// Mode selects the projection the controller computes.
type Mode int

const (
	ModePerspective Mode = iota
	ModeOrthographic
)

// String returns a printable name for the mode.
func (m Mode) String() string {
	if m == ModeOrthographic {
		return "orthographic"
	}
	return "perspective"
}

// Controller owns the camera and projection state. Switching modes resets
// the camera pose to the mode's preset in the same step, so a half-applied
// switch is never observable.
type Controller struct {
	Camera Camera

	mode   Mode
	aspect float32

	firstMouse bool
}

// NewController returns a controller in perspective mode with the
// perspective preset applied.
func NewController(aspect float32) *Controller {
	c := &Controller{aspect: aspect, firstMouse: true}
	c.Camera = perspectivePreset()
	return c
}

func perspectivePreset() Camera {
	c := Camera{
		Position:      math.Vec3{X: 0, Y: 9, Z: 18},
		Front:         math.Vec3{X: 0, Y: -0.8, Z: -3},
		Up:            math.Vec3{X: 0, Y: 1, Z: 0},
		Zoom:          80,
		MovementSpeed: 20,
		Sensitivity:   0.1,
	}
	c.Yaw, c.Pitch = anglesFromFront(c.Front)
	return c
}

func orthographicPreset() Camera {
	c := Camera{
		Position:      math.Vec3{X: 0, Y: 5, Z: 10},
		Front:         math.Vec3{X: 0, Y: -0.3, Z: -1}.Normalize(),
		Up:            math.Vec3{X: 0, Y: 1, Z: 0},
		Zoom:          80,
		MovementSpeed: 20,
		Sensitivity:   0.1,
	}
	c.Yaw, c.Pitch = anglesFromFront(c.Front)
	return c
}

// anglesFromFront recovers yaw and pitch in degrees from a front vector,
// so the first mouse motion after a preset does not snap the view.
func anglesFromFront(front math.Vec3) (yaw, pitch float32) {
	f := front.Normalize()
	pitch = float32(gomath.Asin(float64(f.Y)) * 180 / gomath.Pi)
	yaw = float32(gomath.Atan2(float64(f.Z), float64(f.X)) * 180 / gomath.Pi)
	return yaw, pitch
}

// Mode reports the current projection mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// SetMode switches projection mode and resets the camera pose to that
// mode's preset, regardless of where the camera had been moved. Field of
// view, movement speed and sensitivity keep whatever the user set.
func (c *Controller) SetMode(mode Mode) {
	c.mode = mode
	preset := perspectivePreset()
	if mode == ModeOrthographic {
		preset = orthographicPreset()
	}
	c.Camera.Position = preset.Position
	c.Camera.Front = preset.Front
	c.Camera.Up = preset.Up
	c.Camera.Yaw = preset.Yaw
	c.Camera.Pitch = preset.Pitch
}

// SetAspect updates the aspect ratio used for the projection matrix.
func (c *Controller) SetAspect(aspect float32) {
	c.aspect = aspect
}

// Move displaces the camera in the given direction for this frame.
func (c *Controller) Move(direction Movement, deltaTime float32) {
	c.Camera.ProcessKeyboard(direction, deltaTime)
}

// HandleMouseDelta consumes one relative motion sample. The first sample
// is dropped; SDL can report a large synthetic delta when relative capture
// begins.
func (c *Controller) HandleMouseDelta(xRel, yRel float32) {
	if c.firstMouse {
		c.firstMouse = false
		return
	}
	c.Camera.ProcessMouseMovement(xRel, -yRel) // screen Y grows downward
}

// HandleScroll adjusts the camera movement speed.
func (c *Controller) HandleScroll(yOffset float32) {
	c.Camera.ProcessScroll(yOffset)
}

// Projection returns the projection matrix for the current mode.
func (c *Controller) Projection() math.Mat4 {
	if c.mode == ModeOrthographic {
		return math.Ortho(-5*c.aspect, 5*c.aspect, -5, 5, 0.1, 500)
	}
	return math.Perspective(math.Radians(c.Camera.Zoom), c.aspect, 0.1, 100)
}

// Apply uploads the view, projection and viewer position uniforms.
func (c *Controller) Apply(b render.Backend) {
	b.SetMat4("view", c.Camera.ViewMatrix())
	b.SetMat4("projection", c.Projection())
	b.SetVec3("viewPosition", c.Camera.Position)
}
