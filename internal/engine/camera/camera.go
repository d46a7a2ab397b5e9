// Package camera provides the free-fly camera and the view controller
// that drives view and projection uniforms each frame.
package camera

import (
	gomath "math"

	"github.com/Faultbox/candlelight/pkg/math"
)

// Movement identifies a keyboard movement direction.
type Movement int

const (
	MoveForward Movement = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

// Camera is a free-fly camera. Orientation is derived from Yaw and Pitch;
// Front holds the resulting direction vector.
type Camera struct {
	Position math.Vec3
	Front    math.Vec3
	Up       math.Vec3

	Yaw   float32 // degrees
	Pitch float32 // degrees

	Zoom          float32 // field of view, degrees
	MovementSpeed float32
	Sensitivity   float32
}

// ProcessKeyboard displaces the camera along its basis vectors.
// Up and down move along world Y, not the camera's up vector.
func (c *Camera) ProcessKeyboard(direction Movement, deltaTime float32) {
	velocity := c.MovementSpeed * deltaTime
	switch direction {
	case MoveForward:
		c.Position = c.Position.Add(c.Front.Scale(velocity))
	case MoveBackward:
		c.Position = c.Position.Sub(c.Front.Scale(velocity))
	case MoveLeft:
		c.Position = c.Position.Sub(c.right().Scale(velocity))
	case MoveRight:
		c.Position = c.Position.Add(c.right().Scale(velocity))
	case MoveUp:
		c.Position.Y += velocity
	case MoveDown:
		c.Position.Y -= velocity
	}
}

// ProcessMouseMovement applies a mouse delta to yaw and pitch.
// Pitch is clamped to avoid flipping over the poles.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32) {
	c.Yaw += xOffset * c.Sensitivity
	c.Pitch += yOffset * c.Sensitivity

	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}

	c.updateFront()
}

// ProcessScroll adjusts movement speed by the wheel delta, clamped to [1, 100].
func (c *Camera) ProcessScroll(yOffset float32) {
	c.MovementSpeed += yOffset
	if c.MovementSpeed < 1 {
		c.MovementSpeed = 1
	}
	if c.MovementSpeed > 100 {
		c.MovementSpeed = 100
	}
}

// ViewMatrix returns the look-at matrix for the current position and
// orientation.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) right() math.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

func (c *Camera) updateFront() {
	yaw := float64(math.Radians(c.Yaw))
	pitch := float64(math.Radians(c.Pitch))
	c.Front = math.Vec3{
		X: float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
}
