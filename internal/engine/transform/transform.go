// Package transform builds model matrices for scene objects.
package transform

import "github.com/Faultbox/candlelight/pkg/math"

// Compose builds a model matrix from scale, per-axis rotation in degrees and
// translation. The composition order is fixed for the whole renderer:
//
//	translate * rotateZ * rotateY * rotateX * scale
//
// meaning the scaled object is rotated around X, then Y, then Z, then moved
// to its world position. Changing this order changes the visual result for
// any combined rotation, so it is never parameterized.
func Compose(scale, rotationDegrees, translation math.Vec3) math.Mat4 {
	s := math.ScaleVec(scale)
	rx := math.RotateX(math.Radians(rotationDegrees.X))
	ry := math.RotateY(math.Radians(rotationDegrees.Y))
	rz := math.RotateZ(math.Radians(rotationDegrees.Z))
	t := math.TranslateVec(translation)

	return t.Mul(rz).Mul(ry).Mul(rx).Mul(s)
}
