package camera

import (
	"testing"

	"github.com/Faultbox/candlelight/pkg/math"
)

func vec3Eq(a, b math.Vec3, eps float32) bool {
	return absf(a.X-b.X) < eps && absf(a.Y-b.Y) < eps && absf(a.Z-b.Z) < eps
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestKeyboardDisplacement(t *testing.T) {
	c := perspectivePreset()
	c.Front = math.Vec3{X: 0, Y: 0, Z: -1}
	start := c.Position

	c.ProcessKeyboard(MoveForward, 0.5)
	want := start.Add(math.Vec3{X: 0, Y: 0, Z: -c.MovementSpeed * 0.5})
	if !vec3Eq(c.Position, want, 1e-5) {
		t.Fatalf("forward: got %v, want %v", c.Position, want)
	}

	c.ProcessKeyboard(MoveBackward, 0.5)
	if !vec3Eq(c.Position, start, 1e-5) {
		t.Fatalf("backward did not undo forward: %v vs %v", c.Position, start)
	}
}

func TestVerticalMovementIsWorldAligned(t *testing.T) {
	c := perspectivePreset()
	c.Front = math.Vec3{X: 0, Y: -0.8, Z: -3}.Normalize()
	start := c.Position

	c.ProcessKeyboard(MoveUp, 1.0)
	if c.Position.X != start.X || c.Position.Z != start.Z {
		t.Fatalf("up moved horizontally: %v", c.Position)
	}
	if absf(c.Position.Y-start.Y-c.MovementSpeed) > 1e-5 {
		t.Fatalf("up displacement = %v, want %v", c.Position.Y-start.Y, c.MovementSpeed)
	}
}

func TestPitchClamp(t *testing.T) {
	c := perspectivePreset()
	c.ProcessMouseMovement(0, 10000)
	if c.Pitch != 89 {
		t.Fatalf("pitch = %v, want clamp at 89", c.Pitch)
	}
	c.ProcessMouseMovement(0, -100000)
	if c.Pitch != -89 {
		t.Fatalf("pitch = %v, want clamp at -89", c.Pitch)
	}
}

func TestScrollClamp(t *testing.T) {
	c := perspectivePreset()

	c.ProcessScroll(1000)
	if c.MovementSpeed != 100 {
		t.Fatalf("speed = %v, want clamp at 100", c.MovementSpeed)
	}

	c.ProcessScroll(-1000)
	if c.MovementSpeed != 1 {
		t.Fatalf("speed = %v, want clamp at 1", c.MovementSpeed)
	}

	c.ProcessScroll(4)
	if c.MovementSpeed != 5 {
		t.Fatalf("speed = %v, want 5", c.MovementSpeed)
	}
}

func TestAnglesFromFrontRoundTrip(t *testing.T) {
	fronts := []math.Vec3{
		{X: 0, Y: 0, Z: -1},
		{X: 0, Y: -0.8, Z: -3},
		{X: 1, Y: 0.2, Z: 0.5},
	}
	for _, front := range fronts {
		c := Camera{Front: front, Sensitivity: 0.1}
		c.Yaw, c.Pitch = anglesFromFront(front)
		c.updateFront()
		if !vec3Eq(c.Front, front.Normalize(), 1e-4) {
			t.Fatalf("front %v round-tripped to %v", front.Normalize(), c.Front)
		}
	}
}

func TestModeSwitchRestoresPresetPose(t *testing.T) {
	ctrl := NewController(1.25)

	// drift the camera away from the preset
	ctrl.Move(MoveForward, 2.0)
	ctrl.HandleMouseDelta(0, 0)
	ctrl.HandleMouseDelta(40, -20)

	ctrl.SetMode(ModeOrthographic)
	want := orthographicPreset()
	if !vec3Eq(ctrl.Camera.Position, want.Position, 1e-6) {
		t.Fatalf("ortho position = %v, want %v", ctrl.Camera.Position, want.Position)
	}
	if !vec3Eq(ctrl.Camera.Front, want.Front, 1e-6) {
		t.Fatalf("ortho front = %v, want %v", ctrl.Camera.Front, want.Front)
	}

	ctrl.SetMode(ModePerspective)
	want = perspectivePreset()
	if !vec3Eq(ctrl.Camera.Position, want.Position, 1e-6) {
		t.Fatalf("perspective position = %v, want %v", ctrl.Camera.Position, want.Position)
	}
	if !vec3Eq(ctrl.Camera.Front, want.Front, 1e-6) {
		t.Fatalf("perspective front = %v, want %v", ctrl.Camera.Front, want.Front)
	}
}

func TestModeSwitchKeepsTuning(t *testing.T) {
	ctrl := NewController(1.25)
	ctrl.Camera.Zoom = 60
	ctrl.Camera.Sensitivity = 0.25
	ctrl.HandleScroll(30)
	speed := ctrl.Camera.MovementSpeed

	ctrl.SetMode(ModeOrthographic)
	ctrl.SetMode(ModePerspective)

	if ctrl.Camera.MovementSpeed != speed {
		t.Fatalf("mode switch reset MovementSpeed to %v, want %v", ctrl.Camera.MovementSpeed, speed)
	}
	if ctrl.Camera.Zoom != 60 {
		t.Fatalf("mode switch reset Zoom to %v, want 60", ctrl.Camera.Zoom)
	}
	if ctrl.Camera.Sensitivity != 0.25 {
		t.Fatalf("mode switch reset Sensitivity to %v, want 0.25", ctrl.Camera.Sensitivity)
	}
}

func TestFirstMouseSampleProducesNoRotation(t *testing.T) {
	ctrl := NewController(1.25)
	yaw, pitch := ctrl.Camera.Yaw, ctrl.Camera.Pitch

	ctrl.HandleMouseDelta(512, 300)
	if ctrl.Camera.Yaw != yaw || ctrl.Camera.Pitch != pitch {
		t.Fatal("first sample rotated the camera")
	}

	ctrl.HandleMouseDelta(10, 0)
	if ctrl.Camera.Yaw == yaw {
		t.Fatal("second sample did not rotate the camera")
	}
}

func TestMouseYDeltaInversion(t *testing.T) {
	ctrl := NewController(1.25)
	ctrl.HandleMouseDelta(0, 0)
	pitch := ctrl.Camera.Pitch

	// moving the mouse up reports a negative y delta and should raise pitch
	ctrl.HandleMouseDelta(0, -40)
	if ctrl.Camera.Pitch <= pitch {
		t.Fatalf("pitch %v did not increase from %v", ctrl.Camera.Pitch, pitch)
	}
}

func TestProjectionMatrices(t *testing.T) {
	ctrl := NewController(1.25)

	persp := ctrl.Projection()
	wantPersp := math.Perspective(math.Radians(80), 1.25, 0.1, 100)
	if persp != wantPersp {
		t.Fatal("perspective projection mismatch")
	}

	ctrl.SetMode(ModeOrthographic)
	ortho := ctrl.Projection()
	wantOrtho := math.Ortho(-6.25, 6.25, -5, 5, 0.1, 500)
	if ortho != wantOrtho {
		t.Fatal("orthographic projection mismatch")
	}
}

func TestViewMatrixMatchesLookAt(t *testing.T) {
	c := perspectivePreset()
	want := math.LookAt(c.Position, c.Position.Add(c.Front), c.Up)
	got := c.ViewMatrix()
	for i := range got {
		if absf(got[i]-want[i]) > 1e-6 {
			t.Fatalf("view[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
