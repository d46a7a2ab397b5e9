// Package lighting configures the still-life light rig: one directional
// light, two point lights and the candle-flame animation driving point
// light 0.
package lighting

import (
	gomath "math"
	"time"

	"github.com/Faultbox/candlelight/internal/engine/render"
	"github.com/Faultbox/candlelight/pkg/math"
)

// Point light 0 base colors, modulated by the flicker every frame.
var (
	flameBaseDiffuse  = math.Vec3{X: 0.95, Y: 0.60, Z: 0.25}
	flameBaseAmbient  = math.Vec3{X: 0.07, Y: 0.04, Z: 0.02}
	flameBaseSpecular = math.Vec3{X: 1.0, Y: 0.8, Z: 0.5}
)

// Rig owns the light configuration and the flame animation clock.
type Rig struct {
	start time.Time
}

// NewRig creates a rig whose animation clock starts now. Elapsed time is
// always measured from this instant with the monotonic clock, never
// accumulated from frame deltas, so pauses and frame jitter cannot drift
// the flicker phase.
func NewRig() *Rig {
	return &Rig{start: time.Now()}
}

// Elapsed returns seconds since the rig was created.
func (r *Rig) Elapsed() float32 {
	return float32(time.Since(r.start).Seconds())
}

// SetupStatic uploads the one-time light configuration: a soft top-down
// directional light, the warm candle point light, a cool fill point light
// and an inactive spotlight.
func (r *Rig) SetupStatic(b render.Backend) {
	b.SetBool("bUseLighting", true)

	b.SetVec3("directionalLight.direction", math.Vec3{X: -0.2, Y: -1.0, Z: -0.3})
	b.SetVec3("directionalLight.ambient", math.Vec3{X: 0.12, Y: 0.12, Z: 0.12})
	b.SetVec3("directionalLight.diffuse", math.Vec3{X: 0.55, Y: 0.52, Z: 0.48})
	b.SetVec3("directionalLight.specular", math.Vec3{X: 0.4, Y: 0.4, Z: 0.4})
	b.SetBool("directionalLight.bActive", true)

	// Point light 0 - warm candle light, animated per-frame
	b.SetVec3("pointLights[0].position", math.Vec3{Y: 3.0})
	b.SetVec3("pointLights[0].ambient", math.Vec3{X: 0.06, Y: 0.03, Z: 0.02})
	b.SetVec3("pointLights[0].diffuse", flameBaseDiffuse)
	b.SetVec3("pointLights[0].specular", flameBaseSpecular)
	b.SetBool("pointLights[0].bActive", true)

	// Point light 1 - cool fill to the left/back so shadows never go pure black
	b.SetVec3("pointLights[1].position", math.Vec3{X: -4.0, Y: 5.0, Z: -2.0})
	b.SetVec3("pointLights[1].ambient", math.Vec3{X: 0.03, Y: 0.03, Z: 0.05})
	b.SetVec3("pointLights[1].diffuse", math.Vec3{X: 0.35, Y: 0.45, Z: 0.6})
	b.SetVec3("pointLights[1].specular", math.Vec3{X: 0.35, Y: 0.35, Z: 0.4})
	b.SetBool("pointLights[1].bActive", true)

	b.SetBool("spotLight.bActive", false)
}

// Flicker returns the candle brightness multiplier at the given elapsed
// time: a base level with two superimposed sinusoids. At t=0 the value is
// exactly 0.92, and it stays within 0.92 +/- 0.15 for all t.
func Flicker(elapsedSeconds float32) float32 {
	t := float64(elapsedSeconds)
	return 0.92 +
		0.12*float32(gomath.Sin(t*12.0)) +
		0.03*float32(gomath.Sin(t*37.0))
}

// AnimateFlame repositions point light 0 at the flame and modulates its
// colors by the current flicker. Ambient is dampened so the scene floor
// brightness varies less than the highlights.
func (r *Rig) AnimateFlame(elapsedSeconds float32, flamePos math.Vec3, b render.Backend) float32 {
	flicker := Flicker(elapsedSeconds)

	b.SetVec3("pointLights[0].position", flamePos)
	b.SetVec3("pointLights[0].diffuse", flameBaseDiffuse.Scale(flicker))
	b.SetVec3("pointLights[0].ambient", flameBaseAmbient.Scale(0.6+0.4*flicker))
	b.SetVec3("pointLights[0].specular", flameBaseSpecular.Scale(flicker))
	b.SetBool("pointLights[0].bActive", true)

	return flicker
}
