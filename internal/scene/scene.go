// Package scene builds and renders the candlelit still life: a wooden
// table with a tablecloth, a candle in its holder, an open book with
// fanned pages, a pen, an inkpot, a loose sheet of paper and a closed
// book.
package scene

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/candlelight/internal/engine/lighting"
	"github.com/Faultbox/candlelight/internal/engine/material"
	"github.com/Faultbox/candlelight/internal/engine/mesh"
	"github.com/Faultbox/candlelight/internal/engine/render"
	"github.com/Faultbox/candlelight/internal/engine/texture"
	"github.com/Faultbox/candlelight/internal/engine/transform"
	"github.com/Faultbox/candlelight/internal/logger"
	"github.com/Faultbox/candlelight/pkg/math"
)

// Background clear color, a warm light grey.
var clearColor = [4]float32{0.74, 0.72, 0.70, 1}

// sceneTextures maps image files to the tags the layout refers to.
var sceneTextures = []struct {
	file string
	tag  string
}{
	{"wood.jpg", "wood"},
	{"metal.jpg", "metal"},
	{"candle.jpg", "candle"},
	{"book.jpg", "book"},
	{"page.jpg", "page"},
	{"pen.jpg", "pen"},
	{"inkpot.png", "inkpot"},
	{"cloth.jpg", "cloth"},
}

// Scene owns the still-life arrangement and renders it every frame.
type Scene struct {
	backend   render.Backend
	textures  *texture.Registry
	materials *material.Table
	rig       *lighting.Rig

	// placement is fixed, computed once in PrepareScene
	preFlame  []piece
	postFlame []piece
	flamePos  math.Vec3

	currentMaterial string
}

// New creates a scene rendering through the given backend.
func New(backend render.Backend, textures *texture.Registry) *Scene {
	return &Scene{
		backend:   backend,
		textures:  textures,
		materials: material.NewTable(),
		rig:       lighting.NewRig(),
	}
}

// LoadTextures loads every image the arrangement uses from dir and binds
// the registry to its texture units. A texture that fails to load is
// logged and skipped; pieces tagged with it fall back to slot 0 at draw
// time instead of aborting the run.
func (s *Scene) LoadTextures(dir string) {
	for _, t := range sceneTextures {
		if err := s.textures.Load(filepath.Join(dir, t.file), t.tag); err != nil {
			logger.Warn("skipping texture",
				zap.String("tag", t.tag),
				zap.Error(err),
			)
		}
	}
	s.textures.BindAll()
}

// PrepareScene computes the fixed placement of every object and uploads
// the static light configuration. Called once before the render loop.
func (s *Scene) PrepareScene() {
	s.preFlame = tablePieces()
	candle, flamePos := candlePieces(candleAnchor)
	s.preFlame = append(s.preFlame, candle...)
	s.flamePos = flamePos
	s.postFlame = stillLifePieces()

	s.rig.SetupStatic(s.backend)

	logger.Info("scene prepared",
		zap.Int("pieces", len(s.preFlame)+len(s.postFlame)),
		zap.Int("textures", s.textures.Len()),
	)
}

// FlamePosition returns the candle flame's world position.
func (s *Scene) FlamePosition() math.Vec3 {
	return s.flamePos
}

// Render draws one frame. The candle light and flame geometry animate
// with the rig clock; everything else is static.
func (s *Scene) Render() {
	b := s.backend

	b.Clear(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
	b.SetBool("bUseLighting", true)

	s.currentMaterial = ""
	for _, p := range s.preFlame {
		s.drawPiece(p)
	}

	elapsed := s.rig.Elapsed()
	flicker := s.rig.AnimateFlame(elapsed, s.flamePos, b)
	s.drawFlame(elapsed, flicker)

	for _, p := range s.postFlame {
		s.drawPiece(p)
	}
}

// drawFlame draws the bright core and then the translucent glow shell.
// The glow blends over the core and must not write depth, or it would
// occlude geometry behind it.
func (s *Scene) drawFlame(elapsed, flicker float32) {
	b := s.backend

	s.setColor(1.2*flicker, 0.95*flicker, 0.45*flicker, 1)
	b.SetMat4("model", transform.Compose(
		math.Vec3{X: 0.05, Y: 0.25, Z: 0.05},
		math.Vec3{},
		s.flamePos,
	))
	b.Draw(mesh.Sphere)

	b.SetBlend(true)
	b.SetDepthWrite(false)

	glowPulse := 1.0 + 0.08*sinf(elapsed*8.0)
	s.setColor(1.0, 0.9, 0.7, 0.3*(0.9+0.1*flicker))
	b.SetMat4("model", transform.Compose(
		math.Vec3{X: 0.12 * glowPulse, Y: 0.40 * glowPulse, Z: 0.12 * glowPulse},
		math.Vec3{},
		s.flamePos.Add(math.Vec3{Y: 0.05}),
	))
	b.Draw(mesh.Sphere)

	b.SetDepthWrite(true)
	b.SetBlend(false)
}

func (s *Scene) drawPiece(p piece) {
	b := s.backend

	if p.material != "" && p.material != s.currentMaterial {
		m := s.materials.Lookup(p.material)
		b.SetVec3("material.diffuseColor", m.DiffuseColor)
		b.SetVec3("material.specularColor", m.SpecularColor)
		b.SetFloat("material.shininess", m.Shininess)
		s.currentMaterial = p.material
	}

	if p.texture != "" {
		slot := s.textures.FindSlot(p.texture)
		if slot < 0 {
			// unknown tag falls back to unit 0 rather than dropping the draw
			slot = 0
		}
		b.SetBool("bUseTexture", true)
		b.SetInt("objectTexture", int32(slot))
		b.SetVec2("UVscale", p.uv[0], p.uv[1])
	} else {
		s.setColor(p.color[0], p.color[1], p.color[2], p.color[3])
	}

	b.SetMat4("model", transform.Compose(p.scale, p.rotation, p.position))
	b.Draw(p.shape)
}

func (s *Scene) setColor(r, g, bl, a float32) {
	s.backend.SetBool("bUseTexture", false)
	s.backend.SetVec4("objectColor", r, g, bl, a)
}
