package scene

import (
	"testing"

	"github.com/Faultbox/candlelight/internal/engine/render"
	"github.com/Faultbox/candlelight/internal/engine/texture"
)

func newTestScene() (*Scene, *render.Recorder) {
	rec := render.NewRecorder()
	s := New(rec, texture.NewRegistry())
	s.PrepareScene()
	rec.Reset() // drop the static light setup ops
	return s, rec
}

func TestRenderDrawCount(t *testing.T) {
	s, rec := newTestScene()
	s.Render()

	// table 1, candle 8, flame core + glow 2, cloth 1, open book 28,
	// pen 2, inkpot 3, paper 1, closed book 4
	const want = 50
	if got := rec.DrawCount(); got != want {
		t.Fatalf("frame draws %d pieces, want %d", got, want)
	}
}

func TestRenderStartsWithClear(t *testing.T) {
	s, rec := newTestScene()
	s.Render()

	if len(rec.Ops) == 0 || rec.Ops[0].Kind != render.OpClear {
		t.Fatal("frame does not start with a clear")
	}
	if rec.Ops[0].Floats != clearColor {
		t.Fatalf("clear color = %v, want %v", rec.Ops[0].Floats, clearColor)
	}

	if rec.Ops[1].Kind != render.OpUniform || rec.Ops[1].Name != "bUseLighting" || !rec.Ops[1].Enabled {
		t.Fatal("lighting not enabled after clear")
	}
}

func TestRenderGlowBlendOrdering(t *testing.T) {
	s, rec := newTestScene()
	s.Render()

	blendOn, depthOff, depthOn, blendOff := -1, -1, -1, -1
	for i, op := range rec.Ops {
		switch {
		case op.Kind == render.OpBlend && op.Enabled:
			blendOn = i
		case op.Kind == render.OpDepthWrite && !op.Enabled:
			depthOff = i
		case op.Kind == render.OpDepthWrite && op.Enabled && depthOff >= 0:
			depthOn = i
		case op.Kind == render.OpBlend && !op.Enabled:
			blendOff = i
		}
	}

	if blendOn < 0 || depthOff < 0 || depthOn < 0 || blendOff < 0 {
		t.Fatal("glow pass missing blend or depth-write toggles")
	}
	if !(blendOn < depthOff && depthOff < depthOn && depthOn < blendOff) {
		t.Fatalf("glow pass out of order: blend on %d, depth off %d, depth on %d, blend off %d",
			blendOn, depthOff, depthOn, blendOff)
	}

	glowDraws := 0
	for _, op := range rec.Ops[depthOff:depthOn] {
		if op.Kind == render.OpDraw {
			glowDraws++
		}
	}
	if glowDraws != 1 {
		t.Fatalf("%d draws inside the depth-write-off window, want 1", glowDraws)
	}
}

func TestRenderModelSetBeforeEveryDraw(t *testing.T) {
	s, rec := newTestScene()
	s.Render()

	modelSet := false
	for i, op := range rec.Ops {
		switch {
		case op.Kind == render.OpUniform && op.Name == "model":
			modelSet = true
		case op.Kind == render.OpDraw:
			if !modelSet {
				t.Fatalf("draw at op %d without a fresh model matrix", i)
			}
			modelSet = false
		}
	}
}

func TestRenderFlameLightFollowsStack(t *testing.T) {
	s, rec := newTestScene()
	s.Render()

	op, ok := rec.LastUniform("pointLights[0].position")
	if !ok {
		t.Fatal("flame light position never set")
	}
	want := s.FlamePosition()
	if op.Floats != [4]float32{want.X, want.Y, want.Z} {
		t.Fatalf("flame light at %v, scene flame at %v", op.Floats, want)
	}
}

func TestRenderDrawSequenceIsStable(t *testing.T) {
	s, rec := newTestScene()

	shapes := func() []string {
		var out []string
		for _, op := range rec.Ops {
			if op.Kind == render.OpDraw {
				out = append(out, op.Shape.String())
			}
		}
		return out
	}

	s.Render()
	first := shapes()
	rec.Reset()
	s.Render()
	second := shapes()

	if len(first) != len(second) {
		t.Fatalf("frame draw counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("draw %d changed shape between frames: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestRenderTableMaterialUploadedOnce(t *testing.T) {
	s, rec := newTestScene()
	s.Render()

	count := 0
	for _, op := range rec.Ops {
		if op.Kind == render.OpUniform && op.Name == "material.shininess" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("material uploaded %d times, want 1", count)
	}
}

func TestLoadTexturesSkipsMissingFiles(t *testing.T) {
	rec := render.NewRecorder()
	reg := texture.NewRegistry()
	s := New(rec, reg)

	// an empty directory loads nothing but must not abort
	s.LoadTextures(t.TempDir())
	if reg.Len() != 0 {
		t.Fatalf("registry has %d entries, want 0", reg.Len())
	}

	// rendering still works with every tag unresolved
	s.PrepareScene()
	rec.Reset()
	s.Render()
	if rec.DrawCount() == 0 {
		t.Fatal("no draws after texture load failures")
	}
}
