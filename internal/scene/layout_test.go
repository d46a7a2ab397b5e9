package scene

import (
	"testing"

	"github.com/Faultbox/candlelight/internal/engine/mesh"
	"github.com/Faultbox/candlelight/pkg/math"
)

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestCandleStackFlamePosition(t *testing.T) {
	anchor := math.Vec3{X: -3.5, Y: 0, Z: -3}
	_, flamePos := candlePieces(anchor)

	// stage heights sum to 3.55, flame sits 2.0 above that
	want := anchor.Add(math.Vec3{Y: 5.55})
	if absf(flamePos.X-want.X) > 1e-5 || absf(flamePos.Y-want.Y) > 1e-5 || absf(flamePos.Z-want.Z) > 1e-5 {
		t.Fatalf("flame position = %v, want %v", flamePos, want)
	}
}

func TestCandleStackIsStacked(t *testing.T) {
	pieces, _ := candlePieces(math.Vec3{})
	if len(pieces) != 8 {
		t.Fatalf("candle stack has %d pieces, want 8", len(pieces))
	}

	lastY := float32(-1)
	for i, p := range pieces {
		if p.position.Y < lastY {
			t.Fatalf("piece %d at y=%v below previous y=%v", i, p.position.Y, lastY)
		}
		lastY = p.position.Y
	}

	// only the wick is flat-colored
	for i, p := range pieces[:7] {
		if p.texture == "" {
			t.Fatalf("piece %d has no texture", i)
		}
	}
	wick := pieces[7]
	if wick.texture != "" {
		t.Fatal("wick should be flat-colored")
	}
	if wick.color != [4]float32{0.05, 0.05, 0.05, 1} {
		t.Fatalf("wick color = %v", wick.color)
	}
}

func TestCandleStackFollowsAnchor(t *testing.T) {
	a := math.Vec3{X: 2, Y: 1, Z: -7}
	basePieces, baseFlame := candlePieces(math.Vec3{})
	movedPieces, movedFlame := candlePieces(a)

	for i := range basePieces {
		want := basePieces[i].position.Add(a)
		got := movedPieces[i].position
		if absf(got.X-want.X) > 1e-5 || absf(got.Y-want.Y) > 1e-5 || absf(got.Z-want.Z) > 1e-5 {
			t.Fatalf("piece %d moved to %v, want %v", i, got, want)
		}
	}
	wantFlame := baseFlame.Add(a)
	if absf(movedFlame.Y-wantFlame.Y) > 1e-5 {
		t.Fatalf("flame moved to %v, want %v", movedFlame, wantFlame)
	}
}

func TestOpenBookPageCount(t *testing.T) {
	pieces := openBookPieces(bookPosition, bookScaleFactor)

	// cover + 25 pages + two divider boxes
	if len(pieces) != 1+numPageLayers+2 {
		t.Fatalf("open book has %d pieces, want %d", len(pieces), 1+numPageLayers+2)
	}

	pages := 0
	for _, p := range pieces {
		if p.texture == "page" {
			pages++
		}
	}
	if pages != numPageLayers {
		t.Fatalf("found %d page pieces, want %d", pages, numPageLayers)
	}
}

func TestOpenBookPageArch(t *testing.T) {
	pieces := openBookPieces(math.Vec3{}, bookScaleFactor)
	pages := pieces[1 : 1+numPageLayers]

	// outermost pages lie flat, the middle of the stack arches
	if absf(pages[0].rotation.X) > 1e-6 {
		t.Fatalf("first page rotX = %v, want 0", pages[0].rotation.X)
	}
	mid := pages[numPageLayers/2]
	if mid.rotation.X >= 0 {
		t.Fatalf("middle page rotX = %v, want negative arch tilt", mid.rotation.X)
	}

	// the stack gains height page over page
	for i := 1; i < len(pages); i++ {
		if pages[i].position.Y <= pages[i-1].position.Y-0.003 {
			t.Fatalf("page %d at y=%v below page %d at y=%v",
				i, pages[i].position.Y, i-1, pages[i-1].position.Y)
		}
	}

	// yaw fans symmetrically around the base rotation
	first := pages[0].rotation.Y - baseRotationY
	last := pages[numPageLayers-1].rotation.Y - baseRotationY
	if first >= 0 {
		t.Fatalf("first page yaw offset = %v, want negative", first)
	}
	if last <= 0 {
		t.Fatalf("last page yaw offset = %v, want positive", last)
	}
}

func TestPenTipSitsAtFrontOfBody(t *testing.T) {
	pieces := penPieces(bookPosition, bookScaleFactor)
	if len(pieces) != 2 {
		t.Fatalf("pen has %d pieces, want 2", len(pieces))
	}
	body, tip := pieces[0], pieces[1]

	if body.shape != mesh.TaperedCylinder || tip.shape != mesh.Cone {
		t.Fatalf("pen shapes = %v, %v", body.shape, tip.shape)
	}

	dir := penDirection(body.rotation.Y)
	offset := tip.position.Sub(body.position)

	length := body.scale.Z
	tipLen := tip.scale.Z
	wantAlong := length*0.5 + 0.003 + tipLen*0.5 + 0.003

	along := offset.Dot(dir)
	if absf(along-wantAlong) > 1e-4 {
		t.Fatalf("tip offset along axis = %v, want %v", along, wantAlong)
	}

	// no sideways or vertical drift off the pen axis
	perp := offset.Sub(dir.Scale(along))
	if perp.Length() > 1e-4 {
		t.Fatalf("tip drifts %v off the pen axis", perp.Length())
	}
}

func TestPenDirectionIsUnitPlanar(t *testing.T) {
	for _, yaw := range []float32{0, 45, 90, 14.5, 270} {
		dir := penDirection(yaw)
		if absf(dir.Length()-1) > 1e-5 {
			t.Fatalf("penDirection(%v) has length %v", yaw, dir.Length())
		}
		if dir.Y != 0 {
			t.Fatalf("penDirection(%v) leaves the table plane: %v", yaw, dir)
		}
	}
	if d := penDirection(0); absf(d.Z-1) > 1e-5 {
		t.Fatalf("penDirection(0) = %v, want +Z", d)
	}
	if d := penDirection(90); absf(d.X-1) > 1e-5 {
		t.Fatalf("penDirection(90) = %v, want +X", d)
	}
}

func TestClosedBookSpineTracksRotation(t *testing.T) {
	pieces := closedBookPieces()
	if len(pieces) != 4 {
		t.Fatalf("closed book has %d pieces, want 4", len(pieces))
	}
	bottom, spine := pieces[0], pieces[2]

	// undo the book yaw: the spine must sit on the local -Z edge
	yaw := math.Radians(bottom.rotation.Y)
	local := math.RotateY(-yaw).TransformVec3(spine.position.Sub(bottom.position))

	if absf(local.X) > 1e-4 {
		t.Fatalf("spine local X = %v, want 0", local.X)
	}
	if local.Z >= 0 {
		t.Fatalf("spine local Z = %v, want negative edge", local.Z)
	}

	wantZ := -bottom.scale.Z*0.5 - spine.scale.Z*0.5 + 0.10
	if absf(local.Z-wantZ) > 1e-4 {
		t.Fatalf("spine local Z = %v, want %v", local.Z, wantZ)
	}
}

func TestStillLifeUsesOnlyRegisteredTags(t *testing.T) {
	known := map[string]bool{}
	for _, tex := range sceneTextures {
		known[tex.tag] = true
	}

	var all []piece
	all = append(all, tablePieces()...)
	candle, _ := candlePieces(candleAnchor)
	all = append(all, candle...)
	all = append(all, stillLifePieces()...)

	for i, p := range all {
		if p.texture != "" && !known[p.texture] {
			t.Fatalf("piece %d references unknown texture %q", i, p.texture)
		}
	}
}
