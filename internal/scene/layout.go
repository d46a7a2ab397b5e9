package scene

import (
	gomath "math"

	"github.com/Faultbox/candlelight/internal/engine/mesh"
	"github.com/Faultbox/candlelight/pkg/math"
)

// piece is one draw call worth of placement data. Rotation is in degrees.
// A piece with a texture tag samples that texture with the given UV scale;
// otherwise it is flat-colored. An empty material tag keeps whatever
// material the previous piece selected.
type piece struct {
	shape    mesh.Shape
	scale    math.Vec3
	rotation math.Vec3
	position math.Vec3
	texture  string
	uv       [2]float32
	color    [4]float32
	material string
}

// Fixed anchors of the arrangement.
var (
	candleAnchor = math.Vec3{X: -3.5, Y: 0, Z: -3}
	bookPosition = math.Vec3{X: -2, Y: 0.20, Z: 2.1}
)

const (
	bookScaleFactor = 1.4
	baseRotationY   = 4.5
	numPageLayers   = 25
)

func sinf(v float32) float32 {
	return float32(gomath.Sin(float64(v)))
}

func cosf(v float32) float32 {
	return float32(gomath.Cos(float64(v)))
}

// tablePieces returns the tabletop slab.
func tablePieces() []piece {
	return []piece{{
		shape:    mesh.Box,
		scale:    math.Vec3{X: 22, Y: 0.4, Z: 12},
		position: math.Vec3{Y: -0.3},
		texture:  "wood",
		uv:       [2]float32{8, 8},
		material: "cement",
	}}
}

// candlePieces builds the candle holder stack from the anchor upward.
// Each stage advances a running height so the parts stay stacked if any
// stage dimension changes. The returned vector is the flame position
// above the wick.
func candlePieces(anchor math.Vec3) ([]piece, math.Vec3) {
	var pieces []piece
	currentY := float32(0)

	at := func(dy float32) math.Vec3 {
		return anchor.Add(math.Vec3{Y: dy})
	}

	// base of the holder
	pieces = append(pieces, piece{
		shape:    mesh.TaperedCylinder,
		scale:    math.Vec3{X: 1.6, Y: 0.6, Z: 1.6},
		position: at(currentY),
		texture:  "metal",
		uv:       [2]float32{4, 2},
	})
	currentY += 0.6

	// stem
	pieces = append(pieces, piece{
		shape:    mesh.Cylinder,
		scale:    math.Vec3{X: 0.3, Y: 1.0, Z: 0.3},
		position: at(currentY),
		texture:  "metal",
		uv:       [2]float32{2.5, 0.5},
	})
	currentY += 1.0

	// sphere decoration at the stem joint
	pieces = append(pieces, piece{
		shape:    mesh.Sphere,
		scale:    math.Vec3{X: 0.45, Y: 0.25, Z: 0.45},
		position: at(currentY),
		texture:  "metal",
		uv:       [2]float32{2.5, 0.5},
	})
	currentY += 0.15

	// upper stem
	pieces = append(pieces, piece{
		shape:    mesh.Cylinder,
		scale:    math.Vec3{X: 0.3, Y: 0.8, Z: 0.3},
		position: at(currentY),
		texture:  "metal",
		uv:       [2]float32{2.5, 0.5},
	})
	currentY += 0.8

	// cup, flipped upside down
	pieces = append(pieces, piece{
		shape:    mesh.TaperedCylinder,
		scale:    math.Vec3{X: 1.2, Y: 1.0, Z: 1.2},
		rotation: math.Vec3{X: 180},
		position: at(currentY + 0.7),
		texture:  "metal",
		uv:       [2]float32{2.5, 0.5},
	})

	// rim on top of the cup
	pieces = append(pieces, piece{
		shape:    mesh.Cylinder,
		scale:    math.Vec3{X: 1.2, Y: 0.2, Z: 1.2},
		position: at(currentY + 0.7),
		texture:  "metal",
		uv:       [2]float32{2.5, 0.5},
	})
	currentY += 1.0

	// the candle itself, sunk slightly into the cup
	pieces = append(pieces, piece{
		shape:    mesh.Cylinder,
		scale:    math.Vec3{X: 0.9, Y: 2.0, Z: 0.9},
		position: at(currentY - 0.2),
		texture:  "candle",
		uv:       [2]float32{1, 0.8},
	})

	// wick
	pieces = append(pieces, piece{
		shape:    mesh.Cylinder,
		scale:    math.Vec3{X: 0.04, Y: 0.05, Z: 0.04},
		position: at(currentY + 1.8),
		color:    [4]float32{0.05, 0.05, 0.05, 1},
	})

	return pieces, at(currentY + 2.0)
}

// tableclothPiece covers the tabletop, lifted a little so it never
// z-fights the slab.
func tableclothPiece() piece {
	return piece{
		shape:    mesh.Box,
		scale:    math.Vec3{X: 16, Y: 0.02, Z: 10},
		position: math.Vec3{Y: -0.1},
		texture:  "cloth",
		uv:       [2]float32{4, 4},
	}
}

// openBookPieces lays out the bottom cover, the fanned page stack and the
// center divider.
func openBookPieces(pos math.Vec3, s float32) []piece {
	coverWidth := 4.6 * s
	coverDepth := 3.0 * s
	coverThickness := 0.25 * s
	pageWidth := 4.3 * s
	pageThickness := 0.025 * s

	pieces := []piece{{
		shape:    mesh.Box,
		scale:    math.Vec3{X: coverWidth, Y: coverThickness * 0.95, Z: coverDepth},
		rotation: math.Vec3{Y: baseRotationY},
		position: pos,
		texture:  "book",
		uv:       [2]float32{2, 1.5},
	}}

	baseY := -0.02 * s
	for i := 0; i < numPageLayers; i++ {
		yOffset := baseY + float32(i)*(pageThickness*0.8)
		subtleWave := 0.002 * sinf(float32(i)*0.5)

		// pages arch highest in the middle of the stack and settle
		// flat toward the covers
		normalized := (float32(i) - numPageLayers/2.0) / (numPageLayers / 2.0)
		smoothCurve := float32(gomath.Pow(gomath.Abs(float64(normalized)), 1.5))
		archAmplitude := 0.10 * s * (1.0 - smoothCurve)

		xOffset := -0.01 * normalized
		pageYaw := normalized * 0.12

		pieces = append(pieces, piece{
			shape:    mesh.Box,
			scale:    math.Vec3{X: pageWidth, Y: pageThickness, Z: coverDepth - 0.08},
			rotation: math.Vec3{X: -archAmplitude * 0.5, Y: baseRotationY + pageYaw},
			position: pos.Add(math.Vec3{X: xOffset, Y: yOffset + subtleWave}),
			texture:  "page",
			uv:       [2]float32{1, 1},
		})
	}

	totalHeight := numPageLayers * (pageThickness * 0.8)
	dividerCenterY := -0.02*s + totalHeight*0.5
	dividerHeight := totalHeight * 1.05
	dividerThickness := 0.05 * s
	dividerDepth := coverDepth - 0.02

	pieces = append(pieces,
		piece{
			shape:    mesh.Box,
			scale:    math.Vec3{X: dividerThickness, Y: dividerHeight, Z: dividerDepth},
			rotation: math.Vec3{Y: baseRotationY},
			position: pos.Add(math.Vec3{Y: dividerCenterY}),
			color:    [4]float32{0.11, 0.09, 0.08, 1},
		},
		piece{
			shape:    mesh.Box,
			scale:    math.Vec3{X: dividerThickness * 0.9, Y: dividerHeight * 0.95, Z: dividerDepth - 0.01},
			rotation: math.Vec3{Y: baseRotationY},
			position: pos.Add(math.Vec3{Y: dividerCenterY - pageThickness*0.02}),
			color:    [4]float32{0.07, 0.06, 0.055, 1},
		},
	)

	return pieces
}

// penDirection is the pen's long axis for a yaw given in degrees.
func penDirection(yawDegrees float32) math.Vec3 {
	yaw := math.Radians(yawDegrees)
	return math.Vec3{X: sinf(yaw), Z: cosf(yaw)}.Normalize()
}

// penPieces places the tapered body beside the book with the white tip
// just past its front end.
func penPieces(bookPos math.Vec3, s float32) []piece {
	const penScale = 1.7

	coverWidth := 4.6 * s
	length := 0.45 * s * penScale
	rRear := 0.025 * s * penScale
	rFront := 0.015 * s * penScale
	tipLen := 0.06 * s * penScale * 2.6
	tipRadius := rFront * 0.25
	if tipRadius < 0.0005 {
		tipRadius = 0.0005
	}

	rotY := float32(baseRotationY + 10.0)
	dir := penDirection(rotY)

	rMax := rRear
	if rFront > rMax {
		rMax = rFront
	}
	center := bookPos.Add(math.Vec3{
		X: coverWidth*0.5 + 0.85,
		Y: -0.20 + rMax + 0.002,
		Z: 0.50 * s,
	})

	front := center.Add(dir.Scale(length*0.5 + 0.003))
	tipPos := front.Add(dir.Scale(tipLen*0.5 + 0.003))

	return []piece{
		{
			shape:    mesh.TaperedCylinder,
			scale:    math.Vec3{X: rRear, Y: rFront, Z: length},
			rotation: math.Vec3{Y: rotY},
			position: center,
			texture:  "pen",
			uv:       [2]float32{1, 1},
		},
		{
			shape:    mesh.Cone,
			scale:    math.Vec3{X: tipRadius, Y: tipRadius, Z: tipLen},
			rotation: math.Vec3{Y: rotY},
			position: tipPos,
			color:    [4]float32{1, 1, 1, 1},
		},
	}
}

// inkpotPieces builds the round body, the neck and the dark lid.
func inkpotPieces(bookPos math.Vec3, s float32) []piece {
	const inkPotScale = 1.5

	coverWidth := 4.6 * s
	k := s * inkPotScale
	pos := bookPos.Add(math.Vec3{
		X: coverWidth*0.5 + 0.95,
		Y: -0.30,
		Z: -2.8 * s,
	})

	return []piece{
		{
			shape:    mesh.Sphere,
			scale:    math.Vec3{X: 0.4, Y: 0.45, Z: 0.4}.Scale(k),
			position: pos.Add(math.Vec3{Y: 0.25 * k}),
			texture:  "inkpot",
			uv:       [2]float32{1, 1},
		},
		{
			shape:    mesh.Cylinder,
			scale:    math.Vec3{X: 0.18, Y: 0.2, Z: 0.18}.Scale(k),
			position: pos.Add(math.Vec3{Y: 0.5 * k}),
			texture:  "inkpot",
			uv:       [2]float32{1, 1},
		},
		{
			shape:    mesh.Cylinder,
			scale:    math.Vec3{X: 0.22, Y: 0.08, Z: 0.22}.Scale(k),
			position: pos.Add(math.Vec3{Y: 0.6 * k}),
			color:    [4]float32{0.08, 0.08, 0.08, 1},
		},
	}
}

// paperPiece is the loose sheet peeking out from under the book.
func paperPiece(bookPos math.Vec3, s float32) piece {
	k := s * 1.05
	return piece{
		shape:    mesh.Box,
		scale:    math.Vec3{X: 4.75, Y: 0.01, Z: 3.15}.Scale(k),
		rotation: math.Vec3{Y: baseRotationY + 8},
		position: bookPos.Add(math.Vec3{X: -0.04, Y: -0.27, Z: 0.12}),
		texture:  "page",
		uv:       [2]float32{1.5, 1.5},
	}
}

// closedBookPieces builds the closed book: covers, page block and spine.
// The spine offset is expressed in the book's local frame and rotated
// into world space so it tracks the book's yaw.
func closedBookPieces() []piece {
	const (
		closedBookScale = 1.25
		bookRotY        = 110.0
	)

	coverWidth := float32(4.5 * closedBookScale)
	coverDepth := float32(3.0 * closedBookScale)
	coverThickness := float32(0.08 * closedBookScale)
	pagesHeight := float32(0.5 * closedBookScale)

	pos := math.Vec3{X: 6, Y: 0.1, Z: -1.8}

	pieces := []piece{
		{
			shape:    mesh.Box,
			scale:    math.Vec3{X: coverWidth, Y: coverThickness, Z: coverDepth},
			rotation: math.Vec3{Y: bookRotY},
			position: pos,
			texture:  "book",
			uv:       [2]float32{2.2, 1.8},
		},
		{
			shape:    mesh.Box,
			scale:    math.Vec3{X: coverWidth * 0.96, Y: pagesHeight, Z: coverDepth * 0.94},
			rotation: math.Vec3{Y: bookRotY},
			position: pos.Add(math.Vec3{Y: coverThickness*0.5 + pagesHeight*0.5}),
			texture:  "page",
			uv:       [2]float32{2.5, 2.5},
		},
	}

	spineThickness := float32(0.09 * closedBookScale)
	spineHeight := pagesHeight + coverThickness + 0.03
	localOffset := math.Vec3{
		Y: coverThickness*0.5 + pagesHeight*0.5,
		Z: -coverDepth*0.5 - spineThickness*0.5 + 0.10,
	}
	worldOffset := math.RotateY(math.Radians(bookRotY)).TransformVec3(localOffset)

	pieces = append(pieces,
		piece{
			shape:    mesh.Box,
			scale:    math.Vec3{X: coverWidth * 0.985, Y: spineHeight, Z: spineThickness},
			rotation: math.Vec3{Y: bookRotY},
			position: pos.Add(worldOffset),
			texture:  "book",
			uv:       [2]float32{1, 1},
		},
		piece{
			shape:    mesh.Box,
			scale:    math.Vec3{X: coverWidth, Y: coverThickness, Z: coverDepth},
			rotation: math.Vec3{Y: bookRotY},
			position: pos.Add(math.Vec3{Y: coverThickness + pagesHeight}),
			texture:  "book",
			uv:       [2]float32{2.2, 1.8},
		},
	)

	return pieces
}

// stillLifePieces is everything drawn after the candle flame: tablecloth,
// open book, pen, inkpot, paper and the closed book.
func stillLifePieces() []piece {
	var pieces []piece
	pieces = append(pieces, tableclothPiece())
	pieces = append(pieces, openBookPieces(bookPosition, bookScaleFactor)...)
	pieces = append(pieces, penPieces(bookPosition, bookScaleFactor)...)
	pieces = append(pieces, inkpotPieces(bookPosition, bookScaleFactor)...)
	pieces = append(pieces, paperPiece(bookPosition, bookScaleFactor))
	pieces = append(pieces, closedBookPieces()...)
	return pieces
}
