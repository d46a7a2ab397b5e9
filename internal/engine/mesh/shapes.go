package mesh

import "math"

// builder accumulates interleaved vertex data and triangle indices.
type builder struct {
	vertices []float32
	indices  []uint32
}

func (b *builder) vertex(px, py, pz, nx, ny, nz, u, v float32) uint32 {
	idx := uint32(len(b.vertices) / 8)
	b.vertices = append(b.vertices, px, py, pz, nx, ny, nz, u, v)
	return idx
}

func (b *builder) tri(a, c, d uint32) {
	b.indices = append(b.indices, a, c, d)
}

func (b *builder) quad(a, c, d, e uint32) {
	b.tri(a, c, d)
	b.tri(a, d, e)
}

func (b *builder) geometry() geometry {
	return geometry{vertices: b.vertices, indices: b.indices}
}

func cosSin(angle float64) (float32, float32) {
	return float32(math.Cos(angle)), float32(math.Sin(angle))
}

// buildBox returns a unit cube centered at the origin (extents ±0.5).
func buildBox() geometry {
	b := &builder{}

	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		// +Z front
		{[3]float32{0, 0, 1}, [4][3]float32{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
		// -Z back
		{[3]float32{0, 0, -1}, [4][3]float32{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}},
		// +X right
		{[3]float32{1, 0, 0}, [4][3]float32{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}},
		// -X left
		{[3]float32{-1, 0, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}},
		// +Y top
		{[3]float32{0, 1, 0}, [4][3]float32{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}},
		// -Y bottom
		{[3]float32{0, -1, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}},
	}

	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for _, f := range faces {
		var ids [4]uint32
		for i, c := range f.corners {
			ids[i] = b.vertex(c[0], c[1], c[2], f.normal[0], f.normal[1], f.normal[2], uvs[i][0], uvs[i][1])
		}
		b.quad(ids[0], ids[1], ids[2], ids[3])
	}
	return b.geometry()
}

// buildPlane returns a 2x2 plane in the XZ plane at y=0, facing +Y.
func buildPlane() geometry {
	b := &builder{}
	a := b.vertex(-1, 0, 1, 0, 1, 0, 0, 0)
	c := b.vertex(1, 0, 1, 0, 1, 0, 1, 0)
	d := b.vertex(1, 0, -1, 0, 1, 0, 1, 1)
	e := b.vertex(-1, 0, -1, 0, 1, 0, 0, 1)
	b.quad(a, c, d, e)
	return b.geometry()
}

// buildCylinder returns a cylinder of the given radius and height with its
// base at y=0, growing +Y.
func buildCylinder(radius, height float32, segments int) geometry {
	return buildTaperedCylinder(radius, radius, height, segments)
}

// buildTaperedCylinder returns a cylinder with differing base and top radii,
// base at y=0, growing +Y.
func buildTaperedCylinder(baseRadius, topRadius, height float32, segments int) geometry {
	b := &builder{}

	// Side normal tilts with the slope
	slope := (baseRadius - topRadius) / height

	// Side rings
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		c, s := cosSin(angle)
		u := float32(i) / float32(segments)

		nx, nz := c, s
		ny := slope
		nl := float32(math.Sqrt(float64(nx*nx + ny*ny + nz*nz)))
		nx, ny, nz = nx/nl, ny/nl, nz/nl

		b.vertex(baseRadius*c, 0, baseRadius*s, nx, ny, nz, u, 0)
		b.vertex(topRadius*c, height, topRadius*s, nx, ny, nz, u, 1)
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		b.quad(base, base+2, base+3, base+1)
	}

	// Bottom cap
	bottomCenter := b.vertex(0, 0, 0, 0, -1, 0, 0.5, 0.5)
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		c, s := cosSin(angle)
		b.vertex(baseRadius*c, 0, baseRadius*s, 0, -1, 0, 0.5+0.5*c, 0.5+0.5*s)
	}
	for i := 0; i < segments; i++ {
		b.tri(bottomCenter, bottomCenter+1+uint32(i), bottomCenter+2+uint32(i))
	}

	// Top cap (skip for a cone-like zero top radius)
	if topRadius > 0 {
		topCenter := b.vertex(0, height, 0, 0, 1, 0, 0.5, 0.5)
		for i := 0; i <= segments; i++ {
			angle := 2 * math.Pi * float64(i) / float64(segments)
			c, s := cosSin(angle)
			b.vertex(topRadius*c, height, topRadius*s, 0, 1, 0, 0.5+0.5*c, 0.5+0.5*s)
		}
		for i := 0; i < segments; i++ {
			b.tri(topCenter, topCenter+2+uint32(i), topCenter+1+uint32(i))
		}
	}

	return b.geometry()
}

// buildCone returns a cone with its base at y=0 and apex at y=height.
func buildCone(radius, height float32, segments int) geometry {
	b := &builder{}

	slope := radius / height

	// Side: per-segment apex vertices for correct normals
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		c, s := cosSin(angle)
		u := float32(i) / float32(segments)

		nx, nz := c, s
		ny := slope
		nl := float32(math.Sqrt(float64(nx*nx + ny*ny + nz*nz)))
		nx, ny, nz = nx/nl, ny/nl, nz/nl

		b.vertex(radius*c, 0, radius*s, nx, ny, nz, u, 0)
		b.vertex(0, height, 0, nx, ny, nz, u, 1)
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		b.tri(base, base+2, base+1)
	}

	// Base cap
	center := b.vertex(0, 0, 0, 0, -1, 0, 0.5, 0.5)
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		c, s := cosSin(angle)
		b.vertex(radius*c, 0, radius*s, 0, -1, 0, 0.5+0.5*c, 0.5+0.5*s)
	}
	for i := 0; i < segments; i++ {
		b.tri(center, center+1+uint32(i), center+2+uint32(i))
	}

	return b.geometry()
}

// buildSphere returns a unit sphere centered at the origin.
func buildSphere(stacks, sectors int) geometry {
	b := &builder{}

	for i := 0; i <= stacks; i++ {
		phi := math.Pi/2 - math.Pi*float64(i)/float64(stacks)
		y := float32(math.Sin(phi))
		r := float32(math.Cos(phi))
		for j := 0; j <= sectors; j++ {
			theta := 2 * math.Pi * float64(j) / float64(sectors)
			c, s := cosSin(theta)
			x, z := r*c, r*s
			b.vertex(x, y, z, x, y, z,
				float32(j)/float32(sectors), 1-float32(i)/float32(stacks))
		}
	}

	cols := uint32(sectors + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < sectors; j++ {
			a := uint32(i)*cols + uint32(j)
			b.quad(a, a+1, a+cols+1, a+cols)
		}
	}

	return b.geometry()
}

// buildPrism returns a triangular prism: a right triangle cross-section in
// XY extruded along Z, extents ±0.5 on each axis.
func buildPrism() geometry {
	b := &builder{}

	// Triangle corners in XY
	tri := [3][2]float32{{-0.5, -0.5}, {0.5, -0.5}, {-0.5, 0.5}}

	// Front face (+Z)
	f0 := b.vertex(tri[0][0], tri[0][1], 0.5, 0, 0, 1, 0, 0)
	f1 := b.vertex(tri[1][0], tri[1][1], 0.5, 0, 0, 1, 1, 0)
	f2 := b.vertex(tri[2][0], tri[2][1], 0.5, 0, 0, 1, 0, 1)
	b.tri(f0, f1, f2)

	// Back face (-Z)
	b0 := b.vertex(tri[0][0], tri[0][1], -0.5, 0, 0, -1, 0, 0)
	b1 := b.vertex(tri[1][0], tri[1][1], -0.5, 0, 0, -1, 1, 0)
	b2 := b.vertex(tri[2][0], tri[2][1], -0.5, 0, 0, -1, 0, 1)
	b.tri(b0, b2, b1)

	// Bottom (-Y)
	s0 := b.vertex(-0.5, -0.5, 0.5, 0, -1, 0, 0, 0)
	s1 := b.vertex(0.5, -0.5, 0.5, 0, -1, 0, 1, 0)
	s2 := b.vertex(0.5, -0.5, -0.5, 0, -1, 0, 1, 1)
	s3 := b.vertex(-0.5, -0.5, -0.5, 0, -1, 0, 0, 1)
	b.quad(s0, s3, s2, s1)

	// Left (-X)
	l0 := b.vertex(-0.5, -0.5, 0.5, -1, 0, 0, 0, 0)
	l1 := b.vertex(-0.5, 0.5, 0.5, -1, 0, 0, 1, 0)
	l2 := b.vertex(-0.5, 0.5, -0.5, -1, 0, 0, 1, 1)
	l3 := b.vertex(-0.5, -0.5, -0.5, -1, 0, 0, 0, 1)
	b.quad(l0, l1, l2, l3)

	// Hypotenuse face
	inv := float32(1 / math.Sqrt2)
	h0 := b.vertex(0.5, -0.5, 0.5, inv, inv, 0, 0, 0)
	h1 := b.vertex(-0.5, 0.5, 0.5, inv, inv, 0, 1, 0)
	h2 := b.vertex(-0.5, 0.5, -0.5, inv, inv, 0, 1, 1)
	h3 := b.vertex(0.5, -0.5, -0.5, inv, inv, 0, 0, 1)
	b.quad(h0, h3, h2, h1)

	return b.geometry()
}

// buildPyramid4 returns a four-sided pyramid: square base at y=-0.5
// (extents ±0.5), apex at (0, 0.5, 0).
func buildPyramid4() geometry {
	b := &builder{}

	base := [4][3]float32{
		{-0.5, -0.5, 0.5},
		{0.5, -0.5, 0.5},
		{0.5, -0.5, -0.5},
		{-0.5, -0.5, -0.5},
	}
	apex := [3]float32{0, 0.5, 0}

	// Sides with face normals
	for i := 0; i < 4; i++ {
		p0 := base[i]
		p1 := base[(i+1)%4]

		// Face normal from the two edges
		e1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		e2 := [3]float32{apex[0] - p0[0], apex[1] - p0[1], apex[2] - p0[2]}
		nx := e1[1]*e2[2] - e1[2]*e2[1]
		ny := e1[2]*e2[0] - e1[0]*e2[2]
		nz := e1[0]*e2[1] - e1[1]*e2[0]
		nl := float32(math.Sqrt(float64(nx*nx + ny*ny + nz*nz)))
		nx, ny, nz = nx/nl, ny/nl, nz/nl

		a := b.vertex(p0[0], p0[1], p0[2], nx, ny, nz, 0, 0)
		c := b.vertex(p1[0], p1[1], p1[2], nx, ny, nz, 1, 0)
		d := b.vertex(apex[0], apex[1], apex[2], nx, ny, nz, 0.5, 1)
		b.tri(a, d, c)
	}

	// Base
	a := b.vertex(base[0][0], base[0][1], base[0][2], 0, -1, 0, 0, 0)
	c := b.vertex(base[1][0], base[1][1], base[1][2], 0, -1, 0, 1, 0)
	d := b.vertex(base[2][0], base[2][1], base[2][2], 0, -1, 0, 1, 1)
	e := b.vertex(base[3][0], base[3][1], base[3][2], 0, -1, 0, 0, 1)
	b.quad(a, c, d, e)

	return b.geometry()
}

// buildTorus returns a torus in the XZ plane centered at the origin.
func buildTorus(majorRadius, minorRadius float32, rings, sides int) geometry {
	b := &builder{}

	for i := 0; i <= rings; i++ {
		u := 2 * math.Pi * float64(i) / float64(rings)
		cu, su := cosSin(u)
		for j := 0; j <= sides; j++ {
			v := 2 * math.Pi * float64(j) / float64(sides)
			cv, sv := cosSin(v)

			x := (majorRadius + minorRadius*cv) * cu
			y := minorRadius * sv
			z := (majorRadius + minorRadius*cv) * su

			nx := cv * cu
			ny := sv
			nz := cv * su

			b.vertex(x, y, z, nx, ny, nz,
				float32(i)/float32(rings), float32(j)/float32(sides))
		}
	}

	cols := uint32(sides + 1)
	for i := 0; i < rings; i++ {
		for j := 0; j < sides; j++ {
			a := uint32(i)*cols + uint32(j)
			b.quad(a, a+cols, a+cols+1, a+1)
		}
	}

	return b.geometry()
}
