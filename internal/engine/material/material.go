// Package material defines the small fixed palette of surface materials used
// by the still-life scene.
package material

import "github.com/Faultbox/candlelight/pkg/math"

// Material holds the lighting coefficients for one surface type.
type Material struct {
	Tag           string
	DiffuseColor  math.Vec3
	SpecularColor math.Vec3
	Shininess     float32
}

// defaultMaterial is returned for unknown tags. Lookup never fails.
var defaultMaterial = Material{
	DiffuseColor:  math.Vec3{X: 0.8, Y: 0.8, Z: 0.8},
	SpecularColor: math.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
	Shininess:     8.0,
}

// Table maps material tags to materials.
type Table struct {
	materials []Material
}

// NewTable returns a table populated with the scene palette.
func NewTable() *Table {
	t := &Table{}
	t.defineDefaults()
	return t
}

// defineDefaults populates the fixed palette. Static configuration,
// not computed.
func (t *Table) defineDefaults() {
	t.materials = []Material{
		{
			Tag:           "metal",
			DiffuseColor:  math.Vec3{X: 0.7, Y: 0.68, Z: 0.6},
			SpecularColor: math.Vec3{X: 0.95, Y: 0.92, Z: 0.85},
			Shininess:     64.0,
		},
		{
			Tag:           "wood",
			DiffuseColor:  math.Vec3{X: 0.45, Y: 0.3, Z: 0.15},
			SpecularColor: math.Vec3{X: 0.05, Y: 0.05, Z: 0.05},
			Shininess:     8.0,
		},
		{
			Tag:           "candle",
			DiffuseColor:  math.Vec3{X: 0.95, Y: 0.92, Z: 0.85},
			SpecularColor: math.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
			Shininess:     12.0,
		},
		{
			Tag:           "flame",
			DiffuseColor:  math.Vec3{X: 1.0, Y: 0.7, Z: 0.25},
			SpecularColor: math.Vec3{X: 0.9, Y: 0.6, Z: 0.2},
			Shininess:     16.0,
		},
		{
			Tag:           "cement",
			DiffuseColor:  math.Vec3{X: 0.6, Y: 0.6, Z: 0.6},
			SpecularColor: math.Vec3{X: 0.3, Y: 0.3, Z: 0.3},
			Shininess:     16.0,
		},
	}
}

// Lookup returns the material registered under tag, or the default material
// if the tag is unknown.
func (t *Table) Lookup(tag string) Material {
	for _, m := range t.materials {
		if m.Tag == tag {
			return m
		}
	}
	return defaultMaterial
}
