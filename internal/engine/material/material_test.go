package material

import (
	"testing"

	"github.com/Faultbox/candlelight/pkg/math"
)

func TestLookupKnownTags(t *testing.T) {
	table := NewTable()

	tests := []struct {
		tag       string
		diffuse   math.Vec3
		shininess float32
	}{
		{"metal", math.Vec3{X: 0.7, Y: 0.68, Z: 0.6}, 64},
		{"wood", math.Vec3{X: 0.45, Y: 0.3, Z: 0.15}, 8},
		{"candle", math.Vec3{X: 0.95, Y: 0.92, Z: 0.85}, 12},
		{"flame", math.Vec3{X: 1.0, Y: 0.7, Z: 0.25}, 16},
		{"cement", math.Vec3{X: 0.6, Y: 0.6, Z: 0.6}, 16},
	}

	for _, tt := range tests {
		m := table.Lookup(tt.tag)
		if m.DiffuseColor != tt.diffuse {
			t.Errorf("Lookup(%q).DiffuseColor = %v, want %v", tt.tag, m.DiffuseColor, tt.diffuse)
		}
		if m.Shininess != tt.shininess {
			t.Errorf("Lookup(%q).Shininess = %v, want %v", tt.tag, m.Shininess, tt.shininess)
		}
	}
}

func TestLookupFallback(t *testing.T) {
	table := NewTable()

	m := table.Lookup("nonexistent-tag")

	if m.DiffuseColor != (math.Vec3{X: 0.8, Y: 0.8, Z: 0.8}) {
		t.Errorf("fallback diffuse = %v, want (0.8, 0.8, 0.8)", m.DiffuseColor)
	}
	if m.SpecularColor != (math.Vec3{X: 0.2, Y: 0.2, Z: 0.2}) {
		t.Errorf("fallback specular = %v, want (0.2, 0.2, 0.2)", m.SpecularColor)
	}
	if m.Shininess != 8 {
		t.Errorf("fallback shininess = %v, want 8", m.Shininess)
	}
}

func TestLookupEmptyTag(t *testing.T) {
	table := NewTable()

	m := table.Lookup("")
	if m.Shininess != 8 {
		t.Errorf("empty tag should return the fallback, got shininess %v", m.Shininess)
	}
}
