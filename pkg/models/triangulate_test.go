package models

import (
	"testing"

	"github.com/taigrr/glyph3d/pkg/math3d"
)

func TestTriangulateQuad(t *testing.T) {
	quad := []math3d.Vec3{
		math3d.V3(0, 0, 0),
		math3d.V3(1, 0, 0),
		math3d.V3(1, 1, 0),
		math3d.V3(0, 1, 0),
	}

	tris, err := triangulate(quad)
	if err != nil {
		t.Fatalf("triangulate: %v", err)
	}
	if len(tris) != 6 {
		t.Fatalf("quad should yield 2 triangles (6 indices), got %d", len(tris))
	}
	for _, idx := range tris {
		if idx < 0 || idx >= len(quad) {
			t.Errorf("index %d out of range", idx)
		}
	}
}

func TestTriangulateConvexPolygon(t *testing.T) {
	// Regular-ish hexagon: n-2 triangles
	hex := []math3d.Vec3{
		math3d.V3(1, 0, 0),
		math3d.V3(0.5, 0.87, 0),
		math3d.V3(-0.5, 0.87, 0),
		math3d.V3(-1, 0, 0),
		math3d.V3(-0.5, -0.87, 0),
		math3d.V3(0.5, -0.87, 0),
	}

	tris, err := triangulate(hex)
	if err != nil {
		t.Fatalf("triangulate: %v", err)
	}
	if got := len(tris) / 3; got != 4 {
		t.Errorf("hexagon should yield 4 triangles, got %d", got)
	}
}

func TestTriangulateConcavePolygon(t *testing.T) {
	// Arrowhead: vertex 3 is a reflex corner
	arrow := []math3d.Vec3{
		math3d.V3(0, 0, 0),
		math3d.V3(2, 0, 0),
		math3d.V3(2, 2, 0),
		math3d.V3(1, 0.5, 0),
		math3d.V3(0, 2, 0),
	}

	tris, err := triangulate(arrow)
	if err != nil {
		t.Fatalf("triangulate: %v", err)
	}
	if got := len(tris) / 3; got != 3 {
		t.Errorf("5-gon should yield 3 triangles, got %d", got)
	}
}

func TestTriangulateTooFewPoints(t *testing.T) {
	if _, err := triangulate([]math3d.Vec3{math3d.V3(0, 0, 0), math3d.V3(1, 0, 0)}); err == nil {
		t.Error("triangulating 2 points should fail")
	}
}

func TestTriangulateTriangle(t *testing.T) {
	tri := []math3d.Vec3{
		math3d.V3(0, 0, 0),
		math3d.V3(1, 0, 0),
		math3d.V3(0, 1, 0),
	}

	tris, err := triangulate(tri)
	if err != nil {
		t.Fatalf("triangulate: %v", err)
	}
	if len(tris) != 3 {
		t.Errorf("triangle should pass through unchanged, got %d indices", len(tris))
	}
}
