package render

import "github.com/taigrr/glyph3d/pkg/math3d"

// flatEps guards divisions by near-zero spans when interpolating along an
// edge or a face plane.
const flatEps = 1e-7

// Projection is one triangle after the camera transform and screen mapping:
// X and Y are logical screen coordinates, Z is the normalized depth. Char
// and Material are the shading results carried along so the buffer can
// composite without touching the mesh.
type Projection struct {
	P1, P2, P3 math3d.Vec3
	Char       rune
	Material   int
}

// SortX orders the vertices by ascending X so that P1 and P3 bound the
// horizontal span. The scan fill in Buffer.DrawProjection relies on this.
func (p *Projection) SortX() {
	if p.P2.X < p.P1.X {
		p.P1, p.P2 = p.P2, p.P1
	}
	if p.P3.X < p.P2.X {
		p.P2, p.P3 = p.P3, p.P2
	}
	if p.P2.X < p.P1.X {
		p.P1, p.P2 = p.P2, p.P1
	}
}

// LimitY1 returns the Y of the broken boundary (P1→P2, then P2→P3) at the
// vertical line x. Requires SortX.
func (p *Projection) LimitY1(x float64) float64 {
	if x < p.P2.X {
		return lerpY(p.P1, p.P2, x)
	}
	return lerpY(p.P2, p.P3, x)
}

// LimitY2 returns the Y of the long boundary (P1→P3) at the vertical line x.
// Requires SortX.
func (p *Projection) LimitY2(x float64) float64 {
	return lerpY(p.P1, p.P3, x)
}

// Normal returns the (unnormalized) plane normal of the projected triangle.
// Only its direction matters for depth interpolation, so the magnitude is
// left alone.
func (p *Projection) Normal() math3d.Vec3 {
	return p.P2.Sub(p.P1).Cross(p.P3.Sub(p.P1))
}

// DepthAt solves the plane equation for the depth at screen point (x, y).
// A face seen edge-on has no usable plane; P1's depth stands in for it.
func (p *Projection) DepthAt(n math3d.Vec3, x, y float64) float64 {
	if n.Z < flatEps && n.Z > -flatEps {
		return p.P1.Z
	}
	return p.P1.Z - (n.X*(x-p.P1.X)+n.Y*(y-p.P1.Y))/n.Z
}

// lerpY interpolates the Y of edge a→b at the vertical line x. A vertical
// edge degenerates to a's Y.
func lerpY(a, b math3d.Vec3, x float64) float64 {
	dx := b.X - a.X
	if dx < flatEps && dx > -flatEps {
		return a.Y
	}
	return a.Y + (b.Y-a.Y)*(x-a.X)/dx
}
