package models

import (
	"fmt"

	"github.com/taigrr/glyph3d/pkg/math3d"
)

// triangulate splits a polygon into triangles by ear clipping and returns
// the vertex indices of the resulting triangles, three per triangle.
// The polygon is assumed planar enough that the Z component of edge cross
// products decides convexity.
func triangulate(points []math3d.Vec3) ([]int, error) {
	n := len(points)
	if n < 3 {
		return nil, fmt.Errorf("triangulate: need at least 3 points, got %d", n)
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	result := make([]int, 0, (n-2)*3)

	for len(indices) > 3 {
		earFound := false

		for i := range indices {
			if !isEar(i, points, indices) {
				continue
			}

			prev := indices[(i+len(indices)-1)%len(indices)]
			curr := indices[i]
			next := indices[(i+1)%len(indices)]
			result = append(result, prev, curr, next)

			indices = append(indices[:i], indices[i+1:]...)
			earFound = true
			break
		}

		if !earFound {
			return nil, fmt.Errorf("triangulate: no valid ear in %d-gon", n)
		}
	}

	result = append(result, indices[0], indices[1], indices[2])
	return result, nil
}

// isEar reports whether the vertex at position i of the remaining index ring
// forms an ear: a convex corner with no other polygon point inside it.
func isEar(i int, points []math3d.Vec3, indices []int) bool {
	n := len(indices)
	prev := indices[(i+n-1)%n]
	curr := indices[i]
	next := indices[(i+1)%n]

	v1 := points[prev]
	v2 := points[curr]
	v3 := points[next]

	d1 := v2.Sub(v1)
	d2 := v3.Sub(v2)
	if d1.Cross(d2).Z <= 0 {
		return false // reflex corner
	}

	for j := range indices {
		if j == (i+n-1)%n || j == i || j == (i+1)%n {
			continue
		}
		if pointInTriangle(points[indices[j]], v1, v2, v3) {
			return false
		}
	}

	return true
}

// pointInTriangle reports whether pt lies inside (or on the edge of) the
// triangle v1 v2 v3, judged by the sign of the edge cross products.
func pointInTriangle(pt, v1, v2, v3 math3d.Vec3) bool {
	c1 := v2.Sub(v1).Cross(pt.Sub(v1)).Z
	c2 := v3.Sub(v2).Cross(pt.Sub(v2)).Z
	c3 := v1.Sub(v3).Cross(pt.Sub(v3)).Z

	return (c1 >= 0 && c2 >= 0 && c3 >= 0) || (c1 <= 0 && c2 <= 0 && c3 <= 0)
}
