// Package physics provides the geometry kernel used for collision detection:
// local-to-world point transforms and point-in-triangle tests.
package physics

import "github.com/go-gl/mathgl/mgl64"

// Vec2 is a 2D vector in arena units.
type Vec2 = mgl64.Vec2

// Triangle is three vertices in world space.
type Triangle [3]Vec2

// TransformPoint maps a local-space point into world space.
// The rotation is clockwise for positive angles (screen convention), and the
// order is rotate, then scale, then translate. This must match the order the
// renderer applies to the same shape or bounds drift from what is drawn.
func TransformPoint(local, translation Vec2, scale, rotationDeg float64) Vec2 {
	rot := mgl64.Rotate2D(-mgl64.DegToRad(rotationDeg))
	return rot.Mul2x1(local).Mul(scale).Add(translation)
}

// TransformTriangle applies TransformPoint to each vertex of a local triangle.
func TransformTriangle(local Triangle, translation Vec2, scale, rotationDeg float64) Triangle {
	var out Triangle
	for i, v := range local {
		out[i] = TransformPoint(v, translation, scale, rotationDeg)
	}
	return out
}

// PointInTriangle reports whether p lies inside t using barycentric coordinates.
//
// The edge convention is asymmetric: points on the A–C and A–B edges count as
// inside, points on the B–C edge do not. Degenerate (zero-area) triangles
// divide by zero and must not be passed in.
func PointInTriangle(p Vec2, t Triangle) bool {
	v0 := t[2].Sub(t[0])
	v1 := t[1].Sub(t[0])
	v2 := p.Sub(t[0])

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d02 := v0.Dot(v2)
	d11 := v1.Dot(v1)
	d12 := v1.Dot(v2)

	denom := d00*d11 - d01*d01
	a := (d11*d02 - d01*d12) / denom
	b := (d00*d12 - d01*d02) / denom

	return a >= 0 && b >= 0 && a+b < 1
}

// AnyPointInTriangles reports whether any of points lies in any of tris.
func AnyPointInTriangles(points []Vec2, tris []Triangle) bool {
	for _, p := range points {
		for _, t := range tris {
			if PointInTriangle(p, t) {
				return true
			}
		}
	}
	return false
}

// Area returns the unsigned area of t.
func (t Triangle) Area() float64 {
	ab := t[1].Sub(t[0])
	ac := t[2].Sub(t[0])
	cross := ab.X()*ac.Y() - ab.Y()*ac.X()
	if cross < 0 {
		cross = -cross
	}
	return cross / 2
}

// Centroid returns the average of the three vertices.
func (t Triangle) Centroid() Vec2 {
	return t[0].Add(t[1]).Add(t[2]).Mul(1.0 / 3.0)
}
