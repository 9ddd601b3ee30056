package collision

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-6

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// EmptyAABB returns an inverted box that any Extend call will overwrite.
func EmptyAABB() AABB {
	inf := math32.Inf(1)
	return AABB{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

func (b AABB) Extend(p mgl32.Vec3) AABB {
	return AABB{
		Min: mgl32.Vec3{math32.Min(b.Min.X(), p.X()), math32.Min(b.Min.Y(), p.Y()), math32.Min(b.Min.Z(), p.Z())},
		Max: mgl32.Vec3{math32.Max(b.Max.X(), p.X()), math32.Max(b.Max.Y(), p.Y()), math32.Max(b.Max.Z(), p.Z())},
	}
}

func (b AABB) Union(o AABB) AABB {
	return b.Extend(o.Min).Extend(o.Max)
}

func (b AABB) Overlaps(o AABB) bool {
	return b.Min.X() <= o.Max.X() && b.Max.X() >= o.Min.X() &&
		b.Min.Y() <= o.Max.Y() && b.Max.Y() >= o.Min.Y() &&
		b.Min.Z() <= o.Max.Z() && b.Max.Z() >= o.Min.Z()
}

func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b AABB) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// IsEmpty reports whether nothing was ever added to the box.
func (b AABB) IsEmpty() bool {
	return b.Min.X() > b.Max.X() || b.Min.Y() > b.Max.Y() || b.Min.Z() > b.Max.Z()
}

// Triangle is a world-space triangle. Winding is counter-clockwise when viewed
// from the side its normal points to.
type Triangle struct {
	A, B, C mgl32.Vec3
}

// Normal returns the unit face normal, or the zero vector for degenerate triangles.
func (t Triangle) Normal() mgl32.Vec3 {
	n := t.B.Sub(t.A).Cross(t.C.Sub(t.A))
	if n.LenSqr() < epsilon*epsilon {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}

func (t Triangle) Bounds() AABB {
	return EmptyAABB().Extend(t.A).Extend(t.B).Extend(t.C)
}

func (t Triangle) Centroid() mgl32.Vec3 {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3.0)
}

func (t Triangle) Translate(v mgl32.Vec3) Triangle {
	return Triangle{A: t.A.Add(v), B: t.B.Add(v), C: t.C.Add(v)}
}

// ContainsPoint reports whether p, projected onto the triangle's plane, falls
// inside the triangle (edges included).
func (t Triangle) ContainsPoint(p mgl32.Vec3) bool {
	v0 := t.C.Sub(t.A)
	v1 := t.B.Sub(t.A)
	v2 := p.Sub(t.A)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return false
	}
	inv := 1 / denom
	u := (dot11*dot02 - dot01*dot12) * inv
	v := (dot00*dot12 - dot01*dot02) * inv
	return u >= 0 && v >= 0 && u+v <= 1
}

// signedDistance returns the distance from p to the triangle's plane, positive on
// the normal side.
func (t Triangle) signedDistance(n, p mgl32.Vec3) float32 {
	return n.Dot(p) - n.Dot(t.A)
}

// closestSegmentPoints returns the closest pair of points between segments
// p1-q1 and p2-q2.
func closestSegmentPoints(p1, q1, p2, q2 mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)
	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	var s, t float32
	switch {
	case a <= epsilon && e <= epsilon:
		return p1, p2
	case a <= epsilon:
		t = mgl32.Clamp(f/e, 0, 1)
	default:
		c := d1.Dot(r)
		if e <= epsilon {
			s = mgl32.Clamp(-c/a, 0, 1)
			break
		}
		b := d1.Dot(d2)
		if denom := a*e - b*b; denom != 0 {
			s = mgl32.Clamp((b*f-c*e)/denom, 0, 1)
		}
		t = (b*s + f) / e
		if t < 0 {
			t = 0
			s = mgl32.Clamp(-c/a, 0, 1)
		} else if t > 1 {
			t = 1
			s = mgl32.Clamp((b-c)/a, 0, 1)
		}
	}
	return p1.Add(d1.Mul(s)), p2.Add(d2.Mul(t))
}
