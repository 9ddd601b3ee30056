package collision

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Capsule is a swept sphere around the segment Start-End. The character keeps it
// vertical: End sits directly above Start.
type Capsule struct {
	Start  mgl32.Vec3
	End    mgl32.Vec3
	Radius float32
}

// NewCapsule builds a vertical capsule standing on base. The lower hemisphere
// touches base; End is height above it.
func NewCapsule(base mgl32.Vec3, radius, height float32) Capsule {
	return Capsule{
		Start:  base.Add(mgl32.Vec3{0, radius, 0}),
		End:    base.Add(mgl32.Vec3{0, height, 0}),
		Radius: radius,
	}
}

// Translate moves both endpoints rigidly.
func (c *Capsule) Translate(v mgl32.Vec3) {
	c.Start = c.Start.Add(v)
	c.End = c.End.Add(v)
}

func (c Capsule) Center() mgl32.Vec3 {
	return c.Start.Add(c.End).Mul(0.5)
}

func (c Capsule) Bounds() AABB {
	r := mgl32.Vec3{c.Radius, c.Radius, c.Radius}
	b := EmptyAABB().Extend(c.Start).Extend(c.End)
	return AABB{Min: b.Min.Sub(r), Max: b.Max.Add(r)}
}

// Contact is a minimal translation resolving a penetration: moving the capsule by
// Normal*Depth separates it from the geometry.
type Contact struct {
	Normal mgl32.Vec3
	Depth  float32
}

// IntersectTriangle tests the capsule against a single triangle. The face test
// is tried first; when the segment's closest plane point falls outside the
// triangle the three edges are tested against the capsule core.
func IntersectTriangle(c Capsule, t Triangle) (Contact, bool) {
	n := t.Normal()
	if n == (mgl32.Vec3{}) {
		return Contact{}, false
	}

	d1 := t.signedDistance(n, c.Start) - c.Radius
	d2 := t.signedDistance(n, c.End) - c.Radius
	if (d1 > 0 && d2 > 0) || (d1 < -c.Radius && d2 < -c.Radius) {
		return Contact{}, false
	}

	var delta float32
	if sum := math32.Abs(d1) + math32.Abs(d2); sum > 0 {
		delta = math32.Abs(d1 / sum)
	}
	p := c.Start.Add(c.End.Sub(c.Start).Mul(delta))
	if t.ContainsPoint(p) {
		return Contact{Normal: n, Depth: math32.Abs(math32.Min(d1, d2))}, true
	}

	r2 := c.Radius * c.Radius
	edges := [3][2]mgl32.Vec3{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
	for _, e := range edges {
		p1, p2 := closestSegmentPoints(c.Start, c.End, e[0], e[1])
		sep := p1.Sub(p2)
		distSq := sep.LenSqr()
		if distSq >= r2 {
			continue
		}
		dist := math32.Sqrt(distSq)
		if dist < epsilon {
			// Core segment touches the edge; fall back to the face normal.
			return Contact{Normal: n, Depth: c.Radius}, true
		}
		return Contact{Normal: sep.Mul(1 / dist), Depth: c.Radius - dist}, true
	}
	return Contact{}, false
}
