package collision

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line. Dir does not need to be normalized, but hit distances are
// expressed in multiples of it.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// IntersectTriangle returns the ray parameter of the hit with t, from either side
// (Moller-Trumbore).
func (r Ray) IntersectTriangle(t Triangle) (float32, bool) {
	e1 := t.B.Sub(t.A)
	e2 := t.C.Sub(t.A)
	p := r.Dir.Cross(e2)
	det := e1.Dot(p)
	if math32.Abs(det) < epsilon {
		return 0, false
	}
	inv := 1 / det

	s := r.Origin.Sub(t.A)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := r.Dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	dist := e2.Dot(q) * inv
	if dist < 0 {
		return 0, false
	}
	return dist, true
}

// IntersectAABB returns the entry parameter of the ray into b (0 when the origin
// is inside).
func (r Ray) IntersectAABB(b AABB) (float32, bool) {
	tMin := float32(0)
	tMax := math32.Inf(1)
	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin[axis], r.Dir[axis]
		if math32.Abs(d) < epsilon {
			if o < b.Min[axis] || o > b.Max[axis] {
				return 0, false
			}
			continue
		}
		inv := 1 / d
		t0 := (b.Min[axis] - o) * inv
		t1 := (b.Max[axis] - o) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tMin = math32.Max(tMin, t0)
		tMax = math32.Min(tMax, t1)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// Mesh is a small triangle set with cached bounds, used for pick targets where a
// hierarchy would cost more than it saves.
type Mesh struct {
	Triangles []Triangle
	bounds    AABB
}

func NewMesh(tris []Triangle) Mesh {
	b := EmptyAABB()
	for _, t := range tris {
		b = b.Union(t.Bounds())
	}
	return Mesh{Triangles: tris, bounds: b}
}

func (m Mesh) Bounds() AABB { return m.bounds }

// Raycast returns the nearest hit parameter along r.
func (m Mesh) Raycast(r Ray) (float32, bool) {
	if len(m.Triangles) == 0 {
		return 0, false
	}
	if _, ok := r.IntersectAABB(m.bounds); !ok {
		return 0, false
	}
	best := math32.Inf(1)
	hit := false
	for _, t := range m.Triangles {
		if d, ok := r.IntersectTriangle(t); ok && d < best {
			best = d
			hit = true
		}
	}
	return best, hit
}
