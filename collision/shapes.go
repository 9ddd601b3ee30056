package collision

import "github.com/go-gl/mathgl/mgl32"

// boxFaces lists each face's outward normal with two tangents whose cross
// product equals that normal, so the generated triangles wind outward.
var boxFaces = [6][3]mgl32.Vec3{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}},
}

func mulComponents(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

// Box returns the 12 outward-facing triangles of an axis-aligned box.
func Box(center, halfExtents mgl32.Vec3) []Triangle {
	tris := make([]Triangle, 0, 12)
	for _, f := range boxFaces {
		n := mulComponents(f[0], halfExtents)
		u := mulComponents(f[1], halfExtents)
		v := mulComponents(f[2], halfExtents)
		tris = append(tris, Quad(center.Add(n), u, v)...)
	}
	return tris
}

// Quad returns two triangles spanning center +/- u +/- v, facing along u x v.
func Quad(center, u, v mgl32.Vec3) []Triangle {
	p0 := center.Sub(u).Sub(v)
	p1 := center.Add(u).Sub(v)
	p2 := center.Add(u).Add(v)
	p3 := center.Sub(u).Add(v)
	return []Triangle{
		{A: p0, B: p1, C: p2},
		{A: p0, B: p2, C: p3},
	}
}
