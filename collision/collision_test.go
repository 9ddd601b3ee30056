package collision

import (
	"sort"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floorIndex() *Index {
	// Top face at y=0.
	return NewIndex(Box(mgl32.Vec3{0, -0.5, 0}, mgl32.Vec3{50, 0.5, 50}))
}

func assertVecInDelta(t *testing.T, expected, actual mgl32.Vec3, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, expected[i], actual[i], delta, "component %d of %v", i, actual)
	}
}

func TestBox_NormalsPointOutward(t *testing.T) {
	center := mgl32.Vec3{1, 2, 3}
	tris := Box(center, mgl32.Vec3{1, 0.5, 2})
	require.Len(t, tris, 12)

	for i, tri := range tris {
		n := tri.Normal()
		assert.InDelta(t, 1.0, n.Len(), 1e-5, "triangle %d normal not unit", i)
		assert.Greater(t, n.Dot(tri.Centroid().Sub(center)), float32(0), "triangle %d faces inward", i)
	}
}

func TestCapsule_TranslateIsRigid(t *testing.T) {
	c := NewCapsule(mgl32.Vec3{0, 1, 0}, 0.35, 1)
	offset := c.End.Sub(c.Start)
	assertVecInDelta(t, mgl32.Vec3{0, 0.65, 0}, offset, 1e-6)

	moves := []mgl32.Vec3{{1, 2, 3}, {-0.03, 0.39, 0}, {0, -100, 7.5}, {1e-3, 1e-3, -1e-3}}
	for _, m := range moves {
		c.Translate(m)
		assertVecInDelta(t, offset, c.End.Sub(c.Start), 1e-4)
	}
	assert.Equal(t, float32(0.35), c.Radius)
}

func TestIntersectTriangle_FaceContact(t *testing.T) {
	tris := Quad(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0})
	c := NewCapsule(mgl32.Vec3{0.3, -0.1, -0.4}, 0.35, 1)

	contact, ok := IntersectTriangle(c, tris[1])
	require.True(t, ok)
	assertVecInDelta(t, mgl32.Vec3{0, 1, 0}, contact.Normal, 1e-5)
	assert.InDelta(t, 0.1, contact.Depth, 1e-5)
}

func TestIntersectTriangle_Separated(t *testing.T) {
	tris := Quad(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0})

	above := NewCapsule(mgl32.Vec3{0, 0.5, 0}, 0.35, 1)
	for _, tri := range tris {
		_, ok := IntersectTriangle(above, tri)
		assert.False(t, ok)
	}

	beside := NewCapsule(mgl32.Vec3{3, -0.2, 0}, 0.35, 1)
	for _, tri := range tris {
		_, ok := IntersectTriangle(beside, tri)
		assert.False(t, ok)
	}
}

func TestIntersectTriangle_EdgeContact(t *testing.T) {
	tris := Quad(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0})
	c := NewCapsule(mgl32.Vec3{1.2, -0.5, 0}, 0.35, 1)

	ix := NewIndex(tris)
	contact, ok := ix.IntersectCapsule(c)
	require.True(t, ok)
	assertVecInDelta(t, mgl32.Vec3{1, 0, 0}, contact.Normal, 1e-5)
	assert.InDelta(t, 0.15, contact.Depth, 1e-5)
}

func TestIndex_FloorContact(t *testing.T) {
	ix := floorIndex()
	c := NewCapsule(mgl32.Vec3{5, -0.1, -20}, 0.35, 1)

	contact, ok := ix.IntersectCapsule(c)
	require.True(t, ok)
	assertVecInDelta(t, mgl32.Vec3{0, 1, 0}, contact.Normal, 1e-4)
	assert.InDelta(t, 0.1, contact.Depth, 1e-4)

	c.Translate(contact.Normal.Mul(contact.Depth))
	assert.InDelta(t, 0.35, c.Start.Y(), 1e-4)
}

func TestIndex_NoContactInAir(t *testing.T) {
	ix := floorIndex()
	_, ok := ix.IntersectCapsule(NewCapsule(mgl32.Vec3{0, 3, 0}, 0.35, 1))
	assert.False(t, ok)
}

func TestIndex_WallContact(t *testing.T) {
	ix := NewIndex(Box(mgl32.Vec3{1.5, 1, 0}, mgl32.Vec3{0.5, 1, 2}))
	c := NewCapsule(mgl32.Vec3{0.8, 0.5, 0}, 0.35, 1)

	contact, ok := ix.IntersectCapsule(c)
	require.True(t, ok)
	assertVecInDelta(t, mgl32.Vec3{-1, 0, 0}, contact.Normal, 1e-4)
	assert.InDelta(t, 0.15, contact.Depth, 1e-4)
}

func TestIndex_CornerResolvesToNetPush(t *testing.T) {
	// Floor triangles come first, so the floor lifts the capsule before the wall pushes it back.
	tris := append(Box(mgl32.Vec3{0, -0.5, 0}, mgl32.Vec3{50, 0.5, 50}),
		Box(mgl32.Vec3{1.5, 1, 0}, mgl32.Vec3{0.5, 1, 2})...)
	ix := NewIndex(tris)
	c := NewCapsule(mgl32.Vec3{0.8, -0.1, 0}, 0.35, 1)

	contact, ok := ix.IntersectCapsule(c)
	require.True(t, ok)

	// Lifted 0.1 off the floor and pushed 0.15 away from the wall face at x=1.
	push := mgl32.Vec3{-0.15, 0.1, 0}
	assert.InDelta(t, push.Len(), contact.Depth, 1e-4)
	assertVecInDelta(t, push.Normalize(), contact.Normal, 1e-4)
	assert.Greater(t, contact.Normal.Y(), float32(0), "a corner with the floor still counts as standing")

	again, ok := ix.IntersectCapsule(c)
	require.True(t, ok)
	assert.Equal(t, contact, again, "queries do not mutate the index or the capsule")

	c.Translate(contact.Normal.Mul(contact.Depth))
	_, ok = ix.IntersectCapsule(c)
	assert.False(t, ok, "the net push clears every surface")
}

func TestIndex_CancellingContactsReportNothing(t *testing.T) {
	// Two facing walls: the left one pushes the capsule 0.25 to the right, straight
	// into the right one, which pushes it back by the same amount.
	left := Quad(mgl32.Vec3{-0.25, 1, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1})
	right := Quad(mgl32.Vec3{0.5, 1, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0})
	require.Equal(t, mgl32.Vec3{1, 0, 0}, left[0].Normal())
	require.Equal(t, mgl32.Vec3{-1, 0, 0}, right[0].Normal())

	ix := NewIndex(append(left, right...))
	c := NewCapsule(mgl32.Vec3{}, 0.5, 2)

	contact, ok := IntersectTriangle(c, left[0])
	if !ok {
		contact, ok = IntersectTriangle(c, left[1])
	}
	require.True(t, ok, "the capsule does overlap the left wall")
	assert.InDelta(t, 0.25, contact.Depth, 1e-5)

	_, ok = ix.IntersectCapsule(c)
	assert.False(t, ok)
}

func TestIndex_EmptyIndex(t *testing.T) {
	ix := NewIndex(nil)
	assert.Equal(t, 0, ix.Len())
	assert.True(t, ix.Bounds().IsEmpty())
	_, ok := ix.IntersectCapsule(NewCapsule(mgl32.Vec3{}, 0.35, 1))
	assert.False(t, ok)
}

func TestIndex_QueryMatchesLinearScan(t *testing.T) {
	var tris []Triangle
	for x := -5; x < 5; x++ {
		for z := -5; z < 5; z++ {
			center := mgl32.Vec3{float32(x) + 0.5, float32(x*z) * 0.05, float32(z) + 0.5}
			tris = append(tris, Quad(center, mgl32.Vec3{0, 0, 0.5}, mgl32.Vec3{0.5, 0, 0})...)
		}
	}
	ix := NewIndex(tris)
	require.Equal(t, len(tris), ix.Len())

	boxes := []AABB{
		{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}},
		{Min: mgl32.Vec3{2.2, -3, -4.9}, Max: mgl32.Vec3{4.1, 3, -2}},
		{Min: mgl32.Vec3{-10, -10, -10}, Max: mgl32.Vec3{10, 10, 10}},
		{Min: mgl32.Vec3{20, 0, 0}, Max: mgl32.Vec3{21, 1, 1}},
	}
	for _, box := range boxes {
		var expected []int
		for i, tri := range tris {
			if tri.Bounds().Overlaps(box) {
				expected = append(expected, i)
			}
		}
		sort.Ints(expected)

		got := ix.Query(box, nil)
		assert.Equal(t, expected, got, "box %v", box)
	}
}

func TestClosestSegmentPoints(t *testing.T) {
	p, q := closestSegmentPoints(
		mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{1, 0, 0},
		mgl32.Vec3{0, 1, -1}, mgl32.Vec3{0, 1, 1},
	)
	assertVecInDelta(t, mgl32.Vec3{0, 0, 0}, p, 1e-6)
	assertVecInDelta(t, mgl32.Vec3{0, 1, 0}, q, 1e-6)

	// Parallel segments.
	p, q = closestSegmentPoints(
		mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0},
		mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 1, 0},
	)
	assert.InDelta(t, 1.0, p.Sub(q).Len(), 1e-6)

	// Degenerate first segment.
	p, q = closestSegmentPoints(
		mgl32.Vec3{0, 2, 0}, mgl32.Vec3{0, 2, 0},
		mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{1, 0, 0},
	)
	assertVecInDelta(t, mgl32.Vec3{0, 2, 0}, p, 1e-6)
	assertVecInDelta(t, mgl32.Vec3{0, 0, 0}, q, 1e-6)
}

func TestRay_Triangle(t *testing.T) {
	tris := Quad(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0})
	down := Ray{Origin: mgl32.Vec3{0.2, 5, 0.3}, Dir: mgl32.Vec3{0, -1, 0}}

	mesh := NewMesh(tris)
	d, ok := mesh.Raycast(down)
	require.True(t, ok)
	assert.InDelta(t, 5.0, d, 1e-5)
	assertVecInDelta(t, mgl32.Vec3{0.2, 0, 0.3}, down.At(d), 1e-5)

	// Hits from below too.
	up := Ray{Origin: mgl32.Vec3{0.2, -2, 0.3}, Dir: mgl32.Vec3{0, 1, 0}}
	d, ok = mesh.Raycast(up)
	require.True(t, ok)
	assert.InDelta(t, 2.0, d, 1e-5)

	miss := Ray{Origin: mgl32.Vec3{4, 5, 0}, Dir: mgl32.Vec3{0, -1, 0}}
	_, ok = mesh.Raycast(miss)
	assert.False(t, ok)

	away := Ray{Origin: mgl32.Vec3{0, 5, 0}, Dir: mgl32.Vec3{0, 1, 0}}
	_, ok = mesh.Raycast(away)
	assert.False(t, ok)
}

func TestRay_AABB(t *testing.T) {
	box := AABB{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}

	d, ok := Ray{Origin: mgl32.Vec3{-5, 0, 0}, Dir: mgl32.Vec3{1, 0, 0}}.IntersectAABB(box)
	require.True(t, ok)
	assert.InDelta(t, 4.0, d, 1e-6)

	d, ok = Ray{Origin: mgl32.Vec3{0, 0, 0}, Dir: mgl32.Vec3{0, 0, 1}}.IntersectAABB(box)
	require.True(t, ok)
	assert.Equal(t, float32(0), d)

	_, ok = Ray{Origin: mgl32.Vec3{-5, 3, 0}, Dir: mgl32.Vec3{1, 0, 0}}.IntersectAABB(box)
	assert.False(t, ok)
}
