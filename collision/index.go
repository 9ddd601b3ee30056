package collision

import (
	"slices"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// maxLeafTriangles bounds the triangle count of a BVH leaf.
const maxLeafTriangles = 4

type bvhNode struct {
	bounds AABB
	left   int32
	right  int32
	first  int32 // leaf range into Index.order
	count  int32
}

func (n *bvhNode) isLeaf() bool { return n.count > 0 }

type bvhItem struct {
	bounds   AABB
	centroid mgl32.Vec3
	index    int32
}

// Index is a static bounding volume hierarchy over level triangles. It is built
// once and never mutated, so concurrent readers need no locking.
type Index struct {
	triangles []Triangle
	order     []int32
	nodes     []bvhNode
}

// NewIndex copies tris and builds the hierarchy.
func NewIndex(tris []Triangle) *Index {
	ix := &Index{triangles: slices.Clone(tris)}
	if len(tris) == 0 {
		return ix
	}

	items := make([]bvhItem, len(tris))
	for i, t := range tris {
		items[i] = bvhItem{bounds: t.Bounds(), centroid: t.Centroid(), index: int32(i)}
	}
	ix.order = make([]int32, 0, len(tris))
	ix.nodes = make([]bvhNode, 0, 2*len(tris)/maxLeafTriangles+1)
	ix.build(items)
	return ix
}

func (ix *Index) build(items []bvhItem) int32 {
	idx := int32(len(ix.nodes))
	ix.nodes = append(ix.nodes, bvhNode{left: -1, right: -1})

	bounds := EmptyAABB()
	for _, it := range items {
		bounds = bounds.Union(it.bounds)
	}
	ix.nodes[idx].bounds = bounds

	if len(items) <= maxLeafTriangles {
		ix.nodes[idx].first = int32(len(ix.order))
		ix.nodes[idx].count = int32(len(items))
		for _, it := range items {
			ix.order = append(ix.order, it.index)
		}
		return idx
	}

	// Median split along the longest axis.
	extent := bounds.Size()
	axis := 0
	if extent.Y() > extent.X() {
		axis = 1
	}
	if extent.Z() > extent[axis] {
		axis = 2
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].centroid[axis] < items[j].centroid[axis]
	})

	mid := len(items) / 2
	left := ix.build(items[:mid])
	right := ix.build(items[mid:])
	ix.nodes[idx].left = left
	ix.nodes[idx].right = right
	return idx
}

// Len returns the number of indexed triangles.
func (ix *Index) Len() int { return len(ix.triangles) }

// Triangle returns the i-th triangle in insertion order.
func (ix *Index) Triangle(i int) Triangle { return ix.triangles[i] }

// Bounds returns the box around all indexed geometry.
func (ix *Index) Bounds() AABB {
	if len(ix.nodes) == 0 {
		return EmptyAABB()
	}
	return ix.nodes[0].bounds
}

// Query appends to dst the indices of triangles whose bounds overlap box, in
// ascending order.
func (ix *Index) Query(box AABB, dst []int) []int {
	if len(ix.nodes) == 0 {
		return dst
	}
	start := len(dst)

	var stack [64]int32
	sp := 0
	stack[sp] = 0
	sp++
	for sp > 0 {
		sp--
		node := &ix.nodes[stack[sp]]
		if !node.bounds.Overlaps(box) {
			continue
		}
		if node.isLeaf() {
			for _, ti := range ix.order[node.first : node.first+node.count] {
				if ix.triangles[ti].Bounds().Overlaps(box) {
					dst = append(dst, int(ti))
				}
			}
			continue
		}
		stack[sp] = node.left
		sp++
		stack[sp] = node.right
		sp++
	}

	slices.Sort(dst[start:])
	return dst
}

// IntersectCapsule reports how to push c out of the indexed geometry.
//
// Every candidate triangle is resolved in ascending index order against a working
// copy of the capsule, each contact pushing the copy out along its own normal.
// The returned contact is the net displacement of that copy. Contacts that cancel
// out, or only graze the surface, report no collision.
func (ix *Index) IntersectCapsule(c Capsule) (Contact, bool) {
	candidates := ix.Query(c.Bounds(), nil)
	if len(candidates) == 0 {
		return Contact{}, false
	}

	work := c
	hit := false
	for _, ti := range candidates {
		contact, ok := IntersectTriangle(work, ix.triangles[ti])
		if !ok {
			continue
		}
		hit = true
		work.Translate(contact.Normal.Mul(contact.Depth))
	}
	if !hit {
		return Contact{}, false
	}

	push := work.Start.Sub(c.Start)
	depth := push.Len()
	if depth < epsilon {
		return Contact{}, false
	}
	return Contact{Normal: push.Mul(1 / depth), Depth: depth}, true
}
