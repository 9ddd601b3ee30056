package islandhop

import (
	"github.com/gekko3d/islandhop/collision"
	"github.com/go-gl/mathgl/mgl32"
)

// SceneNode is one node of the loaded scene graph. Renderable state
// (visibility, emissive, scale) lives here so the highlight and marker logic can
// drive it; drawing is up to whoever consumes the graph.
type SceneNode struct {
	Name     string
	Material string

	Position mgl32.Vec3
	Yaw      float32
	Scale    float32

	// Mesh is in the node's local space. Empty for group nodes.
	Mesh []collision.Triangle

	Visible           bool
	Emissive          mgl32.Vec3
	EmissiveIntensity float32
	// InteractionRadius overrides the default highlight radius when positive.
	InteractionRadius float32

	Parent   *SceneNode
	Children []*SceneNode
}

func NewSceneNode(name string) *SceneNode {
	return &SceneNode{
		Name:    name,
		Scale:   1,
		Visible: true,
	}
}

// Add attaches child and returns it.
func (n *SceneNode) Add(child *SceneNode) *SceneNode {
	if child.Parent != nil {
		child.Parent.remove(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

func (n *SceneNode) remove(child *SceneNode) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

func (n *SceneNode) IsMesh() bool {
	return len(n.Mesh) > 0
}

// Local is translation * yaw * uniform scale.
func (n *SceneNode) Local() mgl32.Mat4 {
	return mgl32.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z()).
		Mul4(mgl32.HomogRotate3DY(n.Yaw)).
		Mul4(mgl32.Scale3D(n.Scale, n.Scale, n.Scale))
}

func (n *SceneNode) World() mgl32.Mat4 {
	if n.Parent == nil {
		return n.Local()
	}
	return n.Parent.World().Mul4(n.Local())
}

func (n *SceneNode) WorldPosition() mgl32.Vec3 {
	return n.World().Col(3).Vec3()
}

// SetWorldPosition places the node so its world origin lands on p.
func (n *SceneNode) SetWorldPosition(p mgl32.Vec3) {
	if n.Parent == nil {
		n.Position = p
		return
	}
	n.Position = mgl32.TransformCoordinate(p, n.Parent.World().Inv())
}

func (n *SceneNode) WorldTriangles() []collision.Triangle {
	if len(n.Mesh) == 0 {
		return nil
	}
	world := n.World()
	out := make([]collision.Triangle, len(n.Mesh))
	for i, t := range n.Mesh {
		out[i] = collision.Triangle{
			A: mgl32.TransformCoordinate(t.A, world),
			B: mgl32.TransformCoordinate(t.B, world),
			C: mgl32.TransformCoordinate(t.C, world),
		}
	}
	return out
}

// Traverse visits n and its descendants depth-first, parents before children.
func (n *SceneNode) Traverse(fn func(*SceneNode)) {
	fn(n)
	for _, c := range n.Children {
		c.Traverse(fn)
	}
}

// Find returns the first node named name in traversal order, or nil.
func (n *SceneNode) Find(name string) *SceneNode {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}
