package islandhop

import (
	"fmt"
	"slices"

	"github.com/gekko3d/islandhop/collision"
	"github.com/gekko3d/islandhop/tween"
	"github.com/go-gl/mathgl/mgl32"
)

// Level is the classified scene: the actor node, the static collision soup and
// the interactive anchors in configuration order.
type Level struct {
	Root      *SceneNode
	Actor     *SceneNode
	Spawn     mgl32.Vec3
	Collision []collision.Triangle
	Anchors   []*Anchor
}

// Anchor is an interactive object the actor can walk up to and the pointer can select.
type Anchor struct {
	Key      string
	Node     *SceneNode
	Surfaces []*Surface
	// Marker is the indicator child shown while any surface is highlighted.
	Marker *SceneNode
	// Pick holds the anchor's renderable triangles in world space.
	Pick collision.Mesh

	markerPulse    tween.Slot
	activeSurfaces int
}

// Surface is a frame-material mesh under an anchor, highlighted by proximity.
type Surface struct {
	Node   *SceneNode
	Radius float32
	Active bool

	glow tween.Slot
}

func (l *Level) Anchor(key string) *Anchor {
	for _, a := range l.Anchors {
		if a.Key == key {
			return a
		}
	}
	return nil
}

// Classify tags the scene graph: it locates the character, collects collider
// triangles and hides their nodes, discovers anchors and their frame surfaces,
// attaches a hidden marker to every anchor and clears emissive state on all meshes.
func Classify(root *SceneNode, scene SceneConfig, hl HighlightConfig) (*Level, error) {
	actor := root.Find(scene.Character)
	if actor == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingCharacter, scene.Character)
	}

	level := &Level{
		Root:  root,
		Actor: actor,
		Spawn: actor.WorldPosition(),
	}

	root.Traverse(func(n *SceneNode) {
		if n.Name != scene.Collider {
			return
		}
		n.Traverse(func(c *SceneNode) {
			c.Visible = false
			level.Collision = append(level.Collision, c.WorldTriangles()...)
		})
	})
	if len(level.Collision) == 0 {
		return nil, fmt.Errorf("%w: no triangles under %q", ErrNoCollisionGeometry, scene.Collider)
	}

	for _, key := range scene.Anchors {
		node := root.Find(key)
		if node == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingAnchor, key)
		}
		anchor := &Anchor{Key: key, Node: node}

		var pick []collision.Triangle
		node.Traverse(func(c *SceneNode) {
			if !c.IsMesh() {
				return
			}
			pick = append(pick, c.WorldTriangles()...)
			if !slices.Contains(scene.FrameMaterials, c.Material) {
				return
			}
			radius := c.InteractionRadius
			if radius <= 0 {
				radius = hl.DefaultRadius
			}
			anchor.Surfaces = append(anchor.Surfaces, &Surface{Node: c, Radius: radius})
		})
		if len(anchor.Surfaces) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoFrameSurfaces, key)
		}
		anchor.Pick = collision.NewMesh(pick)

		marker := NewSceneNode(key + ".indicator")
		marker.Position = hl.MarkerOffset
		marker.Visible = false
		anchor.Marker = node.Add(marker)

		level.Anchors = append(level.Anchors, anchor)
	}

	root.Traverse(func(n *SceneNode) {
		if n.IsMesh() {
			n.Emissive = mgl32.Vec3{}
			n.EmissiveIntensity = 0
		}
	})

	return level, nil
}

// SurfaceCount is the number of highlightable surfaces over all anchors.
func (l *Level) SurfaceCount() int {
	n := 0
	for _, a := range l.Anchors {
		n += len(a.Surfaces)
	}
	return n
}
