package islandhop

import (
	"fmt"
	"os"

	"github.com/gekko3d/islandhop/collision"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// SceneDef describes a scene graph in YAML: named nodes with optional box or quad
// geometry, a material name and an interaction radius.
type SceneDef struct {
	Nodes []NodeDef `yaml:"nodes"`
}

type NodeDef struct {
	Name              string     `yaml:"name"`
	Material          string     `yaml:"material,omitempty"`
	Position          mgl32.Vec3 `yaml:"position"`
	Yaw               float32    `yaml:"yaw,omitempty"`
	InteractionRadius float32    `yaml:"interaction_radius,omitempty"`
	Box               *BoxDef    `yaml:"box,omitempty"`
	Quad              *QuadDef   `yaml:"quad,omitempty"`
	Children          []NodeDef  `yaml:"children,omitempty"`
}

// BoxDef is an axis-aligned box centred on the node origin plus Offset.
type BoxDef struct {
	Size   mgl32.Vec3 `yaml:"size"`
	Offset mgl32.Vec3 `yaml:"offset,omitempty"`
}

// QuadDef is the parallelogram Offset +/- U +/- V, facing U x V.
type QuadDef struct {
	U      mgl32.Vec3 `yaml:"u"`
	V      mgl32.Vec3 `yaml:"v"`
	Offset mgl32.Vec3 `yaml:"offset,omitempty"`
}

func LoadScene(path string) (*SceneNode, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	root, err := ParseScene(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

func ParseScene(raw []byte) (*SceneNode, error) {
	var def SceneDef
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return def.Build()
}

// Build turns the description into a node graph under an unnamed root.
func (d SceneDef) Build() (*SceneNode, error) {
	root := NewSceneNode("")
	for i := range d.Nodes {
		child, err := d.Nodes[i].build()
		if err != nil {
			return nil, err
		}
		root.Add(child)
	}
	return root, nil
}

func (d NodeDef) build() (*SceneNode, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("scene node at %v has no name", d.Position)
	}
	if d.Box != nil && d.Quad != nil {
		return nil, fmt.Errorf("scene node %q has both box and quad geometry", d.Name)
	}

	n := NewSceneNode(d.Name)
	n.Material = d.Material
	n.Position = d.Position
	n.Yaw = d.Yaw
	n.InteractionRadius = d.InteractionRadius

	switch {
	case d.Box != nil:
		s := d.Box.Size
		if s.X() <= 0 || s.Y() <= 0 || s.Z() <= 0 {
			return nil, fmt.Errorf("scene node %q: box size %v must be positive", d.Name, s)
		}
		n.Mesh = collision.Box(d.Box.Offset, s.Mul(0.5))
	case d.Quad != nil:
		if d.Quad.U.Cross(d.Quad.V).Len() == 0 {
			return nil, fmt.Errorf("scene node %q: quad edges are parallel", d.Name)
		}
		n.Mesh = collision.Quad(d.Quad.Offset, d.Quad.U, d.Quad.V)
	}

	for i := range d.Children {
		child, err := d.Children[i].build()
		if err != nil {
			return nil, err
		}
		n.Add(child)
	}
	return n, nil
}
