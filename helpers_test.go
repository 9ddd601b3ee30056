package islandhop

import (
	"testing"

	"github.com/gekko3d/islandhop/collision"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func testSceneDef() SceneDef {
	frame := func(name, material string, pos mgl32.Vec3, size mgl32.Vec3, radius float32) NodeDef {
		return NodeDef{Name: name, Material: material, Position: pos, InteractionRadius: radius, Box: &BoxDef{Size: size}}
	}
	return SceneDef{Nodes: []NodeDef{
		{Name: "groundCollider", Children: []NodeDef{
			{Name: "floor", Position: mgl32.Vec3{0, -0.5, 0}, Box: &BoxDef{Size: mgl32.Vec3{100, 1, 100}}},
		}},
		{Name: "Character", Position: mgl32.Vec3{0, 1, 0}, Children: []NodeDef{
			{Name: "body", Material: "Skin", Box: &BoxDef{Size: mgl32.Vec3{0.6, 1, 0.6}, Offset: mgl32.Vec3{0, 0.5, 0}}},
		}},
		{Name: "Project1", Position: mgl32.Vec3{10, 0, 0}, Children: []NodeDef{
			{Name: "board1", Material: "Board", Position: mgl32.Vec3{0, 1, 0}, Box: &BoxDef{Size: mgl32.Vec3{0.4, 2, 2}}},
			frame("frame1", "Frame1", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0.2, 2.4, 2.4}, 5),
		}},
		{Name: "Project2", Position: mgl32.Vec3{0, 0, -10}, Children: []NodeDef{
			frame("frame2", "Frame2", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{2.4, 2.4, 0.2}, 4),
		}},
		{Name: "Project3", Position: mgl32.Vec3{-10, 0, 10}, Children: []NodeDef{
			{Name: "board3", Material: "Board", Position: mgl32.Vec3{0, 1, 0}, Box: &BoxDef{Size: mgl32.Vec3{2, 2, 0.2}}},
			frame("frame3a", "Frame3", mgl32.Vec3{-1, 1, 0}, mgl32.Vec3{0.2, 2.4, 0.3}, 4),
			frame("frame3b", "Frame3", mgl32.Vec3{1, 1, 0}, mgl32.Vec3{0.2, 2.4, 0.3}, 4),
		}},
	}}
}

func testConfig() Config {
	return DefaultConfig()
}

func testLevel(t *testing.T) *Level {
	t.Helper()
	root, err := testSceneDef().Build()
	require.NoError(t, err)
	cfg := testConfig()
	level, err := Classify(root, cfg.Scene, cfg.Highlight)
	require.NoError(t, err)
	return level
}

// restingSession returns a session standing on the floor of level.
func restingSession(t *testing.T, level *Level, cfg Config) (*SessionState, *collision.Index) {
	t.Helper()
	index := collision.NewIndex(level.Collision)
	s := NewSession(level.Spawn, cfg.Physics)
	for i := 0; i < 100 && !s.OnFloor; i++ {
		StepCharacter(s, index, cfg.Physics, cfg.Physics.FixedStep)
	}
	require.True(t, s.OnFloor, "actor never landed")
	return s, index
}

type recordingPresenter struct {
	cursors  []CursorStyle
	selected []string
}

func (p *recordingPresenter) SetCursor(style CursorStyle) { p.cursors = append(p.cursors, style) }
func (p *recordingPresenter) Select(key string)           { p.selected = append(p.selected, key) }
