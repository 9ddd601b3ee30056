package islandhop

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, float32(30), cfg.Physics.Gravity)
	assert.Equal(t, float32(0.35), cfg.Physics.CapsuleRadius)
	assert.Equal(t, float32(13), cfg.Physics.JumpForce)
	assert.Equal(t, float32(0.03), cfg.Physics.FixedStep)
	assert.Equal(t, float32(15), cfg.Highlight.DefaultRadius)
	assert.Equal(t, 60, cfg.Window.FrameRate)
}

func TestParseConfig_EmptyIsDefault(t *testing.T) {
	cfg, err := ParseConfig([]byte("  \n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfig_Overlay(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
physics:
  gravity: 20
  fixed_step: 0
scene:
  anchors: [Sign]
camera:
  offset: [1, 2, 3]
bindings:
  forward: [i]
window:
  frame_rate: 0
log:
  debug: true
`))
	require.NoError(t, err)

	assert.Equal(t, float32(20), cfg.Physics.Gravity)
	assert.Equal(t, float32(0), cfg.Physics.FixedStep)
	assert.Equal(t, float32(13), cfg.Physics.JumpForce, "untouched keys keep defaults")
	assert.Equal(t, []string{"Sign"}, cfg.Scene.Anchors)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cfg.Camera.Offset)
	assert.True(t, cfg.Log.Debug)
	assert.Zero(t, cfg.Window.FrameRate)

	bindings, err := cfg.Bindings.Resolve()
	require.NoError(t, err)
	assert.Equal(t, ActionForward, bindings[KeyI])
	assert.Equal(t, ActionBackward, bindings[KeyDown])
	_, stillBound := bindings[KeyW]
	assert.False(t, stillBound)
}

func TestParseConfig_SchemaErrors(t *testing.T) {
	for name, raw := range map[string]string{
		"unknown section": "audio:\n  volume: 1\n",
		"unknown key":     "physics:\n  gravty: 10\n",
		"wrong type":      "physics:\n  gravity: strong\n",
		"negative":        "physics:\n  gravity: -1\n",
		"short vector":    "camera:\n  offset: [1, 2]\n",
		"empty anchors":   "scene:\n  anchors: []\n",
		"frame rate":      "window:\n  frame_rate: -30\n",
		"not an object":   "- 1\n- 2\n",
	} {
		_, err := ParseConfig([]byte(raw))
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrInvalidConfig), "%s: %v", name, err)
	}
}

func TestParseConfig_SemanticErrors(t *testing.T) {
	for name, raw := range map[string]string{
		"capsule too short": "physics:\n  capsule_radius: 0.5\n  capsule_height: 0.4\n",
		"unknown key name":  "bindings:\n  reset: [hyper]\n",
		"key bound twice":   "bindings:\n  reset: [w]\n",
		"far before near":   "camera:\n  near: 10\n  far: 5\n",
	} {
		_, err := ParseConfig([]byte(raw))
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrInvalidConfig), "%s: %v", name, err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("highlight:\n  default_radius: 9\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, float32(9), cfg.Highlight.DefaultRadius)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_ShippedFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("assets", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
