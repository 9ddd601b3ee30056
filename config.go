package islandhop

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var configSchemaSource string

const configSchemaURL = "islandhop://config.schema.json"

var compileConfigSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(configSchemaURL, strings.NewReader(configSchemaSource)); err != nil {
		return nil, err
	}
	return c.Compile(configSchemaURL)
})

type Config struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Scene     SceneConfig     `yaml:"scene"`
	Highlight HighlightConfig `yaml:"highlight"`
	Camera    CameraConfig    `yaml:"camera"`
	Window    WindowConfig    `yaml:"window"`
	Bindings  BindingsConfig  `yaml:"bindings"`
	Log       LogConfig       `yaml:"log"`
}

type PhysicsConfig struct {
	Gravity       float32 `yaml:"gravity"`
	CapsuleRadius float32 `yaml:"capsule_radius"`
	// CapsuleHeight is the offset of the capsule's upper segment end above the actor base.
	CapsuleHeight float32 `yaml:"capsule_height"`
	JumpForce     float32 `yaml:"jump_force"`
	MoveSpeed     float32 `yaml:"move_speed"`
	FixedStep     float32 `yaml:"fixed_step"`
	FallThreshold float32 `yaml:"fall_threshold"`
	TurnRate      float32 `yaml:"turn_rate"`
}

type SceneConfig struct {
	Character      string   `yaml:"character"`
	Collider       string   `yaml:"collider"`
	Anchors        []string `yaml:"anchors"`
	FrameMaterials []string `yaml:"frame_materials"`
}

type HighlightConfig struct {
	DefaultRadius float32    `yaml:"default_radius"`
	PeakIntensity float32    `yaml:"peak_intensity"`
	PulseDuration float32    `yaml:"pulse_duration"`
	FadeDuration  float32    `yaml:"fade_duration"`
	MarkerScale   float32    `yaml:"marker_scale"`
	MarkerOffset  mgl32.Vec3 `yaml:"marker_offset"`
}

type CameraConfig struct {
	Offset   mgl32.Vec3 `yaml:"offset"`
	ViewSize float32    `yaml:"view_size"`
	Zoom     float32    `yaml:"zoom"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`

	// FrameRate paces windowed sessions; every frame advances the simulation by
	// physics.fixed_step, so it sets how fast time passes on screen.
	FrameRate int `yaml:"frame_rate"`
}

type BindingsConfig struct {
	Forward  []string `yaml:"forward"`
	Backward []string `yaml:"backward"`
	Left     []string `yaml:"left"`
	Right    []string `yaml:"right"`
	Reset    []string `yaml:"reset"`
}

type LogConfig struct {
	Prefix string `yaml:"prefix"`
	Debug  bool   `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity:       30,
			CapsuleRadius: 0.35,
			CapsuleHeight: 1,
			JumpForce:     13,
			MoveSpeed:     5,
			FixedStep:     0.03,
			FallThreshold: -20,
			TurnRate:      0.1,
		},
		Scene: SceneConfig{
			Character:      "Character",
			Collider:       "groundCollider",
			Anchors:        []string{"Project1", "Project2", "Project3"},
			FrameMaterials: []string{"Frame1", "Frame2", "Frame3"},
		},
		Highlight: HighlightConfig{
			DefaultRadius: 15,
			PeakIntensity: 0.5,
			PulseDuration: 1,
			FadeDuration:  0.5,
			MarkerScale:   1.5,
			MarkerOffset:  mgl32.Vec3{0, -0.1, 0},
		},
		Camera: CameraConfig{
			Offset:   mgl32.Vec3{-203, 129, 190},
			ViewSize: 20,
			Zoom:     1.2,
			Near:     0.1,
			Far:      33333,
		},
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "islandhop",
			FrameRate: 60,
		},
		Bindings: BindingsConfig{
			Forward:  []string{"w", "arrowup"},
			Backward: []string{"s", "arrowdown"},
			Left:     []string{"a", "arrowleft"},
			Right:    []string{"d", "arrowright"},
			Reset:    []string{"r"},
		},
		Log: LogConfig{
			Prefix: "islandhop",
		},
	}
}

func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig overlays a YAML document on DefaultConfig. The document is checked
// against the embedded schema before decoding and the result is validated after.
func ParseConfig(raw []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(bytes.TrimSpace(raw)) == 0 {
		return cfg, nil
	}

	if err := validateConfigDocument(raw); err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfigDocument(raw []byte) error {
	schema, err := compileConfigSchema()
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	// Round-trip through JSON so numbers and maps have the shapes the validator expects.
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	var normalized any
	if err := json.Unmarshal(asJSON, &normalized); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := schema.Validate(normalized); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Validate checks the cross-field rules the schema cannot express.
func (c Config) Validate() error {
	p := c.Physics
	if p.CapsuleRadius <= 0 {
		return fmt.Errorf("%w: physics.capsule_radius must be positive", ErrInvalidConfig)
	}
	if p.CapsuleHeight <= p.CapsuleRadius {
		return fmt.Errorf("%w: physics.capsule_height %.3f must exceed capsule_radius %.3f", ErrInvalidConfig, p.CapsuleHeight, p.CapsuleRadius)
	}
	if p.FixedStep < 0 {
		return fmt.Errorf("%w: physics.fixed_step must not be negative", ErrInvalidConfig)
	}
	if p.TurnRate <= 0 || p.TurnRate > 1 {
		return fmt.Errorf("%w: physics.turn_rate must be in (0, 1]", ErrInvalidConfig)
	}
	if c.Scene.Character == "" || c.Scene.Collider == "" {
		return fmt.Errorf("%w: scene.character and scene.collider are required", ErrInvalidConfig)
	}
	if len(c.Scene.Anchors) == 0 {
		return fmt.Errorf("%w: scene.anchors is empty", ErrInvalidConfig)
	}
	if len(c.Scene.FrameMaterials) == 0 {
		return fmt.Errorf("%w: scene.frame_materials is empty", ErrInvalidConfig)
	}
	if c.Highlight.DefaultRadius <= 0 {
		return fmt.Errorf("%w: highlight.default_radius must be positive", ErrInvalidConfig)
	}
	if c.Camera.Zoom <= 0 || c.Camera.ViewSize <= 0 {
		return fmt.Errorf("%w: camera.zoom and camera.view_size must be positive", ErrInvalidConfig)
	}
	if c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: camera.far must exceed camera.near", ErrInvalidConfig)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive", ErrInvalidConfig)
	}
	if c.Window.FrameRate < 0 {
		return fmt.Errorf("%w: window.frame_rate must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Bindings.Resolve(); err != nil {
		return fmt.Errorf("%w: bindings: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Resolve turns the named bindings into a key table. A key may drive only one action.
func (b BindingsConfig) Resolve() (map[Key]Action, error) {
	table := make(map[Key]Action)
	groups := []struct {
		action Action
		names  []string
	}{
		{ActionForward, b.Forward},
		{ActionBackward, b.Backward},
		{ActionLeft, b.Left},
		{ActionRight, b.Right},
		{ActionReset, b.Reset},
	}
	for _, g := range groups {
		for _, name := range g.names {
			key, err := ParseKey(name)
			if err != nil {
				return nil, err
			}
			if prev, ok := table[key]; ok && prev != g.action {
				return nil, fmt.Errorf("key %s bound to both %s and %s", key, prev, g.action)
			}
			table[key] = g.action
		}
	}
	return table, nil
}

// ConfigModule makes the loaded Config available to the other modules and systems.
type ConfigModule struct {
	Config Config
}

func (m ConfigModule) Install(app *App, cmd *Commands) {
	cfg := m.Config
	cmd.AddResources(&cfg)
}
