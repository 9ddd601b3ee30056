package islandhop

import "time"

// SessionOptions selects the optional parts of a session.
type SessionOptions struct {
	// Window opens a GLFW window and feeds its events to Input.
	Window bool
	// Presenter overrides the default presenter picked by PickingModule.
	Presenter Presenter
	// OnSelect is called with the key of every clicked anchor when the default
	// presenter is in use.
	OnSelect func(key string)
	// Logger overrides the logger built from Config.Log.
	Logger Logger
	// Clock replaces the wall clock, e.g. for scripted headless runs.
	Clock func() time.Time
}

// SessionModules returns the modules of one play session in install order.
// Registration order fixes the per-frame order inside a stage: the character
// moves before the camera follows, and picking runs before proximity.
func SessionModules(cfg Config, level *Level, opts SessionOptions) []Module {
	// Only a window paces the loop; headless runs step as fast as they can.
	frameRate := 0
	if opts.Window {
		frameRate = cfg.Window.FrameRate
	}
	modules := []Module{
		LoggingModule{Prefix: cfg.Log.Prefix, Debug: cfg.Log.Debug, Logger: opts.Logger},
		TimeModule{FixedStep: cfg.Physics.FixedStep, FrameRate: frameRate, Clock: opts.Clock},
		ConfigModule{Config: cfg},
		LevelModule{Level: level},
		InputModule{},
	}
	if opts.Window {
		modules = append(modules, PlatformWindowModule{
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			Title:  cfg.Window.Title,
		})
	}
	return append(modules,
		CharacterModule{},
		CameraModule{},
		PickingModule{Presenter: opts.Presenter, OnSelect: opts.OnSelect},
		ProximityModule{},
		AnimationModule{},
	)
}
