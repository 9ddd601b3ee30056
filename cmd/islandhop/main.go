package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gekko3d/islandhop"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config (defaults are used when empty)")
		scenePath  = flag.String("scene", "", "path to a YAML scene (the built-in demo island when empty)")
		headless   = flag.Bool("headless", false, "run a scripted session without a window")
		frames     = flag.Uint64("frames", 600, "frames to run in headless mode")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	cfg := islandhop.DefaultConfig()
	logger := islandhop.NewDefaultLogger(cfg.Log.Prefix, *debug)
	if *configPath != "" {
		loaded, err := islandhop.LoadConfig(*configPath)
		if err != nil {
			fatal(logger, "config: %v", err)
		}
		cfg = loaded
	}
	if *debug {
		cfg.Log.Debug = true
	}
	logger = islandhop.NewDefaultLogger(cfg.Log.Prefix, cfg.Log.Debug)

	var (
		root *islandhop.SceneNode
		err  error
	)
	if *scenePath != "" {
		root, err = islandhop.LoadScene(*scenePath)
	} else {
		root, err = islandhop.ParseScene(islandhop.DemoScene)
	}
	if err != nil {
		fatal(logger, "scene: %v", err)
	}

	level, err := islandhop.Classify(root, cfg.Scene, cfg.Highlight)
	if err != nil {
		fatal(logger, "classify: %v", err)
	}

	opts := islandhop.SessionOptions{
		Window:   !*headless,
		Logger:   logger,
		OnSelect: func(key string) { fmt.Println(key) },
	}
	if *headless {
		opts.Clock = steppedClock(time.Now(), time.Second/60)
	}

	app := islandhop.NewApp().UseModules(islandhop.SessionModules(cfg, level, opts)...)
	if *headless {
		app.UseSystem(islandhop.System(headlessScript(*frames, level)).InStage(islandhop.PreUpdate))
	}

	app.Run()

	if ws, ok := islandhop.Resource[islandhop.WindowState](app); ok {
		ws.Destroy()
	}
}

func fatal(log islandhop.Logger, format string, args ...any) {
	log.Errorf(format, args...)
	os.Exit(1)
}

// steppedClock advances by step on every call, so headless runs animate at a
// steady rate however fast the loop spins.
func steppedClock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

// headlessScript hops around the island, points at the first anchor near the
// end and clicks it, then exits.
func headlessScript(frames uint64, level *islandhop.Level) func(*islandhop.Time, *islandhop.Input, *islandhop.SessionState, *islandhop.FollowCamera, *islandhop.Commands, islandhop.Logger) {
	moves := []islandhop.Key{islandhop.KeyW, islandhop.KeyW, islandhop.KeyD, islandhop.KeyD, islandhop.KeyS, islandhop.KeyA}
	next := 0

	return func(t *islandhop.Time, in *islandhop.Input, s *islandhop.SessionState, cam *islandhop.FollowCamera, cmd *islandhop.Commands, log islandhop.Logger) {
		switch {
		case t.Frame >= frames:
			cmd.Exit()
			return
		case t.Frame == frames-2 && len(level.Anchors) > 0:
			in.Click()
		case t.Frame == frames-3 && len(level.Anchors) > 0:
			anchor := level.Anchors[0]
			s.Pointer = cam.Project(anchor.Pick.Bounds().Center())
		case t.Frame%40 == 0:
			if in.KeyDown(moves[next%len(moves)]) {
				next++
			}
			log.Infof("frame %d: actor at %v yaw %.2f on floor %t hovered %q",
				t.Frame, s.Actor.Position, s.Actor.Yaw, s.OnFloor, s.HoveredKey)
		}
	}
}
