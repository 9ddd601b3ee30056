package islandhop

import (
	"github.com/gekko3d/islandhop/tween"
	"github.com/go-gl/mathgl/mgl32"
)

type ProximityModule struct{}

func (ProximityModule) Install(app *App, cmd *Commands) {
	cmd.UseSystem(System(ProximitySystem).InStage(PostUpdate))
}

// ProximitySystem highlights frame surfaces near the actor. It only runs while
// the actor is in flight, so surfaces keep their state while the actor rests.
func ProximitySystem(session *SessionState, level *Level, anim *tween.Animator, cfg *Config, log Logger) {
	if !session.Actor.InFlight {
		return
	}
	var trace Logger
	if log.DebugEnabled() {
		trace = Scoped(log, "proximity")
	}
	updateHighlights(level, session.Actor.Position, anim, cfg.Highlight, trace)
}

// UpdateHighlights runs one edge-triggered pass over every surface and returns the
// number of state transitions. Surfaces already in the right state are not touched.
func UpdateHighlights(level *Level, actor mgl32.Vec3, anim *tween.Animator, hl HighlightConfig) int {
	return updateHighlights(level, actor, anim, hl, nil)
}

func updateHighlights(level *Level, actor mgl32.Vec3, anim *tween.Animator, hl HighlightConfig, log Logger) int {
	transitions := 0
	for _, a := range level.Anchors {
		for _, s := range a.Surfaces {
			dist := actor.Sub(s.Node.WorldPosition()).Len()
			inRange := dist < s.Radius
			switch {
			case inRange && !s.Active:
				activate(a, s, anim, hl)
			case !inRange && s.Active:
				deactivate(a, s, anim, hl)
			default:
				continue
			}
			transitions++
			if log != nil {
				log.Debugf("%s/%s active=%t at distance %.2f (radius %.2f)", a.Key, s.Node.Name, s.Active, dist, s.Radius)
			}
		}
	}
	return transitions
}

func pulse(hl HighlightConfig) tween.Options {
	return tween.Options{
		Duration: hl.PulseDuration,
		Ease:     tween.InOutSine,
		Repeat:   tween.Infinite,
		Yoyo:     true,
	}
}

func activate(a *Anchor, s *Surface, anim *tween.Animator, hl HighlightConfig) {
	s.Active = true
	s.Node.Emissive = mgl32.Vec3{1, 1, 1}
	s.glow.Start(anim, emissiveIntensity(s.Node), hl.PeakIntensity, pulse(hl))

	a.activeSurfaces++
	if a.activeSurfaces == 1 && a.Marker != nil {
		a.Marker.Visible = true
		a.markerPulse.Start(anim, uniformScale(a.Marker), hl.MarkerScale, pulse(hl))
	}
}

func deactivate(a *Anchor, s *Surface, anim *tween.Animator, hl HighlightConfig) {
	s.Active = false
	s.glow.Start(anim, emissiveIntensity(s.Node), 0, tween.Options{
		Duration: hl.FadeDuration,
		Ease:     tween.InOutSine,
	})

	a.activeSurfaces--
	if a.activeSurfaces == 0 && a.Marker != nil {
		a.markerPulse.Kill(anim)
		a.Marker.Visible = false
		a.Marker.Scale = 1
	}
}

func emissiveIntensity(n *SceneNode) tween.Property {
	return tween.Property{
		Get: func() float32 { return n.EmissiveIntensity },
		Set: func(v float32) { n.EmissiveIntensity = v },
	}
}

func uniformScale(n *SceneNode) tween.Property {
	return tween.Property{
		Get: func() float32 { return n.Scale },
		Set: func(v float32) { n.Scale = v },
	}
}
