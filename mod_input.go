package islandhop

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type Action int

const (
	ActionNone Action = iota
	ActionForward
	ActionBackward
	ActionLeft
	ActionRight
	ActionReset
)

func (a Action) String() string {
	switch a {
	case ActionForward:
		return "forward"
	case ActionBackward:
		return "backward"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionReset:
		return "reset"
	}
	return "none"
}

type hop struct {
	axis mgl32.Vec3
	yaw  float32
}

var hops = map[Action]hop{
	ActionForward:  {axis: mgl32.Vec3{1, 0, 0}, yaw: -math32.Pi / 2},
	ActionBackward: {axis: mgl32.Vec3{-1, 0, 0}, yaw: math32.Pi / 2},
	ActionRight:    {axis: mgl32.Vec3{0, 0, 1}, yaw: -math32.Pi},
	ActionLeft:     {axis: mgl32.Vec3{0, 0, -1}, yaw: 0},
}

// ApplyAction applies one discrete input to the session and reports whether it
// was accepted. Movement is dropped while the actor is in flight; reset never is.
func ApplyAction(s *SessionState, p PhysicsConfig, a Action) bool {
	if a == ActionReset {
		s.Respawn()
		return true
	}
	h, ok := hops[a]
	if !ok || s.Actor.InFlight {
		return false
	}

	s.Velocity = s.Velocity.Add(h.axis.Mul(p.MoveSpeed))
	s.Actor.TargetYaw = h.yaw
	s.Velocity[1] = p.JumpForce
	s.Actor.InFlight = true
	return true
}

// Input receives platform events and applies them to the session as they arrive.
type Input struct {
	session  *SessionState
	physics  PhysicsConfig
	bindings map[Key]Action
	log      Logger

	// LastKey is the most recent key event, accepted or not.
	LastKey Key
}

func NewInput(session *SessionState, physics PhysicsConfig, bindings map[Key]Action, log Logger) *Input {
	if log == nil {
		log = NewNopLogger()
	}
	return &Input{
		session:  session,
		physics:  physics,
		bindings: bindings,
		log:      log,
	}
}

// KeyDown handles a key press and reports whether it changed the session.
func (in *Input) KeyDown(k Key) bool {
	in.LastKey = k
	action, ok := in.bindings[k]
	if !ok {
		return false
	}
	accepted := ApplyAction(in.session, in.physics, action)
	if accepted {
		in.log.Debugf("key %s: %s", k, action)
	} else {
		in.log.Debugf("key %s: %s dropped, actor in flight", k, action)
	}
	return accepted
}

// PointerMove records the pointer from window pixel coordinates.
// The latest position wins.
func (in *Input) PointerMove(x, y float64, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	in.session.Pointer = mgl32.Vec2{
		float32(x/float64(width))*2 - 1,
		-(float32(y/float64(height))*2 - 1),
	}
}

// Click marks a selection request. It is resolved against the hovered anchor
// by the picking system on the next frame; repeated clicks in one frame coalesce.
func (in *Input) Click() {
	in.session.clickPending = true
}

type InputModule struct{}

func (InputModule) Install(app *App, cmd *Commands) {
	cfg := mustResource[Config](app, "InputModule")
	session := mustResource[SessionState](app, "InputModule")

	bindings, err := cfg.Bindings.Resolve()
	if err != nil {
		panic(err)
	}
	cmd.AddResources(NewInput(session, cfg.Physics, bindings, Scoped(app.Logger(), "input")))
}
