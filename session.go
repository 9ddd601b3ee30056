package islandhop

import (
	"github.com/gekko3d/islandhop/collision"
	"github.com/go-gl/mathgl/mgl32"
)

// Actor is the controlled character's kinematic state. Position is the base of
// the capsule, at the feet.
type Actor struct {
	Position  mgl32.Vec3
	Yaw       float32
	TargetYaw float32
	Spawn     mgl32.Vec3
	// InFlight is set by a hop and cleared on landing; movement input is ignored while set.
	InFlight bool
}

// SessionState is the per-session mutable state shared by the input handlers
// and the frame systems.
type SessionState struct {
	Actor    Actor
	Capsule  collision.Capsule
	Velocity mgl32.Vec3
	OnFloor  bool
	// Pointer is in normalized device coordinates, both axes in [-1, 1].
	Pointer    mgl32.Vec2
	HoveredKey string

	capsuleHeight float32
	clickPending  bool
}

func NewSession(spawn mgl32.Vec3, physics PhysicsConfig) *SessionState {
	s := &SessionState{
		Actor: Actor{
			Position: spawn,
			Spawn:    spawn,
		},
		capsuleHeight: physics.CapsuleHeight,
	}
	s.Capsule = collision.NewCapsule(spawn, physics.CapsuleRadius, physics.CapsuleHeight)
	return s
}

// Respawn puts the actor back at the spawn point at rest. Yaw is kept.
func (s *SessionState) Respawn() {
	s.Actor.Position = s.Actor.Spawn
	s.Actor.InFlight = false
	s.Capsule = collision.NewCapsule(s.Actor.Spawn, s.Capsule.Radius, s.capsuleHeight)
	s.Velocity = mgl32.Vec3{}
}
