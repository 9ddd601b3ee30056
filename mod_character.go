package islandhop

import (
	"github.com/chewxy/math32"
	"github.com/gekko3d/islandhop/collision"
	"github.com/go-gl/mathgl/mgl32"
)

type CharacterModule struct{}

func (CharacterModule) Install(app *App, cmd *Commands) {
	cmd.UseSystem(System(CharacterSystem).InStage(Update))
}

// CharacterSystem advances the actor by one simulation step and writes the
// result to the actor's scene node.
func CharacterSystem(t *Time, session *SessionState, index *collision.Index, cfg *Config, level *Level, log Logger) {
	if StepCharacter(session, index, cfg.Physics, t.SimStep()) {
		Scoped(log, "character").Infof("actor fell below %.1f at frame %d, respawned at %v",
			cfg.Physics.FallThreshold, t.Frame, session.Actor.Spawn)
	}

	if level != nil && level.Actor != nil {
		level.Actor.SetWorldPosition(session.Actor.Position)
		level.Actor.Yaw = session.Actor.Yaw
	}
}

// StepCharacter runs one controller update and reports whether the actor was
// respawned instead of moved.
func StepCharacter(s *SessionState, index *collision.Index, p PhysicsConfig, dt float32) bool {
	if s.Actor.Position.Y() < p.FallThreshold {
		s.Respawn()
		return true
	}

	if !s.OnFloor {
		s.Velocity[1] -= p.Gravity * dt
	}

	s.Capsule.Translate(s.Velocity.Mul(dt))

	s.OnFloor = false
	if contact, ok := index.IntersectCapsule(s.Capsule); ok {
		s.OnFloor = contact.Normal.Y() > 0
		s.Capsule.Translate(contact.Normal.Mul(contact.Depth))
	}

	// Vertical velocity is left alone on landing; the floor contact absorbs it every frame.
	if s.OnFloor {
		s.Velocity[0] = 0
		s.Velocity[2] = 0
		s.Actor.InFlight = false
	}

	s.Actor.Position = s.Capsule.Start.Sub(mgl32.Vec3{0, s.Capsule.Radius, 0})
	s.Actor.Yaw += ShortestAngle(s.Actor.Yaw, s.Actor.TargetYaw) * p.TurnRate
	return false
}

// ShortestAngle returns the signed rotation from current to target, wrapped into (-Pi, Pi].
func ShortestAngle(current, target float32) float32 {
	const twoPi = 2 * math32.Pi

	diff := math32.Mod(target-current+math32.Pi, twoPi)
	if diff < 0 {
		diff += twoPi
	}
	diff -= math32.Pi
	if diff <= -math32.Pi {
		diff += twoPi
	}
	return diff
}
