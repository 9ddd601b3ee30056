package islandhop

import (
	"github.com/gekko3d/islandhop/collision"
	"github.com/go-gl/mathgl/mgl32"
)

// FollowCamera is an orthographic camera that keeps a fixed offset from the
// actor's ground position.
type FollowCamera struct {
	Offset   mgl32.Vec3
	ViewSize float32
	Zoom     float32
	Near     float32
	Far      float32
	Aspect   float32

	Position mgl32.Vec3
	Target   mgl32.Vec3
}

func NewFollowCamera(cfg CameraConfig, aspect float32) *FollowCamera {
	if aspect <= 0 {
		aspect = 1
	}
	return &FollowCamera{
		Offset:   cfg.Offset,
		ViewSize: cfg.ViewSize,
		Zoom:     cfg.Zoom,
		Near:     cfg.Near,
		Far:      cfg.Far,
		Aspect:   aspect,
	}
}

// Follow places the camera at the actor's x/z plus the offset, looking at the
// actor's footprint on the y=0 plane. The camera height comes from the offset alone.
func (c *FollowCamera) Follow(actor mgl32.Vec3) {
	c.Position = mgl32.Vec3{actor.X() + c.Offset.X(), c.Offset.Y(), actor.Z() + c.Offset.Z()}
	c.Target = mgl32.Vec3{actor.X(), 0, actor.Z()}
}

func (c *FollowCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, mgl32.Vec3{0, 1, 0})
}

func (c *FollowCamera) Projection() mgl32.Mat4 {
	halfH := c.ViewSize / c.Zoom
	halfW := halfH * c.Aspect
	return mgl32.Ortho(-halfW, halfW, -halfH, halfH, c.Near, c.Far)
}

func (c *FollowCamera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Project maps a world point to normalized device coordinates.
func (c *FollowCamera) Project(p mgl32.Vec3) mgl32.Vec2 {
	clip := c.ViewProjection().Mul4x1(p.Vec4(1))
	return mgl32.Vec2{clip.X() / clip.W(), clip.Y() / clip.W()}
}

// Basis returns the camera's right, up and forward unit vectors, matching View.
func (c *FollowCamera) Basis() (right, up, forward mgl32.Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	up = right.Cross(forward)
	return right, up, forward
}

// PickRay maps an NDC point to a world ray. The projection is orthographic, so
// every ray shares the view direction and starts on the near plane.
func (c *FollowCamera) PickRay(ndc mgl32.Vec2) collision.Ray {
	right, up, forward := c.Basis()
	halfH := c.ViewSize / c.Zoom
	halfW := halfH * c.Aspect

	origin := c.Position.
		Add(forward.Mul(c.Near)).
		Add(right.Mul(ndc.X() * halfW)).
		Add(up.Mul(ndc.Y() * halfH))
	return collision.Ray{Origin: origin, Dir: forward}
}

type CameraModule struct {
	// Aspect overrides the window aspect ratio when positive.
	Aspect float32
}

func (m CameraModule) Install(app *App, cmd *Commands) {
	cfg := mustResource[Config](app, "CameraModule")
	session := mustResource[SessionState](app, "CameraModule")

	aspect := m.Aspect
	if aspect <= 0 {
		aspect = float32(cfg.Window.Width) / float32(cfg.Window.Height)
	}
	cam := NewFollowCamera(cfg.Camera, aspect)
	cam.Follow(session.Actor.Position)
	cmd.AddResources(cam)
	cmd.UseSystem(System(CameraSystem).InStage(Update))
}

func CameraSystem(session *SessionState, cam *FollowCamera) {
	cam.Follow(session.Actor.Position)
}
