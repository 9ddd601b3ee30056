package islandhop

import (
	"github.com/gekko3d/islandhop/collision"
)

// LevelModule installs a classified level together with the session state and
// the collision index built from its collider triangles.
type LevelModule struct {
	Level *Level
}

func (m LevelModule) Install(app *App, cmd *Commands) {
	if m.Level == nil {
		panic("LevelModule needs a classified Level")
	}
	cfg := mustResource[Config](app, "LevelModule")

	index := collision.NewIndex(m.Level.Collision)
	session := NewSession(m.Level.Spawn, cfg.Physics)
	cmd.AddResources(m.Level, index, session)

	Scoped(app.Logger(), "level").Infof("loaded: %d anchors, %d surfaces, %d collision triangles, spawn %v",
		len(m.Level.Anchors), m.Level.SurfaceCount(), index.Len(), m.Level.Spawn)
}
