package islandhop

import (
	"github.com/gekko3d/islandhop/tween"
)

// AnimationModule owns the tween animator. Tweens advance by wall-clock frame
// time, independent of the simulation step.
type AnimationModule struct{}

func (AnimationModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(tween.NewAnimator())
	cmd.UseSystem(System(AnimationSystem).InStage(PreRender))
}

func AnimationSystem(t *Time, anim *tween.Animator) {
	anim.Update(t.DeltaSeconds())
}
