// Package tween animates float properties over time. Looping tweens run until
// they are killed; a Slot guarantees that a property is driven by at most one
// live tween.
package tween

import (
	"github.com/chewxy/math32"
	"github.com/google/uuid"
)

// Ease maps normalized time [0,1] to normalized progress.
type Ease func(t float32) float32

func Linear(t float32) float32 { return t }

// InOutSine accelerates and decelerates along half a cosine wave.
func InOutSine(t float32) float32 {
	return -(math32.Cos(math32.Pi*t) - 1) / 2
}

// Infinite repeats a tween until it is killed.
const Infinite = -1

// Options shape a tween. Repeat counts extra iterations after the first one.
type Options struct {
	Duration float32
	Ease     Ease
	Repeat   int
	Yoyo     bool
}

// Property is the animated value.
type Property struct {
	Get func() float32
	Set func(float32)
}

// Tween drives one Property from its value at creation time towards a target.
// Tweens are owned by an Animator and addressed by ID.
type Tween struct {
	id      uuid.UUID
	prop    Property
	from    float32
	to      float32
	opts    Options
	elapsed float32
	killed  bool
	done    bool
}

func newTween(prop Property, to float32, opts Options) *Tween {
	if opts.Ease == nil {
		opts.Ease = Linear
	}
	return &Tween{
		id:   uuid.New(),
		prop: prop,
		from: prop.Get(),
		to:   to,
		opts: opts,
	}
}

func (t *Tween) live() bool {
	return !t.killed && !t.done
}

func (t *Tween) advance(dt float32) {
	if !t.live() {
		return
	}
	t.elapsed += dt
	if t.opts.Repeat < 0 && t.opts.Duration > 0 {
		// Keep a looping tween's clock small; two iterations preserve the yoyo phase.
		t.elapsed = math32.Mod(t.elapsed, 2*t.opts.Duration)
	}

	if t.opts.Duration <= 0 {
		t.prop.Set(t.finalValue())
		t.done = true
		return
	}

	iteration := int(t.elapsed / t.opts.Duration)
	if t.opts.Repeat >= 0 && iteration > t.opts.Repeat {
		t.prop.Set(t.finalValue())
		t.done = true
		return
	}

	local := math32.Mod(t.elapsed, t.opts.Duration) / t.opts.Duration
	if t.opts.Yoyo && iteration%2 == 1 {
		local = 1 - local
	}
	t.prop.Set(t.valueAt(local))
}

func (t *Tween) valueAt(progress float32) float32 {
	return t.from + (t.to-t.from)*t.opts.Ease(progress)
}

func (t *Tween) finalValue() float32 {
	if t.opts.Yoyo && t.opts.Repeat%2 == 1 {
		return t.from
	}
	return t.to
}
