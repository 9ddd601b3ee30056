package islandhop

import (
	"time"
)

type Time struct {
	Time  time.Time
	Dt    time.Duration
	Frame uint64
	// FixedStep is the simulation step in seconds. Zero means the measured frame time is used.
	FixedStep float32

	clock func() time.Time
}

// DeltaSeconds is the measured time between the last two frames.
func (t *Time) DeltaSeconds() float32 {
	return float32(t.Dt.Seconds())
}

// SimStep is the dt handed to the character simulation.
func (t *Time) SimStep() float32 {
	if t.FixedStep > 0 {
		return t.FixedStep
	}
	return t.DeltaSeconds()
}

type TimeModule struct {
	FixedStep float32
	// FrameRate paces App.Run in frames per second. Zero leaves the loop unpaced,
	// which suits scripted runs on a stepped Clock.
	FrameRate int
	// Clock replaces time.Now, mostly for tests.
	Clock func() time.Time
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	clock := mod.Clock
	if clock == nil {
		clock = time.Now
	}
	cmd.AddResources(&Time{
		Time:      clock(),
		FixedStep: mod.FixedStep,
		clock:     clock,
	})
	cmd.UseSystem(System(timeSystem).InStage(Prelude))
	if mod.FrameRate > 0 {
		cmd.SetFrameRate(mod.FrameRate)
	}
}

func timeSystem(timeResource *Time) {
	now := time.Now()
	if timeResource.clock != nil {
		now = timeResource.clock()
	}

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now
	timeResource.Frame++
}
