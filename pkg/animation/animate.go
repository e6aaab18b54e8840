package animation

import "time"

// Animation interpolates a scalar from one value to another over a fixed
// duration.
//
// Each frame the animation computes elapsed/duration clamped to [0, 1],
// applies its curve, and reports the interpolated value through onTick. When
// the duration elapses it delivers exactly the end value in a final tick and
// then fires onComplete exactly once. A canceled animation never fires
// onComplete.
//
// Animations are one-shot: once finished or canceled they never tick again.
// Callers that allow at most one animation per visual effect hold the current
// *Animation and Cancel it before starting a replacement.
type Animation struct {
	from, to   float64
	duration   time.Duration
	curve      func(float64) float64
	onTick     func(value float64)
	onComplete func()

	ticker   *Ticker
	canceled bool
	finished bool
}

// Start creates an animation from one value to another and begins running it
// immediately. curve may be nil for linear progress; onTick and onComplete
// may be nil.
func Start(from, to float64, duration time.Duration, curve func(float64) float64, onTick func(value float64), onComplete func()) *Animation {
	a := &Animation{
		from:       from,
		to:         to,
		duration:   duration,
		curve:      curve,
		onTick:     onTick,
		onComplete: onComplete,
	}
	a.ticker = NewTicker(a.step)
	a.ticker.Start()
	return a
}

func (a *Animation) step(elapsed time.Duration) {
	if a.canceled || a.finished {
		return
	}

	progress := 1.0
	if a.duration > 0 {
		progress = float64(elapsed) / float64(a.duration)
		if progress > 1 {
			progress = 1
		}
	}

	eased := progress
	if a.curve != nil {
		eased = a.curve(progress)
	}
	if a.onTick != nil {
		a.onTick(a.from + (a.to-a.from)*eased)
	}

	if progress >= 1 {
		a.finished = true
		a.ticker.Stop()
		if a.onComplete != nil {
			a.onComplete()
		}
	}
}

// Cancel stops the animation at its current value. The completion callback
// will not fire. Canceling a finished or already-canceled animation is a
// no-op.
func (a *Animation) Cancel() {
	if a.canceled || a.finished {
		return
	}
	a.canceled = true
	a.ticker.Stop()
}

// IsRunning returns true while the animation is live (neither finished nor
// canceled).
func (a *Animation) IsRunning() bool {
	return !a.canceled && !a.finished
}

// IsFinished returns true once the animation has run to natural completion.
func (a *Animation) IsFinished() bool {
	return a.finished
}
