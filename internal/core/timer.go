package core

import "time"

// Interval fires once every n frames. It stands in for wall-clock timers so
// periodic effects stay in lockstep with the frame loop.
type Interval struct {
	every       int
	accumulator int
}

// NewInterval constructs an Interval that fires every frames ticks.
func NewInterval(frames int) *Interval {
	if frames <= 0 {
		frames = 1
	}
	return &Interval{every: frames}
}

// Every returns the configured period in frames.
func (i *Interval) Every() int { return i.every }

// Tick advances the interval by one frame and reports whether it fired.
func (i *Interval) Tick() bool {
	i.accumulator++
	if i.accumulator >= i.every {
		i.accumulator -= i.every
		return true
	}
	return false
}

// Reset rewinds the interval to the start of its period.
func (i *Interval) Reset() { i.accumulator = 0 }

// FramesFor converts a delay into whole frames at the given ticks per second.
// The result is never less than one.
func FramesFor(d time.Duration, tps int) int {
	if tps <= 0 {
		tps = 60
	}
	frames := int(d * time.Duration(tps) / time.Second)
	if frames < 1 {
		frames = 1
	}
	return frames
}
