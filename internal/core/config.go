package core

import "time"

// RuntimeConfig contains settings the shell passes to the simulation.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Step returns the fixed simulation timestep in seconds.
func (c RuntimeConfig) Step() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// maxFrameTime caps how much wall-clock time one frame may feed into the
// accumulator, so a stalled terminal does not trigger a burst of catch-up ticks.
const maxFrameTime = time.Second

// FixedStep accumulates variable wall-clock time and releases it in whole
// fixed-size steps. Physics is only ever advanced by Step, never by the raw
// frame delta.
type FixedStep struct {
	step  time.Duration
	acc   time.Duration
	ticks uint64
}

// NewFixedStep creates an accumulator for the given tick rate.
func NewFixedStep(tickRate int) *FixedStep {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FixedStep{step: time.Second / time.Duration(tickRate)}
}

// Step returns the fixed step in seconds.
func (f *FixedStep) Step() float64 {
	return f.step.Seconds()
}

// Add feeds elapsed wall-clock time and returns how many whole steps are
// now due. The remainder carries over to the next call.
func (f *FixedStep) Add(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxFrameTime {
		elapsed = maxFrameTime
	}
	f.acc += elapsed

	n := 0
	for f.acc >= f.step {
		f.acc -= f.step
		n++
	}
	f.ticks += uint64(n)
	return n
}

// Ticks returns the total number of steps released so far.
func (f *FixedStep) Ticks() uint64 {
	return f.ticks
}
