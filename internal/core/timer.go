package core

import "time"

// DefaultMaxCatchUp bounds how many ticks a single Due call may request.
const DefaultMaxCatchUp = 15

// FixedStep helps run simulation updates at a steady ticks-per-second rate,
// independent of how often the caller polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	// MaxCatchUp caps the ticks returned by Due after a stall. Zero or less
	// disables the cap.
	MaxCatchUp int

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{MaxCatchUp: DefaultMaxCatchUp, now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// TPS reports the configured tick rate.
func (f *FixedStep) TPS() int {
	if f.step <= 0 {
		return 0
	}
	return int(time.Second / f.step)
}

func (f *FixedStep) advance() {
	if f.now == nil {
		f.now = time.Now
	}
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	f.advance()
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Due reports how many ticks have accumulated since the previous call and
// consumes them. When the caller has fallen behind by more than MaxCatchUp
// ticks the excess is dropped rather than replayed.
func (f *FixedStep) Due() int {
	f.advance()
	if f.step <= 0 {
		return 0
	}
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	if f.MaxCatchUp > 0 && n > f.MaxCatchUp {
		n = f.MaxCatchUp
	}
	return n
}

// Reset drops any accumulated time, e.g. after the simulation was paused.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}
