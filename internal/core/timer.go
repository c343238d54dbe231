package core

import "time"

// FixedStep paces command playback at a steady steps-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given SPS.
func NewFixedStep(sps int) *FixedStep {
	if sps <= 0 {
		sps = 10
	}
	fs := &FixedStep{}
	fs.SetSPS(sps)
	fs.accumulator = fs.step
	return fs
}

// SetSPS changes the playback rate. It is safe to call from the main loop.
func (f *FixedStep) SetSPS(sps int) {
	if sps <= 0 {
		sps = 10
	}
	f.step = time.Second / time.Duration(sps)
}

// ShouldStep reports whether playback should advance by one command.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
