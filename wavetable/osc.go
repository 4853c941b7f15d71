package wavetable

import (
	"fmt"
	"math"

	"github.com/ottosson/wavetone"
)

// Oscillator walks a Table at a configurable step size, producing an infinite
// stream of samples at an arbitrary pitch. It implements wavetone.Streamer.
//
// An Oscillator is not safe for concurrent use; it is meant to be pulled by a
// single consumer. When the consumer is the speaker package, mutate a playing
// Oscillator only between speaker.Lock and speaker.Unlock.
type Oscillator struct {
	sr    wavetone.SampleRate
	table Table
	phase float64
	step  float64
}

// NewOscillator creates an Oscillator reading t at the given sample rate.
// The phase starts at 0 and the frequency at 0 Hz (silence); call
// SetFrequency before streaming.
func NewOscillator(sr wavetone.SampleRate, t Table) (*Oscillator, error) {
	if sr <= 0 {
		return nil, fmt.Errorf("wavetable: sample rate must be positive, got %d", sr)
	}
	if len(t) == 0 {
		return nil, fmt.Errorf("wavetable: oscillator needs a non-empty table")
	}
	return &Oscillator{sr: sr, table: t}, nil
}

// SetFrequency sets the output pitch to freq Hz, taking effect on the next
// sample. The per-sample step becomes freq * len(table) / sampleRate.
//
// The value is not validated: 0 produces a constant output, a negative
// frequency walks the table backwards, a frequency above half the sample
// rate aliases, and a non-finite value turns the output into NaN.
func (o *Oscillator) SetFrequency(freq float64) {
	o.step = freq * float64(len(o.table)) / float64(o.sr)
}

// Phase returns the current read position into the table, in [0, len(table)).
func (o *Oscillator) Phase() float64 {
	return o.phase
}

// NextSample returns the sample at the current phase, interpolated between
// the two neighboring table entries, and advances the phase by one step.
//
// A non-finite frequency poisons the phase on the first advance; from then on
// NextSample returns NaN until the Oscillator is reconstructed.
func (o *Oscillator) NextSample() float64 {
	if math.IsNaN(o.phase) {
		// never index the table with a poisoned phase
		return math.NaN()
	}
	sample := o.table.At(o.phase)
	length := float64(len(o.table))
	o.phase = math.Mod(o.phase+o.step, length)
	if o.phase < 0 {
		// math.Mod keeps the dividend's sign; shift negative remainders
		// back into [0, length). The second Mod catches the case where
		// adding length rounds up to exactly length.
		o.phase = math.Mod(o.phase+length, length)
	}
	return sample
}

// Stream fills samples entirely. The Oscillator is an infinite source, so ok
// is always true.
func (o *Oscillator) Stream(samples []float64) (n int, ok bool) {
	for i := range samples {
		samples[i] = o.NextSample()
	}
	return len(samples), true
}

// Err always returns nil.
func (o *Oscillator) Err() error {
	return nil
}
