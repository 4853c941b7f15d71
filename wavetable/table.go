// Package wavetable implements table-based waveform synthesis: a precomputed
// single cycle of a periodic waveform, read back at a variable rate with
// linear interpolation between entries.
package wavetable

import (
	"fmt"
	"math"
)

// Table holds exactly one period of a periodic waveform, sampled at evenly
// spaced phases. Values lie in [-1, 1]. A Table must not be modified after
// construction; it may be shared read-only between oscillators.
type Table []float64

// New builds a Table of n entries where entry i equals shape(2π·i/n). The
// shape function is expected to be 2π-periodic with range [-1, 1].
func New(n int, shape func(phase float64) float64) (Table, error) {
	if n < 1 {
		return nil, fmt.Errorf("wavetable: table length must be positive, got %d", n)
	}
	t := make(Table, n)
	for i := range t {
		t[i] = shape(2 * math.Pi * float64(i) / float64(n))
	}
	return t, nil
}

// Sine builds a Table of n entries holding one period of a sine wave.
func Sine(n int) (Table, error) {
	return New(n, math.Sin)
}

// At reads the table at a fractional position using linear interpolation.
// The position wraps cyclically, so the entry at n-1 interpolates towards
// the entry at 0, closing the period. pos must be in [0, len(t)).
func (t Table) At(pos float64) float64 {
	i0 := int(pos)
	i1 := i0 + 1
	if i1 == len(t) {
		i1 = 0
	}
	w := pos - float64(i0)
	return (1-w)*t[i0] + w*t[i1]
}
