package effects

import "github.com/ottosson/wavetone"

// Gain multiplies the wrapped Streamer's samples by 1 + Gain. A Gain of 0
// leaves the signal untouched, -1 silences it.
type Gain struct {
	Streamer wavetone.Streamer
	Gain     float64
}

func (g *Gain) Stream(samples []float64) (n int, ok bool) {
	n, ok = g.Streamer.Stream(samples)
	for i := range samples[:n] {
		samples[i] *= 1 + g.Gain
	}
	return n, ok
}

func (g *Gain) Err() error {
	return g.Streamer.Err()
}
