// Package wavetone provides a small pull-based audio streaming core for
// monophonic tone synthesis. A Streamer produces samples on demand; the
// speaker package renders Streamers to the default output device.
package wavetone

import "time"

// Streamer is able to stream a sequence of audio samples. Samples are float64
// values in the range [-1, 1], one channel.
//
// Stream copies at most len(samples) next samples to the samples slice.
//
// The number of samples actually copied gets returned alongside with a bool
// flag telling whether the streamer is drained:
//
//	n == len(samples) && ok             streamer has more samples
//	0 < n && n < len(samples) && ok     streamer streamed its final samples
//	n == 0 && !ok                       streamer is drained, or failed
//
// When n == 0 && !ok, the caller should check Err to distinguish a drained
// streamer from a broken one. Streamers of infinite sources never return !ok.
type Streamer interface {
	Stream(samples []float64) (n int, ok bool)

	// Err returns an error which occurred during streaming. If no error
	// occurred, nil is returned.
	Err() error
}

// StreamerFunc turns a function into a Streamer with a nil Err.
type StreamerFunc func(samples []float64) (n int, ok bool)

func (sf StreamerFunc) Stream(samples []float64) (n int, ok bool) {
	return sf(samples)
}

func (sf StreamerFunc) Err() error {
	return nil
}

// SampleRate is the number of samples per second.
type SampleRate int

// D returns the duration of n samples.
func (sr SampleRate) D(n int) time.Duration {
	return time.Second * time.Duration(n) / time.Duration(sr)
}

// N returns the number of samples that last for d duration.
func (sr SampleRate) N(d time.Duration) int {
	return int(d * time.Duration(sr) / time.Second)
}
