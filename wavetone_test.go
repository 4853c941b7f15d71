package wavetone_test

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/ottosson/wavetone"
)

// randomDataStreamer generates numSamples random samples and returns a Streamer which streams
// them and the data itself.
func randomDataStreamer(numSamples int) (s wavetone.Streamer, data []float64) {
	data = make([]float64, numSamples)
	for i := range data {
		data[i] = rand.Float64()*2 - 1
	}
	return &dataStreamer{data, 0}, data
}

type dataStreamer struct {
	data []float64
	pos  int
}

func (ds *dataStreamer) Stream(samples []float64) (n int, ok bool) {
	if ds.pos >= len(ds.data) {
		return 0, false
	}
	n = copy(samples, ds.data[ds.pos:])
	ds.pos += n
	return n, true
}

func (ds *dataStreamer) Err() error {
	return nil
}

// collect drains Streamer s and returns all of the samples it streamed.
func collect(s wavetone.Streamer) []float64 {
	var (
		result []float64
		buf    [479]float64
	)
	for {
		n, ok := s.Stream(buf[:])
		if !ok {
			return result
		}
		result = append(result, buf[:n]...)
	}
}

func TestTake(t *testing.T) {
	for i := 0; i < 7; i++ {
		total := rand.Intn(1e5) + 1e4
		s, data := randomDataStreamer(total)
		take := rand.Intn(total-1) + 1

		want := data[:take]
		got := collect(wavetone.Take(take, s))

		if !reflect.DeepEqual(want, got) {
			t.Error("Take not working correctly")
		}
	}
}

func TestSeq(t *testing.T) {
	var (
		n    = 7
		s    = make([]wavetone.Streamer, n)
		want []float64
	)
	for i := range s {
		var data []float64
		s[i], data = randomDataStreamer(rand.Intn(1e5) + 1e4)
		want = append(want, data...)
	}

	got := collect(wavetone.Seq(s...))

	if !reflect.DeepEqual(want, got) {
		t.Error("Seq not working properly")
	}
}

func TestMixer(t *testing.T) {
	var (
		n    = 7
		s    = make([]wavetone.Streamer, n)
		data = make([][]float64, n)
	)
	maxLen := 0
	for i := range s {
		s[i], data[i] = randomDataStreamer(rand.Intn(1e5) + 1e4)
		if len(data[i]) > maxLen {
			maxLen = len(data[i])
		}
	}

	var m wavetone.Mixer
	m.Add(s...)

	if m.Len() != n {
		t.Errorf("Mixer has %d streamers, want %d", m.Len(), n)
	}

	// the mixer keeps playing silence after all streamers drain
	got := make([]float64, maxLen+100)
	gn, ok := m.Stream(got)
	if gn != len(got) || !ok {
		t.Fatalf("Mixer.Stream returned (%d, %v), want (%d, true)", gn, ok, len(got))
	}

	want := make([]float64, maxLen+100)
	for i := range data {
		for j := range data[i] {
			want[j] += data[i][j]
		}
	}

	for i := range want {
		if delta := got[i] - want[i]; delta < -1e-9 || delta > 1e-9 {
			t.Fatalf("Mixer not working correctly at sample %d", i)
		}
	}

	// a streamer whose final chunk filled the last pulled block is only
	// removed on the next poll, so pull once more before counting
	var tail [32]float64
	if tn, ok := m.Stream(tail[:]); tn != len(tail) || !ok {
		t.Fatalf("Mixer.Stream returned (%d, %v), want (%d, true)", tn, ok, len(tail))
	}
	for i := range tail {
		if tail[i] != 0 {
			t.Fatalf("Mixer streamed non-silence at sample %d after draining", i)
		}
	}

	if m.Len() != 0 {
		t.Errorf("Mixer kept %d drained streamers", m.Len())
	}
}

func TestSilence(t *testing.T) {
	got := collect(wavetone.Silence(1234))
	if len(got) != 1234 {
		t.Fatalf("Silence streamed %d samples, want 1234", len(got))
	}
	for _, v := range got {
		if v != 0 {
			t.Fatal("Silence streamed a non-zero sample")
		}
	}
}

func TestCallback(t *testing.T) {
	var called int
	s := wavetone.Callback(func() { called++ })

	var buf [32]float64
	for i := 0; i < 3; i++ {
		if n, ok := s.Stream(buf[:]); n != 0 || ok {
			t.Fatalf("Callback streamed (%d, %v), want (0, false)", n, ok)
		}
	}
	if called != 1 {
		t.Fatalf("callback ran %d times, want 1", called)
	}
}
