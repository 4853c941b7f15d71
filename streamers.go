package wavetone

// Silence returns a Streamer which streams n samples of silence. If n is negative, silence is
// streamed forever.
func Silence(n int) Streamer {
	return StreamerFunc(func(samples []float64) (int, bool) {
		if n == 0 {
			return 0, false
		}
		streamed := 0
		for i := range samples {
			if n == 0 {
				break
			}
			samples[i] = 0
			streamed++
			if n > 0 {
				n--
			}
		}
		return streamed, true
	})
}

// Callback returns a Streamer, which does not stream any samples, but instead calls f the first
// time its Stream method is called.
func Callback(f func()) Streamer {
	return StreamerFunc(func(samples []float64) (n int, ok bool) {
		if f != nil {
			f()
			f = nil
		}
		return 0, false
	})
}
