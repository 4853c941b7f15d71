// Command wavetone plays a sustained sine tone through the default audio
// output device using a wavetable oscillator.
package main

import (
	"log"
	"time"

	"github.com/ottosson/wavetone"
	"github.com/ottosson/wavetone/speaker"
	"github.com/ottosson/wavetone/wavetable"
)

const (
	sampleRate  = wavetone.SampleRate(44100)
	tableLength = 64
	frequency   = 30.0
	duration    = 5 * time.Second
)

func main() {
	table, err := wavetable.Sine(tableLength)
	if err != nil {
		log.Fatalf("building wavetable: %s", err)
	}

	osc, err := wavetable.NewOscillator(sampleRate, table)
	if err != nil {
		log.Fatalf("creating oscillator: %s", err)
	}
	osc.SetFrequency(frequency)

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Fatalf("opening audio device: %s", err)
	}

	speaker.Play(osc)

	// The oscillator is an infinite source; playback runs on the speaker's
	// own thread, so just keep the process alive for the tone's duration.
	time.Sleep(duration)
}
