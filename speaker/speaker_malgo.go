//go:build malgo
// +build malgo

// Package speaker implements playback of wavetone.Streamer values through the
// default physical audio output device.
package speaker

import (
	"sync"

	"github.com/gen2brain/malgo"
	"github.com/pkg/errors"

	"github.com/ottosson/wavetone"
)

var (
	mu      sync.Mutex
	mixer   wavetone.Mixer
	samples []float64
	context *malgo.AllocatedContext
	player  *malgo.Device
	buf     []byte
)

// Init initializes audio playback through speaker. Must be called before using this package.
//
// The bufferSize argument specifies the number of samples of the speaker's buffer. Bigger
// bufferSize means lower CPU usage and more reliable playback. Lower bufferSize means better
// responsiveness and less delay.
func Init(sampleRate wavetone.SampleRate, bufferSize int) error {
	mu.Lock()
	defer mu.Unlock()

	Close()

	if sampleRate <= 0 {
		return errors.Errorf("speaker sample rate must be positive, got %d", sampleRate)
	}

	mixer = wavetone.Mixer{}
	samples = make([]float64, bufferSize)
	buf = buf[:0]

	var err error
	context, err = malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return errors.Wrap(err, "failed to initialize speaker (context)")
	}

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Playback)
	deviceConfig.Playback.Format = malgo.FormatS16
	deviceConfig.Playback.Channels = 1
	deviceConfig.SampleRate = uint32(sampleRate)
	deviceConfig.Alsa.NoMMap = 1

	onSamples := func(pOutputSample, pInputSamples []byte, framecount uint32) {
		byteCount := framecount * deviceConfig.Playback.Channels * uint32(malgo.SampleSizeInBytes(deviceConfig.Playback.Format))
		for len(buf) < int(byteCount) {
			update()
		}
		copy(pOutputSample, buf[:byteCount])
		buf = append(buf[:0], buf[byteCount:]...)
	}

	player, err = malgo.InitDevice(context.Context, deviceConfig, malgo.DeviceCallbacks{
		Data: onSamples,
	})
	if err != nil {
		return errors.Wrap(err, "failed to initialize speaker (player)")
	}

	if err := player.Start(); err != nil {
		return errors.Wrap(err, "failed to initialize speaker (player start)")
	}

	return nil
}

// Close closes the playback and the driver. In most cases, there is certainly no need to call Close
// even when the program doesn't play anymore, because in properly set systems, the default mixer
// handles multiple concurrent processes. It's only when the default device is not a virtual but hardware
// device, that you'll probably want to manually manage the device from your application.
func Close() {
	if player != nil {
		player.Stop()
		player.Uninit()
		context.Uninit()
		player = nil
		mixer.Clear()
	}
}

// Lock locks the speaker. While locked, speaker won't pull new data from the playing Streamers. Lock
// if you want to modify any currently playing Streamers to avoid race conditions.
//
// Always lock speaker for as little time as possible, to avoid playback glitches.
func Lock() {
	mu.Lock()
}

// Unlock unlocks the speaker. Call after modifying any currently playing Streamer.
func Unlock() {
	mu.Unlock()
}

// Play starts playing all provided Streamers through the speaker.
func Play(s ...wavetone.Streamer) {
	mu.Lock()
	mixer.Add(s...)
	mu.Unlock()
}

// Clear removes all currently playing Streamers from the speaker.
func Clear() {
	mu.Lock()
	mixer.Clear()
	mu.Unlock()
}

// update pulls new data from the playing Streamers and appends it to the
// encoded byte buffer consumed by the device callback.
func update() {
	mu.Lock()
	mixer.Stream(samples)
	mu.Unlock()

	for i := range samples {
		val := samples[i]
		if val < -1 {
			val = -1
		}
		if val > +1 {
			val = +1
		}
		valInt16 := int16(val * (1<<15 - 1))
		buf = append(buf, byte(valInt16), byte(valInt16>>8))
	}
}
