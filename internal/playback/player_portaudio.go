//go:build portaudio

package playback

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/nadzzz/soundpost/internal/audio"
	"github.com/nadzzz/soundpost/internal/tts"
)

// framesPerBuffer is 40ms of audio at 24kHz.
const framesPerBuffer = 960

// New returns the PortAudio-backed player.
func New() Player { return &paPlayer{} }

// paPlayer plays WAV payloads through the default output device. The mutex
// serializes Play calls; concurrent requests queue behind it.
type paPlayer struct {
	mu   sync.Mutex
	init bool
}

func (p *paPlayer) Name() string { return "portaudio" }

// Play decodes the WAV payload and writes it to the default output stream,
// blocking until the last buffer has been handed to the device.
func (p *paPlayer) Play(ctx context.Context, payload *tts.AudioPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	format, pcm, err := audio.DecodeWAV(payload.Audio)
	if err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}
	if format.BitsPerSample != 16 {
		return fmt.Errorf("playback: unsupported bit depth %d", format.BitsPerSample)
	}

	if !p.init {
		if err := portaudio.Initialize(); err != nil {
			return fmt.Errorf("%w: %v", ErrNoDevice, err)
		}
		p.init = true
	}

	samples := bytesToInt16(pcm)

	out := make([]int16, framesPerBuffer*format.Channels)
	stream, err := portaudio.OpenDefaultStream(0, format.Channels, float64(format.SampleRate), framesPerBuffer, out)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoDevice, err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("starting output stream: %w", err)
	}
	defer stream.Stop()

	slog.Debug("playback start", "samples", len(samples), "rate", format.SampleRate, "channels", format.Channels)

	for off := 0; off < len(samples); off += len(out) {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := copy(out, samples[off:])
		for i := n; i < len(out); i++ {
			out[i] = 0 // pad the final buffer with silence
		}
		if err := stream.Write(); err != nil {
			return fmt.Errorf("writing to output stream: %w", err)
		}
	}

	return nil
}

func (p *paPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.init {
		p.init = false
		return portaudio.Terminate()
	}
	return nil
}

// bytesToInt16 converts little-endian PCM16 bytes to samples.
func bytesToInt16(data []byte) []int16 {
	samples := make([]int16, len(data)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}
	return samples
}
