// Package playback plays synthesized audio through the host output device.
//
// Playback is a local-deployment capability. Desktop builds compile the
// PortAudio-backed player with -tags portaudio; every other build gets an
// Unsupported variant whose Play always fails with ErrUnsupported. The
// server surface therefore never depends on an audio device being present,
// and a headless deployment degrades to a clean error instead of a crash.
package playback

import (
	"context"
	"errors"

	"github.com/nadzzz/soundpost/internal/tts"
)

var (
	// ErrUnsupported is returned by builds compiled without the portaudio tag.
	ErrUnsupported = errors.New("playback: not supported in this build")

	// ErrNoDevice is returned when the audio subsystem has no usable output
	// device, as on headless hosts.
	ErrNoDevice = errors.New("playback: no audio output device")
)

// Player plays one audio payload at a time. Implementations serialize
// concurrent calls, since local audio devices support a single active
// stream cleanly.
type Player interface {
	// Name identifies the playback backend ("portaudio" or "unsupported").
	Name() string

	// Play decodes the WAV payload and blocks until playback finishes or
	// ctx is canceled.
	Play(ctx context.Context, payload *tts.AudioPayload) error

	// Close releases the audio subsystem.
	Close() error
}
