// Package tts defines the interface to upstream text-to-speech providers.
//
// Soundpost treats the provider as an opaque black box: one request with
// text and a voice identifier goes out, one audio buffer comes back. There
// is no streaming, no caching, and no retry; every call consumes one unit
// of provider quota.
package tts

import (
	"context"

	"github.com/nadzzz/soundpost/internal/speech"
)

// Synthesizer converts a validated speech request into audio.
type Synthesizer interface {
	// Name returns the provider identifier (e.g., "deepgram", "stub").
	Name() string

	// Synthesize issues one synthesis call and returns the resulting audio.
	// Failures are reported as *UpstreamError wrapping one of the sentinel
	// errors in this package.
	Synthesize(ctx context.Context, req speech.Request) (*AudioPayload, error)

	// Close releases any resources held by the synthesizer.
	Close() error
}

// AudioPayload holds the result of one synthesis call. It is consumed by
// exactly one response action (HTTP body, base64 JSON, file write, or
// playback) and then discarded; payloads are never cached or shared across
// requests.
type AudioPayload struct {
	// Audio is the synthesized audio as a complete WAV file.
	Audio []byte

	// ContentType is the MIME type of the audio (normally "audio/wav").
	ContentType string

	// SampleRate is the audio sample rate in Hz (e.g., 24000).
	SampleRate int

	// Channels is the number of audio channels (typically 1).
	Channels int
}
