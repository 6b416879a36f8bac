package tts

import (
	"context"
	"log/slog"

	"github.com/nadzzz/soundpost/internal/audio"
	"github.com/nadzzz/soundpost/internal/speech"
)

// StubSynthesizer produces silent audio locally without contacting any
// provider. It backs development and CI runs where no credential or network
// access exists; select it with tts.provider "stub".
type StubSynthesizer struct {
	sampleRate int
}

// NewStub creates a stub synthesizer emitting 24kHz mono WAV.
func NewStub() *StubSynthesizer {
	return &StubSynthesizer{sampleRate: 24000}
}

// Name returns the provider identifier.
func (s *StubSynthesizer) Name() string { return "stub" }

// Synthesize returns silence lasting roughly 50ms per input character, so
// downstream consumers see plausible payload sizes and durations.
func (s *StubSynthesizer) Synthesize(ctx context.Context, req speech.Request) (*AudioPayload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	samples := len(req.Text) * s.sampleRate / 20
	pcm := make([]byte, samples*2) // 16-bit mono
	wav := audio.EncodeWAV(pcm, s.sampleRate, 1, 2)

	slog.Debug("stub synthesis", "voice", req.Voice.Model, "bytes", len(wav))
	return &AudioPayload{
		Audio:       wav,
		ContentType: "audio/wav",
		SampleRate:  s.sampleRate,
		Channels:    1,
	}, nil
}

// Close is a no-op for the stub.
func (s *StubSynthesizer) Close() error { return nil }
