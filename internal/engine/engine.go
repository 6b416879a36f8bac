// Package engine implements the core synthesis flow.
//
// The engine ties the registry, the upstream synthesizer, and the optional
// playback device together. Every surface (HTTP, CLI, client library) runs
// the same steps: build a validated request, make one upstream call, hand
// the payload to exactly one output action. Payloads are never cached or
// reused across calls.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nadzzz/soundpost/internal/metrics"
	"github.com/nadzzz/soundpost/internal/playback"
	"github.com/nadzzz/soundpost/internal/speech"
	"github.com/nadzzz/soundpost/internal/tts"
	"github.com/nadzzz/soundpost/internal/voices"
)

// Engine orchestrates one synthesis per call.
type Engine struct {
	registry *voices.Registry
	synth    tts.Synthesizer
	player   playback.Player
}

// New creates an Engine over the given registry, synthesizer, and player.
func New(registry *voices.Registry, synth tts.Synthesizer, player playback.Player) *Engine {
	return &Engine{registry: registry, synth: synth, player: player}
}

// Voices returns every registered voice in presentation order.
func (e *Engine) Voices() []voices.Voice { return e.registry.All() }

// DefaultVoice returns the platform-wide default voice.
func (e *Engine) DefaultVoice() voices.Voice { return e.registry.Default() }

// Synthesize validates the inputs and performs one upstream call. The
// resolved voice is returned alongside the payload so surfaces can report
// which voice actually spoke.
func (e *Engine) Synthesize(ctx context.Context, text string, sel speech.Selection) (*tts.AudioPayload, voices.Voice, error) {
	// Step 1: Build the request (validation + voice resolution).
	req, err := speech.Build(e.registry, text, sel)
	if err != nil {
		return nil, voices.Voice{}, err
	}
	if name, ok := sel.Name(); ok && name != req.Voice.Name {
		slog.Warn("unknown voice requested, using default", "requested", name, "voice", req.Voice.Name)
	}

	logger := slog.With("provider", e.synth.Name(), "voice", req.Voice.Name)
	logger.Debug("synthesis started", "text_length", len(req.Text))

	// Step 2: One upstream call, the only blocking point in the flow.
	start := time.Now()
	payload, err := e.synth.Synthesize(ctx, req)

	audioLen := 0
	if payload != nil {
		audioLen = len(payload.Audio)
	}
	metrics.RecordSynthesis(e.synth.Name(), req.Voice.Name, err, time.Since(start), audioLen)

	if err != nil {
		logger.Error("synthesis failed", "error", err)
		return nil, req.Voice, err
	}

	logger.Info("synthesis complete", "bytes", len(payload.Audio), "duration", time.Since(start))
	return payload, req.Voice, nil
}

// WriteFile writes the payload to path, creating or overwriting the file.
// The parent directory must already exist; a failed write creates nothing.
func (e *Engine) WriteFile(payload *tts.AudioPayload, path string) error {
	if err := os.WriteFile(path, payload.Audio, 0o644); err != nil {
		return fmt.Errorf("writing audio file: %w", err)
	}
	slog.Debug("audio file written", "path", path, "bytes", len(payload.Audio))
	return nil
}

// Speak synthesizes text and plays it on the local audio device, blocking
// until playback finishes. Concurrent calls queue inside the player.
func (e *Engine) Speak(ctx context.Context, text string, sel speech.Selection) (voices.Voice, error) {
	payload, voice, err := e.Synthesize(ctx, text, sel)
	if err != nil {
		return voice, err
	}

	err = e.player.Play(ctx, payload)
	metrics.RecordPlayback(err)
	if err != nil {
		return voice, fmt.Errorf("playing audio: %w", err)
	}
	return voice, nil
}
