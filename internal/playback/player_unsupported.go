//go:build !portaudio

package playback

import (
	"context"

	"github.com/nadzzz/soundpost/internal/tts"
)

// New returns the player for builds without audio support.
func New() Player { return unsupportedPlayer{} }

type unsupportedPlayer struct{}

func (unsupportedPlayer) Name() string { return "unsupported" }

func (unsupportedPlayer) Play(ctx context.Context, payload *tts.AudioPayload) error {
	return ErrUnsupported
}

func (unsupportedPlayer) Close() error { return nil }
