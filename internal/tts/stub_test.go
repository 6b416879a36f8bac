package tts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadzzz/soundpost/internal/audio"
	"github.com/nadzzz/soundpost/internal/speech"
	"github.com/nadzzz/soundpost/internal/voices"
)

func TestStubProducesValidWAV(t *testing.T) {
	stub := NewStub()
	req := speech.Request{Text: "hello world", Voice: voices.Voice{Name: "Asteria", Model: "aura-asteria-en"}}

	payload, err := stub.Synthesize(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "audio/wav", payload.ContentType)
	assert.Equal(t, 24000, payload.SampleRate)
	assert.Equal(t, 1, payload.Channels)

	format, pcm, err := audio.DecodeWAV(payload.Audio)
	require.NoError(t, err)
	assert.Equal(t, 24000, format.SampleRate)
	assert.Equal(t, 1, format.Channels)
	assert.Equal(t, 16, format.BitsPerSample)

	// 50ms of 16-bit mono audio per character.
	assert.Len(t, pcm, len(req.Text)*24000/20*2)
}

func TestStubDurationScalesWithText(t *testing.T) {
	stub := NewStub()

	short, err := stub.Synthesize(context.Background(), speech.Request{Text: "hi"})
	require.NoError(t, err)
	long, err := stub.Synthesize(context.Background(), speech.Request{Text: "a much longer sentence"})
	require.NoError(t, err)

	assert.Greater(t, len(long.Audio), len(short.Audio))
}

func TestStubHonorsContext(t *testing.T) {
	stub := NewStub()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stub.Synthesize(ctx, speech.Request{Text: "hello"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUpstreamErrorMessage(t *testing.T) {
	err := NewUpstreamError("deepgram", 429, "too many requests", ErrRateLimited)
	assert.Equal(t, "deepgram: too many requests (status 429)", err.Error())
	assert.ErrorIs(t, err, ErrRateLimited)

	netErr := NewUpstreamError("deepgram", 0, "connection refused", ErrUnreachable)
	assert.Equal(t, "deepgram: connection refused", netErr.Error())
	assert.ErrorIs(t, netErr, ErrUnreachable)
}
