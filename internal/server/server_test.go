package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadzzz/soundpost/internal/engine"
	"github.com/nadzzz/soundpost/internal/playback"
	"github.com/nadzzz/soundpost/internal/speech"
	"github.com/nadzzz/soundpost/internal/tts"
	"github.com/nadzzz/soundpost/internal/voices"
)

// fakeSynth returns canned audio and records the request it received.
type fakeSynth struct {
	got     speech.Request
	payload *tts.AudioPayload
	err     error
}

func (f *fakeSynth) Name() string { return "fake" }

func (f *fakeSynth) Synthesize(_ context.Context, req speech.Request) (*tts.AudioPayload, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func (f *fakeSynth) Close() error { return nil }

// fakePlayer records the payload it was asked to play.
type fakePlayer struct {
	played *tts.AudioPayload
	err    error
}

func (f *fakePlayer) Name() string { return "fake" }

func (f *fakePlayer) Play(_ context.Context, p *tts.AudioPayload) error {
	f.played = p
	return f.err
}

func (f *fakePlayer) Close() error { return nil }

func wavPayload(audio []byte) *tts.AudioPayload {
	return &tts.AudioPayload{Audio: audio, ContentType: "audio/wav", SampleRate: 24000, Channels: 1}
}

func newTestServer(t *testing.T, synth tts.Synthesizer, player playback.Player) *httptest.Server {
	t.Helper()
	srv := New(0, engine.New(voices.NewRegistry(), synth, player))
	ts := httptest.NewServer(srv.routes())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestVoicesEndpoint(t *testing.T) {
	ts := newTestServer(t, &fakeSynth{}, &fakePlayer{})

	resp, err := http.Get(ts.URL + "/api/voices")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body struct {
		Success bool              `json:"success"`
		Voices  map[string]string `json:"voices"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()

	assert.True(t, body.Success)
	assert.Len(t, body.Voices, 12)
	assert.Equal(t, "aura-asteria-en", body.Voices["Asteria"])
	assert.Equal(t, "aura-zeus-en", body.Voices["Zeus"])
}

func TestTTSReturnsWAVAttachment(t *testing.T) {
	audio := []byte("RIFF....WAVEdata")
	synth := &fakeSynth{payload: wavPayload(audio)}
	ts := newTestServer(t, synth, &fakePlayer{})

	resp := postJSON(t, ts.URL+"/api/tts", `{"text":"hello"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "audio/wav", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="tts_audio.wav"`, resp.Header.Get("Content-Disposition"))

	got, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, audio, got)

	// Absent voice resolves to the default.
	assert.Equal(t, "aura-asteria-en", synth.got.Voice.Model)
}

func TestTTSBase64ReturnsEncodedAudio(t *testing.T) {
	synth := &fakeSynth{payload: wavPayload([]byte{0x52, 0x49, 0x46, 0x46})}
	ts := newTestServer(t, synth, &fakePlayer{})

	resp := postJSON(t, ts.URL+"/api/tts/base64", `{"text":"Test","voice":"Zeus"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "UklGRg==", body["audio_data"])
	assert.Equal(t, "Zeus", body["voice"])
	assert.Equal(t, "aura-zeus-en", synth.got.Voice.Model)
}

func TestTTSEmptyTextRejected(t *testing.T) {
	synth := &fakeSynth{payload: wavPayload([]byte("audio"))}
	ts := newTestServer(t, synth, &fakePlayer{})

	for _, path := range []string{"/api/tts", "/api/tts/base64", "/api/speak"} {
		resp := postJSON(t, ts.URL+path, `{"text":"   "}`)
		body := decodeBody(t, resp)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		assert.Equal(t, false, body["success"], path)
		assert.NotEmpty(t, body["error"], path)
	}

	// The provider is never consulted for rejected input.
	assert.Empty(t, synth.got.Text)
}

func TestTTSUnknownVoiceFallsBack(t *testing.T) {
	synth := &fakeSynth{payload: wavPayload([]byte("audio"))}
	ts := newTestServer(t, synth, &fakePlayer{})

	resp := postJSON(t, ts.URL+"/api/tts/base64", `{"text":"hi","voice":"NotAVoice"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Asteria", body["voice"])
	assert.Equal(t, "aura-asteria-en", synth.got.Voice.Model)
}

func TestTTSUpstreamErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"rate limited", tts.ErrRateLimited, http.StatusTooManyRequests},
		{"auth rejected", tts.ErrAuthRejected, http.StatusBadGateway},
		{"bad request", tts.ErrBadRequest, http.StatusBadGateway},
		{"unreachable", tts.ErrUnreachable, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synth := &fakeSynth{err: tts.NewUpstreamError("fake", 0, "synthetic failure", tt.err)}
			ts := newTestServer(t, synth, &fakePlayer{})

			for _, path := range []string{"/api/tts", "/api/tts/base64"} {
				resp := postJSON(t, ts.URL+path, `{"text":"hi"}`)
				body := decodeBody(t, resp)

				assert.Equal(t, tt.status, resp.StatusCode, path)
				assert.Equal(t, false, body["success"], path)
			}
		})
	}
}

func TestSpeakPlaysOnServer(t *testing.T) {
	payload := wavPayload([]byte("audio"))
	player := &fakePlayer{}
	ts := newTestServer(t, &fakeSynth{payload: payload}, player)

	resp := postJSON(t, ts.URL+"/api/speak", `{"text":"hi","voice":"Luna"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Luna", body["voice"])
	assert.NotContains(t, body, "audio_data")
	assert.Same(t, payload, player.played)
}

func TestSpeakWithoutAudioDevice(t *testing.T) {
	synth := &fakeSynth{payload: wavPayload([]byte("audio"))}
	ts := newTestServer(t, synth, &fakePlayer{err: playback.ErrUnsupported})

	resp := postJSON(t, ts.URL+"/api/speak", `{"text":"hi"}`)
	body := decodeBody(t, resp)

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestInvalidJSONRejected(t *testing.T) {
	ts := newTestServer(t, &fakeSynth{}, &fakePlayer{})

	resp := postJSON(t, ts.URL+"/api/tts", `{"text":`)
	body := decodeBody(t, resp)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "invalid json")
}

func TestRequestIDPropagation(t *testing.T) {
	ts := newTestServer(t, &fakeSynth{}, &fakePlayer{})

	resp, err := http.Get(ts.URL + "/api/voices")
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/voices", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "test-id-123")

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "test-id-123", resp.Header.Get("X-Request-ID"))
}

func TestIndexPageRendersForm(t *testing.T) {
	ts := newTestServer(t, &fakeSynth{}, &fakePlayer{})

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	page, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	html := string(page)

	assert.Contains(t, html, `<option value="Asteria" selected>`)
	assert.Contains(t, html, `<option value="Zeus">`)
	assert.Contains(t, html, "/api/tts/base64")
}

func TestSwaggerDocServed(t *testing.T) {
	ts := newTestServer(t, &fakeSynth{}, &fakePlayer{})

	resp, err := http.Get(ts.URL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "/api/tts")
}
