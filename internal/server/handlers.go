package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nadzzz/soundpost/internal/playback"
	"github.com/nadzzz/soundpost/internal/speech"
	"github.com/nadzzz/soundpost/internal/tts"
)

// maxRequestBody bounds synthesis request bodies. Text requests are tiny;
// anything larger is a caller error.
const maxRequestBody = 1 << 20

// ttsRequest is the JSON body of the synthesis endpoints.
type ttsRequest struct {
	Text  string `json:"text" example:"Hello from soundpost"`
	Voice string `json:"voice,omitempty" example:"Asteria"`
}

// ttsResponse is the JSON reply of the base64 and speak endpoints.
type ttsResponse struct {
	Success   bool   `json:"success"`
	AudioData string `json:"audio_data,omitempty"` // base64-encoded WAV
	Voice     string `json:"voice,omitempty"`      // display name of the voice that spoke
}

// SetAudioBytes stores raw audio as base64 for JSON transport.
func (r *ttsResponse) SetAudioBytes(audio []byte) {
	r.AudioData = base64.StdEncoding.EncodeToString(audio)
}

// errorResponse is the JSON error envelope shared by every endpoint.
type errorResponse struct {
	Success bool   `json:"success"` // always false
	Error   string `json:"error"`
}

// voicesResponse lists the registry.
type voicesResponse struct {
	Success bool              `json:"success"`
	Voices  map[string]string `json:"voices"` // display name -> model identifier
}

// selection converts the optional voice field into an explicit selection.
func (r ttsRequest) selection() speech.Selection {
	if r.Voice == "" {
		return speech.Default()
	}
	return speech.Requested(r.Voice)
}

// handleVoices returns the full voice registry.
//
// @Summary     List available voices
// @Description Returns every supported voice as a map of display name to upstream model identifier.
// @Tags        voices
// @Produce     json
// @Success     200  {object}  voicesResponse
// @Router      /api/voices [get]
func (s *Server) handleVoices(w http.ResponseWriter, r *http.Request) {
	all := s.engine.Voices()
	out := voicesResponse{Success: true, Voices: make(map[string]string, len(all))}
	for _, v := range all {
		out.Voices[v.Name] = v.Model
	}
	writeJSON(w, http.StatusOK, out)
}

// handleTTS synthesizes speech and returns the WAV file directly.
//
// @Summary     Synthesize speech to a WAV download
// @Description Converts text to speech and returns the audio as an audio/wav attachment.
// @Description Unknown or absent voice names fall back to the default voice.
// @Tags        tts
// @Accept      json
// @Produce     audio/wav
// @Param       request  body  ttsRequest  true  "Text to synthesize and optional voice name"
// @Success     200  {file}    file  "WAV audio"
// @Failure     400  {object}  errorResponse  "Empty text or malformed body"
// @Failure     429  {object}  errorResponse  "Upstream rate limit"
// @Failure     502  {object}  errorResponse  "Upstream failure"
// @Router      /api/tts [post]
func (s *Server) handleTTS(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeTTSRequest(w, r)
	if !ok {
		return
	}

	payload, _, err := s.engine.Synthesize(r.Context(), req.Text, req.selection())
	if err != nil {
		writeEngineError(w, err)
		return
	}

	w.Header().Set("Content-Type", payload.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="tts_audio.wav"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(payload.Audio)))
	_, _ = w.Write(payload.Audio)
}

// handleTTSBase64 synthesizes speech and returns it base64-encoded in JSON.
//
// @Summary     Synthesize speech as base64 JSON
// @Description Converts text to speech and returns the audio base64-encoded, together with the
// @Description display name of the voice that actually spoke (after default fallback).
// @Tags        tts
// @Accept      json
// @Produce     json
// @Param       request  body  ttsRequest  true  "Text to synthesize and optional voice name"
// @Success     200  {object}  ttsResponse
// @Failure     400  {object}  errorResponse  "Empty text or malformed body"
// @Failure     429  {object}  errorResponse  "Upstream rate limit"
// @Failure     502  {object}  errorResponse  "Upstream failure"
// @Router      /api/tts/base64 [post]
func (s *Server) handleTTSBase64(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeTTSRequest(w, r)
	if !ok {
		return
	}

	payload, voice, err := s.engine.Synthesize(r.Context(), req.Text, req.selection())
	if err != nil {
		writeEngineError(w, err)
		return
	}

	out := ttsResponse{Success: true, Voice: voice.Name}
	out.SetAudioBytes(payload.Audio)
	writeJSON(w, http.StatusOK, out)
}

// handleSpeak synthesizes speech and plays it on the server host.
//
// @Summary     Synthesize and play on the server
// @Description Plays the synthesized audio through the server's own audio device. Intended for
// @Description local testing; headless deployments answer 503.
// @Tags        tts
// @Accept      json
// @Produce     json
// @Param       request  body  ttsRequest  true  "Text to synthesize and optional voice name"
// @Success     200  {object}  ttsResponse
// @Failure     400  {object}  errorResponse  "Empty text or malformed body"
// @Failure     503  {object}  errorResponse  "No audio device on this host"
// @Router      /api/speak [post]
func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeTTSRequest(w, r)
	if !ok {
		return
	}

	voice, err := s.engine.Speak(r.Context(), req.Text, req.selection())
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ttsResponse{Success: true, Voice: voice.Name})
}

// decodeTTSRequest parses the shared JSON request body of the synthesis
// endpoints. On failure it writes the error response itself.
func (s *Server) decodeTTSRequest(w http.ResponseWriter, r *http.Request) (ttsRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req ttsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return ttsRequest{}, false
	}
	return req, true
}

// statusForError maps engine errors to HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, speech.ErrEmptyText):
		return http.StatusBadRequest
	case errors.Is(err, tts.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, tts.ErrAuthRejected),
		errors.Is(err, tts.ErrBadRequest),
		errors.Is(err, tts.ErrUnreachable):
		return http.StatusBadGateway
	case errors.Is(err, playback.ErrUnsupported), errors.Is(err, playback.ErrNoDevice):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeEngineError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "status", status, "error", err)
	} else {
		slog.Debug("request rejected", "status", status, "error", err)
	}
	writeError(w, status, err.Error())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
