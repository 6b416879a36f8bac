// Package deepgram implements the Synthesizer interface against the
// Deepgram Aura speak API.
//
// One synthesis call is one POST to /v1/speak carrying the text and the
// voice model; the response body is a complete WAV file. Authentication is
// a bearer token. There is no retry: a failed call is reported to the
// caller as a classified UpstreamError and the quota unit is spent.
package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nadzzz/soundpost/internal/config"
	"github.com/nadzzz/soundpost/internal/speech"
	"github.com/nadzzz/soundpost/internal/tts"
)

const (
	defaultBaseURL = "https://api.deepgram.com"
	speakPath      = "/v1/speak"

	// DefaultTimeout bounds one synthesis call. With no retry policy this
	// is the only temporal control on the upstream path.
	DefaultTimeout = 30 * time.Second

	defaultEncoding   = "linear16"
	defaultSampleRate = 24000
	container         = "wav"
)

// Client implements tts.Synthesizer using the Deepgram Aura API.
type Client struct {
	apiKey     string
	baseURL    string
	encoding   string
	sampleRate int
	client     *http.Client
}

// New creates a Deepgram client from config. The credential must already be
// resolved; config.Load fails fast when it is missing.
func New(cfg config.DeepgramConfig) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	encoding := cfg.Encoding
	if encoding == "" {
		encoding = defaultEncoding
	}
	sampleRate := cfg.SampleRate
	if sampleRate <= 0 {
		sampleRate = defaultSampleRate
	}
	timeout := DefaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		encoding:   encoding,
		sampleRate: sampleRate,
		client:     &http.Client{Timeout: timeout},
	}
}

// Name returns the provider identifier.
func (c *Client) Name() string { return "deepgram" }

// speakRequest is the JSON body of one speak call.
type speakRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

// Synthesize sends one speak request and returns the audio verbatim.
func (c *Client) Synthesize(ctx context.Context, req speech.Request) (*tts.AudioPayload, error) {
	if req.Text == "" {
		return nil, speech.ErrEmptyText
	}

	body, err := json.Marshal(speakRequest{Text: req.Text, Voice: req.Voice.Model})
	if err != nil {
		return nil, fmt.Errorf("marshalling speak request: %w", err)
	}

	// Model selection and audio parameters travel as query parameters; the
	// body carries the text and voice envelope.
	q := make(url.Values)
	q.Set("model", req.Voice.Model)
	q.Set("encoding", c.encoding)
	q.Set("sample_rate", strconv.Itoa(c.sampleRate))
	q.Set("container", container)
	reqURL := c.baseURL + speakPath + "?" + q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating speak request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	slog.Debug("deepgram speak", "voice", req.Voice.Model, "text_length", len(req.Text))

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, tts.NewUpstreamError("deepgram", 0, describeNetErr(err), tts.ErrUnreachable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, classify(resp)
	}

	audioBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, tts.NewUpstreamError("deepgram", 0, fmt.Sprintf("reading audio response: %v", err), tts.ErrUnreachable)
	}
	if len(audioBytes) == 0 {
		return nil, tts.NewUpstreamError("deepgram", resp.StatusCode, "provider returned empty audio", tts.ErrUnreachable)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/wav"
	}

	slog.Debug("deepgram speak complete", "voice", req.Voice.Model, "bytes", len(audioBytes))
	return &tts.AudioPayload{
		Audio:       audioBytes,
		ContentType: contentType,
		SampleRate:  c.sampleRate,
		Channels:    1,
	}, nil
}

// Close is a no-op; connections are pooled by the underlying transport.
func (c *Client) Close() error { return nil }

// classify maps a non-200 provider response to a typed UpstreamError.
func classify(resp *http.Response) error {
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))

	message := errMessage(respBody)
	if message == "" {
		message = strings.TrimSpace(string(respBody))
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	var sentinel error
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		sentinel = tts.ErrRateLimited
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		sentinel = tts.ErrAuthRejected
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		sentinel = tts.ErrBadRequest
	default:
		sentinel = tts.ErrUnreachable
	}

	return tts.NewUpstreamError("deepgram", resp.StatusCode, message, sentinel)
}

// errMessage pulls the err_msg field from a Deepgram JSON error body.
func errMessage(body []byte) string {
	var e struct {
		ErrMsg string `json:"err_msg"`
	}
	if err := json.Unmarshal(body, &e); err == nil {
		return e.ErrMsg
	}
	return ""
}

func describeNetErr(err error) string {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "request timed out"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}
	return err.Error()
}
