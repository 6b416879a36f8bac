// Package client is a Go client for the soundpost HTTP API.
//
// A Client is safe for concurrent use. Construct one per service:
//
//	c := client.New("http://localhost:5000")
//	audio, err := c.Synthesize(ctx, "Hello!", "Zeus")
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultTimeout bounds API calls made with the default HTTP client.
// Synthesis of long texts can take a while upstream.
const DefaultTimeout = 60 * time.Second

// APIError is a non-2xx reply from the service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("soundpost: %s (status %d)", e.Message, e.Status)
}

// Client calls the soundpost HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a Client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Voices returns the available voices as display name to model identifier.
func (c *Client) Voices(ctx context.Context) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/voices", nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling /api/voices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var out struct {
		Success bool              `json:"success"`
		Voices  map[string]string `json:"voices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return out.Voices, nil
}

// Synthesize converts text to speech and returns the WAV bytes. An empty
// voice uses the service default; unknown names fall back to it.
func (c *Client) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	resp, err := c.post(ctx, "/api/tts", text, voice)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading audio: %w", err)
	}
	return audio, nil
}

// Result is a synthesis reply from the base64 endpoint.
type Result struct {
	Audio []byte // decoded WAV
	Voice string // display name of the voice that spoke
}

// SynthesizeBase64 converts text to speech via the base64 endpoint and
// reports which voice actually spoke after any default fallback.
func (c *Client) SynthesizeBase64(ctx context.Context, text, voice string) (*Result, error) {
	resp, err := c.post(ctx, "/api/tts/base64", text, voice)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var out struct {
		Success   bool   `json:"success"`
		AudioData string `json:"audio_data"`
		Voice     string `json:"voice"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(out.AudioData)
	if err != nil {
		return nil, fmt.Errorf("decoding audio: %w", err)
	}
	return &Result{Audio: audio, Voice: out.Voice}, nil
}

// SynthesizeToFile synthesizes text and writes the WAV to path.
func (c *Client) SynthesizeToFile(ctx context.Context, text, voice, path string) error {
	audio, err := c.Synthesize(ctx, text, voice)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return fmt.Errorf("writing audio file: %w", err)
	}
	return nil
}

// Speak asks the server to play the synthesized audio on its own audio
// device. It returns the display name of the voice that spoke.
func (c *Client) Speak(ctx context.Context, text, voice string) (string, error) {
	resp, err := c.post(ctx, "/api/speak", text, voice)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apiError(resp)
	}

	var out struct {
		Success bool   `json:"success"`
		Voice   string `json:"voice"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	return out.Voice, nil
}

// post sends the shared synthesis request body to path.
func (c *Client) post(ctx context.Context, path, text, voice string) (*http.Response, error) {
	payload := struct {
		Text  string `json:"text"`
		Voice string `json:"voice,omitempty"`
	}{Text: text, Voice: voice}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", path, err)
	}
	return resp, nil
}

// apiError decodes the error envelope of a non-2xx reply, falling back to
// the status text when the body is not the expected JSON.
func apiError(resp *http.Response) error {
	out := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&envelope); err == nil && envelope.Error != "" {
		out.Message = envelope.Error
	}
	return out
}
