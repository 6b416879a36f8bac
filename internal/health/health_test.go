package health

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadzzz/soundpost/internal/metrics"
)

func TestProbesReflectReadiness(t *testing.T) {
	srv := New(0)
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	for _, path := range []string{"/healthz", "/readyz"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, path)
	}

	srv.SetReady(true)

	for _, path := range []string{"/healthz", "/readyz"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Contains(t, string(body), `"status":"ok"`, path)
	}
}

func TestMetricsExposed(t *testing.T) {
	srv := New(0)
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	// Vec collectors only surface once a label set has been observed.
	metrics.RecordSynthesis("test", "Asteria", nil, 50*time.Millisecond, 1024)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "soundpost_synthesis_requests_total")
	assert.Contains(t, string(body), "soundpost_synthesis_audio_bytes")
	assert.Contains(t, string(body), "go_goroutines")
}
